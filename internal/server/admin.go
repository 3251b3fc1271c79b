package server

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/merchkit/ordertags/internal/storage"
	"github.com/merchkit/ordertags/internal/tagpicker"
)

//go:embed templates/orders.html
var templateFS embed.FS

var ordersTemplate = template.Must(template.ParseFS(templateFS, "templates/orders.html"))

type adminOrderRow struct {
	ID               int64
	ShopifyOrderID   string
	OrderNumber      string
	TotalPrice       string
	PaymentGateway   string
	CustomerEmail    string
	CustomerFullName string
	CustomerAddress  string
	Tags             []string
}

// handleAdminPage renders the orders table. The tag search box is
// backed by the picker's filter over the union of known tags.
func (s *Server) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	orders, err := s.storage.ListOrders(r.Context())
	if err != nil {
		zap.S().Errorf("Error rendering admin page: %v", err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	tags, err := s.storage.ListTags(r.Context())
	if err != nil {
		zap.S().Errorf("Error rendering admin page: %v", err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	available := make([]string, 0, len(tags))
	for _, tag := range tags {
		available = append(available, tag.Name)
	}

	query := r.URL.Query().Get("q")
	taggedWith := r.URL.Query().Get("tagged")

	picker := tagpicker.New(available, nil, nil, nil)
	candidates := picker.Filter(query)

	rows := make([]adminOrderRow, 0, len(orders))
	for _, order := range orders {
		if taggedWith != "" && !hasTag(order.Tags, taggedWith) {
			continue
		}
		rows = append(rows, toAdminRow(order))
	}

	data := map[string]interface{}{
		"Orders":     rows,
		"Query":      query,
		"TaggedWith": taggedWith,
		"Candidates": candidates,
		"NoMatch":    query != "" && len(candidates) == 0,
		"CanCreate":  picker.CanCreate(query),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ordersTemplate.Execute(w, data); err != nil {
		zap.S().Errorf("Error executing orders template: %v", err)
	}
}

func toAdminRow(order storage.Order) adminOrderRow {
	row := adminOrderRow{
		ID:               order.ID,
		ShopifyOrderID:   order.ShopifyOrderID,
		PaymentGateway:   orDash(order.PaymentGateway),
		CustomerEmail:    orDash(order.CustomerEmail),
		CustomerFullName: orDash(order.CustomerFullName),
		CustomerAddress:  orDash(order.CustomerAddress),
		Tags:             order.Tags,
	}
	if order.OrderNumber != nil {
		row.OrderNumber = "#" + strconv.FormatInt(*order.OrderNumber, 10)
	}
	if order.TotalPrice.Valid {
		row.TotalPrice = "$" + order.TotalPrice.Decimal.StringFixed(2)
	}
	return row
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func hasTag(tags []string, name string) bool {
	for _, tag := range tags {
		if tag == name {
			return true
		}
	}
	return false
}
