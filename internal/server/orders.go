package server

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/merchkit/ordertags/internal/metrics"
	"github.com/merchkit/ordertags/internal/storage"
)

// handleListOrders serves the admin table's data: every order with its
// tag names, plus the full tag catalog for the picker.
func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.storage.ListOrders(r.Context())
	if err != nil {
		zap.S().Errorf("Error fetching orders: %v", err)
		metrics.OperationErrorsTotal.WithLabelValues("list orders").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	tags, err := s.storage.ListTags(r.Context())
	if err != nil {
		zap.S().Errorf("Error fetching tags: %v", err)
		metrics.OperationErrorsTotal.WithLabelValues("list orders").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"tags":   tags,
	})
}

func (s *Server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.storage.ListOrders(r.Context())
	if err != nil {
		zap.S().Errorf("Error exporting orders: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to export orders")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	_ = writer.Write([]string{
		"id", "shopify_order_id", "order_number", "total_price",
		"payment_gateway", "customer_email", "customer_full_name",
		"customer_address", "tags",
	})
	for _, order := range orders {
		_ = writer.Write(orderCSVRow(order))
	}
}

func orderCSVRow(order storage.Order) []string {
	row := []string{
		strconv.FormatInt(order.ID, 10),
		order.ShopifyOrderID,
		"", "", "", "", "", "",
		strings.Join(order.Tags, ", "),
	}
	if order.OrderNumber != nil {
		row[2] = strconv.FormatInt(*order.OrderNumber, 10)
	}
	if order.TotalPrice.Valid {
		row[3] = order.TotalPrice.Decimal.StringFixed(2)
	}
	for i, field := range []*string{order.PaymentGateway, order.CustomerEmail, order.CustomerFullName, order.CustomerAddress} {
		if field != nil {
			row[4+i] = *field
		}
	}
	return row
}
