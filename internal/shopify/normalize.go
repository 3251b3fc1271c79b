package shopify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/merchkit/ordertags/internal/repository"
)

// OrderProjection is the canonical order shape produced from a webhook
// payload. Every downstream component works from this projection, never
// from the raw payload.
type OrderProjection struct {
	ShopifyOrderID   string
	OrderNumber      *int64
	TotalPrice       decimal.NullDecimal
	PaymentGateway   *string
	CustomerEmail    *string
	CustomerFullName *string
	CustomerAddress  *string
	ShopID           *string
	Tags             []string
}

// NormalizeCreate maps an orders/create or orders/updated payload to a
// projection. It is total: no payload shape makes it fail.
func NormalizeCreate(p OrderPayload, shopDomain string) OrderProjection {
	return normalize(p, string(p.ID), shopDomain)
}

// NormalizeEdit maps an orders/edited payload, where the platform order
// identifier arrives as order_id instead of id.
func NormalizeEdit(p OrderPayload, shopDomain string) OrderProjection {
	return normalize(p, string(p.OrderID), shopDomain)
}

func normalize(p OrderPayload, shopifyOrderID, shopDomain string) OrderProjection {
	proj := OrderProjection{
		ShopifyOrderID: shopifyOrderID,
		Tags:           p.Tags.Names(),
	}

	if p.OrderNumber != nil && *p.OrderNumber != 0 {
		n := *p.OrderNumber
		proj.OrderNumber = &n
	}

	// Unparseable prices normalize to null, never to zero.
	if price, err := decimal.NewFromString(strings.TrimSpace(string(p.TotalPrice))); err == nil {
		proj.TotalPrice = decimal.NewNullDecimal(price)
	}

	if len(p.PaymentGatewayNames) > 0 {
		proj.PaymentGateway = nonEmpty(p.PaymentGatewayNames[0])
	}

	if p.Customer != nil {
		proj.CustomerEmail = nonEmpty(p.Customer.Email)
		fullName := strings.TrimSpace(p.Customer.FirstName + " " + p.Customer.LastName)
		proj.CustomerFullName = nonEmpty(fullName)
	}

	if p.ShippingAddress != nil {
		proj.CustomerAddress = nonEmpty(p.ShippingAddress.Address1)
	}

	proj.ShopID = nonEmpty(shopDomain)

	return proj
}

// Record converts the projection to its storage record.
func (p OrderProjection) Record() *repository.Order {
	return &repository.Order{
		ShopifyOrderID:   p.ShopifyOrderID,
		OrderNumber:      p.OrderNumber,
		TotalPrice:       p.TotalPrice,
		PaymentGateway:   p.PaymentGateway,
		CustomerEmail:    p.CustomerEmail,
		CustomerFullName: p.CustomerFullName,
		CustomerAddress:  p.CustomerAddress,
		ShopID:           p.ShopID,
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
