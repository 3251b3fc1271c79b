package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the admin-facing view of an order together with its tag
// names. Serialized field names match what the admin table consumes.
type Order struct {
	ID               int64               `json:"id"`
	ShopifyOrderID   string              `json:"shopifyOrderId"`
	OrderNumber      *int64              `json:"orderNumber"`
	TotalPrice       decimal.NullDecimal `json:"totalPrice"`
	PaymentGateway   *string             `json:"paymentGateway"`
	CustomerEmail    *string             `json:"customerEmail"`
	CustomerFullName *string             `json:"customerFullName"`
	CustomerAddress  *string             `json:"customerAddress"`
	ShopID           *string             `json:"shopId"`
	Tags             []string            `json:"tags"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
