package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrObjectNotFound = errors.New("not found")

// Order is the local projection of a Shopify order. ShopifyOrderID is
// the platform key used for webhook upserts; ID is the surrogate key
// the admin UI addresses.
type Order struct {
	ID               int64               `db:"id"`
	ShopifyOrderID   string              `db:"shopify_order_id"`
	OrderNumber      *int64              `db:"order_number"`
	TotalPrice       decimal.NullDecimal `db:"total_price"`
	PaymentGateway   *string             `db:"payment_gateway"`
	CustomerEmail    *string             `db:"customer_email"`
	CustomerFullName *string             `db:"customer_full_name"`
	CustomerAddress  *string             `db:"customer_address"`
	ShopID           *string             `db:"shop_id"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

// OrderPatch carries a sparse field update: nil fields are left as-is.
type OrderPatch struct {
	OrderNumber      *int64
	TotalPrice       *decimal.Decimal
	PaymentGateway   *string
	CustomerEmail    *string
	CustomerFullName *string
	CustomerAddress  *string
}

func (p OrderPatch) IsEmpty() bool {
	return p.OrderNumber == nil &&
		p.TotalPrice == nil &&
		p.PaymentGateway == nil &&
		p.CustomerEmail == nil &&
		p.CustomerFullName == nil &&
		p.CustomerAddress == nil
}

type Tag struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type OrderTag struct {
	OrderID int64 `db:"order_id"`
	TagID   int64 `db:"tag_id"`
}

// OrderTagName is a join row used when listing orders with their tags.
type OrderTagName struct {
	OrderID int64  `db:"order_id"`
	Name    string `db:"name"`
}
