package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/merchkit/ordertags/internal/db"
	"github.com/merchkit/ordertags/internal/repository"
	"github.com/merchkit/ordertags/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

const orderUpsertQuery = `
        INSERT INTO orders (
            shopify_order_id, order_number, total_price, payment_gateway,
            customer_email, customer_full_name, customer_address, shop_id,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
        ON CONFLICT (shopify_order_id) DO UPDATE SET
            order_number = EXCLUDED.order_number,
            total_price = EXCLUDED.total_price,
            payment_gateway = EXCLUDED.payment_gateway,
            customer_email = EXCLUDED.customer_email,
            customer_full_name = EXCLUDED.customer_full_name,
            customer_address = EXCLUDED.customer_address,
            shop_id = EXCLUDED.shop_id,
            updated_at = EXCLUDED.updated_at
        RETURNING id, shopify_order_id, order_number, total_price, payment_gateway,
            customer_email, customer_full_name, customer_address, shop_id,
            created_at, updated_at
    `

func (r *OrderRepo) UpsertTx(ctx context.Context, tx db.Tx, order *repository.Order) (*repository.Order, error) {
	var saved repository.Order
	err := tx.Get(ctx, &saved, orderUpsertQuery,
		order.ShopifyOrderID, order.OrderNumber, order.TotalPrice, order.PaymentGateway,
		order.CustomerEmail, order.CustomerFullName, order.CustomerAddress, order.ShopID,
		time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert order %s: %w", order.ShopifyOrderID, err)
	}
	return &saved, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByShopifyID(ctx context.Context, shopifyOrderID string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE shopify_order_id = $1", shopifyOrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, "SELECT * FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) UpdateFields(ctx context.Context, id int64, patch repository.OrderPatch) error {
	set := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.OrderNumber != nil {
		add("order_number", *patch.OrderNumber)
	}
	if patch.TotalPrice != nil {
		add("total_price", *patch.TotalPrice)
	}
	if patch.PaymentGateway != nil {
		add("payment_gateway", *patch.PaymentGateway)
	}
	if patch.CustomerEmail != nil {
		add("customer_email", *patch.CustomerEmail)
	}
	if patch.CustomerFullName != nil {
		add("customer_full_name", *patch.CustomerFullName)
	}
	if patch.CustomerAddress != nil {
		add("customer_address", *patch.CustomerAddress)
	}

	if len(set) == 0 {
		return nil
	}

	add("updated_at", time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
