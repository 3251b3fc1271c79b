package postgresql

import (
	"context"
	"fmt"

	"github.com/merchkit/ordertags/internal/db"
	"github.com/merchkit/ordertags/internal/repository"
	"github.com/merchkit/ordertags/internal/storage"
)

type OrderTagRepo struct {
	db db.DB
}

func NewOrderTagRepo(db db.DB) storage.OrderTagRepository {
	return &OrderTagRepo{db: db}
}

func (r *OrderTagRepo) ListByOrderTx(ctx context.Context, tx db.Tx, orderID int64) ([]*repository.OrderTag, error) {
	var links []*repository.OrderTag
	err := tx.Select(ctx, &links, "SELECT order_id, tag_id FROM order_tags WHERE order_id = $1", orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list associations for order %d: %w", orderID, err)
	}
	return links, nil
}

func (r *OrderTagRepo) Insert(ctx context.Context, orderID, tagID int64) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO order_tags (order_id, tag_id) VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, orderID, tagID)
	return err
}

func (r *OrderTagRepo) InsertTx(ctx context.Context, tx db.Tx, orderID, tagID int64) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO order_tags (order_id, tag_id) VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, orderID, tagID)
	return err
}

// Delete reports whether an association row was actually removed.
func (r *OrderTagRepo) Delete(ctx context.Context, orderID, tagID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM order_tags WHERE order_id = $1 AND tag_id = $2", orderID, tagID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteNotInTx removes every association of the order whose tag id is
// not in keep. An empty keep set clears the order's associations.
func (r *OrderTagRepo) DeleteNotInTx(ctx context.Context, tx db.Tx, orderID int64, keep []int64) error {
	if len(keep) == 0 {
		_, err := tx.Exec(ctx, "DELETE FROM order_tags WHERE order_id = $1", orderID)
		return err
	}
	_, err := tx.Exec(ctx, "DELETE FROM order_tags WHERE order_id = $1 AND tag_id != ALL($2)", orderID, keep)
	return err
}

func (r *OrderTagRepo) TagNames(ctx context.Context, orderID int64) ([]string, error) {
	var names []string
	err := r.db.Select(ctx, &names, `
        SELECT t.name FROM tags t
        JOIN order_tags ot ON ot.tag_id = t.id
        WHERE ot.order_id = $1
        ORDER BY t.name ASC
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tag names for order %d: %w", orderID, err)
	}
	return names, nil
}

func (r *OrderTagRepo) ListAllNames(ctx context.Context) ([]*repository.OrderTagName, error) {
	var rows []*repository.OrderTagName
	err := r.db.Select(ctx, &rows, `
        SELECT ot.order_id, t.name FROM tags t
        JOIN order_tags ot ON ot.tag_id = t.id
        ORDER BY ot.order_id, t.name ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list order tag names: %w", err)
	}
	return rows, nil
}
