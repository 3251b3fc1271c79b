//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/merchkit/ordertags/internal/db"
	"github.com/merchkit/ordertags/internal/repository"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagNotAssociated = errors.New("tag not associated with order")
	ErrEmptyTagName     = errors.New("tag name is required")
	ErrEmptyShopifyID   = errors.New("order payload has no platform order id")
)

type OrderRepository interface {
	UpsertTx(ctx context.Context, tx db.Tx, order *repository.Order) (*repository.Order, error)
	GetByID(ctx context.Context, id int64) (*repository.Order, error)
	GetByShopifyID(ctx context.Context, shopifyOrderID string) (*repository.Order, error)
	List(ctx context.Context) ([]*repository.Order, error)
	UpdateFields(ctx context.Context, id int64, patch repository.OrderPatch) error
}

type TagRepository interface {
	UpsertByName(ctx context.Context, name string) (*repository.Tag, error)
	UpsertByNameTx(ctx context.Context, tx db.Tx, name string) (*repository.Tag, error)
	GetByName(ctx context.Context, name string) (*repository.Tag, error)
	List(ctx context.Context) ([]*repository.Tag, error)
}

type OrderTagRepository interface {
	ListByOrderTx(ctx context.Context, tx db.Tx, orderID int64) ([]*repository.OrderTag, error)
	Insert(ctx context.Context, orderID, tagID int64) error
	InsertTx(ctx context.Context, tx db.Tx, orderID, tagID int64) error
	Delete(ctx context.Context, orderID, tagID int64) (bool, error)
	DeleteNotInTx(ctx context.Context, tx db.Tx, orderID int64, keep []int64) error
	TagNames(ctx context.Context, orderID int64) ([]string, error)
	ListAllNames(ctx context.Context) ([]*repository.OrderTagName, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

// Storage is the service layer over the three stores. Both writers, the
// webhook handler and the admin actions, go through it.
//
// The two writers reconcile the same association sets independently and
// without versioning; a webhook and an admin edit racing on one order
// resolve as last-writer-wins. This is a known, accepted limitation.
type Storage struct {
	db        db.DB
	orders    OrderRepository
	tags      TagRepository
	orderTags OrderTagRepository
}

func New(database db.DB, orders OrderRepository, tags TagRepository, orderTags OrderTagRepository) *Storage {
	return &Storage{
		db:        database,
		orders:    orders,
		tags:      tags,
		orderTags: orderTags,
	}
}

// ApplyOrderEvent upserts the order projection and full-replace
// reconciles its associations to exactly the payload's tag list, all in
// one transaction. Applying the same event twice is a no-op the second
// time.
func (s *Storage) ApplyOrderEvent(ctx context.Context, order *repository.Order, tagNames []string) (*Order, error) {
	if order.ShopifyOrderID == "" {
		return nil, ErrEmptyShopifyID
	}

	var saved *repository.Order
	err := db.WithTransaction(ctx, s.db, func(tx db.Tx) error {
		var err error
		saved, err = s.orders.UpsertTx(ctx, tx, order)
		if err != nil {
			return err
		}

		tagIDs := make([]int64, 0, len(tagNames))
		for _, name := range tagNames {
			tag, err := s.tags.UpsertByNameTx(ctx, tx, name)
			if err != nil {
				return err
			}
			tagIDs = append(tagIDs, tag.ID)
		}

		existing, err := s.orderTags.ListByOrderTx(ctx, tx, saved.ID)
		if err != nil {
			return err
		}
		existingIDs := make(map[int64]struct{}, len(existing))
		for _, link := range existing {
			existingIDs[link.TagID] = struct{}{}
		}

		if err := s.orderTags.DeleteNotInTx(ctx, tx, saved.ID, tagIDs); err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			if _, ok := existingIDs[tagID]; ok {
				continue
			}
			if err := s.orderTags.InsertTx(ctx, tx, saved.ID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply order event: %w", err)
	}

	return toOrder(saved, tagNames), nil
}

// AddTag associates the named tag with the order, creating the tag on
// first reference, and returns the order with its recomputed full tag
// list. Adding an already-associated tag changes nothing.
func (s *Storage) AddTag(ctx context.Context, orderID int64, name string) (*Order, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	tag, err := s.tags.UpsertByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.orderTags.Insert(ctx, orderID, tag.ID); err != nil {
		return nil, fmt.Errorf("failed to associate tag %q with order %d: %w", name, orderID, err)
	}

	return s.withTagNames(ctx, order)
}

// RemoveTag drops the association between the order and the named tag.
// The tag record itself is never deleted. A tag that exists but is not
// associated with the order is reported, not ignored.
func (s *Storage) RemoveTag(ctx context.Context, orderID int64, name string) (*Order, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	tag, err := s.tags.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	removed, err := s.orderTags.Delete(ctx, orderID, tag.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove tag %q from order %d: %w", name, orderID, err)
	}
	if !removed {
		return nil, ErrTagNotAssociated
	}

	return s.withTagNames(ctx, order)
}

// UpdateOrder applies a sparse field update to an existing order.
func (s *Storage) UpdateOrder(ctx context.Context, orderID int64, patch repository.OrderPatch) (*Order, error) {
	if _, err := s.getOrder(ctx, orderID); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateFields(ctx, orderID, patch); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.withTagNames(ctx, order)
}

func (s *Storage) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.withTagNames(ctx, order)
}

// ListOrders returns every order with its tag names, newest first.
func (s *Storage) ListOrders(ctx context.Context) ([]Order, error) {
	records, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.orderTags.ListAllNames(ctx)
	if err != nil {
		return nil, err
	}
	tagsByOrder := make(map[int64][]string, len(records))
	for _, row := range names {
		tagsByOrder[row.OrderID] = append(tagsByOrder[row.OrderID], row.Name)
	}

	orders := make([]Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, *toOrder(record, tagsByOrder[record.ID]))
	}
	return orders, nil
}

func (s *Storage) ListTags(ctx context.Context) ([]Tag, error) {
	records, err := s.tags.List(ctx)
	if err != nil {
		return nil, err
	}
	tags := make([]Tag, 0, len(records))
	for _, record := range records {
		tags = append(tags, Tag{ID: record.ID, Name: record.Name, CreatedAt: record.CreatedAt})
	}
	return tags, nil
}

// CreateTag upserts a tag by name, idempotently.
func (s *Storage) CreateTag(ctx context.Context, name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}
	record, err := s.tags.UpsertByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Tag{ID: record.ID, Name: record.Name, CreatedAt: record.CreatedAt}, nil
}

func (s *Storage) getOrder(ctx context.Context, orderID int64) (*repository.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order %d: %w", orderID, err)
	}
	return order, nil
}

func (s *Storage) withTagNames(ctx context.Context, order *repository.Order) (*Order, error) {
	names, err := s.orderTags.TagNames(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return toOrder(order, names), nil
}

func toOrder(record *repository.Order, tags []string) *Order {
	if tags == nil {
		tags = []string{}
	}
	return &Order{
		ID:               record.ID,
		ShopifyOrderID:   record.ShopifyOrderID,
		OrderNumber:      record.OrderNumber,
		TotalPrice:       record.TotalPrice,
		PaymentGateway:   record.PaymentGateway,
		CustomerEmail:    record.CustomerEmail,
		CustomerFullName: record.CustomerFullName,
		CustomerAddress:  record.CustomerAddress,
		ShopID:           record.ShopID,
		Tags:             tags,
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}
