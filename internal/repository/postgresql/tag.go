package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/merchkit/ordertags/internal/db"
	"github.com/merchkit/ordertags/internal/repository"
	"github.com/merchkit/ordertags/internal/storage"
)

type TagRepo struct {
	db db.DB
}

func NewTagRepo(db db.DB) storage.TagRepository {
	return &TagRepo{db: db}
}

// The no-op DO UPDATE makes RETURNING yield the existing row on
// conflict, so repeated upserts of the same name never create
// duplicates and always report the same id.
const tagUpsertQuery = `
        INSERT INTO tags (name, created_at) VALUES ($1, $2)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id, name, created_at
    `

func (r *TagRepo) UpsertByName(ctx context.Context, name string) (*repository.Tag, error) {
	var tag repository.Tag
	err := r.db.Get(ctx, &tag, tagUpsertQuery, name, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tag %q: %w", name, err)
	}
	return &tag, nil
}

func (r *TagRepo) UpsertByNameTx(ctx context.Context, tx db.Tx, name string) (*repository.Tag, error) {
	var tag repository.Tag
	err := tx.Get(ctx, &tag, tagUpsertQuery, name, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tag %q: %w", name, err)
	}
	return &tag, nil
}

func (r *TagRepo) GetByName(ctx context.Context, name string) (*repository.Tag, error) {
	var tag repository.Tag
	err := r.db.Get(ctx, &tag, "SELECT * FROM tags WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepo) List(ctx context.Context) ([]*repository.Tag, error) {
	var tags []*repository.Tag
	err := r.db.Select(ctx, &tags, "SELECT * FROM tags ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}
