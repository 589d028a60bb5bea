package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fitstore/fitstore-go/internal/model"
)

var ErrItemNotFound = errors.New("item not found")

const itemColumns = `id, title, description, image, large_image, price, user_id, created_at, updated_at`

// ItemRepository handles item persistence operations.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	query := `INSERT INTO items (id, title, description, image, large_image, price, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Description, item.Image, item.LargeImage, item.Price, item.UserID,
	)
	return err
}

// GetByID retrieves an item by its ID.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	item := &model.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Description, &item.Image, &item.LargeImage,
		&item.Price, &item.UserID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// List returns items newest first. skip and first page through the set;
// first <= 0 means no limit.
func (r *ItemRepository) List(ctx context.Context, skip, first int) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`
	args := []any{}
	if first > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, first, skip)
	} else if skip > 0 {
		// MySQL requires a LIMIT to use OFFSET.
		query += ` LIMIT 18446744073709551615 OFFSET ?`
		args = append(args, skip)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Image, &item.LargeImage,
			&item.Price, &item.UserID, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Count returns the total number of items.
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count)
	return count, err
}

// Update applies the non-nil fields of upd to an item. The item ID and
// owner are never part of the update.
func (r *ItemRepository) Update(ctx context.Context, id string, upd model.ItemUpdate) error {
	var (
		sets []string
		args []any
	)
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Image != nil {
		sets = append(sets, "image = ?")
		args = append(args, *upd.Image)
	}
	if upd.LargeImage != nil {
		sets = append(sets, "large_image = ?")
		args = append(args, *upd.LargeImage)
	}
	if upd.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *upd.Price)
	}
	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE items SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes an item by ID.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
