package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrItemNotFound is returned when an id does not resolve to a matching row.
// Handlers map it to HTTP 404; every other storage failure collapses to the
// generic internal error.
var ErrItemNotFound = errors.New("item not found")

const itemColumns = "id, sequence_id, name, unit, stock, rack, location, is_deleted, created_at, updated_at"

type itemService struct {
	pool *pgxpool.Pool
}

// NewItemService constructs an ItemService backed by PostgreSQL.
func NewItemService(pool *pgxpool.Pool) ItemService {
	return &itemService{pool: pool}
}

func scanItem(row pgx.Row) (*Item, error) {
	it := &Item{}
	err := row.Scan(
		&it.ID, &it.SequenceID, &it.Name, &it.Unit, &it.Stock,
		&it.Rack, &it.Location, &it.IsDeleted, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *itemService) CreateItem(ctx context.Context, input NewItem) (*Item, error) {
	it, err := scanItem(s.pool.QueryRow(ctx, `
		INSERT INTO items (name, unit, stock, rack, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+itemColumns,
		input.Name, input.Unit, input.Stock, input.Rack, input.Location,
	))
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

func (s *itemService) GetItems(ctx context.Context) ([]Item, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE is_deleted = FALSE`,
	)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.SequenceID, &it.Name, &it.Unit, &it.Stock,
			&it.Rack, &it.Location, &it.IsDeleted, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	return items, nil
}

func (s *itemService) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	it, err := scanItem(s.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1 AND is_deleted = FALSE`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return it, nil
}

// UpdateItem locates the row by id only, without the is_deleted filter, so a
// soft-deleted item can still be updated. updated_at is intentionally left
// untouched.
func (s *itemService) UpdateItem(ctx context.Context, id uuid.UUID, input NewItem) (*Item, error) {
	it, err := scanItem(s.pool.QueryRow(ctx, `
		UPDATE items
		SET name = $2, unit = $3, stock = $4, rack = $5, location = $6
		WHERE id = $1
		RETURNING `+itemColumns,
		id, input.Name, input.Unit, input.Stock, input.Rack, input.Location,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("update item %s: %w", id, err)
	}
	return it, nil
}

func (s *itemService) SoftDeleteItem(ctx context.Context, id uuid.UUID) error {
	var deleted uuid.UUID
	err := s.pool.QueryRow(ctx, `
		UPDATE items
		SET is_deleted = TRUE
		WHERE id = $1
		RETURNING id`,
		id,
	).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}
