package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Item is a stored inventory record. The id is generated by the database at
// insert time; sequence_id is a store-assigned monotonic counter that no
// operation reads back.
type Item struct {
	ID         uuid.UUID  `json:"id"`
	SequenceID int64      `json:"sequence_id"`
	Name       string     `json:"name"`
	Unit       string     `json:"unit"`
	Stock      float64    `json:"stock"`
	Rack       *string    `json:"rack"`
	Location   *string    `json:"location"`
	IsDeleted  bool       `json:"is_deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// NewItem is the writable projection of Item. The same payload is used for
// both creation and update; it never carries an identifier or the deletion
// flag.
type NewItem struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Stock    float64 `json:"stock"`
	Rack     *string `json:"rack"`
	Location *string `json:"location"`
}

// ItemService provides persistence operations over inventory items. Every
// call is one round trip to the store; the service keeps no state between
// requests.
type ItemService interface {
	// CreateItem inserts a new row and returns the fully populated record,
	// including the generated id, sequence number, and creation timestamp.
	CreateItem(ctx context.Context, input NewItem) (*Item, error)

	// GetItems returns every item that has not been soft-deleted.
	GetItems(ctx context.Context) ([]Item, error)

	// GetItem returns the item with the given id, excluding soft-deleted
	// rows. Returns ErrItemNotFound when no visible row matches.
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)

	// UpdateItem overwrites the five writable fields of the row with the
	// given id and returns the post-update record. The lookup is by id
	// alone: a soft-deleted row can still be updated.
	UpdateItem(ctx context.Context, id uuid.UUID, input NewItem) (*Item, error)

	// SoftDeleteItem sets is_deleted on the row with the given id. The
	// lookup is by id alone, so repeated deletes re-assert the flag.
	SoftDeleteItem(ctx context.Context, id uuid.UUID) error
}
