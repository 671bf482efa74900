package wish

import (
	"errors"
	"time"

	"foodloop-server/internal/domain/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrEmptyItemName       = errors.New("item name cannot be empty")
	ErrNonPositiveQuantity = errors.New("quantity must be at least 1")
)

// Wish is a request for inventory. Once closed it never reopens.
type Wish struct {
	id          uuid.UUID
	storeID     uuid.UUID
	title       string
	itemName    string
	brand       *string
	quantity    int32
	description *string
	window      shared.TimeWindow
	active      bool
	createdAt   time.Time
}

func NewWish(
	storeID uuid.UUID,
	title, itemName string,
	brand *string,
	quantity int32,
	description *string,
	window shared.TimeWindow,
) (*Wish, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if itemName == "" {
		return nil, ErrEmptyItemName
	}
	if quantity < 1 {
		return nil, ErrNonPositiveQuantity
	}
	return &Wish{
		id:          uuid.New(),
		storeID:     storeID,
		title:       title,
		itemName:    itemName,
		brand:       brand,
		quantity:    quantity,
		description: description,
		window:      window,
		active:      true,
	}, nil
}

func ReconstructWish(
	id, storeID uuid.UUID,
	title, itemName string,
	brand *string,
	quantity int32,
	description *string,
	window shared.TimeWindow,
	active bool,
	createdAt time.Time,
) *Wish {
	return &Wish{
		id:          id,
		storeID:     storeID,
		title:       title,
		itemName:    itemName,
		brand:       brand,
		quantity:    quantity,
		description: description,
		window:      window,
		active:      active,
		createdAt:   createdAt,
	}
}

// Close deactivates the wish. One-way: a closed wish never reopens.
func (w *Wish) Close() {
	w.active = false
}

func (w *Wish) ID() uuid.UUID             { return w.id }
func (w *Wish) StoreID() uuid.UUID        { return w.storeID }
func (w *Wish) Title() string             { return w.title }
func (w *Wish) ItemName() string          { return w.itemName }
func (w *Wish) Brand() *string            { return w.brand }
func (w *Wish) Quantity() int32           { return w.quantity }
func (w *Wish) Description() *string      { return w.description }
func (w *Wish) Window() shared.TimeWindow { return w.window }
func (w *Wish) IsActive() bool            { return w.active }
func (w *Wish) CreatedAt() time.Time      { return w.createdAt }
