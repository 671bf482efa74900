package share

import (
	"errors"
	"time"

	"foodloop-server/internal/domain/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName       = errors.New("item name cannot be empty")
	ErrNegativeQuantity    = errors.New("quantity cannot be negative")
	ErrInvalidStorageType  = errors.New("invalid storage type")
	ErrInsufficientStock   = errors.New("stock is lower than the requested amount")
	ErrNonPositiveMovement = errors.New("quantity movement must be positive")
)

// Share is an offered lot of surplus inventory. The quantity counter is owned
// exclusively by this entity: it decreases only through claim acceptance and
// increases only through trade cancellation.
type Share struct {
	id             uuid.UUID
	storeID        uuid.UUID
	itemName       string
	brand          *string
	quantity       int32
	description    *string
	expirationDate time.Time
	storageType    StorageType
	window         shared.TimeWindow
	createdAt      time.Time
}

func NewShare(
	storeID uuid.UUID,
	itemName string,
	brand *string,
	quantity int32,
	description *string,
	expirationDate time.Time,
	storageType StorageType,
	window shared.TimeWindow,
) (*Share, error) {
	if itemName == "" {
		return nil, ErrEmptyItemName
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if !storageType.IsValid() {
		return nil, ErrInvalidStorageType
	}
	return &Share{
		id:             uuid.New(),
		storeID:        storeID,
		itemName:       itemName,
		brand:          brand,
		quantity:       quantity,
		description:    description,
		expirationDate: expirationDate,
		storageType:    storageType,
		window:         window,
	}, nil
}

func ReconstructShare(
	id, storeID uuid.UUID,
	itemName string,
	brand *string,
	quantity int32,
	description *string,
	expirationDate time.Time,
	storageType StorageType,
	window shared.TimeWindow,
	createdAt time.Time,
) *Share {
	return &Share{
		id:             id,
		storeID:        storeID,
		itemName:       itemName,
		brand:          brand,
		quantity:       quantity,
		description:    description,
		expirationDate: expirationDate,
		storageType:    storageType,
		window:         window,
		createdAt:      createdAt,
	}
}

func (s *Share) IsAvailable() bool {
	return s.quantity > 0
}

func (s *Share) HasExpired(now time.Time) bool {
	return s.expirationDate.Before(now.Truncate(24 * time.Hour))
}

// DecreaseQuantity guards the never-negative invariant even when the caller
// has already checked stock.
func (s *Share) DecreaseQuantity(amount int32) error {
	if amount <= 0 {
		return ErrNonPositiveMovement
	}
	if s.quantity < amount {
		return ErrInsufficientStock
	}
	s.quantity -= amount
	return nil
}

func (s *Share) IncreaseQuantity(amount int32) error {
	if amount <= 0 {
		return ErrNonPositiveMovement
	}
	s.quantity += amount
	return nil
}

func (s *Share) ID() uuid.UUID             { return s.id }
func (s *Share) StoreID() uuid.UUID        { return s.storeID }
func (s *Share) ItemName() string          { return s.itemName }
func (s *Share) Brand() *string            { return s.brand }
func (s *Share) Quantity() int32           { return s.quantity }
func (s *Share) Description() *string      { return s.description }
func (s *Share) ExpirationDate() time.Time { return s.expirationDate }
func (s *Share) StorageType() StorageType  { return s.storageType }
func (s *Share) Window() shared.TimeWindow { return s.window }
func (s *Share) CreatedAt() time.Time      { return s.createdAt }
