package trade

import (
	"errors"
	"time"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/share"
	"foodloop-server/internal/domain/wish"

	"github.com/google/uuid"
)

var (
	ErrClaimNotAccepted     = errors.New("trade requires an accepted claim")
	ErrCancelCompletedTrade = errors.New("completed trade cannot be canceled")
)

// Trade is the materialized record of an accepted claim. Item fields are
// snapshots taken at acceptance time so later edits to the share do not
// rewrite history. Trades are append-only; canceled trades stay queryable.
type Trade struct {
	id              uuid.UUID
	claimID         uuid.UUID
	shareID         uuid.UUID
	wishID          uuid.UUID
	giverStoreID    uuid.UUID
	receiverStoreID uuid.UUID
	primaryImageKey *string
	itemName        string
	brand           *string
	quantity        int32
	expirationDate  time.Time
	status          Status
	completedAt     *time.Time
	canceledAt      *time.Time
	createdAt       time.Time
}

// FromAcceptedClaim snapshots the share and store references at the moment of
// acceptance. primaryImageKey is the share's seq-0 image key at this instant,
// nil when the share has no images.
func FromAcceptedClaim(c *claim.Claim, s *share.Share, w *wish.Wish, primaryImageKey *string) (*Trade, error) {
	if c.Status() != claim.StatusAccepted {
		return nil, ErrClaimNotAccepted
	}
	return &Trade{
		id:              uuid.New(),
		claimID:         c.ID(),
		shareID:         s.ID(),
		wishID:          w.ID(),
		giverStoreID:    s.StoreID(),
		receiverStoreID: w.StoreID(),
		primaryImageKey: primaryImageKey,
		itemName:        s.ItemName(),
		brand:           s.Brand(),
		quantity:        c.Quantity(),
		expirationDate:  s.ExpirationDate(),
		status:          StatusMatched,
	}, nil
}

func Reconstruct(
	id, claimID, shareID, wishID, giverStoreID, receiverStoreID uuid.UUID,
	primaryImageKey *string,
	itemName string,
	brand *string,
	quantity int32,
	expirationDate time.Time,
	status Status,
	completedAt, canceledAt *time.Time,
	createdAt time.Time,
) *Trade {
	return &Trade{
		id:              id,
		claimID:         claimID,
		shareID:         shareID,
		wishID:          wishID,
		giverStoreID:    giverStoreID,
		receiverStoreID: receiverStoreID,
		primaryImageKey: primaryImageKey,
		itemName:        itemName,
		brand:           brand,
		quantity:        quantity,
		expirationDate:  expirationDate,
		status:          status,
		completedAt:     completedAt,
		canceledAt:      canceledAt,
		createdAt:       createdAt,
	}
}

// Complete transitions MATCHED to COMPLETED and reports whether the
// transition happened. Complete acts only on MATCHED, so repeated calls and
// calls on a canceled trade are no-ops; side effects (wish closing, store
// counters) must run only when this returns true.
func (t *Trade) Complete(now time.Time) bool {
	if t.status != StatusMatched {
		return false
	}
	t.status = StatusCompleted
	t.completedAt = &now
	return true
}

// Cancel transitions MATCHED to CANCELED. Idempotent on CANCELED; a completed
// trade never unwinds.
func (t *Trade) Cancel(now time.Time) error {
	switch t.status {
	case StatusCanceled:
		return nil
	case StatusCompleted:
		return ErrCancelCompletedTrade
	default:
		t.status = StatusCanceled
		t.canceledAt = &now
		return nil
	}
}

func (t *Trade) ID() uuid.UUID              { return t.id }
func (t *Trade) ClaimID() uuid.UUID         { return t.claimID }
func (t *Trade) ShareID() uuid.UUID         { return t.shareID }
func (t *Trade) WishID() uuid.UUID          { return t.wishID }
func (t *Trade) GiverStoreID() uuid.UUID    { return t.giverStoreID }
func (t *Trade) ReceiverStoreID() uuid.UUID { return t.receiverStoreID }
func (t *Trade) PrimaryImageKey() *string   { return t.primaryImageKey }
func (t *Trade) ItemName() string           { return t.itemName }
func (t *Trade) Brand() *string             { return t.brand }
func (t *Trade) Quantity() int32            { return t.quantity }
func (t *Trade) ExpirationDate() time.Time  { return t.expirationDate }
func (t *Trade) Status() Status             { return t.status }
func (t *Trade) CompletedAt() *time.Time    { return t.completedAt }
func (t *Trade) CanceledAt() *time.Time     { return t.canceledAt }
func (t *Trade) CreatedAt() time.Time       { return t.createdAt }
