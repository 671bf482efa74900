package claim

import (
	"errors"
	"time"

	"foodloop-server/internal/domain/share"
	"foodloop-server/internal/domain/wish"

	"github.com/google/uuid"
)

var (
	// ErrCancelAcceptedDirectly guards the inventory-restore invariant: once a
	// trade exists, the trade is the sole authority for unwinding stock.
	ErrCancelAcceptedDirectly = errors.New("accepted claim can only be canceled through its trade")
	ErrWishClosed             = errors.New("wish is no longer active")
)

// Claim is one requester's bid against one share to fulfill one wish.
// The requester store and quantity are copied from the wish at creation; the
// requester always asks for exactly the wish quantity.
type Claim struct {
	id               uuid.UUID
	wishID           uuid.UUID
	shareID          uuid.UUID
	requesterStoreID uuid.UUID
	quantity         int32
	status           Status
	decidedAt        *time.Time
	createdAt        time.Time
}

func New(w *wish.Wish, s *share.Share) (*Claim, error) {
	if !w.IsActive() {
		return nil, ErrWishClosed
	}
	return &Claim{
		id:               uuid.New(),
		wishID:           w.ID(),
		shareID:          s.ID(),
		requesterStoreID: w.StoreID(),
		quantity:         w.Quantity(),
		status:           StatusPending,
	}, nil
}

func Reconstruct(
	id, wishID, shareID, requesterStoreID uuid.UUID,
	quantity int32,
	status Status,
	decidedAt *time.Time,
	createdAt time.Time,
) *Claim {
	return &Claim{
		id:               id,
		wishID:           wishID,
		shareID:          shareID,
		requesterStoreID: requesterStoreID,
		quantity:         quantity,
		status:           status,
		decidedAt:        decidedAt,
		createdAt:        createdAt,
	}
}

// Accept transitions PENDING to ACCEPTED. Invoked only from the accept
// orchestration, never directly by a caller. No-op unless PENDING.
func (c *Claim) Accept(now time.Time) {
	if c.status != StatusPending {
		return
	}
	c.status = StatusAccepted
	c.decidedAt = &now
}

// Reject transitions PENDING to REJECTED. No-op unless PENDING.
func (c *Claim) Reject(now time.Time) {
	if c.status != StatusPending {
		return
	}
	c.status = StatusRejected
	c.decidedAt = &now
}

// Cancel is the requester-side cancellation. Terminal states are idempotent
// no-ops; an ACCEPTED claim must be unwound through its trade instead.
func (c *Claim) Cancel(now time.Time) error {
	switch c.status {
	case StatusCanceled, StatusRejected:
		return nil
	case StatusAccepted:
		return ErrCancelAcceptedDirectly
	default:
		c.status = StatusCanceled
		c.decidedAt = &now
		return nil
	}
}

// CancelForTrade is the trade-mediated cancellation. It may take an ACCEPTED
// claim back to CANCELED; already-canceled claims are left untouched.
func (c *Claim) CancelForTrade(now time.Time) {
	if c.status.IsTerminal() {
		return
	}
	c.status = StatusCanceled
	c.decidedAt = &now
}

func (c *Claim) ID() uuid.UUID               { return c.id }
func (c *Claim) WishID() uuid.UUID           { return c.wishID }
func (c *Claim) ShareID() uuid.UUID          { return c.shareID }
func (c *Claim) RequesterStoreID() uuid.UUID { return c.requesterStoreID }
func (c *Claim) Quantity() int32             { return c.quantity }
func (c *Claim) Status() Status              { return c.status }
func (c *Claim) DecidedAt() *time.Time       { return c.decidedAt }
func (c *Claim) CreatedAt() time.Time        { return c.createdAt }
