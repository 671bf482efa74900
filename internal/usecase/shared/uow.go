package shared

import (
	"context"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/share"
	"foodloop-server/internal/domain/store"
	"foodloop-server/internal/domain/trade"
	"foodloop-server/internal/domain/wish"
	"foodloop-server/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Claims() ClaimRepository
	Shares() ShareRepository
	Wishes() WishRepository
	Trades() TradeRepository
	Stores() StoreRepository
	ShareImages() ShareImageRepository
	DB() db.DBTX
}

// Write-side repositories. FindByIDForUpdate methods acquire exclusive row
// locks and block until the holder's transaction ends; lock acquisition order
// across repositories is fixed (Trade, then Claim, then Share) so the accept
// and trade-cancel paths cannot deadlock each other.

type ClaimRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *claim.Claim) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*claim.Claim, error)
	SaveStatus(ctx context.Context, dbtx db.DBTX, c *claim.Claim) error
}

type ShareRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *share.Share, imageKeys []string) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*share.Share, error)
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*share.Share, error)
	SaveQuantity(ctx context.Context, dbtx db.DBTX, s *share.Share) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type WishRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, w *wish.Wish) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*wish.Wish, error)
	Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type TradeRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, t *trade.Trade) (uuid.UUID, error)
	FindByClaimID(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*trade.Trade, error)
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*trade.Trade, error)
	SaveStatus(ctx context.Context, dbtx db.DBTX, t *trade.Trade) error
}

type StoreRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*store.Store, error)
	FindByOwnerID(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) (*store.Store, error)
	IncrementGiveTimes(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	IncrementReceivedTimes(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ShareImageRepository interface {
	// PrimaryKeyByShareID returns the seq-0 object key, or nil when the share
	// has no images.
	PrimaryKeyByShareID(ctx context.Context, dbtx db.DBTX, shareID uuid.UUID) (*string, error)
}
