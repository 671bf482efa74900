package repository

import (
	"context"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClaimRepository struct{}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{}
}

const insertClaimSQL = `
INSERT INTO claims (id, wish_id, share_id, requester_store_id, quantity, status, decided_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// Create persists a new claim. A uq_claims_wish_share violation surfaces as
// KindDuplicateKey; the constraint, not an existence check, is what blocks
// double submission under races.
func (r *ClaimRepository) Create(ctx context.Context, dbtx db.DBTX, c *claim.Claim) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertClaimSQL,
		c.ID(),
		c.WishID(),
		c.ShareID(),
		c.RequesterStoreID(),
		c.Quantity(),
		c.Status().String(),
		pgconv.TimePtrToPgtype(c.DecidedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create claim", err)
	}
	return id, nil
}

const selectClaimForUpdateSQL = `
SELECT id, wish_id, share_id, requester_store_id, quantity, status, decided_at, created_at
FROM claims
WHERE id = $1
FOR UPDATE`

// FindByIDForUpdate takes an exclusive row lock; the caller blocks until any
// in-flight decision on the same claim commits or rolls back.
func (r *ClaimRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*claim.Claim, error) {
	return r.scanClaim(ctx, dbtx, selectClaimForUpdateSQL, id)
}

func (r *ClaimRepository) scanClaim(ctx context.Context, dbtx db.DBTX, query string, id uuid.UUID) (*claim.Claim, error) {
	var (
		claimID, wishID, shareID, requesterStoreID uuid.UUID
		quantity                                   int32
		status                                     string
		decidedAt                                  pgtype.Timestamptz
		createdAt                                  pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&claimID, &wishID, &shareID, &requesterStoreID, &quantity, &status, &decidedAt, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim", err)
	}

	return claim.Reconstruct(
		claimID, wishID, shareID, requesterStoreID,
		quantity,
		claim.Status(status),
		pgconv.TimePtrFromPgtype(decidedAt),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

const updateClaimStatusSQL = `
UPDATE claims
SET status = $2, decided_at = $3, updated_at = now()
WHERE id = $1`

func (r *ClaimRepository) SaveStatus(ctx context.Context, dbtx db.DBTX, c *claim.Claim) error {
	tag, err := dbtx.Exec(ctx, updateClaimStatusSQL,
		c.ID(),
		c.Status().String(),
		pgconv.TimePtrToPgtype(c.DecidedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update claim status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("claim not found for status update", nil, infra.KindNotFound)
	}
	return nil
}
