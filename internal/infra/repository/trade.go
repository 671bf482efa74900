package repository

import (
	"context"

	domtrade "foodloop-server/internal/domain/trade"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TradeRepository struct{}

func NewTradeRepository() *TradeRepository {
	return &TradeRepository{}
}

const insertTradeSQL = `
INSERT INTO trades (id, claim_id, share_id, wish_id, giver_store_id, receiver_store_id,
                    primary_image_key, item_name, brand, quantity, expiration_date, status,
                    completed_at, canceled_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

// Create persists a materialized trade. A uq_trades_claim violation surfaces
// as KindDuplicateKey so the materializer can re-fetch the winner instead of
// failing a concurrent retry.
func (r *TradeRepository) Create(ctx context.Context, dbtx db.DBTX, t *domtrade.Trade) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertTradeSQL,
		t.ID(),
		t.ClaimID(),
		t.ShareID(),
		t.WishID(),
		t.GiverStoreID(),
		t.ReceiverStoreID(),
		pgconv.StringPtrToPgtype(t.PrimaryImageKey()),
		t.ItemName(),
		pgconv.StringPtrToPgtype(t.Brand()),
		t.Quantity(),
		pgconv.DateToPgtype(t.ExpirationDate()),
		t.Status().String(),
		pgconv.TimePtrToPgtype(t.CompletedAt()),
		pgconv.TimePtrToPgtype(t.CanceledAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create trade", err)
	}
	return id, nil
}

const selectTradeSQL = `
SELECT id, claim_id, share_id, wish_id, giver_store_id, receiver_store_id,
       primary_image_key, item_name, brand, quantity, expiration_date, status,
       completed_at, canceled_at, created_at
FROM trades`

const selectTradeByClaimSQL = selectTradeSQL + `
WHERE claim_id = $1`

const selectTradeForUpdateSQL = selectTradeSQL + `
WHERE id = $1
FOR UPDATE`

func (r *TradeRepository) FindByClaimID(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*domtrade.Trade, error) {
	return r.scanTrade(ctx, dbtx, selectTradeByClaimSQL, claimID)
}

func (r *TradeRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*domtrade.Trade, error) {
	return r.scanTrade(ctx, dbtx, selectTradeForUpdateSQL, id)
}

func (r *TradeRepository) scanTrade(ctx context.Context, dbtx db.DBTX, query string, arg any) (*domtrade.Trade, error) {
	var (
		id, claimID, shareID, wishID    uuid.UUID
		giverStoreID, receiverStoreID   uuid.UUID
		primaryImageKey, brand          pgtype.Text
		itemName, status                string
		quantity                        int32
		expirationDate                  pgtype.Date
		completedAt, canceledAt         pgtype.Timestamptz
		createdAt                       pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, arg).Scan(
		&id, &claimID, &shareID, &wishID, &giverStoreID, &receiverStoreID,
		&primaryImageKey, &itemName, &brand, &quantity, &expirationDate, &status,
		&completedAt, &canceledAt, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trade", err)
	}

	return domtrade.Reconstruct(
		id, claimID, shareID, wishID, giverStoreID, receiverStoreID,
		pgconv.StringPtrFromPgtype(primaryImageKey),
		itemName,
		pgconv.StringPtrFromPgtype(brand),
		quantity,
		pgconv.DateFromPgtype(expirationDate),
		domtrade.Status(status),
		pgconv.TimePtrFromPgtype(completedAt),
		pgconv.TimePtrFromPgtype(canceledAt),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

const updateTradeStatusSQL = `
UPDATE trades
SET status = $2, completed_at = $3, canceled_at = $4, updated_at = now()
WHERE id = $1`

func (r *TradeRepository) SaveStatus(ctx context.Context, dbtx db.DBTX, t *domtrade.Trade) error {
	tag, err := dbtx.Exec(ctx, updateTradeStatusSQL,
		t.ID(),
		t.Status().String(),
		pgconv.TimePtrToPgtype(t.CompletedAt()),
		pgconv.TimePtrToPgtype(t.CanceledAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update trade status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("trade not found for status update", nil, infra.KindNotFound)
	}
	return nil
}
