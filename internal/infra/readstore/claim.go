package readstore

import (
	"context"
	"time"

	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/pgconv"
	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClaimReadStore struct {
	db db.DBTX
}

func NewClaimReadStore(dbtx db.DBTX) *ClaimReadStore {
	return &ClaimReadStore{db: dbtx}
}

const findSentClaimsFirstPageSQL = `
SELECT c.id, c.wish_id, c.share_id, c.status, t.id,
       gs.name, gs.dong, s.item_name, c.quantity, c.created_at
FROM claims c
JOIN stores rs ON rs.id = c.requester_store_id
JOIN shares s ON s.id = c.share_id
JOIN stores gs ON gs.id = s.store_id
LEFT JOIN trades t ON t.claim_id = c.id
WHERE rs.owner_id = $1
ORDER BY c.created_at DESC, c.id DESC
LIMIT $2`

const findSentClaimsKeysetSQL = `
SELECT c.id, c.wish_id, c.share_id, c.status, t.id,
       gs.name, gs.dong, s.item_name, c.quantity, c.created_at
FROM claims c
JOIN stores rs ON rs.id = c.requester_store_id
JOIN shares s ON s.id = c.share_id
JOIN stores gs ON gs.id = s.store_id
LEFT JOIN trades t ON t.claim_id = c.id
WHERE rs.owner_id = $1
  AND (c.created_at, c.id) < ($2, $3)
ORDER BY c.created_at DESC, c.id DESC
LIMIT $4`

const findReceivedClaimsFirstPageSQL = `
SELECT c.id, c.wish_id, c.share_id, c.status, t.id,
       rs.name, rs.dong, s.item_name, c.quantity, c.created_at
FROM claims c
JOIN stores rs ON rs.id = c.requester_store_id
JOIN shares s ON s.id = c.share_id
JOIN stores gs ON gs.id = s.store_id
LEFT JOIN trades t ON t.claim_id = c.id
WHERE gs.owner_id = $1
ORDER BY c.created_at DESC, c.id DESC
LIMIT $2`

const findReceivedClaimsKeysetSQL = `
SELECT c.id, c.wish_id, c.share_id, c.status, t.id,
       rs.name, rs.dong, s.item_name, c.quantity, c.created_at
FROM claims c
JOIN stores rs ON rs.id = c.requester_store_id
JOIN shares s ON s.id = c.share_id
JOIN stores gs ON gs.id = s.store_id
LEFT JOIN trades t ON t.claim_id = c.id
WHERE gs.owner_id = $1
  AND (c.created_at, c.id) < ($2, $3)
ORDER BY c.created_at DESC, c.id DESC
LIMIT $4`

func (r *ClaimReadStore) FindSentByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.SentClaimItem, error) {
	rows, err := r.queryClaims(ctx, findSentClaimsFirstPageSQL, findSentClaimsKeysetSQL, ownerID, afterTime, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find sent claims", err)
	}
	defer rows.Close()

	var items []*queries.SentClaimItem
	for rows.Next() {
		row, err := scanClaimListRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan sent claim row", err)
		}
		items = append(items, &queries.SentClaimItem{
			ClaimID:    row.claimID,
			WishID:     row.wishID,
			ShareID:    row.shareID,
			Status:     row.status,
			TradeID:    row.tradeID,
			GiverStore: row.storeName,
			Dong:       row.dong,
			ItemName:   row.itemName,
			Quantity:   row.quantity,
			CreatedAt:  row.createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sent claim rows", err)
	}
	return items, nil
}

func (r *ClaimReadStore) FindReceivedByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.ReceivedClaimItem, error) {
	rows, err := r.queryClaims(ctx, findReceivedClaimsFirstPageSQL, findReceivedClaimsKeysetSQL, ownerID, afterTime, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find received claims", err)
	}
	defer rows.Close()

	var items []*queries.ReceivedClaimItem
	for rows.Next() {
		row, err := scanClaimListRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan received claim row", err)
		}
		items = append(items, &queries.ReceivedClaimItem{
			ClaimID:        row.claimID,
			WishID:         row.wishID,
			ShareID:        row.shareID,
			Status:         row.status,
			TradeID:        row.tradeID,
			RequesterStore: row.storeName,
			Dong:           row.dong,
			ItemName:       row.itemName,
			Quantity:       row.quantity,
			CreatedAt:      row.createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate received claim rows", err)
	}
	return items, nil
}

func (r *ClaimReadStore) queryClaims(ctx context.Context, firstPageSQL, keysetSQL string, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) (pgx.Rows, error) {
	if afterTime == nil || afterID == nil {
		return r.db.Query(ctx, firstPageSQL, ownerID, limit)
	}
	return r.db.Query(ctx, keysetSQL, ownerID, pgconv.TimeToPgtype(*afterTime), *afterID, limit)
}

type claimListRow struct {
	claimID, wishID, shareID uuid.UUID
	status                   string
	tradeID                  *uuid.UUID
	storeName, dong          string
	itemName                 string
	quantity                 int32
	createdAt                time.Time
}

func scanClaimListRow(rows pgx.Rows) (*claimListRow, error) {
	var (
		row       claimListRow
		tradeID   pgtype.UUID
		createdAt pgtype.Timestamptz
	)
	if err := rows.Scan(
		&row.claimID, &row.wishID, &row.shareID, &row.status, &tradeID,
		&row.storeName, &row.dong, &row.itemName, &row.quantity, &createdAt,
	); err != nil {
		return nil, err
	}
	row.tradeID = pgconv.UUIDPtrFromPgtype(tradeID)
	row.createdAt = pgconv.TimeFromPgtype(createdAt)
	return &row, nil
}
