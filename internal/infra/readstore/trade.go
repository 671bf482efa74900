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

type TradeReadStore struct {
	db db.DBTX
}

func NewTradeReadStore(dbtx db.DBTX) *TradeReadStore {
	return &TradeReadStore{db: dbtx}
}

const findTradeDetailSQL = `
SELECT t.id, t.claim_id, t.status, t.item_name, t.brand, t.quantity,
       t.expiration_date, t.primary_image_key,
       g.id, g.owner_id, g.name, g.road_address, g.dong, g.phone_number, g.open_time, g.close_time,
       r.id, r.owner_id, r.name, r.road_address, r.dong, r.phone_number, r.open_time, r.close_time,
       t.completed_at, t.canceled_at, t.created_at
FROM trades t
JOIN stores g ON g.id = t.giver_store_id
JOIN stores r ON r.id = t.receiver_store_id
WHERE t.id = $1`

func (r *TradeReadStore) FindDetailByID(ctx context.Context, tradeID uuid.UUID) (*queries.TradeDetailRow, error) {
	var (
		row                     queries.TradeDetailRow
		brand, imageKey         pgtype.Text
		expirationDate          pgtype.Date
		gOpen, gClose           pgtype.Time
		rOpen, rClose           pgtype.Time
		completedAt, canceledAt pgtype.Timestamptz
		createdAt               pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findTradeDetailSQL, tradeID).Scan(
		&row.TradeID, &row.ClaimID, &row.Status, &row.ItemName, &brand, &row.Quantity,
		&expirationDate, &imageKey,
		&row.Giver.ID, &row.GiverOwnerID, &row.Giver.Name, &row.Giver.RoadAddress,
		&row.Giver.Dong, &row.Giver.PhoneNumber, &gOpen, &gClose,
		&row.Receiver.ID, &row.ReceiverOwnerID, &row.Receiver.Name, &row.Receiver.RoadAddress,
		&row.Receiver.Dong, &row.Receiver.PhoneNumber, &rOpen, &rClose,
		&completedAt, &canceledAt, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trade detail", err)
	}

	if row.Giver.OpenTime, err = timeOfDayString(gOpen); err != nil {
		return nil, infra.WrapRepoErr("invalid giver open time", err)
	}
	if row.Giver.CloseTime, err = timeOfDayString(gClose); err != nil {
		return nil, infra.WrapRepoErr("invalid giver close time", err)
	}
	if row.Receiver.OpenTime, err = timeOfDayString(rOpen); err != nil {
		return nil, infra.WrapRepoErr("invalid receiver open time", err)
	}
	if row.Receiver.CloseTime, err = timeOfDayString(rClose); err != nil {
		return nil, infra.WrapRepoErr("invalid receiver close time", err)
	}

	row.Brand = pgconv.StringPtrFromPgtype(brand)
	row.PrimaryImageKey = pgconv.StringPtrFromPgtype(imageKey)
	row.ExpirationDate = pgconv.DateFromPgtype(expirationDate)
	row.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	row.CanceledAt = pgconv.TimePtrFromPgtype(canceledAt)
	row.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &row, nil
}

const findGivenTradesFirstPageSQL = `
SELECT t.id, t.claim_id, t.status, t.item_name, t.brand, t.quantity,
       t.expiration_date, t.primary_image_key, p.name, p.dong,
       t.completed_at, t.canceled_at, t.created_at
FROM trades t
JOIN stores g ON g.id = t.giver_store_id
JOIN stores p ON p.id = t.receiver_store_id
WHERE g.owner_id = $1
ORDER BY t.created_at DESC, t.id DESC
LIMIT $2`

const findGivenTradesKeysetSQL = `
SELECT t.id, t.claim_id, t.status, t.item_name, t.brand, t.quantity,
       t.expiration_date, t.primary_image_key, p.name, p.dong,
       t.completed_at, t.canceled_at, t.created_at
FROM trades t
JOIN stores g ON g.id = t.giver_store_id
JOIN stores p ON p.id = t.receiver_store_id
WHERE g.owner_id = $1
  AND (t.created_at, t.id) < ($2, $3)
ORDER BY t.created_at DESC, t.id DESC
LIMIT $4`

const findReceivedTradesFirstPageSQL = `
SELECT t.id, t.claim_id, t.status, t.item_name, t.brand, t.quantity,
       t.expiration_date, t.primary_image_key, p.name, p.dong,
       t.completed_at, t.canceled_at, t.created_at
FROM trades t
JOIN stores r ON r.id = t.receiver_store_id
JOIN stores p ON p.id = t.giver_store_id
WHERE r.owner_id = $1
ORDER BY t.created_at DESC, t.id DESC
LIMIT $2`

const findReceivedTradesKeysetSQL = `
SELECT t.id, t.claim_id, t.status, t.item_name, t.brand, t.quantity,
       t.expiration_date, t.primary_image_key, p.name, p.dong,
       t.completed_at, t.canceled_at, t.created_at
FROM trades t
JOIN stores r ON r.id = t.receiver_store_id
JOIN stores p ON p.id = t.giver_store_id
WHERE r.owner_id = $1
  AND (t.created_at, t.id) < ($2, $3)
ORDER BY t.created_at DESC, t.id DESC
LIMIT $4`

func (r *TradeReadStore) FindGivenByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.GivenTradeItem, error) {
	rows, err := r.queryTrades(ctx, findGivenTradesFirstPageSQL, findGivenTradesKeysetSQL, ownerID, afterTime, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find given trades", err)
	}
	defer rows.Close()

	var items []*queries.GivenTradeItem
	for rows.Next() {
		row, err := scanTradeListRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan given trade row", err)
		}
		items = append(items, &queries.GivenTradeItem{
			TradeID:         row.tradeID,
			ClaimID:         row.claimID,
			Status:          row.status,
			ItemName:        row.itemName,
			Brand:           row.brand,
			Quantity:        row.quantity,
			ExpirationDate:  row.expirationDate,
			PrimaryImageKey: row.primaryImageKey,
			ReceiverStore:   row.partnerName,
			Dong:            row.partnerDong,
			CompletedAt:     row.completedAt,
			CanceledAt:      row.canceledAt,
			CreatedAt:       row.createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate given trade rows", err)
	}
	return items, nil
}

func (r *TradeReadStore) FindReceivedByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.ReceivedTradeItem, error) {
	rows, err := r.queryTrades(ctx, findReceivedTradesFirstPageSQL, findReceivedTradesKeysetSQL, ownerID, afterTime, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find received trades", err)
	}
	defer rows.Close()

	var items []*queries.ReceivedTradeItem
	for rows.Next() {
		row, err := scanTradeListRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan received trade row", err)
		}
		items = append(items, &queries.ReceivedTradeItem{
			TradeID:         row.tradeID,
			ClaimID:         row.claimID,
			Status:          row.status,
			ItemName:        row.itemName,
			Brand:           row.brand,
			Quantity:        row.quantity,
			ExpirationDate:  row.expirationDate,
			PrimaryImageKey: row.primaryImageKey,
			GiverStore:      row.partnerName,
			Dong:            row.partnerDong,
			CompletedAt:     row.completedAt,
			CanceledAt:      row.canceledAt,
			CreatedAt:       row.createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate received trade rows", err)
	}
	return items, nil
}

func (r *TradeReadStore) queryTrades(ctx context.Context, firstPageSQL, keysetSQL string, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) (pgx.Rows, error) {
	if afterTime == nil || afterID == nil {
		return r.db.Query(ctx, firstPageSQL, ownerID, limit)
	}
	return r.db.Query(ctx, keysetSQL, ownerID, pgconv.TimeToPgtype(*afterTime), *afterID, limit)
}

type tradeListRow struct {
	tradeID, claimID         uuid.UUID
	status                   string
	itemName                 string
	brand, primaryImageKey   *string
	quantity                 int32
	expirationDate           time.Time
	partnerName, partnerDong string
	completedAt, canceledAt  *time.Time
	createdAt                time.Time
}

func scanTradeListRow(rows pgx.Rows) (*tradeListRow, error) {
	var (
		row                     tradeListRow
		brand, imageKey         pgtype.Text
		expirationDate          pgtype.Date
		completedAt, canceledAt pgtype.Timestamptz
		createdAt               pgtype.Timestamptz
	)
	if err := rows.Scan(
		&row.tradeID, &row.claimID, &row.status, &row.itemName, &brand, &row.quantity,
		&expirationDate, &imageKey, &row.partnerName, &row.partnerDong,
		&completedAt, &canceledAt, &createdAt,
	); err != nil {
		return nil, err
	}
	row.brand = pgconv.StringPtrFromPgtype(brand)
	row.primaryImageKey = pgconv.StringPtrFromPgtype(imageKey)
	row.expirationDate = pgconv.DateFromPgtype(expirationDate)
	row.completedAt = pgconv.TimePtrFromPgtype(completedAt)
	row.canceledAt = pgconv.TimePtrFromPgtype(canceledAt)
	row.createdAt = pgconv.TimeFromPgtype(createdAt)
	return &row, nil
}
