package readstore

import (
	"context"
	"math"

	"foodloop-server/internal/domain/shared"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/objecturl"
	"foodloop-server/internal/pkg/pgconv"
	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MatchReadStore struct {
	db       db.DBTX
	resolver *objecturl.Resolver
}

func NewMatchReadStore(dbtx db.DBTX, resolver *objecturl.Resolver) *MatchReadStore {
	return &MatchReadStore{db: dbtx, resolver: resolver}
}

const wishExistsSQL = `
SELECT EXISTS (SELECT 1 FROM wishes WHERE id = $1)`

// Candidate shares for a wish: same neighborhood, same item, enough stock,
// not expired, pickup windows overlapping, nearest giver first. The wish
// owner's own shares never match.
const findMatchesSQL = `
SELECT s.id,
       s.store_id,
       gs.name,
       gs.dong,
       2 * 6371.0088 * asin(sqrt(
           power(sin(radians(gs.latitude - ws.latitude) / 2), 2) +
           cos(radians(ws.latitude)) * cos(radians(gs.latitude)) *
           power(sin(radians(gs.longitude - ws.longitude) / 2), 2)
       )) AS distance_km,
       s.item_name,
       s.brand,
       s.quantity,
       s.expiration_date,
       s.storage_type,
       s.open_time,
       s.close_time,
       si.object_key,
       s.created_at
FROM wishes w
JOIN stores ws ON ws.id = w.store_id
JOIN shares s ON s.item_name = w.item_name AND s.store_id <> w.store_id
JOIN stores gs ON gs.id = s.store_id
LEFT JOIN share_images si ON si.share_id = s.id AND si.seq = 0
WHERE w.id = $1
  AND w.is_active
  AND gs.dong = ws.dong
  AND s.quantity > 0
  AND s.quantity >= w.quantity
  AND s.expiration_date >= CURRENT_DATE
  AND s.open_time <= w.close_time
  AND s.close_time >= w.open_time
ORDER BY distance_km ASC, s.created_at DESC
LIMIT $2 OFFSET $3`

func (r *MatchReadStore) FindForWish(ctx context.Context, wishID uuid.UUID, limit, offset int32) ([]*queries.MatchItem, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, wishExistsSQL, wishID).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check wish existence", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("wish not found", nil, infra.KindNotFound)
	}

	rows, err := r.db.Query(ctx, findMatchesSQL, wishID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find matches", err)
	}
	defer rows.Close()

	var items []*queries.MatchItem
	for rows.Next() {
		var (
			shareID, storeID    uuid.UUID
			storeName, dong     string
			distanceKm          float64
			itemName, storage   string
			brand, imageKey     pgtype.Text
			quantity            int32
			expirationDate      pgtype.Date
			openTime, closeTime pgtype.Time
			createdAt           pgtype.Timestamptz
		)
		if err := rows.Scan(
			&shareID, &storeID, &storeName, &dong, &distanceKm,
			&itemName, &brand, &quantity, &expirationDate, &storage,
			&openTime, &closeTime, &imageKey, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan match row", err)
		}

		open, err := timeOfDayString(openTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid share open time", err)
		}
		closeStr, err := timeOfDayString(closeTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid share close time", err)
		}

		items = append(items, &queries.MatchItem{
			ShareID:         shareID,
			StoreID:         storeID,
			StoreName:       storeName,
			Dong:            dong,
			DistanceKm:      math.Round(distanceKm*10) / 10,
			ItemName:        itemName,
			Brand:           pgconv.StringPtrFromPgtype(brand),
			Quantity:        quantity,
			ExpirationDate:  pgconv.DateFromPgtype(expirationDate),
			StorageType:     storage,
			OpenTime:        open,
			CloseTime:       closeStr,
			PrimaryImageURL: r.resolver.ToURL(pgconv.StringPtrFromPgtype(imageKey)),
			CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate match rows", err)
	}
	return items, nil
}

func timeOfDayString(pt pgtype.Time) (string, error) {
	tod, err := shared.TimeOfDayFromMicros(pgconv.MicrosSinceMidnightFromPgtype(pt))
	if err != nil {
		return "", err
	}
	return tod.String(), nil
}
