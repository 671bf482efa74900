package repository

import (
	"context"

	domstore "foodloop-server/internal/domain/store"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StoreRepository struct{}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{}
}

const selectStoreSQL = `
SELECT id, owner_id, name, image_key, road_address, dong, latitude, longitude,
       phone_number, open_time, close_time, give_times, received_times, description, created_at
FROM stores`

const selectStoreByIDSQL = selectStoreSQL + `
WHERE id = $1`

const selectStoreByOwnerSQL = selectStoreSQL + `
WHERE owner_id = $1`

func (r *StoreRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*domstore.Store, error) {
	return r.scanStore(ctx, dbtx, selectStoreByIDSQL, id)
}

func (r *StoreRepository) FindByOwnerID(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) (*domstore.Store, error) {
	return r.scanStore(ctx, dbtx, selectStoreByOwnerSQL, ownerID)
}

func (r *StoreRepository) scanStore(ctx context.Context, dbtx db.DBTX, query string, arg any) (*domstore.Store, error) {
	var (
		id, ownerID              uuid.UUID
		name, roadAddress, dong  string
		imageKey, description    pgtype.Text
		latitude, longitude      float64
		phoneNumber              string
		openTime, closeTime      pgtype.Time
		giveTimes, receivedTimes int32
		createdAt                pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, arg).Scan(
		&id, &ownerID, &name, &imageKey, &roadAddress, &dong, &latitude, &longitude,
		&phoneNumber, &openTime, &closeTime, &giveTimes, &receivedTimes, &description, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store", err)
	}

	window, err := timeWindowFromPg(openTime, closeTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid store time window", err)
	}

	return domstore.ReconstructStore(
		id, ownerID, name,
		pgconv.StringPtrFromPgtype(imageKey),
		domstore.Address{
			RoadAddress: roadAddress,
			Dong:        dong,
			Latitude:    latitude,
			Longitude:   longitude,
		},
		phoneNumber,
		window,
		giveTimes, receivedTimes,
		pgconv.StringPtrFromPgtype(description),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

const incrementGiveTimesSQL = `
UPDATE stores
SET give_times = give_times + 1, updated_at = now()
WHERE id = $1`

const incrementReceivedTimesSQL = `
UPDATE stores
SET received_times = received_times + 1, updated_at = now()
WHERE id = $1`

func (r *StoreRepository) IncrementGiveTimes(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	return r.increment(ctx, dbtx, incrementGiveTimesSQL, id, "failed to increment give times")
}

func (r *StoreRepository) IncrementReceivedTimes(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	return r.increment(ctx, dbtx, incrementReceivedTimesSQL, id, "failed to increment received times")
}

func (r *StoreRepository) increment(ctx context.Context, dbtx db.DBTX, query string, id uuid.UUID, msg string) error {
	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found for counter update", nil, infra.KindNotFound)
	}
	return nil
}
