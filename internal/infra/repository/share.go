package repository

import (
	"context"

	domshare "foodloop-server/internal/domain/share"
	"foodloop-server/internal/domain/shared"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ShareRepository struct{}

func NewShareRepository() *ShareRepository {
	return &ShareRepository{}
}

const insertShareSQL = `
INSERT INTO shares (id, store_id, item_name, brand, quantity, description, expiration_date, storage_type, open_time, close_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

const insertShareImageSQL = `
INSERT INTO share_images (share_id, seq, object_key)
VALUES ($1, $2, $3)`

func (r *ShareRepository) Create(ctx context.Context, dbtx db.DBTX, s *domshare.Share, imageKeys []string) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertShareSQL,
		s.ID(),
		s.StoreID(),
		s.ItemName(),
		pgconv.StringPtrToPgtype(s.Brand()),
		s.Quantity(),
		pgconv.StringPtrToPgtype(s.Description()),
		pgconv.DateToPgtype(s.ExpirationDate()),
		s.StorageType().String(),
		pgconv.MicrosSinceMidnightToPgtype(s.Window().Open().Micros()),
		pgconv.MicrosSinceMidnightToPgtype(s.Window().Close().Micros()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create share", err)
	}

	// seq 0 is the primary image.
	for seq, key := range imageKeys {
		if _, err := dbtx.Exec(ctx, insertShareImageSQL, id, seq, key); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create share image", err)
		}
	}
	return id, nil
}

const selectShareSQL = `
SELECT id, store_id, item_name, brand, quantity, description, expiration_date, storage_type, open_time, close_time, created_at
FROM shares
WHERE id = $1`

const selectShareForUpdateSQL = selectShareSQL + `
FOR UPDATE`

func (r *ShareRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*domshare.Share, error) {
	return r.scanShare(ctx, dbtx, selectShareSQL, id)
}

// FindByIDForUpdate locks the share row exclusively. The quantity counter is
// only ever read-modified-written under this lock; an optimistic path would
// reintroduce the double-spend hazard.
func (r *ShareRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*domshare.Share, error) {
	return r.scanShare(ctx, dbtx, selectShareForUpdateSQL, id)
}

func (r *ShareRepository) scanShare(ctx context.Context, dbtx db.DBTX, query string, id uuid.UUID) (*domshare.Share, error) {
	var (
		shareID, storeID    uuid.UUID
		itemName            string
		brand, description  pgtype.Text
		quantity            int32
		expirationDate      pgtype.Date
		storageType         string
		openTime, closeTime pgtype.Time
		createdAt           pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&shareID, &storeID, &itemName, &brand, &quantity, &description,
		&expirationDate, &storageType, &openTime, &closeTime, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("share not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find share", err)
	}

	window, err := timeWindowFromPg(openTime, closeTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid share time window", err)
	}

	return domshare.ReconstructShare(
		shareID, storeID, itemName,
		pgconv.StringPtrFromPgtype(brand),
		quantity,
		pgconv.StringPtrFromPgtype(description),
		pgconv.DateFromPgtype(expirationDate),
		domshare.StorageType(storageType),
		window,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

const updateShareQuantitySQL = `
UPDATE shares
SET quantity = $2, updated_at = now()
WHERE id = $1`

// SaveQuantity persists a quantity already adjusted under the row lock. The
// quantity >= 0 check constraint backs up the domain guard.
func (r *ShareRepository) SaveQuantity(ctx context.Context, dbtx db.DBTX, s *domshare.Share) error {
	tag, err := dbtx.Exec(ctx, updateShareQuantitySQL, s.ID(), s.Quantity())
	if err != nil {
		return infra.WrapRepoErr("failed to update share quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("share not found for quantity update", nil, infra.KindNotFound)
	}
	return nil
}

const deleteShareSQL = `
DELETE FROM shares
WHERE id = $1`

// Delete removes the share; claims and images cascade at the schema level.
// Trade rows referencing the share restrict the delete, which surfaces as
// KindForeignKeyViolated.
func (r *ShareRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteShareSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete share", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("share not found for delete", nil, infra.KindNotFound)
	}
	return nil
}

func timeWindowFromPg(open, close pgtype.Time) (shared.TimeWindow, error) {
	openTod, err := shared.TimeOfDayFromMicros(pgconv.MicrosSinceMidnightFromPgtype(open))
	if err != nil {
		return shared.TimeWindow{}, err
	}
	closeTod, err := shared.TimeOfDayFromMicros(pgconv.MicrosSinceMidnightFromPgtype(close))
	if err != nil {
		return shared.TimeWindow{}, err
	}
	return shared.NewTimeWindow(openTod, closeTod)
}
