package repository

import (
	"context"

	domwish "foodloop-server/internal/domain/wish"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WishRepository struct{}

func NewWishRepository() *WishRepository {
	return &WishRepository{}
}

const insertWishSQL = `
INSERT INTO wishes (id, store_id, title, item_name, brand, quantity, description, open_time, close_time, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *WishRepository) Create(ctx context.Context, dbtx db.DBTX, w *domwish.Wish) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertWishSQL,
		w.ID(),
		w.StoreID(),
		w.Title(),
		w.ItemName(),
		pgconv.StringPtrToPgtype(w.Brand()),
		w.Quantity(),
		pgconv.StringPtrToPgtype(w.Description()),
		pgconv.MicrosSinceMidnightToPgtype(w.Window().Open().Micros()),
		pgconv.MicrosSinceMidnightToPgtype(w.Window().Close().Micros()),
		w.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create wish", err)
	}
	return id, nil
}

const selectWishSQL = `
SELECT id, store_id, title, item_name, brand, quantity, description, open_time, close_time, is_active, created_at
FROM wishes
WHERE id = $1`

func (r *WishRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*domwish.Wish, error) {
	var (
		wishID, storeID     uuid.UUID
		title, itemName     string
		brand, description  pgtype.Text
		quantity            int32
		openTime, closeTime pgtype.Time
		isActive            bool
		createdAt           pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, selectWishSQL, id).Scan(
		&wishID, &storeID, &title, &itemName, &brand, &quantity, &description,
		&openTime, &closeTime, &isActive, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("wish not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find wish", err)
	}

	window, err := timeWindowFromPg(openTime, closeTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid wish time window", err)
	}

	return domwish.ReconstructWish(
		wishID, storeID, title, itemName,
		pgconv.StringPtrFromPgtype(brand),
		quantity,
		pgconv.StringPtrFromPgtype(description),
		window,
		isActive,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

const deactivateWishSQL = `
UPDATE wishes
SET is_active = FALSE, updated_at = now()
WHERE id = $1`

// Deactivate is one-way; there is deliberately no reactivation statement.
func (r *WishRepository) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deactivateWishSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate wish", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wish not found for deactivation", nil, infra.KindNotFound)
	}
	return nil
}
