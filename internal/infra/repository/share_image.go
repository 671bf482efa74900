package repository

import (
	"context"

	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ShareImageRepository struct{}

func NewShareImageRepository() *ShareImageRepository {
	return &ShareImageRepository{}
}

const selectPrimaryImageKeySQL = `
SELECT object_key
FROM share_images
WHERE share_id = $1 AND seq = 0`

// PrimaryKeyByShareID returns the seq-0 object key. A share without images is
// not an error; the snapshot just carries no key.
func (r *ShareImageRepository) PrimaryKeyByShareID(ctx context.Context, dbtx db.DBTX, shareID uuid.UUID) (*string, error) {
	var key string
	err := dbtx.QueryRow(ctx, selectPrimaryImageKeySQL, shareID).Scan(&key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find primary share image", err)
	}
	return &key, nil
}
