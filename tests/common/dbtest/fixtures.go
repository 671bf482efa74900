//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type StoreFixture struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

// CreateTestStore inserts a store in the given dong with a default downtown
// location and 09:00-21:00 hours.
func CreateTestStore(t *testing.T, db DBLike, name, dong string) StoreFixture {
	t.Helper()

	storeID := uuid.New()
	ownerID := uuid.New()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO stores (id, owner_id, name, road_address, dong, latitude, longitude, phone_number, open_time, close_time)
		VALUES ($1, $2, $3, '1 Market St', $4, 37.5663, 126.9779, '02-000-0000', '09:00', '21:00')`,
		storeID, ownerID, name, dong)
	require.NoError(t, err)

	return StoreFixture{ID: storeID, OwnerID: ownerID}
}

func CreateTestShare(t *testing.T, db DBLike, storeID uuid.UUID, itemName string, quantity int32) uuid.UUID {
	t.Helper()

	shareID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO shares (id, store_id, item_name, quantity, expiration_date, storage_type, open_time, close_time)
		VALUES ($1, $2, $3, $4, CURRENT_DATE + 7, 'ROOM_TEMPERATURE', '09:00', '21:00')`,
		shareID, storeID, itemName, quantity)
	require.NoError(t, err)

	return shareID
}

func CreateTestWish(t *testing.T, db DBLike, storeID uuid.UUID, itemName string, quantity int32) uuid.UUID {
	t.Helper()

	wishID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO wishes (id, store_id, title, item_name, quantity, open_time, close_time, is_active)
		VALUES ($1, $2, $3, $4, $5, '09:00', '21:00', true)`,
		wishID, storeID, "need "+itemName, itemName, quantity)
	require.NoError(t, err)

	return wishID
}

func ShareQuantity(t *testing.T, db DBLike, shareID uuid.UUID) int32 {
	t.Helper()

	var quantity int32
	err := db.QueryRow(context.Background(), "SELECT quantity FROM shares WHERE id = $1", shareID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

func StoreCounters(t *testing.T, db DBLike, storeID uuid.UUID) (give, received int32) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT give_times, received_times FROM stores WHERE id = $1", storeID).Scan(&give, &received)
	require.NoError(t, err)
	return give, received
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
