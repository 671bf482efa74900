//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"foodloop-server/internal/pkg/objecturl"
	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTradeViewRepo struct {
	given    []*queries.GivenTradeItem
	received []*queries.ReceivedTradeItem

	gotAfterTime *time.Time
	gotAfterID   *uuid.UUID
	gotLimit     int32
}

func (r *fakeTradeViewRepo) FindDetailByID(_ context.Context, _ uuid.UUID) (*queries.TradeDetailRow, error) {
	return nil, nil
}

func (r *fakeTradeViewRepo) FindGivenByOwner(_ context.Context, _ uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.GivenTradeItem, error) {
	r.gotAfterTime = afterTime
	r.gotAfterID = afterID
	r.gotLimit = limit
	if int(limit) < len(r.given) {
		return r.given[:limit], nil
	}
	return r.given, nil
}

func (r *fakeTradeViewRepo) FindReceivedByOwner(_ context.Context, _ uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.ReceivedTradeItem, error) {
	r.gotAfterTime = afterTime
	r.gotAfterID = afterID
	r.gotLimit = limit
	if int(limit) < len(r.received) {
		return r.received[:limit], nil
	}
	return r.received, nil
}

func givenItems(n int) []*queries.GivenTradeItem {
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	key := "shares/primary.jpg"
	items := make([]*queries.GivenTradeItem, n)
	for i := range items {
		items[i] = &queries.GivenTradeItem{
			TradeID:         uuid.New(),
			Status:          "COMPLETED",
			PrimaryImageKey: &key,
			CreatedAt:       base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func newTradeQueries(repo *fakeTradeViewRepo) queries.TradeQueries {
	return queries.NewTradeQueries(repo, objecturl.NewResolver("https://cdn.example.test"))
}

func TestListGiven(t *testing.T) {
	t.Run("a full page carries a cursor and resolved image URLs", func(t *testing.T) {
		repo := &fakeTradeViewRepo{given: givenItems(4)}
		q := newTradeQueries(repo)

		items, next, err := q.ListGiven(context.Background(), uuid.New(), nil, 3)
		require.NoError(t, err)

		assert.Len(t, items, 3)
		require.NotNil(t, next)
		assert.Equal(t, int32(4), repo.gotLimit)

		require.NotNil(t, items[0].PrimaryImageURL)
		assert.Equal(t, "https://cdn.example.test/shares/primary.jpg", *items[0].PrimaryImageURL)

		cursorTime, cursorID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[2].TradeID, cursorID)
		assert.Equal(t, items[2].CreatedAt.UnixMicro(), cursorTime.UnixMicro())
	})

	t.Run("a short page has no next cursor", func(t *testing.T) {
		repo := &fakeTradeViewRepo{given: givenItems(2)}
		q := newTradeQueries(repo)

		items, next, err := q.ListGiven(context.Background(), uuid.New(), nil, 3)
		require.NoError(t, err)

		assert.Len(t, items, 2)
		assert.Nil(t, next)
	})

	t.Run("cursor decodes into keyset bounds", func(t *testing.T) {
		repo := &fakeTradeViewRepo{}
		q := newTradeQueries(repo)

		id := uuid.New()
		at := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
		after := &queries.Cursor{After: queries.EncodeAfterCursor(at, id)}

		_, _, err := q.ListGiven(context.Background(), uuid.New(), after, 10)
		require.NoError(t, err)

		require.NotNil(t, repo.gotAfterTime)
		require.NotNil(t, repo.gotAfterID)
		assert.Equal(t, at.UnixMicro(), repo.gotAfterTime.UnixMicro())
		assert.Equal(t, id, *repo.gotAfterID)
	})

	t.Run("invalid cursor fails before hitting the repo", func(t *testing.T) {
		repo := &fakeTradeViewRepo{}
		q := newTradeQueries(repo)

		_, _, err := q.ListGiven(context.Background(), uuid.New(), &queries.Cursor{After: "garbage"}, 10)
		assert.Error(t, err)
		assert.Zero(t, repo.gotLimit)
	})
}

func TestListReceivedTrades(t *testing.T) {
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	items := make([]*queries.ReceivedTradeItem, 3)
	for i := range items {
		items[i] = &queries.ReceivedTradeItem{
			TradeID:   uuid.New(),
			Status:    "MATCHED",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}

	repo := &fakeTradeViewRepo{received: items}
	q := newTradeQueries(repo)

	got, next, err := q.ListReceived(context.Background(), uuid.New(), nil, 2)
	require.NoError(t, err)

	assert.Len(t, got, 2)
	require.NotNil(t, next)
	assert.Equal(t, int32(3), repo.gotLimit)
	// Items without an image key resolve to no URL
	assert.Nil(t, got[0].PrimaryImageURL)
}
