//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaimViewRepo struct {
	sent     []*queries.SentClaimItem
	received []*queries.ReceivedClaimItem

	gotAfterTime *time.Time
	gotAfterID   *uuid.UUID
	gotLimit     int32
}

func (r *fakeClaimViewRepo) FindSentByOwner(_ context.Context, _ uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.SentClaimItem, error) {
	r.gotAfterTime = afterTime
	r.gotAfterID = afterID
	r.gotLimit = limit
	if int(limit) < len(r.sent) {
		return r.sent[:limit], nil
	}
	return r.sent, nil
}

func (r *fakeClaimViewRepo) FindReceivedByOwner(_ context.Context, _ uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.ReceivedClaimItem, error) {
	r.gotAfterTime = afterTime
	r.gotAfterID = afterID
	r.gotLimit = limit
	if int(limit) < len(r.received) {
		return r.received[:limit], nil
	}
	return r.received, nil
}

func sentItems(n int) []*queries.SentClaimItem {
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	items := make([]*queries.SentClaimItem, n)
	for i := range items {
		items[i] = &queries.SentClaimItem{
			ClaimID:   uuid.New(),
			Status:    "PENDING",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestListSent(t *testing.T) {
	t.Run("a full page carries a cursor to the next", func(t *testing.T) {
		repo := &fakeClaimViewRepo{sent: sentItems(4)}
		q := queries.NewClaimQueries(repo)

		items, next, err := q.ListSent(context.Background(), uuid.New(), nil, 3)
		require.NoError(t, err)

		assert.Len(t, items, 3)
		require.NotNil(t, next)
		assert.Equal(t, int32(4), repo.gotLimit)

		// The cursor points at the last returned row
		cursorTime, cursorID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[2].ClaimID, cursorID)
		assert.Equal(t, items[2].CreatedAt.UnixMicro(), cursorTime.UnixMicro())
	})

	t.Run("a short page has no next cursor", func(t *testing.T) {
		repo := &fakeClaimViewRepo{sent: sentItems(2)}
		q := queries.NewClaimQueries(repo)

		items, next, err := q.ListSent(context.Background(), uuid.New(), nil, 3)
		require.NoError(t, err)

		assert.Len(t, items, 2)
		assert.Nil(t, next)
	})

	t.Run("cursor decodes into keyset bounds", func(t *testing.T) {
		repo := &fakeClaimViewRepo{}
		q := queries.NewClaimQueries(repo)

		id := uuid.New()
		at := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
		after := &queries.Cursor{After: queries.EncodeAfterCursor(at, id)}

		_, _, err := q.ListSent(context.Background(), uuid.New(), after, 10)
		require.NoError(t, err)

		require.NotNil(t, repo.gotAfterTime)
		require.NotNil(t, repo.gotAfterID)
		assert.Equal(t, at.UnixMicro(), repo.gotAfterTime.UnixMicro())
		assert.Equal(t, id, *repo.gotAfterID)
	})

	t.Run("invalid cursor fails before hitting the repo", func(t *testing.T) {
		repo := &fakeClaimViewRepo{}
		q := queries.NewClaimQueries(repo)

		_, _, err := q.ListSent(context.Background(), uuid.New(), &queries.Cursor{After: "garbage"}, 10)
		assert.Error(t, err)
		assert.Zero(t, repo.gotLimit)
	})
}

func TestListReceived(t *testing.T) {
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	items := make([]*queries.ReceivedClaimItem, 3)
	for i := range items {
		items[i] = &queries.ReceivedClaimItem{
			ClaimID:   uuid.New(),
			Status:    "PENDING",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}

	repo := &fakeClaimViewRepo{received: items}
	q := queries.NewClaimQueries(repo)

	got, next, err := q.ListReceived(context.Background(), uuid.New(), nil, 2)
	require.NoError(t, err)

	assert.Len(t, got, 2)
	require.NotNil(t, next)
	assert.Equal(t, int32(3), repo.gotLimit)
}
