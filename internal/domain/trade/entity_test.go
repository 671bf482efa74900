//go:build unit

package trade_test

import (
	"testing"
	"time"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/share"
	"foodloop-server/internal/domain/shared"
	"foodloop-server/internal/domain/trade"
	"foodloop-server/internal/domain/wish"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) shared.TimeWindow {
	t.Helper()
	open, err := shared.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	closeT, err := shared.ParseTimeOfDay("18:00")
	require.NoError(t, err)
	w, err := shared.NewTimeWindow(open, closeT)
	require.NoError(t, err)
	return w
}

func acceptedFixture(t *testing.T) (*claim.Claim, *share.Share, *wish.Wish) {
	t.Helper()
	w, err := wish.NewWish(uuid.New(), "need tomatoes", "tomato", nil, 3, nil, testWindow(t))
	require.NoError(t, err)
	brand := "greenfarm"
	s, err := share.NewShare(
		uuid.New(), "tomato", &brand, 10, nil,
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), share.StorageRoomTemp, testWindow(t),
	)
	require.NoError(t, err)
	c, err := claim.New(w, s)
	require.NoError(t, err)
	c.Accept(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	return c, s, w
}

func newMatchedTrade(t *testing.T) *trade.Trade {
	t.Helper()
	c, s, w := acceptedFixture(t)
	tr, err := trade.FromAcceptedClaim(c, s, w, nil)
	require.NoError(t, err)
	return tr
}

func TestFromAcceptedClaim(t *testing.T) {
	t.Run("snapshots the share at acceptance", func(t *testing.T) {
		c, s, w := acceptedFixture(t)
		imageKey := "shares/abc/0.jpg"

		tr, err := trade.FromAcceptedClaim(c, s, w, &imageKey)
		require.NoError(t, err)

		assert.Equal(t, trade.StatusMatched, tr.Status())
		assert.Equal(t, c.ID(), tr.ClaimID())
		assert.Equal(t, s.StoreID(), tr.GiverStoreID())
		assert.Equal(t, w.StoreID(), tr.ReceiverStoreID())
		assert.Equal(t, s.ItemName(), tr.ItemName())
		assert.Equal(t, c.Quantity(), tr.Quantity())
		require.NotNil(t, tr.Brand())
		assert.Equal(t, *s.Brand(), *tr.Brand())
		require.NotNil(t, tr.PrimaryImageKey())
		assert.Equal(t, imageKey, *tr.PrimaryImageKey())
	})

	t.Run("requires an accepted claim", func(t *testing.T) {
		w, err := wish.NewWish(uuid.New(), "need tomatoes", "tomato", nil, 3, nil, testWindow(t))
		require.NoError(t, err)
		s, err := share.NewShare(
			uuid.New(), "tomato", nil, 10, nil,
			time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), share.StorageRoomTemp, testWindow(t),
		)
		require.NoError(t, err)
		c, err := claim.New(w, s)
		require.NoError(t, err)

		_, err = trade.FromAcceptedClaim(c, s, w, nil)
		assert.ErrorIs(t, err, trade.ErrClaimNotAccepted)
	})
}

func TestTradeComplete(t *testing.T) {
	now := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

	t.Run("matched trade completes once", func(t *testing.T) {
		tr := newMatchedTrade(t)

		assert.True(t, tr.Complete(now))
		assert.Equal(t, trade.StatusCompleted, tr.Status())
		require.NotNil(t, tr.CompletedAt())
		assert.Equal(t, now, *tr.CompletedAt())

		// Replay changes nothing
		assert.False(t, tr.Complete(now.Add(time.Hour)))
		assert.Equal(t, now, *tr.CompletedAt())
	})

	t.Run("canceled trade never completes", func(t *testing.T) {
		tr := newMatchedTrade(t)
		require.NoError(t, tr.Cancel(now))

		assert.False(t, tr.Complete(now.Add(time.Hour)))
		assert.Equal(t, trade.StatusCanceled, tr.Status())
		assert.Nil(t, tr.CompletedAt())
	})
}

func TestTradeCancel(t *testing.T) {
	now := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

	t.Run("matched trade cancels", func(t *testing.T) {
		tr := newMatchedTrade(t)
		require.NoError(t, tr.Cancel(now))
		assert.Equal(t, trade.StatusCanceled, tr.Status())
		require.NotNil(t, tr.CanceledAt())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		tr := newMatchedTrade(t)
		require.NoError(t, tr.Cancel(now))
		require.NoError(t, tr.Cancel(now.Add(time.Hour)))
		assert.Equal(t, now, *tr.CanceledAt())
	})

	t.Run("completed trade refuses cancel", func(t *testing.T) {
		tr := newMatchedTrade(t)
		require.True(t, tr.Complete(now))

		err := tr.Cancel(now.Add(time.Hour))
		assert.ErrorIs(t, err, trade.ErrCancelCompletedTrade)
		assert.Equal(t, trade.StatusCompleted, tr.Status())
	})
}
