//go:build unit

package claim_test

import (
	"testing"
	"time"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/share"
	"foodloop-server/internal/domain/shared"
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

func newTestWish(t *testing.T, quantity int32) *wish.Wish {
	t.Helper()
	w, err := wish.NewWish(uuid.New(), "need tomatoes", "tomato", nil, quantity, nil, testWindow(t))
	require.NoError(t, err)
	return w
}

func newTestShare(t *testing.T, quantity int32) *share.Share {
	t.Helper()
	s, err := share.NewShare(
		uuid.New(), "tomato", nil, quantity, nil,
		time.Now().AddDate(0, 0, 7), share.StorageRoomTemp, testWindow(t),
	)
	require.NoError(t, err)
	return s
}

func newPendingClaim(t *testing.T) *claim.Claim {
	t.Helper()
	c, err := claim.New(newTestWish(t, 3), newTestShare(t, 10))
	require.NoError(t, err)
	return c
}

func TestNewClaim(t *testing.T) {
	t.Run("copies requester and quantity from the wish", func(t *testing.T) {
		w := newTestWish(t, 3)
		s := newTestShare(t, 10)

		c, err := claim.New(w, s)
		require.NoError(t, err)

		assert.Equal(t, claim.StatusPending, c.Status())
		assert.Equal(t, w.StoreID(), c.RequesterStoreID())
		assert.Equal(t, w.Quantity(), c.Quantity())
		assert.Equal(t, w.ID(), c.WishID())
		assert.Equal(t, s.ID(), c.ShareID())
		assert.Nil(t, c.DecidedAt())
	})

	t.Run("closed wish cannot be claimed", func(t *testing.T) {
		w := newTestWish(t, 3)
		w.Close()

		_, err := claim.New(w, newTestShare(t, 10))
		assert.ErrorIs(t, err, claim.ErrWishClosed)
	})
}

func TestClaimAcceptReject(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("accept a pending claim", func(t *testing.T) {
		c := newPendingClaim(t)
		c.Accept(now)
		assert.Equal(t, claim.StatusAccepted, c.Status())
		require.NotNil(t, c.DecidedAt())
		assert.Equal(t, now, *c.DecidedAt())
	})

	t.Run("reject a pending claim", func(t *testing.T) {
		c := newPendingClaim(t)
		c.Reject(now)
		assert.Equal(t, claim.StatusRejected, c.Status())
	})

	t.Run("accept is a no-op on a decided claim", func(t *testing.T) {
		c := newPendingClaim(t)
		c.Reject(now)
		c.Accept(now.Add(time.Hour))
		assert.Equal(t, claim.StatusRejected, c.Status())
		assert.Equal(t, now, *c.DecidedAt())
	})

	t.Run("reject is a no-op on an accepted claim", func(t *testing.T) {
		c := newPendingClaim(t)
		c.Accept(now)
		c.Reject(now.Add(time.Hour))
		assert.Equal(t, claim.StatusAccepted, c.Status())
	})
}

func TestClaimCancel(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("pending claim cancels", func(t *testing.T) {
		c := newPendingClaim(t)
		require.NoError(t, c.Cancel(now))
		assert.Equal(t, claim.StatusCanceled, c.Status())
	})

	t.Run("accepted claim refuses direct cancel", func(t *testing.T) {
		c := newPendingClaim(t)
		c.Accept(now)
		err := c.Cancel(now.Add(time.Hour))
		assert.ErrorIs(t, err, claim.ErrCancelAcceptedDirectly)
		assert.Equal(t, claim.StatusAccepted, c.Status())
	})

	t.Run("cancel is idempotent on terminal claims", func(t *testing.T) {
		c := newPendingClaim(t)
		require.NoError(t, c.Cancel(now))
		require.NoError(t, c.Cancel(now.Add(time.Hour)))
		assert.Equal(t, now, *c.DecidedAt())

		r := newPendingClaim(t)
		r.Reject(now)
		require.NoError(t, r.Cancel(now.Add(time.Hour)))
		assert.Equal(t, claim.StatusRejected, r.Status())
	})
}

func TestClaimCancelForTrade(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("takes an accepted claim to canceled", func(t *testing.T) {
		c := newPendingClaim(t)
		c.Accept(now)
		c.CancelForTrade(now.Add(time.Hour))
		assert.Equal(t, claim.StatusCanceled, c.Status())
	})

	t.Run("leaves terminal claims untouched", func(t *testing.T) {
		c := newPendingClaim(t)
		c.Reject(now)
		c.CancelForTrade(now.Add(time.Hour))
		assert.Equal(t, claim.StatusRejected, c.Status())
		assert.Equal(t, now, *c.DecidedAt())
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, claim.StatusPending.IsTerminal())
	assert.False(t, claim.StatusAccepted.IsTerminal())
	assert.True(t, claim.StatusRejected.IsTerminal())
	assert.True(t, claim.StatusCanceled.IsTerminal())
}
