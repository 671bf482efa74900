//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/share"
	reqdto "foodloop-server/internal/handler/dto/request"
	"foodloop-server/internal/pkg/clock"
	"foodloop-server/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newClaimUseCase(f *fixture) commands.ClaimCommands {
	return commands.NewClaimUseCase(f.uow, clock.NewMockClock(testNow))
}

func createClaim(t *testing.T, f *fixture, uc commands.ClaimCommands) *commands.ClaimResult {
	t.Helper()
	result, err := uc.CreateClaim(context.Background(), f.receiverOwner, f.wish.ID(), f.share.ID())
	require.NoError(t, err)
	return result
}

func TestCreateClaim(t *testing.T) {
	t.Run("pending claim against another store's share", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		result := createClaim(t, f, uc)

		assert.Equal(t, claim.StatusPending, result.Status)
		assert.Equal(t, f.wish.ID(), result.WishID)
		assert.Equal(t, f.share.ID(), result.ShareID)
		assert.Nil(t, result.TradeID)
	})

	t.Run("second claim on the same pair conflicts", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		createClaim(t, f, uc)

		_, err := uc.CreateClaim(context.Background(), f.receiverOwner, f.wish.ID(), f.share.ID())
		assert.ErrorIs(t, err, commands.ErrDuplicateClaim)
	})

	t.Run("closed wish refuses claims", func(t *testing.T) {
		f := newFixture(t, 10)
		f.wish.Close()
		uc := newClaimUseCase(f)

		_, err := uc.CreateClaim(context.Background(), f.receiverOwner, f.wish.ID(), f.share.ID())
		assert.ErrorIs(t, err, commands.ErrWishClosed)
	})

	t.Run("only the wish owner claims for it", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		_, err := uc.CreateClaim(context.Background(), f.giverOwner, f.wish.ID(), f.share.ID())
		assert.ErrorIs(t, err, commands.ErrNotResourceOwner)
	})

	t.Run("claiming your own share is refused", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		ownShare, err := share.NewShare(
			f.receiverStore.ID(), "tomato", nil, 5, nil,
			time.Now().AddDate(0, 0, 7), share.StorageRoomTemp, fixtureWindow(t),
		)
		require.NoError(t, err)
		f.state().shares[ownShare.ID()] = ownShare

		_, err = uc.CreateClaim(context.Background(), f.receiverOwner, f.wish.ID(), ownShare.ID())
		assert.ErrorIs(t, err, commands.ErrSelfClaim)
	})

	t.Run("unknown wish reports not found", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		_, err := uc.CreateClaim(context.Background(), f.receiverOwner, uuid.New(), f.share.ID())
		assert.ErrorIs(t, err, commands.ErrWishNotFound)
	})
}

func TestQuickClaim(t *testing.T) {
	quickReq := func(shareID uuid.UUID) reqdto.QuickClaimRequest {
		return reqdto.QuickClaimRequest{
			ShareID:   shareID,
			Title:     "need this today",
			Quantity:  2,
			OpenTime:  "09:00",
			CloseTime: "18:00",
		}
	}

	t.Run("creates the wish and the claim together", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		result, err := uc.QuickClaim(context.Background(), f.receiverOwner, quickReq(f.share.ID()))
		require.NoError(t, err)

		assert.Equal(t, claim.StatusPending, result.Status)
		assert.Equal(t, f.share.ID(), result.ShareID)

		w := f.state().wishes[result.WishID]
		require.NotNil(t, w)
		assert.Equal(t, f.share.ItemName(), w.ItemName())
		assert.Equal(t, int32(2), w.Quantity())
		assert.Equal(t, f.receiverStore.ID(), w.StoreID())
	})

	t.Run("quick-claiming your own share is refused", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		_, err := uc.QuickClaim(context.Background(), f.giverOwner, quickReq(f.share.ID()))
		assert.ErrorIs(t, err, commands.ErrSelfClaim)
		assert.Empty(t, f.state().claims)
	})

	t.Run("unknown share reports not found", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		_, err := uc.QuickClaim(context.Background(), f.receiverOwner, quickReq(uuid.New()))
		assert.ErrorIs(t, err, commands.ErrShareNotFound)
	})

	t.Run("inverted window fails validation", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		req := quickReq(f.share.ID())
		req.OpenTime, req.CloseTime = "18:00", "09:00"

		_, err := uc.QuickClaim(context.Background(), f.receiverOwner, req)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, f.state().claims)
	})
}

func TestAcceptClaim(t *testing.T) {
	t.Run("accept decrements stock and materializes the trade", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		result, err := uc.AcceptClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)

		assert.Equal(t, claim.StatusAccepted, result.Status)
		require.NotNil(t, result.TradeID)
		assert.Equal(t, int32(7), f.share.Quantity())

		tr := f.state().trades[*result.TradeID]
		require.NotNil(t, tr)
		assert.Equal(t, created.ClaimID, tr.ClaimID())
		assert.Equal(t, f.wish.Quantity(), tr.Quantity())
	})

	t.Run("replayed accept observes the first outcome", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		first, err := uc.AcceptClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)

		second, err := uc.AcceptClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)

		assert.Equal(t, claim.StatusAccepted, second.Status)
		require.NotNil(t, second.TradeID)
		assert.Equal(t, *first.TradeID, *second.TradeID)

		// Stock moved once
		assert.Equal(t, int32(7), f.share.Quantity())
	})

	t.Run("insufficient stock auto-rejects without error", func(t *testing.T) {
		f := newFixture(t, 2) // wish asks for 3
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		result, err := uc.AcceptClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)

		assert.Equal(t, claim.StatusRejected, result.Status)
		assert.Nil(t, result.TradeID)
		assert.Equal(t, int32(2), f.share.Quantity())
		assert.Empty(t, f.state().trades)
	})

	t.Run("only the share owner accepts", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		_, err := uc.AcceptClaim(context.Background(), f.receiverOwner, created.ClaimID)
		assert.ErrorIs(t, err, commands.ErrNotResourceOwner)
		assert.Equal(t, int32(10), f.share.Quantity())
	})

	t.Run("unknown claim reports not found", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)

		_, err := uc.AcceptClaim(context.Background(), f.giverOwner, uuid.New())
		assert.ErrorIs(t, err, commands.ErrClaimNotFound)
	})
}

func TestRejectClaim(t *testing.T) {
	t.Run("pending claim rejects", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		result, err := uc.RejectClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)

		assert.Equal(t, claim.StatusRejected, result.Status)
		assert.Equal(t, int32(10), f.share.Quantity())
	})

	t.Run("accept after reject returns the rejection", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		_, err := uc.RejectClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)

		result, err := uc.AcceptClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)
		assert.Equal(t, claim.StatusRejected, result.Status)
		assert.Nil(t, result.TradeID)
		assert.Equal(t, int32(10), f.share.Quantity())
	})
}

func TestCancelClaim(t *testing.T) {
	t.Run("requester cancels a pending claim", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		result, err := uc.CancelClaim(context.Background(), f.receiverOwner, created.ClaimID)
		require.NoError(t, err)
		assert.Equal(t, claim.StatusCanceled, result.Status)
	})

	t.Run("accepted claim must go through its trade", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		_, err := uc.AcceptClaim(context.Background(), f.giverOwner, created.ClaimID)
		require.NoError(t, err)

		_, err = uc.CancelClaim(context.Background(), f.receiverOwner, created.ClaimID)
		assert.ErrorIs(t, err, commands.ErrAcceptedClaimCancel)
	})

	t.Run("only the requester cancels", func(t *testing.T) {
		f := newFixture(t, 10)
		uc := newClaimUseCase(f)
		created := createClaim(t, f, uc)

		_, err := uc.CancelClaim(context.Background(), f.giverOwner, created.ClaimID)
		assert.ErrorIs(t, err, commands.ErrNotResourceOwner)
	})
}
