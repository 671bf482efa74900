package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/share"
	"foodloop-server/internal/domain/trade"
	reqdto "foodloop-server/internal/handler/dto/request"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/pkg/clock"
	"foodloop-server/internal/pkg/errs"
	"foodloop-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrWishNotFound            = errs.New("wish not found")
	ErrShareNotFound           = errs.New("share not found")
	ErrClaimNotFound           = errs.New("claim not found")
	ErrStoreNotFound           = errs.New("store not found")
	ErrWishClosed              = errs.New("wish is closed")
	ErrDuplicateClaim          = errs.New("claim already exists for this wish and share")
	ErrSelfClaim               = errs.New("cannot claim your own share")
	ErrNotResourceOwner        = errs.New("caller does not own this resource")
	ErrAcceptedClaimCancel     = errs.New("accepted claim must be canceled through its trade")
	ErrShareHasTradeHistory    = errs.New("share has trade history")
	ErrLockContention          = errs.New("row lock contention")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ClaimResult struct {
	ClaimID uuid.UUID
	WishID  uuid.UUID
	ShareID uuid.UUID
	Status  claim.Status
	TradeID *uuid.UUID
}

type ClaimCommands interface {
	CreateClaim(ctx context.Context, memberID, wishID, shareID uuid.UUID) (*ClaimResult, error)
	QuickClaim(ctx context.Context, memberID uuid.UUID, req reqdto.QuickClaimRequest) (*ClaimResult, error)
	AcceptClaim(ctx context.Context, memberID, claimID uuid.UUID) (*ClaimResult, error)
	RejectClaim(ctx context.Context, memberID, claimID uuid.UUID) (*ClaimResult, error)
	CancelClaim(ctx context.Context, memberID, claimID uuid.UUID) (*ClaimResult, error)
}

type claimUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClaimUseCase(uow shared.UnitOfWork, clock clock.Clock) ClaimCommands {
	return &claimUseCaseImpl{uow: uow, clock: clock}
}

func (u *claimUseCaseImpl) CreateClaim(ctx context.Context, memberID, wishID, shareID uuid.UUID) (*ClaimResult, error) {
	var result *ClaimResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		w, err := tx.Wishes().FindByID(ctx, tx.DB(), wishID)
		if err != nil {
			return translateRepoErr(err, ErrWishNotFound)
		}

		caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
		if err != nil {
			return translateRepoErr(err, ErrStoreNotFound)
		}
		if w.StoreID() != caller.ID() {
			return ErrNotResourceOwner
		}

		s, err := tx.Shares().FindByID(ctx, tx.DB(), shareID)
		if err != nil {
			return translateRepoErr(err, ErrShareNotFound)
		}
		if s.StoreID() == caller.ID() {
			return ErrSelfClaim
		}

		c, err := claim.New(w, s)
		if err != nil {
			if errors.Is(err, claim.ErrWishClosed) {
				return errs.Mark(err, ErrWishClosed)
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		if _, err := tx.Claims().Create(ctx, tx.DB(), c); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateClaim)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrShareNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = claimResultOf(c, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// QuickClaim claims a listed share without a pre-existing wish: the wish is
// derived from the share's item and created in the same transaction as the
// claim.
func (u *claimUseCaseImpl) QuickClaim(ctx context.Context, memberID uuid.UUID, req reqdto.QuickClaimRequest) (*ClaimResult, error) {
	var result *ClaimResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
		if err != nil {
			return translateRepoErr(err, ErrStoreNotFound)
		}

		s, err := tx.Shares().FindByID(ctx, tx.DB(), req.ShareID)
		if err != nil {
			return translateRepoErr(err, ErrShareNotFound)
		}
		if s.StoreID() == caller.ID() {
			return ErrSelfClaim
		}

		w, err := req.ToWish(caller.ID(), s.ItemName(), s.Brand())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if _, err := tx.Wishes().Create(ctx, tx.DB(), w); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		c, err := claim.New(w, s)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if _, err := tx.Claims().Create(ctx, tx.DB(), c); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = claimResultOf(c, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AcceptClaim is the critical section of the whole exchange. Lock order is
// claim first, then share; the stock check, the decrement, the status flip and
// the trade materialization all commit or roll back together.
func (u *claimUseCaseImpl) AcceptClaim(ctx context.Context, memberID, claimID uuid.UUID) (*ClaimResult, error) {
	var result *ClaimResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Claims().FindByIDForUpdate(ctx, tx.DB(), claimID)
		if err != nil {
			return translateRepoErr(err, ErrClaimNotFound)
		}

		// A claim already decided keeps its decision; replays observe the
		// first outcome instead of failing.
		if c.Status() != claim.StatusPending {
			result, err = u.decidedResult(ctx, tx, c)
			return err
		}

		s, err := tx.Shares().FindByIDForUpdate(ctx, tx.DB(), c.ShareID())
		if err != nil {
			return translateRepoErr(err, ErrShareNotFound)
		}

		caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
		if err != nil {
			return translateRepoErr(err, ErrStoreNotFound)
		}
		if s.StoreID() != caller.ID() {
			return ErrNotResourceOwner
		}

		now := u.clock.Now()

		// Insufficient stock is a normal outcome, not a failure: the claim is
		// rejected and the response reports it.
		if err := s.DecreaseQuantity(c.Quantity()); err != nil {
			if !errors.Is(err, share.ErrInsufficientStock) {
				return errs.Mark(err, ErrDomainValidation)
			}
			c.Reject(now)
			if err := tx.Claims().SaveStatus(ctx, tx.DB(), c); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			slog.Info("claim auto-rejected on insufficient stock",
				"claim_id", c.ID(), "share_id", s.ID(),
				"requested", c.Quantity(), "available", s.Quantity())
			result = claimResultOf(c, nil)
			return nil
		}

		if err := tx.Shares().SaveQuantity(ctx, tx.DB(), s); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		c.Accept(now)
		if err := tx.Claims().SaveStatus(ctx, tx.DB(), c); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		t, err := u.materializeTrade(ctx, tx, c, s)
		if err != nil {
			return err
		}

		tradeID := t.ID()
		result = claimResultOf(c, &tradeID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *claimUseCaseImpl) RejectClaim(ctx context.Context, memberID, claimID uuid.UUID) (*ClaimResult, error) {
	var result *ClaimResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Claims().FindByIDForUpdate(ctx, tx.DB(), claimID)
		if err != nil {
			return translateRepoErr(err, ErrClaimNotFound)
		}

		s, err := tx.Shares().FindByID(ctx, tx.DB(), c.ShareID())
		if err != nil {
			return translateRepoErr(err, ErrShareNotFound)
		}
		caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
		if err != nil {
			return translateRepoErr(err, ErrStoreNotFound)
		}
		if s.StoreID() != caller.ID() {
			return ErrNotResourceOwner
		}

		if c.Status() != claim.StatusPending {
			result, err = u.decidedResult(ctx, tx, c)
			return err
		}

		c.Reject(u.clock.Now())
		if err := tx.Claims().SaveStatus(ctx, tx.DB(), c); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = claimResultOf(c, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *claimUseCaseImpl) CancelClaim(ctx context.Context, memberID, claimID uuid.UUID) (*ClaimResult, error) {
	var result *ClaimResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Claims().FindByIDForUpdate(ctx, tx.DB(), claimID)
		if err != nil {
			return translateRepoErr(err, ErrClaimNotFound)
		}

		caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
		if err != nil {
			return translateRepoErr(err, ErrStoreNotFound)
		}
		if c.RequesterStoreID() != caller.ID() {
			return ErrNotResourceOwner
		}

		if err := c.Cancel(u.clock.Now()); err != nil {
			return errs.Mark(err, ErrAcceptedClaimCancel)
		}
		if err := tx.Claims().SaveStatus(ctx, tx.DB(), c); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = claimResultOf(c, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// materializeTrade creates the trade record for an accepted claim. Exactly one
// trade per claim: a concurrent winner's row surfaces as a duplicate key and
// is re-fetched instead of failing.
func (u *claimUseCaseImpl) materializeTrade(ctx context.Context, tx shared.Tx, c *claim.Claim, s *share.Share) (*trade.Trade, error) {
	w, err := tx.Wishes().FindByID(ctx, tx.DB(), c.WishID())
	if err != nil {
		return nil, translateRepoErr(err, ErrWishNotFound)
	}
	imageKey, err := tx.ShareImages().PrimaryKeyByShareID(ctx, tx.DB(), s.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	t, err := trade.FromAcceptedClaim(c, s, w, imageKey)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := tx.Trades().Create(ctx, tx.DB(), t); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return tx.Trades().FindByClaimID(ctx, tx.DB(), c.ID())
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return t, nil
}

// decidedResult reports the standing decision of a non-PENDING claim,
// including the trade when one was materialized.
func (u *claimUseCaseImpl) decidedResult(ctx context.Context, tx shared.Tx, c *claim.Claim) (*ClaimResult, error) {
	if c.Status() != claim.StatusAccepted {
		return claimResultOf(c, nil), nil
	}
	t, err := tx.Trades().FindByClaimID(ctx, tx.DB(), c.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return claimResultOf(c, nil), nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	tradeID := t.ID()
	return claimResultOf(c, &tradeID), nil
}

func claimResultOf(c *claim.Claim, tradeID *uuid.UUID) *ClaimResult {
	return &ClaimResult{
		ClaimID: c.ID(),
		WishID:  c.WishID(),
		ShareID: c.ShareID(),
		Status:  c.Status(),
		TradeID: tradeID,
	}
}

func translateRepoErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindContention):
		return errs.Mark(err, ErrLockContention)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
