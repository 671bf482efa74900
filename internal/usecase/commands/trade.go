package commands

import (
	"context"
	"log/slog"
	"time"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/trade"
	"foodloop-server/internal/pkg/clock"
	"foodloop-server/internal/pkg/errs"
	"foodloop-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTradeNotFound        = errs.New("trade not found")
	ErrCompletedTradeCancel = errs.New("completed trade cannot be canceled")
)

type TradeResult struct {
	TradeID     uuid.UUID
	ClaimID     uuid.UUID
	Status      trade.Status
	CompletedAt *time.Time
	CanceledAt  *time.Time
}

type TradeCommands interface {
	CompleteTrade(ctx context.Context, memberID, tradeID uuid.UUID) (*TradeResult, error)
	CancelTrade(ctx context.Context, memberID, tradeID uuid.UUID) (*TradeResult, error)
}

type tradeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTradeUseCase(uow shared.UnitOfWork, clock clock.Clock) TradeCommands {
	return &tradeUseCaseImpl{uow: uow, clock: clock}
}

// CompleteTrade closes the loop on a handover. The wish closes and both store
// counters move exactly once, gated on the MATCHED to COMPLETED transition
// actually happening; replays observe the completed trade unchanged.
func (u *tradeUseCaseImpl) CompleteTrade(ctx context.Context, memberID, tradeID uuid.UUID) (*TradeResult, error) {
	var result *TradeResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Trades().FindByIDForUpdate(ctx, tx.DB(), tradeID)
		if err != nil {
			return translateRepoErr(err, ErrTradeNotFound)
		}

		if err := u.authorizeParty(ctx, tx, t, memberID); err != nil {
			return err
		}

		if !t.Complete(u.clock.Now()) {
			result = tradeResultOf(t)
			return nil
		}

		if err := tx.Trades().SaveStatus(ctx, tx.DB(), t); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Wishes().Deactivate(ctx, tx.DB(), t.WishID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Stores().IncrementGiveTimes(ctx, tx.DB(), t.GiverStoreID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Stores().IncrementReceivedTimes(ctx, tx.DB(), t.ReceiverStoreID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slog.Info("trade completed",
			"trade_id", t.ID(), "wish_id", t.WishID(),
			"giver_store_id", t.GiverStoreID(), "receiver_store_id", t.ReceiverStoreID())
		result = tradeResultOf(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CancelTrade unwinds a matched trade: the claim goes to CANCELED and the
// reserved quantity returns to the share. Lock order is trade, claim, share.
// The restore is skipped when the claim is already CANCELED, so repeated
// cancels return stock at most once.
func (u *tradeUseCaseImpl) CancelTrade(ctx context.Context, memberID, tradeID uuid.UUID) (*TradeResult, error) {
	var result *TradeResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Trades().FindByIDForUpdate(ctx, tx.DB(), tradeID)
		if err != nil {
			return translateRepoErr(err, ErrTradeNotFound)
		}

		if err := u.authorizeParty(ctx, tx, t, memberID); err != nil {
			return err
		}

		wasCanceled := t.Status() == trade.StatusCanceled
		if err := t.Cancel(u.clock.Now()); err != nil {
			return errs.Mark(err, ErrCompletedTradeCancel)
		}
		if wasCanceled {
			result = tradeResultOf(t)
			return nil
		}

		c, err := tx.Claims().FindByIDForUpdate(ctx, tx.DB(), t.ClaimID())
		if err != nil {
			return translateRepoErr(err, ErrClaimNotFound)
		}

		if c.Status() != claim.StatusCanceled {
			s, err := tx.Shares().FindByIDForUpdate(ctx, tx.DB(), t.ShareID())
			if err != nil {
				return translateRepoErr(err, ErrShareNotFound)
			}
			if err := s.IncreaseQuantity(t.Quantity()); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := tx.Shares().SaveQuantity(ctx, tx.DB(), s); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			c.CancelForTrade(u.clock.Now())
			if err := tx.Claims().SaveStatus(ctx, tx.DB(), c); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Trades().SaveStatus(ctx, tx.DB(), t); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slog.Info("trade canceled",
			"trade_id", t.ID(), "claim_id", t.ClaimID(),
			"share_id", t.ShareID(), "restored_quantity", t.Quantity())
		result = tradeResultOf(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Both parties of a trade may complete or cancel it.
func (u *tradeUseCaseImpl) authorizeParty(ctx context.Context, tx shared.Tx, t *trade.Trade, memberID uuid.UUID) error {
	caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
	if err != nil {
		return translateRepoErr(err, ErrStoreNotFound)
	}
	if caller.ID() != t.GiverStoreID() && caller.ID() != t.ReceiverStoreID() {
		return ErrNotResourceOwner
	}
	return nil
}

func tradeResultOf(t *trade.Trade) *TradeResult {
	return &TradeResult{
		TradeID:     t.ID(),
		ClaimID:     t.ClaimID(),
		Status:      t.Status(),
		CompletedAt: t.CompletedAt(),
		CanceledAt:  t.CanceledAt(),
	}
}
