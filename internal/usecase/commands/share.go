package commands

import (
	"context"

	reqdto "foodloop-server/internal/handler/dto/request"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/pkg/errs"
	"foodloop-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type ShareCommands interface {
	CreateShare(ctx context.Context, memberID uuid.UUID, req reqdto.CreateShareRequest) (uuid.UUID, error)
	DeleteShare(ctx context.Context, memberID, shareID uuid.UUID) error
}

type shareUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewShareUseCase(uow shared.UnitOfWork) ShareCommands {
	return &shareUseCaseImpl{uow: uow}
}

func (u *shareUseCaseImpl) CreateShare(ctx context.Context, memberID uuid.UUID, req reqdto.CreateShareRequest) (uuid.UUID, error) {
	var shareID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
		if err != nil {
			return translateRepoErr(err, ErrStoreNotFound)
		}

		s, err := req.ToDomain(caller.ID())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Shares().Create(ctx, tx.DB(), s, req.ImageKeys)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		shareID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return shareID, nil
}

// DeleteShare removes a share and its images; dependent pending claims go with
// it through the cascade. A share with trade history cannot be deleted: trades
// are append-only and their references block the cascade at the DB.
func (u *shareUseCaseImpl) DeleteShare(ctx context.Context, memberID, shareID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Shares().FindByIDForUpdate(ctx, tx.DB(), shareID)
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

		if err := tx.Shares().Delete(ctx, tx.DB(), shareID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrShareHasTradeHistory)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
