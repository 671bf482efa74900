package commands

import (
	"context"

	reqdto "foodloop-server/internal/handler/dto/request"
	"foodloop-server/internal/pkg/errs"
	"foodloop-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type WishCommands interface {
	CreateWish(ctx context.Context, memberID uuid.UUID, req reqdto.CreateWishRequest) (uuid.UUID, error)
}

type wishUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewWishUseCase(uow shared.UnitOfWork) WishCommands {
	return &wishUseCaseImpl{uow: uow}
}

func (u *wishUseCaseImpl) CreateWish(ctx context.Context, memberID uuid.UUID, req reqdto.CreateWishRequest) (uuid.UUID, error) {
	var wishID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		caller, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), memberID)
		if err != nil {
			return translateRepoErr(err, ErrStoreNotFound)
		}

		w, err := req.ToDomain(caller.ID())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Wishes().Create(ctx, tx.DB(), w)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		wishID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return wishID, nil
}
