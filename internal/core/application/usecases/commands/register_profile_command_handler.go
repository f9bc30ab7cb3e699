package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

// RegisterProfileCommandHandler stores the caller's profile. Registering
// twice returns the existing profile unchanged.
type RegisterProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterProfileCommandHandler(uowFactory UserUoWFactory) RegisterProfileCommandHandler {
	return RegisterProfileCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterProfileCommandHandler) Handle(ctx context.Context, cmd RegisterProfileCommand) (*user.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	actor := cmd.Actor()
	if err := actor.UserID.Validate(); err != nil {
		return nil, errs.NewForbiddenError(err)
	}

	profile, err := user.NewProfile(actor.UserID, cmd.Contact(), user.RoleClient, time.Now())
	if err != nil {
		return nil, validation(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	existing, err := repo.Get(ctx, actor.UserID)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, profile); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}
