package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/domain/services"
)

type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory, policy services.AccessPolicy) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) (*user.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageUsers); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	profile, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	changed, err := profile.ChangeRole(cmd.Role(), time.Now())
	if err != nil {
		return nil, validation(err)
	}
	if !changed {
		return profile, nil
	}

	if err = repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}
