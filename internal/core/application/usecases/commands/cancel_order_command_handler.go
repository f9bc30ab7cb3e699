package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CancelOrderCommandResponse reports the order after the command and whether
// this call changed it. Cancelling an already cancelled order succeeds with
// Changed set to false.
type CancelOrderCommandResponse struct {
	Order   *order.Order
	Changed bool
}

// CancelOrderCommandHandler applies the cancel transition under the same row
// lock as AdvanceOrderCommandHandler.
//
// A client may cancel its own orders only. For such callers an unknown order
// is reported as forbidden too, so probing ids reveals nothing about other
// customers' orders.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderCommandResponse{}, err
	}
	actor := cmd.Actor()
	staff := h.policy.Can(actor.Role, services.CancelAnyOrder)
	if !staff {
		if err := h.policy.Authorize(actor, services.CancelOwnOrder); err != nil {
			return CancelOrderCommandResponse{}, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderCommandResponse{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		if !staff && errors.Is(err, errs.ErrObjectNotFound) {
			return CancelOrderCommandResponse{}, errs.NewForbiddenError(err)
		}
		return CancelOrderCommandResponse{}, err
	}

	if err = h.policy.AuthorizeCancel(actor, o); err != nil {
		return CancelOrderCommandResponse{}, err
	}

	changed, err := o.Cancel(time.Now())
	if err != nil {
		return CancelOrderCommandResponse{}, err
	}
	if !changed {
		return CancelOrderCommandResponse{Order: o, Changed: false}, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return CancelOrderCommandResponse{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CancelOrderCommandResponse{}, err
	}
	return CancelOrderCommandResponse{Order: o, Changed: true}, nil
}
