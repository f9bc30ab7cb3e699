package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// SubmitOrderCommandHandler creates an order from the caller's cart.
//
// The cart is taken from the session store before the transaction starts, so
// two concurrent submits of one cart produce one order and one
// cart.ErrEmptyCart. The order, its items and its submitted event are written
// in one transaction. When anything after the take fails the cart is put back
// and the caller can retry.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	carts      ports.CartStore
	policy     services.AccessPolicy
}

func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartStore,
	policy services.AccessPolicy,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{uowFactory: uowFactory, carts: carts, policy: policy}
}

func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.SubmitOwnOrder); err != nil {
		return nil, err
	}

	c, err := h.carts.Take(ctx, cmd.Actor().UserID)
	if err != nil {
		return nil, err
	}

	o, err := h.place(ctx, cmd, c)
	if err != nil {
		if !c.IsEmpty() {
			h.restore(ctx, c)
		}
		return nil, err
	}

	c.Clear()
	return o, nil
}

func (h *SubmitOrderCommandHandler) place(ctx context.Context, cmd SubmitOrderCommand, c *cart.Cart) (*order.Order, error) {
	o, err := order.NewOrderFromCart(cmd.OrderID(), c, cmd.TableRef(), cmd.Notes(), time.Now())
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

// restore puts a taken cart back. It runs on a context that outlives the
// request so a cancelled request does not lose the cart.
func (h *SubmitOrderCommandHandler) restore(ctx context.Context, c *cart.Cart) {
	_ = h.carts.Save(context.WithoutCancel(ctx), c)
}
