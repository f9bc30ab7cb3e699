package queries

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order. Customers asking for an order that
// does not exist get the same Forbidden error as for someone else's order.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	actor := query.Actor()
	staff := h.policy.Can(actor.Role, services.ViewAllOrders)
	if !staff {
		if err := h.policy.Authorize(actor, services.ViewOwnOrders); err != nil {
			return OrderView{}, err
		}
	}

	orders, err := loadOrders(ctx, h.db, "id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		notFound := errs.NewObjectNotFoundError("order", query.OrderID().String())
		if staff {
			return OrderView{}, notFound
		}
		return OrderView{}, errs.NewForbiddenError(notFound)
	}

	if err = h.policy.AuthorizeView(actor, orders[0]); err != nil {
		return OrderView{}, err
	}
	return NewOrderView(orders[0]), nil
}
