package queries

import (
	"context"
	"strings"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists orders newest first. The status filter is
// applied in SQL; ownership is derived from the actor's permissions rather
// than trusted from input.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	var (
		filters []string
		args    []any
	)
	if !h.policy.Can(actor.Role, services.ViewAllOrders) {
		if err := h.policy.Authorize(actor, services.ViewOwnOrders); err != nil {
			return nil, err
		}
		filters = append(filters, "customer_id = ?")
		args = append(args, actor.UserID.Bytes())
	}
	if query.Status() != order.Unknown {
		filters = append(filters, "status = ?")
		args = append(args, query.Status().String())
	}

	orders, err := loadOrders(ctx, h.db, strings.Join(filters, " AND "), args...)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views, nil
}
