package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// SubmitOrder handles POST /api/v1/orders. The caller's cart becomes a
// pending order and the cart is emptied.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	cmd, err := commands.NewSubmitOrderCommand(actorFrom(ctx), kernel.NewUUID(), req.TableRef, req.Notes)
	if err != nil {
		return err
	}
	o, err := s.handlers.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderView(o)))
}

// ListOrders handles GET /api/v1/orders?status=. Staff see every order,
// clients their own.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorFrom(ctx), ctx.QueryParam("status"))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	view, err := s.getOrder(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(actorFrom(ctx), id)
	if err != nil {
		return err
	}
	o, err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Cancelling a cancelled
// order succeeds with changed=false.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actorFrom(ctx), id)
	if err != nil {
		return err
	}
	resp, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, CancelResult{
		Order:   toOrder(queries.NewOrderView(resp.Order)),
		Changed: resp.Changed,
	})
}

func (s *Server) getOrder(ctx echo.Context) (queries.OrderView, error) {
	id, err := pathID(ctx)
	if err != nil {
		return queries.OrderView{}, err
	}
	query, err := queries.NewGetOrderQuery(actorFrom(ctx), id)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
}

func statusCounts(counts map[order.Status]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for status, n := range counts {
		out[status.String()] = n
	}
	return out
}
