package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	view, err := s.handlers.GetCart.Handle(ctx.Request().Context(), queries.NewGetCartQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCart(view))
}

// AddToCart handles POST /api/v1/cart/items. Adding an item already in the
// cart increments its quantity.
func (s *Server) AddToCart(ctx echo.Context) error {
	var req AddToCartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	cmd, err := commands.NewAddToCartCommand(actorFrom(ctx), kernelUUID(req.ItemID))
	if err != nil {
		return err
	}
	c, err := s.handlers.AddToCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCart(queries.NewCartView(c)))
}

// SetCartInstructions handles PUT /api/v1/cart/items/:id/instructions.
func (s *Server) SetCartInstructions(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req InstructionsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	cmd, err := commands.NewSetCartInstructionsCommand(actorFrom(ctx), id, req.Instructions)
	if err != nil {
		return err
	}
	c, err := s.handlers.SetCartInstructions.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCart(queries.NewCartView(c)))
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	if err := s.handlers.ClearCart.Handle(ctx.Request().Context(), commands.NewClearCartCommand(actorFrom(ctx))); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
