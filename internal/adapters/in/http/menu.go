package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery(actorFrom(ctx))

	resp, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toMenu(resp))
}

// CreateCategory handles POST /api/v1/menu/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(actorFrom(ctx), id, req.Name, req.Description, req.DisplayOrder)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// UpdateCategory handles PATCH /api/v1/menu/categories/:id. The body carries
// the full category; an omitted active flag keeps the category listed.
func (s *Server) UpdateCategory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req CategoryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	cmd, err := commands.NewUpdateCategoryCommand(actorFrom(ctx), id, req.Name, req.Description, req.DisplayOrder, active)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateMenuItem handles POST /api/v1/menu/items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(actorFrom(ctx), id, req.toInput())
	if err != nil {
		return err
	}
	if err = s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// SetItemAvailability handles PUT /api/v1/menu/items/:id/availability.
func (s *Server) SetItemAvailability(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req AvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	cmd, err := commands.NewSetItemAvailabilityCommand(actorFrom(ctx), id, req.Available)
	if err != nil {
		return err
	}
	if err = s.handlers.SetItemAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeItemPrice handles PUT /api/v1/menu/items/:id/price.
func (s *Server) ChangeItemPrice(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req PriceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	cmd, err := commands.NewChangeItemPriceCommand(actorFrom(ctx), id, req.Price)
	if err != nil {
		return err
	}
	if err = s.handlers.ChangeItemPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// pathID binds the :id segment as a simple-style path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, invalidParam("id", err)
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, invalidParam("id", err)
	}
	return id, nil
}

// kernelUUID converts a body identifier. uuid.Nil maps to the zero UUID so
// the use case reports the field as required.
func kernelUUID(id uuid.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}
