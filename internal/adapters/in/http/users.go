package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterProfile handles POST /api/v1/profile. The profile takes the id of
// the token subject and always starts as a client.
func (s *Server) RegisterProfile(ctx echo.Context) error {
	var req ProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	cmd := commands.NewRegisterProfileCommand(actorFrom(ctx), req.toContact())
	p, err := s.handlers.RegisterProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toProfile(p))
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	views, err := s.handlers.ListUsers.Handle(ctx.Request().Context(), queries.NewListUsersQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toProfiles(views))
}

// ChangeUserRole handles PUT /api/v1/users/:id/role.
func (s *Server) ChangeUserRole(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req RoleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(err)
	}

	cmd, err := commands.NewChangeUserRoleCommand(actorFrom(ctx), id, req.Role)
	if err != nil {
		return err
	}
	p, err := s.handlers.ChangeUserRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toProfile(p))
}
