package http

import (
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetDashboard handles GET /api/v1/dashboard?from=&to=. Both bounds are
// RFC 3339 timestamps; without them the current UTC day is reported.
func (s *Server) GetDashboard(ctx echo.Context) error {
	from, err := timeParam(ctx, "from")
	if err != nil {
		return err
	}
	to, err := timeParam(ctx, "to")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDashboardQuery(actorFrom(ctx), from, to)
	if err != nil {
		return err
	}
	d, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDashboard(d))
}

// timeParam binds an optional form-style query timestamp. A missing
// parameter yields the zero time.
func timeParam(ctx echo.Context, name string) (time.Time, error) {
	var t *time.Time
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &t); err != nil {
		return time.Time{}, invalidParam(name, err)
	}
	if t == nil {
		return time.Time{}, nil
	}
	return *t, nil
}
