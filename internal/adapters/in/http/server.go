package http

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandler is a use case without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handler is a use case returning a result: commands with a response and
// every query.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers are the application use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateCategory      CommandHandler[commands.CreateCategoryCommand]
	UpdateCategory      CommandHandler[commands.UpdateCategoryCommand]
	CreateMenuItem      CommandHandler[commands.CreateMenuItemCommand]
	SetItemAvailability CommandHandler[commands.SetItemAvailabilityCommand]
	ChangeItemPrice     CommandHandler[commands.ChangeItemPriceCommand]
	AddToCart           Handler[commands.AddToCartCommand, *cart.Cart]
	SetCartInstructions Handler[commands.SetCartInstructionsCommand, *cart.Cart]
	ClearCart           CommandHandler[commands.ClearCartCommand]
	SubmitOrder         Handler[commands.SubmitOrderCommand, *order.Order]
	AdvanceOrder        Handler[commands.AdvanceOrderCommand, *order.Order]
	CancelOrder         Handler[commands.CancelOrderCommand, commands.CancelOrderCommandResponse]
	RegisterProfile     Handler[commands.RegisterProfileCommand, *user.Profile]
	ChangeUserRole      Handler[commands.ChangeUserRoleCommand, *user.Profile]

	// Query handlers
	GetMenu      Handler[queries.GetMenuQuery, queries.GetMenuQueryResponse]
	GetCart      Handler[queries.GetCartQuery, queries.CartView]
	ListOrders   Handler[queries.ListOrdersQuery, []queries.OrderView]
	GetOrder     Handler[queries.GetOrderQuery, queries.OrderView]
	ListUsers    Handler[queries.ListUsersQuery, []queries.UserView]
	GetDashboard Handler[queries.GetDashboardQuery, queries.Dashboard]
}

// Server maps HTTP requests onto the application use cases. Handlers only
// translate; every authorization decision is made by the use case.
type Server struct {
	handlers  Handlers
	ticketURL string
}

// NewServer creates a server. ticketURL is the public base URL encoded into
// order ticket QR codes.
func NewServer(handlers Handlers, ticketURL string) *Server {
	return &Server{handlers: handlers, ticketURL: ticketURL}
}

// NewRouter builds the echo instance with every route, the error mapping and
// request logging. Everything under /api/v1 requires a bearer token and is
// validated against doc. The document itself is browsable under /swagger/.
func NewRouter(s *Server, auth Authenticator, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Use(middleware.Recover(), requestLogger(logger))

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", auth.Middleware(), validator)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu/categories", s.CreateCategory)
	api.PATCH("/menu/categories/:id", s.UpdateCategory)
	api.POST("/menu/items", s.CreateMenuItem)
	api.PUT("/menu/items/:id/availability", s.SetItemAvailability)
	api.PUT("/menu/items/:id/price", s.ChangeItemPrice)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddToCart)
	api.PUT("/cart/items/:id/instructions", s.SetCartInstructions)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/qrcode", s.GetOrderTicket)

	api.POST("/profile", s.RegisterProfile)
	api.GET("/users", s.ListUsers)
	api.PUT("/users/:id/role", s.ChangeUserRole)

	api.GET("/dashboard", s.GetDashboard)

	return e, nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
