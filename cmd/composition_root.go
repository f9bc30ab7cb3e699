package cmd

import (
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/redis/cartstore"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	carts      ports.CartStore
	publisher  ports.EventPublisher
	policy     services.AccessPolicy
}

func NewCompositionRoot(
	config Config,
	logger *slog.Logger,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.EventPublisher,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carts:      cartstore.NewRedisCartStore(redisClient, config.CartTTL),
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

// Menu

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.menuUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.menuUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateSetItemAvailabilityCommandHandler() commands.SetItemAvailabilityCommandHandler {
	return commands.NewSetItemAvailabilityCommandHandler(c.menuUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateChangeItemPriceCommandHandler() commands.ChangeItemPriceCommandHandler {
	return commands.NewChangeItemPriceCommandHandler(c.menuUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB, c.policy)
}

// Cart

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.menuUoWFactory(), c.carts, c.policy)
}

func (c *CompositionRoot) CreateSetCartInstructionsCommandHandler() commands.SetCartInstructionsCommandHandler {
	return commands.NewSetCartInstructionsCommandHandler(c.carts, c.policy)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.carts, c.policy)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts, c.policy)
}

// Orders

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.carts, c.policy)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateRelayOrderEventsCommandHandler() commands.RelayOrderEventsCommandHandler {
	return commands.NewRelayOrderEventsCommandHandler(c.outboxUoWFactory(), c.publisher)
}

// Users

func (c *CompositionRoot) CreateRegisterProfileCommandHandler() commands.RegisterProfileCommandHandler {
	return commands.NewRegisterProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	return commands.NewChangeUserRoleCommandHandler(c.userUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

// HTTP

// CreateHTTPHandlers wires every use case into the HTTP adapter. Command
// handlers have pointer receivers, hence the locals.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	createCategory := c.CreateCreateCategoryCommandHandler()
	updateCategory := c.CreateUpdateCategoryCommandHandler()
	createMenuItem := c.CreateCreateMenuItemCommandHandler()
	setItemAvailability := c.CreateSetItemAvailabilityCommandHandler()
	changeItemPrice := c.CreateChangeItemPriceCommandHandler()
	addToCart := c.CreateAddToCartCommandHandler()
	setCartInstructions := c.CreateSetCartInstructionsCommandHandler()
	clearCart := c.CreateClearCartCommandHandler()
	submitOrder := c.CreateSubmitOrderCommandHandler()
	advanceOrder := c.CreateAdvanceOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	registerProfile := c.CreateRegisterProfileCommandHandler()
	changeUserRole := c.CreateChangeUserRoleCommandHandler()

	return httpin.Handlers{
		CreateCategory:      &createCategory,
		UpdateCategory:      &updateCategory,
		CreateMenuItem:      &createMenuItem,
		SetItemAvailability: &setItemAvailability,
		ChangeItemPrice:     &changeItemPrice,
		AddToCart:           &addToCart,
		SetCartInstructions: &setCartInstructions,
		ClearCart:           &clearCart,
		SubmitOrder:         &submitOrder,
		AdvanceOrder:        &advanceOrder,
		CancelOrder:         &cancelOrder,
		RegisterProfile:     &registerProfile,
		ChangeUserRole:      &changeUserRole,

		GetMenu:      c.CreateGetMenuQueryHandler(),
		GetCart:      c.CreateGetCartQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListUsers:    c.CreateListUsersQueryHandler(),
		GetDashboard: c.CreateGetDashboardQueryHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.config.TicketBaseURL)
}

func (c *CompositionRoot) CreateAuthenticator() httpin.Authenticator {
	return httpin.NewAuthenticator([]byte(c.config.JWTSecret), c.config.JWTIssuer)
}

// Jobs

func (c *CompositionRoot) CreateOutboxRelayJob() (*jobs.OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOrderEventsCommand(c.config.OutboxRelayBatchSize)
	if err != nil {
		return nil, err
	}
	handler := c.CreateRelayOrderEventsCommandHandler()
	return jobs.NewOutboxRelayJob(&handler, cmd, c.config.OutboxRelaySchedule, c.config.OutboxRelayTimeout, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relay, err := c.CreateOutboxRelayJob()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(relay), nil
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
