package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) AddCategory(ctx context.Context, c *menu.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockMenuRepository) UpdateCategory(ctx context.Context, c *menu.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockMenuRepository) GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Category), args.Error(1)
}

func (m *MockMenuRepository) AddItem(ctx context.Context, i *menu.Item) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockMenuRepository) UpdateItem(ctx context.Context, i *menu.Item) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockMenuRepository) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, p *user.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, p *user.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Load(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, customerID kernel.UUID) error {
	return m.Called(ctx, customerID).Error(0)
}

func (m *MockCartStore) Take(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

// Update applies fn to the cart registered as the first return value, the
// way a store without concurrent writers would.
func (m *MockCartStore) Update(
	ctx context.Context,
	customerID kernel.UUID,
	fn func(c *cart.Cart) error,
) (*cart.Cart, error) {
	args := m.Called(ctx, customerID, fn)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	c := args.Get(0).(*cart.Cart)
	if err := fn(c); err != nil {
		return nil, err
	}
	return c, nil
}

// MockUoW implements every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type menuUoWFactory struct{ uow *MockUoW }

func (f menuUoWFactory) Create() commands.MenuUoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type userUoWFactory struct{ uow *MockUoW }

func (f userUoWFactory) Create() commands.UserUoW { return f.uow }

type outboxUoWFactory struct{ uow *MockUoW }

func (f outboxUoWFactory) Create() commands.OutboxUoW { return f.uow }

func newActor(role user.Role) user.Actor {
	return user.Actor{UserID: kernel.NewUUID(), Role: role}
}

func newMenuItem(t *testing.T, name, price string) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), kernel.NewUUID(), menu.ItemDetails{
		Name:  name,
		Price: kernel.MustMoney(price),
	})
	require.NoError(t, err)
	return item
}

func newCartWith(t *testing.T, customerID kernel.UUID, items ...*menu.Item) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, c.AddItem(item))
	}
	return c
}

func newOrderFor(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrderFromCart(kernel.NewUUID(), newCartWith(t, customerID, newMenuItem(t, "Soda", "2.00")),
		"", "", time.Now())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
