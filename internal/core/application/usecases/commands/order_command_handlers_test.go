package commands_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"restaurant/internal/adapters/out/redis/cartstore"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	client := newActor(user.RoleClient)
	margherita := newMenuItem(t, "Margherita", "9.50")
	c := newCartWith(t, client.UserID, margherita, margherita, newMenuItem(t, "Soda", "2.00"))
	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(client, orderID, "T4", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	carts := new(MockCartStore)
	mock.InOrder(
		carts.On("Take", ctx, client.UserID).Return(c, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow}, carts, services.NewAccessPolicy())
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, orderID.IsEqual(o.ID()))
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, "21.00", o.Total().String())
	assert.Len(t, o.Items(), 2)
	assert.True(t, c.IsEmpty())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	carts.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	client := newActor(user.RoleClient)
	cmd, err := commands.NewSubmitOrderCommand(client, kernel.NewUUID(), "", "")
	require.NoError(t, err)

	uow := new(MockUoW)
	carts := new(MockCartStore)
	carts.On("Take", ctx, client.UserID).Return(newCartWith(t, client.UserID), nil).Once()

	h := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow}, carts, services.NewAccessPolicy())
	o, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Nil(t, o)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_CommitErrorRestoresCart(t *testing.T) {
	ctx := t.Context()
	client := newActor(user.RoleClient)
	c := newCartWith(t, client.UserID, newMenuItem(t, "Soda", "2.00"))
	cmd, err := commands.NewSubmitOrderCommand(client, kernel.NewUUID(), "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	carts := new(MockCartStore)
	mock.InOrder(
		carts.On("Take", ctx, client.UserID).Return(c, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		carts.On("Save", mock.Anything, c).Return(nil).Once(),
	)

	h := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow}, carts, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.False(t, c.IsEmpty())
	carts.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ConcurrentSubmitsCreateOneOrder(t *testing.T) {
	ctx := t.Context()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	carts := cartstore.NewRedisCartStore(client, time.Hour)

	customer := newActor(user.RoleClient)
	require.NoError(t, carts.Save(ctx, newCartWith(t, customer.UserID, newMenuItem(t, "Soda", "2.00"))))

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)

	h := commands.NewSubmitOrderCommandHandler(orderUoWFactory{uow}, carts, services.NewAccessPolicy())

	const submits = 2
	results := make([]error, submits)
	var wg sync.WaitGroup
	for i := range submits {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewSubmitOrderCommand(customer, kernel.NewUUID(), "", "")
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = h.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	var succeeded, empty int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, cart.ErrEmptyCart):
			empty++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, empty)
	repo.AssertNumberOfCalls(t, "Add", 1)

	left, err := carts.Load(ctx, customer.UserID)
	require.NoError(t, err)
	assert.True(t, left.IsEmpty())
}

func TestSubmitOrderCommandHandler_Handle_ServerIsForbidden(t *testing.T) {
	cmd, err := commands.NewSubmitOrderCommand(newActor(user.RoleServer), kernel.NewUUID(), "", "")
	require.NoError(t, err)
	carts := new(MockCartStore)

	h := commands.NewSubmitOrderCommandHandler(orderUoWFactory{new(MockUoW)}, carts, services.NewAccessPolicy())
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	carts.AssertNotCalled(t, "Take", mock.Anything, mock.Anything)
}

func TestAdvanceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrderFor(t, kernel.NewUUID())
	before := o.UpdatedAt()
	cmd, err := commands.NewAdvanceOrderCommand(newActor(user.RoleServer), o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAdvanceOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
	advanced, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, advanced.Status())
	assert.False(t, advanced.UpdatedAt().Before(before))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_PaidOrder(t *testing.T) {
	ctx := t.Context()
	o := newOrderFor(t, kernel.NewUUID())
	for range 5 {
		require.NoError(t, o.Advance(o.UpdatedAt()))
	}
	cmd, err := commands.NewAdvanceOrderCommand(newActor(user.RoleAdmin), o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAdvanceOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAdvanceOrderCommandHandler_Handle_ClientIsForbidden(t *testing.T) {
	client := newActor(user.RoleClient)

	for _, o := range []*order.Order{newOrderFor(t, kernel.NewUUID()), newOrderFor(t, client.UserID)} {
		cmd, err := commands.NewAdvanceOrderCommand(client, o.ID())
		require.NoError(t, err)
		uow := new(MockUoW)

		h := commands.NewAdvanceOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	}
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("client cancels own order", func(t *testing.T) {
		ctx := t.Context()
		client := newActor(user.RoleClient)
		o := newOrderFor(t, client.UserID)
		cmd, err := commands.NewCancelOrderCommand(client, o.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			repo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
		resp, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, resp.Changed)
		assert.Equal(t, order.Cancelled, resp.Order.Status())
		uow.AssertExpectations(t)
	})

	t.Run("client cancelling another customer's order is forbidden", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderFor(t, kernel.NewUUID())
		cmd, err := commands.NewCancelOrderCommand(newActor(user.RoleClient), o.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("client probing an unknown order is forbidden", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewCancelOrderCommand(newActor(user.RoleClient), id)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String()))

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("staff see not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewCancelOrderCommand(newActor(user.RoleServer), id)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String()))

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("cancelling a cancelled order is a no-op", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderFor(t, kernel.NewUUID())
		_, err := o.Cancel(o.UpdatedAt())
		require.NoError(t, err)
		cancelledAt := o.UpdatedAt()
		cmd, err := commands.NewCancelOrderCommand(newActor(user.RoleServer), o.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
		resp, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, resp.Changed)
		assert.Equal(t, cancelledAt, resp.Order.UpdatedAt())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("cancelling a paid order fails", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderFor(t, kernel.NewUUID())
		for range 5 {
			require.NoError(t, o.Advance(o.UpdatedAt()))
		}
		cmd, err := commands.NewCancelOrderCommand(newActor(user.RoleAdmin), o.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, services.NewAccessPolicy())
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})
}
