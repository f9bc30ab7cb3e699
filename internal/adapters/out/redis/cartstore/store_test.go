package cartstore_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"restaurant/internal/adapters/out/redis/cartstore"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*cartstore.RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cartstore.NewRedisCartStore(client, ttl), mr
}

func newItem(t *testing.T, name, price string) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), kernel.NewUUID(), menu.ItemDetails{
		Name:  name,
		Price: kernel.MustMoney(price),
	})
	require.NoError(t, err)
	return item
}

func TestRedisCartStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	customerID := kernel.NewUUID()

	c, err := store.Load(t.Context(), customerID)

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, customerID, c.CustomerID())
}

func TestRedisCartStore_SaveAndLoad(t *testing.T) {
	store, mr := newStore(t, 30*time.Minute)
	customerID := kernel.NewUUID()
	pizza := newItem(t, "Margherita", "9.50")
	water := newItem(t, "Water", "2.00")

	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(pizza))
	require.NoError(t, c.AddItem(pizza))
	require.NoError(t, c.AddItem(water))
	require.NoError(t, c.SetInstructions(pizza.ID(), "extra basil"))

	require.NoError(t, store.Save(t.Context(), c))

	loaded, err := store.Load(t.Context(), customerID)
	require.NoError(t, err)
	assert.Equal(t, "21.00", loaded.Total().String())
	lines := loaded.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, pizza.ID(), lines[0].ItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "extra basil", lines[0].Instructions)
	assert.Equal(t, "Water", lines[1].Name)

	assert.Equal(t, 30*time.Minute, mr.TTL("cart:"+customerID.String()))
}

func TestRedisCartStore_ExpiredCartIsEmpty(t *testing.T) {
	store, mr := newStore(t, time.Minute)
	customerID := kernel.NewUUID()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(newItem(t, "Soup", "5.00")))
	require.NoError(t, store.Save(t.Context(), c))

	mr.FastForward(2 * time.Minute)

	loaded, err := store.Load(t.Context(), customerID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestRedisCartStore_Delete(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	customerID := kernel.NewUUID()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(newItem(t, "Soup", "5.00")))
	require.NoError(t, store.Save(t.Context(), c))

	require.NoError(t, store.Delete(t.Context(), customerID))

	assert.False(t, mr.Exists("cart:"+customerID.String()))
	require.NoError(t, store.Delete(t.Context(), customerID), "deleting a missing cart is not an error")
}

func TestRedisCartStore_CorruptValue(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	customerID := kernel.NewUUID()
	require.NoError(t, mr.Set("cart:"+customerID.String(), "{not json"))

	_, err := store.Load(t.Context(), customerID)

	require.Error(t, err)
}

func TestRedisCartStore_SaveRejectsUnconstructedCart(t *testing.T) {
	store, _ := newStore(t, time.Hour)

	err := store.Save(t.Context(), &cart.Cart{})

	require.ErrorIs(t, err, cart.ErrCartIsNotConstructed)
}

func TestRedisCartStore_TakeRemovesCart(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	customerID := kernel.NewUUID()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(newItem(t, "Soup", "5.00")))
	require.NoError(t, store.Save(t.Context(), c))

	taken, err := store.Take(t.Context(), customerID)
	require.NoError(t, err)
	assert.Equal(t, "5.00", taken.Total().String())
	assert.False(t, mr.Exists("cart:"+customerID.String()))

	again, err := store.Take(t.Context(), customerID)
	require.NoError(t, err)
	assert.True(t, again.IsEmpty(), "a second take finds nothing")
}

func TestRedisCartStore_UpdateAppliesAndStores(t *testing.T) {
	store, mr := newStore(t, 30*time.Minute)
	customerID := kernel.NewUUID()
	soup := newItem(t, "Soup", "5.00")

	updated, err := store.Update(t.Context(), customerID, func(c *cart.Cart) error {
		return c.AddItem(soup)
	})
	require.NoError(t, err)
	assert.Equal(t, "5.00", updated.Total().String())

	loaded, err := store.Load(t.Context(), customerID)
	require.NoError(t, err)
	assert.Equal(t, "5.00", loaded.Total().String())
	assert.Equal(t, 30*time.Minute, mr.TTL("cart:"+customerID.String()))
}

func TestRedisCartStore_UpdateErrorWritesNothing(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	customerID := kernel.NewUUID()
	failure := errors.New("rejected")

	_, err := store.Update(t.Context(), customerID, func(c *cart.Cart) error {
		return failure
	})

	require.ErrorIs(t, err, failure)
	assert.False(t, mr.Exists("cart:"+customerID.String()))
}

func TestRedisCartStore_ConcurrentUpdatesKeepEveryLine(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	customerID := kernel.NewUUID()
	soup := newItem(t, "Soup", "5.00")

	const writers = 5
	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(t.Context(), customerID, func(c *cart.Cart) error {
				return c.AddItem(soup)
			})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	loaded, err := store.Load(t.Context(), customerID)
	require.NoError(t, err)
	require.Len(t, loaded.Lines(), 1)
	assert.Equal(t, writers, loaded.Lines()[0].Quantity)
}
