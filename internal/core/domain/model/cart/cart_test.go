package cart_test

import (
	"strings"
	"testing"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, name, price string) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), kernel.NewUUID(), menu.ItemDetails{
		Name:               name,
		Price:              kernel.MustMoney(price),
		PreparationMinutes: 10,
	})
	require.NoError(t, err)
	return item
}

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.Validate())
		assert.True(t, c.IsEmpty())
		assert.Equal(t, "0.00", c.Total().String())
	})

	t.Run("requires customer", func(t *testing.T) {
		c, err := cart.NewCart(kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c *cart.Cart
		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("computes total of distinct lines", func(t *testing.T) {
		c := newCart(t)
		margherita := newItem(t, "Margherita", "9.50")
		soda := newItem(t, "Soda", "2.00")

		require.NoError(t, c.AddItem(margherita))
		require.NoError(t, c.AddItem(margherita))
		require.NoError(t, c.AddItem(soda))

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "Margherita", lines[0].Name)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "19.00", lines[0].Subtotal().String())
		assert.Equal(t, 1, lines[1].Quantity)
		assert.Equal(t, "21.00", c.Total().String())
	})

	t.Run("keeps price captured on first addition", func(t *testing.T) {
		c := newCart(t)
		item := newItem(t, "Lasagna", "12.00")
		require.NoError(t, c.AddItem(item))

		require.NoError(t, item.ChangePrice(kernel.MustMoney("14.00")))
		require.NoError(t, c.AddItem(item))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "12.00", lines[0].UnitPrice.String())
		assert.Equal(t, "24.00", c.Total().String())
	})

	t.Run("rejects unavailable item and leaves cart unchanged", func(t *testing.T) {
		c := newCart(t)
		soda := newItem(t, "Soda", "2.00")
		require.NoError(t, c.AddItem(soda))
		tiramisu := newItem(t, "Tiramisu", "6.00")
		tiramisu.SetAvailability(false)

		err := c.AddItem(tiramisu)

		require.ErrorIs(t, err, cart.ErrItemUnavailable)
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, "2.00", c.Total().String())
	})

	t.Run("rejects unconstructed item", func(t *testing.T) {
		c := newCart(t)

		require.ErrorIs(t, c.AddItem(nil), menu.ErrItemIsNotConstructed)
		assert.True(t, c.IsEmpty())
	})

	t.Run("sums exactly without float drift", func(t *testing.T) {
		c := newCart(t)
		a := newItem(t, "Espresso", "0.10")
		b := newItem(t, "Biscotti", "0.20")

		require.NoError(t, c.AddItem(a))
		require.NoError(t, c.AddItem(b))

		assert.True(t, c.Total().IsEqual(kernel.MustMoney("0.30")))
	})
}

func TestCart_SetInstructions(t *testing.T) {
	t.Run("attaches to existing line", func(t *testing.T) {
		c := newCart(t)
		item := newItem(t, "Margherita", "9.50")
		require.NoError(t, c.AddItem(item))

		require.NoError(t, c.SetInstructions(item.ID(), "  no basil "))

		assert.Equal(t, "no basil", c.Lines()[0].Instructions)
	})

	t.Run("unknown line", func(t *testing.T) {
		c := newCart(t)

		require.ErrorIs(t, c.SetInstructions(kernel.NewUUID(), "extra hot"), errs.ErrObjectNotFound)
	})

	t.Run("too long", func(t *testing.T) {
		c := newCart(t)
		item := newItem(t, "Margherita", "9.50")
		require.NoError(t, c.AddItem(item))

		err := c.SetInstructions(item.ID(), strings.Repeat("x", cart.MaxInstructionsLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Empty(t, c.Lines()[0].Instructions)
	})
}

func TestCart_Clear(t *testing.T) {
	c := newCart(t)
	require.NoError(t, c.AddItem(newItem(t, "Soda", "2.00")))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "0.00", c.Total().String())
}

func TestCart_LinesIsACopy(t *testing.T) {
	c := newCart(t)
	require.NoError(t, c.AddItem(newItem(t, "Soda", "2.00")))

	lines := c.Lines()
	lines[0].Quantity = 50

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestRestoreCart(t *testing.T) {
	customerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	t.Run("restores lines", func(t *testing.T) {
		c, err := cart.RestoreCart(customerID, []cart.Line{
			{ItemID: itemID, Name: "Soda", Quantity: 3, UnitPrice: kernel.MustMoney("2.00")},
		})

		require.NoError(t, err)
		assert.True(t, customerID.IsEqual(c.CustomerID()))
		assert.Equal(t, "6.00", c.Total().String())
	})

	t.Run("rejects duplicated item", func(t *testing.T) {
		line := cart.Line{ItemID: itemID, Name: "Soda", Quantity: 1, UnitPrice: kernel.MustMoney("2.00")}

		_, err := cart.RestoreCart(customerID, []cart.Line{line, line})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		_, err := cart.RestoreCart(customerID, []cart.Line{
			{ItemID: itemID, Name: "Soda", Quantity: 0, UnitPrice: kernel.MustMoney("2.00")},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
