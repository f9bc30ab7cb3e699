package menu_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type section struct {
	category string
	items    []string
}

func collect(seq func(func(*menu.Category, []*menu.Item) bool)) []section {
	var out []section
	for c, items := range seq {
		names := make([]string, 0, len(items))
		for _, i := range items {
			names = append(names, i.Name())
		}
		out = append(out, section{category: c.Name(), items: names})
	}
	return out
}

func TestListAvailable(t *testing.T) {
	drinks, err := menu.NewCategory(kernel.NewUUID(), "Drinks", "", 3)
	require.NoError(t, err)
	pizzas, err := menu.NewCategory(kernel.NewUUID(), "Pizzas", "", 1)
	require.NoError(t, err)
	desserts, err := menu.NewCategory(kernel.NewUUID(), "Desserts", "", 2)
	require.NoError(t, err)
	seasonal, err := menu.NewCategory(kernel.NewUUID(), "Seasonal", "", 0)
	require.NoError(t, err)
	seasonal.Deactivate()

	soda := newItem(t, drinks.ID(), "Soda", "2.00")
	beer := newItem(t, drinks.ID(), "Beer", "4.00")
	margherita := newItem(t, pizzas.ID(), "Margherita", "9.50")
	calzone := newItem(t, pizzas.ID(), "Calzone", "11.00")
	tiramisu := newItem(t, desserts.ID(), "Tiramisu", "6.00")
	tiramisu.SetAvailability(false)
	pumpkin := newItem(t, seasonal.ID(), "Pumpkin soup", "7.00")

	categories := []*menu.Category{drinks, pizzas, desserts, seasonal}
	items := []*menu.Item{soda, beer, margherita, calzone, tiramisu, pumpkin}

	t.Run("orders categories and items and skips empty sections", func(t *testing.T) {
		got := collect(menu.ListAvailable(categories, items))

		assert.Equal(t, []section{
			{category: "Pizzas", items: []string{"Calzone", "Margherita"}},
			{category: "Drinks", items: []string{"Beer", "Soda"}},
		}, got)
	})

	t.Run("is restartable", func(t *testing.T) {
		seq := menu.ListAvailable(categories, items)

		assert.Equal(t, collect(seq), collect(seq))
	})

	t.Run("is lazy", func(t *testing.T) {
		seq := menu.ListAvailable(categories, items)
		tiramisu.SetAvailability(true)
		defer tiramisu.SetAvailability(false)

		got := collect(seq)

		require.Len(t, got, 3)
		assert.Equal(t, "Desserts", got[1].category)
	})

	t.Run("stops when the consumer breaks", func(t *testing.T) {
		count := 0
		for range menu.ListAvailable(categories, items) {
			count++
			break
		}

		assert.Equal(t, 1, count)
	})

	t.Run("does not reorder the caller's slice", func(t *testing.T) {
		collect(menu.ListAvailable(categories, items))

		assert.Equal(t, "Drinks", categories[0].Name())
		assert.Equal(t, "Soda", items[0].Name())
	})

	t.Run("equal display order falls back to name", func(t *testing.T) {
		a, err := menu.NewCategory(kernel.NewUUID(), "Starters", "", 1)
		require.NoError(t, err)
		b, err := menu.NewCategory(kernel.NewUUID(), "Salads", "", 1)
		require.NoError(t, err)

		got := collect(menu.ListAvailable(
			[]*menu.Category{a, b},
			[]*menu.Item{newItem(t, a.ID(), "Bruschetta", "5.00"), newItem(t, b.ID(), "Caesar", "8.00")},
		))

		assert.Equal(t, "Salads", got[0].category)
		assert.Equal(t, "Starters", got[1].category)
	})
}
