// Package ports defines the contracts between the application core and the
// adapters: repositories, the unit of work, the cart session store and the
// event publisher.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuRepository persists categories and items of the menu catalog.
type MenuRepository interface {
	AddCategory(ctx context.Context, category *menu.Category) error

	// UpdateCategory fails with errs.ObjectNotFoundError for an unknown category.
	UpdateCategory(ctx context.Context, category *menu.Category) error

	// GetCategory fails with errs.ObjectNotFoundError for an unknown id.
	GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error)

	AddItem(ctx context.Context, item *menu.Item) error
	UpdateItem(ctx context.Context, item *menu.Item) error
	GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)
}
