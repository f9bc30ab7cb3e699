package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned by Validate for a Category built without NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// Category groups menu items for display. Categories are ordered by
// displayOrder and are only ever deactivated, never removed.
type Category struct {
	id           kernel.UUID
	name         string
	description  string
	displayOrder int
	active       bool

	guard guard.ConstructorGuard
}

// NewCategory creates an active category.
//
// Example:
//
//	pizzas, err := menu.NewCategory(kernel.NewUUID(), "Pizzas", "Wood fired", 1)
func NewCategory(id kernel.UUID, name, description string, displayOrder int) (*Category, error) {
	return RestoreCategory(id, name, description, displayOrder, true)
}

// RestoreCategory rebuilds a category read back from storage.
func RestoreCategory(id kernel.UUID, name, description string, displayOrder int, active bool) (*Category, error) {
	c := &Category{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setDisplayOrder(displayOrder),
	); err != nil {
		return nil, err
	}
	c.description = strings.TrimSpace(description)

	return c, nil
}

// Validate ensures the category went through a constructor.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the category identifier.
func (c *Category) ID() kernel.UUID { return c.id }

// Name returns the display name.
func (c *Category) Name() string { return c.name }

// Description returns the category text.
func (c *Category) Description() string { return c.description }

// DisplayOrder returns the position of the category on the menu.
// Lower values come first.
func (c *Category) DisplayOrder() int { return c.displayOrder }

// IsActive reports whether the category is shown on the menu.
func (c *Category) IsActive() bool { return c.active }

// Update replaces the editable attributes. Nothing changes when any of them
// is invalid.
func (c *Category) Update(name, description string, displayOrder int) error {
	next := *c
	if err := errors.Join(next.setName(name), next.setDisplayOrder(displayOrder)); err != nil {
		return err
	}
	next.description = strings.TrimSpace(description)
	*c = next
	return nil
}

// Deactivate hides the category and its items from the available menu.
func (c *Category) Deactivate() {
	c.active = false
}

// Activate shows the category again.
func (c *Category) Activate() {
	c.active = true
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Category) setDisplayOrder(displayOrder int) error {
	if displayOrder < 0 {
		return errs.NewValueIsInvalidErrorWithCause("display_order", fmt.Errorf("%d is negative", displayOrder))
	}
	c.displayOrder = displayOrder
	return nil
}
