package menu

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned by Validate for an Item built without NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a dish or drink on the menu.
//
// Item follows these invariants:
//   - it references a category (existence is checked by the command creating it)
//   - name is not blank
//   - price is a constructed, non-negative Money
//   - preparation time in minutes is non-negative
//   - allergens form a set: trimmed, lower-cased, deduplicated and sorted
type Item struct {
	id                 kernel.UUID
	categoryID         kernel.UUID
	name               string
	description        string
	price              kernel.Money
	preparationMinutes int
	available          bool
	allergens          []string

	guard guard.ConstructorGuard
}

// ItemDetails carries the editable attributes of an item.
type ItemDetails struct {
	Name               string
	Description        string
	Price              kernel.Money
	PreparationMinutes int
	Allergens          []string
}

// NewItem creates an available item in categoryID.
func NewItem(id, categoryID kernel.UUID, details ItemDetails) (*Item, error) {
	return RestoreItem(id, categoryID, details, true)
}

// RestoreItem rebuilds an item read back from storage.
func RestoreItem(id, categoryID kernel.UUID, details ItemDetails, available bool) (*Item, error) {
	item := &Item{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setCategoryID(categoryID),
		item.setName(details.Name),
		item.setPrice(details.Price),
		item.setPreparationMinutes(details.PreparationMinutes),
	); err != nil {
		return nil, err
	}
	item.description = strings.TrimSpace(details.Description)
	item.allergens = normalizeAllergens(details.Allergens)

	return item, nil
}

// Validate ensures the item went through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// CategoryID returns the category the item is listed under.
func (i *Item) CategoryID() kernel.UUID { return i.categoryID }

// Name returns the display name.
func (i *Item) Name() string { return i.name }

// Description returns the menu text.
// Returns an empty string if the item has none.
func (i *Item) Description() string { return i.description }

// Price returns the current unit price. Carts capture it when the item is
// first added, so a later change does not reach them.
func (i *Item) Price() kernel.Money { return i.price }

// PreparationMinutes returns the kitchen estimate for one portion.
func (i *Item) PreparationMinutes() int { return i.preparationMinutes }

// IsAvailable reports whether the item can be added to a cart.
func (i *Item) IsAvailable() bool { return i.available }

// Allergens returns a copy of the allergen labels.
func (i *Item) Allergens() []string {
	return slices.Clone(i.allergens)
}

// SetAvailability toggles whether customers can add the item to a cart.
func (i *Item) SetAvailability(available bool) {
	i.available = available
}

// ChangePrice sets a new price. Carts and orders keep the price they captured.
func (i *Item) ChangePrice(price kernel.Money) error {
	return i.setPrice(price)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	i.id = id
	return nil
}

func (i *Item) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("category_id", err)
	}
	i.categoryID = categoryID
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	i.price = price
	return nil
}

func (i *Item) setPreparationMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("preparation_time", fmt.Errorf("%d is negative", minutes))
	}
	i.preparationMinutes = minutes
	return nil
}

func normalizeAllergens(labels []string) []string {
	set := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		set = append(set, label)
	}
	slices.Sort(set)
	return slices.Compact(set)
}
