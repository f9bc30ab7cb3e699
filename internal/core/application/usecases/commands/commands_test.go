package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandConstructors_RejectZeroIDs(t *testing.T) {
	admin := newActor(user.RoleAdmin)
	var zero kernel.UUID

	constructors := map[string]func() error{
		"create category": func() error {
			_, err := commands.NewCreateCategoryCommand(admin, zero, "Pizzas", "", 0)
			return err
		},
		"update category": func() error {
			_, err := commands.NewUpdateCategoryCommand(admin, zero, "Pizzas", "", 0, true)
			return err
		},
		"create menu item": func() error {
			_, err := commands.NewCreateMenuItemCommand(admin, zero, commands.MenuItemInput{})
			return err
		},
		"set availability": func() error {
			_, err := commands.NewSetItemAvailabilityCommand(admin, zero, true)
			return err
		},
		"change price": func() error {
			_, err := commands.NewChangeItemPriceCommand(admin, zero, "1.00")
			return err
		},
		"add to cart": func() error {
			_, err := commands.NewAddToCartCommand(admin, zero)
			return err
		},
		"set instructions": func() error {
			_, err := commands.NewSetCartInstructionsCommand(admin, zero, "")
			return err
		},
		"submit": func() error {
			_, err := commands.NewSubmitOrderCommand(admin, zero, "", "")
			return err
		},
		"advance": func() error {
			_, err := commands.NewAdvanceOrderCommand(admin, zero)
			return err
		},
		"cancel": func() error {
			_, err := commands.NewCancelOrderCommand(admin, zero)
			return err
		},
		"change role": func() error {
			_, err := commands.NewChangeUserRoleCommand(admin, zero, "client")
			return err
		},
	}

	for name, construct := range constructors {
		t.Run(name, func(t *testing.T) {
			err := construct()

			require.ErrorIs(t, err, errs.ErrValidation)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestNewCreateMenuItemCommand_CopiesAllergens(t *testing.T) {
	allergens := []string{"gluten"}
	cmd, err := commands.NewCreateMenuItemCommand(newActor(user.RoleAdmin), kernel.NewUUID(), commands.MenuItemInput{
		Name:      "Margherita",
		Price:     "9.50",
		Allergens: allergens,
	})
	require.NoError(t, err)

	allergens[0] = "nuts"

	assert.Equal(t, []string{"gluten"}, cmd.Allergens())
	assert.Equal(t, "9.50", cmd.Price())
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"AddToCart", commands.AddToCartCommand{}.Validate, commands.ErrAddToCartCommandIsNotConstructed},
		{"AdvanceOrder", commands.AdvanceOrderCommand{}.Validate, commands.ErrAdvanceOrderCommandIsNotConstructed},
		{"CancelOrder", commands.CancelOrderCommand{}.Validate, commands.ErrCancelOrderCommandIsNotConstructed},
		{"ChangeItemPrice", commands.ChangeItemPriceCommand{}.Validate, commands.ErrChangeItemPriceCommandIsNotConstructed},
		{"ChangeUserRole", commands.ChangeUserRoleCommand{}.Validate, commands.ErrChangeUserRoleCommandIsNotConstructed},
		{"ClearCart", commands.ClearCartCommand{}.Validate, commands.ErrClearCartCommandIsNotConstructed},
		{"CreateCategory", commands.CreateCategoryCommand{}.Validate, commands.ErrCreateCategoryCommandIsNotConstructed},
		{"CreateMenuItem", commands.CreateMenuItemCommand{}.Validate, commands.ErrCreateMenuItemCommandIsNotConstructed},
		{"RegisterProfile", commands.RegisterProfileCommand{}.Validate, commands.ErrRegisterProfileCommandIsNotConstructed},
		{"RelayOrderEvents", commands.RelayOrderEventsCommand{}.Validate, commands.ErrRelayOrderEventsCommandIsNotConstructed},
		{"SetCartInstructions", commands.SetCartInstructionsCommand{}.Validate, commands.ErrSetCartInstructionsCommandIsNotConstructed},
		{"SetItemAvailability", commands.SetItemAvailabilityCommand{}.Validate, commands.ErrSetItemAvailabilityCommandIsNotConstructed},
		{"SubmitOrder", commands.SubmitOrderCommand{}.Validate, commands.ErrSubmitOrderCommandIsNotConstructed},
		{"UpdateCategory", commands.UpdateCategoryCommand{}.Validate, commands.ErrUpdateCategoryCommandIsNotConstructed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.validate(), tt.expected)
		})
	}
}
