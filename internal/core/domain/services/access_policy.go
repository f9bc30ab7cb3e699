package services

import (
	"fmt"
	"slices"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

// Permission names an operation a role may invoke.
type Permission int

const (
	PermissionUnknown Permission = iota
	ManageMenu
	ManageUsers
	BrowseMenu
	ManageOwnCart
	SubmitOwnOrder
	ViewOwnOrders
	ViewAllOrders
	AdvanceAnyOrder
	CancelOwnOrder
	CancelAnyOrder
)

func getPermissionStrings() map[Permission]string {
	return map[Permission]string{
		PermissionUnknown: "unknown",
		ManageMenu:        "manage_menu",
		ManageUsers:       "manage_users",
		BrowseMenu:        "browse_menu",
		ManageOwnCart:     "manage_own_cart",
		SubmitOwnOrder:    "submit_own_order",
		ViewOwnOrders:     "view_own_orders",
		ViewAllOrders:     "view_all_orders",
		AdvanceAnyOrder:   "advance_any_order",
		CancelOwnOrder:    "cancel_own_order",
		CancelAnyOrder:    "cancel_any_order",
	}
}

// String returns the permission name used in logs and error causes.
func (p Permission) String() string {
	if s, ok := getPermissionStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// AccessPolicy maps roles to the operations they may invoke. It is a pure
// function of its inputs and holds no state.
//
// Business rules:
//   - admin manages the menu and users and sees and moves every order
//   - server sees every order and moves it along or cancels it
//   - client browses, keeps a cart, submits, sees and cancels own orders
//   - a permission granted only for own orders also requires that the
//     caller is the order's customer
//
// Every denial is the same generic errs.ForbiddenError; the failed check is
// kept as the unexported cause for logs only.
type AccessPolicy struct{}

// NewAccessPolicy returns the role policy of the restaurant.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Permissions returns the permission set of role. Unknown roles get none.
func (AccessPolicy) Permissions(role user.Role) []Permission {
	switch role {
	case user.RoleAdmin:
		return []Permission{
			ManageMenu, ManageUsers, BrowseMenu, ViewAllOrders, AdvanceAnyOrder, CancelAnyOrder,
		}
	case user.RoleServer:
		return []Permission{BrowseMenu, ViewAllOrders, AdvanceAnyOrder, CancelAnyOrder}
	case user.RoleClient:
		return []Permission{
			BrowseMenu, ManageOwnCart, SubmitOwnOrder, ViewOwnOrders, CancelOwnOrder,
		}
	case user.RoleUnknown:
		return nil
	}
	return nil
}

// Can reports whether role holds permission.
func (p AccessPolicy) Can(role user.Role, permission Permission) bool {
	return slices.Contains(p.Permissions(role), permission)
}

// Authorize fails with a forbidden error unless actor's role holds permission.
func (p AccessPolicy) Authorize(actor user.Actor, permission Permission) error {
	if err := actor.Validate(); err != nil {
		return errs.NewForbiddenError(err)
	}
	if !p.Can(actor.Role, permission) {
		return errs.NewForbiddenError(fmt.Errorf("role %s lacks %s", actor.Role, permission))
	}
	return nil
}

// AuthorizeAdvance checks that actor may advance o. Only staff roles may.
func (p AccessPolicy) AuthorizeAdvance(actor user.Actor, o *order.Order) error {
	return p.authorizeOrder(actor, o, AdvanceAnyOrder, PermissionUnknown)
}

// AuthorizeCancel checks that actor may cancel o: staff cancel any order, a
// client only its own.
func (p AccessPolicy) AuthorizeCancel(actor user.Actor, o *order.Order) error {
	return p.authorizeOrder(actor, o, CancelAnyOrder, CancelOwnOrder)
}

// AuthorizeView checks that actor may read o.
func (p AccessPolicy) AuthorizeView(actor user.Actor, o *order.Order) error {
	return p.authorizeOrder(actor, o, ViewAllOrders, ViewOwnOrders)
}

func (p AccessPolicy) authorizeOrder(actor user.Actor, o *order.Order, anyOrder, ownOrder Permission) error {
	if err := actor.Validate(); err != nil {
		return errs.NewForbiddenError(err)
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if p.Can(actor.Role, anyOrder) {
		return nil
	}
	if ownOrder != PermissionUnknown && p.Can(actor.Role, ownOrder) {
		if o.IsOwnedBy(actor.UserID) {
			return nil
		}
		return errs.NewForbiddenError(fmt.Errorf("order %s belongs to another customer", o.ID()))
	}
	return errs.NewForbiddenError(fmt.Errorf("role %s lacks %s", actor.Role, anyOrder))
}
