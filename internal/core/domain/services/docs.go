// Package services contains domain services that span several aggregates.
//
// AccessPolicy decides which roles may invoke which operations on the menu,
// carts, orders and user profiles, including the ownership rule for
// operations a client may only apply to its own orders.
package services
