// Package menu models the restaurant catalog: categories, the items listed
// under them and the available-menu view served to customers.
//
// Key business rules:
//   - names are required; display order and preparation time are non-negative
//   - prices are exact non-negative amounts (kernel.Money)
//   - categories are deactivated, never deleted, while items reference them
//   - item availability is toggled independently of the item's lifetime
package menu
