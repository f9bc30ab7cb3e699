// Package order implements the order lifecycle of the restaurant.
//
// The package includes:
//   - Order: the aggregate root holding the frozen items and the status
//   - Item: an immutable order line with the unit price captured at submission
//   - Status: the state machine pending → confirmed → in_preparation → ready →
//     served → paid, with cancellation from any non-terminal state
//   - SubmittedEvent and StatusChangedEvent, recorded by the aggregate and
//     stored in the outbox by the unit of work
//
// Key business rules:
//   - An order is created from a non-empty cart only, always Pending
//   - Total equals Σ quantity × unit price of its items at every point
//   - Advance never skips a state and fails on Paid and Cancelled
//   - Cancelling Paid fails; cancelling Cancelled is a reported no-op
package order
