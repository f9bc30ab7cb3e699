// Package kernel holds the value objects shared by every aggregate of the
// restaurant domain:
//   - UUID: identifier of categories, menu items, orders and profiles
//   - Money: exact non-negative currency amount used for prices and totals
//   - DomainEvent: contract of the events aggregates record for the outbox
//
// Values are immutable and their zero values fail Validate, so a value that
// skipped its constructor never reaches an aggregate.
package kernel
