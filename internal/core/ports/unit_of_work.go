package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Commit also stores the
// domain events of every aggregate saved through its repositories in the
// outbox, inside the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories are bound to the transaction started by Begin.
	MenuRepository() MenuRepository
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	OutboxRepository() OutboxRepository
}
