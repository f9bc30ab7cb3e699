package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
)

// UserRepository persists user profiles.
type UserRepository interface {
	Add(ctx context.Context, profile *user.Profile) error
	Update(ctx context.Context, profile *user.Profile) error
	Get(ctx context.Context, id kernel.UUID) (*user.Profile, error)
}
