package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserView struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      user.Role
	CreatedAt time.Time
}

// ListUsersQueryHandler lists every profile ordered by email. Admins only.
type ListUsersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListUsersQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, policy: policy}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ManageUsers); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, email, phone, role, created_at
		FROM user_profiles
		ORDER BY email
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			role string
			view UserView
		)
		if err = rows.Scan(&id, &view.FirstName, &view.LastName, &view.Email, &view.Phone, &role, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.Role, err = user.ParseRole(role); err != nil {
			return nil, err
		}
		users = append(users, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
