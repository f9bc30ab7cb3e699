package user_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredAt = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

func validContact() user.Contact {
	return user.Contact{FirstName: "Ada", LastName: "Lovelace", Email: " Ada@Example.com ", Phone: "+44 20 0000"}
}

func TestParseRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		for _, role := range user.Roles() {
			parsed, err := user.ParseRole(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("unknown roles are rejected, not defaulted", func(t *testing.T) {
		for _, s := range []string{"", "Admin", "chef", "unknown"} {
			role, err := user.ParseRole(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
			assert.Equal(t, user.RoleUnknown, role)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, user.RoleClient.Validate())
	require.ErrorIs(t, user.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, user.Role(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", user.Role(42).String())
}

func TestNewProfile(t *testing.T) {
	t.Run("normalizes contact", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := user.NewProfile(id, validContact(), user.RoleClient, registeredAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "ada@example.com", p.Email())
		assert.Equal(t, "Ada", p.FirstName())
		assert.Equal(t, user.RoleClient, p.Role())
		assert.Equal(t, registeredAt, p.CreatedAt())
		assert.Equal(t, user.Actor{UserID: id, Role: user.RoleClient}, p.Actor())
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		_, err := user.NewProfile(kernel.UUID{}, user.Contact{Email: "not-an-email"}, user.RoleUnknown, registeredAt)

		require.Error(t, err)
		assert.Equal(t,
			[]string{"email", "first_name", "id", "last_name", "role"},
			errs.NewValidationError(err).Fields)
	})
}

func TestProfile_ChangeRole(t *testing.T) {
	t.Run("promotes client to server", func(t *testing.T) {
		p, err := user.NewProfile(kernel.NewUUID(), validContact(), user.RoleClient, registeredAt)
		require.NoError(t, err)
		later := registeredAt.Add(24 * time.Hour)

		changed, err := p.ChangeRole(user.RoleServer, later)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, user.RoleServer, p.Role())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		p, err := user.NewProfile(kernel.NewUUID(), validContact(), user.RoleAdmin, registeredAt)
		require.NoError(t, err)

		changed, err := p.ChangeRole(user.RoleAdmin, registeredAt.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, registeredAt, p.UpdatedAt())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		p, err := user.NewProfile(kernel.NewUUID(), validContact(), user.RoleClient, registeredAt)
		require.NoError(t, err)

		_, err = p.ChangeRole(user.Role(9), registeredAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, user.RoleClient, p.Role())
	})
}

func TestNewActor(t *testing.T) {
	_, err := user.NewActor(kernel.NewUUID(), user.RoleUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = user.NewActor(kernel.UUID{}, user.RoleAdmin)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
