package user

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role is the closed set of user roles. Every switch over Role lists all
// three values so that adding a role fails the exhaustive linter at each
// dispatch point.
type Role int

const (
	// RoleUnknown is the zero value and never a valid role.
	RoleUnknown Role = iota
	RoleAdmin
	RoleServer
	RoleClient
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
		RoleServer:  "server",
		RoleClient:  "client",
	}
}

// Roles returns every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleServer, RoleClient}
}

// ParseRole converts a stored or token supplied role name. Unknown names are
// rejected rather than defaulted.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "server":
		return RoleServer, nil
	case "client":
		return RoleClient, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleServer && r != RoleClient {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
