package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

// Contact groups the personal fields of a profile.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Profile is a registered user of the restaurant. Its role is always one of
// the enumerated roles and changes only through ChangeRole.
type Profile struct {
	id        kernel.UUID
	contact   Contact
	role      Role
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewProfile registers a user. Self registration always uses RoleClient;
// other roles are granted later by an administrator.
func NewProfile(id kernel.UUID, contact Contact, role Role, now time.Time) (*Profile, error) {
	return RestoreProfile(id, contact, role, now, now)
}

// RestoreProfile rebuilds a profile read back from storage.
func RestoreProfile(id kernel.UUID, contact Contact, role Role, createdAt, updatedAt time.Time) (*Profile, error) {
	p := &Profile{
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	var idErr error
	if err := id.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	contactErr := p.setContact(contact)

	if err := errors.Join(idErr, contactErr, role.Validate()); err != nil {
		return nil, err
	}

	p.id = id
	p.role = role
	return p, nil
}

func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the user identifier issued by the identity provider.
func (p *Profile) ID() kernel.UUID { return p.id }

// FirstName returns the given name.
func (p *Profile) FirstName() string { return p.contact.FirstName }

// LastName returns the family name.
func (p *Profile) LastName() string { return p.contact.LastName }

// Email returns the contact address.
func (p *Profile) Email() string { return p.contact.Email }

// Phone returns the contact number.
// Returns an empty string if none was given.
func (p *Profile) Phone() string { return p.contact.Phone }

// Role returns the role the profile acts with.
func (p *Profile) Role() Role { return p.role }

// CreatedAt returns the registration time.
func (p *Profile) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the time of the last change.
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// ChangeRole assigns role and reports whether it differed from the current one.
func (p *Profile) ChangeRole(role Role, now time.Time) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}
	if role == p.role {
		return false, nil
	}
	p.role = role
	p.updatedAt = now.UTC()
	return true, nil
}

// Actor returns the identity this profile acts as.
func (p *Profile) Actor() Actor {
	return Actor{UserID: p.id, Role: p.role}
}

func (p *Profile) setContact(c Contact) error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)

	var firstErr, lastErr, emailErr error
	if c.FirstName == "" {
		firstErr = errs.NewValueIsRequiredError("first_name")
	}
	if c.LastName == "" {
		lastErr = errs.NewValueIsRequiredError("last_name")
	}
	if c.Email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	} else if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != c.Email {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", c.Email))
	}

	if err := errors.Join(firstErr, lastErr, emailErr); err != nil {
		return err
	}
	p.contact = c
	return nil
}
