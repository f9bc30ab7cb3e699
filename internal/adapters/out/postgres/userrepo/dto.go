// Package userrepo persists user profiles. Authentication lives with the
// external identity provider; only profile data and the role are stored.
package userrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(32);not null;default:''"`
	Role      string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ProfileDTO) TableName() string {
	return "user_profiles"
}

func fromDomain(p *user.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        p.ID().Bytes(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		Email:     p.Email(),
		Phone:     p.Phone(),
		Role:      p.Role().String(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func toDomain(dto ProfileDTO) (*user.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreProfile(id, user.Contact{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,
	}, role, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}
