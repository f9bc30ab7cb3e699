package userrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a new profile. An email already used by another profile is
// reported as an invalid "email" field; the connection must be opened with
// gorm.Config{TranslateError: true}.
func (r *GormUserRepository) Add(ctx context.Context, profile *user.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValidationError(errs.NewValueIsInvalidErrorWithCause("email", errors.New("already registered")))
		}
		return err
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, profile *user.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	result := r.db.WithContext(ctx).
		Model(&ProfileDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"first_name": dto.FirstName,
			"last_name":  dto.LastName,
			"phone":      dto.Phone,
			"role":       dto.Role,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", profile.ID().String())
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
