package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/gorm"
)

type ProfileRepositoryIface interface {
	Create(ctx context.Context, profile model.Profile) error
	NationalIDExists(ctx context.Context, nationalID string) (bool, error)
	ProfileIDForUser(ctx context.Context, userID uint, role model.Role) (uint, error)

	FindVolunteerByID(ctx context.Context, id uint) (*model.Volunteer, error)
	FindVolunteerByUserID(ctx context.Context, userID uint) (*model.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
	UpdateVolunteer(ctx context.Context, id uint, fields map[string]any) error

	FindCommanderByID(ctx context.Context, id uint) (*model.Commander, error)
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) error {
	result := r.db.WithContext(ctx).Omit("User").Create(profile)
	if result.Error != nil {
		if isUniqueViolation(result.Error) && strings.Contains(violatedConstraint(result.Error), "national_id") {
			return domain.ErrNationalIDAlreadyExists
		}
		return fmt.Errorf("failed to create %s profile: %w", profile.Role(), result.Error)
	}
	return nil
}

func (r *ProfileRepository) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Volunteer{}).
		Where("national_id = ?", nationalID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check national id: %w", err)
	}
	return count > 0, nil
}

// ProfileIDForUser resolves the id of the profile matching role. A user
// without a profile yields domain.ErrUserNotFound.
func (r *ProfileRepository) ProfileIDForUser(ctx context.Context, userID uint, role model.Role) (uint, error) {
	var table any
	switch role {
	case model.RoleVolunteer:
		table = &model.Volunteer{}
	case model.RoleCommander:
		table = &model.Commander{}
	case model.RoleHR:
		table = &model.HR{}
	default:
		return 0, domain.ErrInvalidRole
	}

	var ids []uint
	err := r.db.WithContext(ctx).Model(table).Where("user_id = ?", userID).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("failed to find %s profile: %w", role, err)
	}
	if len(ids) == 0 {
		return 0, domain.ErrUserNotFound
	}
	return ids[0], nil
}

func (r *ProfileRepository) FindVolunteerByID(ctx context.Context, id uint) (*model.Volunteer, error) {
	var v model.Volunteer
	result := r.db.WithContext(ctx).Preload("User").First(&v, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer: %w", result.Error)
	}
	return &v, nil
}

func (r *ProfileRepository) FindVolunteerByUserID(ctx context.Context, userID uint) (*model.Volunteer, error) {
	var v model.Volunteer
	result := r.db.WithContext(ctx).Preload("User").First(&v, "user_id = ?", userID)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer: %w", result.Error)
	}
	return &v, nil
}

func (r *ProfileRepository) ListVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	var volunteers []model.Volunteer
	result := r.db.WithContext(ctx).Preload("User").Order("id").Find(&volunteers)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", result.Error)
	}
	return volunteers, nil
}

func (r *ProfileRepository) UpdateVolunteer(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Volunteer{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrNationalIDAlreadyExists
		}
		return fmt.Errorf("failed to update volunteer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVolunteerNotFound
	}
	return nil
}

func (r *ProfileRepository) FindCommanderByID(ctx context.Context, id uint) (*model.Commander, error) {
	var c model.Commander
	result := r.db.WithContext(ctx).First(&c, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrCommanderNotFound
		}
		return nil, fmt.Errorf("failed to find commander: %w", result.Error)
	}
	return &c, nil
}
