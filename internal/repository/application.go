package repository

import (
	"context"
	"fmt"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepositoryIface interface {
	Create(ctx context.Context, app *model.JobApplication) error
	FindByID(ctx context.Context, id uint) (*model.JobApplication, error)
	FindByVolunteerAndJob(ctx context.Context, volunteerID, jobID uint) (*model.JobApplication, error)
	Exists(ctx context.Context, volunteerID, jobID uint) (bool, error)
	ListByJob(ctx context.Context, jobID uint) ([]model.JobApplication, error)
	ListByVolunteer(ctx context.Context, volunteerID uint) ([]model.JobApplication, error)
	UpdateStatus(ctx context.Context, id uint, from, to model.ApplicationStatus) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application and its answers. The unique index on
// (volunteer_id, job_id) backs the service's existence check.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.JobApplication) error {
	result := r.db.WithContext(ctx).Omit("Job", "Volunteer", "Interview", "Resume").Create(app)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("failed to create application: %w", result.Error)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (*model.JobApplication, error) {
	var app model.JobApplication
	result := r.withDetails(ctx).First(&app, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", result.Error)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByVolunteerAndJob(ctx context.Context, volunteerID, jobID uint) (*model.JobApplication, error) {
	var app model.JobApplication
	result := r.withDetails(ctx).
		Where("volunteer_id = ? AND job_id = ?", volunteerID, jobID).
		First(&app)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", result.Error)
	}
	return &app, nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, volunteerID, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("volunteer_id = ? AND job_id = ?", volunteerID, jobID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}
	return count > 0, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uint) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	result := r.db.WithContext(ctx).
		Preload("Volunteer.User").
		Preload("Interview").
		Preload("Resume").
		Where("job_id = ?", jobID).
		Order("id").
		Find(&apps)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", result.Error)
	}
	return apps, nil
}

func (r *ApplicationRepository) ListByVolunteer(ctx context.Context, volunteerID uint) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	result := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Interview").
		Where("volunteer_id = ?", volunteerID).
		Order("id").
		Find(&apps)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list volunteer applications: %w", result.Error)
	}
	return apps, nil
}

// UpdateStatus moves the application from one status to another. It
// reports false when the row was no longer in the from status.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uint, from, to model.ApplicationStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update application status: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Delete removes the application together with its answers, interview,
// resume record and history.
func (r *ApplicationRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	children := []any{
		&model.ApplicationAnswer{},
		&model.Interview{},
		&model.Resume{},
		&model.ApplicationEvent{},
	}
	for _, child := range children {
		if err := db.Where("application_id = ?", id).Delete(child).Error; err != nil {
			return fmt.Errorf("failed to delete application %T: %w", child, err)
		}
	}

	result := db.Delete(&model.JobApplication{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Job").
		Preload("Volunteer.User").
		Preload("Answers").
		Preload("Interview").
		Preload("Resume")
}
