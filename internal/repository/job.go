package repository

import (
	"context"
	"fmt"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/gorm"
)

type JobRepositoryIface interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	ListOpen(ctx context.Context) ([]model.Job, error)
	ListByCommander(ctx context.Context, commanderID uint) ([]model.Job, error)
	ListAll(ctx context.Context) ([]model.Job, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	DecrementVacancy(ctx context.Context, id uint) (bool, error)
	CountApplications(ctx context.Context, jobIDs []uint) (map[uint]int64, error)
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts the job and its questions.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	result := r.db.WithContext(ctx).Omit("Commander").Create(job)
	if result.Error != nil {
		return fmt.Errorf("failed to create job: %w", result.Error)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	result := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&job, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", result.Error)
	}
	return &job, nil
}

// ListOpen returns open jobs in insertion order.
func (r *JobRepository) ListOpen(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	result := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("status = ?", model.JobStatusOpen).
		Order("id").
		Find(&jobs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", result.Error)
	}
	return jobs, nil
}

func (r *JobRepository) ListByCommander(ctx context.Context, commanderID uint) ([]model.Job, error) {
	var jobs []model.Job
	result := r.db.WithContext(ctx).
		Preload("Commander").
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("commander_id = ?", commanderID).
		Order("id").
		Find(&jobs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list commander jobs: %w", result.Error)
	}
	return jobs, nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	result := r.db.WithContext(ctx).Preload("Commander").Order("id").Find(&jobs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", result.Error)
	}
	return jobs, nil
}

func (r *JobRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// DecrementVacancy takes one position if any is left. It reports false when
// the job had no vacancy at the time of the write, so concurrent callers
// cannot drive the count below zero.
func (r *JobRepository) DecrementVacancy(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ? AND vacant_positions > 0", id).
		UpdateColumn("vacant_positions", gorm.Expr("vacant_positions - 1"))
	if result.Error != nil {
		return false, fmt.Errorf("failed to decrement vacancy: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// CountApplications returns the number of applications per job id. Jobs
// without applications are absent from the map.
func (r *JobRepository) CountApplications(ctx context.Context, jobIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		JobID uint
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Select("job_id, count(*) AS total").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	for _, row := range rows {
		counts[row.JobID] = row.Total
	}
	return counts, nil
}
