package repository

import (
	"context"
	"fmt"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/gorm"
)

type InterviewRepositoryIface interface {
	Create(ctx context.Context, interview *model.Interview) error
	FindByID(ctx context.Context, id uint) (*model.Interview, error)
	Update(ctx context.Context, interview *model.Interview) error
}

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) Create(ctx context.Context, interview *model.Interview) error {
	result := r.db.WithContext(ctx).Create(interview)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrInterviewAlreadyExists
		}
		return fmt.Errorf("failed to create interview: %w", result.Error)
	}
	return nil
}

func (r *InterviewRepository) FindByID(ctx context.Context, id uint) (*model.Interview, error) {
	var interview model.Interview
	result := r.db.WithContext(ctx).First(&interview, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to find interview: %w", result.Error)
	}
	return &interview, nil
}

func (r *InterviewRepository) Update(ctx context.Context, interview *model.Interview) error {
	result := r.db.WithContext(ctx).Save(interview)
	if result.Error != nil {
		return fmt.Errorf("failed to update interview: %w", result.Error)
	}
	return nil
}
