package repository

import (
	"context"
	"fmt"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResumeRepositoryIface interface {
	Upsert(ctx context.Context, resume *model.Resume) error
	FindByApplicationID(ctx context.Context, applicationID uint) (*model.Resume, error)
}

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

// Upsert stores the resume, replacing the one already attached to the
// application.
func (r *ResumeRepository) Upsert(ctx context.Context, resume *model.Resume) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"file_path", "original_name", "content_type", "size", "page_count", "upload_date"}),
	}).Create(resume)
	if result.Error != nil {
		return fmt.Errorf("failed to store resume: %w", result.Error)
	}
	return nil
}

func (r *ResumeRepository) FindByApplicationID(ctx context.Context, applicationID uint) (*model.Resume, error) {
	var resume model.Resume
	result := r.db.WithContext(ctx).First(&resume, "application_id = ?", applicationID)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resume: %w", result.Error)
	}
	return &resume, nil
}
