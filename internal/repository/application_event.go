package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/gorm"
)

type ApplicationEventRepositoryIface interface {
	Create(ctx context.Context, event *model.ApplicationEvent) error
	ListByApplication(ctx context.Context, applicationID uint) ([]model.ApplicationEvent, error)
}

// ApplicationEventRepository handles database operations for application history
type ApplicationEventRepository struct {
	db *gorm.DB
}

// NewApplicationEventRepository creates a new ApplicationEventRepository
func NewApplicationEventRepository(db *gorm.DB) *ApplicationEventRepository {
	return &ApplicationEventRepository{db: db}
}

// Create inserts a new history entry
func (r *ApplicationEventRepository) Create(ctx context.Context, event *model.ApplicationEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(event)
	if result.Error != nil {
		return fmt.Errorf("failed to create application event: %w", result.Error)
	}
	return nil
}

// ListByApplication returns the history of one application, oldest first
func (r *ApplicationEventRepository) ListByApplication(ctx context.Context, applicationID uint) ([]model.ApplicationEvent, error) {
	var events []model.ApplicationEvent
	result := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at, id").
		Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list application events: %w", result.Error)
	}
	return events, nil
}
