package model

import "time"

// ApplicationEvent records one status transition of a job application.
type ApplicationEvent struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	ApplicationID uint              `gorm:"not null;index" json:"application_id"`
	FromStatus    ApplicationStatus `gorm:"type:varchar(32)" json:"from_status"`
	ToStatus      ApplicationStatus `gorm:"type:varchar(32);not null" json:"to_status"`
	ActorRole     Role              `gorm:"type:varchar(20);not null" json:"actor_role"`
	ActorID       uint              `gorm:"not null" json:"actor_id"`
	Reason        string            `gorm:"type:varchar(64)" json:"reason"`
	RequestID     string            `gorm:"type:varchar(64)" json:"request_id"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (ApplicationEvent) TableName() string {
	return "application_events"
}

// Event reasons
const (
	ReasonApplied            = "applied"
	ReasonStatusUpdate       = "status_update"
	ReasonInterviewScheduled = "interview_scheduled"
	ReasonAssigned           = "assigned"
)

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&Volunteer{},
		&Commander{},
		&HR{},
		&Job{},
		&JobQuestion{},
		&JobApplication{},
		&ApplicationAnswer{},
		&Interview{},
		&Resume{},
		&ApplicationEvent{},
	}
}
