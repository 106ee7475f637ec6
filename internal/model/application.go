package model

import (
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending            ApplicationStatus = "pending"
	ApplicationInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationPreferred          ApplicationStatus = "preferred"
	ApplicationRejected           ApplicationStatus = "rejected"
	ApplicationHired              ApplicationStatus = "hired"
)

// ParseApplicationStatus accepts only the canonical names, ignoring case.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case ApplicationPending, ApplicationInterviewScheduled, ApplicationPreferred, ApplicationRejected, ApplicationHired:
		return st, true
	}
	return "", false
}

func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationRejected || s == ApplicationHired
}

type JobApplication struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	JobID           uint                `gorm:"not null;uniqueIndex:idx_applications_volunteer_job,priority:2" json:"job_id"`
	Job             *Job                `gorm:"constraint:OnDelete:CASCADE" json:"job,omitempty"`
	VolunteerID     uint                `gorm:"not null;uniqueIndex:idx_applications_volunteer_job,priority:1" json:"volunteer_id"`
	Volunteer       *Volunteer          `gorm:"constraint:OnDelete:CASCADE" json:"volunteer,omitempty"`
	Status          ApplicationStatus   `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
	ApplicationDate time.Time           `gorm:"not null" json:"application_date"`
	Answers         []ApplicationAnswer `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	Interview       *Interview          `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"interview,omitempty"`
	Resume          *Resume             `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"resume,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}

type ApplicationAnswer struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ApplicationID uint   `gorm:"not null;index" json:"application_id"`
	QuestionID    uint   `gorm:"not null" json:"question_id"`
	AnswerText    string `gorm:"type:text" json:"answer_text"`
}

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
)

type Interview struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ApplicationID     uint            `gorm:"not null;uniqueIndex" json:"application_id"`
	ScheduledDate     time.Time       `gorm:"not null" json:"scheduled_date"`
	Schedule          string          `gorm:"type:varchar(100)" json:"schedule"`
	Status            InterviewStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	ManagementResults string          `gorm:"type:text" json:"management_results"`
	PersonalResults   string          `gorm:"type:text" json:"personal_results"`
	Summary           string          `gorm:"type:text" json:"summary"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Application is filled by the service for post-commit notifications.
	Application *JobApplication `gorm:"-" json:"-"`
}

type Resume struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ApplicationID uint      `gorm:"not null;uniqueIndex" json:"application_id"`
	FilePath      string    `gorm:"type:varchar(255);not null" json:"file_path"`
	OriginalName  string    `gorm:"type:varchar(255)" json:"original_name"`
	ContentType   string    `gorm:"type:varchar(100)" json:"content_type"`
	Size          int64     `json:"size"`
	PageCount     int       `json:"page_count"`
	UploadDate    time.Time `gorm:"not null" json:"upload_date"`
}
