package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/anz-davar/giuson/internal/domain"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusFilled JobStatus = "filled"
)

// ParseJobStatus accepts the status names case-insensitively.
func ParseJobStatus(s string) (JobStatus, error) {
	switch st := JobStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case JobStatusOpen, JobStatusClosed, JobStatusFilled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, s)
}

type Job struct {
	ID                   uint          `gorm:"primaryKey" json:"id"`
	CommanderID          uint          `gorm:"not null;index" json:"commander_id"`
	Commander            *Commander    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title                string        `gorm:"type:varchar(100);not null" json:"title"`
	Description          string        `gorm:"type:text" json:"description"`
	Category             string        `gorm:"type:varchar(50)" json:"category"`
	Unit                 string        `gorm:"type:varchar(100)" json:"unit"`
	Address              string        `gorm:"type:varchar(200)" json:"address"`
	VacantPositions      int           `gorm:"not null;check:vacant_positions >= 0" json:"vacant_positions"`
	IsOpenBase           bool          `gorm:"not null" json:"is_open_base"`
	Status               JobStatus     `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	AdditionalInfo       string        `gorm:"type:text" json:"additional_info"`
	CommonQuestions      string        `gorm:"type:text" json:"common_questions"`
	CommonAnswers        string        `gorm:"type:text" json:"common_answers"`
	Education            string        `gorm:"type:text" json:"education"`
	Experience           string        `gorm:"type:text" json:"experience"`
	TechSkills           string        `gorm:"type:text" json:"tech_skills"`
	PassedCourses        string        `gorm:"type:text" json:"passed_courses"`
	RequiredCertificates string        `gorm:"type:text" json:"required_certificates"`
	RequiredLanguages    string        `gorm:"type:text" json:"required_languages"`
	HourlySalary         *float64      `json:"hourly_salary,omitempty"`
	WeeklySalaryCap      *float64      `json:"weekly_salary_cap,omitempty"`
	Questions            []JobQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}

// ClosedBase mirrors IsOpenBase for clients that expect both flags.
func (j *Job) ClosedBase() bool {
	return !j.IsOpenBase
}

type JobQuestion struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	JobID    uint   `gorm:"not null;index" json:"job_id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Required bool   `gorm:"not null" json:"required"`
}
