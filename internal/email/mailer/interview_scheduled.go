// internal/email/mailer/interview_scheduled.go
package mailer

import (
	"context"

	"github.com/anz-davar/giuson/internal/email"
)

// InterviewTemplateData contains data for the interview scheduled template
type InterviewTemplateData struct {
	Name          string
	JobTitle      string
	ScheduledDate string
	Schedule      string
	FromName      string
}

// SendInterviewScheduledEmail tells a volunteer about a new interview
func SendInterviewScheduledEmail(ctx context.Context, s *email.Service, to string, data InterviewTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		Subject:      "Your interview for " + data.JobTitle + " has been scheduled",
		TemplateName: "interview_scheduled",
		TemplateData: data,
	})
}
