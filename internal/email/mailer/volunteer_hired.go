package mailer

import (
	"context"

	"github.com/anz-davar/giuson/internal/email"
)

// HiredTemplateData contains data for the volunteer hired template
type HiredTemplateData struct {
	Name     string
	JobTitle string
	Unit     string
	FromName string
}

// SendVolunteerHiredEmail tells a volunteer they were assigned to a job
func SendVolunteerHiredEmail(ctx context.Context, s *email.Service, to string, data HiredTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		Subject:      "You have been assigned to " + data.JobTitle,
		TemplateName: "volunteer_hired",
		TemplateData: data,
	})
}
