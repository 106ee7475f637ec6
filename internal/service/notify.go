package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/anz-davar/giuson/internal/email"
	"github.com/anz-davar/giuson/internal/email/mailer"
	"github.com/anz-davar/giuson/internal/model"
)

// Notifier emails volunteers about committed changes to their
// applications. Send failures are logged and otherwise ignored.
type Notifier struct {
	mail     *email.Service
	fromName string
}

// NewNotifier returns a notifier that sends nothing when mail is nil.
func NewNotifier(mail *email.Service, fromName string) *Notifier {
	return &Notifier{mail: mail, fromName: fromName}
}

func (n *Notifier) InterviewScheduled(ctx context.Context, interview *model.Interview) {
	if n == nil || n.mail == nil || interview == nil {
		return
	}
	app := interview.Application
	to, name := recipient(app)
	if to == "" {
		return
	}

	err := mailer.SendInterviewScheduledEmail(ctx, n.mail, to, mailer.InterviewTemplateData{
		Name:          name,
		JobTitle:      jobTitle(app),
		ScheduledDate: interview.ScheduledDate.Format(time.DateTime),
		Schedule:      interview.Schedule,
		FromName:      n.fromName,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to send interview email", "applicationID", app.ID, "error", err)
	}
}

func (n *Notifier) Hired(ctx context.Context, app *model.JobApplication) {
	if n == nil || n.mail == nil {
		return
	}
	to, name := recipient(app)
	if to == "" {
		return
	}

	data := mailer.HiredTemplateData{
		Name:     name,
		JobTitle: jobTitle(app),
		FromName: n.fromName,
	}
	if app.Job != nil {
		data.Unit = app.Job.Unit
	}
	if err := mailer.SendVolunteerHiredEmail(ctx, n.mail, to, data); err != nil {
		slog.ErrorContext(ctx, "Failed to send hired email", "applicationID", app.ID, "error", err)
	}
}

func recipient(app *model.JobApplication) (string, string) {
	if app == nil || app.Volunteer == nil || app.Volunteer.User == nil {
		return "", ""
	}
	return app.Volunteer.User.Email, app.Volunteer.FullName
}

func jobTitle(app *model.JobApplication) string {
	if app == nil || app.Job == nil {
		return ""
	}
	return app.Job.Title
}
