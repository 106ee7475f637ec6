package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
)

type statusSet map[model.ApplicationStatus]struct{}

// applicationTransitions lists the statuses reachable from each status.
// Rejected and hired are terminal.
var applicationTransitions = map[model.ApplicationStatus]statusSet{
	model.ApplicationPending: {
		model.ApplicationInterviewScheduled: {},
		model.ApplicationPreferred:          {},
		model.ApplicationRejected:           {},
	},
	model.ApplicationInterviewScheduled: {
		model.ApplicationPreferred: {},
		model.ApplicationRejected:  {},
	},
	model.ApplicationPreferred: {
		model.ApplicationInterviewScheduled: {},
		model.ApplicationRejected:           {},
		model.ApplicationHired:              {},
	},
}

// CanTransition reports whether an application may move from one status to
// another.
func CanTransition(from, to model.ApplicationStatus) bool {
	_, ok := applicationTransitions[from][to]
	return ok
}

type AnswerInput struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Text       string `json:"text"`
}

type ApplyInput struct {
	Answers []AnswerInput `json:"answers" validate:"dive"`
}

type InterviewInput struct {
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	Schedule      string `json:"schedule" validate:"max=100"`
}

type InterviewResultsInput struct {
	ManagementResults string `json:"management_results"`
	PersonalResults   string `json:"personal_results"`
	Summary           string `json:"summary"`
}

// ApplicationService drives the job application lifecycle. Every method
// works inside the caller's unit of work and leaves committing to it.
type ApplicationService struct {
	now func() time.Time
}

func NewApplicationService() *ApplicationService {
	return &ApplicationService{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Apply creates a pending application of volunteerID for jobID.
func (s *ApplicationService) Apply(ctx context.Context, uow repository.UnitOfWork, volunteerID, jobID uint, input ApplyInput) (*model.JobApplication, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	job, err := uow.Jobs().FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsOpen() {
		return nil, domain.ErrJobClosed
	}

	exists, err := uow.Applications().Exists(ctx, volunteerID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	answers, err := matchAnswers(job.Questions, input.Answers)
	if err != nil {
		return nil, err
	}

	app := &model.JobApplication{
		JobID:           jobID,
		VolunteerID:     volunteerID,
		Status:          model.ApplicationPending,
		ApplicationDate: s.now(),
		Answers:         answers,
	}
	if err := uow.Applications().Create(ctx, app); err != nil {
		return nil, err
	}

	if err := s.record(ctx, uow, app.ID, "", model.ApplicationPending, model.RoleVolunteer, volunteerID, model.ReasonApplied); err != nil {
		return nil, err
	}

	app.Job = job
	return app, nil
}

// matchAnswers pairs answers with the job's questions. Answers to unknown
// questions, repeated answers and blank required answers are rejected.
func matchAnswers(questions []model.JobQuestion, inputs []AnswerInput) ([]model.ApplicationAnswer, error) {
	byID := make(map[uint]model.JobQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	seen := make(map[uint]bool, len(inputs))
	answers := make([]model.ApplicationAnswer, 0, len(inputs))
	for _, in := range inputs {
		if _, ok := byID[in.QuestionID]; !ok {
			return nil, fmt.Errorf("%w: unknown question %d", domain.ErrInvalidInput, in.QuestionID)
		}
		if seen[in.QuestionID] {
			return nil, fmt.Errorf("%w: question %d answered twice", domain.ErrInvalidInput, in.QuestionID)
		}
		seen[in.QuestionID] = true
		answers = append(answers, model.ApplicationAnswer{
			QuestionID: in.QuestionID,
			AnswerText: in.Text,
		})
	}

	for _, answer := range answers {
		if byID[answer.QuestionID].Required && strings.TrimSpace(answer.AnswerText) == "" {
			return nil, fmt.Errorf("%w: question %d requires an answer", domain.ErrInvalidInput, answer.QuestionID)
		}
	}
	for _, q := range questions {
		if q.Required && !seen[q.ID] {
			return nil, fmt.Errorf("%w: question %d requires an answer", domain.ErrInvalidInput, q.ID)
		}
	}
	return answers, nil
}

// Withdraw deletes the volunteer's application for jobID with its answers,
// interview, resume record and history. The returned application still
// carries the resume so the caller can remove the file after committing.
func (s *ApplicationService) Withdraw(ctx context.Context, uow repository.UnitOfWork, volunteerID, jobID uint) (*model.JobApplication, error) {
	app, err := uow.Applications().FindByVolunteerAndJob(ctx, volunteerID, jobID)
	if err != nil {
		return nil, err
	}
	if err := uow.Applications().Delete(ctx, app.ID); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Application withdrawn",
		"applicationID", app.ID,
		"volunteerID", volunteerID,
		"jobID", jobID,
		"status", app.Status,
	)
	return app, nil
}

// HasApplied reports whether the volunteer already applied for jobID.
func (s *ApplicationService) HasApplied(ctx context.Context, uow repository.UnitOfWork, volunteerID, jobID uint) (bool, error) {
	return uow.Applications().Exists(ctx, volunteerID, jobID)
}

// loadOwned fetches the application and checks that commanderID owns its job.
func loadOwned(ctx context.Context, uow repository.UnitOfWork, applicationID, commanderID uint) (*model.JobApplication, error) {
	app, err := uow.Applications().FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Job == nil || app.Job.CommanderID != commanderID {
		return nil, fmt.Errorf("%w: application %d belongs to another commander", domain.ErrForbidden, applicationID)
	}
	return app, nil
}

// UpdateStatus sets the status of an application on a job owned by
// commanderID. Hired can only be reached through AssignToJob.
func (s *ApplicationService) UpdateStatus(ctx context.Context, uow repository.UnitOfWork, commanderID, applicationID uint, status string) (*model.JobApplication, error) {
	app, err := loadOwned(ctx, uow, applicationID, commanderID)
	if err != nil {
		return nil, err
	}

	to, ok := model.ParseApplicationStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, status)
	}
	if app.Status == to {
		return app, nil
	}
	if to == model.ApplicationHired {
		return nil, fmt.Errorf("%w: hiring goes through HR assignment", domain.ErrInvalidTransition)
	}

	if err := s.transition(ctx, uow, app, to, model.RoleCommander, commanderID, model.ReasonStatusUpdate); err != nil {
		return nil, err
	}
	return app, nil
}

// ScheduleInterview creates the interview of an application on a job owned
// by commanderID and moves the application to interview_scheduled.
func (s *ApplicationService) ScheduleInterview(ctx context.Context, uow repository.UnitOfWork, commanderID, applicationID uint, input InterviewInput) (*model.Interview, error) {
	app, err := loadOwned(ctx, uow, applicationID, commanderID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.ScheduledDate) == "" {
		return nil, fmt.Errorf("%w: scheduled_date is required", domain.ErrInvalidDate)
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	scheduled, err := parseDate(input.ScheduledDate)
	if err != nil {
		return nil, err
	}

	if app.Interview != nil {
		return nil, domain.ErrInterviewAlreadyExists
	}
	if !CanTransition(app.Status, model.ApplicationInterviewScheduled) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, app.Status, model.ApplicationInterviewScheduled)
	}

	interview := &model.Interview{
		ApplicationID: app.ID,
		ScheduledDate: scheduled,
		Schedule:      input.Schedule,
		Status:        model.InterviewScheduled,
	}
	if err := uow.Interviews().Create(ctx, interview); err != nil {
		return nil, err
	}

	if err := s.transition(ctx, uow, app, model.ApplicationInterviewScheduled, model.RoleCommander, commanderID, model.ReasonInterviewScheduled); err != nil {
		return nil, err
	}

	app.Interview = interview
	interview.Application = app
	return interview, nil
}

// RecordInterviewResults stores the outcome of an interview and marks it
// completed.
func (s *ApplicationService) RecordInterviewResults(ctx context.Context, uow repository.UnitOfWork, commanderID, interviewID uint, input InterviewResultsInput) (*model.Interview, error) {
	interview, err := uow.Interviews().FindByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if _, err := loadOwned(ctx, uow, interview.ApplicationID, commanderID); err != nil {
		return nil, err
	}

	interview.ManagementResults = input.ManagementResults
	interview.PersonalResults = input.PersonalResults
	interview.Summary = input.Summary
	interview.Status = model.InterviewCompleted
	if err := uow.Interviews().Update(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// AssignToJob hires a preferred volunteer. The vacancy decrement and the
// status change are both conditional writes in uow, so two concurrent
// assignments cannot take the same position or hire twice.
func (s *ApplicationService) AssignToJob(ctx context.Context, uow repository.UnitOfWork, hrID, volunteerID, jobID uint) (*model.JobApplication, error) {
	if _, err := uow.Profiles().FindVolunteerByID(ctx, volunteerID); err != nil {
		return nil, err
	}
	job, err := uow.Jobs().FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	app, err := uow.Applications().FindByVolunteerAndJob(ctx, volunteerID, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return nil, domain.ErrNoApplication
		}
		return nil, err
	}
	if app.Status != model.ApplicationPreferred {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrNotAccepted, app.Status)
	}
	if job.VacantPositions <= 0 {
		return nil, domain.ErrNoVacancy
	}

	taken, err := uow.Jobs().DecrementVacancy(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !taken {
		return nil, domain.ErrNoVacancy
	}

	moved, err := uow.Applications().UpdateStatus(ctx, app.ID, model.ApplicationPreferred, model.ApplicationHired)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, fmt.Errorf("%w: application changed during assignment", domain.ErrNotAccepted)
	}

	if err := s.record(ctx, uow, app.ID, model.ApplicationPreferred, model.ApplicationHired, model.RoleHR, hrID, model.ReasonAssigned); err != nil {
		return nil, err
	}

	job.VacantPositions--
	app.Job = job
	app.Status = model.ApplicationHired
	return app, nil
}

// History returns the recorded transitions of an application.
func (s *ApplicationService) History(ctx context.Context, uow repository.UnitOfWork, applicationID uint) ([]model.ApplicationEvent, error) {
	if _, err := uow.Applications().FindByID(ctx, applicationID); err != nil {
		return nil, err
	}
	return uow.Events().ListByApplication(ctx, applicationID)
}

// transition moves app to status to with a conditional write and records it.
func (s *ApplicationService) transition(ctx context.Context, uow repository.UnitOfWork, app *model.JobApplication, to model.ApplicationStatus, role model.Role, actorID uint, reason string) error {
	from := app.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}

	moved, err := uow.Applications().UpdateStatus(ctx, app.ID, from, to)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("%w: application %d is no longer %s", domain.ErrStaleApplication, app.ID, from)
	}

	if err := s.record(ctx, uow, app.ID, from, to, role, actorID, reason); err != nil {
		return err
	}
	app.Status = to
	return nil
}

func (s *ApplicationService) record(ctx context.Context, uow repository.UnitOfWork, applicationID uint, from, to model.ApplicationStatus, role model.Role, actorID uint, reason string) error {
	event := &model.ApplicationEvent{
		ApplicationID: applicationID,
		FromStatus:    from,
		ToStatus:      to,
		ActorRole:     role,
		ActorID:       actorID,
		Reason:        reason,
		RequestID:     middleware.GetReqID(ctx),
		CreatedAt:     s.now(),
	}
	if err := uow.Events().Create(ctx, event); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Application status changed",
		"applicationID", applicationID,
		"from", from,
		"to", to,
		"actorRole", role,
		"actorID", actorID,
	)
	return nil
}
