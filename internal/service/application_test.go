package service_test

import (
	"context"
	"testing"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/mocks"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type applicationFixture struct {
	svc          *service.ApplicationService
	uow          *mocks.MockUnitOfWork
	profiles     *mocks.MockProfileRepositoryIface
	jobs         *mocks.MockJobRepositoryIface
	applications *mocks.MockApplicationRepositoryIface
	interviews   *mocks.MockInterviewRepositoryIface
	events       *mocks.MockApplicationEventRepositoryIface
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	ctrl := gomock.NewController(t)
	f := &applicationFixture{
		svc:          service.NewApplicationService(),
		uow:          mocks.NewMockUnitOfWork(ctrl),
		profiles:     mocks.NewMockProfileRepositoryIface(ctrl),
		jobs:         mocks.NewMockJobRepositoryIface(ctrl),
		applications: mocks.NewMockApplicationRepositoryIface(ctrl),
		interviews:   mocks.NewMockInterviewRepositoryIface(ctrl),
		events:       mocks.NewMockApplicationEventRepositoryIface(ctrl),
	}
	f.uow.EXPECT().Profiles().Return(f.profiles).AnyTimes()
	f.uow.EXPECT().Jobs().Return(f.jobs).AnyTimes()
	f.uow.EXPECT().Applications().Return(f.applications).AnyTimes()
	f.uow.EXPECT().Interviews().Return(f.interviews).AnyTimes()
	f.uow.EXPECT().Events().Return(f.events).AnyTimes()
	return f
}

func ownedApplication(status model.ApplicationStatus) *model.JobApplication {
	return &model.JobApplication{
		ID:          21,
		JobID:       4,
		Job:         &model.Job{ID: 4, CommanderID: 9, Status: model.JobStatusOpen, VacantPositions: 1},
		VolunteerID: 3,
		Status:      status,
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to model.ApplicationStatus
		want     bool
	}{
		{model.ApplicationPending, model.ApplicationInterviewScheduled, true},
		{model.ApplicationPending, model.ApplicationPreferred, true},
		{model.ApplicationPending, model.ApplicationRejected, true},
		{model.ApplicationPending, model.ApplicationHired, false},
		{model.ApplicationInterviewScheduled, model.ApplicationPreferred, true},
		{model.ApplicationInterviewScheduled, model.ApplicationRejected, true},
		{model.ApplicationInterviewScheduled, model.ApplicationPending, false},
		{model.ApplicationPreferred, model.ApplicationHired, true},
		{model.ApplicationPreferred, model.ApplicationInterviewScheduled, true},
		{model.ApplicationRejected, model.ApplicationPending, false},
		{model.ApplicationRejected, model.ApplicationPreferred, false},
		{model.ApplicationHired, model.ApplicationRejected, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, service.CanTransition(tt.from, tt.to))
		})
	}
}

func TestApplicationServiceApply(t *testing.T) {
	ctx := context.Background()

	job := &model.Job{
		ID:        4,
		Status:    model.JobStatusOpen,
		Questions: []model.JobQuestion{{ID: 1, JobID: 4, Text: "Why?", Required: true}, {ID: 2, JobID: 4, Text: "Anything else?"}},
	}

	t.Run("creates a pending application with its answers", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(job, nil)
		f.applications.EXPECT().Exists(ctx, uint(3), uint(4)).Return(false, nil)
		f.applications.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, app *model.JobApplication) error {
			assert.Equal(t, model.ApplicationPending, app.Status)
			require.Len(t, app.Answers, 1)
			assert.Equal(t, "Because", app.Answers[0].AnswerText)
			app.ID = 21
			return nil
		})
		f.events.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *model.ApplicationEvent) error {
			assert.Equal(t, uint(21), e.ApplicationID)
			assert.Equal(t, model.ApplicationPending, e.ToStatus)
			assert.Equal(t, model.ReasonApplied, e.Reason)
			return nil
		})

		app, err := f.svc.Apply(ctx, f.uow, 3, 4, service.ApplyInput{
			Answers: []service.AnswerInput{{QuestionID: 1, Text: "Because"}},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(21), app.ID)
	})

	t.Run("rejects a second application", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(job, nil)
		f.applications.EXPECT().Exists(ctx, uint(3), uint(4)).Return(true, nil)

		_, err := f.svc.Apply(ctx, f.uow, 3, 4, service.ApplyInput{})
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	})

	t.Run("rejects a closed job", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(&model.Job{ID: 4, Status: model.JobStatusFilled}, nil)

		_, err := f.svc.Apply(ctx, f.uow, 3, 4, service.ApplyInput{})
		assert.ErrorIs(t, err, domain.ErrJobClosed)
	})

	t.Run("requires answers to required questions", func(t *testing.T) {
		tests := []struct {
			name    string
			answers []service.AnswerInput
		}{
			{"missing", nil},
			{"blank", []service.AnswerInput{{QuestionID: 1, Text: "  "}}},
			{"unknown question", []service.AnswerInput{{QuestionID: 1, Text: "x"}, {QuestionID: 99, Text: "x"}}},
			{"answered twice", []service.AnswerInput{{QuestionID: 1, Text: "x"}, {QuestionID: 1, Text: "y"}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newApplicationFixture(t)
				f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(job, nil)
				f.applications.EXPECT().Exists(ctx, uint(3), uint(4)).Return(false, nil)

				_, err := f.svc.Apply(ctx, f.uow, 3, 4, service.ApplyInput{Answers: tt.answers})
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			})
		}
	})
}

func TestApplicationServiceUpdateStatus(t *testing.T) {
	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-1")

	t.Run("moves the application and records the event", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPending), nil)
		f.applications.EXPECT().UpdateStatus(ctx, uint(21), model.ApplicationPending, model.ApplicationPreferred).Return(true, nil)
		f.events.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *model.ApplicationEvent) error {
			assert.Equal(t, model.ApplicationPending, e.FromStatus)
			assert.Equal(t, model.ApplicationPreferred, e.ToStatus)
			assert.Equal(t, model.RoleCommander, e.ActorRole)
			assert.Equal(t, uint(9), e.ActorID)
			assert.Equal(t, "req-1", e.RequestID)
			return nil
		})

		app, err := f.svc.UpdateStatus(ctx, f.uow, 9, 21, "Preferred")
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationPreferred, app.Status)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPreferred), nil)

		app, err := f.svc.UpdateStatus(ctx, f.uow, 9, 21, "preferred")
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationPreferred, app.Status)
	})

	t.Run("another commander is forbidden", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPending), nil)

		_, err := f.svc.UpdateStatus(ctx, f.uow, 10, 21, "rejected")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("hired is reserved for assignment", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPreferred), nil)

		_, err := f.svc.UpdateStatus(ctx, f.uow, 9, 21, "hired")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown statuses are rejected", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPending), nil)

		_, err := f.svc.UpdateStatus(ctx, f.uow, 9, 21, "accepted")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("ownership is checked before the status", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPending), nil)

		_, err := f.svc.UpdateStatus(ctx, f.uow, 10, 21, "accepted")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NotErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("terminal statuses do not move", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationRejected), nil)

		_, err := f.svc.UpdateStatus(ctx, f.uow, 9, 21, "pending")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("a concurrent change makes the update stale", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPending), nil)
		f.applications.EXPECT().UpdateStatus(ctx, uint(21), model.ApplicationPending, model.ApplicationRejected).Return(false, nil)

		_, err := f.svc.UpdateStatus(ctx, f.uow, 9, 21, "rejected")
		assert.ErrorIs(t, err, domain.ErrStaleApplication)
	})
}

func TestApplicationServiceScheduleInterview(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the interview and moves the application", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPending), nil)
		f.interviews.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, i *model.Interview) error {
			assert.Equal(t, 2026, i.ScheduledDate.Year())
			i.ID = 5
			return nil
		})
		f.applications.EXPECT().UpdateStatus(ctx, uint(21), model.ApplicationPending, model.ApplicationInterviewScheduled).Return(true, nil)
		f.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		interview, err := f.svc.ScheduleInterview(ctx, f.uow, 9, 21, service.InterviewInput{ScheduledDate: "2026-11-02T10:00:00"})
		require.NoError(t, err)
		assert.Equal(t, uint(5), interview.ID)
		assert.Equal(t, model.ApplicationInterviewScheduled, interview.Application.Status)
	})

	t.Run("rejects a second interview", func(t *testing.T) {
		f := newApplicationFixture(t)
		app := ownedApplication(model.ApplicationInterviewScheduled)
		app.Interview = &model.Interview{ID: 5}
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(app, nil)

		_, err := f.svc.ScheduleInterview(ctx, f.uow, 9, 21, service.InterviewInput{ScheduledDate: "2026-11-02"})
		assert.ErrorIs(t, err, domain.ErrInterviewAlreadyExists)
	})

	t.Run("rejects a bad date", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.applications.EXPECT().FindByID(ctx, uint(21)).Return(ownedApplication(model.ApplicationPending), nil)

		_, err := f.svc.ScheduleInterview(ctx, f.uow, 9, 21, service.InterviewInput{ScheduledDate: "next tuesday"})
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestApplicationServiceAssignToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("hires a preferred volunteer", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.profiles.EXPECT().FindVolunteerByID(ctx, uint(3)).Return(&model.Volunteer{ID: 3}, nil)
		f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(&model.Job{ID: 4, VacantPositions: 1}, nil)
		f.applications.EXPECT().FindByVolunteerAndJob(ctx, uint(3), uint(4)).Return(ownedApplication(model.ApplicationPreferred), nil)
		f.jobs.EXPECT().DecrementVacancy(ctx, uint(4)).Return(true, nil)
		f.applications.EXPECT().UpdateStatus(ctx, uint(21), model.ApplicationPreferred, model.ApplicationHired).Return(true, nil)
		f.events.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *model.ApplicationEvent) error {
			assert.Equal(t, model.RoleHR, e.ActorRole)
			assert.Equal(t, model.ReasonAssigned, e.Reason)
			return nil
		})

		app, err := f.svc.AssignToJob(ctx, f.uow, 1, 3, 4)
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationHired, app.Status)
		assert.Equal(t, 0, app.Job.VacantPositions)
	})

	t.Run("missing application", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.profiles.EXPECT().FindVolunteerByID(ctx, uint(3)).Return(&model.Volunteer{ID: 3}, nil)
		f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(&model.Job{ID: 4, VacantPositions: 1}, nil)
		f.applications.EXPECT().FindByVolunteerAndJob(ctx, uint(3), uint(4)).Return(nil, domain.ErrApplicationNotFound)

		_, err := f.svc.AssignToJob(ctx, f.uow, 1, 3, 4)
		assert.ErrorIs(t, err, domain.ErrNoApplication)
	})

	t.Run("not preferred", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.profiles.EXPECT().FindVolunteerByID(ctx, uint(3)).Return(&model.Volunteer{ID: 3}, nil)
		f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(&model.Job{ID: 4, VacantPositions: 1}, nil)
		f.applications.EXPECT().FindByVolunteerAndJob(ctx, uint(3), uint(4)).Return(ownedApplication(model.ApplicationPending), nil)

		_, err := f.svc.AssignToJob(ctx, f.uow, 1, 3, 4)
		assert.ErrorIs(t, err, domain.ErrNotAccepted)
	})

	t.Run("no vacancy left", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.profiles.EXPECT().FindVolunteerByID(ctx, uint(3)).Return(&model.Volunteer{ID: 3}, nil)
		f.jobs.EXPECT().FindByID(ctx, uint(4)).Return(&model.Job{ID: 4, VacantPositions: 1}, nil)
		f.applications.EXPECT().FindByVolunteerAndJob(ctx, uint(3), uint(4)).Return(ownedApplication(model.ApplicationPreferred), nil)
		f.jobs.EXPECT().DecrementVacancy(ctx, uint(4)).Return(false, nil)

		_, err := f.svc.AssignToJob(ctx, f.uow, 1, 3, 4)
		assert.ErrorIs(t, err, domain.ErrNoVacancy)
	})

	t.Run("unknown volunteer", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.profiles.EXPECT().FindVolunteerByID(ctx, uint(3)).Return(nil, domain.ErrVolunteerNotFound)

		_, err := f.svc.AssignToJob(ctx, f.uow, 1, 3, 4)
		assert.ErrorIs(t, err, domain.ErrVolunteerNotFound)
	})
}
