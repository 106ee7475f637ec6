package repository_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/anz-davar/giuson/internal/database/dbtest"
	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/mocks"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type seed struct {
	volunteer *model.Volunteer
	commander *model.Commander
	job       *model.Job
}

func seedJob(t *testing.T, uow repository.UnitOfWork, positions int) seed {
	t.Helper()
	ctx := context.Background()

	vUser := &model.User{Email: "v@example.com", PasswordHash: "x", Role: model.RoleVolunteer}
	require.NoError(t, uow.Users().Create(ctx, vUser))
	volunteer := &model.Volunteer{UserID: vUser.ID, FullName: "Dana", NationalID: "111", JoinDate: time.Now().UTC()}
	require.NoError(t, uow.Profiles().Create(ctx, volunteer))

	cUser := &model.User{Email: "c@example.com", PasswordHash: "x", Role: model.RoleCommander}
	require.NoError(t, uow.Users().Create(ctx, cUser))
	commander := &model.Commander{UserID: cUser.ID, Name: "Avi"}
	require.NoError(t, uow.Profiles().Create(ctx, commander))

	job := &model.Job{CommanderID: commander.ID, Title: "Driver", VacantPositions: positions, Status: model.JobStatusOpen}
	require.NoError(t, uow.Jobs().Create(ctx, job))

	return seed{volunteer: volunteer, commander: commander, job: job}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	uow := repository.NewStore(dbtest.Open(t)).Session(ctx)

	user := &model.User{Email: " Dana@Example.com ", PasswordHash: "x", Role: model.RoleHR}
	require.NoError(t, uow.Users().Create(ctx, user))
	assert.Equal(t, "dana@example.com", user.Email)

	found, err := uow.Users().FindByEmail(ctx, "DANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = uow.Users().Create(ctx, &model.User{Email: "dana@example.com", PasswordHash: "y", Role: model.RoleHR})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uow.Users().FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	uow := repository.NewStore(dbtest.Open(t)).Session(ctx)
	s := seedJob(t, uow, 1)

	id, err := uow.Profiles().ProfileIDForUser(ctx, s.volunteer.UserID, model.RoleVolunteer)
	require.NoError(t, err)
	assert.Equal(t, s.volunteer.ID, id)

	_, err = uow.Profiles().ProfileIDForUser(ctx, s.volunteer.UserID, model.RoleCommander)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	other := &model.User{Email: "w@example.com", PasswordHash: "x", Role: model.RoleVolunteer}
	require.NoError(t, uow.Users().Create(ctx, other))
	err = uow.Profiles().Create(ctx, &model.Volunteer{UserID: other.ID, FullName: "W", NationalID: "111"})
	assert.ErrorIs(t, err, domain.ErrNationalIDAlreadyExists)

	taken, err := uow.Profiles().NationalIDExists(ctx, "111")
	require.NoError(t, err)
	assert.True(t, taken)

	err = uow.Profiles().UpdateVolunteer(ctx, 999, map[string]any{"full_name": "Nobody"})
	assert.ErrorIs(t, err, domain.ErrVolunteerNotFound)
}

func TestApplicationRepositoryConditionalWrites(t *testing.T) {
	ctx := context.Background()
	uow := repository.NewStore(dbtest.Open(t)).Session(ctx)
	s := seedJob(t, uow, 1)

	app := &model.JobApplication{JobID: s.job.ID, VolunteerID: s.volunteer.ID, Status: model.ApplicationPending, ApplicationDate: time.Now().UTC()}
	require.NoError(t, uow.Applications().Create(ctx, app))

	dup := &model.JobApplication{JobID: s.job.ID, VolunteerID: s.volunteer.ID, Status: model.ApplicationPending, ApplicationDate: time.Now().UTC()}
	assert.ErrorIs(t, uow.Applications().Create(ctx, dup), domain.ErrDuplicateApplication)

	moved, err := uow.Applications().UpdateStatus(ctx, app.ID, model.ApplicationPending, model.ApplicationPreferred)
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = uow.Applications().UpdateStatus(ctx, app.ID, model.ApplicationPending, model.ApplicationRejected)
	require.NoError(t, err)
	assert.False(t, moved, "the row is no longer pending")

	taken, err := uow.Jobs().DecrementVacancy(ctx, s.job.ID)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = uow.Jobs().DecrementVacancy(ctx, s.job.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	job, err := uow.Jobs().FindByID(ctx, s.job.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, job.VacantPositions)

	counts, err := uow.Jobs().CountApplications(ctx, []uint{s.job.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{s.job.ID: 1}, counts)
}

func TestResumeRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	uow := repository.NewStore(dbtest.Open(t)).Session(ctx)
	s := seedJob(t, uow, 1)

	app := &model.JobApplication{JobID: s.job.ID, VolunteerID: s.volunteer.ID, Status: model.ApplicationPending, ApplicationDate: time.Now().UTC()}
	require.NoError(t, uow.Applications().Create(ctx, app))

	_, err := uow.Resumes().FindByApplicationID(ctx, app.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uow.Resumes().Upsert(ctx, &model.Resume{ApplicationID: app.ID, FilePath: "a.pdf", UploadDate: time.Now().UTC()}))
	require.NoError(t, uow.Resumes().Upsert(ctx, &model.Resume{ApplicationID: app.ID, FilePath: "b.pdf", UploadDate: time.Now().UTC()}))

	resume, err := uow.Resumes().FindByApplicationID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "b.pdf", resume.FilePath)
}

func TestWithinTransaction(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(dbtest.Open(t))

	failure := errors.New("boom")
	err := repository.WithinTransaction(ctx, store, func(uow repository.UnitOfWork) error {
		require.NoError(t, uow.Users().Create(ctx, &model.User{Email: "rolled@example.com", PasswordHash: "x", Role: model.RoleHR}))
		return failure
	})
	assert.ErrorIs(t, err, failure)

	exists, err := store.Session(ctx).Users().EmailExists(ctx, "rolled@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repository.WithinTransaction(ctx, store, func(uow repository.UnitOfWork) error {
		return uow.Users().Create(ctx, &model.User{Email: "kept@example.com", PasswordHash: "x", Role: model.RoleHR})
	}))

	exists, err = store.Session(ctx).Users().EmailExists(ctx, "kept@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWithinTransactionRollbackIsQuietAtWarn(t *testing.T) {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	ctx := context.Background()
	store := repository.NewStore(dbtest.Open(t))

	err := repository.WithinTransaction(ctx, store, func(uow repository.UnitOfWork) error {
		return domain.ErrDuplicateApplication
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	assert.Empty(t, logs.String())
}

func TestWithinTransactionStoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("begin failure skips fn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		failure := errors.New("connection refused")
		store.EXPECT().Begin(ctx).Return(nil, failure)

		err := repository.WithinTransaction(ctx, store, func(uow repository.UnitOfWork) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.ErrorIs(t, err, failure)
	})

	t.Run("commit failure is reported and rolled back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		uow := mocks.NewMockUnitOfWork(ctrl)
		failure := errors.New("disk full")
		store.EXPECT().Begin(ctx).Return(uow, nil)
		gomock.InOrder(
			uow.EXPECT().Commit().Return(failure),
			uow.EXPECT().Rollback().Return(nil),
		)

		err := repository.WithinTransaction(ctx, store, func(uow repository.UnitOfWork) error {
			return nil
		})
		assert.ErrorIs(t, err, failure)
	})
}
