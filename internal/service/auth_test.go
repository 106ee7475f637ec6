package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/anz-davar/giuson/internal/auth"
	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/mocks"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	svc      *service.AuthService
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	uow      *mocks.MockUnitOfWork
	users    *mocks.MockUserRepositoryIface
	profiles *mocks.MockProfileRepositoryIface
}

func fastHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasherWithConfig(auth.PasswordConfig{
		Time:    1,
		Memory:  8 * 1024,
		Threads: 1,
		KeyLen:  32,
		SaltLen: 16,
	})
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)

	hasher := fastHasher()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	f := &authFixture{
		svc:      service.NewAuthService(service.NewAccountFactory(hasher, service.NewPhoneNormalizer("IL")), hasher, tokens),
		hasher:   hasher,
		tokens:   tokens,
		uow:      mocks.NewMockUnitOfWork(ctrl),
		users:    mocks.NewMockUserRepositoryIface(ctrl),
		profiles: mocks.NewMockProfileRepositoryIface(ctrl),
	}
	f.uow.EXPECT().Users().Return(f.users).AnyTimes()
	f.uow.EXPECT().Profiles().Return(f.profiles).AnyTimes()
	return f
}

func volunteerRegistration() *service.VolunteerRegistration {
	return &service.VolunteerRegistration{
		AccountBase: service.AccountBase{
			Role:     "volunteer",
			Email:    "Dana@Example.com",
			Password: "s3cret-pass",
		},
		FullName:    "Dana Levi",
		NationalID:  "123456782",
		DateOfBirth: "1995-04-12",
		Phone:       "050-123-4567",
		Courses:     []string{"first aid"},
	}
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and the profile", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().EmailExists(ctx, "dana@example.com").Return(false, nil)
		f.profiles.EXPECT().NationalIDExists(ctx, "123456782").Return(false, nil)
		f.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
			assert.Equal(t, model.RoleVolunteer, u.Role)
			assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
			u.ID = 7
			return nil
		})
		f.profiles.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p model.Profile) error {
			v, ok := p.(*model.Volunteer)
			require.True(t, ok)
			assert.Equal(t, uint(7), v.UserID)
			assert.Equal(t, "+972501234567", v.Phone)
			require.NotNil(t, v.DateOfBirth)
			v.ID = 3
			return nil
		})

		account, err := f.svc.Register(ctx, f.uow, volunteerRegistration())
		require.NoError(t, err)
		assert.Equal(t, model.RoleVolunteer, account.Role())
		assert.Equal(t, uint(7), account.User.ID)
		assert.Equal(t, uint(3), account.Profile.ProfileID())
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().EmailExists(ctx, "dana@example.com").Return(true, nil)

		_, err := f.svc.Register(ctx, f.uow, volunteerRegistration())
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("rejects a taken national id", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().EmailExists(ctx, gomock.Any()).Return(false, nil)
		f.profiles.EXPECT().NationalIDExists(ctx, "123456782").Return(true, nil)

		_, err := f.svc.Register(ctx, f.uow, volunteerRegistration())
		assert.ErrorIs(t, err, domain.ErrNationalIDAlreadyExists)
	})

	t.Run("validates before touching the store", func(t *testing.T) {
		f := newAuthFixture(t)
		reg := volunteerRegistration()
		reg.Password = ""

		_, err := f.svc.Register(ctx, f.uow, reg)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("accepts a short password", func(t *testing.T) {
		f := newAuthFixture(t)
		reg := volunteerRegistration()
		reg.Password = "pw1"

		f.users.EXPECT().EmailExists(ctx, "dana@example.com").Return(false, nil)
		f.profiles.EXPECT().NationalIDExists(ctx, "123456782").Return(false, nil)
		f.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
			ok, err := f.hasher.Verify("pw1", u.PasswordHash)
			require.NoError(t, err)
			assert.True(t, ok)
			u.ID = 8
			return nil
		})
		f.profiles.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := f.svc.Register(ctx, f.uow, reg)
		require.NoError(t, err)
	})

	t.Run("rejects an invalid phone", func(t *testing.T) {
		f := newAuthFixture(t)
		reg := volunteerRegistration()
		reg.Phone = "12"

		_, err := f.svc.Register(ctx, f.uow, reg)
		assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	})

	t.Run("rejects a nil registration", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Register(ctx, f.uow, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		hash, err := f.hasher.Hash("s3cret-pass")
		require.NoError(t, err)

		f.users.EXPECT().FindByEmail(ctx, "dana@example.com").Return(&model.User{
			ID:           7,
			Email:        "dana@example.com",
			PasswordHash: hash,
			Role:         model.RoleCommander,
		}, nil)

		out, err := f.svc.Login(ctx, f.uow, service.LoginInput{Email: "dana@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, model.RoleCommander, out.Role)

		claims, err := f.tokens.Validate(out.Token)
		require.NoError(t, err)
		userID, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, uint(7), userID)
	})

	t.Run("unknown email and wrong password fail the same way", func(t *testing.T) {
		f := newAuthFixture(t)
		hash, err := f.hasher.Hash("s3cret-pass")
		require.NoError(t, err)

		f.users.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domain.ErrUserNotFound)
		f.users.EXPECT().FindByEmail(ctx, "dana@example.com").Return(&model.User{ID: 7, PasswordHash: hash, Role: model.RoleHR}, nil)

		_, unknownErr := f.svc.Login(ctx, f.uow, service.LoginInput{Email: "ghost@example.com", Password: "whatever1"})
		_, wrongErr := f.svc.Login(ctx, f.uow, service.LoginInput{Email: "dana@example.com", Password: "whatever1"})

		assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("requires both fields", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Login(ctx, f.uow, service.LoginInput{Email: "dana@example.com"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthServiceIdentify(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the stored role and profile", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := f.tokens.Generate(5, model.RoleVolunteer)
		require.NoError(t, err)

		// The role was changed after the token was issued.
		f.users.EXPECT().FindByID(ctx, uint(5)).Return(&model.User{ID: 5, Email: "a@b.c", Role: model.RoleHR}, nil)
		f.profiles.EXPECT().ProfileIDForUser(ctx, uint(5), model.RoleHR).Return(uint(11), nil)

		id, err := f.svc.Identify(ctx, f.uow, token)
		require.NoError(t, err)
		assert.Equal(t, model.RoleHR, id.Role)
		assert.Equal(t, uint(11), id.ProfileID)
	})

	t.Run("an empty token is unauthenticated", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Identify(ctx, f.uow, "")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("a garbage token is invalid", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Identify(ctx, f.uow, "not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
	})

	t.Run("a deleted user is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := f.tokens.Generate(5, model.RoleVolunteer)
		require.NoError(t, err)

		f.users.EXPECT().FindByID(ctx, uint(5)).Return(nil, domain.ErrUserNotFound)

		_, err = f.svc.Identify(ctx, f.uow, token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})

	t.Run("authorize requires the role", func(t *testing.T) {
		f := newAuthFixture(t)
		token, err := f.tokens.Generate(5, model.RoleVolunteer)
		require.NoError(t, err)

		f.users.EXPECT().FindByID(ctx, uint(5)).Return(&model.User{ID: 5, Role: model.RoleVolunteer}, nil)
		f.profiles.EXPECT().ProfileIDForUser(ctx, uint(5), model.RoleVolunteer).Return(uint(2), nil)

		_, err = f.svc.Authorize(ctx, f.uow, token, model.RoleCommander)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
