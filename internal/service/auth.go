package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anz-davar/giuson/internal/auth"
	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/google/uuid"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"-"`
	Token string      `json:"access_token"`
	Role  model.Role  `json:"role"`
}

// AuthService owns account creation, login and token based identification.
type AuthService struct {
	factory *AccountFactory
	hasher  PasswordHasher
	tokens  *auth.TokenManager

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(factory *AccountFactory, hasher PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		factory: factory,
		hasher:  hasher,
		tokens:  tokens,
	}
}

// Register creates the user and its role profile in uow. Both rows are
// written or, once the caller rolls back, neither is.
func (s *AuthService) Register(ctx context.Context, uow repository.UnitOfWork, reg Registration) (*model.Account, error) {
	account, err := s.factory.Build(reg)
	if err != nil {
		return nil, err
	}

	exists, err := uow.Users().EmailExists(ctx, account.User.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	if v, ok := account.Volunteer(); ok {
		taken, err := uow.Profiles().NationalIDExists(ctx, v.NationalID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrNationalIDAlreadyExists
		}
	}

	if err := uow.Users().Create(ctx, account.User); err != nil {
		return nil, err
	}

	account.Profile.AttachUser(account.User.ID)
	if err := uow.Profiles().Create(ctx, account.Profile); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Account registered",
		"userID", account.User.ID,
		"role", account.Role(),
	)
	return account, nil
}

// Login verifies the credentials and issues a token. Unknown emails and
// wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, uow repository.UnitOfWork, input LoginInput) (*LoginOutput, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	user, err := uow.Users().FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Spend the same hashing work as a real check.
			_, _ = s.hasher.Verify(input.Password, s.dummy())
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		User:  user,
		Token: token,
		Role:  user.Role,
	}, nil
}

// Identify resolves a bearer token to the current identity of its user. The
// role comes from the stored user, not from the token.
func (s *AuthService) Identify(ctx context.Context, uow repository.UnitOfWork, token string) (*Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	user, err := uow.Users().FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %d no longer exists", domain.ErrUnauthorized, userID)
		}
		return nil, err
	}

	profileID, err := uow.Profiles().ProfileIDForUser(ctx, user.ID, user.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %d has no %s profile", domain.ErrUnauthorized, userID, user.Role)
		}
		return nil, err
	}

	return &Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ProfileID: profileID,
	}, nil
}

// Authorize identifies the token holder and requires the given role.
func (s *AuthService) Authorize(ctx context.Context, uow repository.UnitOfWork, token string, required model.Role) (*Identity, error) {
	id, err := s.Identify(ctx, uow, token)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(id, required); err != nil {
		return nil, err
	}
	return id, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			slog.Warn("Failed to prepare dummy password hash", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
