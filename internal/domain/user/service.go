package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password, enrollmentID string) error
	Authenticate(ctx context.Context, username, password string) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
		now:       time.Now,
	}
}

func (s *Service) Register(ctx context.Context, username, password, enrollmentID string) error {
	if err := s.validator.ValidateRegister(username, password, enrollmentID); err != nil {
		s.log.Debug("validation failed", "username", username, "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.repo.Create(ctx, User{
		Username:     username,
		PasswordHash: string(hash),
		EnrollmentID: enrollmentID,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			s.log.Info("registration rejected, username taken", "username", username)
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "username", username)
	return nil
}

// Authenticate never tells an unknown user apart from a wrong password.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if err := s.validator.ValidateLogin(username); err != nil {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
