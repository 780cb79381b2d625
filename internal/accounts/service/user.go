package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/domain"
	"github.com/aussiebroadwan/tabaccounts/internal/accounts/store"
	"github.com/aussiebroadwan/tabaccounts/pkg/cryptox"
	"github.com/aussiebroadwan/tabaccounts/pkg/idx"
	"github.com/aussiebroadwan/tabaccounts/pkg/slogx"
)

var (
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Keeping them indistinguishable is deliberate; callers must
	// not be able to probe which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	Store store.Store
}

// Register creates a new account with a freshly hashed password. The email
// uniqueness check is advisory; the store's unique constraint is the
// authority, so a registration losing a race to a concurrent insert still
// comes back as ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies the credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
