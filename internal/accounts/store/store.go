package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used by registration (uniqueness check) and login.
	// The lookup is case-sensitive, matching how emails are stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID) and
	// returns the stored record with its store-assigned timestamps.
	// Returns ErrAlreadyExists when the email is already taken; the unique
	// constraint is the authority, not any prior lookup.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
}
