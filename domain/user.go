package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
type User struct {
	ID        int64     // Unique identifier
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// Token is the single API key of a user, sent as "Authorization: Token <key>".
type Token struct {
	Key       string
	UserID    int64
	CreatedAt time.Time
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrNotFound if the user doesn't exist.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error
}

type TokenRepository interface {
	GetByKey(ctx context.Context, key string) (Token, error)
	GetByUserID(ctx context.Context, userID int64) (Token, error)
	Store(ctx context.Context, t *Token) error
}

// Authenticator resolves a token key to its user.
type Authenticator interface {
	// Authenticate returns ErrUnauthorized for unknown keys.
	Authenticate(ctx context.Context, key string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	Authenticator

	// Login verifies user credentials and returns the user's token key.
	// Returns ErrUnauthorized if the credentials do not match.
	Login(ctx context.Context, username, password string) (string, error)

	// EnsureUser returns the user named username, creating it with password
	// when missing. created reports whether a new account was made.
	EnsureUser(ctx context.Context, username, password string) (u User, created bool, err error)

	// IssueToken returns the user's token, creating one on first use.
	IssueToken(ctx context.Context, userID int64) (Token, error)
}
