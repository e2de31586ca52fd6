package domain

import (
	"context"
	"time"
)

// User represents a registered user. A user maintains an insertion-ordered
// list of artist records it administers, populated on reads that ask for it.
// swagger:model User
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Artists      []*Artist `json:"artist,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(email, name, passwordHash, salt string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues session tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the user ID it names.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
// GetByEmail and GetByID return ErrUserNotFound for absent users, never a
// nil user with nil error; callers must branch on it explicitly.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// ListArtists returns the artists the user administers, insertion order.
	ListArtists(ctx context.Context, userID string) ([]*Artist, error)
}

// UserService defines signup, login, and current-user operations.
type UserService interface {
	SignUp(ctx context.Context, email, password, name string) (*User, error)
	// Login returns a signed session token alongside the user.
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetByID(ctx context.Context, id string) (*User, error)
}
