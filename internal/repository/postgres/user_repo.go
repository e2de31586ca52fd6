package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"concertify/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (email, password_hash, salt, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Salt, u.Name, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, salt, name, created_at, updated_at
		FROM users
	` + where
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListArtists returns the artists the user administers, in the order they
// were linked.
func (r *userRepository) ListArtists(ctx context.Context, userID string) ([]*domain.Artist, error) {
	query := `
		SELECT a.id, a.name, a.full_name, a.description, a.nationality, a.date_of_birth, a.email, a.image_key, a.genre_id, a.genre_name, a.created_at
		FROM user_artists ua
		JOIN artists a ON a.id = ua.artist_id
		WHERE ua.user_id = $1
		ORDER BY ua.position ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a := &domain.Artist{}
		var emailNull sql.NullString
		if err := rows.Scan(
			&a.ID, &a.Name, &a.FullName, &a.Description, &a.Nationality, &a.DateOfBirth,
			&emailNull, &a.ImageKey, &a.Genre.ID, &a.Genre.Name, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		if emailNull.Valid {
			a.Email = emailNull.String
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}
