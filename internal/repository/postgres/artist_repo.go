package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"concertify/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type artistRepository struct {
	DB *sql.DB
}

func NewArtistRepository(db *sql.DB) domain.ArtistRepository {
	return &artistRepository{DB: db}
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artists (id, name, full_name, description, nationality, date_of_birth, email, image_key, genre_id, genre_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Name, a.FullName, a.Description, a.Nationality, a.DateOfBirth,
		a.Email, a.ImageKey, a.Genre.ID, a.Genre.Name, a.CreatedAt,
	)
	return translateArtistErr(err)
}

// CreateWithOwner inserts the artist and the owner link in one transaction,
// so a linked artist can never exist half-written.
func (r *artistRepository) CreateWithOwner(ctx context.Context, a *domain.Artist, ownerUserID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insertArtist := `
		INSERT INTO artists (id, name, full_name, description, nationality, date_of_birth, email, image_key, genre_id, genre_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := tx.ExecContext(ctx, insertArtist,
		a.ID, a.Name, a.FullName, a.Description, a.Nationality, a.DateOfBirth,
		a.Email, a.ImageKey, a.Genre.ID, a.Genre.Name, a.CreatedAt,
	); err != nil {
		return translateArtistErr(err)
	}

	insertLink := `
		INSERT INTO user_artists (user_id, artist_id)
		VALUES ($1, $2)
	`
	if _, err := tx.ExecContext(ctx, insertLink, ownerUserID, a.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *artistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	return r.getOne(ctx, `WHERE name = $1`, name)
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *artistRepository) getOne(ctx context.Context, where string, arg any) (*domain.Artist, error) {
	query := `
		SELECT id, name, full_name, description, nationality, date_of_birth, email, image_key, genre_id, genre_name, created_at
		FROM artists
	` + where
	a := &domain.Artist{}
	var emailNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Name, &a.FullName, &a.Description, &a.Nationality, &a.DateOfBirth,
		&emailNull, &a.ImageKey, &a.Genre.ID, &a.Genre.Name, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if emailNull.Valid {
		a.Email = emailNull.String
	}
	return a, nil
}

func (r *artistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	query := `
		SELECT id, name, full_name, description, nationality, date_of_birth, email, image_key, genre_id, genre_name, created_at
		FROM artists
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
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

// translateArtistErr maps the unique index on artists.name to the domain
// sentinel. The index, not the service pre-check, is the source of truth for
// name uniqueness.
func translateArtistErr(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateArtistName
	}
	return err
}
