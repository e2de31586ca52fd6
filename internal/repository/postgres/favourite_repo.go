package postgres

import (
	"context"
	"database/sql"

	"concertify/internal/domain"
)

type favouriteRepository struct {
	DB *sql.DB
}

func NewFavouriteRepository(db *sql.DB) domain.FavouriteRepository {
	return &favouriteRepository{DB: db}
}

// Add is idempotent: the primary key on (user_id, concert_id) absorbs
// double-submits and created reports whether a row was actually inserted.
func (r *favouriteRepository) Add(ctx context.Context, f *domain.Favourite) (bool, error) {
	query := `
		INSERT INTO favourites (user_id, concert_id, concert_image, concert_name, concert_date, concert_artist, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, concert_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query,
		f.UserID, f.ConcertID, f.ConcertImage, f.ConcertName, f.ConcertDate, f.ConcertArtist, f.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *favouriteRepository) Remove(ctx context.Context, userID, concertID string) (bool, error) {
	query := `DELETE FROM favourites WHERE user_id = $1 AND concert_id = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, concertID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *favouriteRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Favourite, error) {
	query := `
		SELECT user_id, concert_id, concert_image, concert_name, concert_date, concert_artist, created_at
		FROM favourites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	favs := make([]*domain.Favourite, 0)
	for rows.Next() {
		f := &domain.Favourite{}
		if err := rows.Scan(&f.UserID, &f.ConcertID, &f.ConcertImage, &f.ConcertName, &f.ConcertDate, &f.ConcertArtist, &f.CreatedAt); err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}
