package postgres

import (
	"context"
	"database/sql"
	"errors"

	"concertify/internal/domain"
)

type concertRepository struct {
	DB *sql.DB
}

func NewConcertRepository(db *sql.DB) domain.ConcertRepository {
	return &concertRepository{DB: db}
}

const concertColumns = `
	id, name, date, start_time, doors_time, description, image_key,
	artist_id, artist_name, genre_id, genre_name,
	venue_id, venue_name, venue_address, venue_location
`

func (r *concertRepository) List(ctx context.Context) ([]*domain.Concert, error) {
	query := `
		SELECT ` + concertColumns + `
		FROM concerts
		ORDER BY date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	concerts := make([]*domain.Concert, 0)
	for rows.Next() {
		c, err := scanConcert(rows.Scan)
		if err != nil {
			return nil, err
		}
		concerts = append(concerts, c)
	}
	return concerts, rows.Err()
}

func (r *concertRepository) GetByID(ctx context.Context, id string) (*domain.Concert, error) {
	query := `
		SELECT ` + concertColumns + `
		FROM concerts
		WHERE id = $1
	`
	c, err := scanConcert(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanConcert(scan func(...any) error) (*domain.Concert, error) {
	c := &domain.Concert{}
	err := scan(
		&c.ID, &c.Name, &c.Date, &c.Start, &c.Doors, &c.Description, &c.ImageKey,
		&c.Artist.ID, &c.Artist.Name, &c.Genre.ID, &c.Genre.Name,
		&c.Venue.ID, &c.Venue.Name, &c.Venue.Address, &c.Venue.Location,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
