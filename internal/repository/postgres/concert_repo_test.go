package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"concertify/internal/domain"
)

var concertTestColumns = []string{
	"id", "name", "date", "start_time", "doors_time", "description", "image_key",
	"artist_id", "artist_name", "genre_id", "genre_name",
	"venue_id", "venue_name", "venue_address", "venue_location",
}

func concertRow(rows *sqlmock.Rows, id, name string) *sqlmock.Rows {
	return rows.AddRow(
		id, name, "2025-10-01", "20:00", "19:00", "A night of music", "concert_images/"+id+".jpg",
		"a1", "Daft Punk", "g1", "Electronic",
		"v1", "Paradiso", "Weteringschans 6-8", "Amsterdam",
	)
}

func TestConcertRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(concertTestColumns)
	concertRow(rows, "c1", "Summer Night")
	concertRow(rows, "c2", "Autumn Jam")
	mock.ExpectQuery(`SELECT (.+) FROM concerts`).WillReturnRows(rows)

	repo := NewConcertRepository(db)
	concerts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, concerts, 2)
	require.Equal(t, "Summer Night", concerts[0].Name)
	require.Equal(t, "Paradiso", concerts[0].Venue.Name)
	require.Equal(t, "Daft Punk", concerts[1].Artist.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConcertRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(concertTestColumns)
		concertRow(rows, "c1", "Summer Night")
		mock.ExpectQuery(`SELECT (.+) FROM concerts`).
			WithArgs("c1").
			WillReturnRows(rows)

		repo := NewConcertRepository(db)
		c, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		require.Equal(t, "c1", c.ID)
		require.Equal(t, "concert_images/c1.jpg", c.ImageKey)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM concerts`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewConcertRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
