package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concertify/internal/domain"
)

// fakeConcertRepo implements domain.ConcertRepository for tests.
type fakeConcertRepo struct {
	concerts []*domain.Concert
	listErr  error
}

func (f *fakeConcertRepo) List(ctx context.Context) ([]*domain.Concert, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.concerts, nil
}

func (f *fakeConcertRepo) GetByID(ctx context.Context, id string) (*domain.Concert, error) {
	for _, c := range f.concerts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func fiveConcerts() []*domain.Concert {
	return []*domain.Concert{
		{ID: "c1", Name: "Summer Jam", ImageKey: "artist_images/a.jpg"},
		{ID: "c2", Name: "Rock Night"},
		{ID: "c3", Name: "Jazz Evening"},
		{ID: "c4", Name: "Synth Fest"},
		{ID: "c5", Name: "Open Air"},
	}
}

func TestConcertService_Resolve(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{}, newFakeObjectStore())
	concerts := fiveConcerts()

	tests := []struct {
		name    string
		id      string
		wantID  string
		wantErr error
	}{
		{name: "match", id: "c3", wantID: "c3"},
		{name: "no match is an explicit not-found", id: "missing", wantErr: domain.ErrNotFound},
		{name: "empty id", id: "", wantErr: domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(concerts, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestConcertService_Resolve_EmptyCollection(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{}, newFakeObjectStore())
	_, err := svc.Resolve(nil, "c1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConcertService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := &fakeConcertRepo{concerts: fiveConcerts()}
	svc := NewConcertService(repo, newFakeObjectStore())

	got, err := svc.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Summer Jam", got.Name)
	assert.Equal(t, "https://concertify.s3.eu-central-1.amazonaws.com/artist_images/a.jpg", got.ImageURL)

	_, err = svc.GetByID(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConcertService_List(t *testing.T) {
	ctx := context.Background()
	repo := &fakeConcertRepo{concerts: fiveConcerts()}
	svc := NewConcertService(repo, newFakeObjectStore())

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.NotEmpty(t, got[0].ImageURL)

	repo.listErr = errors.New("db down")
	_, err = svc.List(ctx)
	require.Error(t, err)
}
