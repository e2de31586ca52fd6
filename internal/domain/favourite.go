package domain

import (
	"context"
	"time"
)

// Favourite is a user-to-concert membership record with denormalized concert
// display fields, enabling the favourites shortlist without joins at read time.
// swagger:model Favourite
type Favourite struct {
	UserID        string    `json:"user_id"`
	ConcertID     string    `json:"concert_id"`
	ConcertImage  string    `json:"concert_image"`
	ConcertName   string    `json:"concert_name"`
	ConcertDate   string    `json:"concert_date"`
	ConcertArtist string    `json:"concert_artist"`
	CreatedAt     time.Time `json:"created_at"`
}

// FavouriteRepository defines storage for favourites. Add must be a no-op
// for an existing (user, concert) pair; Remove must be a no-op for an absent
// one. Both report what happened through their boolean result.
type FavouriteRepository interface {
	Add(ctx context.Context, fav *Favourite) (created bool, err error)
	Remove(ctx context.Context, userID, concertID string) (removed bool, err error)
	ListByUserID(ctx context.Context, userID string) ([]*Favourite, error)
}

// FavouriteService defines the favourite toggle. Both operations are
// idempotent: double-submits collapse to a single membership change.
type FavouriteService interface {
	// Add favourites the concert for the user. created is false when the
	// favourite already existed.
	Add(ctx context.Context, fav *Favourite) (created bool, err error)
	// Remove unfavourites the concert. removed is false when no favourite
	// existed.
	Remove(ctx context.Context, userID, concertID string) (removed bool, err error)
	ListByUserID(ctx context.Context, userID string) ([]*Favourite, error)
}
