package domain

import "context"

// ConcertArtist is the artist summary embedded in a concert.
// swagger:model ConcertArtist
type ConcertArtist struct {
	ID   string `json:"artist_id"`
	Name string `json:"artist_name"`
}

// Venue is the venue sub-record embedded in a concert.
// swagger:model Venue
type Venue struct {
	ID       string `json:"venue_id"`
	Name     string `json:"venue_name"`
	Address  string `json:"venue_address"`
	Location string `json:"venue_location"`
}

// Concert is a read-only listing entry. JSON field names match the wire
// contract of the original web client.
// swagger:model Concert
type Concert struct {
	ID          string        `json:"_id"`
	Name        string        `json:"concert_name"`
	Date        string        `json:"concert_date"`
	Start       string        `json:"concert_start"`
	Doors       string        `json:"concert_doors"`
	Description string        `json:"concert_description"`
	ImageKey    string        `json:"concert_image"`
	ImageURL    string        `json:"concert_image_url,omitempty"`
	Artist      ConcertArtist `json:"concert_artist"`
	Genre       Genre         `json:"concert_genre"`
	Venue       Venue         `json:"concert_venue"`
}

// ConcertRepository defines read access to the concert catalogue.
type ConcertRepository interface {
	List(ctx context.Context) ([]*Concert, error)
	GetByID(ctx context.Context, id string) (*Concert, error)
}

// ConcertService resolves concerts for the detail view. GetByID and Resolve
// return ErrNotFound for an unknown ID so callers can render an explicit
// not-found state instead of waiting forever.
type ConcertService interface {
	List(ctx context.Context) ([]*Concert, error)
	GetByID(ctx context.Context, id string) (*Concert, error)
	// Resolve selects the concert with the given ID from an already-loaded
	// collection.
	Resolve(concerts []*Concert, id string) (*Concert, error)
}
