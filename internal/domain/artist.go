package domain

import (
	"context"
	"time"
)

// Genre is the genre sub-record embedded in artists and concerts.
// swagger:model Genre
type Genre struct {
	ID   string `json:"genre_id"`
	Name string `json:"genre_name"`
}

// Artist represents a performer, including the storage key of its image.
// The JSON field names match the wire contract of the original web client.
// swagger:model Artist
type Artist struct {
	ID          string    `json:"artist_id"`
	Name        string    `json:"artist_name"`
	FullName    string    `json:"artist_full_name"`
	Description string    `json:"artist_description"`
	Nationality string    `json:"artist_nation"`
	DateOfBirth string    `json:"artist_dob"`
	Email       string    `json:"artist_email,omitempty"`
	ImageKey    string    `json:"artist_image"`
	Genre       Genre     `json:"artist_genre"`
	CreatedAt   time.Time `json:"created_at"`
}

// UploadInput carries the multipart form fields of an artist submission.
// File is the raw image body; Filename is used only for its extension.
type UploadInput struct {
	Name        string
	FullName    string
	Description string
	Nationality string
	DateOfBirth string
	Email       string
	Genre       Genre
	Filename    string
	File        []byte
	ContentType string
}

// UploadResult reports a completed artist registration. Linked is true when
// the artist was attached to the user account matching the submitted email;
// LinkSkipped is true when an email was given but no such account exists.
type UploadResult struct {
	Artist      *Artist
	Linked      bool
	LinkSkipped bool
}

// ArtistRepository defines the interface for artist storage.
// Create and CreateWithOwner must translate a unique violation on the artist
// name into ErrDuplicateArtistName; the pre-check in the service is only an
// optimization and the constraint is the source of truth.
type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	// CreateWithOwner inserts the artist and appends it to the owner's
	// administered-artists list in a single transaction.
	CreateWithOwner(ctx context.Context, artist *Artist, ownerUserID string) error
	GetByName(ctx context.Context, name string) (*Artist, error)
	GetByID(ctx context.Context, id string) (*Artist, error)
	List(ctx context.Context) ([]*Artist, error)
}

// ArtistService defines the artist registration workflow.
type ArtistService interface {
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)
	GetByID(ctx context.Context, id string) (*Artist, error)
	List(ctx context.Context) ([]*Artist, error)
}
