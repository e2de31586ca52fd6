package domain

import "context"

// ObjectStore is the port for binary asset storage (infrastructure).
// Keys are relative paths like "artist_images/<uuid>.jpg"; PublicURL turns a
// key into the browser-addressable URL for the configured bucket.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) string
}
