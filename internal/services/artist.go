package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"concertify/internal/domain"
)

// imageKeyPrefix is the logical namespace for artist images in the object store.
const imageKeyPrefix = "artist_images/"

type artistService struct {
	artistRepo   domain.ArtistRepository
	userRepo     domain.UserRepository
	store        domain.ObjectStore
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewArtistService creates an ArtistService with the given repositories,
// object store, and optional email service (nil disables notifications).
func NewArtistService(
	artistRepo domain.ArtistRepository,
	userRepo domain.UserRepository,
	store domain.ObjectStore,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.ArtistService {
	return &artistService{
		artistRepo:   artistRepo,
		userRepo:     userRepo,
		store:        store,
		emailService: emailService,
		logger:       logger,
	}
}

// Upload registers a new artist: name-uniqueness check, image upload under a
// fresh storage key, artist insert (atomically linked to the user account
// matching the submitted email, when one exists).
//
// Failure causes stay distinguishable through the returned sentinel:
// ErrDuplicateArtistName, ErrMissingFile, ErrStorageFailure, ErrPersistence.
func (s *artistService) Upload(ctx context.Context, in domain.UploadInput) (*domain.UploadResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: artist_name is required", domain.ErrInvalidInput)
	}

	artistID := uuid.NewString()

	// Fast-path duplicate check. The unique index on artists.name remains
	// authoritative; a race past this check is caught on insert.
	if _, err := s.artistRepo.GetByName(ctx, name); err == nil {
		return nil, domain.ErrDuplicateArtistName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: check artist name: %v", domain.ErrPersistence, err)
	}

	if len(in.File) == 0 {
		return nil, domain.ErrMissingFile
	}

	// The storage key is a fresh token plus the original extension; the
	// client filename is never trusted beyond that extension.
	ext := strings.ToLower(filepath.Ext(in.Filename))
	key := imageKeyPrefix + uuid.NewString() + ext

	if err := s.store.Upload(ctx, key, in.File, in.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	s.logger.InfoContext(ctx, "artist image uploaded", "key", key, "bytes", len(in.File))

	artist := &domain.Artist{
		ID:          artistID,
		Name:        name,
		FullName:    strings.TrimSpace(in.FullName),
		Description: in.Description,
		Nationality: in.Nationality,
		DateOfBirth: in.DateOfBirth,
		Email:       strings.TrimSpace(strings.ToLower(in.Email)),
		ImageKey:    key,
		Genre:       in.Genre,
		CreatedAt:   time.Now(),
	}

	result := &domain.UploadResult{Artist: artist}

	var owner *domain.User
	if artist.Email != "" {
		u, err := s.userRepo.GetByEmail(ctx, artist.Email)
		switch {
		case err == nil:
			owner = u
		case errors.Is(err, domain.ErrUserNotFound):
			// No account for that email: register the artist anyway and
			// report that linking was skipped.
			result.LinkSkipped = true
			s.logger.InfoContext(ctx, "no user account for artist email, skipping link", "email", artist.Email)
		default:
			return nil, fmt.Errorf("%w: look up linked account: %v", domain.ErrPersistence, err)
		}
	}

	if owner != nil {
		if err := s.artistRepo.CreateWithOwner(ctx, artist, owner.ID); err != nil {
			return nil, translateCreateErr(err)
		}
		result.Linked = true
		s.notifyArtistLinked(ctx, owner, artist)
	} else {
		if err := s.artistRepo.Create(ctx, artist); err != nil {
			return nil, translateCreateErr(err)
		}
	}

	return result, nil
}

func (s *artistService) notifyArtistLinked(ctx context.Context, owner *domain.User, artist *domain.Artist) {
	if s.emailService == nil {
		return
	}
	data := &domain.ArtistLinkedEmailData{
		Email:      owner.Email,
		UserName:   owner.Name,
		ArtistName: artist.Name,
	}
	// Best effort: the registration already succeeded.
	if err := s.emailService.SendArtistLinked(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to send artist-linked email", "email", owner.Email, "err", err)
	}
}

func translateCreateErr(err error) error {
	if errors.Is(err, domain.ErrDuplicateArtistName) {
		return domain.ErrDuplicateArtistName
	}
	return fmt.Errorf("%w: create artist: %v", domain.ErrPersistence, err)
}

func (s *artistService) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) List(ctx context.Context) ([]*domain.Artist, error) {
	artists, err := s.artistRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}
