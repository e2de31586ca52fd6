package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"concertify/internal/domain"
)

type favouriteService struct {
	favouriteRepo domain.FavouriteRepository
	concertRepo   domain.ConcertRepository
}

// NewFavouriteService creates a FavouriteService with the given repositories.
func NewFavouriteService(favouriteRepo domain.FavouriteRepository, concertRepo domain.ConcertRepository) domain.FavouriteService {
	return &favouriteService{
		favouriteRepo: favouriteRepo,
		concertRepo:   concertRepo,
	}
}

// Add favourites a concert for a user. Adding an already-favourited concert
// is a no-op success, so a double-submitted form cannot fail or duplicate.
func (s *favouriteService) Add(ctx context.Context, fav *domain.Favourite) (bool, error) {
	if fav == nil || strings.TrimSpace(fav.UserID) == "" || strings.TrimSpace(fav.ConcertID) == "" {
		return false, fmt.Errorf("%w: user and concert are required", domain.ErrInvalidInput)
	}

	// Ensure the concert exists before recording the membership.
	if _, err := s.concertRepo.GetByID(ctx, fav.ConcertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get concert: %w", err)
	}

	fav.CreatedAt = time.Now()
	created, err := s.favouriteRepo.Add(ctx, fav)
	if err != nil {
		return false, fmt.Errorf("add favourite: %w", err)
	}
	return created, nil
}

// Remove unfavourites a concert. Removing an absent favourite is a no-op
// success.
func (s *favouriteService) Remove(ctx context.Context, userID, concertID string) (bool, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(concertID) == "" {
		return false, fmt.Errorf("%w: user and concert are required", domain.ErrInvalidInput)
	}
	removed, err := s.favouriteRepo.Remove(ctx, userID, concertID)
	if err != nil {
		return false, fmt.Errorf("remove favourite: %w", err)
	}
	return removed, nil
}

func (s *favouriteService) ListByUserID(ctx context.Context, userID string) ([]*domain.Favourite, error) {
	favs, err := s.favouriteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	return favs, nil
}
