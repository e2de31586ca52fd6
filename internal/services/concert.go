package services

import (
	"context"
	"errors"
	"fmt"

	"concertify/internal/domain"
)

type concertService struct {
	concertRepo domain.ConcertRepository
	store       domain.ObjectStore
}

// NewConcertService creates a ConcertService. The object store is used only
// to derive public image URLs for listing entries.
func NewConcertService(concertRepo domain.ConcertRepository, store domain.ObjectStore) domain.ConcertService {
	return &concertService{concertRepo: concertRepo, store: store}
}

func (s *concertService) List(ctx context.Context) ([]*domain.Concert, error) {
	concerts, err := s.concertRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}
	for _, c := range concerts {
		s.fillImageURL(c)
	}
	return concerts, nil
}

func (s *concertService) GetByID(ctx context.Context, id string) (*domain.Concert, error) {
	concert, err := s.concertRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get concert: %w", err)
	}
	s.fillImageURL(concert)
	return concert, nil
}

// Resolve selects one concert from a loaded collection by ID. An absent ID
// is an explicit ErrNotFound, never something callers can mistake for
// still-loading data.
func (s *concertService) Resolve(concerts []*domain.Concert, id string) (*domain.Concert, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, c := range concerts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *concertService) fillImageURL(c *domain.Concert) {
	if c.ImageKey != "" && s.store != nil {
		c.ImageURL = s.store.PublicURL(c.ImageKey)
	}
}
