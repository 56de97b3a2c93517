package service

import (
	"context"

	"github.com/kritsada-dev/tickethub/internal/dto"
	"github.com/kritsada-dev/tickethub/internal/repository"
)

// CatalogService exposes the browse taxonomy: categories and venues.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	ListVenues(ctx context.Context) ([]dto.VenueResponse, error)
}

// catalogService implements the CatalogService interface
type catalogService struct {
	categoryRepo repository.CategoryRepository
	venueRepo    repository.VenueRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(categoryRepo repository.CategoryRepository, venueRepo repository.VenueRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		venueRepo:    venueRepo,
	}
}

// ListCategories returns all categories
func (s *catalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = dto.NewCategoryResponse(category)
	}
	return responses, nil
}

// ListVenues returns all venues
func (s *catalogService) ListVenues(ctx context.Context) ([]dto.VenueResponse, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VenueResponse, len(venues))
	for i, venue := range venues {
		responses[i] = dto.NewVenueResponse(venue)
	}
	return responses, nil
}
