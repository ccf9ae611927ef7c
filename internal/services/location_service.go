package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrLocationNotFound     = errors.New("location not found")
	ErrLocationNameRequired = errors.New("location name is required")
)

// LocationService manages job sites.
type LocationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new LocationService.
func NewLocationService(locationRepo repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// CreateLocationInput represents a new job site.
type CreateLocationInput struct {
	Name      string
	Latitude  float64
	Longitude float64
	Radius    float64
}

// ListLocations returns every location.
func (s *LocationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// CreateLocation stores a location. The radius is kept as given.
func (s *LocationService) CreateLocation(ctx context.Context, input CreateLocationInput) (*models.Location, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrLocationNameRequired
	}

	location := &models.Location{
		Name:      name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Radius:    input.Radius,
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

// DeleteLocation removes a location and its assignments.
func (s *LocationService) DeleteLocation(ctx context.Context, id uint64) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}
