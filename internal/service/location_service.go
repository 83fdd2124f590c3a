package service

import (
	"context"
	"fmt"
	"strings"

	"agency-locator-api/internal/models"
	"agency-locator-api/internal/observability"
)

// LocationService resolves reference points and looks up postal locations.
type LocationService struct {
	repo    PostalLocationRepository
	metrics *observability.Metrics
}

// PostalLocationRepository interface for dependency injection
type PostalLocationRepository interface {
	FindPostalLocation(ctx context.Context, zipCode string) (*models.PostalLocation, error)
}

// NewLocationService creates a new location service
func NewLocationService(repo PostalLocationRepository, metrics *observability.Metrics) *LocationService {
	return &LocationService{repo: repo, metrics: metrics}
}

// Resolve returns the reference point for the raw inputs. The zip code is only looked up when
// the coordinates are unusable.
func (s *LocationService) Resolve(ctx context.Context, rawLat, rawLong, zipCode string) (Resolution, error) {
	resolution := ResolveLocation(rawLat, rawLong, nil)

	zipCode = strings.TrimSpace(zipCode)
	if resolution.Point == nil && zipCode != "" {
		postal, err := s.repo.FindPostalLocation(ctx, zipCode)
		if err != nil {
			return Resolution{}, fmt.Errorf("service: failed to look up zip code: %w", err)
		}
		resolution = ResolveLocation(rawLat, rawLong, postal)
	}

	s.metrics.LocationResolutions.WithLabelValues(string(resolution.Source)).Inc()
	return resolution, nil
}

// LookupZipCode returns the postal location for zipCode, or nil when it is unknown.
func (s *LocationService) LookupZipCode(ctx context.Context, zipCode string) (*models.PostalLocation, error) {
	zipCode = strings.TrimSpace(zipCode)
	if zipCode == "" {
		return nil, fmt.Errorf("service: zip code cannot be empty")
	}

	postal, err := s.repo.FindPostalLocation(ctx, zipCode)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up zip code: %w", err)
	}

	return postal, nil
}
