package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agency-locator-api/internal/models"
	"agency-locator-api/internal/observability"

	"github.com/rs/zerolog/log"
)

// AgencyService contains the agency search logic.
type AgencyService struct {
	repo    AgencyRepository
	metrics *observability.Metrics
}

// AgencyRepository supplies postal lookups and the active/published agency snapshot.
// ListActiveAgencies must return only active, published records with associations resolved.
type AgencyRepository interface {
	FindPostalLocation(ctx context.Context, zipCode string) (*models.PostalLocation, error)
	ListActiveAgencies(ctx context.Context) ([]models.Agency, error)
}

// SearchParams are the typed search inputs. Lat and Long stay raw because a malformed pair
// is not an error; it is dropped during location resolution.
type SearchParams struct {
	ZipCode         string
	Lat             string
	Long            string
	EventDate       *time.Time
	ServiceCategory string
	MaxDistance     *float64
	Sort            SortOrder
}

// NewAgencyService creates a new agency service
func NewAgencyService(repo AgencyRepository, metrics *observability.Metrics) *AgencyService {
	return &AgencyService{repo: repo, metrics: metrics}
}

// Search resolves the reference point, filters the active agencies and builds the response tree.
func (s *AgencyService) Search(ctx context.Context, params SearchParams) (*models.AgencyResponse, error) {
	zipCode := strings.TrimSpace(params.ZipCode)

	var postal *models.PostalLocation
	if zipCode != "" {
		var err error
		postal, err = s.repo.FindPostalLocation(ctx, zipCode)
		if err != nil {
			s.metrics.SearchErrors.WithLabelValues("lookup").Inc()
			return nil, fmt.Errorf("service: failed to look up zip code: %w", err)
		}
	}

	resolution := ResolveLocation(params.Lat, params.Long, postal)
	s.metrics.LocationResolutions.WithLabelValues(string(resolution.Source)).Inc()

	criteria := Criteria{
		ZipCode:         zipCode,
		Postal:          postal,
		EventDate:       params.EventDate,
		ServiceCategory: strings.TrimSpace(params.ServiceCategory),
		MaxDistance:     params.MaxDistance,
		Reference:       resolution.Point,
	}

	if criteria.Empty() {
		log.Debug().Msg("agency search without filters, returning no agencies")
		s.metrics.AgenciesReturned.Observe(0)
		return &models.AgencyResponse{Agencies: []models.AgencyResult{}}, nil
	}

	agencies, err := s.repo.ListActiveAgencies(ctx)
	if err != nil {
		s.metrics.SearchErrors.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("service: failed to load agencies: %w", err)
	}

	selected := SelectAgencies(agencies, criteria)

	order := params.Sort
	if order == "" {
		order = SortSource
	}
	resp, err := BuildResponse(selected, resolution.Point, zipCode, clock.Now(), order)
	if err != nil {
		s.metrics.SearchErrors.WithLabelValues("build").Inc()
		return nil, fmt.Errorf("service: failed to build response: %w", err)
	}

	log.Debug().
		Str("source", string(resolution.Source)).
		Int("candidates", len(agencies)).
		Int("matched", len(resp.Agencies)).
		Msg("agency search completed")
	s.metrics.AgenciesReturned.Observe(float64(len(resp.Agencies)))

	return resp, nil
}
