package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"agency-locator-api/internal/geo"
	"agency-locator-api/internal/models"
)

const dateLayout = "2006-01-02"

// SortOrder controls result ordering.
type SortOrder string

const (
	SortSource   SortOrder = "source"
	SortDistance SortOrder = "distance"
)

// ParseSortOrder accepts "", "source" and "distance".
func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortSource:
		return SortSource, nil
	case SortDistance:
		return SortDistance, nil
	default:
		return "", fmt.Errorf("service: unknown sort order %q", raw)
	}
}

// BuildResponse assembles the Agency -> Event -> EventDate/Form tree for filtered agencies.
// Distances are measured from reference and are unknown when it is nil. zipCode selects the
// coverage record whose exception note is attached to each event. A malformed time key aborts
// the build with a *FormatError.
func BuildResponse(agencies []models.Agency, reference *models.Point, zipCode string, now time.Time, order SortOrder) (*models.AgencyResponse, error) {
	resp := &models.AgencyResponse{Agencies: make([]models.AgencyResult, 0, len(agencies))}

	for _, agency := range agencies {
		events := make([]models.EventResult, 0, len(agency.Events))
		for _, event := range agency.Events {
			result, err := buildEvent(event, reference, zipCode, now)
			if err != nil {
				return nil, fmt.Errorf("service: agency %d: %w", agency.ID, err)
			}
			events = append(events, result)
		}

		if order == SortDistance {
			slices.SortStableFunc(events, func(a, b models.EventResult) int {
				return compareDistance(a.EstimatedDistance, b.EstimatedDistance)
			})
		}

		resp.Agencies = append(resp.Agencies, models.AgencyResult{
			ID:                agency.ID,
			Address:           joinAddress(agency.Address1, agency.Address2),
			City:              agency.City,
			State:             agency.State,
			Zip:               agency.Zip,
			Phone:             agency.Phone,
			Name:              agency.Name,
			Nickname:          agency.Nickname,
			EstimatedDistance: geo.Distance(reference, agency.Point).MilesPtr(),
			Events:            events,
		})
	}

	if order == SortDistance {
		slices.SortStableFunc(resp.Agencies, func(a, b models.AgencyResult) int {
			return compareDistance(a.EstimatedDistance, b.EstimatedDistance)
		})
	}

	return resp, nil
}

func buildEvent(event models.Event, reference *models.Point, zipCode string, now time.Time) (models.EventResult, error) {
	dates := make([]models.EventDateResult, 0, len(event.Dates))
	for _, d := range event.Dates {
		result, err := buildEventDate(d)
		if err != nil {
			return models.EventResult{}, fmt.Errorf("event %d: %w", event.ID, err)
		}
		dates = append(dates, result)
	}

	forms := make([]models.FormResult, 0, len(event.Forms))
	for _, f := range event.Forms {
		if !f.CurrentOn(now) {
			continue
		}
		forms = append(forms, models.FormResult{
			ID:              f.ID,
			EventID:         f.EventID,
			Name:            f.Name,
			DisplayChildAge: f.MaxChildAge + 1,
			DisplayAdultAge: f.MaxAdultAge + 1,
			EffectiveStart:  f.EffectiveStart.Format(dateLayout),
			EffectiveEnd:    f.EffectiveEnd.Format(dateLayout),
		})
	}

	return models.EventResult{
		ID:                event.ID,
		Address:           joinAddress(event.Address1, event.Address2),
		City:              event.City,
		State:             event.State,
		Zip:               event.Zip,
		Latitude:          event.Point.Latitude,
		Longitude:         event.Point.Longitude,
		AgencyID:          event.AgencyID,
		Name:              event.Name,
		Service:           event.ServiceType.Category.Name,
		ServiceCategory:   event.ServiceType.Category,
		ExceptionNote:     exceptionNote(event, zipCode),
		EstimatedDistance: geo.Distance(reference, event.Point).MilesPtr(),
		EventDates:        dates,
		Forms:             forms,
	}, nil
}

func buildEventDate(d models.EventDate) (models.EventDateResult, error) {
	start, err := FormatTimeKey(d.StartTimeKey)
	if err != nil {
		return models.EventDateResult{}, fmt.Errorf("event date %d start: %w", d.ID, err)
	}
	end, err := FormatTimeKey(d.EndTimeKey)
	if err != nil {
		return models.EventDateResult{}, fmt.Errorf("event date %d end: %w", d.ID, err)
	}

	return models.EventDateResult{
		ID:                 d.ID,
		EventID:            d.EventID,
		Capacity:           d.Capacity,
		AcceptWalkin:       d.AcceptWalkin,
		AcceptReservations: d.AcceptReservations,
		AcceptInterest:     d.AcceptInterest,
		StartTime:          start,
		EndTime:            end,
		Date:               d.Date.Format(dateLayout),
	}, nil
}

// exceptionNote is "" when no zip was requested or the event has no coverage record for it.
func exceptionNote(event models.Event, zipCode string) string {
	if zipCode == "" {
		return ""
	}
	if c, ok := event.CoverageFor(zipCode); ok {
		return c.ExceptionNote
	}
	return ""
}

func joinAddress(line1, line2 string) string {
	return strings.TrimSpace(line1 + " " + line2)
}

// compareDistance orders known distances ascending with unknown ones last.
func compareDistance(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
