package service

import (
	"strings"
	"time"

	"agency-locator-api/internal/geo"
	"agency-locator-api/internal/models"
)

// Criteria are the search filters applied to the active agency snapshot.
type Criteria struct {
	ZipCode string
	// Postal is the PostalLocation for ZipCode, nil when the code is unknown.
	Postal          *models.PostalLocation
	EventDate       *time.Time
	ServiceCategory string
	MaxDistance     *float64
	Reference       *models.Point
}

// distanceActive reports whether the max distance cutoff can be evaluated.
func (c Criteria) distanceActive() bool {
	return c.MaxDistance != nil && c.Reference != nil
}

// Empty reports whether no filter can narrow the dataset.
func (c Criteria) Empty() bool {
	return c.ZipCode == "" &&
		c.EventDate == nil &&
		c.ServiceCategory == "" &&
		!c.distanceActive()
}

// SelectAgencies returns the agencies with at least one event matching every criterion, each
// carrying only its matching events. Source order is preserved and the input is not modified.
// With no criteria the result is empty, never the whole dataset.
func SelectAgencies(agencies []models.Agency, c Criteria) []models.Agency {
	selected := []models.Agency{}
	if c.Empty() {
		return selected
	}

	for _, agency := range agencies {
		if c.distanceActive() && !geo.Distance(c.Reference, agency.Point).Within(*c.MaxDistance) {
			continue
		}

		var events []models.Event
		for _, event := range agency.Events {
			if c.matches(agency, event) {
				events = append(events, event)
			}
		}
		if len(events) == 0 {
			continue
		}

		agency.Events = events
		selected = append(selected, agency)
	}

	return selected
}

func (c Criteria) matches(agency models.Agency, event models.Event) bool {
	if c.ZipCode != "" && !c.coversZip(agency, event) {
		return false
	}
	if c.EventDate != nil && !scheduledOn(event, *c.EventDate) {
		return false
	}
	if c.ServiceCategory != "" &&
		!strings.EqualFold(event.ServiceType.Category.Name, strings.TrimSpace(c.ServiceCategory)) {
		return false
	}
	if c.distanceActive() && !geo.Distance(c.Reference, event.Point).Within(*c.MaxDistance) {
		return false
	}
	return true
}

// coversZip matches when the agency's food bank serves the zip's region or the event has a
// coverage record for the zip itself.
func (c Criteria) coversZip(agency models.Agency, event models.Event) bool {
	if c.Postal != nil && agency.ServesRegion(c.Postal.RegionID) {
		return true
	}
	_, ok := event.CoverageFor(c.ZipCode)
	return ok
}

func scheduledOn(event models.Event, day time.Time) bool {
	if !event.PublishesDates {
		return false
	}
	for _, d := range event.Dates {
		if sameDay(d.Date, day) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
