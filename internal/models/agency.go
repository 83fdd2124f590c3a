package models

import "time"

// Agency is an organization that runs distribution events. RegionIDs lists the regions covered by its parent food bank.
type Agency struct {
	ID        int64
	Name      string
	Nickname  string
	Address1  string
	Address2  string
	City      string
	State     string
	Zip       string
	Phone     string
	Point     Point
	RegionIDs []int64
	Events    []Event
}

// ServesRegion reports whether the agency's food bank covers the given region.
func (a Agency) ServesRegion(regionID int64) bool {
	for _, id := range a.RegionIDs {
		if id == regionID {
			return true
		}
	}
	return false
}

// Event is a physical distribution instance operated by exactly one agency.
type Event struct {
	ID             int64
	AgencyID       int64
	Name           string
	Address1       string
	Address2       string
	City           string
	State          string
	Zip            string
	Point          Point
	ServiceType    ServiceType
	PublishesDates bool
	Dates          []EventDate
	Forms          []Form
	Coverage       []Coverage
}

// CoverageFor returns the per-zip coverage record for zip, if the event has one.
func (e Event) CoverageFor(zip string) (Coverage, bool) {
	for _, c := range e.Coverage {
		if c.ZipCode == zip {
			return c, true
		}
	}
	return Coverage{}, false
}

// ServiceType links an event to its service category.
type ServiceType struct {
	ID       int64
	Name     string
	Category ServiceCategory
}

// ServiceCategory groups events by the kind of assistance offered.
type ServiceCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EventDate is one scheduled occurrence of an event. Start and end times are HHMM time keys.
type EventDate struct {
	ID                 int64
	EventID            int64
	Date               time.Time
	StartTimeKey       int
	EndTimeKey         int
	Capacity           int
	AcceptWalkin       bool
	AcceptReservations bool
	AcceptInterest     bool
}

// Form holds eligibility metadata for an event.
type Form struct {
	ID             int64
	EventID        int64
	Name           string
	MaxChildAge    int
	MaxAdultAge    int
	EffectiveStart time.Time
	EffectiveEnd   time.Time
}

// CurrentOn reports whether the form's effective range covers the UTC calendar day of t.
// Both ends of the range are inclusive.
func (f Form) CurrentOn(t time.Time) bool {
	day := utcDay(t)
	return !day.Before(utcDay(f.EffectiveStart)) && !day.After(utcDay(f.EffectiveEnd))
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Coverage is a per-zip annotation on an event.
type Coverage struct {
	ID            int64
	EventID       int64
	ZipCode       string
	ExceptionNote string
	ExceptionID   *int64
}
