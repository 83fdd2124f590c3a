package models

// AgencyResponse is the body returned by the agency search endpoint.
type AgencyResponse struct {
	Agencies []AgencyResult `json:"agencies"`
}

// AgencyResult is an agency with its matching events. A nil EstimatedDistance means the distance is unknown.
type AgencyResult struct {
	ID                int64         `json:"id"`
	Address           string        `json:"address"`
	City              string        `json:"city"`
	State             string        `json:"state"`
	Zip               string        `json:"zip"`
	Phone             string        `json:"phone"`
	Name              string        `json:"name"`
	Nickname          string        `json:"nickname"`
	EstimatedDistance *float64      `json:"estimated_distance"`
	Events            []EventResult `json:"events"`
}

// EventResult is a matching event with its formatted dates and current forms.
type EventResult struct {
	ID                int64             `json:"id"`
	Address           string            `json:"address"`
	City              string            `json:"city"`
	State             string            `json:"state"`
	Zip               string            `json:"zip"`
	Latitude          float64           `json:"latitude"`
	Longitude         float64           `json:"longitude"`
	AgencyID          int64             `json:"agency_id"`
	Name              string            `json:"name"`
	Service           string            `json:"service"`
	ServiceCategory   ServiceCategory   `json:"service_category"`
	ExceptionNote     string            `json:"exception_note"`
	EstimatedDistance *float64          `json:"estimated_distance"`
	EventDates        []EventDateResult `json:"event_dates"`
	Forms             []FormResult      `json:"forms"`
}

// EventDateResult is an event date with 12-hour start and end times.
type EventDateResult struct {
	ID                 int64  `json:"id"`
	EventID            int64  `json:"event_id"`
	Capacity           int    `json:"capacity"`
	AcceptWalkin       bool   `json:"accept_walkin"`
	AcceptReservations bool   `json:"accept_reservations"`
	AcceptInterest     bool   `json:"accept_interest"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Date               string `json:"date"`
}

// FormResult carries display ages, which are one above the stored maximums.
type FormResult struct {
	ID              int64  `json:"id"`
	EventID         int64  `json:"event_id"`
	Name            string `json:"name"`
	DisplayChildAge int    `json:"display_child_age"`
	DisplayAdultAge int    `json:"display_adult_age"`
	EffectiveStart  string `json:"effective_start"`
	EffectiveEnd    string `json:"effective_end"`
}

// ResolvedLocation is the body returned by the location resolution endpoint.
type ResolvedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}
