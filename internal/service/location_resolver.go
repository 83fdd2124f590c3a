package service

import (
	"agency-locator-api/internal/geo"
	"agency-locator-api/internal/models"
)

// LocationSource names the input a reference point was resolved from.
type LocationSource string

const (
	SourceCoordinates LocationSource = "coordinates"
	SourceZipCode     LocationSource = "zip_code"
	SourceNone        LocationSource = "none"
)

// Resolution is the outcome of location resolution. Point is nil when nothing usable was supplied.
type Resolution struct {
	Point  *models.Point
	Source LocationSource
}

// ResolveLocation picks the requester's reference point. A valid lat/long pair always wins over
// the zip code; an invalid or partial pair is dropped silently in favour of postal, which is the
// PostalLocation found for the requested zip code (nil when absent or unknown).
func ResolveLocation(rawLat, rawLong string, postal *models.PostalLocation) Resolution {
	if point, ok := geo.ValidateCoordinates(rawLat, rawLong); ok {
		return Resolution{Point: &point, Source: SourceCoordinates}
	}

	if postal != nil {
		point := postal.Point
		return Resolution{Point: &point, Source: SourceZipCode}
	}

	return Resolution{Source: SourceNone}
}
