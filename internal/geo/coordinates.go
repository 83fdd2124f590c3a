// Package geo validates coordinates and measures great-circle distances.
package geo

import (
	"regexp"
	"strconv"
	"strings"

	"agency-locator-api/internal/models"
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// IsNumeric reports whether raw is a plain, optionally signed decimal number.
func IsNumeric(raw string) bool {
	return numericPattern.MatchString(strings.TrimSpace(raw))
}

// ValidateCoordinates parses a raw latitude/longitude pair. It returns false when either
// value is missing, non-numeric or outside [-90, 90] / [-180, 180].
func ValidateCoordinates(rawLat, rawLong string) (models.Point, bool) {
	if !IsNumeric(rawLat) || !IsNumeric(rawLong) {
		return models.Point{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
	if err != nil {
		return models.Point{}, false
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(rawLong), 64)
	if err != nil {
		return models.Point{}, false
	}

	if !ValidRange(lat, long) {
		return models.Point{}, false
	}

	return models.Point{Latitude: lat, Longitude: long}, true
}

// ValidRange reports whether lat and long fall inside the inclusive WGS84 bounds.
func ValidRange(lat, long float64) bool {
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}
