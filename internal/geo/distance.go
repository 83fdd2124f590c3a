package geo

import (
	"agency-locator-api/internal/models"

	"github.com/jftuga/geodist"
)

// DistanceResult is the distance in miles between From and To. Known is false when From is absent.
type DistanceResult struct {
	From  *models.Point
	To    models.Point
	Miles float64
	Known bool
}

// Distance computes the haversine distance from from to to. A nil from yields an unknown result.
func Distance(from *models.Point, to models.Point) DistanceResult {
	if from == nil {
		return DistanceResult{To: to}
	}

	miles, _ := geodist.HaversineDistance(
		geodist.Coord{Lat: from.Latitude, Lon: from.Longitude},
		geodist.Coord{Lat: to.Latitude, Lon: to.Longitude},
	)

	return DistanceResult{From: from, To: to, Miles: miles, Known: true}
}

// MilesPtr returns the distance for JSON output, nil when unknown.
func (d DistanceResult) MilesPtr() *float64 {
	if !d.Known {
		return nil
	}
	miles := d.Miles
	return &miles
}

// Within reports whether the distance is known and at most maxMiles.
func (d DistanceResult) Within(maxMiles float64) bool {
	return d.Known && d.Miles <= maxMiles
}
