package service

import (
	"errors"
	"testing"

	"agency-locator-api/internal/geo"
	"agency-locator-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResponse_WithReferencePoint(t *testing.T) {
	agencies := SelectAgencies(testAgencies(), Criteria{ZipCode: "80202", Postal: denverPostal, EventDate: &searchDay})
	reference := denverPostal.Point

	resp, err := BuildResponse(agencies, &reference, "80202", today, SortSource)
	require.NoError(t, err)
	require.Len(t, resp.Agencies, 1)

	agency := resp.Agencies[0]
	assert.Equal(t, int64(1), agency.ID)
	assert.Equal(t, "1100 Grant St Suite 2", agency.Address)
	assert.Equal(t, "Capitol Hill Pantry", agency.Name)
	assert.Equal(t, "CHP", agency.Nickname)
	assert.Equal(t, "303-555-0100", agency.Phone)
	assert.Equal(t, geo.Distance(&reference, agencies[0].Point).MilesPtr(), agency.EstimatedDistance)

	require.Len(t, agency.Events, 1)
	event := agency.Events[0]
	assert.Equal(t, int64(10), event.ID)
	assert.Equal(t, int64(1), event.AgencyID)
	assert.Equal(t, "1200 Grant St", event.Address)
	assert.Equal(t, 39.7355, event.Latitude)
	assert.Equal(t, -104.9840, event.Longitude)
	assert.Equal(t, "Produce", event.Service)
	assert.Equal(t, produce, event.ServiceCategory)
	assert.Equal(t, "Bring photo ID", event.ExceptionNote)
	assert.Equal(t, geo.Distance(&reference, agencies[0].Events[0].Point).MilesPtr(), event.EstimatedDistance)
	assert.NotEqual(t, *agency.EstimatedDistance, *event.EstimatedDistance)

	assert.Equal(t, []models.EventDateResult{
		{
			ID:           100,
			EventID:      10,
			Capacity:     25,
			AcceptWalkin: true,
			StartTime:    "9:30 AM",
			EndTime:      "10 PM",
			Date:         "2026-10-24",
		},
	}, event.EventDates)

	assert.Equal(t, []models.FormResult{
		{
			ID:              500,
			EventID:         10,
			Name:            "Household intake",
			DisplayChildAge: 18,
			DisplayAdultAge: 60,
			EffectiveStart:  "2026-01-01",
			EffectiveEnd:    "2026-12-31",
		},
	}, event.Forms)
}

func TestBuildResponse_WithoutReferencePoint(t *testing.T) {
	agencies := SelectAgencies(testAgencies(), Criteria{EventDate: &searchDay})

	resp, err := BuildResponse(agencies, nil, "", today, SortSource)
	require.NoError(t, err)
	require.Len(t, resp.Agencies, 1)

	for _, agency := range resp.Agencies {
		assert.Nil(t, agency.EstimatedDistance)
		for _, event := range agency.Events {
			assert.Nil(t, event.EstimatedDistance)
			assert.Equal(t, "", event.ExceptionNote)
		}
	}
}

func TestBuildResponse_ExceptionNoteEmptyWithoutCoverage(t *testing.T) {
	agencies := SelectAgencies(testAgencies(), Criteria{ServiceCategory: "Pantry"})

	resp, err := BuildResponse(agencies, nil, "80301", today, SortSource)
	require.NoError(t, err)
	require.Len(t, resp.Agencies, 1)
	assert.Equal(t, "", resp.Agencies[0].Events[0].ExceptionNote)
}

func TestBuildResponse_EmptyInput(t *testing.T) {
	resp, err := BuildResponse(nil, nil, "", today, SortSource)

	require.NoError(t, err)
	assert.NotNil(t, resp.Agencies)
	assert.Empty(t, resp.Agencies)
}

func TestBuildResponse_MalformedTimeKey(t *testing.T) {
	agencies := testAgencies()
	agencies[0].Events[0].Dates[0].EndTimeKey = 2460

	_, err := BuildResponse(agencies, nil, "", today, SortSource)

	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 2460, formatErr.Key)
}

func TestBuildResponse_SourceOrderIsStable(t *testing.T) {
	reference := boulderPostal.Point

	resp, err := BuildResponse(testAgencies(), &reference, "", today, SortSource)
	require.NoError(t, err)

	require.Len(t, resp.Agencies, 2)
	assert.Equal(t, int64(1), resp.Agencies[0].ID)
	assert.Equal(t, int64(2), resp.Agencies[1].ID)
	assert.Equal(t, int64(10), resp.Agencies[0].Events[0].ID)
	assert.Equal(t, int64(11), resp.Agencies[0].Events[1].ID)
}

func TestBuildResponse_SortByDistance(t *testing.T) {
	reference := boulderPostal.Point

	resp, err := BuildResponse(testAgencies(), &reference, "", today, SortDistance)
	require.NoError(t, err)

	require.Len(t, resp.Agencies, 2)
	assert.Equal(t, int64(2), resp.Agencies[0].ID)
	assert.Equal(t, int64(1), resp.Agencies[1].ID)
	// Event 11 sits northwest of event 10, so it is closer to Boulder.
	assert.Equal(t, int64(11), resp.Agencies[1].Events[0].ID)
	assert.Equal(t, int64(10), resp.Agencies[1].Events[1].ID)
}

func TestBuildResponse_SortByDistanceWithoutReferenceKeepsSourceOrder(t *testing.T) {
	resp, err := BuildResponse(testAgencies(), nil, "", today, SortDistance)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Agencies[0].ID)
	assert.Equal(t, int64(2), resp.Agencies[1].ID)
}

func TestParseSortOrder(t *testing.T) {
	order, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortSource, order)

	order, err = ParseSortOrder(" Distance ")
	require.NoError(t, err)
	assert.Equal(t, SortDistance, order)

	_, err = ParseSortOrder("name")
	assert.Error(t, err)
}

func TestCompareDistance(t *testing.T) {
	assert.Equal(t, 0, compareDistance(nil, nil))
	assert.Equal(t, 1, compareDistance(nil, ptr(1.0)))
	assert.Equal(t, -1, compareDistance(ptr(1.0), nil))
	assert.Equal(t, -1, compareDistance(ptr(1.0), ptr(2.0)))
}
