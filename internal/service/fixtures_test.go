package service

import (
	"time"

	"agency-locator-api/internal/models"
)

var (
	searchDay = time.Date(2026, time.October, 24, 0, 0, 0, 0, time.UTC)
	otherDay  = time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
	today     = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

	denverPostal = &models.PostalLocation{
		ZipCode:  "80202",
		Point:    models.Point{Latitude: 39.7392, Longitude: -104.9903},
		RegionID: 1,
	}
	boulderPostal = &models.PostalLocation{
		ZipCode:  "80301",
		Point:    models.Point{Latitude: 40.0150, Longitude: -105.2705},
		RegionID: 2,
	}

	produce = models.ServiceCategory{ID: 1, Name: "Produce"}
	pantry  = models.ServiceCategory{ID: 2, Name: "Pantry"}
)

func ptr[T any](v T) *T { return &v }

// testAgencies builds a fresh snapshot: agency 1 serves region 1 (Denver) and runs events 10
// and 11; agency 2 serves region 2 (Boulder) and runs event 20.
func testAgencies() []models.Agency {
	return []models.Agency{
		{
			ID:        1,
			Name:      "Capitol Hill Pantry",
			Nickname:  "CHP",
			Address1:  "1100 Grant St",
			Address2:  "Suite 2",
			City:      "Denver",
			State:     "CO",
			Zip:       "80203",
			Phone:     "303-555-0100",
			Point:     models.Point{Latitude: 39.7340, Longitude: -104.9836},
			RegionIDs: []int64{1},
			Events: []models.Event{
				{
					ID:             10,
					AgencyID:       1,
					Name:           "Saturday Produce",
					Address1:       "1200 Grant St",
					City:           "Denver",
					State:          "CO",
					Zip:            "80203",
					Point:          models.Point{Latitude: 39.7355, Longitude: -104.9840},
					ServiceType:    models.ServiceType{ID: 5, Name: "Drive-thru", Category: produce},
					PublishesDates: true,
					Dates: []models.EventDate{
						{ID: 100, EventID: 10, Date: searchDay, StartTimeKey: 930, EndTimeKey: 2200, Capacity: 25, AcceptWalkin: true},
					},
					Forms: []models.Form{
						{
							ID: 500, EventID: 10, Name: "Household intake", MaxChildAge: 17, MaxAdultAge: 59,
							EffectiveStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
							EffectiveEnd:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
						},
						{
							ID: 501, EventID: 10, Name: "Old intake", MaxChildAge: 17, MaxAdultAge: 64,
							EffectiveStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
							EffectiveEnd:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
						},
					},
					Coverage: []models.Coverage{
						{ID: 900, EventID: 10, ZipCode: "80202", ExceptionNote: "Bring photo ID"},
					},
				},
				{
					ID:             11,
					AgencyID:       1,
					Name:           "Unlisted Produce",
					Point:          models.Point{Latitude: 39.7392, Longitude: -104.9903},
					ServiceType:    models.ServiceType{ID: 5, Name: "Drive-thru", Category: produce},
					PublishesDates: false,
					Dates: []models.EventDate{
						{ID: 110, EventID: 11, Date: searchDay, StartTimeKey: 800, EndTimeKey: 1000},
					},
				},
			},
		},
		{
			ID:        2,
			Name:      "Boulder Community Kitchen",
			Address1:  "2000 Pearl St",
			City:      "Boulder",
			State:     "CO",
			Zip:       "80302",
			Point:     models.Point{Latitude: 40.0190, Longitude: -105.2750},
			RegionIDs: []int64{2},
			Events: []models.Event{
				{
					ID:             20,
					AgencyID:       2,
					Name:           "Pearl Street Pantry",
					Address1:       "2010 Pearl St",
					City:           "Boulder",
					State:          "CO",
					Zip:            "80302",
					Point:          models.Point{Latitude: 40.0195, Longitude: -105.2740},
					ServiceType:    models.ServiceType{ID: 6, Name: "Walk-up", Category: pantry},
					PublishesDates: true,
					Dates: []models.EventDate{
						{ID: 200, EventID: 20, Date: otherDay, StartTimeKey: 800, EndTimeKey: 1130, Capacity: 40},
					},
					Coverage: []models.Coverage{
						{ID: 901, EventID: 20, ZipCode: "80203"},
					},
				},
			},
		},
	}
}

func agencyIDs(agencies []models.Agency) []int64 {
	ids := make([]int64, 0, len(agencies))
	for _, a := range agencies {
		ids = append(ids, a.ID)
	}
	return ids
}

func eventIDs(agency models.Agency) []int64 {
	ids := make([]int64, 0, len(agency.Events))
	for _, e := range agency.Events {
		ids = append(ids, e.ID)
	}
	return ids
}
