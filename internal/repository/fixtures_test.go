package repository

import (
	"time"

	"agency-locator-api/internal/models"
)

// fixtureStatements are written to run unchanged on PostgreSQL and SQLite.
var fixtureStatements = []string{
	`INSERT INTO foodbank_regions (foodbank_id, region_id) VALUES (1, 11), (1, 10), (2, 20)`,
	`INSERT INTO postal_locations (zip_code, latitude, longitude, region_id) VALUES
		('80202', 39.7392, -104.9903, 10),
		('80301', 40.015, -105.2705, 20)`,
	`INSERT INTO agencies (id, foodbank_id, name, nickname, address1, address2, city, state, zip, phone, latitude, longitude, status_id) VALUES
		(1, 1, 'Capitol Hill Pantry', 'CHP', '1100 Grant St', NULL, 'Denver', 'CO', '80203', '303-555-0100', 39.734, -104.9836, 1),
		(2, 2, 'Boulder Community Kitchen', NULL, '2000 Pearl St', 'Rear', 'Boulder', 'CO', '80302', NULL, 40.019, -105.275, 1),
		(3, 1, 'Closed Agency', NULL, NULL, NULL, NULL, NULL, NULL, NULL, 39.7, -104.9, 0)`,
	`INSERT INTO service_categories (id, name) VALUES (1, 'Produce'), (2, 'Pantry')`,
	`INSERT INTO service_types (id, name, service_category_id) VALUES (5, 'Drive-thru', 1), (6, 'Walk-up', 2)`,
	`INSERT INTO events (id, agency_id, service_type_id, name, address1, address2, city, state, zip, latitude, longitude, status_id, status_publish_event, status_publish_event_dates) VALUES
		(10, 1, 5, 'Saturday Produce', '1200 Grant St', NULL, 'Denver', 'CO', '80203', 39.7355, -104.984, 1, 1, 1),
		(11, 1, 6, 'Unpublished Pantry', NULL, NULL, NULL, NULL, NULL, 39.7, -104.9, 1, 0, 1),
		(12, 1, 6, 'Tuesday Pantry', '1100 Grant St', NULL, 'Denver', 'CO', '80203', 39.734, -104.9836, 1, 1, 0),
		(20, 2, 6, 'Pearl Street Pantry', '2010 Pearl St', NULL, 'Boulder', 'CO', '80302', 40.0195, -105.274, 1, 1, 1),
		(30, 3, 5, 'Closed Agency Produce', NULL, NULL, NULL, NULL, NULL, 39.7, -104.9, 1, 1, 1)`,
	`INSERT INTO event_dates (id, event_id, event_date, start_time_key, end_time_key, capacity, accept_walkin, accept_reservations, accept_interest, status_id) VALUES
		(101, 10, '2026-10-31', 1000, 1200, 10, 0, 1, 0, 1),
		(100, 10, '2026-10-24', 930, 2200, 25, 1, 0, 0, 1),
		(102, 10, '2026-11-07', 930, 1100, 0, 0, 0, 0, 0),
		(110, 11, '2026-10-24', 800, 900, 0, 0, 0, 0, 1),
		(200, 20, '2026-10-21', 800, 1130, 40, 0, 0, 1, 1)`,
	`INSERT INTO forms (id, event_id, name, max_child_age, max_adult_age, effective_start, effective_end, status_id) VALUES
		(500, 10, 'Household intake', 17, 59, '2026-01-01', '2026-12-31', 1),
		(501, 10, 'Retired intake', 17, 64, '2025-01-01', '2025-12-31', 0)`,
	`INSERT INTO event_zip_codes (id, event_id, zip_code, exception_note, exception_id) VALUES
		(900, 10, '80202', 'Bring photo ID', NULL),
		(901, 20, '80203', NULL, 7),
		(902, 30, '80202', 'Closed', NULL)`,
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func int64Ptr(v int64) *int64 { return &v }

var (
	produce = models.ServiceCategory{ID: 1, Name: "Produce"}
	pantry  = models.ServiceCategory{ID: 2, Name: "Pantry"}
)

// expectedSnapshot is what ListActiveAgencies must return for fixtureStatements.
func expectedSnapshot() []models.Agency {
	return []models.Agency{
		{
			ID:        1,
			Name:      "Capitol Hill Pantry",
			Nickname:  "CHP",
			Address1:  "1100 Grant St",
			City:      "Denver",
			State:     "CO",
			Zip:       "80203",
			Phone:     "303-555-0100",
			Point:     models.Point{Latitude: 39.734, Longitude: -104.9836},
			RegionIDs: []int64{10, 11},
			Events: []models.Event{
				{
					ID:             10,
					AgencyID:       1,
					Name:           "Saturday Produce",
					Address1:       "1200 Grant St",
					City:           "Denver",
					State:          "CO",
					Zip:            "80203",
					Point:          models.Point{Latitude: 39.7355, Longitude: -104.984},
					ServiceType:    models.ServiceType{ID: 5, Name: "Drive-thru", Category: produce},
					PublishesDates: true,
					Dates: []models.EventDate{
						{ID: 100, EventID: 10, Date: day(2026, time.October, 24), StartTimeKey: 930, EndTimeKey: 2200, Capacity: 25, AcceptWalkin: true},
						{ID: 101, EventID: 10, Date: day(2026, time.October, 31), StartTimeKey: 1000, EndTimeKey: 1200, Capacity: 10, AcceptReservations: true},
					},
					Forms: []models.Form{
						{
							ID: 500, EventID: 10, Name: "Household intake", MaxChildAge: 17, MaxAdultAge: 59,
							EffectiveStart: day(2026, time.January, 1),
							EffectiveEnd:   day(2026, time.December, 31),
						},
					},
					Coverage: []models.Coverage{
						{ID: 900, EventID: 10, ZipCode: "80202", ExceptionNote: "Bring photo ID"},
					},
				},
				{
					ID:          12,
					AgencyID:    1,
					Name:        "Tuesday Pantry",
					Address1:    "1100 Grant St",
					City:        "Denver",
					State:       "CO",
					Zip:         "80203",
					Point:       models.Point{Latitude: 39.734, Longitude: -104.9836},
					ServiceType: models.ServiceType{ID: 6, Name: "Walk-up", Category: pantry},
				},
			},
		},
		{
			ID:        2,
			Name:      "Boulder Community Kitchen",
			Address1:  "2000 Pearl St",
			Address2:  "Rear",
			City:      "Boulder",
			State:     "CO",
			Zip:       "80302",
			Point:     models.Point{Latitude: 40.019, Longitude: -105.275},
			RegionIDs: []int64{20},
			Events: []models.Event{
				{
					ID:             20,
					AgencyID:       2,
					Name:           "Pearl Street Pantry",
					Address1:       "2010 Pearl St",
					City:           "Boulder",
					State:          "CO",
					Zip:            "80302",
					Point:          models.Point{Latitude: 40.0195, Longitude: -105.274},
					ServiceType:    models.ServiceType{ID: 6, Name: "Walk-up", Category: pantry},
					PublishesDates: true,
					Dates: []models.EventDate{
						{ID: 200, EventID: 20, Date: day(2026, time.October, 21), StartTimeKey: 800, EndTimeKey: 1130, Capacity: 40, AcceptInterest: true},
					},
					Coverage: []models.Coverage{
						{ID: 901, EventID: 20, ZipCode: "80203", ExceptionID: int64Ptr(7)},
					},
				},
			},
		},
	}
}
