package repository

import (
	"context"
	"errors"
	"fmt"

	"agency-locator-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the agency store for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

var postgresQueries = snapshotQueries{
	agencies: `
		SELECT
			id,
			name,
			COALESCE(nickname, ''),
			COALESCE(address1, ''),
			COALESCE(address2, ''),
			COALESCE(city, ''),
			COALESCE(state, ''),
			COALESCE(zip, ''),
			COALESCE(phone, ''),
			latitude,
			longitude
		FROM agencies
		WHERE status_id = 1
		ORDER BY id
	`,
	regions: `
		SELECT a.id, fr.region_id
		FROM agencies a
		JOIN foodbank_regions fr ON fr.foodbank_id = a.foodbank_id
		WHERE a.status_id = 1
		ORDER BY a.id, fr.region_id
	`,
	events: `
		SELECT
			e.id,
			e.agency_id,
			e.name,
			COALESCE(e.address1, ''),
			COALESCE(e.address2, ''),
			COALESCE(e.city, ''),
			COALESCE(e.state, ''),
			COALESCE(e.zip, ''),
			e.latitude,
			e.longitude,
			st.id,
			st.name,
			sc.id,
			sc.name,
			(e.status_publish_event_dates = 1)
		FROM events e
		JOIN service_types st ON st.id = e.service_type_id
		JOIN service_categories sc ON sc.id = st.service_category_id
		WHERE e.status_id = 1 AND e.status_publish_event = 1
		ORDER BY e.id
	`,
	eventDates: `
		SELECT
			id,
			event_id,
			to_char(event_date, 'YYYY-MM-DD'),
			start_time_key,
			end_time_key,
			capacity,
			(accept_walkin = 1),
			(accept_reservations = 1),
			(accept_interest = 1)
		FROM event_dates
		WHERE status_id = 1
		ORDER BY id
	`,
	forms: `
		SELECT
			id,
			event_id,
			COALESCE(name, ''),
			max_child_age,
			max_adult_age,
			to_char(effective_start, 'YYYY-MM-DD'),
			to_char(effective_end, 'YYYY-MM-DD')
		FROM forms
		WHERE status_id = 1
		ORDER BY id
	`,
	coverage: `
		SELECT id, event_id, zip_code, COALESCE(exception_note, ''), exception_id
		FROM event_zip_codes
		ORDER BY id
	`,
}

// FindPostalLocation returns the postal location for zipCode, or nil when the code is unknown
func (r *Repository) FindPostalLocation(ctx context.Context, zipCode string) (*models.PostalLocation, error) {
	sql := `
		SELECT zip_code, latitude, longitude, region_id
		FROM postal_locations
		WHERE zip_code = $1
	`

	var loc models.PostalLocation
	err := r.db.QueryRow(ctx, sql, zipCode).Scan(
		&loc.ZipCode,
		&loc.Point.Latitude,
		&loc.Point.Longitude,
		&loc.RegionID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query postal location: %w", err)
	}

	return &loc, nil
}

// ListActiveAgencies loads the active/published agency snapshot with all associations resolved
func (r *Repository) ListActiveAgencies(ctx context.Context) ([]models.Agency, error) {
	return loadSnapshot(ctx, r, postgresQueries)
}

// Ping verifies the database connection
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("repository: ping failed: %w", err)
	}
	return nil
}

func (r *Repository) each(ctx context.Context, query string, fn func(rowScanner) error) error {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}
	return nil
}
