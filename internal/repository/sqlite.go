package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"agency-locator-api/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the agency store on a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps an open SQLite handle.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// OpenSQLite opens the database at path and verifies the connection.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repository: open sqlite database %q: %w", path, err)
	}
	if path == ":memory:" {
		// Each connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("repository: verify sqlite connection to %q: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("repository: enable sqlite foreign keys: %w", err)
	}

	return db, nil
}

var sqliteQueries = snapshotQueries{
	agencies: postgresQueries.agencies,
	regions:  postgresQueries.regions,
	events:   postgresQueries.events,
	eventDates: `
		SELECT
			id,
			event_id,
			event_date,
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
			effective_start,
			effective_end
		FROM forms
		WHERE status_id = 1
		ORDER BY id
	`,
	coverage: postgresQueries.coverage,
}

// FindPostalLocation returns the postal location for zipCode, or nil when the code is unknown.
func (r *SQLiteRepository) FindPostalLocation(ctx context.Context, zipCode string) (*models.PostalLocation, error) {
	query := `
	SELECT zip_code, latitude, longitude, region_id
	FROM postal_locations
	WHERE zip_code = ?;
	`

	var loc models.PostalLocation
	err := r.db.QueryRowContext(ctx, query, zipCode).Scan(
		&loc.ZipCode,
		&loc.Point.Latitude,
		&loc.Point.Longitude,
		&loc.RegionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query postal location: %w", err)
	}

	return &loc, nil
}

// ListActiveAgencies loads the active/published agency snapshot with all associations resolved.
func (r *SQLiteRepository) ListActiveAgencies(ctx context.Context) ([]models.Agency, error) {
	return loadSnapshot(ctx, r, sqliteQueries)
}

// Ping verifies the database connection.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("repository: ping failed: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) each(ctx context.Context, query string, fn func(rowScanner) error) error {
	rows, err := r.db.QueryContext(ctx, query)
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
