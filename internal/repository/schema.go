package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Status columns follow the upstream data: 1 is active/published, anything else is hidden.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS postal_locations (
		zip_code VARCHAR(10) PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		region_id BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS foodbank_regions (
		foodbank_id BIGINT NOT NULL,
		region_id BIGINT NOT NULL,
		PRIMARY KEY (foodbank_id, region_id)
	)`,
	`CREATE TABLE IF NOT EXISTS agencies (
		id BIGSERIAL PRIMARY KEY,
		foodbank_id BIGINT NOT NULL,
		name VARCHAR(255) NOT NULL,
		nickname VARCHAR(255),
		address1 VARCHAR(255),
		address2 VARCHAR(255),
		city VARCHAR(255),
		state VARCHAR(2),
		zip VARCHAR(10),
		phone VARCHAR(32),
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		status_id SMALLINT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS service_categories (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS service_types (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		service_category_id BIGINT NOT NULL REFERENCES service_categories (id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		agency_id BIGINT NOT NULL REFERENCES agencies (id),
		service_type_id BIGINT NOT NULL REFERENCES service_types (id),
		name VARCHAR(255) NOT NULL,
		address1 VARCHAR(255),
		address2 VARCHAR(255),
		city VARCHAR(255),
		state VARCHAR(2),
		zip VARCHAR(10),
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		status_id SMALLINT NOT NULL DEFAULT 1,
		status_publish_event SMALLINT NOT NULL DEFAULT 1,
		status_publish_event_dates SMALLINT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS event_dates (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events (id),
		event_date DATE NOT NULL,
		start_time_key INTEGER NOT NULL,
		end_time_key INTEGER NOT NULL,
		capacity INTEGER NOT NULL DEFAULT 0,
		accept_walkin SMALLINT NOT NULL DEFAULT 0,
		accept_reservations SMALLINT NOT NULL DEFAULT 0,
		accept_interest SMALLINT NOT NULL DEFAULT 0,
		status_id SMALLINT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS forms (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events (id),
		name VARCHAR(255),
		max_child_age INTEGER NOT NULL DEFAULT 0,
		max_adult_age INTEGER NOT NULL DEFAULT 0,
		effective_start DATE NOT NULL,
		effective_end DATE NOT NULL,
		status_id SMALLINT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS event_zip_codes (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events (id),
		zip_code VARCHAR(10) NOT NULL,
		exception_note TEXT,
		exception_id BIGINT
	)`,
	`CREATE INDEX IF NOT EXISTS events_agency_id_idx ON events (agency_id)`,
	`CREATE INDEX IF NOT EXISTS event_dates_event_id_idx ON event_dates (event_id)`,
	`CREATE INDEX IF NOT EXISTS forms_event_id_idx ON forms (event_id)`,
	`CREATE INDEX IF NOT EXISTS event_zip_codes_event_id_zip_code_idx ON event_zip_codes (event_id, zip_code)`,
}

// SQLite keeps dates as ISO-8601 TEXT so the driver hands them back as plain strings.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS postal_locations (
		zip_code TEXT PRIMARY KEY,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		region_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS foodbank_regions (
		foodbank_id INTEGER NOT NULL,
		region_id INTEGER NOT NULL,
		PRIMARY KEY (foodbank_id, region_id)
	)`,
	`CREATE TABLE IF NOT EXISTS agencies (
		id INTEGER PRIMARY KEY,
		foodbank_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		nickname TEXT,
		address1 TEXT,
		address2 TEXT,
		city TEXT,
		state TEXT,
		zip TEXT,
		phone TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		status_id INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS service_categories (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS service_types (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		service_category_id INTEGER NOT NULL REFERENCES service_categories (id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY,
		agency_id INTEGER NOT NULL REFERENCES agencies (id),
		service_type_id INTEGER NOT NULL REFERENCES service_types (id),
		name TEXT NOT NULL,
		address1 TEXT,
		address2 TEXT,
		city TEXT,
		state TEXT,
		zip TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		status_id INTEGER NOT NULL DEFAULT 1,
		status_publish_event INTEGER NOT NULL DEFAULT 1,
		status_publish_event_dates INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS event_dates (
		id INTEGER PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events (id),
		event_date TEXT NOT NULL,
		start_time_key INTEGER NOT NULL,
		end_time_key INTEGER NOT NULL,
		capacity INTEGER NOT NULL DEFAULT 0,
		accept_walkin INTEGER NOT NULL DEFAULT 0,
		accept_reservations INTEGER NOT NULL DEFAULT 0,
		accept_interest INTEGER NOT NULL DEFAULT 0,
		status_id INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS forms (
		id INTEGER PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events (id),
		name TEXT,
		max_child_age INTEGER NOT NULL DEFAULT 0,
		max_adult_age INTEGER NOT NULL DEFAULT 0,
		effective_start TEXT NOT NULL,
		effective_end TEXT NOT NULL,
		status_id INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS event_zip_codes (
		id INTEGER PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events (id),
		zip_code TEXT NOT NULL,
		exception_note TEXT,
		exception_id INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS events_agency_id_idx ON events (agency_id)`,
	`CREATE INDEX IF NOT EXISTS event_dates_event_id_idx ON event_dates (event_id)`,
	`CREATE INDEX IF NOT EXISTS forms_event_id_idx ON forms (event_id)`,
	`CREATE INDEX IF NOT EXISTS event_zip_codes_event_id_zip_code_idx ON event_zip_codes (event_id, zip_code)`,
}

// InitPostgresSchema creates the tables the PostgreSQL repository reads.
func InitPostgresSchema(ctx context.Context, db *pgxpool.Pool) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range postgresSchema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}
	return nil
}

// InitSQLiteSchema creates the tables the SQLite repository reads.
func InitSQLiteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range sqliteSchema {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}
	return nil
}
