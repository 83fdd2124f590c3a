package repository

import (
	"context"
	"database/sql"
	"fmt"

	"agency-locator-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CopyPostalLocations bulk loads postal locations into PostgreSQL with COPY.
func CopyPostalLocations(ctx context.Context, db *pgxpool.Pool, locations []models.PostalLocation) (int64, error) {
	return copyPostalLocations(ctx, db, locations)
}

// copier is satisfied by *pgxpool.Pool and pgx.Tx.
type copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

func copyPostalLocations(ctx context.Context, db copier, locations []models.PostalLocation) (int64, error) {
	n, err := db.CopyFrom(
		ctx,
		pgx.Identifier{"postal_locations"},
		[]string{"zip_code", "latitude", "longitude", "region_id"},
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			l := locations[i]
			return []any{l.ZipCode, l.Point.Latitude, l.Point.Longitude, l.RegionID}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy postal locations: %w", err)
	}
	return n, nil
}

// ReplacePostalLocations swaps the whole postal_locations table for locations in a single
// transaction. If the copy fails the previous rows are kept.
func ReplacePostalLocations(ctx context.Context, db *pgxpool.Pool, locations []models.PostalLocation) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "TRUNCATE postal_locations"); err != nil {
		return 0, fmt.Errorf("repository: truncate postal locations: %w", err)
	}

	n, err := copyPostalLocations(ctx, tx, locations)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: commit tx: %w", err)
	}
	return n, nil
}

// UpsertPostalLocationsSQLite inserts or replaces postal locations in a single transaction.
func UpsertPostalLocationsSQLite(db *sql.DB, locations []models.PostalLocation) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("repository: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO postal_locations (
		zip_code,
		latitude,
		longitude,
		region_id
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("repository: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range locations {
		if _, err := stmt.Exec(l.ZipCode, l.Point.Latitude, l.Point.Longitude, l.RegionID); err != nil {
			return 0, fmt.Errorf("repository: insert zip_code=%s: %w", l.ZipCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("repository: commit tx: %w", err)
	}
	return int64(len(locations)), nil
}
