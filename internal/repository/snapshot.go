package repository

import (
	"context"
	"fmt"
	"time"

	"agency-locator-api/internal/models"
)

const dateLayout = "2006-01-02"

// rowScanner is satisfied by both pgx.Rows and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryer runs a read query and hands every row to fn.
type queryer interface {
	each(ctx context.Context, query string, fn func(rowScanner) error) error
}

// snapshotQueries holds the dialect-specific SQL used to load the active dataset.
// Every query must order its rows by id so snapshots keep source order.
type snapshotQueries struct {
	agencies   string
	regions    string
	events     string
	eventDates string
	forms      string
	coverage   string
}

// loadSnapshot reads the active/published records and stitches them into agencies with their
// events, dates, forms and coverage attached. Children of filtered-out parents are skipped.
func loadSnapshot(ctx context.Context, q queryer, queries snapshotQueries) ([]models.Agency, error) {
	var agencies []models.Agency
	agencyIdx := make(map[int64]int)

	err := q.each(ctx, queries.agencies, func(row rowScanner) error {
		var a models.Agency
		if err := row.Scan(
			&a.ID,
			&a.Name,
			&a.Nickname,
			&a.Address1,
			&a.Address2,
			&a.City,
			&a.State,
			&a.Zip,
			&a.Phone,
			&a.Point.Latitude,
			&a.Point.Longitude,
		); err != nil {
			return err
		}
		agencyIdx[a.ID] = len(agencies)
		agencies = append(agencies, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load agencies: %w", err)
	}

	err = q.each(ctx, queries.regions, func(row rowScanner) error {
		var agencyID, regionID int64
		if err := row.Scan(&agencyID, &regionID); err != nil {
			return err
		}
		if ai, ok := agencyIdx[agencyID]; ok {
			agencies[ai].RegionIDs = append(agencies[ai].RegionIDs, regionID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load agency regions: %w", err)
	}

	type eventPos struct{ agency, event int }
	eventIdx := make(map[int64]eventPos)

	err = q.each(ctx, queries.events, func(row rowScanner) error {
		var e models.Event
		if err := row.Scan(
			&e.ID,
			&e.AgencyID,
			&e.Name,
			&e.Address1,
			&e.Address2,
			&e.City,
			&e.State,
			&e.Zip,
			&e.Point.Latitude,
			&e.Point.Longitude,
			&e.ServiceType.ID,
			&e.ServiceType.Name,
			&e.ServiceType.Category.ID,
			&e.ServiceType.Category.Name,
			&e.PublishesDates,
		); err != nil {
			return err
		}
		ai, ok := agencyIdx[e.AgencyID]
		if !ok {
			return nil
		}
		eventIdx[e.ID] = eventPos{agency: ai, event: len(agencies[ai].Events)}
		agencies[ai].Events = append(agencies[ai].Events, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load events: %w", err)
	}

	event := func(id int64) (*models.Event, bool) {
		pos, ok := eventIdx[id]
		if !ok {
			return nil, false
		}
		return &agencies[pos.agency].Events[pos.event], true
	}

	err = q.each(ctx, queries.eventDates, func(row rowScanner) error {
		var d models.EventDate
		var date string
		if err := row.Scan(
			&d.ID,
			&d.EventID,
			&date,
			&d.StartTimeKey,
			&d.EndTimeKey,
			&d.Capacity,
			&d.AcceptWalkin,
			&d.AcceptReservations,
			&d.AcceptInterest,
		); err != nil {
			return err
		}
		e, ok := event(d.EventID)
		if !ok {
			return nil
		}
		parsed, err := parseDate(date)
		if err != nil {
			return fmt.Errorf("event date %d: %w", d.ID, err)
		}
		d.Date = parsed
		e.Dates = append(e.Dates, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load event dates: %w", err)
	}

	err = q.each(ctx, queries.forms, func(row rowScanner) error {
		var f models.Form
		var start, end string
		if err := row.Scan(
			&f.ID,
			&f.EventID,
			&f.Name,
			&f.MaxChildAge,
			&f.MaxAdultAge,
			&start,
			&end,
		); err != nil {
			return err
		}
		e, ok := event(f.EventID)
		if !ok {
			return nil
		}
		var err error
		if f.EffectiveStart, err = parseDate(start); err != nil {
			return fmt.Errorf("form %d: %w", f.ID, err)
		}
		if f.EffectiveEnd, err = parseDate(end); err != nil {
			return fmt.Errorf("form %d: %w", f.ID, err)
		}
		e.Forms = append(e.Forms, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load forms: %w", err)
	}

	err = q.each(ctx, queries.coverage, func(row rowScanner) error {
		var c models.Coverage
		if err := row.Scan(&c.ID, &c.EventID, &c.ZipCode, &c.ExceptionNote, &c.ExceptionID); err != nil {
			return err
		}
		if e, ok := event(c.EventID); ok {
			e.Coverage = append(e.Coverage, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load coverage: %w", err)
	}

	return agencies, nil
}

func parseDate(raw string) (time.Time, error) {
	if len(raw) > len(dateLayout) {
		raw = raw[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}
