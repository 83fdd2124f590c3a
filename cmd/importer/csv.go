package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"agency-locator-api/internal/geo"
	"agency-locator-api/internal/models"
)

var expectedHeader = []string{"zip_code", "latitude", "longitude", "region_id"}

// rowError reports a rejected CSV row.
type rowError struct {
	Line   int
	Reason string
}

func (e *rowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// parseCSV reads postal locations from r. With skipInvalid, rows that fail validation are
// returned as rowErrors instead of aborting the parse.
func parseCSV(r io.Reader, skipInvalid bool) ([]models.PostalLocation, []*rowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, nil, err
	}

	var (
		locations []models.PostalLocation
		rejected  []*rowError
		seen      = make(map[string]int)
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read record: %w", err)
		}

		location, rowErr := parseRecord(line, record)
		if rowErr == nil {
			if prev, dup := seen[location.ZipCode]; dup {
				rowErr = &rowError{Line: line, Reason: fmt.Sprintf("duplicate zip_code %s (first seen on line %d)", location.ZipCode, prev)}
			}
		}
		if rowErr != nil {
			if !skipInvalid {
				return nil, nil, rowErr
			}
			rejected = append(rejected, rowErr)
			continue
		}

		seen[location.ZipCode] = line
		locations = append(locations, location)
	}

	return locations, rejected, nil
}

func checkHeader(header []string) error {
	if len(header) < len(expectedHeader) {
		return fmt.Errorf("invalid header: expected %s", strings.Join(expectedHeader, ","))
	}
	for i, name := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return fmt.Errorf("invalid header column %d: expected %q, got %q", i+1, name, header[i])
		}
	}
	return nil
}

func parseRecord(line int, record []string) (models.PostalLocation, *rowError) {
	if len(record) < len(expectedHeader) {
		return models.PostalLocation{}, &rowError{Line: line, Reason: fmt.Sprintf("expected %d columns, got %d", len(expectedHeader), len(record))}
	}

	zip := strings.TrimSpace(record[0])
	if zip == "" {
		return models.PostalLocation{}, &rowError{Line: line, Reason: "empty zip_code"}
	}

	point, ok := geo.ValidateCoordinates(record[1], record[2])
	if !ok {
		return models.PostalLocation{}, &rowError{Line: line, Reason: fmt.Sprintf("invalid coordinates %q,%q", record[1], record[2])}
	}

	regionID, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil || regionID <= 0 {
		return models.PostalLocation{}, &rowError{Line: line, Reason: fmt.Sprintf("invalid region_id %q", record[3])}
	}

	return models.PostalLocation{ZipCode: zip, Point: point, RegionID: regionID}, nil
}
