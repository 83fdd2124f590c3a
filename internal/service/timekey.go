package service

import (
	"fmt"
	"time"
)

// FormatError reports a time key that cannot be rendered as a clock time.
type FormatError struct {
	Key    int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("service: invalid time key %d: %s", e.Key, e.Reason)
}

// FormatTimeKey renders an HHMM 24-hour time key (930, 2200) as 12-hour text ("9:30 AM", "10 PM").
// Keys shorter than four digits are treated as left-zero-padded, so 0 is midnight.
func FormatTimeKey(key int) (string, error) {
	if key < 0 || key > 9999 {
		return "", &FormatError{Key: key, Reason: "must have at most four digits"}
	}

	hour, minute := key/100, key%100
	if hour > 23 {
		return "", &FormatError{Key: key, Reason: fmt.Sprintf("hour %d out of range", hour)}
	}
	if minute > 59 {
		return "", &FormatError{Key: key, Reason: fmt.Sprintf("minute %d out of range", minute)}
	}

	t := time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
	if minute == 0 {
		return t.Format("3 PM"), nil
	}
	return t.Format("3:04 PM"), nil
}
