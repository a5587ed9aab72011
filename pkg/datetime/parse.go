// Package datetime provides date utility functions.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmalloy/trip-finder/pkg/constants"
)

const (
	// DateLayout is the calendar date format used throughout trip-finder.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}

// DaysBetween returns the number of whole days from firstDate to secondDate.
// The result is negative when secondDate precedes firstDate.
func DaysBetween(firstDate string, secondDate string) (int, error) {
	firstDateT, err := time.Parse(DateLayout, firstDate)
	if err != nil {
		return 0, err
	}
	secondDateT, err := time.Parse(DateLayout, secondDate)
	if err != nil {
		return 0, err
	}
	return int(secondDateT.Sub(firstDateT).Hours() / 24), nil
}

// ExpandDateList expands a date specification into a list of concrete dates.
// A specification is a comma-separated list of entries where each entry is
// either a single date ("2026-02-05") or an inclusive range
// ("2026-02-05:2026-02-10"). Entries may be mixed.
func ExpandDateList(spec string) ([]string, error) {
	var dates []string
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, ":") {
			if _, err := time.Parse(DateLayout, part); err != nil {
				return nil, fmt.Errorf("invalid date %q: %w", part, err)
			}
			dates = append(dates, part)
			continue
		}

		bounds := strings.SplitN(part, ":", 2)
		start, err := time.Parse(DateLayout, strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid range start in %q: %w", part, err)
		}
		end, err := time.Parse(DateLayout, strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid range end in %q: %w", part, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("range %q ends before it starts", part)
		}
		for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
			dates = append(dates, current.Format(DateLayout))
		}
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("date specification %q contains no dates", spec)
	}
	return dates, nil
}
