package datetime

import (
	"testing"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected int
	}{
		{name: "five days apart", first: "2026-02-05", second: "2026-02-10", expected: 5},
		{name: "same day", first: "2026-02-05", second: "2026-02-05", expected: 0},
		{name: "negative when reversed", first: "2026-02-10", second: "2026-02-05", expected: -5},
		{name: "across a month boundary", first: "2026-02-26", second: "2026-03-03", expected: 5},
		{name: "across a year boundary", first: "2025-12-30", second: "2026-01-02", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysBetween(tt.first, tt.second)
			if err != nil {
				t.Fatalf("DaysBetween() error = %v", err)
			}
			if days != tt.expected {
				t.Errorf("DaysBetween(%s, %s) = %d, expected %d", tt.first, tt.second, days, tt.expected)
			}
		})
	}

	if _, err := DaysBetween("05/02/2026", "2026-02-10"); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestDateBeforeDate(t *testing.T) {
	before, err := DateBeforeDate("2026-02-05", "2026-02-10")
	if err != nil {
		t.Fatalf("DateBeforeDate() error = %v", err)
	}
	if !before {
		t.Error("2026-02-05 should be before 2026-02-10")
	}

	before, err = DateBeforeDate("2026-02-05", "2026-02-05")
	if err != nil {
		t.Fatalf("DateBeforeDate() error = %v", err)
	}
	if before {
		t.Error("a date is not before itself")
	}
}

func TestExpandDateList(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []string
	}{
		{
			name:     "single date",
			spec:     "2026-02-05",
			expected: []string{"2026-02-05"},
		},
		{
			name:     "comma-separated dates",
			spec:     "2026-02-05,2026-02-07,2026-02-09",
			expected: []string{"2026-02-05", "2026-02-07", "2026-02-09"},
		},
		{
			name:     "inclusive range",
			spec:     "2026-02-05:2026-02-08",
			expected: []string{"2026-02-05", "2026-02-06", "2026-02-07", "2026-02-08"},
		},
		{
			name:     "mixed dates and ranges",
			spec:     "2026-02-05,2026-02-07:2026-02-09",
			expected: []string{"2026-02-05", "2026-02-07", "2026-02-08", "2026-02-09"},
		},
		{
			name:     "single-day range",
			spec:     "2026-02-05:2026-02-05",
			expected: []string{"2026-02-05"},
		},
		{
			name:     "whitespace tolerated",
			spec:     " 2026-02-05 , 2026-02-07 : 2026-02-08 ",
			expected: []string{"2026-02-05", "2026-02-07", "2026-02-08"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := ExpandDateList(tt.spec)
			if err != nil {
				t.Fatalf("ExpandDateList() error = %v", err)
			}
			if len(dates) != len(tt.expected) {
				t.Fatalf("ExpandDateList(%q) returned %d dates, expected %d", tt.spec, len(dates), len(tt.expected))
			}
			for i := range dates {
				if dates[i] != tt.expected[i] {
					t.Errorf("date %d = %s, expected %s", i, dates[i], tt.expected[i])
				}
			}
		})
	}
}

func TestExpandDateListErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "malformed date", spec: "05/02/2026"},
		{name: "malformed range start", spec: "bogus:2026-02-08"},
		{name: "malformed range end", spec: "2026-02-05:bogus"},
		{name: "inverted range", spec: "2026-02-08:2026-02-05"},
		{name: "empty spec", spec: ""},
		{name: "only separators", spec: " , , "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExpandDateList(tt.spec); err == nil {
				t.Errorf("ExpandDateList(%q) expected an error", tt.spec)
			}
		})
	}
}
