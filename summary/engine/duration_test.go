package engine

import (
	"testing"
	"time"
)

func fixedEngine(now time.Time) *Engine {
	return New(WithClock(func() time.Time { return now }))
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestDurationYears(t *testing.T) {
	e := fixedEngine(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  float64
	}{
		{name: "nil_start", start: nil, end: datePtr(2024, time.January, 1), want: 0},
		{name: "exact_year", start: datePtr(2022, time.January, 1), end: datePtr(2023, time.January, 1), want: 1},
		{name: "half_year", start: datePtr(2022, time.January, 1), end: datePtr(2022, time.July, 1), want: 0.5},
		{name: "partial_month_truncated", start: datePtr(2022, time.January, 15), end: datePtr(2022, time.March, 10), want: 1.0 / 12},
		{name: "end_before_start", start: datePtr(2023, time.May, 1), end: datePtr(2022, time.May, 1), want: 0},
		{name: "end_equals_start", start: datePtr(2023, time.May, 1), end: datePtr(2023, time.May, 1), want: 0},
		{name: "ongoing_uses_clock", start: datePtr(2024, time.June, 15), end: nil, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.DurationYears(tc.start, tc.end)
			if got != tc.want {
				t.Fatalf("DurationYears = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDurationYearsMonotonicInEnd(t *testing.T) {
	e := fixedEngine(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	start := datePtr(2020, time.March, 1)

	prev := -1.0
	for months := 0; months <= 36; months++ {
		end := start.AddDate(0, months, 0)
		got := e.DurationYears(start, &end)
		if got < prev {
			t.Fatalf("duration decreased at month %d: %v < %v", months, got, prev)
		}
		prev = got
	}
}

func TestDurationYearsOngoingGrowsWithClock(t *testing.T) {
	start := datePtr(2022, time.January, 1)

	early := fixedEngine(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)).DurationYears(start, nil)
	late := fixedEngine(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)).DurationYears(start, nil)

	if late < early {
		t.Fatalf("ongoing duration shrank as time advanced: %v then %v", early, late)
	}
	if early != 1 || late != 2 {
		t.Fatalf("expected 1 then 2 years, got %v then %v", early, late)
	}
}
