package engine

import "time"

// DurationYears returns the elapsed time between start and end as a
// fractional year, truncated to whole-month granularity before dividing by
// 12. A nil end date means the project is ongoing and the engine's clock
// supplies the effective end, so results for ongoing projects vary across
// real time. A nil start or an end at or before start yields 0, never a
// negative value.
func (e *Engine) DurationYears(start, end *time.Time) float64 {
	if start == nil {
		return 0
	}
	effectiveEnd := e.now()
	if end != nil {
		effectiveEnd = *end
	}
	months := wholeMonthsBetween(*start, effectiveEnd)
	if months <= 0 {
		return 0
	}
	return float64(months) / 12
}

// wholeMonthsBetween counts fully elapsed calendar months from a to b.
func wholeMonthsBetween(a, b time.Time) int {
	if !b.After(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
