package engine

import "sort"

// RatingSet maps a calendar year to that year's performance rating (1-5).
type RatingSet map[int]int

// maxRatingYears caps how far back ratings are collected.
const maxRatingYears = 5

// Average returns the floor of the arithmetic mean over all ratings, 0 for
// an empty set.
func (r RatingSet) Average() int {
	if len(r) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range r {
		sum += rating
	}
	return sum / len(r)
}

// Years lists the set's years ascending.
func (r RatingSet) Years() []int {
	years := make([]int, 0, len(r))
	for year := range r {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// RequestedRatingYears returns the calendar years a caller should collect
// ratings for: the most recent whole years of experience, capped at 5,
// ending with the engine clock's previous year. Collection requires a
// resolved overall experience of at least one year; anything less is
// ErrMissingPrerequisite.
func (e *Engine) RequestedRatingYears(overallYears float64) ([]int, error) {
	if overallYears < 1 {
		return nil, ErrMissingPrerequisite
	}
	count := int(overallYears)
	if count > maxRatingYears {
		count = maxRatingYears
	}
	lastYear := e.now().Year() - 1
	years := make([]int, 0, count)
	for i := count - 1; i >= 0; i-- {
		years = append(years, lastYear-i)
	}
	return years, nil
}
