package engine

import "errors"

var (
	// ErrInsufficientDetail means the combined project text is too short to
	// summarize. Callers must surface a "add more project detail" path, not
	// substitute a fabricated summary.
	ErrInsufficientDetail = errors.New("project details too short to summarize")

	// ErrMissingPrerequisite means an upstream value (overall experience,
	// project title) was not provided before a dependent operation.
	ErrMissingPrerequisite = errors.New("missing prerequisite value")
)
