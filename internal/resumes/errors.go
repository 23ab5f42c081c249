package resumes

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")
	ErrInvalidInput = errors.New("resume data is required")
)
