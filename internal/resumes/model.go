package resumes

import (
	"encoding/json"
	"time"
)

// Resume is a stored resume payload keyed by phone number.
type Resume struct {
	ID            string
	PhoneNumber   string
	ResumeData    json.RawMessage
	QRCodeDataURL string
	UpdatedAt     time.Time
}
