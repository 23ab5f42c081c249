package resumes

import (
	"encoding/json"
	"time"
)

// ResumeResponse is the outward-facing representation of a stored resume.
type ResumeResponse struct {
	PhoneNumber   string          `json:"phoneNumber"`
	ResumeData    json.RawMessage `json:"resumeData"`
	QRCodeDataURL string          `json:"qrCodeDataUrl,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		PhoneNumber:   resume.PhoneNumber,
		ResumeData:    resume.ResumeData,
		QRCodeDataURL: resume.QRCodeDataURL,
		UpdatedAt:     resume.UpdatedAt,
	}
}
