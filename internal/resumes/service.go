package resumes

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const defaultBaseURL = "http://localhost:8080"

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// Service contains business logic for stored resumes.
type Service struct {
	Repo          ResumesRepo
	PublicBaseURL string
	Now           func() time.Time
}

// NewService constructs a Service.
func NewService(repo ResumesRepo, publicBaseURL string) *Service {
	return &Service{
		Repo:          repo,
		PublicBaseURL: publicBaseURL,
		Now:           time.Now,
	}
}

// Save validates and stores a resume payload; last write wins.
func (s *Service) Save(ctx context.Context, phoneNumber string, resumeData []byte, qrCodeDataURL string) (Resume, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if !phoneRe.MatchString(phoneNumber) {
		return Resume{}, ErrInvalidPhone
	}

	trimmed := bytes.TrimSpace(resumeData)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Resume{}, ErrInvalidInput
	}

	resume := Resume{
		ID:            uuid.NewString(),
		PhoneNumber:   phoneNumber,
		ResumeData:    trimmed,
		QRCodeDataURL: strings.TrimSpace(qrCodeDataURL),
		UpdatedAt:     s.now(),
	}
	if err := s.Repo.Put(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get fetches the resume stored for a phone number.
func (s *Service) Get(ctx context.Context, phoneNumber string) (Resume, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if !phoneRe.MatchString(phoneNumber) {
		return Resume{}, ErrInvalidPhone
	}
	return s.Repo.Get(ctx, phoneNumber)
}

// QRCode returns a PNG data URL encoding the public link to the stored
// resume. The stored client-supplied data URL, if any, takes precedence.
func (s *Service) QRCode(ctx context.Context, phoneNumber string) (string, error) {
	resume, err := s.Get(ctx, phoneNumber)
	if err != nil {
		return "", err
	}
	if resume.QRCodeDataURL != "" {
		return resume.QRCodeDataURL, nil
	}

	png, err := qrcode.Encode(s.resumeLink(resume.PhoneNumber), qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (s *Service) resumeLink(phoneNumber string) string {
	base := strings.TrimRight(strings.TrimSpace(s.PublicBaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base + "/api/v1/resumes/" + phoneNumber
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
