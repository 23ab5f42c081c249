package resumes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

const storedTimeLayout = time.RFC3339Nano

var fileKeyRe = regexp.MustCompile(`^[0-9]{10}$`)

func parseStoredTime(value string) (time.Time, error) {
	return time.Parse(storedTimeLayout, value)
}

// storedResume is the on-disk / on-object representation of a resume.
type storedResume struct {
	ID            string          `json:"id"`
	PhoneNumber   string          `json:"phoneNumber"`
	ResumeData    json.RawMessage `json:"resumeData"`
	QRCodeDataURL string          `json:"qrCodeDataUrl,omitempty"`
	UpdatedAt     string          `json:"updatedAt"`
}

func toStored(resume Resume) storedResume {
	return storedResume{
		ID:            resume.ID,
		PhoneNumber:   resume.PhoneNumber,
		ResumeData:    resume.ResumeData,
		QRCodeDataURL: resume.QRCodeDataURL,
		UpdatedAt:     resume.UpdatedAt.UTC().Format(storedTimeLayout),
	}
}

func fromStored(s storedResume) (Resume, error) {
	resume := Resume{
		ID:            s.ID,
		PhoneNumber:   s.PhoneNumber,
		ResumeData:    s.ResumeData,
		QRCodeDataURL: s.QRCodeDataURL,
	}
	if s.UpdatedAt != "" {
		t, err := parseStoredTime(s.UpdatedAt)
		if err != nil {
			return Resume{}, fmt.Errorf("parse updatedAt: %w", err)
		}
		resume.UpdatedAt = t
	}
	return resume, nil
}

// FileRepo persists one JSON file per phone number under a base directory.
type FileRepo struct {
	baseDir string
}

// NewFileRepo constructs a FileRepo rooted at baseDir.
func NewFileRepo(baseDir string) *FileRepo {
	return &FileRepo{baseDir: baseDir}
}

// Put writes the resume to <baseDir>/<phoneNumber>.json atomically.
func (r *FileRepo) Put(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !fileKeyRe.MatchString(resume.PhoneNumber) {
		return ErrInvalidPhone
	}

	if err := os.MkdirAll(r.baseDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	payload, err := json.MarshalIndent(toStored(resume), "", "  ")
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	finalPath := filepath.Join(r.baseDir, resume.PhoneNumber+".json")
	tmp, err := os.CreateTemp(r.baseDir, resume.PhoneNumber+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write resume: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Get reads the resume stored for a phone number.
func (r *FileRepo) Get(ctx context.Context, phoneNumber string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if !fileKeyRe.MatchString(phoneNumber) {
		return Resume{}, ErrInvalidPhone
	}

	raw, err := os.ReadFile(filepath.Join(r.baseDir, phoneNumber+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, fmt.Errorf("read resume: %w", err)
	}

	var stored storedResume
	if err := json.Unmarshal(raw, &stored); err != nil {
		return Resume{}, fmt.Errorf("decode resume: %w", err)
	}
	return fromStored(stored)
}

var _ ResumesRepo = (*FileRepo)(nil)
