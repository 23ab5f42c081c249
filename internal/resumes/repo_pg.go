package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements ResumesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Put upserts the resume keyed by phone number.
func (r *PGRepo) Put(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    phone_number,
    resume_data,
    qr_code_data_url,
    updated_at
) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (phone_number) DO UPDATE SET
    resume_data = EXCLUDED.resume_data,
    qr_code_data_url = EXCLUDED.qr_code_data_url,
    updated_at = EXCLUDED.updated_at`

	var qrCode sql.NullString
	if resume.QRCodeDataURL != "" {
		qrCode = sql.NullString{String: resume.QRCodeDataURL, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.PhoneNumber,
		[]byte(resume.ResumeData),
		qrCode,
		resume.UpdatedAt,
	)
	return err
}

// Get returns the resume stored for a phone number.
func (r *PGRepo) Get(ctx context.Context, phoneNumber string) (Resume, error) {
	const query = `
SELECT id, phone_number, resume_data, qr_code_data_url, updated_at
FROM resumes
WHERE phone_number = $1
LIMIT 1`

	var resume Resume
	var data []byte
	var qrCode sql.NullString
	err := r.DB.QueryRowContext(ctx, query, phoneNumber).Scan(
		&resume.ID,
		&resume.PhoneNumber,
		&data,
		&qrCode,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	resume.ResumeData = data
	if qrCode.Valid {
		resume.QRCodeDataURL = qrCode.String
	}
	return resume, nil
}

var _ ResumesRepo = (*PGRepo)(nil)
