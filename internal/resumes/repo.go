package resumes

import "context"

// ResumesRepo defines persistence operations for stored resumes.
// Put is last-write-wins per phone number.
type ResumesRepo interface {
	Put(ctx context.Context, resume Resume) error
	Get(ctx context.Context, phoneNumber string) (Resume, error)
}
