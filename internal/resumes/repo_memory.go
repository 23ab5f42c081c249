package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // phoneNumber -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
	}
}

// Put stores/overwrites the resume for a phone number.
func (r *MemoryRepo) Put(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.PhoneNumber] = resume
	return nil
}

// Get returns the stored resume for a phone number.
func (r *MemoryRepo) Get(ctx context.Context, phoneNumber string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.data[phoneNumber]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

var _ ResumesRepo = (*MemoryRepo)(nil)
