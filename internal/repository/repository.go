package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"formapi/internal/models"
	"formapi/internal/service"
)

// createdAtLayout gives second granularity, e.g. "2026-08-27 14:03:09".
const createdAtLayout = "2006-01-02 15:04:05"

// MemoryRepo is the sole owner of all stored details. It keeps them in
// insertion order and guards every access with a mutex so inserts and clears
// stay atomic even though gin handles requests on multiple goroutines.
type MemoryRepo struct {
	mu      sync.Mutex
	details []models.Detail
	byID    map[string]int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]int)}
}

var _ service.DetailRepository = (*MemoryRepo)(nil)

// Insert assigns a fresh id and the current timestamp, appends the detail and
// returns the stored copy. Input is assumed to be validated already.
func (r *MemoryRepo) Insert(name string, email string, message string) models.Detail {
	r.mu.Lock()
	defer r.mu.Unlock()
	detail := models.Detail{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().Format(createdAtLayout),
	}
	r.byID[detail.ID] = len(r.details)
	r.details = append(r.details, detail)
	return detail
}

// ListAll returns every stored detail in insertion order. The result is a
// copy and is never nil, so callers can serialize it as an empty array.
func (r *MemoryRepo) ListAll() []models.Detail {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Detail, len(r.details))
	copy(out, r.details)
	return out
}

func (r *MemoryRepo) Get(id string) (models.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.byID[id]
	if !ok {
		return models.Detail{}, service.ErrNotFound
	}
	return r.details[idx], nil
}

// Clear removes every stored detail and returns the number removed.
func (r *MemoryRepo) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := len(r.details)
	r.details = nil
	r.byID = make(map[string]int)
	return removed
}
