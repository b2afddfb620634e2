package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"medtimer-companion/internal/domain/schedules"
)

type scheduleRepo struct {
	mu    sync.RWMutex
	items []schedules.Schedule
}

// NewScheduleRepo crea el store volátil de planes. Append-only: no hay
// edición ni borrado en runtime, solo iteración estable en orden de alta.
func NewScheduleRepo() schedules.Repository {
	return &scheduleRepo{
		items: make([]schedules.Schedule, 0),
	}
}

func (r *scheduleRepo) Create(ctx context.Context, s schedules.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("schedule id required")
	}
	for _, existing := range r.items {
		if existing.ID == s.ID {
			return errors.New("schedule already exists")
		}
	}
	r.items = append(r.items, s)
	return nil
}

func (r *scheduleRepo) List(ctx context.Context) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, len(r.items))
	copy(out, r.items)
	return out, nil
}
