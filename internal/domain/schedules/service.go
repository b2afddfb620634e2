package schedules

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("medicine name required")
	ErrNoDays    = errors.New("at least one weekday required")
	ErrNoTimes   = errors.New("at least one dose time required")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AddInput struct {
	Name  string
	Days  []string // nombres completos o prefijos de 3 letras
	Times []string // "HH:MM"

	StartDate *time.Time // nil => hoy
}

// Add valida y agrega un plan. El rechazo es atómico: ante cualquier error
// el store queda exactamente como estaba.
func (s *Service) Add(ctx context.Context, in AddInput) (Schedule, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Schedule{}, ErrEmptyName
	}
	if len(in.Days) == 0 {
		return Schedule{}, ErrNoDays
	}
	if len(in.Times) == 0 {
		return Schedule{}, ErrNoTimes
	}

	days, err := normalizeDays(in.Days)
	if err != nil {
		return Schedule{}, err
	}

	times := make([]TimeOfDay, 0, len(in.Times))
	for _, raw := range in.Times {
		t, err := ParseTimeOfDay(raw)
		if err != nil {
			return Schedule{}, err
		}
		times = append(times, t)
	}

	now := s.now()
	start := DateOnly(now)
	if in.StartDate != nil {
		start = DateOnly(*in.StartDate)
	}

	sch := Schedule{
		ID:        uuid.NewString(),
		Name:      name,
		Days:      days,
		Times:     times,
		StartDate: start,
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, sch); err != nil {
		return Schedule{}, err
	}
	return sch, nil
}

func (s *Service) List(ctx context.Context) ([]Schedule, error) {
	return s.repo.List(ctx)
}

// normalizeDays parsea, deduplica y deja los días en orden de semana.
func normalizeDays(raw []string) ([]Weekday, error) {
	seen := map[Weekday]bool{}
	for _, r := range raw {
		d, err := ParseWeekday(r)
		if err != nil {
			return nil, err
		}
		seen[d] = true
	}

	out := make([]Weekday, 0, len(seen))
	for _, d := range WeekOrder {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out, nil
}
