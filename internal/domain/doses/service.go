package doses

import (
	"context"
	"errors"
	"strings"
	"time"

	"medtimer-companion/internal/domain/schedules"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// MarkTaken registra la toma. Es idempotente y nunca mira el reloj:
// una toma vencida ("missed") sigue siendo marcable.
func (s *Service) MarkTaken(ctx context.Context, date time.Time, name string, t schedules.TimeOfDay) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	return s.repo.Add(ctx, Key(date, name, t))
}

func (s *Service) IsTaken(ctx context.Context, date time.Time, name string, t schedules.TimeOfDay) (bool, error) {
	return s.repo.Has(ctx, Key(date, name, t))
}

// IsTakenKey consulta por clave ya codificada (lo usa el cálculo de adherencia).
func (s *Service) IsTakenKey(ctx context.Context, key string) (bool, error) {
	return s.repo.Has(ctx, key)
}

// ResetAll limpia todo el ledger de la sesión. Irreversible; la confirmación
// es problema del cliente.
func (s *Service) ResetAll(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// ResetWindow limpia solo las claves cuya fecha cae en [from, to].
func (s *Service) ResetWindow(ctx context.Context, from, to time.Time) error {
	f := schedules.DateOnly(from)
	t := schedules.DateOnly(to)
	if t.Before(f) {
		return ErrInvalidInput
	}
	return s.repo.ClearDates(ctx, f, t)
}
