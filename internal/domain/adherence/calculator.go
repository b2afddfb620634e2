package adherence

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"medtimer-companion/internal/domain/doses"
	"medtimer-companion/internal/domain/schedules"
)

// Window nombra la estrategia de ventana. El caller elige una; nunca se
// mezclan dentro de un mismo porcentaje.
type Window string

const (
	// CalendarWeek: lunes de la semana en curso hasta hoy (la semana parcial
	// cuenta solo los días transcurridos).
	CalendarWeek Window = "calendar_week"
	// Trailing7: hoy y los seis días anteriores, ignorando el corte de semana.
	Trailing7 Window = "trailing7"
)

var ErrBadWindow = errors.New("window must be calendar_week or trailing7")

// ParseWindow admite vacío como default (calendar_week, el comportamiento
// clásico del producto).
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "":
		return CalendarWeek, nil
	case CalendarWeek, Trailing7:
		return Window(s), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrBadWindow, s)
	}
}

// Calculator computa adherencia esperado-vs-tomado sobre una ventana.
// Lee del resolver y del ledger; no muta nada.
type Calculator struct {
	resolver *schedules.Resolver
	doses    *doses.Service
	now      func() time.Time
}

// NewCalculator arma el calculador. El reloj es inyectable para congelar
// "hoy" en tests; nil usa time.Now.
func NewCalculator(resolver *schedules.Resolver, d *doses.Service, now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{
		resolver: resolver,
		doses:    d,
		now:      now,
	}
}

// Percent devuelve el porcentaje entero [0, 100] con redondeo hacia abajo.
// Cero tomas esperadas => 100: una agenda vacía no es un fracaso.
func (c *Calculator) Percent(ctx context.Context, w Window) (int, error) {
	from, to := windowBounds(c.now(), w)

	days, err := c.resolver.OccurrencesInWindow(ctx, from, to)
	if err != nil {
		return 0, err
	}

	expected, taken := 0, 0
	for _, day := range days {
		for _, occ := range day.Occurrences {
			expected++
			ok, err := c.doses.IsTakenKey(ctx, occ.Key())
			if err != nil {
				return 0, err
			}
			if ok {
				taken++
			}
		}
	}

	if expected == 0 {
		return 100, nil
	}
	return taken * 100 / expected, nil
}

type Report struct {
	Window  Window
	Percent int
	Badge   string
	Quote   string
}

func (c *Calculator) Report(ctx context.Context, w Window) (Report, error) {
	p, err := c.Percent(ctx, w)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Window:  w,
		Percent: p,
		Badge:   Badge(p),
		Quote:   Quote(),
	}, nil
}

// windowBounds traduce la estrategia a un rango de fechas inclusive.
func windowBounds(now time.Time, w Window) (time.Time, time.Time) {
	today := schedules.DateOnly(now)
	switch w {
	case Trailing7:
		return today.AddDate(0, 0, -6), today
	default:
		// Lunes de esta semana. time.Weekday arranca en domingo.
		offset := (int(today.Weekday()) + 6) % 7
		return today.AddDate(0, 0, -offset), today
	}
}

const (
	BadgeOutstanding = "outstanding"
	BadgeGreat       = "great"
	BadgeNeedsWork   = "needs_work"
)

// Badge mapea porcentaje a nivel de aliento para la UI.
func Badge(percent int) string {
	switch {
	case percent >= 95:
		return BadgeOutstanding
	case percent >= 80:
		return BadgeGreat
	default:
		return BadgeNeedsWork
	}
}

var quotes = []string{
	"Every dose taken is a step toward wellness.",
	"Consistency builds strength.",
	"You're doing great—keep it up!",
	"Health is the real wealth.",
	"One dose at a time, you're healing.",
}

// Quote elige una frase motivacional al azar para acompañar el número.
func Quote() string {
	return quotes[rand.Intn(len(quotes))]
}
