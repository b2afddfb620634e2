package schedules

import (
	"context"
	"sort"
	"time"
)

// Resolver expande planes en tomas concretas por fecha.
// Es una función pura del store + fecha: no tiene estado ni efectos.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// OccurrencesOn lista las tomas esperadas de una fecha, ordenadas por hora
// ascendente. Ante empate de hora se respeta el orden de alta de los planes
// (sort estable).
func (r *Resolver) OccurrencesOn(ctx context.Context, date time.Time) ([]Occurrence, error) {
	items, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	day := DateOnly(date)
	out := make([]Occurrence, 0)
	for _, sch := range items {
		if !sch.ActiveOn(day) {
			continue
		}
		for _, t := range sch.Times {
			out = append(out, Occurrence{Date: day, Name: sch.Name, Time: t})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out, nil
}

type DayOccurrences struct {
	Date        time.Time
	Occurrences []Occurrence
}

// OccurrencesInWindow resuelve cada día del rango [from, to] de forma
// independiente (no hay interacción entre días ni deduplicación cruzada).
func (r *Resolver) OccurrencesInWindow(ctx context.Context, from, to time.Time) ([]DayOccurrences, error) {
	start := DateOnly(from)
	end := DateOnly(to)

	out := make([]DayOccurrences, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		occs, err := r.OccurrencesOn(ctx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, DayOccurrences{Date: d, Occurrences: occs})
	}
	return out, nil
}
