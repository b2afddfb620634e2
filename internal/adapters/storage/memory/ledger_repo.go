package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"medtimer-companion/internal/domain/doses"
)

type ledgerRepo struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewLedgerRepo crea el set volátil de tomas marcadas.
func NewLedgerRepo() doses.Repository {
	return &ledgerRepo{
		keys: make(map[string]struct{}),
	}
}

func (r *ledgerRepo) Add(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("ledger key required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// Set semantics: agregar dos veces deja el mismo estado.
	r.keys[key] = struct{}{}
	return nil
}

func (r *ledgerRepo) Has(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.keys[key]
	return ok, nil
}

func (r *ledgerRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = make(map[string]struct{})
	return nil
}

// ClearDates borra las claves cuyo prefijo de fecha cae en [from, to].
// El prefijo es ISO (YYYY-MM-DD), así que alcanza con comparar strings.
// Claves malformadas se dejan tal cual.
func (r *ledgerRepo) ClearDates(ctx context.Context, from, to time.Time) error {
	fromS := from.Format("2006-01-02")
	toS := to.Format("2006-01-02")

	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.keys {
		i := strings.IndexByte(key, '|')
		if i < 0 {
			continue
		}
		dateS := key[:i]
		if dateS >= fromS && dateS <= toS {
			delete(r.keys, key)
		}
	}
	return nil
}
