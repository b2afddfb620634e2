package session

import (
	"strings"
	"sync"
	"time"

	"medtimer-companion/internal/adapters/storage/memory"
	"medtimer-companion/internal/domain/adherence"
	"medtimer-companion/internal/domain/doses"
	"medtimer-companion/internal/domain/reminders"
	"medtimer-companion/internal/domain/schedules"

	"github.com/google/uuid"
)

// State es el estado completo de una sesión interactiva: su store de planes,
// su ledger de tomas y su configuración de aviso. Sesiones concurrentes son
// copias independientes; no hay nada compartido ni sincronizado entre ellas.
type State struct {
	ID        string
	CreatedAt time.Time

	Schedules *schedules.Service
	Resolver  *schedules.Resolver
	Doses     *doses.Service
	Settings  *reminders.Settings
	Adherence *adherence.Calculator
}

func newState(id string, clock func() time.Time) *State {
	scheduleRepo := memory.NewScheduleRepo()
	ledgerRepo := memory.NewLedgerRepo()

	resolver := schedules.NewResolver(scheduleRepo)
	doseSvc := doses.NewService(ledgerRepo)

	return &State{
		ID:        id,
		CreatedAt: clock(),
		Schedules: schedules.NewService(scheduleRepo),
		Resolver:  resolver,
		Doses:     doseSvc,
		Settings:  reminders.NewSettings(),
		Adherence: adherence.NewCalculator(resolver, doseSvc, clock),
	}
}

// Registry mapea id de sesión a su State. Vive en memoria todo el proceso;
// no hay expiración (el proceso es la sesión larga, como el original).
type Registry struct {
	mu   sync.Mutex
	byID map[string]*State
	now  func() time.Time
}

func NewRegistry() *Registry {
	return NewRegistryWithClock(nil)
}

// NewRegistryWithClock congela el reloj de las sesiones (adherencia usa
// "hoy" del clock). Nil usa time.Now.
func NewRegistryWithClock(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		byID: make(map[string]*State),
		now:  now,
	}
}

// GetOrCreate devuelve la sesión del id, creándola si no existe.
// Id vacío acuña uno nuevo (uuid).
func (g *Registry) GetOrCreate(id string) *State {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if st, ok := g.byID[id]; ok {
		return st
	}
	st := newState(id, g.now)
	g.byID[id] = st
	return st
}
