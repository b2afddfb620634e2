package reminders

import (
	"errors"
	"sync"
)

const (
	DefaultLeadMinutes = 15
	MinLeadMinutes     = 1
	MaxLeadMinutes     = 60
)

var ErrInvalidLeadMinutes = errors.New("reminder lead minutes must be between 1 and 60")

// Settings guarda la antelación de aviso de una sesión. Ajustable en
// cualquier momento; aplica a la siguiente evaluación, sin snapshots.
type Settings struct {
	mu   sync.RWMutex
	lead int
}

func NewSettings() *Settings {
	return &Settings{lead: DefaultLeadMinutes}
}

// SetLeadMinutes rechaza valores fuera de [1, 60] y conserva el anterior.
func (s *Settings) SetLeadMinutes(n int) error {
	if n < MinLeadMinutes || n > MaxLeadMinutes {
		return ErrInvalidLeadMinutes
	}
	s.mu.Lock()
	s.lead = n
	s.mu.Unlock()
	return nil
}

func (s *Settings) LeadMinutes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lead
}
