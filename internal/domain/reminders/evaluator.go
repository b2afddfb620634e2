package reminders

import (
	"fmt"
	"time"

	"medtimer-companion/internal/domain/schedules"
)

// Classify aplica la precedencia taken > missed > imminent > upcoming:
//  1. marcada => taken, sin importar el reloj
//  2. hora de toma <= ahora => missed (solo aviso: no bloquea marcar tarde)
//  3. faltan entre 0 y leadMinutes => imminent (el cliente decide si alerta)
//  4. resto => upcoming
func Classify(occ schedules.Occurrence, now time.Time, leadMinutes int, taken bool) Status {
	if taken {
		return StatusTaken
	}

	mins := MinutesUntil(occ, now)
	switch {
	case mins <= 0:
		return StatusMissed
	case mins <= float64(leadMinutes):
		return StatusImminent
	default:
		return StatusUpcoming
	}
}

// MinutesUntil devuelve los minutos hasta la toma con fracción incluida.
// Negativo si ya pasó. El redondeo para mostrar es cosa de Countdown.
func MinutesUntil(occ schedules.Occurrence, now time.Time) float64 {
	return occ.DueAt().Sub(now).Minutes()
}

// Countdown formatea el tiempo restante redondeado hacia abajo:
// "42m" por debajo de la hora, "1h 05m" a partir de 60. Vacío si ya venció.
func Countdown(occ schedules.Occurrence, now time.Time) string {
	mins := int(MinutesUntil(occ, now))
	if mins < 0 {
		return ""
	}
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}
