package doses

import (
	"time"

	"medtimer-companion/internal/domain/schedules"
)

// Key codifica la identidad de una toma como "YYYY-MM-DD|name|HH:MM".
// Mismo formato que schedules.Occurrence.Key; el ledger solo ve el string.
// El prefijo de fecha es ISO a propósito: permite acotar resets por rango
// comparando strings, sin parsear.
func Key(date time.Time, name string, t schedules.TimeOfDay) string {
	return schedules.Occurrence{Date: date, Name: name, Time: t}.Key()
}
