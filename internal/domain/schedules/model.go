package schedules

import "time"

// Schedule representa un plan recurrente de medicación.
// Es inmutable una vez creado: el alta es la única mutación del store.
type Schedule struct {
	ID   string
	Name string

	Days  []Weekday   // normalizados, sin duplicados, en orden de semana
	Times []TimeOfDay // orden de entrada del usuario

	StartDate time.Time // solo fecha (medianoche local), inclusive; sin fecha de fin
	CreatedAt time.Time
}

// ActiveOn indica si el plan genera tomas en esa fecha.
// Un plan sin días o sin horarios es legal y simplemente no genera nada.
func (s Schedule) ActiveOn(date time.Time) bool {
	if DateOnly(date).Before(DateOnly(s.StartDate)) {
		return false
	}
	wd := WeekdayOf(date)
	for _, d := range s.Days {
		if d == wd {
			return true
		}
	}
	return false
}

// Occurrence es una toma concreta esperada en una fecha. Se deriva siempre,
// nunca se persiste. Su identidad es la tripla (fecha, nombre, hora): dos
// planes con mismo nombre y horario en el mismo día colisionan a propósito.
type Occurrence struct {
	Date time.Time
	Name string
	Time TimeOfDay
}

// Key codifica la identidad como "YYYY-MM-DD|name|HH:MM".
func (o Occurrence) Key() string {
	return DateOnly(o.Date).Format("2006-01-02") + "|" + o.Name + "|" + o.Time.String()
}

// DueAt combina fecha y hora de toma en un instante local.
func (o Occurrence) DueAt() time.Time {
	d := DateOnly(o.Date)
	return time.Date(d.Year(), d.Month(), d.Day(), o.Time.Hour, o.Time.Minute, 0, 0, d.Location())
}

// DateOnly trunca a medianoche local. Todas las comparaciones de fecha del
// dominio pasan por acá para no arrastrar horas sueltas.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
