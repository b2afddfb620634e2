package schedules

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Weekday define los días soportados (semana empieza en lunes).
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekOrder es el orden canónico para mostrar y normalizar.
var WeekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var (
	ErrBadWeekday = errors.New("invalid weekday")
	ErrBadTime    = errors.New("time must be HH:MM")
)

var weekdayByPrefix = map[string]Weekday{
	"mon": Monday,
	"tue": Tuesday,
	"wed": Wednesday,
	"thu": Thursday,
	"fri": Friday,
	"sat": Saturday,
	"sun": Sunday,
}

// ParseWeekday acepta nombre completo ("Monday") o prefijo de 3 letras ("Mon"),
// sin distinguir mayúsculas. La normalización pasa por acá una sola vez;
// después del alta nadie vuelve a comparar strings.
func ParseWeekday(s string) (Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if len(v) < 3 {
		return "", fmt.Errorf("%w: %q", ErrBadWeekday, s)
	}

	d, ok := weekdayByPrefix[v[:3]]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadWeekday, s)
	}

	// Si mandaron más que el prefijo, tiene que ser el nombre completo.
	if len(v) > 3 && v != strings.ToLower(string(d)) {
		return "", fmt.Errorf("%w: %q", ErrBadWeekday, s)
	}
	return d, nil
}

// WeekdayOf traduce el weekday de time.Time al enum propio.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// TimeOfDay es una hora de toma dentro del día (hora local, sin fecha).
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	v := strings.TrimSpace(s)
	var h, m int
	if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinuteOfDay sirve como clave de orden (09:30 => 570).
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.MinuteOfDay() < o.MinuteOfDay()
}
