package reminders

// Status clasifica una toma respecto de "ahora". Se recalcula en cada
// consulta; no hay transiciones guardadas.
type Status string

const (
	StatusTaken    Status = "taken"
	StatusImminent Status = "imminent"
	StatusMissed   Status = "missed"
	StatusUpcoming Status = "upcoming"
)
