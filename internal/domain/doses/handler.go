package doses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"medtimer-companion/internal/domain/reminders"
	"medtimer-companion/internal/domain/schedules"

	"github.com/go-chi/chi/v5"
)

// Deps junta lo que el listado diario necesita de la sesión: el ledger
// propio, el resolver de planes y la antelación de aviso configurada.
type Deps struct {
	Doses    *Service
	Resolver *schedules.Resolver
	Settings *reminders.Settings
}

type DepsFrom func(ctx context.Context) (Deps, bool)

func RegisterRoutes(r chi.Router, deps DepsFrom, now func() time.Time) {
	if now == nil {
		now = time.Now
	}

	r.Route("/doses", func(dr chi.Router) {
		dr.Get("/", listDosesHandler(deps, now))
		dr.Get("/today", listDosesHandler(deps, now))
		dr.Post("/taken", markTakenHandler(deps, now))
		dr.Delete("/", resetHandler(deps))
	})
}

type doseResponse struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Time   string `json:"time"`
	Status string `json:"status"`
	Taken  bool   `json:"taken"`

	// Remind le dice al cliente que dispare su alerta (tono, badge).
	Remind    bool   `json:"remind"`
	Countdown string `json:"countdown,omitempty"`
}

func listDosesHandler(deps DepsFrom, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := deps(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}

		nowT := now()
		date := nowT
		if q := r.URL.Query().Get("date"); q != "" {
			t, err := time.ParseInLocation("2006-01-02", q, time.Local)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = t
		}

		occs, err := d.Resolver.OccurrencesOn(r.Context(), date)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		lead := d.Settings.LeadMinutes()
		out := make([]doseResponse, 0, len(occs))
		for _, occ := range occs {
			taken, err := d.Doses.IsTakenKey(r.Context(), occ.Key())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			st := reminders.Classify(occ, nowT, lead, taken)
			out = append(out, doseResponse{
				Date:      schedules.DateOnly(occ.Date).Format("2006-01-02"),
				Name:      occ.Name,
				Time:      occ.Time.String(),
				Status:    string(st),
				Taken:     taken,
				Remind:    st == reminders.StatusImminent,
				Countdown: reminders.Countdown(occ, nowT),
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

type markTakenRequest struct {
	Date string `json:"date"` // YYYY-MM-DD opcional (default hoy)
	Name string `json:"name"`
	Time string `json:"time"` // HH:MM
}

func markTakenHandler(deps DepsFrom, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := deps(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}

		var req markTakenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date := now()
		if req.Date != "" {
			t, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = t
		}

		tod, err := schedules.ParseTimeOfDay(req.Time)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := d.Doses.MarkTaken(r.Context(), date, req.Name, tod); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// resetHandler: DELETE /doses limpia todo; con ?from=...&to=... limpia solo
// ese rango de fechas (ambos bordes inclusive).
func resetHandler(deps DepsFrom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := deps(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}

		fromQ := r.URL.Query().Get("from")
		toQ := r.URL.Query().Get("to")

		if fromQ == "" && toQ == "" {
			if err := d.Doses.ResetAll(r.Context()); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		from, err := time.ParseInLocation("2006-01-02", fromQ, time.Local)
		if err != nil {
			http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		to, err := time.ParseInLocation("2006-01-02", toQ, time.Local)
		if err != nil {
			http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		if err := d.Doses.ResetWindow(r.Context(), from, to); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "from must not be after to", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado adrede entre módulos; ver nota en schedules/handler.go.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
