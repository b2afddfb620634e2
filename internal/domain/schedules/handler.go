package schedules

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ServiceFrom resuelve el servicio de la sesión del request.
// El router inyecta el closure; los handlers no conocen el registry.
type ServiceFrom func(ctx context.Context) (*Service, bool)

func RegisterRoutes(r chi.Router, svc ServiceFrom) {
	r.Route("/schedules", func(sr chi.Router) {
		sr.Post("/", addScheduleHandler(svc))
		sr.Get("/", listSchedulesHandler(svc))
	})

	r.Get("/medicines", listMedicinesHandler())
}

type addScheduleRequest struct {
	Name      string   `json:"name"`
	Days      []string `json:"days"`
	Times     []string `json:"times"`
	StartDate string   `json:"start_date"` // YYYY-MM-DD opcional (default hoy)
}

type scheduleResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Days      []string `json:"days"`
	Times     []string `json:"times"`
	StartDate string   `json:"start_date"`
}

func addScheduleHandler(svc ServiceFrom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := svc(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}

		var req addScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var start *time.Time
		if req.StartDate != "" {
			t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
			if err != nil {
				http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			start = &t
		}

		sch, err := s.Add(r.Context(), AddInput{
			Name:      req.Name,
			Days:      req.Days,
			Times:     req.Times,
			StartDate: start,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyName),
				errors.Is(err, ErrNoDays),
				errors.Is(err, ErrNoTimes),
				errors.Is(err, ErrBadWeekday),
				errors.Is(err, ErrBadTime):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toScheduleResponse(sch))
	}
}

func listSchedulesHandler(svc ServiceFrom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := svc(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}

		items, err := s.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]scheduleResponse, 0, len(items))
		for _, sch := range items {
			out = append(out, toScheduleResponse(sch))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listMedicinesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, CommonMedicines)
	}
}

func toScheduleResponse(s Schedule) scheduleResponse {
	days := make([]string, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, string(d))
	}
	times := make([]string, 0, len(s.Times))
	for _, t := range s.Times {
		times = append(times, t.String())
	}
	return scheduleResponse{
		ID:        s.ID,
		Name:      s.Name,
		Days:      days,
		Times:     times,
		StartDate: s.StartDate.Format("2006-01-02"),
	}
}

// writeJSON está duplicado adrede en los handlers de cada módulo
// (schedules/doses/reminders/adherence) para no crear helpers compartidos
// antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
