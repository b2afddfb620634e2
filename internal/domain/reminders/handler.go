package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type SettingsFrom func(ctx context.Context) (*Settings, bool)

func RegisterRoutes(r chi.Router, settings SettingsFrom) {
	r.Route("/settings/reminder", func(sr chi.Router) {
		sr.Get("/", getReminderSettingHandler(settings))
		sr.Put("/", setReminderSettingHandler(settings))
	})

	r.Get("/reminders/tone", toneHandler())
}

type reminderSettingPayload struct {
	LeadMinutes int `json:"lead_minutes"`
}

func getReminderSettingHandler(settings SettingsFrom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := settings(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, reminderSettingPayload{LeadMinutes: s.LeadMinutes()})
	}
}

func setReminderSettingHandler(settings SettingsFrom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := settings(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}

		var req reminderSettingPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := s.SetLeadMinutes(req.LeadMinutes); err != nil {
			if errors.Is(err, ErrInvalidLeadMinutes) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toneHandler() http.HandlerFunc {
	// El WAV es chico y determinístico: se renderiza una vez.
	wav := ToneWAV()
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		w.Header().Set("Content-Length", strconv.Itoa(len(wav)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(wav)
	}
}

// writeJSON está duplicado adrede entre módulos; ver nota en schedules/handler.go.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
