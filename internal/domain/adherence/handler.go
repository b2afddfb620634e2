package adherence

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CalculatorFrom func(ctx context.Context) (*Calculator, bool)

func RegisterRoutes(r chi.Router, calc CalculatorFrom) {
	r.Get("/adherence", getAdherenceHandler(calc))
}

type adherenceResponse struct {
	Window  string `json:"window"`
	Percent int    `json:"percent"`
	Badge   string `json:"badge"`
	Quote   string `json:"quote"`
}

func getAdherenceHandler(calc CalculatorFrom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := calc(r.Context())
		if !ok {
			http.Error(w, "session missing", http.StatusInternalServerError)
			return
		}

		win, err := ParseWindow(r.URL.Query().Get("window"))
		if err != nil {
			if errors.Is(err, ErrBadWindow) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rep, err := c.Report(r.Context(), win)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, adherenceResponse{
			Window:  string(rep.Window),
			Percent: rep.Percent,
			Badge:   rep.Badge,
			Quote:   rep.Quote,
		})
	}
}

// writeJSON está duplicado adrede entre módulos; ver nota en schedules/handler.go.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
