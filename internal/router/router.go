package router

import (
	"context"
	"net/http"
	"time"

	"medtimer-companion/internal/domain/adherence"
	"medtimer-companion/internal/domain/doses"
	"medtimer-companion/internal/domain/reminders"
	"medtimer-companion/internal/domain/schedules"
	"medtimer-companion/internal/middleware"
	"medtimer-companion/internal/platform/logger"
	"medtimer-companion/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Registry de sesiones. Nil => uno nuevo (lo normal fuera de tests).
	Registry *session.Registry

	Logger logger.Logger

	// Now permite congelar el reloj en tests. Nil => time.Now.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	reg := opts.Registry
	if reg == nil {
		reg = session.NewRegistryWithClock(now)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(log))

	r.Use(middleware.SessionContext(reg))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger UI sobre el doc mantenido a mano en openapi.go.
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(openAPIDoc))
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Rutas por módulo. Cada closure saca el servicio de la sesión del
	// request; los handlers no conocen el registry.
	schedules.RegisterRoutes(r, func(ctx context.Context) (*schedules.Service, bool) {
		st, ok := middleware.GetState(ctx)
		if !ok {
			return nil, false
		}
		return st.Schedules, true
	})

	doses.RegisterRoutes(r, func(ctx context.Context) (doses.Deps, bool) {
		st, ok := middleware.GetState(ctx)
		if !ok {
			return doses.Deps{}, false
		}
		return doses.Deps{
			Doses:    st.Doses,
			Resolver: st.Resolver,
			Settings: st.Settings,
		}, true
	}, now)

	reminders.RegisterRoutes(r, func(ctx context.Context) (*reminders.Settings, bool) {
		st, ok := middleware.GetState(ctx)
		if !ok {
			return nil, false
		}
		return st.Settings, true
	})

	adherence.RegisterRoutes(r, func(ctx context.Context) (*adherence.Calculator, bool) {
		st, ok := middleware.GetState(ctx)
		if !ok {
			return nil, false
		}
		return st.Adherence, true
	})

	return r
}

// requestLogger loguea método, ruta, status y duración de cada request.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("request", map[string]any{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"duration":   time.Since(start).String(),
				"request_id": chimw.GetReqID(r.Context()),
			})
		})
	}
}
