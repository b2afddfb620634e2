package middleware

import (
	"context"
	"net/http"

	"medtimer-companion/internal/session"
)

// SessionHeader identifica la sesión del cliente. Sin header se acuña una
// sesión nueva; el id efectivo siempre vuelve en la respuesta para que el
// cliente lo repita.
const SessionHeader = "X-Session-ID"

type ctxKey string

const sessionKey ctxKey = "session"

// SessionContext resuelve (o crea) la sesión del request y la inyecta en el
// context. Cada sesión es una copia aislada del estado; dos clientes con ids
// distintos no se ven entre sí.
func SessionContext(reg *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := reg.GetOrCreate(r.Header.Get(SessionHeader))
			w.Header().Set(SessionHeader, st.ID)

			ctx := context.WithValue(r.Context(), sessionKey, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetState(ctx context.Context) (*session.State, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return nil, false
	}
	st, ok := v.(*session.State)
	return st, ok
}
