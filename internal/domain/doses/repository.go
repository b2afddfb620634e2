package doses

import (
	"context"
	"time"
)

// Repository es el ledger de tomas marcadas: un set de claves opacas.
type Repository interface {
	Add(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
	ClearDates(ctx context.Context, from, to time.Time) error
}
