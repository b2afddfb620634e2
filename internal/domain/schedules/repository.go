package schedules

import "context"

type Repository interface {
	Create(ctx context.Context, s Schedule) error
	List(ctx context.Context) ([]Schedule, error)
}
