package repository

import "context"

// StatsRepository feeds the periodic gauge refresh.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountDogs(ctx context.Context) (int64, error)
}
