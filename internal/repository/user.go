package repository

import (
	"context"

	"github.com/jquinonez7/DogTracker/internal/domain"
)

type UserRepository interface {
	// Insert creates the user in a single atomic statement. A duplicate
	// email surfaces as domain.ErrDuplicateEmail; there is no separate
	// exists-check that could race.
	Insert(ctx context.Context, email, passwordHash string) (*domain.User, error)

	// FindByEmail matches exactly (case-sensitive).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
