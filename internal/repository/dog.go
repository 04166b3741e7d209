package repository

import (
	"context"

	"github.com/jquinonez7/DogTracker/internal/domain"
)

type DogRepository interface {
	Insert(ctx context.Context, dog *domain.Dog) (*domain.Dog, error)
	FindByID(ctx context.Context, id int64) (*domain.Dog, error)
	List(ctx context.Context) ([]*domain.Dog, error)
	Delete(ctx context.Context, id int64) error
}
