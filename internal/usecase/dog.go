package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jquinonez7/DogTracker/internal/domain"
	"github.com/jquinonez7/DogTracker/internal/repository"
)

type DogUsecase struct {
	repo repository.DogRepository
}

func NewDogUsecase(repo repository.DogRepository) *DogUsecase {
	return &DogUsecase{repo: repo}
}

type CreateDogInput struct {
	UserID    int64
	Name      string
	Breed     *string
	DOB       *time.Time
	Sex       *string
	AvatarURL *string
	Notes     *string
}

func (u *DogUsecase) Create(ctx context.Context, input CreateDogInput) (*domain.Dog, error) {
	dog := &domain.Dog{
		UserID:    input.UserID,
		Name:      input.Name,
		Breed:     input.Breed,
		DOB:       input.DOB,
		Sex:       input.Sex,
		AvatarURL: input.AvatarURL,
		Notes:     input.Notes,
	}

	created, err := u.repo.Insert(ctx, dog)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *DogUsecase) GetByID(ctx context.Context, id int64) (*domain.Dog, error) {
	dog, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dog, nil
}

func (u *DogUsecase) List(ctx context.Context) ([]*domain.Dog, error) {
	dogs, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	return dogs, nil
}

func (u *DogUsecase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}
