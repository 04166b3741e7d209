package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jquinonez7/DogTracker/internal/domain"
)

type DogRepository struct {
	pool *pgxpool.Pool
}

func NewDogRepository(pool *pgxpool.Pool) *DogRepository {
	return &DogRepository{pool: pool}
}

func (r *DogRepository) Insert(ctx context.Context, dog *domain.Dog) (*domain.Dog, error) {
	query := `
		INSERT INTO dogs (user_id, name, breed, dob, sex, avatar_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, name, breed, dob, sex, avatar_url, notes, created_at`

	row := r.pool.QueryRow(ctx, query,
		dog.UserID,
		dog.Name,
		dog.Breed,
		dog.DOB,
		dog.Sex,
		dog.AvatarURL,
		dog.Notes,
	)

	created, err := scanDog(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}
	return created, nil
}

func (r *DogRepository) FindByID(ctx context.Context, id int64) (*domain.Dog, error) {
	query := `
		SELECT id, user_id, name, breed, dob, sex, avatar_url, notes, created_at
		FROM dogs
		WHERE id = $1`

	return scanDog(r.pool.QueryRow(ctx, query, id))
}

func (r *DogRepository) List(ctx context.Context) ([]*domain.Dog, error) {
	query := `
		SELECT id, user_id, name, breed, dob, sex, avatar_url, notes, created_at
		FROM dogs
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	defer rows.Close()

	var dogs []*domain.Dog
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, d)
	}
	return dogs, rows.Err()
}

func (r *DogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDogNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (*domain.Dog, error) {
	var d domain.Dog
	err := row.Scan(
		&d.ID, &d.UserID, &d.Name, &d.Breed, &d.DOB,
		&d.Sex, &d.AvatarURL, &d.Notes, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDogNotFound
		}
		return nil, fmt.Errorf("scan dog: %w", err)
	}
	return &d, nil
}
