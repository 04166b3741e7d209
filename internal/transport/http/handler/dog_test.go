package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jquinonez7/DogTracker/internal/domain"
	"github.com/jquinonez7/DogTracker/internal/transport/http/handler"
	"github.com/jquinonez7/DogTracker/internal/usecase"
)

// fakeDogRepo backs a real DogUsecase; the handler takes the concrete type.
type fakeDogRepo struct {
	insert   func(ctx context.Context, dog *domain.Dog) (*domain.Dog, error)
	findByID func(ctx context.Context, id int64) (*domain.Dog, error)
	list     func(ctx context.Context) ([]*domain.Dog, error)
	delete   func(ctx context.Context, id int64) error
}

func (r *fakeDogRepo) Insert(ctx context.Context, dog *domain.Dog) (*domain.Dog, error) {
	return r.insert(ctx, dog)
}

func (r *fakeDogRepo) FindByID(ctx context.Context, id int64) (*domain.Dog, error) {
	return r.findByID(ctx, id)
}

func (r *fakeDogRepo) List(ctx context.Context) ([]*domain.Dog, error) {
	return r.list(ctx)
}

func (r *fakeDogRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func newDogEngine(repo *fakeDogRepo) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewDogHandler(usecase.NewDogUsecase(repo), logger)

	r := gin.New()
	r.GET("/dogs", h.List)
	r.POST("/dogs", h.Create)
	r.GET("/dogs/:id", h.GetByID)
	r.DELETE("/dogs/:id", h.Delete)
	return r
}

func TestCreateDog_Success_Returns201(t *testing.T) {
	repo := &fakeDogRepo{
		insert: func(_ context.Context, dog *domain.Dog) (*domain.Dog, error) {
			created := *dog
			created.ID = 5
			return &created, nil
		},
	}

	w := postJSON(newDogEngine(repo), "/dogs",
		`{"user_id":1,"name":"Rex","breed":"corgi","sex":"M"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		ID     int64  `json:"id"`
		UserID int64  `json:"user_id"`
		Name   string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != 5 || resp.UserID != 1 || resp.Name != "Rex" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateDog_MissingName_Returns400(t *testing.T) {
	w := postJSON(newDogEngine(&fakeDogRepo{}), "/dogs", `{"user_id":1}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateDog_UnknownOwner_Returns400(t *testing.T) {
	repo := &fakeDogRepo{
		insert: func(_ context.Context, _ *domain.Dog) (*domain.Dog, error) {
			return nil, domain.ErrOwnerNotFound
		},
	}

	w := postJSON(newDogEngine(repo), "/dogs", `{"user_id":99,"name":"Rex"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Owner not found") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGetDog_Found_Returns200(t *testing.T) {
	repo := &fakeDogRepo{
		findByID: func(_ context.Context, id int64) (*domain.Dog, error) {
			return &domain.Dog{ID: id, UserID: 1, Name: "Rex"}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dogs/5", nil)
	newDogEngine(repo).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"name":"Rex"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGetDog_NotFound_Returns404(t *testing.T) {
	repo := &fakeDogRepo{
		findByID: func(_ context.Context, _ int64) (*domain.Dog, error) {
			return nil, domain.ErrDogNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dogs/42", nil)
	newDogEngine(repo).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetDog_NonNumericID_Returns404(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dogs/abc", nil)
	newDogEngine(&fakeDogRepo{}).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListDogs_Returns200WithArray(t *testing.T) {
	repo := &fakeDogRepo{
		list: func(_ context.Context) ([]*domain.Dog, error) {
			return []*domain.Dog{
				{ID: 1, UserID: 1, Name: "Rex"},
				{ID: 2, UserID: 1, Name: "Bella"},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dogs", nil)
	newDogEngine(repo).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("got %d dogs, want 2", len(resp))
	}
}

func TestListDogs_Empty_ReturnsEmptyArrayNotNull(t *testing.T) {
	repo := &fakeDogRepo{
		list: func(_ context.Context) ([]*domain.Dog, error) { return nil, nil },
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dogs", nil)
	newDogEngine(repo).ServeHTTP(w, req)

	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", w.Body.String())
	}
}

func TestDeleteDog_Success_Returns200(t *testing.T) {
	repo := &fakeDogRepo{
		delete: func(_ context.Context, _ int64) error { return nil },
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/dogs/5", nil)
	newDogEngine(repo).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Dog 5 successfully removed") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestDeleteDog_NotFound_Returns404(t *testing.T) {
	repo := &fakeDogRepo{
		delete: func(_ context.Context, _ int64) error { return domain.ErrDogNotFound },
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/dogs/42", nil)
	newDogEngine(repo).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
