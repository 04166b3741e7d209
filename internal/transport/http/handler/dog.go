package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jquinonez7/DogTracker/internal/domain"
	"github.com/jquinonez7/DogTracker/internal/usecase"
)

type DogHandler struct {
	dogUsecase *usecase.DogUsecase
	logger     *slog.Logger
}

func NewDogHandler(dogUsecase *usecase.DogUsecase, logger *slog.Logger) *DogHandler {
	return &DogHandler{dogUsecase: dogUsecase, logger: logger.With("component", "dog_handler")}
}

type createDogRequest struct {
	UserID    int64      `json:"user_id"    binding:"required"`
	Name      string     `json:"name"       binding:"required"`
	Breed     *string    `json:"breed"`
	DOB       *time.Time `json:"dob"`
	Sex       *string    `json:"sex"        binding:"omitempty,oneof=M F Other"`
	AvatarURL *string    `json:"avatar_url" binding:"omitempty,url"`
	Notes     *string    `json:"notes"`
}

type dogResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name"`
	Breed     *string    `json:"breed,omitempty"`
	DOB       *time.Time `json:"dob,omitempty"`
	Sex       *string    `json:"sex,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toDogResponse(d *domain.Dog) dogResponse {
	return dogResponse{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		Breed:     d.Breed,
		DOB:       d.DOB,
		Sex:       d.Sex,
		AvatarURL: d.AvatarURL,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
}

func (h *DogHandler) Create(c *gin.Context) {
	var req createDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dog, err := h.dogUsecase.Create(c.Request.Context(), usecase.CreateDogInput{
		UserID:    req.UserID,
		Name:      req.Name,
		Breed:     req.Breed,
		DOB:       req.DOB,
		Sex:       req.Sex,
		AvatarURL: req.AvatarURL,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errOwnerNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create dog", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, toDogResponse(dog))
}

func (h *DogHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errDogNotFound})
		return
	}

	dog, err := h.dogUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errDogNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get dog", "dog_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toDogResponse(dog))
}

func (h *DogHandler) List(c *gin.Context) {
	dogs, err := h.dogUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list dogs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]dogResponse, 0, len(dogs))
	for _, d := range dogs {
		out = append(out, toDogResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *DogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errDogNotFound})
		return
	}

	if err := h.dogUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrDogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errDogNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete dog", "dog_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Dog %d successfully removed", id)})
}
