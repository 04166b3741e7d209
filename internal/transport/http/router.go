package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/jquinonez7/DogTracker/internal/transport/http/handler"
	"github.com/jquinonez7/DogTracker/internal/transport/http/middleware"
	"github.com/jquinonez7/DogTracker/internal/usecase"
)

func NewRouter(
	logger *slog.Logger,
	authUsecase *usecase.AuthUsecase,
	authHandler *handler.AuthHandler,
	dogHandler *handler.DogHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Every dog route requires a valid bearer token.
	dogs := r.Group("/dogs", middleware.Auth(authUsecase, logger))
	dogs.GET("", dogHandler.List)
	dogs.POST("", dogHandler.Create)
	dogs.GET("/:id", dogHandler.GetByID)
	dogs.DELETE("/:id", dogHandler.Delete)

	return r
}
