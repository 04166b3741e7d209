package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jquinonez7/DogTracker/config"
	"github.com/jquinonez7/DogTracker/internal/auth"
	"github.com/jquinonez7/DogTracker/internal/email"
	"github.com/jquinonez7/DogTracker/internal/health"
	"github.com/jquinonez7/DogTracker/internal/infrastructure/postgres"
	ctxlog "github.com/jquinonez7/DogTracker/internal/log"
	"github.com/jquinonez7/DogTracker/internal/metrics"
	"github.com/jquinonez7/DogTracker/internal/stats"
	httptransport "github.com/jquinonez7/DogTracker/internal/transport/http"
	"github.com/jquinonez7/DogTracker/internal/transport/http/handler"
	"github.com/jquinonez7/DogTracker/internal/usecase"
)

func main() {
	// Local dev convenience; in staging/production the environment is real.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
		stop()
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	dogRepo := postgres.NewDogRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	key := []byte(cfg.JWTSecret)
	authUsecase := usecase.NewAuthUsecase(
		userRepo,
		auth.NewHasher(),
		auth.NewIssuer(key, cfg.TokenTTL()),
		auth.NewVerifier(key),
		emailSender,
		logger,
	)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	dogUsecase := usecase.NewDogUsecase(dogRepo)
	dogHandler := handler.NewDogHandler(dogUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	collector, err := stats.NewCollector(statsRepo, logger, cfg.StatsCron)
	if err != nil {
		stop()
		log.Fatalf("stats: %v", err)
	}
	go collector.Start(ctx)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authUsecase, authHandler, dogHandler),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
