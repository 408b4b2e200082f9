package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/eventrave/eventrave-backend/api/controllers"
	"github.com/eventrave/eventrave-backend/api/routes"
	"github.com/eventrave/eventrave-backend/internal/accounts"
	"github.com/eventrave/eventrave-backend/internal/tokens"
	"github.com/eventrave/eventrave-backend/pkg/config"
	"github.com/eventrave/eventrave-backend/pkg/db"
	"github.com/eventrave/eventrave-backend/pkg/logger"
	"github.com/eventrave/eventrave-backend/pkg/mailer"
	"github.com/eventrave/eventrave-backend/pkg/metrics"
	"github.com/eventrave/eventrave-backend/pkg/migrate"
	"github.com/eventrave/eventrave-backend/pkg/otp"
	"github.com/eventrave/eventrave-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis is the optional token cache; the API runs without it.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Info(context.Background(), "redis not configured, token cache disabled")
	}

	defer func() {
		closeErr := dbClient.Close()
		if redisClient != nil {
			closeErr = multierr.Append(closeErr, redisClient.Close())
		}
		if closeErr != nil {
			logg.Error(context.Background(), "error closing backends", closeErr)
		}
	}()

	notifier, err := mailer.NewSMTPNotifier(cfg.SMTP)
	if err != nil {
		logg.Error(context.Background(), "failed to create smtp notifier", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	accountMetrics := metrics.NewAccountMetrics(promRegistry)

	tokenCache := tokens.NewRedisCache(redisClient, logg)

	accountsService, err := accounts.NewService(accounts.ServiceParams{
		DB:                 dbClient,
		Notifier:           notifier,
		OTPGenerator:       otp.NewGenerator(cfg.OTP),
		TokenCache:         tokenCache,
		Metrics:            accountMetrics,
		PasswordConfig:     cfg.Password,
		RegistrationConfig: cfg.Registration,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create accounts service", err)
		os.Exit(1)
	}

	verifier := tokens.NewVerifier(tokens.NewRepository(dbClient.DB()), tokenCache)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	var cachePinger controllers.Pinger
	if redisClient != nil {
		cachePinger = redisClient
	}

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, cachePinger, accountsService, verifier, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
