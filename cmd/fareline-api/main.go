// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fareline/internal/config"
	"fareline/internal/events"
	httptransport "fareline/internal/http"
	"fareline/internal/infra"
	"fareline/internal/logging"
	"fareline/internal/modules/landmark"
	"fareline/internal/modules/negotiation"
	"fareline/internal/modules/plan"
	"fareline/internal/modules/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage: Postgres when reachable, otherwise the in-memory stores so the
	// API still serves locally without infrastructure.
	var negotiationStore negotiation.Store
	directory := landmark.NewDirectory(landmark.Seed())
	if pool, err := infra.NewDB(ctx, cfg.DB.DSN()); err != nil {
		logger.Warn("postgres unavailable, using in-memory stores", "error", err)
		negotiationStore = negotiation.NewMemoryStore()
	} else {
		defer pool.Close()
		negotiationStore = negotiation.NewPostgresStore(pool)
		if rows, err := landmark.NewStore(pool).LoadAll(ctx); err != nil {
			logger.Warn("landmark load failed, using seed data", "error", err)
		} else if len(rows) > 0 {
			directory = landmark.NewDirectory(rows)
		}
	}

	var publisher negotiation.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kp.Close()
		publisher = kp
	}

	negotiationSvc := negotiation.NewService(negotiationStore, publisher, negotiation.Config{
		MinOfferRatio: cfg.Negotiation.MinOfferRatio,
		MaxOfferRatio: cfg.Negotiation.MaxOfferRatio,
	})

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	weatherSvc := weather.NewService(
		weather.NewOpenWeatherClient(cfg.Weather.APIKey),
		weather.NewRedisCache(redisClient, cfg.Weather.Freshness),
		cfg.Weather.Freshness,
	)

	var places *landmark.PlacesService
	if cfg.Maps.APIKey != "" {
		if p, err := landmark.NewPlacesService(cfg.Maps.APIKey); err != nil {
			logger.Warn("places service init failed", "error", err)
		} else {
			places = p
		}
	}

	planSvc := plan.NewService(plan.NewMemoryStore())

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Negotiation: negotiationSvc,
		Weather:     weatherSvc,
		Directory:   directory,
		Places:      places,
		Plans:       planSvc,
		Logger:      logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		logger.Info("fareline api listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
