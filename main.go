package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/barracksiot/event-dispatcher/internal/api"
	"github.com/barracksiot/event-dispatcher/internal/config"
	"github.com/barracksiot/event-dispatcher/internal/db"
	"github.com/barracksiot/event-dispatcher/internal/dispatch"
	"github.com/barracksiot/event-dispatcher/internal/exchange"
	k "github.com/barracksiot/event-dispatcher/internal/kafka"
	"github.com/barracksiot/event-dispatcher/internal/metrics"
	"github.com/barracksiot/event-dispatcher/internal/model"
	"github.com/barracksiot/event-dispatcher/internal/processors/changes"
	"github.com/barracksiot/event-dispatcher/internal/processors/events"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type consumer interface {
	Run(ctx context.Context)
	Close(ctx context.Context)
}

func main() {
	cfg, err := config.Load(".", "/app")
	if err != nil {
		panic(err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.Postgres.ConnString,
		MigrationsPath: cfg.Postgres.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	router, err := exchange.New(exchange.Config{
		Web:             cfg.Kafka.Destinations.Web,
		GoogleAnalytics: cfg.Kafka.Destinations.GoogleAnalytics,
		BigQuery:        cfg.Kafka.Destinations.BigQuery,
	})
	if err != nil {
		panic(err)
	}

	publisher := k.NewPublisher(k.PublisherConfig{
		Writer:  k.NewWriter(cfg.Kafka.Brokers),
		Timeout: cfg.Kafka.PublishTimeout,
	})
	defer publisher.Close()

	recorder := metrics.New()
	dispatcher := dispatch.New(dispatch.Config{
		Store:                       store,
		Router:                      router,
		Publisher:                   publisher,
		Recorder:                    recorder,
		PageSize:                    cfg.Dispatch.PageSize,
		DeviceEventRoutingKey:       cfg.Dispatch.DeviceEventRoutingKey,
		DeviceChangeEventRoutingKey: cfg.Dispatch.DeviceChangeEventRoutingKey,
	})

	consumers, err := newConsumers(cfg, dispatcher, recorder)
	if err != nil {
		panic(err)
	}

	wg := sync.WaitGroup{}
	for _, c := range consumers {
		wg.Go(func() {
			c.Run(ctx)
		})
	}

	hooks := api.New(api.Config{
		Registry: dispatcher,
		Users: api.NewAuthorizationClient(api.AuthorizationConfig{
			BaseURL: cfg.Auth.BaseURL,
			Timeout: cfg.Auth.Timeout,
		}),
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle(cfg.HTTP.MetricsPath, recorder.Handler())
	r.Mount("/hooks", hooks.Routes())

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: r}
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	go func() {
		<-sigs
		cancel()
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "HTTP server shutdown error", "error", err)
	}

	wg.Wait()
	for _, c := range consumers {
		c.Close(shutdownCtx)
	}
	slog.InfoContext(shutdownCtx, "Service stopped")
}

func newConsumers(cfg config.Config, dispatcher *dispatch.Dispatcher, recorder *metrics.Recorder) ([]consumer, error) {
	topics := cfg.Kafka.Topics
	var out []consumer

	for kind, topic := range map[model.EventKind]string{
		model.EventPing:       topics.Ping,
		model.EventEnrollment: topics.Enrollment,
	} {
		c, err := events.New(events.Config{
			Brokers:         cfg.Kafka.Brokers,
			ConsumerGroupID: cfg.Kafka.ConsumerGroupID,
			ConsumerTopic:   topic,
			Kind:            kind,
			Dispatcher:      dispatcher,
			Recorder:        recorder,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	for kind, topic := range map[model.EventKind]string{
		model.EventDeviceDataChange:    topics.DeviceDataChange,
		model.EventDevicePackageChange: topics.DevicePackageChange,
	} {
		c, err := changes.New(changes.Config{
			Brokers:         cfg.Kafka.Brokers,
			ConsumerGroupID: cfg.Kafka.ConsumerGroupID,
			ConsumerTopic:   topic,
			Kind:            kind,
			Dispatcher:      dispatcher,
			Recorder:        recorder,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
