// Command server runs the praxis HTTP service: identifier validation for
// intake forms, patient registration, and the admin audit trail.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	audithandler "praxis/internal/audit/handler"
	auditservice "praxis/internal/audit/service"
	auditstore "praxis/internal/audit/store"
	intakehandler "praxis/internal/intake/handler"
	intakemetrics "praxis/internal/intake/metrics"
	intakeservice "praxis/internal/intake/service"
	patienthandler "praxis/internal/patient/handler"
	patientmetrics "praxis/internal/patient/metrics"
	patientservice "praxis/internal/patient/service"
	patientstore "praxis/internal/patient/store"
	"praxis/internal/platform/config"
	"praxis/internal/platform/httpserver"
	"praxis/internal/platform/logger"
	platformmetrics "praxis/internal/platform/metrics"
	"praxis/internal/platform/middleware"
	"praxis/internal/platform/postgres"
	platformredis "praxis/internal/platform/redis"
	ratelimitmw "praxis/internal/ratelimit/middleware"
	"praxis/internal/ratelimit/store/bucket"
	"praxis/pkg/cnp"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	// Storage. Empty URLs fall back to in-memory implementations so the
	// service runs with zero infrastructure in development.
	pool, err := postgres.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}

	var patientStore patientstore.Store
	var auditStore auditstore.Store
	if pool != nil {
		log.Info("using postgres storage")
		patientStore = patientstore.NewPostgresStore(pool.Pool)
		db, err := auditstore.OpenPostgres(cfg.PostgresURL)
		if err != nil {
			log.Error("audit db open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		auditStore = auditstore.NewPostgresStore(db)
	} else {
		log.Info("no postgres URL configured, using in-memory storage")
		patientStore = patientstore.NewInMemoryStore()
		auditStore = auditstore.NewInMemoryStore()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	var bucketStore ratelimitmw.BucketStore
	if redisClient != nil {
		log.Info("using redis rate limit store")
		bucketStore = bucket.NewRedisBucketStore(redisClient.Client)
		defer redisClient.Close()
	} else {
		bucketStore = bucket.NewInMemoryBucketStore()
	}

	// Engine. The analyzer policy comes from config; everything downstream
	// shares this one instance.
	analyzerOpts := []cnp.Option{cnp.WithCenturyPolicy(cfg.CenturyPolicy)}
	if !cfg.ChecksumEnabled {
		log.Warn("checksum verification disabled, accepting format-only identifiers")
		analyzerOpts = append(analyzerOpts, cnp.WithoutChecksum())
	}
	analyzer := cnp.NewAnalyzer(analyzerOpts...)

	// Services.
	audit := auditservice.New(auditStore, log)
	intake := intakeservice.New(analyzer, audit, log, intakemetrics.New())
	patients := patientservice.New(patientStore, analyzer, audit, log, patientmetrics.New())

	limiter := ratelimitmw.NewLimiter(bucketStore, log, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	platMetrics := platformmetrics.New()

	// Router.
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Latency(platMetrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", platformmetrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		intakehandler.New(intake, log).Register(r)
	})
	patienthandler.New(patients, log).Register(r)
	audithandler.New(audit, log, cfg.JWTSigningKey).Register(r)

	srv := httpserver.New(cfg.Addr, r)

	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		pool.Close()
	}
}
