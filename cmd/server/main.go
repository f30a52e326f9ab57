package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/twmb/franz-go/pkg/kgo"

	applicantstore "kleingarten/internal/applicant/store"
	"kleingarten/internal/audit"
	districtstore "kleingarten/internal/district/store"
	jwttoken "kleingarten/internal/jwt_token"
	"kleingarten/internal/platform/config"
	"kleingarten/internal/platform/httpserver"
	"kleingarten/internal/platform/logger"
	"kleingarten/internal/platform/metrics"
	platformredis "kleingarten/internal/platform/redis"
	"kleingarten/internal/plot"
	plotmetrics "kleingarten/internal/plot/metrics"
	"kleingarten/internal/plot/service"
	plotstore "kleingarten/internal/plot/store/plot"
	"kleingarten/internal/plot/store/statscache"
	httptransport "kleingarten/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]httptransport.HealthCheck{}

	// Persistence: postgres when a DSN is configured, in-memory otherwise.
	// The in-memory mode exists for local development and loses state on
	// restart.
	var (
		plots      service.PlotStore
		districts  service.DistrictStore
		applicants service.ApplicantRegistry
		auditStore audit.Store
		opts       []service.Option
	)

	var db *sql.DB
	if cfg.PostgresDSN != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("opening postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres unreachable", "error", err)
			os.Exit(1)
		}

		plots = plotstore.NewPostgres(db)
		districts = districtstore.NewPostgres(db)
		applicants = applicantstore.NewPostgres(db)
		auditStore = audit.NewPostgres(db)
		opts = append(opts, service.WithTx(newPlotPostgresTx(db)))
		checks["postgres"] = db.PingContext
	} else {
		log.Warn("no postgres DSN configured, using in-memory stores")
		plots = plotstore.NewInMemory()
		districts = districtstore.NewInMemory()
		applicants = applicantstore.NewInMemory()
		auditStore = audit.NewInMemoryStore()
	}

	publisher := audit.NewPublisher(auditStore)

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		opts = append(opts, service.WithStatsCache(statscache.New(redisClient.Client, cfg.StatsCacheTTL)))
		checks["redis"] = redisClient.Health
	}

	opts = append(opts,
		service.WithLogger(log),
		service.WithMetrics(plotmetrics.New()),
		service.WithAuditPublisher(publisher),
	)

	svc, err := plot.NewService(plots, districts, applicants, opts...)
	if err != nil {
		log.Error("building plot service", "error", err)
		os.Exit(1)
	}

	// The outbox relay needs durable outbox rows, so it only runs against
	// postgres.
	if len(cfg.Kafka.Brokers) > 0 {
		if db == nil {
			log.Warn("kafka brokers configured but no postgres outbox, audit relay disabled")
		} else {
			kafkaClient, err := kgo.NewClient(kgo.SeedBrokers(cfg.Kafka.Brokers...))
			if err != nil {
				log.Error("connecting to kafka", "error", err)
				os.Exit(1)
			}
			defer kafkaClient.Close()

			relay := audit.NewRelay(audit.NewPostgres(db), kafkaClient, cfg.Kafka.AuditTopic, log)
			go func() {
				if err := relay.Run(ctx); err != nil && ctx.Err() == nil {
					log.Error("audit relay stopped", "error", err)
				}
			}()
		}
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "kleingarten", "kleingarten-api")
	handler := plot.NewHandler(svc, publisher, log, metrics.New(), jwtService)
	router := httptransport.NewRouter(handler, checks)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting kleingarten server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
