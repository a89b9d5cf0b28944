package main

import (
	"fmt"

	"github.com/MKhiriev/osphor/internal/config"
	"github.com/MKhiriev/osphor/internal/handler"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/metrics"
	"github.com/MKhiriev/osphor/internal/schema"
	"github.com/MKhiriev/osphor/internal/server"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/internal/workers"
	"github.com/MKhiriev/osphor/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("osphor-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db", cfg.Storage.DBPath()).
		Str("schema", cfg.Storage.SchemaPath()).
		Int("hash_workers", cfg.Hashing.Workers).
		Msg("received configs")

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the server and blocks until it stops. Everything it opens is
// released before it returns.
func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.Open(cfg.Storage.DBPath(), log,
		store.WithWriteRetry(cfg.Storage.WriteAttempts, cfg.Storage.WriteBackoff),
		store.WithOpenTimeout(cfg.Storage.OpenTimeout),
	)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing store")
		}
	}()

	var loaderOpts []schema.Option
	if cfg.Storage.CacheSchema {
		loaderOpts = append(loaderOpts, schema.WithCache())
	}
	loader := schema.NewFileLoader(cfg.Storage.SchemaPath(), loaderOpts...)

	pool := workers.NewPool(cfg.Hashing.Workers)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(store.NewStorages(db, log), loader, pool, *cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterMetrics(registry)

	handlers, err := handler.NewHandlers(services, registry, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(pool), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
