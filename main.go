package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"copulagof/adapters/evaluator"
	"copulagof/adapters/postgres"
	stats "copulagof/adapters/stats/gof"
	"copulagof/internal"
	"copulagof/internal/api"
	"copulagof/internal/config"
	"copulagof/internal/errors"
	"copulagof/internal/migration"
	"copulagof/internal/testkit"
	"copulagof/ports"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	// Persistence is optional: without DATABASE_URL the service still
	// scores, it just cannot store or replay runs
	var ledger ports.ScoreLedger
	if cfg.Database.URL != "" {
		db, err := initDatabase(cfg)
		if err != nil {
			log.Fatalf("initializing database: %v", err)
		}
		defer db.Close()
		ledger = postgres.NewRunRepository(db)
		logger.Info("run persistence enabled")
	} else {
		logger.Warn("DATABASE_URL not set; runs will not be persisted")
	}

	params, err := cfg.Params()
	if err != nil {
		log.Fatalf("invalid scoring configuration: %v", err)
	}

	// The synthetic registry stands in for an externally supplied density
	// catalog; swap in a real ports.FamilyRegistry to score real models
	registry := testkit.NewSyntheticRegistry(params.Families(), 42)
	engine := stats.NewEngine(evaluator.NewClampedEvaluator(registry), logger)

	server := api.NewServer(engine, ledger, cfg.Scoring, logger)

	addr := ":" + cfg.Server.Port
	logger.Info("copulagof listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatal("Server failed:", err)
	}
}
