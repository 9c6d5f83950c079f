package main

import (
	"log"
	"net/http"

	"copulagof/adapters/evaluator"
	stats "copulagof/adapters/stats/gof"
	"copulagof/internal"
	"copulagof/internal/api"
	"copulagof/internal/config"
	"copulagof/internal/testkit"
)

// Standalone API server wired with the synthetic demo registry; the full
// entrypoint with persistence lives at the repository root.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	params, err := cfg.Params()
	if err != nil {
		log.Fatalf("invalid scoring configuration: %v", err)
	}

	registry := testkit.NewSyntheticRegistry(params.Families(), 42)
	engine := stats.NewEngine(evaluator.NewClampedEvaluator(registry), logger)

	server := api.NewServer(engine, nil, cfg.Scoring, logger)

	addr := ":" + cfg.Server.Port
	logger.Info("API server listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatal("Server failed:", err)
	}
}
