package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	dbpostgres "godrsa/adapters/db/postgres"
	"godrsa/adapters/postgres"
	"godrsa/adapters/tabular"
	"godrsa/app"
	"godrsa/internal"
	"godrsa/internal/api"
	"godrsa/internal/config"
	"godrsa/internal/testkit"
	"godrsa/ports"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	var repo ports.AnalysisRepository
	if cfg.Database.URL != "" {
		db, err := dbpostgres.Connect(context.Background(), cfg.Database.URL)
		if err != nil {
			log.Fatalf("connecting to database: %v", err)
		}
		defer db.Close()
		if err := dbpostgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("preparing schema: %v", err)
		}
		repo = postgres.NewAnalysisRepository(db)
		logger.Info("analysis store: postgres")
	} else {
		repo = testkit.NewInMemoryAnalysisRepository()
		logger.Warn("DATABASE_URL not set, storing analyses in memory")
	}

	service := app.NewApproximationService(tabular.NewDataReader(), repo, logger)
	server := api.NewServer(service, logger)
	if err := server.ListenAndServe(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
