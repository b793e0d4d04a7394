package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"carrental-backend/internal/cli"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Keep interactive output clean; warnings and errors still surface.
	logger.Initialize("warn", cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime())

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	console := cli.NewConsole(
		service.NewVehicleService(store.VehicleRepository, store.RentalRepository),
		service.NewCustomerService(store.CustomerRepository, store.RentalRepository),
		service.NewRentalService(store.RentalRepository, store.VehicleRepository, store.CustomerRepository),
		service.NewPromoService(store.PromoRepository, store.RentalRepository),
		service.NewLoyaltyService(store.LoyaltyRepository, store.CustomerRepository),
		service.NewBranchService(store.BranchRepository),
		service.NewAuthService(store.UserRepository, tokenManager),
		cfg.Server.RequestTimeout(),
	)

	if err := console.Run(context.Background()); err != nil {
		log.Fatalf("Console error: %v", err)
	}
}
