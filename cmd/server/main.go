package main

import (
	"fmt"
	"os"

	"gearshare/internal/bookingservice"
	"gearshare/internal/config"
	"gearshare/internal/itemservice"
	"gearshare/internal/repository"
	"gearshare/internal/requestservice"
	"gearshare/internal/server"
	"gearshare/internal/userservice"
)

func main() {
	cfg := config.LoadServer()

	repo, err := buildRepo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}

	bookingSvc := bookingservice.NewBookingService(repo)
	itemSvc := itemservice.NewItemService(repo)
	userSvc := userservice.NewUserService(repo)
	requestSvc := requestservice.NewRequestService(repo)

	router := server.SetupRouter(bookingSvc, itemSvc, userSvc, requestSvc)

	addr := ":" + cfg.Port
	fmt.Printf("Starting sharing server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo picks gorm-backed storage when a database is configured and
// falls back to the in-memory store otherwise.
func buildRepo(cfg config.Server) (repository.SharingDB, error) {
	if cfg.DatabaseURL == "" {
		return repository.NewMemoryRepo(), nil
	}
	db, err := repository.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return repository.NewGormRepo(db)
}
