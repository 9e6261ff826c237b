package main

import (
	"fmt"
	"os"

	"gearshare/internal/config"
	"gearshare/internal/gateway"
)

func main() {
	cfg := config.LoadGateway()

	client := gateway.NewClient(cfg.ServerURL)
	router := gateway.SetupRouter(client)

	addr := ":" + cfg.Port
	fmt.Printf("Starting sharing gateway on %s (backend %s)...\n", addr, cfg.ServerURL)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start gateway: %v\n", err)
		os.Exit(1)
	}
}
