package main

import (
	"log"
	"os"

	"github.com/lia-dsgnr/calo-tracker/config"
	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/routes"
	"github.com/lia-dsgnr/calo-tracker/services"
)

func main() {
	config.MustInit()

	if err := config.SeedSystemFoods(config.DB); err != nil {
		log.Fatalf("Failed to seed food catalog: %v", err)
	}
	if _, err := config.EnsureDefaultUser(config.DB); err != nil {
		log.Fatalf("Failed to create default user: %v", err)
	}

	// Retention is housekeeping; a failure must not block startup.
	if pruned, err := services.NewLogService(config.DB).PruneOldLogs(models.LogRetentionDays); err != nil {
		log.Printf("Failed to prune old logs: %v", err)
	} else if pruned > 0 {
		log.Printf("Pruned %d logs older than %d days", pruned, models.LogRetentionDays)
	}

	addr := os.Getenv("CALO_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := routes.SetupRouter(config.DB)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
