package main

import (
	"log"

	"github.com/scorecard-system/backend/internal/config"
	"github.com/scorecard-system/backend/internal/database"
	"github.com/scorecard-system/backend/internal/services"
)

// Collapses duplicated CCE mark groups and entries across all students.
// Safe to run repeatedly; a second pass finds nothing to merge.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	report, err := services.NewDedupService(db).Run()
	if err != nil {
		log.Fatal("Dedup sweep failed:", err)
	}

	log.Printf("Dedup completed: %d students scanned, %d updated, %d failures",
		report.StudentsScanned, report.StudentsUpdated, report.Failures)
}
