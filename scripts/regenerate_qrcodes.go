// Manual QR regeneration script.
//
// Per-department QR images embed the configured public base URL, so
// after the URL changes every printed poster needs a fresh image. The
// server regenerates only the central QR at startup; this script
// regenerates the full set.
//
// Usage: go run scripts/regenerate_qrcodes.go

package main

import (
	"context"
	"log"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/pkg/database"
	"satisfaction_survey_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		log.Fatalf("storage initialization failed: %v", err)
	}

	deptRepo := repository.NewDepartmentRepository(db)
	deptService := service.NewDepartmentService(deptRepo, storage, cfg)

	departments, err := deptService.List()
	if err != nil {
		log.Fatalf("cannot list departments: %v", err)
	}

	ctx := context.Background()
	for i := range departments {
		dept := &departments[i]
		if err := deptService.GenerateQR(ctx, dept); err != nil {
			log.Printf("FAILED %s: %v", dept.Code, err)
			continue
		}
		log.Printf("regenerated %s -> %s", dept.Code, dept.QRCode)
	}

	if err := deptService.EnsureCentralQR(ctx); err != nil {
		log.Fatalf("central QR failed: %v", err)
	}
	log.Printf("done: %d departments", len(departments))
}
