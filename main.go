// @title Satisfaction Survey API
// @version 1.0
// @description ระบบประเมินความพึงพอใจการให้บริการของหน่วยงานภายในมหาวิทยาลัย

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"satisfaction_survey_backend/internal/app"
	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/pkg/configwatcher"
	"satisfaction_survey_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "run database migration before serving")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("migration finished, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(updated *config.Config) {
		logger.Log.Info("configuration reloaded")
	})

	application.Run()
}
