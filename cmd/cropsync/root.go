package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/villageboy09/kiosk/config"
	"github.com/villageboy09/kiosk/database"
	"github.com/villageboy09/kiosk/pkg/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cropsync",
	Short: "Crop advisory API for the CropSync farmer kiosk",
	Long: "cropsync serves the guided crop -> stage -> problem -> advisory -> remedy\n" +
		"flow used by the mobile app, and imports the reference content behind it.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.Version = version
}

// bootstrap loads config, builds the logger and opens the database,
// migrating it when DB_AUTO_MIGRATE is on.
func bootstrap() (config.AppConfig, *logger.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("logger: %w", err)
	}
	db, err := database.Open(cfg.DB, log)
	if err != nil {
		return cfg, log, nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return cfg, log, nil, err
		}
	}
	return cfg, log, db, nil
}
