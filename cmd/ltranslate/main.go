package main

import (
	"fmt"
	"os"

	"ltranslate/internal/bootstrap"
	"ltranslate/internal/config"
	"ltranslate/internal/service"
	"ltranslate/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Ltranslate")

	a := app.NewWithID("com.ltranslate.app")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		fatal(a, err, logger)
	}

	fs := afero.NewOsFs()

	table, err := bootstrap.LoadVocabulary(cfg, fs, logger)
	if err != nil {
		logger.Error("Failed to load vocabulary", zap.Error(err))
		fatal(a, err, logger)
	}

	cards := service.NewCardService(table, logger)
	session := service.NewSession(nil)

	ui.NewUI(a, cards, session, fs, cfg.BackgroundImage, logger).Run()

	logger.Info("Ltranslate stopped")
}

// fatal shows err in a blocking dialog and exits with status 1
func fatal(a fyne.App, err error, logger *zap.Logger) {
	ui.ShowFatal(a, err)
	a.Run()
	logger.Sync()
	os.Exit(1)
}
