package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ltranslate/internal/bootstrap"
	"ltranslate/internal/config"
	"ltranslate/internal/handler"
	"ltranslate/internal/middleware"
	"ltranslate/internal/service"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Ltranslate Bot")

	// Load configuration
	cfg, err := config.LoadBot()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("vocabulary_source", cfg.Vocabulary.Source),
	)

	// Load vocabulary
	table, err := bootstrap.LoadVocabulary(cfg, afero.NewOsFs(), logger)
	if err != nil {
		logger.Fatal("Failed to load vocabulary", zap.Error(err))
	}

	cards := service.NewCardService(table, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.AllowList(cfg.Bot.AllowedUsers, logger))

	// Initialize handler
	h := handler.NewHandler(bot, cards, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}
