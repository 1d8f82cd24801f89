package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/DecisionSpinner_Go/internal/discord"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultWebhookPort = "8082"
	DefaultAPIURL      = "http://localhost:8080"
	ServiceName        = "decision-spinner-discord"
)

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	webhookPort := os.Getenv("DISCORD_WEBHOOK_PORT")
	if webhookPort == "" {
		webhookPort = DefaultWebhookPort
	}

	httpServer := discord.NewHTTPServer(webhookPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	if cfg.NotifyChannelID != "" {
		notifier := discord.NewSSENotifier(bot)
		sseClient := discord.NewSSEClient(cfg.APIURL, cfg.APIKey, notifier.EventTypes())
		notifier.RegisterHandlers(sseClient)
		sseClient.Start(context.Background())
		defer sseClient.Stop()
	}

	registerCommands(bot, getCommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = logger.LogLevelInfo
	}
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = logger.LogFormatText
	}
	logger.InitLogger(logger.NewConfig(level, format, ServiceName, logger.DefaultVersion, os.Getenv("ENVIRONMENT"), false))
}

// loadConfig reads the bot configuration from the environment
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	notifyChannelID := os.Getenv("DISCORD_NOTIFICATION_CHANNEL_ID")
	if notifyChannelID != "" {
		slog.Info("Spin notifications enabled", "channel_id", notifyChannelID)
	}

	return discord.Config{
		Token:           token,
		AppID:           appID,
		APIURL:          apiURL,
		APIKey:          apiKey,
		NotifyChannelID: notifyChannelID,
	}, nil
}

func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.SpinCommand,
		discord.OptionsCommand,
		discord.HistoryCommand,
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
