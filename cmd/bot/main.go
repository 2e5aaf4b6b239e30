package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"discord-calendar-bot/config"
	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/httpserver"
	"discord-calendar-bot/internal/scheduler"
	discordDelivery "discord-calendar-bot/internal/task/delivery/discord"
	"discord-calendar-bot/internal/task/usecase"
	"discord-calendar-bot/pkg/discord"
	"discord-calendar-bot/pkg/gcallink"
	"discord-calendar-bot/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Discord Calendar Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Gateway endpoint: %s", cfg.Gateway.EndpointURL)

	// 3. Discord client
	bot := discord.NewClient(cfg.Discord.BotToken)

	// Slash command registration: best-effort, the bot still answers
	// previously registered commands when Discord rejects the overwrite.
	if cfg.Discord.ApplicationID != "" {
		if regErr := bot.BulkOverwriteCommands(ctx, cfg.Discord.ApplicationID, cfg.Discord.GuildID, discordDelivery.Commands()); regErr != nil {
			logger.Warnf(ctx, "Failed to register slash commands: %v", regErr)
		} else {
			logger.Info(ctx, "✅ Slash commands registered")
		}
	} else {
		logger.Warn(ctx, "DISCORD_APPLICATION_ID missing, skipping slash command registration")
	}

	// 4. Gateway client + link generator
	gw := gateway.NewClient(logger, cfg.Gateway.EndpointURL, cfg.Gateway.APIKey)
	links := gcallink.New(logger)

	// 5. Task UseCase
	taskUC := usecase.New(logger, gw, links)

	// 6. Interactions delivery
	security, err := discordDelivery.NewSecurityValidator(cfg.Discord.PublicKey, cfg.Security.RateLimitPerMin)
	if err != nil {
		logger.Error(ctx, "Failed to initialize security validator: ", err)
		return
	}
	interactionHandler := discordDelivery.New(logger, taskUC, bot, security, cfg.Discord.ApplicationID)

	// 7. Scheduled progress reports
	reportScheduler := scheduler.New(logger, taskUC, bot, cfg.Discord.ChannelID)
	reportScheduler.Start()
	defer reportScheduler.Stop()
	if cfg.Discord.ChannelID == "" {
		logger.Warn(ctx, "CHANNEL_ID missing, scheduled progress reports disabled")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		InteractionHandler: interactionHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
