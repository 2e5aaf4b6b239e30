package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Discord Calendar Bot specifics
	Discord DiscordConfig
	Gateway GatewayConfig

	// Interactions endpoint hardening
	Security SecurityConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DiscordConfig carries the bot credential and interaction endpoint identity.
type DiscordConfig struct {
	BotToken      string
	ApplicationID string
	PublicKey     string // Ed25519 public key (hex) for interaction signature checks
	GuildID       string // when set, slash commands are registered guild-scoped
	ChannelID     string // progress report broadcast channel (optional)
}

// GatewayConfig points at the remote scheduling backend (Google Apps Script web app).
type GatewayConfig struct {
	EndpointURL string
	APIKey      string
}

type SecurityConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Discord
	cfg.Discord.BotToken = viper.GetString("discord.bot_token")
	cfg.Discord.ApplicationID = viper.GetString("discord.application_id")
	cfg.Discord.PublicKey = viper.GetString("discord.public_key")
	cfg.Discord.GuildID = viper.GetString("discord.guild_id")
	cfg.Discord.ChannelID = viper.GetString("discord.channel_id")
	if token := viper.GetString("discord_token"); token != "" {
		cfg.Discord.BotToken = token
	}
	if appID := viper.GetString("discord_application_id"); appID != "" {
		cfg.Discord.ApplicationID = appID
	}
	if pubKey := viper.GetString("discord_public_key"); pubKey != "" {
		cfg.Discord.PublicKey = pubKey
	}
	if guild := viper.GetString("guild_id"); guild != "" {
		cfg.Discord.GuildID = guild
	}
	if channel := viper.GetString("channel_id"); channel != "" {
		cfg.Discord.ChannelID = channel
	}

	// Gateway
	cfg.Gateway.EndpointURL = viper.GetString("gateway.endpoint_url")
	cfg.Gateway.APIKey = viper.GetString("gateway.api_key")
	if endpoint := viper.GetString("gas_endpoint"); endpoint != "" {
		cfg.Gateway.EndpointURL = endpoint
	}
	if key := viper.GetString("api_key"); key != "" {
		cfg.Gateway.APIKey = key
	}

	// Security
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the fatal startup conditions: the bot cannot run without
// a bot credential, a gateway endpoint, and the gateway API key.
func (c *Config) validate() error {
	var missing []string
	if c.Discord.BotToken == "" {
		missing = append(missing, "discord.bot_token (DISCORD_TOKEN)")
	}
	if c.Gateway.EndpointURL == "" {
		missing = append(missing, "gateway.endpoint_url (GAS_ENDPOINT)")
	}
	if c.Gateway.APIKey == "" {
		missing = append(missing, "gateway.api_key (API_KEY)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)
	viper.SetDefault("security.rate_limit_per_min", 120)
}
