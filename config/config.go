package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/oopsididitagain335/futurecommon/intake"
)

// Config is the top-level structure of config.yaml. Every key can be
// overridden from the environment (e.g. DISCORD_TOKEN, SERVER_ADDR).
type Config struct {
	Discord Discord `mapstructure:"discord"`
	Server  Server  `mapstructure:"server"`
	Intake  Intake  `mapstructure:"intake"`
	Log     Log     `mapstructure:"log"`
}

type Discord struct {
	Token           string   `mapstructure:"token"`
	ReviewChannelID string   `mapstructure:"review_channel_id"`
	GuildIDs        []string `mapstructure:"guild_ids"`
}

type Server struct {
	Addr      string    `mapstructure:"addr"`
	StaticDir string    `mapstructure:"static_dir"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type Intake struct {
	ReferenceDate string `mapstructure:"reference_date"`
	MinAge        int    `mapstructure:"min_age"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load() (*Config, error) {
	// Optional; real deployments set env vars directly.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":3000")
	viper.SetDefault("server.static_dir", "web/static")
	viper.SetDefault("server.rate_limit.rps", 2.0)
	viper.SetDefault("server.rate_limit.burst", 5)
	viper.SetDefault("intake.reference_date", "2025-08-13")
	viper.SetDefault("intake.min_age", 13)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Discord.Token == "" {
		return fmt.Errorf("discord.token is required")
	}
	if cfg.Discord.ReviewChannelID == "" {
		return fmt.Errorf("discord.review_channel_id is required")
	}
	if _, err := time.Parse(intake.DateLayout, cfg.Intake.ReferenceDate); err != nil {
		return fmt.Errorf("intake.reference_date: %w", err)
	}
	if cfg.Intake.MinAge <= 0 {
		return fmt.Errorf("intake.min_age must be positive")
	}
	return nil
}

// Policy builds the eligibility policy from the validated config.
func (c *Config) Policy() intake.Policy {
	ref, _ := time.Parse(intake.DateLayout, c.Intake.ReferenceDate)
	return intake.Policy{Reference: ref, MinAge: c.Intake.MinAge}
}
