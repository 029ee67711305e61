package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers commands for one guild only, for development
	GuildID string `env:"GUILD_ID"`

	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"0"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	LavalinkName     string `env:"LAVALINK_NAME" envDefault:"main"`
	LavalinkAddress  string `env:"LAVALINK_ADDRESS" envDefault:"localhost:2333"`
	LavalinkPassword string `env:"LAVALINK_PASSWORD" envDefault:"youshallnotpass"`
	LavalinkSecure   bool   `env:"LAVALINK_SECURE" envDefault:"false"`

	DownloadDir      string        `env:"DOWNLOAD_DIR" envDefault:"downloads"`
	DownloadMaxBytes int64         `env:"DOWNLOAD_MAX_BYTES" envDefault:"8388608"`
	DownloadTokenTTL time.Duration `env:"DOWNLOAD_TOKEN_TTL" envDefault:"5m"`
	YTDLPProxy       string        `env:"YTDLP_PROXY"`

	PlayRatePerMinute int `env:"PLAY_RATE_PER_MINUTE" envDefault:"6"`
	PlayBurst         int `env:"PLAY_BURST" envDefault:"3"`

	ReportURL string `env:"REPORT_URL" envDefault:"https://discord.gg/sora-support"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

// Load reads an optional .env file and then parses the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// PlayEvery is the refill interval of the per-user play limiter; zero disables it
func (c *Config) PlayEvery() time.Duration {
	if c.PlayRatePerMinute <= 0 {
		return 0
	}
	return time.Minute / time.Duration(c.PlayRatePerMinute)
}
