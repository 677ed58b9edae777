package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all configuration from environment variables.
type Config struct {
	Token string `envconfig:"TELEGRAM_API_TOKEN" required:"true"`

	// History settings
	HistoryBackend string `envconfig:"HISTORY_BACKEND" default:"memory"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	HistoryLimit   int    `envconfig:"HISTORY_LIMIT" default:"10"` // Entries shown by /history
	HistoryCap     int    `envconfig:"HISTORY_CAP" default:"100"`  // Entries kept per chat in memory (0 = unbounded)

	// Shake settings
	ShakeWindow time.Duration `envconfig:"SHAKE_WINDOW" default:"500ms"`
	RedisURL    string        `envconfig:"REDIS_URL" default:""`

	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`
	RandomSeed  uint64 `envconfig:"RANDOM_SEED" default:"0"` // 0 = unseeded

	// Path to config.toml file
	ConfigFile string `envconfig:"CONFIG_FILE" default:"config.toml"`

	// Messages loaded from config.toml
	Messages Messages
}

// Messages holds user-facing texts loaded from config.toml.
type Messages struct {
	Welcome      string `toml:"welcome"`
	Help         string `toml:"help"`
	EmptyHistory string `toml:"empty_history"`
	Cleared      string `toml:"cleared"`
	ShakeTooSoon string `toml:"shake_too_soon"`
	ShareAsked   string `toml:"share_asked"`  // %[1]s question, %[2]s answer
	ShareShaken  string `toml:"share_shaken"` // %[1]s answer
}

// FileConfig represents the structure of config.toml.
type FileConfig struct {
	Messages Messages `toml:"messages"`
}

const defaultHelp = `Commands:
/ask <question> - ask the Magic 8-Ball
/shake - get an answer without a question
/history - your recent answers
/share - shareable text of your last answer
/clear - forget your history

Any other message is treated as a question.`

// DefaultMessages provides fallback texts if config.toml is not found.
var DefaultMessages = Messages{
	Welcome:      "Ask me a yes-or-no question, or /shake me.",
	Help:         defaultHelp,
	EmptyHistory: "No questions yet.",
	Cleared:      "History cleared.",
	ShakeTooSoon: "Easy there, the ball is still settling.",
	ShareAsked:   "I asked the Magic 8-Ball: \"%[1]s\"\nAnswer: %[2]s",
	ShareShaken:  "I shook the Magic 8-Ball and got: %[1]s",
}

// LoadEnv loads the configuration from environment variables. A .env file in
// the working directory is applied first if present.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// LoadFile loads messages from config.toml file.
func (c *Config) LoadFile() error {
	configPath := c.ConfigFile
	if !filepath.IsAbs(configPath) {
		// Try current directory first
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			// Try executable directory
			execPath, err := os.Executable()
			if err == nil {
				configPath = filepath.Join(filepath.Dir(execPath), c.ConfigFile)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		c.Messages = DefaultMessages
		return nil
	}

	var fileConfig FileConfig
	if _, err := toml.DecodeFile(configPath, &fileConfig); err != nil {
		return fmt.Errorf("failed to decode %s: %w", configPath, err)
	}

	c.Messages = fileConfig.Messages.withDefaults()
	return nil
}

func (m Messages) withDefaults() Messages {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&m.Welcome, DefaultMessages.Welcome)
	fill(&m.Help, DefaultMessages.Help)
	fill(&m.EmptyHistory, DefaultMessages.EmptyHistory)
	fill(&m.Cleared, DefaultMessages.Cleared)
	fill(&m.ShakeTooSoon, DefaultMessages.ShakeTooSoon)
	fill(&m.ShareAsked, DefaultMessages.ShareAsked)
	fill(&m.ShareShaken, DefaultMessages.ShareShaken)
	return m
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s history backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown HISTORY_BACKEND %q", c.HistoryBackend)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.HistoryCap < 0 {
		return fmt.Errorf("HISTORY_CAP must not be negative, got %d", c.HistoryCap)
	}
	if c.ShakeWindow < 0 {
		return fmt.Errorf("SHAKE_WINDOW must not be negative, got %s", c.ShakeWindow)
	}
	return nil
}

func NewConfig() (*Config, error) {
	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	if err := loadedCfg.LoadFile(); err != nil {
		return nil, err
	}

	if err := loadedCfg.Validate(); err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
