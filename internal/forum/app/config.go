package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Issuer         string `mapstructure:"FORUM_ISSUER"`    // Issuer claim for session tokens (default: forumhub)
	BootstrapToken string `mapstructure:"BOOTSTRAP_TOKEN"` // Optional: enables POST /v1/bootstrap

	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"` // sqlite or postgres (default: sqlite)
	DatabaseFile   string `mapstructure:"DATABASE_FILE"`   // SQLite file (default: forum.db)
	DatabaseURL    string `mapstructure:"DATABASE_URL"`    // Postgres DSN, required for the postgres driver
	RedisURL       string `mapstructure:"REDIS_URL"`       // Optional: empty keeps sessions in memory

	PepperFile     string        `mapstructure:"PEPPER_FILE"`      // Password pepper, created if missing (default: pepper)
	SigningKeyFile string        `mapstructure:"SIGNING_KEY_FILE"` // Ed25519 PEM, created if missing (default: signing.pem)
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`      // Session lifetime (default: 24h)

	Env                 string        `mapstructure:"ENV"`                   // dev, staging, prod (default: dev)
	LogLevel            string        `mapstructure:"LOG_LEVEL"`             // debug, info, warn, error (default: info)
	LogFormat           string        `mapstructure:"LOG_FORMAT"`            // json or text (default: json)
	Port                int           `mapstructure:"PORT"`                  // HTTP port (default: 8080)
	ShutdownGracePeriod time.Duration `mapstructure:"SHUTDOWN_GRACE_PERIOD"` // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads defaults, an optional forum.yml and the environment, in
// increasing order of precedence. FORUM_CONFIG points at an explicit config
// file.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("FORUM_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	} else {
		v.SetConfigName("forum")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Every key gets a default, even an empty one, so AutomaticEnv can see it
// during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("FORUM_CONFIG", "")
	v.SetDefault("FORUM_ISSUER", "forumhub")
	v.SetDefault("BOOTSTRAP_TOKEN", "")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_FILE", "forum.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("PEPPER_FILE", "pepper")
	v.SetDefault("SIGNING_KEY_FILE", "signing.pem")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second)
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d is out of range", c.Port)
	}
	if c.Issuer == "" {
		return errors.New("FORUM_ISSUER is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.ShutdownGracePeriod <= 0 {
		return errors.New("SHUTDOWN_GRACE_PERIOD must be positive")
	}
	if c.PepperFile == "" || c.SigningKeyFile == "" {
		return errors.New("PEPPER_FILE and SIGNING_KEY_FILE are required")
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.Env == "prod" && c.BootstrapToken != "" && len(c.BootstrapToken) < 16 {
		return errors.New("BOOTSTRAP_TOKEN must be at least 16 characters in prod")
	}
	return nil
}
