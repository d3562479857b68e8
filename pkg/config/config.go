package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and passed by reference to every component
// that needs it; nothing reads the environment after Load returns.
type Config struct {
	// DatabaseURL selects the Postgres backend; when empty the store falls
	// back to a local SQLite file at SQLitePath.
	DatabaseURL string `mapstructure:"database_url"`
	SQLitePath  string `mapstructure:"sqlite_path"`

	// SecretKey signs session tokens. Leaving it unset falls back to a fixed
	// development value and is a deployment misconfiguration, not a
	// supported mode.
	SecretKey string `mapstructure:"secret_key"`

	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	LogLevel string `mapstructure:"log_level"`

	// Startup readiness gate parameters.
	DBMaxAttempts int           `mapstructure:"db_max_attempts"`
	DBRetryDelay  time.Duration `mapstructure:"db_retry_delay"`
}

const (
	DefaultSQLitePath  = "blog.db"
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 5000
	DefaultLogLevel    = "info"
	DefaultMaxAttempts = 10
	DefaultRetryDelay  = 3 * time.Second

	// DevSecretKey is the fallback signing secret for local development.
	DevSecretKey = "dev-secret-key"
)

func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("sqlite_path", DefaultSQLitePath)
	v.SetDefault("secret_key", DevSecretKey)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("db_max_attempts", DefaultMaxAttempts)
	v.SetDefault("db_retry_delay", DefaultRetryDelay)

	// Environment is the primary source; DATABASE_URL and SECRET_KEY keep
	// their conventional unprefixed names.
	v.AutomaticEnv()
	v.SetEnvPrefix("MINIBLOG")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("secret_key", "SECRET_KEY")

	// An optional config file can override defaults for anything else.
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.SQLitePath == "" {
		return fmt.Errorf("either database_url or sqlite_path is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.DBMaxAttempts <= 0 {
		return fmt.Errorf("db_max_attempts must be positive")
	}
	return nil
}

// UsesDevSecret reports whether the process is running on the hardcoded
// development signing key.
func (c *Config) UsesDevSecret() bool {
	return c.SecretKey == DevSecretKey
}
