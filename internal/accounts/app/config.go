package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"dev"`                // dev, test, prod
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`   // debug, info, warn, error
	LogFormat    string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"` // json, text
	SeedAccounts bool   `yaml:"seed_accounts" env:"SEED_ACCOUNTS" env-default:"false"`
	BcryptRounds int    `yaml:"bcrypt_rounds" env:"BCRYPT_ROUNDS" env-default:"10"`

	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type HTTPConfig struct {
	Port                int           `yaml:"port" env:"PORT" env-default:"8080"`
	APIPrefix           string        `yaml:"api_prefix" env:"API_PREFIX" env-default:"/api/v1"`
	CORSOrigin          string        `yaml:"cors_origin" env:"CORS_ORIGIN" env-default:"*"`
	ShutdownGracePeriod time.Duration `yaml:"shutdown_grace_period" env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	File   string `yaml:"file" env:"DATABASE_FILE" env-default:"accounts.db"` // sqlite only
	URL    string `yaml:"url" env:"DATABASE_URL"`                             // postgres only
}

type JWTConfig struct {
	Issuer           string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"accounts-service"`
	Secret           string        `yaml:"secret" env:"JWT_SECRET"`                 // empty: ephemeral
	RefreshSecret    string        `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET"` // empty: ephemeral
	ExpiresIn        time.Duration `yaml:"expires_in" env:"JWT_EXPIRES_IN" env-default:"24h"`
	RefreshExpiresIn time.Duration `yaml:"refresh_expires_in" env:"JWT_REFRESH_EXPIRES_IN" env-default:"168h"`
}

type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	Window          time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"15m"`
	MaxRequests     int           `yaml:"max_requests" env:"RATE_LIMIT_MAX_REQUESTS" env-default:"100"`
	AuthMaxRequests int           `yaml:"auth_max_requests" env:"AUTH_RATE_LIMIT_MAX_REQUESTS" env-default:"5"`
}

// LoadConfig reads the configuration from the environment. When CONFIG_FILE
// is set, the YAML file is read first and the environment overrides it.
func LoadConfig() (Config, error) {
	var cfg Config

	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.File == "" {
			return errors.New("config: DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown DATABASE_DRIVER %q", c.Database.Driver)
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.HTTP.Port)
	}
	if c.JWT.ExpiresIn <= 0 || c.JWT.RefreshExpiresIn <= 0 {
		return errors.New("config: token lifetimes must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.Window <= 0 {
		return errors.New("config: RATE_LIMIT_WINDOW must be positive")
	}
	if c.IsProduction() && (c.JWT.Secret == "" || c.JWT.RefreshSecret == "") {
		return errors.New("config: JWT_SECRET and JWT_REFRESH_SECRET are required in production")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	default:
		return false
	}
}
