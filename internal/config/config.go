package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig `envPrefix:"DB_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	JWT      JWTConfig      `envPrefix:"JWT_"`
}

type AppConfig struct {
	AppName         string        `env:"APP_NAME"         envDefault:"jobboard"`
	Environment     string        `env:"APP_ENV"          envDefault:"development"`
	HTTPPort        string        `env:"HTTP_PORT"        envDefault:"8080"`
	MigrateOnStart  bool          `env:"MIGRATE_ON_START" envDefault:"true"`
	SeedDemoData    bool          `env:"SEED_DEMO_DATA"   envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	DBHost     string `env:"HOST"     envDefault:"localhost"`
	DBPort     string `env:"PORT"     envDefault:"5432"`
	DBName     string `env:"NAME"     envDefault:"jobboard"`
	DBUser     string `env:"USER"     envDefault:"jobboard"`
	DBPassword string `env:"PASSWORD" envDefault:""`
	DBSSLMode  string `env:"SSL_MODE" envDefault:"disable"`

	ConnectTimeout        time.Duration `env:"CONNECT_TIMEOUT"          envDefault:"5s"`
	PoolMaxConns          int32         `env:"POOL_MAX_CONNS"           envDefault:"10"`
	PoolMinConns          int32         `env:"POOL_MIN_CONNS"           envDefault:"0"`
	PoolMaxConnLifetime   time.Duration `env:"POOL_MAX_CONN_LIFETIME"   envDefault:"1h"`
	PoolMaxConnIdleTime   time.Duration `env:"POOL_MAX_CONN_IDLE_TIME"  envDefault:"30m"`
	PoolHealthCheckPeriod time.Duration `env:"POOL_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

// RedisConfig configures the job listing cache. A disabled or unreachable
// Redis only bypasses the cache.
type RedisConfig struct {
	Enabled  bool          `env:"ENABLED"  envDefault:"true"`
	Addr     string        `env:"ADDR"     envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB"       envDefault:"0"`
	TTL      time.Duration `env:"TTL"      envDefault:"10m"`
}

type JWTConfig struct {
	AccessSecret     string        `env:"ACCESS_SECRET"`
	RefreshSecret    string        `env:"REFRESH_SECRET"`
	AccessExpiresIn  time.Duration `env:"ACCESS_EXPIRES_IN"  envDefault:"15m"`
	RefreshExpiresIn time.Duration `env:"REFRESH_EXPIRES_IN" envDefault:"168h"`
}

// ClientConfig is used by API consumers such as the jobboard CLI.
type ClientConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"5s"`
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads the server configuration from the environment, after loading a
// .env file when one exists.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadClient reads only the API client settings (JOBBOARD_BASE_URL, JOBBOARD_TIMEOUT).
func LoadClient() (ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return ClientConfig{}, err
	}

	var cfg ClientConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "JOBBOARD_"}); err != nil {
		return ClientConfig{}, fmt.Errorf("parse client config: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}
	return nil
}

func (c *Config) Sanitize() {
	c.App.AppName = strings.TrimSpace(c.App.AppName)
	c.App.Environment = strings.ToLower(strings.TrimSpace(c.App.Environment))
	c.App.HTTPPort = strings.TrimSpace(c.App.HTTPPort)
	if c.App.ShutdownTimeout <= 0 {
		c.App.ShutdownTimeout = 10 * time.Second
	}

	if c.Database.PoolMaxConns < 0 {
		c.Database.PoolMaxConns = 0
	}
	if c.Database.PoolMinConns < 0 {
		c.Database.PoolMinConns = 0
	}
	if c.Database.PoolMaxConns > 0 && c.Database.PoolMinConns > c.Database.PoolMaxConns {
		c.Database.PoolMinConns = c.Database.PoolMaxConns
	}

	if c.Redis.TTL <= 0 {
		c.Redis.TTL = 10 * time.Minute
	}
}

func (c *Config) Validate() error {
	var missing []string
	if c.App.HTTPPort == "" {
		missing = append(missing, "HTTP_PORT")
	}
	if strings.TrimSpace(c.JWT.AccessSecret) == "" {
		missing = append(missing, "JWT_ACCESS_SECRET")
	}
	if strings.TrimSpace(c.JWT.RefreshSecret) == "" {
		missing = append(missing, "JWT_REFRESH_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *ClientConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
}
