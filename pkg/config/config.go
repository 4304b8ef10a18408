package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port           string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	Env            string        `envconfig:"ENV" default:"development" validate:"oneof=development production test"`
	PostgresURL    string        `envconfig:"POSTGRES_CONN_STR" validate:"required"`
	MetricsPort    string        `envconfig:"METRICS_PORT" default:"9090" validate:"required,numeric"`
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"supersecretjwtkey" validate:"required"`
	JWTTTL         time.Duration `envconfig:"JWT_TTL" default:"72h" validate:"gt=0"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	DBMaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10" validate:"min=1"`
	DBMaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2" validate:"min=0,ltefield=DBMaxOpenConns"`
	CommentPolicy  string        `envconfig:"COMMENT_POLICY" default:"owner" validate:"oneof=owner any-user"`
	LikePolicy     string        `envconfig:"LIKE_POLICY" default:"owner" validate:"oneof=owner any-user"`
}

// Load reads an optional .env file, then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, assuming environment variables are set.")
	}
	return FromEnv()
}

// FromEnv builds the Config from the process environment alone
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
