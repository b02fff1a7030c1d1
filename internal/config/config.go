package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env  string `env:"APP_ENV" env-default:"dev"`
	Port string `env:"PORT" env-default:"8080"`

	Postgres
	JWT
	Redis
	Kafka
	Payment
	Cleanup
}

type Postgres struct {
	URL         string `env:"POSTGRES_URL" env-required:"true"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type JWT struct {
	Secret     string        `env:"JWT_SECRET" env-required:"true"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" env-default:"30m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" env-default:"1h"`
}

// Redis is optional; an empty Addr selects the in-process refresh token store.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Brokers      []string `env:"KAFKA_BROKERS" env-separator:","`
	PaymentTopic string   `env:"KAFKA_PAYMENT_TOPIC" env-default:"pt.payment.completed"`
}

type Payment struct {
	ApprovalMaxAttempts uint   `env:"APPROVAL_MAX_ATTEMPTS" env-default:"5"`
	FailurePolicy       string `env:"PAYMENT_FAILURE_POLICY" env-default:"flatten"`
}

type Cleanup struct {
	Schedule      string `env:"CLEANUP_CRON" env-default:"0 0 * * *"`
	RetentionDays int    `env:"ACCOUNT_RETENTION_DAYS" env-default:"30"`
}

func (c Cleanup) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not found, using process environment")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if cfg.Payment.ApprovalMaxAttempts == 0 {
		cfg.Payment.ApprovalMaxAttempts = 1
	}
	switch cfg.Payment.FailurePolicy {
	case "flatten", "preserve":
	default:
		return nil, fmt.Errorf("unknown PAYMENT_FAILURE_POLICY %q", cfg.Payment.FailurePolicy)
	}
	return &cfg, nil
}
