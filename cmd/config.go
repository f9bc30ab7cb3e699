package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"restaurant"`
	Env         string `env:"APP_ENV"      envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`

	HTTPPort           string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPShutdownPeriod time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins        []string      `env:"CORS_ALLOWED_ORIGINS"  envDefault:"*" envSeparator:","`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"restaurant"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	RedisAddr     string        `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"       envDefault:"0"`
	CartTTL       time.Duration `env:"CART_TTL"       envDefault:"12h"`

	KafkaBrokers           []string `env:"KAFKA_BROKERS"             envDefault:"localhost:9092" envSeparator:","`
	KafkaOrderChangedTopic string   `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"restaurant.orders"`

	OutboxRelaySchedule  string        `env:"OUTBOX_RELAY_SCHEDULE"   envDefault:"*/2 * * * * *"`
	OutboxRelayBatchSize int           `env:"OUTBOX_RELAY_BATCH_SIZE" envDefault:"100"`
	OutboxRelayTimeout   time.Duration `env:"OUTBOX_RELAY_TIMEOUT"    envDefault:"5s"`

	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer string `env:"JWT_ISSUER"`

	TicketBaseURL string `env:"TICKET_BASE_URL" envDefault:"http://localhost:8080"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
