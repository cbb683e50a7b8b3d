package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	Environment string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers []string
	KafkaTopic   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JaegerEndpoint string

	OutboxRelaySchedule            string
	ReleaseIdleWorkCentersSchedule string
	OutboxBatchSize                int
	IdempotencyTTL                 time.Duration
}

// LoadConfig reads the configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set take precedence.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	batchSize, err := getEnvInt("OUTBOX_BATCH_SIZE", 100)
	if err != nil {
		return Config{}, err
	}
	ttl, err := time.ParseDuration(getEnv("IDEMPOTENCY_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("IDEMPOTENCY_TTL: %w", err)
	}

	return Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "dietrack"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "dietrack.events"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),

		OutboxRelaySchedule:            getEnv("OUTBOX_RELAY_SCHEDULE", "*/1 * * * * *"),
		ReleaseIdleWorkCentersSchedule: getEnv("RELEASE_IDLE_WORK_CENTERS_SCHEDULE", "0 */5 * * * *"),
		OutboxBatchSize:                batchSize,
		IdempotencyTTL:                 ttl,
	}, nil
}

// DSN is the libpq connection string of the database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
