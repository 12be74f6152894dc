package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config - структура для хранения конфигурации сервера
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Хранилище сущностей
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`
	DatabaseURL  string `env:"DATABASE_URL"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"dashboard.db"`
	SeedData     bool   `env:"SEED_DATA" envDefault:"true"`

	// Redis Config. Пустой адрес отключает кэш маршрутов и очередь диспетчера.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPass     string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RouteCacheTTL time.Duration `env:"ROUTE_CACHE_TTL" envDefault:"5m"`

	// Broadcast Hub
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL" envDefault:"30s"`
	WSWriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`

	// Webhook Config (внешняя диспетчерская)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "5000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StoreBackend:      getEnv("STORE_BACKEND", StoreMemory),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        getEnv("SQLITE_PATH", "dashboard.db"),
		SeedData:          getEnvAsBool("SEED_DATA", true),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		RouteCacheTTL:     getEnvAsDuration("ROUTE_CACHE_TTL", 5*time.Minute),
		HeartbeatInterval: getEnvAsDuration("HEARTBEAT_INTERVAL", 30*time.Second),
		WSWriteWait:       getEnvAsDuration("WS_WRITE_WAIT", 10*time.Second),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	switch cfg.StoreBackend {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for postgres store")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.HeartbeatInterval <= 0 {
		return nil, fmt.Errorf("HEARTBEAT_INTERVAL must be positive")
	}

	return cfg, nil
}

// ClientConfig - конфигурация терминального клиента дашборда
type ClientConfig struct {
	ServerURL      string        `env:"DASHBOARD_SERVER_URL" envDefault:"http://localhost:5000"`
	OfficerBadge   string        `env:"OFFICER_BADGE" envDefault:"4127"`
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY" envDefault:"3s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadClientConfig загружает конфигурацию клиента
func LoadClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	return &ClientConfig{
		ServerURL:      getEnv("DASHBOARD_SERVER_URL", "http://localhost:5000"),
		OfficerBadge:   getEnv("OFFICER_BADGE", "4127"),
		ReconnectDelay: getEnvAsDuration("RECONNECT_DELAY", 3*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

// loadDotEnv загружает переменные окружения из .env файла (если есть)
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
