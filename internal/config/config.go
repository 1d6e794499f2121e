package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPool int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Routing Config
	RoutingAPIKey        string        `env:"ROUTING_API_KEY"`
	RoutingBaseURL       string        `env:"ROUTING_BASE_URL" envDefault:"https://maps.googleapis.com/maps/api"`
	RoutingRateLimit     float64       `env:"ROUTING_RATE_LIMIT" envDefault:"10"`
	RoutingMaxElements   int           `env:"ROUTING_MAX_ELEMENTS" envDefault:"100"`
	RoutingTimeout       time.Duration `env:"ROUTING_TIMEOUT" envDefault:"10s"`
	RoutingBatchInterval time.Duration `env:"ROUTING_BATCH_INTERVAL" envDefault:"100ms"`
	RoutingConcurrency   int           `env:"ROUTING_CONCURRENCY" envDefault:"4"`

	// Cache Config
	DistanceCacheTTL time.Duration `env:"DISTANCE_CACHE_TTL" envDefault:"1h"`
	RouteCacheTTL    time.Duration `env:"ROUTE_CACHE_TTL" envDefault:"1h"`
	ZoneCacheTTL     time.Duration `env:"ZONE_CACHE_TTL" envDefault:"5m"`

	// Allocation Config
	TravelTimeMinutes    float64 `env:"ALLOCATION_TRAVEL_MINUTES" envDefault:"1"`
	WalkingSpeedKmPerMin float64 `env:"ALLOCATION_WALKING_SPEED" envDefault:"0.6"`
	AgePriority          bool    `env:"ALLOCATION_AGE_PRIORITY" envDefault:"true"`
	SearchRadiusKm       float64 `env:"ALLOCATION_SEARCH_RADIUS_KM" envDefault:"5"`
	// Отбор и сортировка по пешему расстоянию провайдера вместо расстояния по прямой
	RoutedAllocation bool `env:"ALLOCATION_ROUTED_DISTANCE" envDefault:"false"`

	// Tracking Config
	ArrivalThresholdKm   float64 `env:"TRACKING_ARRIVAL_KM" envDefault:"0.01"`
	LeaveThresholdKm     float64 `env:"TRACKING_LEAVE_KM" envDefault:"0.05"`
	DeviationToleranceKm float64 `env:"TRACKING_DEVIATION_KM" envDefault:"0.1"`

	// Rate Limit Config
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		DBMaxConns:           int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		RedisPool:            getEnvAsInt("REDIS_POOL_SIZE", 10),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		RoutingAPIKey:        os.Getenv("ROUTING_API_KEY"),
		RoutingBaseURL:       getEnv("ROUTING_BASE_URL", "https://maps.googleapis.com/maps/api"),
		RoutingRateLimit:     getEnvAsFloat("ROUTING_RATE_LIMIT", 10),
		RoutingMaxElements:   getEnvAsInt("ROUTING_MAX_ELEMENTS", 100),
		RoutingTimeout:       getEnvAsDuration("ROUTING_TIMEOUT", 10*time.Second),
		RoutingBatchInterval: getEnvAsDuration("ROUTING_BATCH_INTERVAL", 100*time.Millisecond),
		RoutingConcurrency:   getEnvAsInt("ROUTING_CONCURRENCY", 4),
		DistanceCacheTTL:     getEnvAsDuration("DISTANCE_CACHE_TTL", time.Hour),
		RouteCacheTTL:        getEnvAsDuration("ROUTE_CACHE_TTL", time.Hour),
		ZoneCacheTTL:         getEnvAsDuration("ZONE_CACHE_TTL", 5*time.Minute),
		TravelTimeMinutes:    getEnvAsFloat("ALLOCATION_TRAVEL_MINUTES", 1),
		WalkingSpeedKmPerMin: getEnvAsFloat("ALLOCATION_WALKING_SPEED", 0.6),
		AgePriority:          getEnvAsBool("ALLOCATION_AGE_PRIORITY", true),
		SearchRadiusKm:       getEnvAsFloat("ALLOCATION_SEARCH_RADIUS_KM", 5),
		RoutedAllocation:     getEnvAsBool("ALLOCATION_ROUTED_DISTANCE", false),
		ArrivalThresholdKm:   getEnvAsFloat("TRACKING_ARRIVAL_KM", 0.01),
		LeaveThresholdKm:     getEnvAsFloat("TRACKING_LEAVE_KM", 0.05),
		DeviationToleranceKm: getEnvAsFloat("TRACKING_DEVIATION_KM", 0.1),
		RateLimitRPS:         getEnvAsFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:       getEnvAsInt("RATE_LIMIT_BURST", 100),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.WalkingSpeedKmPerMin <= 0 {
		return nil, fmt.Errorf("ALLOCATION_WALKING_SPEED must be positive, got %v", cfg.WalkingSpeedKmPerMin)
	}
	if cfg.LeaveThresholdKm < cfg.ArrivalThresholdKm {
		return nil, fmt.Errorf("TRACKING_LEAVE_KM must not be less than TRACKING_ARRIVAL_KM")
	}

	return cfg, nil
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
