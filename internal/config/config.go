package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application level configuration.
//
// Values are resolved in order: built-in defaults, the YAML file named by
// CONFIG_FILE (if any), then environment variables. A .env file in the
// working directory is loaded into the environment first.
type Config struct {
	Env        string `yaml:"env"`
	ServerPort string `yaml:"server_port"`

	DBDriver string `yaml:"db_driver"`
	DBDSN    string `yaml:"db_dsn"`
	ResetDB  bool   `yaml:"reset_db"`

	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	RedisPass string `yaml:"redis_password"`

	JWTSecret   string `yaml:"jwt_secret"`
	SwaggerHost string `yaml:"swagger_host"`

	// AssistantAPIKey enables the chatbot. AssistantBaseURL overrides the Gemini endpoint.
	AssistantAPIKey  string        `yaml:"assistant_api_key"`
	AssistantModel   string        `yaml:"assistant_model"`
	AssistantBaseURL string        `yaml:"assistant_base_url"`
	AssistantTimeout time.Duration `yaml:"assistant_timeout"`

	ChatRequestsPerMinute int           `yaml:"chat_requests_per_minute"`
	RecommendationTTL     time.Duration `yaml:"recommendation_ttl"`
}

// Load builds Config from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load(".env")

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Env:                   "development",
		ServerPort:            "8080",
		DBDriver:              "mysql",
		DBDSN:                 "user:password@tcp(localhost:3306)/alumni?charset=utf8mb4&parseTime=True&loc=Local",
		RedisAddr:             "localhost:6379",
		JWTSecret:             "change-me",
		AssistantModel:        "gemini-1.5-flash-latest",
		AssistantTimeout:      30 * time.Second,
		ChatRequestsPerMinute: 20,
		RecommendationTTL:     5 * time.Minute,
	}
}

func applyEnv(cfg *Config) {
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBDSN = getEnv("DB_DSN", cfg.DBDSN)
	cfg.ResetDB = getEnvBool("RESET_DB", cfg.ResetDB)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.SwaggerHost = getEnv("SWAGGER_HOST", cfg.SwaggerHost)
	cfg.AssistantAPIKey = getEnv("GEMINI_API_KEY", getEnv("ASSISTANT_API_KEY", cfg.AssistantAPIKey))
	cfg.AssistantModel = getEnv("GEMINI_MODEL", getEnv("ASSISTANT_MODEL", cfg.AssistantModel))
	cfg.AssistantBaseURL = getEnv("ASSISTANT_BASE_URL", cfg.AssistantBaseURL)
	cfg.AssistantTimeout = getEnvDuration("ASSISTANT_TIMEOUT", cfg.AssistantTimeout)
	cfg.ChatRequestsPerMinute = getEnvInt("CHAT_REQUESTS_PER_MINUTE", cfg.ChatRequestsPerMinute)
	cfg.RecommendationTTL = getEnvDuration("RECOMMENDATION_TTL", cfg.RecommendationTTL)
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AssistantAPIKey != "" && c.AssistantModel == "" {
		return fmt.Errorf("assistant model is required when an API key is set")
	}
	if c.ChatRequestsPerMinute <= 0 {
		return fmt.Errorf("chat requests per minute must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
