package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

// Config ค่าตั้งค่าทั้งหมดของแอป อ่านจาก environment (และไฟล์ .env ถ้ามี)
type Config struct {
	AppURI         string   `env:"APP_URI" envDefault:"8888" validate:"required"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`

	// APIBaseURL คือ activities API ที่หน้า board เรียกใช้ ถ้าว่างจะใช้ API ในตัวเอง
	APIBaseURL string        `env:"API_BASE_URL" validate:"omitempty,url"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// MongoURI ว่าง = ใช้ in-memory store
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"MergingtonDB" validate:"required"`

	// RedisURI ว่าง = ไม่มี cache และไม่มี job queue
	RedisURI string        `env:"REDIS_URI"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s" validate:"gte=0"`

	SMTP SMTP `envPrefix:"SMTP_"`
}

type SMTP struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"587" validate:"gt=0,lte=65535"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	From string `env:"FROM" validate:"omitempty,email"`
}

// Enabled reports whether confirmation mail can actually be sent.
func (s SMTP) Enabled() bool {
	return s.Host != "" && s.From != ""
}

// Load reads .env (optional), parses the environment and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("⚠️ Warning: No .env file found")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Level maps LOG_LEVEL onto the fiber logger levels.
func (c *Config) Level() log.Level {
	switch c.LogLevel {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// ListenAddr accepts either a bare port ("8888") or a host:port pair.
func (c *Config) ListenAddr() string {
	if strings.Contains(c.AppURI, ":") {
		return c.AppURI
	}
	return ":" + c.AppURI
}
