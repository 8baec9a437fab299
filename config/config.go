package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config là cấu hình gốc của ứng dụng, đọc từ biến môi trường
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
	Auth     AuthConfig
	App      AppConfig
	Tracing  TracingConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT"                    env-default:"8083"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"15s"`
	GinMode         string        `env:"GIN_MODE"                env-default:"release"`
}

// DatabaseConfig: DSN được ưu tiên; nếu rỗng thì ghép từ nhóm biến theo ENV (dev, qc, prod)
type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER"    env-default:"postgres"`
	DSN    string `env:"DATABASE_DSN"`
	Env    string `env:"ENV"          env-default:"dev"`
	SSL    string `env:"DB_SSLMODE"   env-default:"require"`
}

// RedisConfig: Addr rỗng thì tắt cache
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	User     string `env:"REDIS_USER"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type OpenAIConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	BaseURL string        `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string        `env:"OPENAI_MODEL"    env-default:"gpt-4o-mini"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT"  env-default:"60s"`
}

// AuthConfig: JWTSecret rỗng thì không kiểm tra token
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

type AppConfig struct {
	Name          string `env:"APP_NAME"        env-default:"assetflow"`
	Timezone      string `env:"APP_TIMEZONE"    env-default:"Asia/Ho_Chi_Minh"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	Store         string `env:"STORE"           env-default:"gorm"`
	LogLevel      string `env:"LOG_LEVEL"       env-default:"info"`
	AutoMigrate   bool   `env:"AUTO_MIGRATE"    env-default:"true"`
}

type TracingConfig struct {
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

const (
	StoreGorm   = "gorm"
	StoreMemory = "memory"

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// LoadEnv nạp biến môi trường từ tệp .env nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

// Load đọc cấu hình từ biến môi trường và giá trị mặc định
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate kiểm tra các giá trị liệt kê, múi giờ và timeout
func (c *Config) Validate() error {
	switch c.App.Store {
	case StoreGorm, StoreMemory:
	default:
		return fmt.Errorf("STORE must be %q or %q, got %q", StoreGorm, StoreMemory, c.App.Store)
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, c.Database.Driver)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", c.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", c.Server.IdleTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout},
		{"OPENAI_TIMEOUT", c.OpenAI.Timeout},
	}
	for _, to := range timeouts {
		if to.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", to.name, to.value)
		}
	}
	return nil
}
