package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvParkingAPIURL     = "PARKING_API_URL"
	EnvParkingUploadsURL = "PARKING_UPLOADS_URL"
	EnvLocalTokenSecret  = "LOCAL_TOKEN_SECRET"
	EnvDBPassword        = "DB_PASSWORD"
	EnvHTTPPort          = "HTTP_PORT"
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Upstream UpstreamConfig `toml:"upstream"`
	Fallback FallbackConfig `toml:"fallback"`
	Auth     AuthConfig     `toml:"auth"`
	Database DatabaseConfig `toml:"database"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Monitor  MonitorConfig  `toml:"monitor"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int      `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int      `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int      `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int      `toml:"shutdown_timeout" validate:"min=1"`
	CORSOrigins     []string `toml:"cors_origins"`
	// Timezone зона для отображения дат (FormatDate)
	Timezone string `toml:"timezone" validate:"required"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

// UpstreamConfig настройки parking API
type UpstreamConfig struct {
	URL        string `toml:"url" validate:"required,url"`
	UploadsURL string `toml:"uploads_url" validate:"required,url"`
	// Timeout в секундах
	Timeout int `toml:"timeout" validate:"min=1"`
}

// FallbackConfig политика резервных данных
type FallbackConfig struct {
	TreatEmptyAsUnavailable bool `toml:"treat_empty_as_unavailable"`
}

// AuthConfig настройки локальной авторизации
type AuthConfig struct {
	LocalTokenSecret string `toml:"local_token_secret"`
}

// DatabaseConfig настройки БД журнала регистраций
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host" validate:"required_if=Enabled true"`
	Port            int    `toml:"port" validate:"required_if=Enabled true,max=65535"`
	User            string `toml:"user" validate:"required_if=Enabled true"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required_if=Enabled true"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrationsPath  string `toml:"migrations_path" validate:"required_if=Enabled true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
}

// MonitorConfig настройки фонового мониторинга доступности API
type MonitorConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule" validate:"required_if=Enabled true"`
}

// Load загружает конфигурацию из TOML-файла
// .env (если есть) подгружается в окружение, переменные окружения перекрывают файл
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Timezone:        "Africa/Abidjan",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Upstream: UpstreamConfig{
			Timeout: 10,
		},
		Fallback: FallbackConfig{
			TreatEmptyAsUnavailable: true,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrationsPath:  "./migrations",
		},
		Metrics: MetricsConfig{
			ServiceName: "parking_portal",
			Path:        "/metrics",
		},
		Monitor: MonitorConfig{
			Schedule: "@every 30s",
		},
	}
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvParkingAPIURL); ok && v != "" {
		cfg.Upstream.URL = v
	}
	if v, ok := os.LookupEnv(EnvParkingUploadsURL); ok && v != "" {
		cfg.Upstream.UploadsURL = v
	}
	if v, ok := os.LookupEnv(EnvLocalTokenSecret); ok {
		cfg.Auth.LocalTokenSecret = v
	}
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s=%q: %w", EnvHTTPPort, v, err)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}
