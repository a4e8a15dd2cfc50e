package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// EnvConfigPath переменная окружения с путём к конфигу
const EnvConfigPath = "CONFIG_PATH"

// DefaultPath путь к конфигу по умолчанию
const DefaultPath = "config.toml"

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустая строка - только stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig правила записи на приём
type BookingConfig struct {
	MinDurationMinutes  int `toml:"min_duration_minutes"`
	MaxDurationMinutes  int `toml:"max_duration_minutes"`
	MinAdvanceMinutes   int `toml:"min_advance_minutes"`
	MaxAdvanceDays      int `toml:"max_advance_days"`
	DefaultSlotDuration int `toml:"default_slot_duration"`
}

// Load читает конфигурацию из TOML файла, заполняет значения по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolvePath выбирает путь к конфигу: флаг, затем CONFIG_PATH, затем config.toml
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultPath
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "healthcare",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "healthcare-api",
		},
		Booking: BookingConfig{
			MinDurationMinutes:  domain.DefaultMinDurationMinutes,
			MaxDurationMinutes:  domain.DefaultMaxDurationMinutes,
			MinAdvanceMinutes:   domain.DefaultMinAdvanceMinutes,
			MaxAdvanceDays:      domain.DefaultMaxAdvanceDays,
			DefaultSlotDuration: domain.DefaultSlotDurationMinutes,
		},
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	case c.Server.ShutdownTimeout < 0:
		return fmt.Errorf("%w: server.shutdown_timeout must not be negative", ErrInvalidConfig)
	case c.Database.Host == "" || c.Database.DBName == "":
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	case c.Database.MaxIdleConns > c.Database.MaxOpenConns && c.Database.MaxOpenConns > 0:
		return fmt.Errorf("%w: database.max_idle_conns exceeds max_open_conns", ErrInvalidConfig)
	case c.Metrics.Enabled && c.Metrics.Path == "":
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	b := c.Booking
	switch {
	case b.MinDurationMinutes <= 0 || b.MaxDurationMinutes < b.MinDurationMinutes:
		return fmt.Errorf("%w: booking duration bounds are inconsistent", ErrInvalidConfig)
	case b.MinAdvanceMinutes < 0 || b.MaxAdvanceDays <= 0:
		return fmt.Errorf("%w: booking advance window is inconsistent", ErrInvalidConfig)
	case time.Duration(b.MinAdvanceMinutes)*time.Minute >= time.Duration(b.MaxAdvanceDays)*24*time.Hour:
		return fmt.Errorf("%w: booking.min_advance_minutes must be below max_advance_days", ErrInvalidConfig)
	case b.DefaultSlotDuration < domain.MinSlotDurationMinutes || b.DefaultSlotDuration > domain.MaxSlotDurationMinutes:
		return fmt.Errorf("%w: booking.default_slot_duration must be in %d..%d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Policy переводит настройки записи в доменную политику
func (b BookingConfig) Policy() domain.BookingPolicy {
	return domain.BookingPolicy{
		MinDuration:  time.Duration(b.MinDurationMinutes) * time.Minute,
		MaxDuration:  time.Duration(b.MaxDurationMinutes) * time.Minute,
		MinAdvance:   time.Duration(b.MinAdvanceMinutes) * time.Minute,
		MaxAdvance:   time.Duration(b.MaxAdvanceDays) * 24 * time.Hour,
		SlotDuration: time.Duration(b.DefaultSlotDuration) * time.Minute,
	}
}
