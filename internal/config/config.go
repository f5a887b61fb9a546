package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Repository RepositoryConfig `mapstructure:"repository"`
	Worker     WorkerConfig     `mapstructure:"worker"`
	Demo       DemoConfig       `mapstructure:"demo"`
	Calendar   CalendarConfig   `mapstructure:"google_calendar"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Host           string   `mapstructure:"host"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RateLimitRPM   int      `mapstructure:"rate_limit_rpm"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

type RepositoryConfig struct {
	Type string `mapstructure:"type"` // "postgres" или "inmemory"
}

type WorkerConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	Horizon  time.Duration `mapstructure:"horizon"`
}

// DemoConfig включает демо-режим: набор из 24 задач и фиксированная
// опорная дата вместо настенных часов.
type DemoConfig struct {
	Seed   bool   `mapstructure:"seed"`
	Anchor string `mapstructure:"anchor"` // YYYY-MM-DD, пусто = реальное время
}

type CalendarConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	CredentialsFile string `mapstructure:"credentials_file"`
	TokenFile       string `mapstructure:"token_file"`
	CalendarID      string `mapstructure:"calendar_id"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.rate_limit_rpm", 100)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("logging.development", true)
	v.SetDefault("repository.type", "inmemory")
	v.SetDefault("worker.enabled", true)
	v.SetDefault("worker.interval", 5*time.Minute)
	v.SetDefault("worker.horizon", time.Hour)
	v.SetDefault("google_calendar.calendar_id", "primary")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("чтение config.yml: %w", err)
		}
		// файла нет — работаем на значениях по умолчанию и переменных окружения
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации: %w", err)
	}

	return &cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Clock возвращает источник "сейчас": настенные часы либо демо-якорь.
func (c *Config) Clock() (func() time.Time, error) {
	if c.Demo.Anchor == "" {
		return time.Now, nil
	}
	anchor, err := time.Parse("2006-01-02", c.Demo.Anchor)
	if err != nil {
		return nil, fmt.Errorf("разбор demo.anchor: %w", err)
	}
	return func() time.Time { return anchor }, nil
}
