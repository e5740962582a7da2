package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. Values come from the
// environment (optionally pre-loaded from .env by godotenv).
type Config struct {
	AppEnv string
	Server ServerConfig
	DB     DatabaseConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Auth   AuthConfig
	Hub    HubConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig is optional; an empty Host keeps rules and audit in memory.
type DatabaseConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Addr       string
	MaxRetries int
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type KafkaConfig struct {
	Broker  string
	GroupID string
}

func (c KafkaConfig) Enabled() bool {
	return c.Broker != ""
}

type AuthConfig struct {
	JWTSecret string
}

func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// HubConfig sizes the in-memory registries.
type HubConfig struct {
	EventQueueLimit     int
	AuditRetention      int
	MetricsHistoryLimit int
	MonthlyBudget       float64
	RulesFile           string
	// MetricsInterval of zero disables the periodic dashboard snapshot.
	MetricsInterval time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		AppEnv: v.GetString("APP_ENV"),
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
		},
		DB: DatabaseConfig{
			Host:       v.GetString("DB_HOST"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			Port:       v.GetString("DB_PORT"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			MaxRetries: v.GetInt("DB_MAX_RETRIES"),
		},
		Redis: RedisConfig{
			Addr:       v.GetString("REDIS_ADDR"),
			MaxRetries: v.GetInt("REDIS_MAX_RETRIES"),
		},
		Kafka: KafkaConfig{
			Broker:  v.GetString("KAFKA_BROKER"),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		Hub: HubConfig{
			EventQueueLimit:     v.GetInt("EVENT_QUEUE_LIMIT"),
			AuditRetention:      v.GetInt("AUDIT_RETENTION"),
			MetricsHistoryLimit: v.GetInt("METRICS_HISTORY_LIMIT"),
			MonthlyBudget:       v.GetFloat64("MONTHLY_BUDGET"),
			RulesFile:           v.GetString("RULES_FILE"),
			MetricsInterval:     v.GetDuration("METRICS_INTERVAL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("HTTP_READ_TIMEOUT", 5*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("REDIS_MAX_RETRIES", 5)
	v.SetDefault("KAFKA_GROUP_ID", "go-integration")

	v.SetDefault("EVENT_QUEUE_LIMIT", 1000)
	v.SetDefault("AUDIT_RETENTION", 1000)
	v.SetDefault("METRICS_HISTORY_LIMIT", 100)
	v.SetDefault("MONTHLY_BUDGET", 500000.0)
	v.SetDefault("METRICS_INTERVAL", 5*time.Minute)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Hub.EventQueueLimit <= 0 {
		return fmt.Errorf("EVENT_QUEUE_LIMIT must be positive")
	}
	if c.Hub.AuditRetention <= 0 {
		return fmt.Errorf("AUDIT_RETENTION must be positive")
	}
	if c.Hub.MetricsHistoryLimit <= 0 {
		return fmt.Errorf("METRICS_HISTORY_LIMIT must be positive")
	}
	if c.Hub.MonthlyBudget <= 0 {
		return fmt.Errorf("MONTHLY_BUDGET must be positive")
	}
	if c.Hub.MetricsInterval < 0 {
		return fmt.Errorf("METRICS_INTERVAL must not be negative")
	}
	if c.DB.Enabled() && c.DB.Name == "" {
		return fmt.Errorf("DB_NAME is required when DB_HOST is set")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
