package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Поддерживаемые реализации блокировок бронирования
const (
	LockerMemory = "memory"
	LockerRedis  = "redis"
)

// Поддерживаемые отправители уведомлений
const (
	SenderLog  = "log"
	SenderHTTP = "http"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")
	// ErrInvalidConfig некорректные значения конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Redis         RedisConfig         `toml:"redis"`
	Locker        LockerConfig        `toml:"locker"`
	Notifications NotificationsConfig `toml:"notifications"`
	Reminders     RemindersConfig     `toml:"reminders"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	// Timezone IANA зона, в которой читаются даты и время записей; пусто - зона процесса
	Timezone string `toml:"timezone"`
}

// Location возвращает зону из Timezone, для пустого значения time.Local
func (s ServerConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig секрет для проверки JWT (HMAC)
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LockerConfig блокировка (стилист, дата) на время проверки и вставки бронирования
type LockerConfig struct {
	Backend     string `toml:"backend"`
	TTLSeconds  int    `toml:"ttl_seconds"`
	RetryMillis int    `toml:"retry_millis"`
}

type NotificationsConfig struct {
	Sender       string `toml:"sender"`
	URL          string `toml:"url"`
	APIKey       string `toml:"api_key"`
	Timeout      int    `toml:"timeout"`
	QueueSize    int    `toml:"queue_size"`
	SalonAddress string `toml:"salon_address"`
}

// RemindersConfig периодическая рассылка напоминаний о завтрашних записях
type RemindersConfig struct {
	Enabled         bool    `toml:"enabled"`
	IntervalSeconds int     `toml:"interval_seconds"`
	RatePerSecond   float64 `toml:"rate_per_second"`
	Burst           int     `toml:"burst"`
}

// Load читает .env (если есть), затем TOML файл, затем переопределения из окружения.
// Путь к файлу можно переопределить переменной CONFIG_PATH.
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("APP_TIMEZONE"); v != "" {
		c.Server.Timezone = v
	}
	if v := os.Getenv("SMS_API_KEY"); v != "" {
		c.Notifications.APIKey = v
	}
}

// Validate проставляет значения по умолчанию и проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)
	if _, err := c.Server.Location(); err != nil {
		return fmt.Errorf("%w: server.timezone %q: %v", ErrInvalidConfig, c.Server.Timezone, err)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns exceeds max_open_conns", ErrInvalidConfig)
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "stylist-booking"
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}

	switch c.Locker.Backend {
	case "":
		c.Locker.Backend = LockerMemory
	case LockerMemory:
	case LockerRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis locker", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown locker backend %q", ErrInvalidConfig, c.Locker.Backend)
	}
	setDefault(&c.Locker.TTLSeconds, 10)
	setDefault(&c.Locker.RetryMillis, 25)

	switch c.Notifications.Sender {
	case "":
		c.Notifications.Sender = SenderLog
	case SenderLog:
	case SenderHTTP:
		if c.Notifications.URL == "" {
			return fmt.Errorf("%w: notifications.url is required for http sender", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown notifications sender %q", ErrInvalidConfig, c.Notifications.Sender)
	}
	setDefault(&c.Notifications.Timeout, 5)
	setDefault(&c.Notifications.QueueSize, 256)

	setDefault(&c.Reminders.IntervalSeconds, 3600)
	setDefault(&c.Reminders.Burst, 1)
	if c.Reminders.RatePerSecond <= 0 {
		c.Reminders.RatePerSecond = 5
	}

	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
