package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int `mapstructure:"read_timeout"`  // секунды
	WriteTimeout int `mapstructure:"write_timeout"` // секунды
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// ApplySchema - применять ли SQL-файлы из MigrationsPath при старте
	ApplySchema    bool   `mapstructure:"apply_schema"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RedisConfig содержит настройки подключения к Redis.
// Redis нужен только для rate limiting; без адреса клиент не создаётся.
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт).
	Addrs []string `mapstructure:"addrs"`

	// Addr: адрес для режима 'single', если Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	MaxRetries      int `mapstructure:"max_retries"`
	MinRetryBackoff int `mapstructure:"min_retry_backoff"` // мс
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"` // мс
}

// Configured сообщает, задан ли хотя бы один адрес Redis
func (r RedisConfig) Configured() bool {
	return len(r.Addrs) > 0 || r.Addr != ""
}

// RateLimitConfig содержит настройки ограничения изменяющих запросов
type RateLimitConfig struct {
	Enabled     bool
	MaxRequests int `mapstructure:"max_requests"`
	WindowSec   int `mapstructure:"window_sec"`
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "5000")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 30)

	vip.SetDefault("database.host", "localhost:5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.apply_schema", true)
	vip.SetDefault("database.migrations_path", "file://migrations")

	vip.SetDefault("redis.mode", "single")

	vip.SetDefault("ratelimit.enabled", false)
	vip.SetDefault("ratelimit.max_requests", 30)
	vip.SetDefault("ratelimit.window_sec", 60)

	vip.SetDefault("cors.allow_origins", []string{"*"})
}

// bindEnv привязывает ключ к нескольким переменным окружения; первая заданная побеждает
func bindEnv(vip *viper.Viper, key string, envs ...string) {
	if err := vip.BindEnv(append([]string{key}, envs...)...); err != nil {
		log.Printf("[Config] Failed to bind %s: %v", key, err)
	}
}

// Load загружает конфигурацию: .env, затем файл configPath (если есть), затем переменные окружения
func Load(configPath string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Config] Предупреждение: не удалось прочитать .env: %v", err)
	}

	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния
	setDefaults(vip)

	// Короткие имена DB_* - те же, что у исходного окружения проекта
	bindEnv(vip, "database.host", "DB_HOST", "DATABASE_HOST")
	bindEnv(vip, "database.port", "DB_PORT", "DATABASE_PORT")
	bindEnv(vip, "database.user", "DB_USER", "DATABASE_USER")
	bindEnv(vip, "database.password", "DB_PASSWORD", "DATABASE_PASSWORD")
	bindEnv(vip, "database.dbname", "DB_NAME", "DATABASE_DBNAME")
	bindEnv(vip, "database.sslmode", "DATABASE_SSLMODE")
	bindEnv(vip, "database.apply_schema", "DATABASE_APPLY_SCHEMA")
	bindEnv(vip, "database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	bindEnv(vip, "redis.mode", "REDIS_MODE")
	bindEnv(vip, "redis.addrs", "REDIS_ADDRS")
	bindEnv(vip, "redis.addr", "REDIS_ADDR")
	bindEnv(vip, "redis.password", "REDIS_PASSWORD")
	bindEnv(vip, "redis.db", "REDIS_DB")
	bindEnv(vip, "redis.master_name", "REDIS_MASTER_NAME")

	bindEnv(vip, "ratelimit.enabled", "RATELIMIT_ENABLED")
	bindEnv(vip, "ratelimit.max_requests", "RATELIMIT_MAX_REQUESTS")
	bindEnv(vip, "ratelimit.window_sec", "RATELIMIT_WINDOW_SEC")

	bindEnv(vip, "cors.allow_origins", "CORS_ALLOW_ORIGINS")

	bindEnv(vip, "server.port", "SERVER_PORT")

	if configPath != "" {
		vip.SetConfigFile(configPath)
		// Файла может не быть: тогда работают переменные окружения и значения по умолчанию
		if err := vip.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
				log.Printf("[Config] Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("[Config] Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Списки из переменных окружения приходят одной строкой через запятую
	cfg.Redis.Addrs = splitList(cfg.Redis.Addrs)
	cfg.CORS.AllowOrigins = splitList(cfg.CORS.AllowOrigins)

	// DB_HOST может быть в виде host:port
	if host, port, err := net.SplitHostPort(cfg.Database.Host); err == nil {
		cfg.Database.Host = host
		if cfg.Database.Port == "" {
			cfg.Database.Port = port
		}
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Port: %s", cfg.Database.Port)
		log.Printf("Database User: %s", cfg.Database.User)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Database Apply Schema: %t (%s)", cfg.Database.ApplySchema, cfg.Database.MigrationsPath)
		log.Printf("Redis Addr: %s %v", cfg.Redis.Addr, cfg.Redis.Addrs)
		log.Printf("Rate Limit Enabled: %t", cfg.RateLimit.Enabled)
		log.Printf("CORS Origins: %v", cfg.CORS.AllowOrigins)
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration (dbname, user) is incomplete (check DB_NAME, DB_USER env vars)")
	}
	if c.RateLimit.Enabled {
		if !c.Redis.Configured() {
			return fmt.Errorf("rate limiting requires Redis (check REDIS_ADDR env var)")
		}
		if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowSec <= 0 {
			return fmt.Errorf("rate limit max_requests and window_sec must be positive")
		}
	}
	return nil
}

// splitList разбивает элементы вида "a,b" и убирает пустые
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
