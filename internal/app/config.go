package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "lizzyKeypad/internal/api/grpc"
	"lizzyKeypad/internal/api/http"
	"lizzyKeypad/internal/infrastructure/click"
	"lizzyKeypad/internal/infrastructure/kafka"
	"lizzyKeypad/internal/infrastructure/mongo"
	"lizzyKeypad/internal/infrastructure/pg"
	"lizzyKeypad/internal/infrastructure/redis"
	"lizzyKeypad/internal/pkg/logger"
)

const AppName = "CALCULATOR"

// envFileVar — переменная с путём к .env.
const envFileVar = AppName + "_ENV_FILE"

// Бэкенды сессий и журнала.
const (
	SessionsMemory = "memory"
	SessionsRedis  = "redis"

	HistoryNone  = "none"
	HistoryPG    = "pg"
	HistoryMongo = "mongo"
)

// SessionsConfig — где хранятся состояния калькуляторов и сколько живёт сессия без нажатий.
// Переменные: CALCULATOR_SESSIONS_BACKEND, CALCULATOR_SESSIONS_TTL.
type SessionsConfig struct {
	Backend string        `envconfig:"BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"TTL" default:"30m"`
}

// HistoryConfig — куда пишется журнал вычислений. Переменная: CALCULATOR_HISTORY_BACKEND.
type HistoryConfig struct {
	Backend string `envconfig:"BACKEND" default:"pg"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	Log        logger.Config     `envconfig:"LOG"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config    `envconfig:"GRPC"`
	Sessions   SessionsConfig    `envconfig:"SESSIONS"`
	History    HistoryConfig     `envconfig:"HISTORY"`
	DB         pg.Config         `envconfig:"DB"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// Validate проверяет выбор бэкендов.
func (c Config) Validate() error {
	switch c.Sessions.Backend {
	case SessionsMemory, SessionsRedis:
	default:
		return fmt.Errorf("unknown sessions backend %q", c.Sessions.Backend)
	}
	switch c.History.Backend {
	case HistoryNone, HistoryPG, HistoryMongo:
	default:
		return fmt.Errorf("unknown history backend %q", c.History.Backend)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Путь к .env берётся из CALCULATOR_ENV_FILE, по умолчанию ./.env. Уже заданные переменные .env не перетирает.
func LoadCfg() (Config, error) {
	return LoadCfgFrom(os.Getenv(envFileVar))
}

// LoadCfgFrom — то же, что LoadCfg, но с явным путём к .env. Пустой путь — ./.env.
func LoadCfgFrom(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Info("config: .env not loaded, using environment", "file", envFile, "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
