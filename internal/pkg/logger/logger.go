package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: CALCULATOR_LOG_LEVEL, CALCULATOR_LOG_FILE.
type Config struct {
	Level string `envconfig:"LEVEL" default:"info"`
	// File — файл логов в дополнение к stderr. Пустая строка — только stderr.
	File string `envconfig:"FILE" default:"app.log"`
}

// logWriter открывает файл логов и возвращает writer в файл + stderr (и в файл, и в консоль).
// При ошибке открытия файла возвращает только stderr. В stdout не пишем никогда: там MCP-протокол.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает логгер с текстовым выводом по конфигу.
func New(cfg Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(logWriter(cfg.File), &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}))
}

// ParseLevel переводит имя уровня (debug, info, warn, error) в slog.Level. Неизвестное — info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
