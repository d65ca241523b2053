// Команда calculator — сервис калькулятора с сессиями: HTTP (/api/v1) и gRPC.
package main

import (
	"flag"
	"log/slog"
	"os"

	"lizzyKeypad/internal/app"
)

func main() {
	envFile := flag.String("env", "", "путь к .env (по умолчанию $CALCULATOR_ENV_FILE или ./.env)")
	check := flag.Bool("check", false, "проверить конфиг и выйти")
	flag.Parse()

	if *envFile == "" {
		*envFile = os.Getenv("CALCULATOR_ENV_FILE")
	}
	cfg, err := app.LoadCfgFrom(*envFile)
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	if *check {
		slog.Info("config ok",
			"sessions", cfg.Sessions.Backend,
			"session_ttl", cfg.Sessions.TTL,
			"history", cfg.History.Backend,
			"grpc", cfg.Grpc.Addr(),
			"kafka", cfg.Kafka.Enabled,
			"clickhouse", cfg.ClickHouse.Enabled,
		)
		return
	}

	if err := app.New(cfg).Run(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
