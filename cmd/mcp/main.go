// Команда mcp — MCP-сервер калькулятора поверх stdio. Сессии живут в памяти процесса.
package main

import (
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"lizzyKeypad/internal/api/mcp"
	"lizzyKeypad/internal/infrastructure/memory"
	"lizzyKeypad/internal/pkg/logger"
	"lizzyKeypad/internal/usecase/calculator"
)

const version = "1.0.0"

func main() {
	// stdout занят протоколом, поэтому логи только в файл и stderr
	log := logger.New(logger.Config{Level: os.Getenv("CALCULATOR_LOG_LEVEL"), File: "mcp.log"})
	slog.SetDefault(log)

	uc := calculator.New(memory.NewSessionStore(0), nil, nil, nil, log)
	s := mcp.New(uc, log).NewServer("lizzy-keypad", version)

	log.Info("mcp server started", "transport", "stdio")
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}
