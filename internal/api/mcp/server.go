package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

// Tools — инструменты калькулятора для MCP-агентов. Каждый инструмент возвращает JSON экрана
// или вычисления; ошибки ввода отдаются как tool error, а не как ошибка протокола.
type Tools struct {
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// New создаёт набор инструментов поверх use case.
func New(uc ports.IKeypadUseCase, log *slog.Logger) *Tools {
	if log == nil {
		log = slog.Default()
	}
	return &Tools{uc: uc, log: log}
}

// NewServer собирает MCP-сервер и регистрирует на нём все инструменты.
func (t *Tools) NewServer(name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	t.Register(s)
	return s
}

// Register добавляет инструменты калькулятора на сервер.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("calculator_new_session",
		mcp.WithDescription("Turn on a new calculator and return its screen with the session id"),
	), t.newSession)

	s.AddTool(mcp.NewTool("calculator_press",
		mcp.WithDescription("Press keys on a calculator in order: digits, '.', '+', '-', '*', '/', '=', 'C', 'delete', 'negate', '%'"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session id returned by calculator_new_session"),
		),
		mcp.WithArray("keys",
			mcp.Required(),
			mcp.Description("Keys to press, e.g. [\"1\", \"2\", \"+\", \"3\", \"=\"]"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), t.press)

	s.AddTool(mcp.NewTool("calculator_screen",
		mcp.WithDescription("Read the current display and pending expression of a calculator"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session id returned by calculator_new_session"),
		),
	), t.screen)

	s.AddTool(mcp.NewTool("calculator_evaluate",
		mcp.WithDescription("Evaluate 'number1 operation number2' on a fresh calculator"),
		mcp.WithString("number1", mcp.Required(), mcp.Description("Left operand, decimal literal")),
		mcp.WithString("number2", mcp.Required(), mcp.Description("Right operand, decimal literal")),
		mcp.WithString("operation", mcp.Required(), mcp.Description("One of + - * /")),
	), t.evaluate)
}

func (t *Tools) newSession(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sc, err := t.uc.NewSession(ctx)
	if err != nil {
		return t.fail("new session", err)
	}
	return jsonResult(sc)
}

func (t *Tools) press(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	id, ok := args["session_id"].(string)
	if !ok || id == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}
	raw, ok := args["keys"].([]any)
	if !ok || len(raw) == 0 {
		return mcp.NewToolResultError("keys must be a non-empty array of strings"), nil
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		s, ok := k.(string)
		if !ok {
			return mcp.NewToolResultError("keys must be a non-empty array of strings"), nil
		}
		keys = append(keys, s)
	}

	sc, err := t.uc.Press(ctx, id, keys...)
	if err != nil {
		return t.fail("press", err)
	}
	return jsonResult(sc)
}

func (t *Tools) screen(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := request.GetArguments()["session_id"].(string)
	if !ok || id == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}
	sc, err := t.uc.Screen(ctx, id)
	if err != nil {
		return t.fail("screen", err)
	}
	return jsonResult(sc)
}

func (t *Tools) evaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	var vals [3]string
	for i, name := range []string{"number1", "number2", "operation"} {
		v, ok := args[name].(string)
		if !ok {
			return mcp.NewToolResultError(name + " is required"), nil
		}
		vals[i] = v
	}

	c, err := t.uc.Evaluate(ctx, vals[0], vals[1], vals[2])
	if err != nil {
		return t.fail("evaluate", err)
	}
	return jsonResult(c)
}

// fail отдаёт доменные ошибки агенту как tool error. Остальное — тоже tool error, но с логом.
func (t *Tools) fail(op string, err error) (*mcp.CallToolResult, error) {
	if !isInputError(err) {
		t.log.Error(op+" failed", "error", err)
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", op, err)), nil
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, domain.ErrUnknownKey) ||
		errors.Is(err, domain.ErrUnknownOperation) ||
		errors.Is(err, domain.ErrInvalidOperand)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
