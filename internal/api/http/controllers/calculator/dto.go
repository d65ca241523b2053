package calculator

import (
	"time"

	"lizzyKeypad/internal/domain"
)

// PressRequest — нажатия клавиш (для POST /api/v1/sessions/:id/keys).
type PressRequest struct {
	Keys []string `json:"keys" binding:"required,min=1"`
}

// ScreenResponse — экран калькулятора.
type ScreenResponse struct {
	SessionID  string `json:"session_id"`
	Display    string `json:"display"`
	Expression string `json:"expression,omitempty"`
	Error      bool   `json:"error"`
}

func toScreenResponse(s domain.Screen) ScreenResponse {
	return ScreenResponse{
		SessionID:  s.SessionID,
		Display:    s.Display,
		Expression: s.Expression,
		Error:      s.Error,
	}
}

// EvaluateRequest — разовое вычисление (для POST /api/v1/evaluate). Числа строками,
// как их набрали бы на клавиатуре.
type EvaluateRequest struct {
	Number1   string `json:"number1" binding:"required"`
	Number2   string `json:"number2" binding:"required"`
	Operation string `json:"operation" binding:"required"`
}

// EvaluateResponse — ответ с результатом.
type EvaluateResponse struct {
	Result  float64 `json:"result"`
	Display string  `json:"display"`
	Message string  `json:"message,omitempty"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HistoryItem — одна запись журнала (для GET /api/v1/history).
type HistoryItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	Number1   float64   `json:"number1"`
	Number2   float64   `json:"number2"`
	Operation string    `json:"operation"`
	Result    float64   `json:"result"`
	Display   string    `json:"display"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse — ответ со списком вычислений.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
