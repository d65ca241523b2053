package domain

import (
	"errors"
	"time"
)

var (
	// ErrUnknownOperation возвращается, когда операция не поддерживается.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrUnknownKey — клавиша, которую калькулятор не понимает.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidOperand — операнд не является десятичным числом или слишком длинный.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrSessionNotFound — сессии нет в хранилище (не создана или истёк TTL).
	ErrSessionNotFound = errors.New("session not found")

	// ErrDivisionByZero и ErrOverflow — причины, по которым вычисление закончилось "Error".
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")
)

// Operator — бинарный оператор, ожидающий правый операнд. Пустая строка — оператора нет.
type Operator string

// Константы арифметических операций.
const (
	OpNone Operator = ""
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "*"
	OpDiv  Operator = "/"
)

// Valid сообщает, является ли o одним из четырёх арифметических операторов.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// ErrorDisplay — значение Current после деления на ноль или переполнения.
const ErrorDisplay = "Error"

// CalculatorState — состояние калькулятора. В JSON хранится в Redis между нажатиями.
type CalculatorState struct {
	Current   string   `json:"current"`
	Previous  string   `json:"previous,omitempty"`
	Operator  Operator `json:"operator,omitempty"`
	ResetNext bool     `json:"reset_next,omitempty"`
}

// InitialState — состояние только что включённого калькулятора.
func InitialState() CalculatorState {
	return CalculatorState{Current: "0"}
}

// IsError сообщает, что калькулятор в состоянии ошибки (ждёт Clear).
func (s CalculatorState) IsError() bool {
	return s.Current == ErrorDisplay
}

// Screen — то, что видит пользователь после очередного нажатия.
type Screen struct {
	SessionID  string `json:"session_id"`
	Display    string `json:"display"`
	Expression string `json:"expression,omitempty"`
	Error      bool   `json:"error"`
}

// Computation — запись об одном вычислении (нажатие "=" или цепочка операторов).
type Computation struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Number1   float64   `json:"number1"`
	Number2   float64   `json:"number2"`
	Operation string    `json:"operation"`
	Result    float64   `json:"result"`
	Display   string    `json:"display"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
