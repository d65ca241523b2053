// Package engine — конечный автомат калькулятора: набор операнда, один отложенный оператор,
// вычисление слева направо без приоритетов и строка для экрана.
//
// Engine не потокобезопасен: события должны приходить строго по одному.
// Ни один метод не паникует и не возвращает ошибку: неверный ввод молча игнорируется,
// деление на ноль переводит калькулятор в состояние "Error" до Clear.
package engine

import (
	"math"
	"strings"

	"lizzyKeypad/internal/domain"
)

// Evaluation — завершённое вычисление, которое получает наблюдатель.
type Evaluation struct {
	Left     string
	Right    string
	Operator domain.Operator
	Result   string // сохранённое значение, "Error" при сбое
	Display  string // Result в виде для экрана
	Err      error  // domain.ErrDivisionByZero или domain.ErrOverflow, если вычисление сорвалось
}

// Option настраивает Engine.
type Option func(*Engine)

// WithComputeHook подписывает fn на каждое завершённое вычисление.
func WithComputeHook(fn func(Evaluation)) Option {
	return func(e *Engine) {
		e.onCompute = fn
	}
}

// Engine — калькулятор. Владеет своим состоянием единолично.
type Engine struct {
	st        domain.CalculatorState
	onCompute func(Evaluation)
}

// New создаёт калькулятор в начальном состоянии ("0").
func New(opts ...Option) *Engine {
	return Restore(domain.InitialState(), opts...)
}

// Restore поднимает калькулятор из сохранённого состояния. Пустой Current означает начальное состояние.
func Restore(st domain.CalculatorState, opts ...Option) *Engine {
	if st.Current == "" && st.Previous == "" && st.Operator == domain.OpNone {
		st = domain.InitialState()
	}
	e := &Engine{st: st}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State возвращает копию состояния (для сохранения в хранилище сессий).
func (e *Engine) State() domain.CalculatorState {
	return e.st
}

// Press выполняет одно нажатие.
func (e *Engine) Press(k domain.Key) {
	switch k.Kind {
	case domain.KeyDigit:
		e.AppendDigit(k.Digit)
	case domain.KeyDecimal:
		e.AppendDecimal()
	case domain.KeyOperator:
		e.ChooseOperator(k.Operator)
	case domain.KeyEquals:
		e.Compute()
	case domain.KeyClear:
		e.Clear()
	case domain.KeyDelete:
		e.DeleteLast()
	case domain.KeyToggleSign:
		e.ToggleSign()
	case domain.KeyPercent:
		e.Percentage()
	}
}

// AppendDigit дописывает цифру d ('0'..'9') к текущему операнду.
func (e *Engine) AppendDigit(d byte) {
	if e.st.IsError() || d < '0' || d > '9' {
		return
	}
	if e.st.ResetNext {
		e.st.Current = ""
		e.st.ResetNext = false
	}
	switch e.st.Current {
	case "0":
		if d != '0' {
			e.st.Current = string(d)
		}
		return
	case "-0":
		if d != '0' {
			e.st.Current = "-" + string(d)
		}
		return
	}
	if len(e.st.Current) < maxInputLen {
		e.st.Current += string(d)
	}
}

// AppendDecimal ставит десятичную точку, если её ещё нет.
func (e *Engine) AppendDecimal() {
	if e.st.IsError() {
		return
	}
	if e.st.ResetNext {
		e.st.Current = "0"
		e.st.ResetNext = false
	}
	if strings.Contains(e.st.Current, ".") {
		return
	}
	e.st.Current += "."
}

// ChooseOperator запоминает текущий операнд как левый и ждёт правый.
// Если оператор уже был выбран, сначала сворачивает цепочку через Compute.
func (e *Engine) ChooseOperator(op domain.Operator) {
	if e.st.IsError() || e.st.Current == "" || !op.Valid() {
		return
	}
	if e.st.Previous != "" {
		e.Compute()
		if e.st.IsError() {
			return
		}
	}
	e.st.Previous = e.st.Current
	e.st.Operator = op
	e.st.ResetNext = true
}

// Compute применяет отложенный оператор: Previous op Current.
func (e *Engine) Compute() {
	if e.st.IsError() || !e.st.Operator.Valid() {
		return
	}
	prev, ok := parseOperand(e.st.Previous)
	if !ok {
		return
	}
	cur, ok := parseOperand(e.st.Current)
	if !ok {
		return
	}

	var result float64
	switch e.st.Operator {
	case domain.OpAdd:
		result = prev + cur
	case domain.OpSub:
		result = prev - cur
	case domain.OpMul:
		result = prev * cur
	case domain.OpDiv:
		if cur == 0 {
			e.fail(domain.ErrDivisionByZero)
			return
		}
		result = prev / cur
	}

	result = roundResult(result)
	if math.IsInf(result, 0) || math.IsNaN(result) {
		e.fail(domain.ErrOverflow)
		return
	}
	out := formatNumber(result)
	e.notify(out, nil)
	e.st.Current = out
	e.st.Previous = ""
	e.st.Operator = domain.OpNone
	e.st.ResetNext = true
}

// fail переводит калькулятор в "Error". Previous и Operator остаются как были.
func (e *Engine) fail(cause error) {
	e.notify(domain.ErrorDisplay, cause)
	e.st.Current = domain.ErrorDisplay
}

func (e *Engine) notify(result string, cause error) {
	if e.onCompute == nil {
		return
	}
	e.onCompute(Evaluation{
		Left:     e.st.Previous,
		Right:    e.st.Current,
		Operator: e.st.Operator,
		Result:   result,
		Display:  formatDisplay(result),
		Err:      cause,
	})
}

// ToggleSign меняет знак текущего операнда.
func (e *Engine) ToggleSign() {
	if e.st.Current == "0" || e.st.IsError() || e.st.Current == "" {
		return
	}
	if strings.HasPrefix(e.st.Current, "-") {
		e.st.Current = e.st.Current[1:]
	} else {
		e.st.Current = "-" + e.st.Current
	}
}

// Percentage делит текущий операнд на 100.
func (e *Engine) Percentage() {
	if e.st.Current == "0" || e.st.IsError() {
		return
	}
	v, ok := parseOperand(e.st.Current)
	if !ok {
		return
	}
	e.st.Current = formatNumber(v / 100)
}

// Clear возвращает калькулятор в начальное состояние. Единственный выход из "Error".
func (e *Engine) Clear() {
	e.st = domain.InitialState()
}

// DeleteLast стирает последний символ. Сразу после оператора или "=" сбрасывает операнд в "0".
func (e *Engine) DeleteLast() {
	if e.st.IsError() {
		return
	}
	if e.st.ResetNext {
		e.st.Current = "0"
		e.st.ResetNext = false
		return
	}
	cur := e.st.Current
	if cur != "" {
		cur = cur[:len(cur)-1]
	}
	if cur == "" || cur == "-" {
		cur = "0"
	}
	e.st.Current = cur
}

// Display — строка для экрана. Сохранённое значение не меняется.
func (e *Engine) Display() string {
	return formatDisplay(e.st.Current)
}

// Expression — левая часть отложенной операции, например "12 +". Пусто, если оператора нет.
func (e *Engine) Expression() string {
	if e.st.Operator == domain.OpNone || e.st.Previous == "" {
		return ""
	}
	return formatDisplay(e.st.Previous) + " " + string(e.st.Operator)
}

// Screen собирает состояние экрана для сессии id.
func (e *Engine) Screen(id string) domain.Screen {
	return domain.Screen{
		SessionID:  id,
		Display:    e.Display(),
		Expression: e.Expression(),
		Error:      e.st.IsError(),
	}
}
