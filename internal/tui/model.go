// Package tui — терминальный калькулятор на bubbletea поверх локального движка.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
)

// tapeSize — сколько последних вычислений показываем под дисплеем.
const tapeSize = 5

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	displayStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(24).Align(lipgloss.Right)
	errorStyle      = displayStyle.Foreground(lipgloss.Color("9"))
	expressionStyle = lipgloss.NewStyle().Faint(true).Width(26).Align(lipgloss.Right)
	tapeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
)

// tuiKeys — клавиши терминала, которых нет среди общих имён клавиш.
var tuiKeys = map[string]string{
	"esc": "escape",
	"n":   "negate",
}

// Model — состояние программы: движок и лента последних вычислений.
type Model struct {
	engine *engine.Engine
	tape   *[]engine.Evaluation
}

// New создаёт модель с выключенным в ноль калькулятором.
func New() Model {
	tape := make([]engine.Evaluation, 0, tapeSize)
	m := Model{tape: &tape}
	m.engine = engine.New(engine.WithComputeHook(m.record))
	return m
}

func (m Model) record(ev engine.Evaluation) {
	t := append(*m.tape, ev)
	if len(t) > tapeSize {
		t = t[len(t)-tapeSize:]
	}
	*m.tape = t
}

// Init реализует tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update реализует tea.Model: каждое нажатие превращается в клавишу калькулятора.
// Неизвестные клавиши игнорируются.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	name := km.String()
	switch name {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	if alias, ok := tuiKeys[name]; ok {
		name = alias
	}
	if k, err := domain.ParseKey(name); err == nil {
		m.engine.Press(k)
	}
	return m, nil
}

// View реализует tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("lizzy keypad"))
	b.WriteString("\n")
	b.WriteString(expressionStyle.Render(m.engine.Expression()))
	b.WriteString("\n")

	style := displayStyle
	if m.engine.State().IsError() {
		style = errorStyle
	}
	b.WriteString(style.Render(m.engine.Display()))
	b.WriteString("\n")

	for _, ev := range *m.tape {
		b.WriteString(tapeStyle.Render(ev.Left + " " + string(ev.Operator) + " " + ev.Right + " = " + ev.Result))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("0-9 . + - * / = enter | backspace del | c/esc clear | n ± | % | q quit"))
	b.WriteString("\n")
	return b.String()
}
