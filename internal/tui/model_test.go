package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		got, ok := next.(Model)
		require.True(t, ok, "Update returned %T, want Model", next)
		m = got
	}
	return m
}

func typeKeys(t *testing.T, m Model, input string) Model {
	t.Helper()
	for _, r := range input {
		m = apply(t, m, runeKey(string(r)))
	}
	return m
}

func TestModel_Arithmetic(t *testing.T) {
	m := typeKeys(t, New(), "12+3")
	assert.Equal(t, "3", m.engine.Display())
	assert.Equal(t, "12 +", m.engine.Expression())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "15", m.engine.Display())
	assert.Contains(t, m.View(), "12 + 3 = 15")
}

func TestModel_EditingKeys(t *testing.T) {
	m := typeKeys(t, New(), "123")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.engine.Display())

	m = typeKeys(t, m, "n")
	assert.Equal(t, "-12", m.engine.Display())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.engine.Display())
}

func TestModel_DivisionByZero(t *testing.T) {
	m := typeKeys(t, New(), "5/0=")
	assert.Equal(t, "Error", m.engine.Display())
	assert.Contains(t, m.View(), "Error")

	// ошибка снимается только сбросом
	m = typeKeys(t, m, "7")
	assert.Equal(t, "Error", m.engine.Display())
	m = typeKeys(t, m, "c7")
	assert.Equal(t, "7", m.engine.Display())
}

func TestModel_TapeKeepsLastComputations(t *testing.T) {
	m := New()
	for i := 0; i < tapeSize+2; i++ {
		m = typeKeys(t, m, "1+1=")
	}
	assert.Len(t, *m.tape, tapeSize)
}

func TestModel_UnknownKeysIgnored(t *testing.T) {
	m := typeKeys(t, New(), "7z?")
	assert.Equal(t, "7", m.engine.Display())
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := New().Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
