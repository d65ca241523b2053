// Команда keypad — калькулятор в терминале.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lizzyKeypad/internal/tui"
)

func main() {
	if _, err := tea.NewProgram(tui.New()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "keypad:", err)
		os.Exit(1)
	}
}
