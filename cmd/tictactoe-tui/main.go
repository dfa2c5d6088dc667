package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaminalder/tictactoe-time-travel/internal/tui"
)

// main - is the entry point of the terminal frontend.
func main() {
	if _, err := tea.NewProgram(tui.New()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}
