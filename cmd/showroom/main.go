// cmd/showroom/main.go
//
// This is the entry point for the showroom TUI.
// When you run `showroom` from any directory, this is what executes.
//
// Flow:
// 1. Initialize the .showroom folder (config.yaml, logs/)
// 2. Build the page and attach its behaviors
// 3. Run the TUI until the user quits

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nestorservice/asapfoodtrailer/internal/config"
	"github.com/Nestorservice/asapfoodtrailer/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitShowroomDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .showroom directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading showroom: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
