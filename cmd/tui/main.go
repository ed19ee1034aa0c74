package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanvs/tasklink/cmd/tui/client"
	"github.com/rohanvs/tasklink/cmd/tui/ui"
)

func main() {
	baseURL := os.Getenv("TASKLINK_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	apiClient := client.New(baseURL)

	p := tea.NewProgram(
		ui.NewModel(apiClient),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
