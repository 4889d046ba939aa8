// D&D Adventure with an AI Dungeon Master
// A terminal D&D-style game where an optional AI narrator turns combat
// events into short prose. Built with Bubble Tea; narration goes through
// OpenAI chat completions and degrades to silence when unconfigured.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dndadventure/internal/config"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "review", "--review":
			runReviewMode()
			return
		}
	}

	cfg := config.Load()
	enableNarration := promptNarrationChoice(cfg)

	model, cleanup, err := createApp(cfg, enableNarration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
	}
}

// promptNarrationChoice asks once, before the TUI starts, whether the AI
// Dungeon Master should narrate this session. The answer and credential
// availability together fix the narrator's mode for the whole session.
func promptNarrationChoice(cfg config.Config) bool {
	fmt.Println("Welcome to D&D Adventure!")
	fmt.Println()
	fmt.Println("1. Enable AI narration")
	fmt.Println("2. Play without narration")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter choice (1-2): ")
		if !scanner.Scan() {
			return false
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			if !cfg.NarrationConfigured() {
				fmt.Println()
				fmt.Println("⚠️  Warning: OpenAI API key not configured. DM narration disabled.")
				fmt.Println("Add your API key to the .env file to enable narration.")
				fmt.Println()
				return false
			}
			return true
		case "2":
			return false
		default:
			fmt.Println("Please enter 1 or 2.")
		}
	}
}
