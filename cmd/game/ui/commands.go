package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// step tells the update loop what to do once a narration call finishes.
// Narration runs as a command so the spinner animates while the API call is
// in flight; the combat sequencing continues from the step carried here.
type step int

const (
	stepNone step = iota
	stepFirstTurn
	stepActionMenu
	stepPlayerTurn
	stepEnemyTurn
	stepVictory
	stepDefeat
	stepEncounterEnd
)

type narrationMsg struct {
	text string
	next step
}

type animationTickMsg struct{}

func animationTimer() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// narrate wraps a narrator call in a command. The narrator never errors;
// absence comes back as an empty string and the game moves on.
func narrate(fn func(context.Context) string, next step) tea.Cmd {
	return func() tea.Msg {
		return narrationMsg{text: fn(context.Background()), next: next}
	}
}

// startNarration pushes the loading spinner and kicks off a narration call.
func (m *Model) startNarration(fn func(context.Context) string, next step) tea.Cmd {
	m.loading = true
	m.animationFrame = 0
	m.messages = append(m.messages, loadingSentinel)
	return tea.Batch(narrate(fn, next), animationTimer())
}
