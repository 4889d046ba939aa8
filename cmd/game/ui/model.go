package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"dndadventure/internal/combat"
	"dndadventure/internal/debug"
	"dndadventure/internal/dice"
	"dndadventure/internal/narrator"
	"dndadventure/internal/spells"
)

// phase tracks which prompt the game is currently showing.
type phase int

const (
	phaseName phase = iota
	phaseRace
	phaseMenu
	phaseCombat
	phaseSpell
)

// Message prefixes the view styles specially.
const (
	narrationPrefix = "🎲 "
	warnPrefix      = "⚠️  "
	loadingSentinel = "LOADING_ANIMATION"
)

// Warnings collects narrator warning lines emitted from command goroutines
// so the update loop can fold them into the message log.
type Warnings struct {
	mu    sync.Mutex
	lines []string
}

func NewWarnings() *Warnings {
	return &Warnings{}
}

func (w *Warnings) Add(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append(w.lines, msg)
}

func (w *Warnings) Drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.lines
	w.lines = nil
	return out
}

type Model struct {
	phase    phase
	messages []string
	input    string
	width    int
	height   int

	loading        bool
	animationFrame int

	dm       *narrator.Narrator
	warnings *Warnings
	debug    *debug.Logger
	roller   *dice.Roller

	player        *combat.Combatant
	spellbook     *spells.SpellBook
	encounter     *combat.Encounter
	pendingSpells []spells.Spell
}

func NewModel(dm *narrator.Narrator, warnings *Warnings, dbg *debug.Logger, roller *dice.Roller) Model {
	messages := []string{
		"Welcome to D&D Adventure!",
		"",
	}
	if dm.Enabled() {
		messages = append(messages, "An AI Dungeon Master will narrate your battles.", "")
	}
	messages = append(messages, "Enter your character's name:")

	return Model{
		phase:    phaseName,
		messages: messages,
		dm:       dm,
		warnings: warnings,
		debug:    dbg,
		roller:   roller,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
