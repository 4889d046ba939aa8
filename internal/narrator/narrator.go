// Package narrator turns combat events into short AI-generated prose.
//
// The narrator is a thin facade over the LLM service: one method per
// narration event, each issuing at most one completion call. Absence (an
// empty string) is always a valid result — when narration is disabled or a
// call fails, the game simply plays on without flavor text.
package narrator

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dndadventure/internal/debug"
	"dndadventure/internal/llm"
	"dndadventure/internal/logging"
)

// Completer is the slice of the LLM service the narrator needs. Tests
// substitute fakes with call counters.
type Completer interface {
	CompleteText(ctx context.Context, req llm.TextCompletionRequest) (string, error)
}

// Narration event kinds, used for logging and tracing.
const (
	EventCombatStart  = "combat_start"
	EventActionChoice = "action_choice"
	EventAttack       = "attack"
	EventSpellCast    = "spell_cast"
	EventVictory      = "victory"
	EventDefeat       = "defeat"
)

// Config fixes the narrator's mode for the whole session.
type Config struct {
	Enabled bool
	Model   string
}

type Option func(*Narrator)

// WithWarnFunc redirects failure warnings, e.g. into the TUI message log.
func WithWarnFunc(fn func(string)) Option {
	return func(n *Narrator) { n.warn = fn }
}

// WithLogger records every narration call in the narration database.
func WithLogger(log *logging.NarrationLogger) Option {
	return func(n *Narrator) { n.log = log }
}

func WithDebug(d *debug.Logger) Option {
	return func(n *Narrator) { n.debug = d }
}

// WithSessionID tags logged narrations and LLM spans with the play session.
func WithSessionID(id string) Option {
	return func(n *Narrator) { n.session = id }
}

// Narrator is either enabled or disabled for its whole lifetime. Disabled
// narrators return absence from every method without touching the network.
type Narrator struct {
	enabled bool
	model   string
	llm     Completer
	log     *logging.NarrationLogger
	debug   *debug.Logger
	warn    func(string)
	session string
}

// New builds a narrator. It comes up disabled when the config says so or no
// completer is available (no usable API key).
func New(cfg Config, completer Completer, opts ...Option) *Narrator {
	n := &Narrator{
		enabled: cfg.Enabled && completer != nil,
		model:   cfg.Model,
		llm:     completer,
		warn: func(msg string) {
			fmt.Fprintln(os.Stderr, "⚠️  "+msg)
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Narrator) Enabled() bool {
	return n.enabled
}

// CombatStart describes the opening of an encounter.
func (n *Narrator) CombatStart(ctx context.Context, playerName, enemyName string) string {
	return n.narrate(ctx, EventCombatStart, combatStartPrompt(playerName, enemyName), 150, 0.8)
}

// ActionChoice describes the player's decision point at the top of a turn.
func (n *Narrator) ActionChoice(ctx context.Context, playerName string, actions []string) string {
	return n.narrate(ctx, EventActionChoice, actionChoicePrompt(playerName, actions), 50, 0.7)
}

// Attack describes a weapon strike, with a different tone for hit and miss.
func (n *Narrator) Attack(ctx context.Context, attacker, defender, weapon string, damage int, hit bool) string {
	return n.narrate(ctx, EventAttack, attackPrompt(attacker, defender, weapon, damage, hit), 100, 0.8)
}

// SpellCast describes a spell being cast. Negative damage means healing.
func (n *Narrator) SpellCast(ctx context.Context, caster, target, spell string, damage int) string {
	return n.narrate(ctx, EventSpellCast, spellCastPrompt(caster, target, spell, damage), 100, 0.8)
}

// Victory describes the player winning the encounter.
func (n *Narrator) Victory(ctx context.Context, playerName, enemyName string) string {
	return n.narrate(ctx, EventVictory, victoryPrompt(playerName, enemyName), 100, 0.8)
}

// Defeat describes the player going down.
func (n *Narrator) Defeat(ctx context.Context, playerName, enemyName string) string {
	return n.narrate(ctx, EventDefeat, defeatPrompt(playerName, enemyName), 100, 0.8)
}

// narrate runs a single narration call. It never returns an error: any
// failure is reduced to a warning line plus absence.
func (n *Narrator) narrate(ctx context.Context, event, prompt string, maxTokens int, temperature float64) string {
	if !n.enabled {
		return ""
	}

	if n.session != "" {
		ctx = llm.WithSessionID(ctx, n.session)
	}

	start := time.Now()
	text, err := n.llm.CompleteText(ctx, llm.TextCompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
		MaxTokens:    maxTokens,
		Temperature:  temperature,
		Model:        n.model,
	})
	elapsed := time.Since(start)

	if err != nil {
		n.warn(fmt.Sprintf("DM narration error: %v", err))
		n.debug.Printf("narration %s failed after %v: %v", event, elapsed, err)
		n.record(event, prompt, "", maxTokens, elapsed, err)
		return ""
	}

	text = strings.TrimSpace(text)
	n.debug.Printf("narration %s: %d chars in %v", event, len(text), elapsed)
	n.record(event, prompt, text, maxTokens, elapsed, nil)

	// An empty completion is indistinguishable from "no narration" for the
	// caller, so it degrades to absence rather than an empty print.
	return text
}

func (n *Narrator) record(event, prompt, response string, maxTokens int, elapsed time.Duration, callErr error) {
	if n.log == nil {
		return
	}

	metadata := logging.NarrationMetadata{
		Model:        n.model,
		MaxTokens:    maxTokens,
		ResponseTime: elapsed,
	}
	if callErr != nil {
		msg := callErr.Error()
		metadata.Error = &msg
	}

	if err := n.log.Log(n.session, event, prompt, response, metadata); err != nil {
		n.debug.Printf("failed to log narration: %v", err)
	}
}
