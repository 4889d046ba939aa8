package narrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dndadventure/internal/llm"
)

type fakeCompleter struct {
	calls    int
	response string
	err      error
	lastReq  llm.TextCompletionRequest
}

func (f *fakeCompleter) CompleteText(ctx context.Context, req llm.TextCompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func allEvents(n *Narrator) map[string]string {
	ctx := context.Background()
	return map[string]string{
		EventCombatStart:  n.CombatStart(ctx, "Aragorn", "Goblin"),
		EventActionChoice: n.ActionChoice(ctx, "Aragorn", []string{"attack", "cast a spell", "run away"}),
		EventAttack:       n.Attack(ctx, "Aragorn", "Goblin", "sword", 8, true),
		EventSpellCast:    n.SpellCast(ctx, "Aragorn", "Goblin", "Fire Bolt", 6),
		EventVictory:      n.Victory(ctx, "Aragorn", "Goblin"),
		EventDefeat:       n.Defeat(ctx, "Aragorn", "Goblin"),
	}
}

func TestDisabledNarratorSkipsAllCalls(t *testing.T) {
	fake := &fakeCompleter{response: "should never be seen"}
	n := New(Config{Enabled: false, Model: "gpt-4o-mini"}, fake)

	if n.Enabled() {
		t.Fatal("narrator should be disabled")
	}

	for event, text := range allEvents(n) {
		if text != "" {
			t.Errorf("%s: disabled narrator returned %q, want absence", event, text)
		}
	}
	if fake.calls != 0 {
		t.Errorf("disabled narrator made %d API calls, want 0", fake.calls)
	}
}

func TestNarratorWithoutCompleterIsDisabled(t *testing.T) {
	n := New(Config{Enabled: true, Model: "gpt-4o-mini"}, nil)

	if n.Enabled() {
		t.Fatal("narrator without a completer should be disabled")
	}
	if text := n.CombatStart(context.Background(), "Aragorn", "Goblin"); text != "" {
		t.Errorf("got %q, want absence", text)
	}
}

func TestSuccessfulNarrationIsTrimmed(t *testing.T) {
	fake := &fakeCompleter{response: "\n  A goblin leaps from the shadows!  \n"}
	n := New(Config{Enabled: true, Model: "gpt-4o-mini"}, fake)

	got := n.CombatStart(context.Background(), "Aragorn", "Goblin")
	if got != "A goblin leaps from the shadows!" {
		t.Errorf("got %q, want trimmed narration", got)
	}
	if fake.calls != 1 {
		t.Errorf("made %d API calls, want exactly 1", fake.calls)
	}
}

func TestCallFailureDegradesToAbsence(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("request timed out")}
	var warnings []string
	n := New(Config{Enabled: true, Model: "gpt-4o-mini"}, fake,
		WithWarnFunc(func(msg string) { warnings = append(warnings, msg) }))

	got := n.Victory(context.Background(), "Aragorn", "Goblin")
	if got != "" {
		t.Errorf("got %q, want absence on call failure", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("emitted %d warnings, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0], "request timed out") {
		t.Errorf("warning %q does not mention the underlying error", warnings[0])
	}
}

func TestEveryEventDegradesWithoutRaising(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("quota exceeded")}
	var warnings []string
	n := New(Config{Enabled: true, Model: "gpt-4o-mini"}, fake,
		WithWarnFunc(func(msg string) { warnings = append(warnings, msg) }))

	for event, text := range allEvents(n) {
		if text != "" {
			t.Errorf("%s: got %q, want absence", event, text)
		}
	}
	if fake.calls != 6 {
		t.Errorf("made %d API calls, want 6", fake.calls)
	}
	if len(warnings) != 6 {
		t.Errorf("emitted %d warnings, want one per failed call", len(warnings))
	}
}

func TestEmptyCompletionIsAbsence(t *testing.T) {
	fake := &fakeCompleter{response: "   \n"}
	var warnings []string
	n := New(Config{Enabled: true, Model: "gpt-4o-mini"}, fake,
		WithWarnFunc(func(msg string) { warnings = append(warnings, msg) }))

	got := n.Attack(context.Background(), "Aragorn", "Goblin", "sword", 0, false)
	if got != "" {
		t.Errorf("got %q, want absence for a whitespace-only completion", got)
	}
	// An empty completion is not an error, just nothing to print.
	if len(warnings) != 0 {
		t.Errorf("emitted %d warnings, want 0", len(warnings))
	}
}

func TestRequestShapePerEvent(t *testing.T) {
	fake := &fakeCompleter{response: "narration"}
	n := New(Config{Enabled: true, Model: "gpt-4o-mini"}, fake)
	ctx := context.Background()

	n.CombatStart(ctx, "Aragorn", "Goblin")
	if fake.lastReq.MaxTokens != 150 {
		t.Errorf("combat start max tokens = %d, want 150", fake.lastReq.MaxTokens)
	}
	if !strings.Contains(fake.lastReq.UserPrompt, "Aragorn") || !strings.Contains(fake.lastReq.UserPrompt, "Goblin") {
		t.Errorf("combat start prompt missing names: %q", fake.lastReq.UserPrompt)
	}

	n.ActionChoice(ctx, "Aragorn", []string{"attack", "run away"})
	if fake.lastReq.MaxTokens != 50 {
		t.Errorf("action choice max tokens = %d, want 50", fake.lastReq.MaxTokens)
	}
	if !strings.Contains(fake.lastReq.UserPrompt, "attack or run away") {
		t.Errorf("action choice prompt missing joined actions: %q", fake.lastReq.UserPrompt)
	}

	n.Attack(ctx, "Aragorn", "Goblin", "sword", 8, true)
	if !strings.Contains(fake.lastReq.UserPrompt, "dealt 8 damage") {
		t.Errorf("hit prompt should mention damage: %q", fake.lastReq.UserPrompt)
	}

	n.Attack(ctx, "Aragorn", "Goblin", "sword", 0, false)
	if !strings.Contains(fake.lastReq.UserPrompt, "missed") {
		t.Errorf("miss prompt should mention the miss: %q", fake.lastReq.UserPrompt)
	}

	n.SpellCast(ctx, "Elrond", "Elrond", "Cure Wounds", -7)
	if !strings.Contains(fake.lastReq.UserPrompt, "healing for 7 HP") {
		t.Errorf("healing prompt wrong: %q", fake.lastReq.UserPrompt)
	}

	n.SpellCast(ctx, "Elrond", "Goblin", "Mage Hand", 0)
	if !strings.Contains(fake.lastReq.UserPrompt, "magical energy") {
		t.Errorf("zero-damage prompt wrong: %q", fake.lastReq.UserPrompt)
	}

	if fake.lastReq.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q, want configured model", fake.lastReq.Model)
	}
}

func TestJoinActions(t *testing.T) {
	cases := []struct {
		actions []string
		want    string
	}{
		{nil, "do nothing"},
		{[]string{"attack"}, "attack"},
		{[]string{"attack", "run away"}, "attack or run away"},
		{[]string{"attack", "cast a spell", "run away"}, "attack, cast a spell, or run away"},
	}

	for _, tc := range cases {
		if got := joinActions(tc.actions); got != tc.want {
			t.Errorf("joinActions(%v) = %q, want %q", tc.actions, got, tc.want)
		}
	}
}
