package spells

import (
	"testing"

	"dndadventure/internal/character"
	"dndadventure/internal/dice"
)

func newTestCharacter(name string, hp int) *character.Character {
	c := character.New(name, "Human", hp)
	c.MaxHP = hp
	c.HP = hp
	return c
}

func TestDamageSpellHurtsTarget(t *testing.T) {
	caster := newTestCharacter("Elrond", 10)
	target := newTestCharacter("Goblin", 20)

	sp := Spell{Name: "Fire Bolt", Level: 0, DamageDie: 10, DiceCount: 1}
	amount := sp.Cast(dice.NewSeededRoller(5), caster, target)

	if amount < 1 || amount > 10 {
		t.Fatalf("damage = %d, want 1d10 range", amount)
	}
	if target.HP != 20-amount {
		t.Errorf("target HP = %d, want %d", target.HP, 20-amount)
	}
	if caster.HP != 10 {
		t.Errorf("caster HP = %d, want untouched", caster.HP)
	}
}

func TestHealingSpellReturnsNegativeAmount(t *testing.T) {
	caster := newTestCharacter("Elrond", 20)
	caster.HP = 5

	sp := Spell{Name: "Cure Wounds", Level: 1, DamageDie: 8, DiceCount: 1, Healing: true}
	amount := sp.Cast(dice.NewSeededRoller(5), caster, caster)

	if amount >= 0 {
		t.Fatalf("healing cast returned %d, want negative", amount)
	}
	if want := 5 - amount; caster.HP != want && caster.HP != caster.MaxHP {
		t.Errorf("caster HP = %d, want %d", caster.HP, want)
	}
}

func TestHealingIsCappedAtMaxHP(t *testing.T) {
	target := newTestCharacter("Elrond", 10)
	target.HP = 9

	sp := Spell{Name: "Cure Wounds", Level: 1, DamageDie: 8, DiceCount: 1, Healing: true}
	sp.Cast(dice.NewSeededRoller(5), target, target)

	if target.HP != target.MaxHP {
		t.Errorf("HP = %d, want cap at %d", target.HP, target.MaxHP)
	}
}

func TestSpellBookFiltersByLevel(t *testing.T) {
	book := Default()

	cantrips := book.Available(0)
	if len(cantrips) != 1 || cantrips[0].Name != "Fire Bolt" {
		t.Errorf("level 0 spells = %v, want only Fire Bolt", cantrips)
	}

	levelOne := book.Available(1)
	if len(levelOne) != 3 {
		t.Errorf("level 1 spells = %d, want 3", len(levelOne))
	}
}

func TestSpellString(t *testing.T) {
	sp := Spell{Name: "Fire Bolt", Level: 0, DamageDie: 10, DiceCount: 1}
	if got, want := sp.String(), "Fire Bolt (level 0, 1d10 damage)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	heal := Spell{Name: "Cure Wounds", Level: 1, DamageDie: 8, DiceCount: 1, Healing: true}
	if got, want := heal.String(), "Cure Wounds (level 1, 1d8 healing)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
