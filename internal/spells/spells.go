package spells

import (
	"fmt"

	"dndadventure/internal/character"
	"dndadventure/internal/dice"
)

// Spell is a castable effect. Damage dice with a negative Die value are not
// a thing; healing spells set Healing instead.
type Spell struct {
	Name      string
	Level     int
	DamageDie int
	DiceCount int
	Healing   bool
}

func (s Spell) String() string {
	kind := "damage"
	if s.Healing {
		kind = "healing"
	}
	return fmt.Sprintf("%s (level %d, %dd%d %s)", s.Name, s.Level, s.DiceCount, s.DamageDie, kind)
}

// Cast resolves the spell against the target and returns the amount dealt
// (positive) or healed (negative), matching the sign convention the
// narrator uses.
func (s Spell) Cast(r *dice.Roller, caster, target *character.Character) int {
	amount := r.Roll(s.DamageDie, s.DiceCount).Total
	if s.Healing {
		target.Heal(amount)
		return -amount
	}
	target.ApplyDamage(amount)
	return amount
}

type SpellBook struct {
	spells []Spell
}

func (b *SpellBook) Add(s Spell) {
	b.spells = append(b.spells, s)
}

// Available returns the spells castable at or below the given spell level,
// in the order they were added.
func (b *SpellBook) Available(level int) []Spell {
	var out []Spell
	for _, s := range b.spells {
		if s.Level <= level {
			out = append(out, s)
		}
	}
	return out
}

// Default is the starting spellbook every new character carries.
func Default() *SpellBook {
	b := &SpellBook{}
	b.Add(Spell{Name: "Fire Bolt", Level: 0, DamageDie: 10, DiceCount: 1})
	b.Add(Spell{Name: "Cure Wounds", Level: 1, DamageDie: 8, DiceCount: 1, Healing: true})
	b.Add(Spell{Name: "Magic Missile", Level: 1, DamageDie: 4, DiceCount: 3})
	return b
}
