package weapons

import (
	"fmt"

	"dndadventure/internal/dice"
)

type Weapon struct {
	Name      string
	DamageDie int
	DiceCount int
}

func (w Weapon) String() string {
	return fmt.Sprintf("%s (%dd%d)", w.Name, w.DiceCount, w.DamageDie)
}

// Damage rolls the weapon's damage dice.
func (w Weapon) Damage(r *dice.Roller) int {
	return r.Roll(w.DamageDie, w.DiceCount).Total
}

// ByName is the weapon registry.
var ByName = map[string]Weapon{
	"Dagger":     {Name: "Dagger", DamageDie: 4, DiceCount: 1},
	"Shortsword": {Name: "Shortsword", DamageDie: 6, DiceCount: 1},
	"Longsword":  {Name: "Longsword", DamageDie: 8, DiceCount: 1},
	"Battleaxe":  {Name: "Battleaxe", DamageDie: 8, DiceCount: 1},
	"Greatsword": {Name: "Greatsword", DamageDie: 6, DiceCount: 2},
	"Greataxe":   {Name: "Greataxe", DamageDie: 12, DiceCount: 1},
	"Club":       {Name: "Club", DamageDie: 4, DiceCount: 1},
	"Mace":       {Name: "Mace", DamageDie: 6, DiceCount: 1},
	"Warhammer":  {Name: "Warhammer", DamageDie: 8, DiceCount: 1},
}

// Lookup returns a weapon from the registry, falling back to an improvised
// d4 so a bad name never leaves a combatant without damage dice.
func Lookup(name string) Weapon {
	if w, ok := ByName[name]; ok {
		return w
	}
	return Weapon{Name: name, DamageDie: 4, DiceCount: 1}
}
