package character

import (
	"fmt"

	"dndadventure/internal/dice"
)

// Abilities lists the six ability scores in display order.
var Abilities = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// Races maps each playable race to its ability score bonuses.
var Races = map[string]map[string]int{
	"Human":    {"STR": 1, "DEX": 1, "CON": 1, "INT": 1, "WIS": 1, "CHA": 1},
	"Elf":      {"DEX": 2},
	"Dwarf":    {"CON": 2},
	"Halfling": {"DEX": 2, "CHA": 1},
	"Orc":      {"STR": 2, "CON": 1, "INT": -1},
}

// RaceNames is the fixed menu order for character creation.
var RaceNames = []string{"Human", "Elf", "Dwarf", "Halfling", "Orc"}

// BonusSummary renders a race's bonuses like "+2 DEX, +1 CHA" for menus.
func BonusSummary(race string) string {
	bonuses, ok := Races[race]
	if !ok {
		return ""
	}
	out := ""
	for _, stat := range Abilities {
		bonus, ok := bonuses[stat]
		if !ok {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%+d %s", bonus, stat)
	}
	return out
}

type Character struct {
	Name       string
	Race       string
	Stats      map[string]int
	BaseHP     int
	HP         int
	MaxHP      int
	Level      int
	ArmorClass int
}

func New(name, race string, baseHP int) *Character {
	return &Character{
		Name:       name,
		Race:       race,
		Stats:      make(map[string]int),
		BaseHP:     baseHP,
		Level:      1,
		ArmorClass: 10,
	}
}

// Modifier returns the ability modifier for a stat, floored per the usual
// (score-10)/2 rule. Unrolled stats count as 10.
func (c *Character) Modifier(stat string) int {
	score, ok := c.Stats[stat]
	if !ok {
		score = 10
	}
	diff := score - 10
	if diff < 0 {
		// Go truncates toward zero; modifiers round down.
		return (diff - 1) / 2
	}
	return diff / 2
}

// RollStats rolls 3d6 for each ability and derives hit points from the
// Constitution modifier.
func (c *Character) RollStats(r *dice.Roller) {
	for _, stat := range Abilities {
		c.Stats[stat] = r.Roll(6, 3).Total
	}
	c.MaxHP = c.BaseHP + c.Modifier("CON")
	if c.MaxHP < 1 {
		c.MaxHP = 1
	}
	c.HP = c.MaxHP
}

// ApplyRacialBonuses adds the race's bonuses to already-rolled stats.
// Unknown races get nothing.
func (c *Character) ApplyRacialBonuses() {
	bonuses, ok := Races[c.Race]
	if !ok {
		return
	}
	for stat, bonus := range bonuses {
		if _, rolled := c.Stats[stat]; rolled {
			c.Stats[stat] += bonus
		}
	}
}

// ApplyDamage reduces HP, never below zero.
func (c *Character) ApplyDamage(amount int) {
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

// Heal restores HP, capped at MaxHP.
func (c *Character) Heal(amount int) {
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

func (c *Character) IsAlive() bool {
	return c.HP > 0
}
