package combat

import (
	"dndadventure/internal/character"
	"dndadventure/internal/dice"
	"dndadventure/internal/weapons"
)

// enemyTemplate holds the fixed stat line for a wandering monster.
type enemyTemplate struct {
	name   string
	hp     int
	ac     int
	stats  map[string]int
	weapon string
}

var enemyTemplates = []enemyTemplate{
	{
		name:   "Goblin",
		hp:     5,
		ac:     10,
		stats:  map[string]int{"STR": 8, "DEX": 14, "CON": 10, "INT": 10, "WIS": 8, "CHA": 8},
		weapon: "Shortsword",
	},
	{
		name:   "Orc",
		hp:     12,
		ac:     12,
		stats:  map[string]int{"STR": 16, "DEX": 12, "CON": 14, "INT": 7, "WIS": 11, "CHA": 10},
		weapon: "Greataxe",
	},
	{
		name:   "Skeleton",
		hp:     9,
		ac:     11,
		stats:  map[string]int{"STR": 10, "DEX": 14, "CON": 15, "INT": 6, "WIS": 8, "CHA": 5},
		weapon: "Shortsword",
	},
}

func (t enemyTemplate) spawn() *Combatant {
	c := character.New(t.name, "", t.hp)
	for stat, score := range t.stats {
		c.Stats[stat] = score
	}
	c.MaxHP = t.hp
	c.HP = t.hp
	c.ArmorClass = t.ac
	return &Combatant{Character: c, Weapon: weapons.Lookup(t.weapon)}
}

// RandomEnemy spawns a fresh enemy from the bestiary.
func RandomEnemy(r *dice.Roller) *Combatant {
	idx := r.Roll(len(enemyTemplates), 1).Total - 1
	return enemyTemplates[idx].spawn()
}

// SpawnEnemy spawns the named enemy, or nil if the bestiary has no entry.
func SpawnEnemy(name string) *Combatant {
	for _, t := range enemyTemplates {
		if t.name == name {
			return t.spawn()
		}
	}
	return nil
}
