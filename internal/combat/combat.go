package combat

import (
	"dndadventure/internal/character"
	"dndadventure/internal/dice"
	"dndadventure/internal/weapons"
)

// Combatant pairs a character with an equipped weapon.
type Combatant struct {
	*character.Character
	Weapon weapons.Weapon
}

// Encounter tracks one player-versus-enemy fight.
type Encounter struct {
	Player *Combatant
	Enemy  *Combatant
	Round  int

	roller *dice.Roller
	order  []*Combatant
}

func NewEncounter(player, enemy *Combatant, roller *dice.Roller) *Encounter {
	return &Encounter{Player: player, Enemy: enemy, roller: roller}
}

// RollInitiative orders the combatants by d20 + DEX modifier. The player
// wins ties.
func (e *Encounter) RollInitiative() []*Combatant {
	playerInit := e.roller.Roll(20, 1).Total + e.Player.Modifier("DEX")
	enemyInit := e.roller.Roll(20, 1).Total + e.Enemy.Modifier("DEX")

	if playerInit >= enemyInit {
		e.order = []*Combatant{e.Player, e.Enemy}
	} else {
		e.order = []*Combatant{e.Enemy, e.Player}
	}
	return e.order
}

// Order returns the initiative order, rolling it first if needed.
func (e *Encounter) Order() []*Combatant {
	if e.order == nil {
		return e.RollInitiative()
	}
	return e.order
}

// AttackResult records a resolved weapon attack for display and narration.
type AttackResult struct {
	Attacker string
	Defender string
	Weapon   string
	Roll     int
	Hit      bool
	Damage   int
}

// Attack resolves a weapon attack: d20 + STR modifier against the
// defender's armor class, weapon damage on a hit.
func (e *Encounter) Attack(attacker, defender *Combatant) AttackResult {
	res := AttackResult{
		Attacker: attacker.Name,
		Defender: defender.Name,
		Weapon:   attacker.Weapon.Name,
	}

	res.Roll = e.roller.Roll(20, 1).Total + attacker.Modifier("STR")
	if res.Roll >= defender.ArmorClass {
		res.Hit = true
		res.Damage = attacker.Weapon.Damage(e.roller)
		defender.ApplyDamage(res.Damage)
	}
	return res
}

// Over reports whether either side has dropped.
func (e *Encounter) Over() bool {
	return !e.Player.IsAlive() || !e.Enemy.IsAlive()
}

// PlayerWon reports whether the enemy is down and the player is standing.
func (e *Encounter) PlayerWon() bool {
	return e.Player.IsAlive() && !e.Enemy.IsAlive()
}
