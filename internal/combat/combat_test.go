package combat

import (
	"testing"

	"dndadventure/internal/character"
	"dndadventure/internal/dice"
	"dndadventure/internal/weapons"
)

func newCombatant(name string, hp, ac int, stats map[string]int, weapon string) *Combatant {
	c := character.New(name, "", hp)
	for stat, score := range stats {
		c.Stats[stat] = score
	}
	c.MaxHP = hp
	c.HP = hp
	c.ArmorClass = ac
	return &Combatant{Character: c, Weapon: weapons.Lookup(weapon)}
}

func TestInitiativeFavorsOverwhelmingDex(t *testing.T) {
	// +25 vs -5 modifier: no d20 spread can flip the order.
	player := newCombatant("Aragorn", 10, 10, map[string]int{"DEX": 60}, "Longsword")
	enemy := newCombatant("Goblin", 5, 10, map[string]int{"DEX": 1}, "Shortsword")

	e := NewEncounter(player, enemy, dice.NewSeededRoller(1))
	order := e.RollInitiative()

	if order[0] != player || order[1] != enemy {
		t.Errorf("order = [%s %s], want player first", order[0].Name, order[1].Name)
	}
	if got := e.Order(); got[0] != order[0] {
		t.Error("Order() should return the rolled order")
	}
}

func TestAttackAlwaysHitsDefenselessTarget(t *testing.T) {
	player := newCombatant("Aragorn", 10, 10, map[string]int{"STR": 10}, "Longsword")
	enemy := newCombatant("Goblin", 100, 0, map[string]int{"STR": 10}, "Shortsword")

	e := NewEncounter(player, enemy, dice.NewSeededRoller(2))
	res := e.Attack(player, enemy)

	if !res.Hit {
		t.Fatal("attack against AC 0 should hit")
	}
	if res.Damage < 1 || res.Damage > 8 {
		t.Errorf("longsword damage = %d, want 1d8 range", res.Damage)
	}
	if enemy.HP != 100-res.Damage {
		t.Errorf("enemy HP = %d, want %d", enemy.HP, 100-res.Damage)
	}
	if res.Attacker != "Aragorn" || res.Defender != "Goblin" || res.Weapon != "Longsword" {
		t.Errorf("result names wrong: %+v", res)
	}
}

func TestAttackAlwaysMissesImpossibleArmor(t *testing.T) {
	player := newCombatant("Aragorn", 10, 10, map[string]int{"STR": 10}, "Longsword")
	enemy := newCombatant("Golem", 30, 100, map[string]int{"STR": 10}, "Club")

	e := NewEncounter(player, enemy, dice.NewSeededRoller(3))
	res := e.Attack(player, enemy)

	if res.Hit {
		t.Fatal("attack against AC 100 should miss")
	}
	if res.Damage != 0 {
		t.Errorf("miss dealt %d damage, want 0", res.Damage)
	}
	if enemy.HP != 30 {
		t.Errorf("enemy HP = %d, want untouched 30", enemy.HP)
	}
}

func TestEncounterOutcome(t *testing.T) {
	player := newCombatant("Aragorn", 10, 10, nil, "Longsword")
	enemy := newCombatant("Goblin", 5, 10, nil, "Shortsword")
	e := NewEncounter(player, enemy, dice.NewSeededRoller(4))

	if e.Over() {
		t.Fatal("fresh encounter should not be over")
	}

	enemy.ApplyDamage(5)
	if !e.Over() || !e.PlayerWon() {
		t.Error("encounter with dead enemy should be a player win")
	}

	enemy.Heal(5)
	player.ApplyDamage(10)
	if !e.Over() || e.PlayerWon() {
		t.Error("encounter with dead player should not be a player win")
	}
}

func TestSpawnEnemy(t *testing.T) {
	goblin := SpawnEnemy("Goblin")
	if goblin == nil {
		t.Fatal("goblin missing from bestiary")
	}
	if goblin.HP != 5 || goblin.MaxHP != 5 {
		t.Errorf("goblin HP = %d/%d, want 5/5", goblin.HP, goblin.MaxHP)
	}
	if goblin.Weapon.Name != "Shortsword" {
		t.Errorf("goblin weapon = %q, want Shortsword", goblin.Weapon.Name)
	}

	if SpawnEnemy("Tarrasque") != nil {
		t.Error("unknown enemy should return nil")
	}

	// Fresh spawns must not share state.
	other := SpawnEnemy("Goblin")
	other.ApplyDamage(3)
	if goblin.HP != 5 {
		t.Error("spawned enemies share character state")
	}
}

func TestRandomEnemyComesFromBestiary(t *testing.T) {
	r := dice.NewSeededRoller(6)
	for i := 0; i < 50; i++ {
		enemy := RandomEnemy(r)
		if enemy == nil {
			t.Fatal("random enemy is nil")
		}
		if SpawnEnemy(enemy.Name) == nil {
			t.Fatalf("random enemy %q not in bestiary", enemy.Name)
		}
	}
}
