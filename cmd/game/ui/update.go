package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dndadventure/internal/character"
	"dndadventure/internal/combat"
	"dndadventure/internal/spells"
	"dndadventure/internal/weapons"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case animationTickMsg:
		if m.loading {
			m.animationFrame++
			return m, animationTimer()
		}
		return m, nil

	case narrationMsg:
		return m.handleNarration(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if strings.TrimSpace(m.input) == "" || m.loading {
			return m, nil
		}
		input := m.input
		m.input = ""
		m.messages = append(m.messages, "> "+input)
		return m.handleSubmit(strings.TrimSpace(input))

	case "backspace":
		if len(m.input) > 0 && !m.loading {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	default:
		if len(msg.String()) == 1 && !m.loading {
			m.input += msg.String()
		}
		return m, nil
	}
}

func (m Model) handleSubmit(input string) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseName:
		return m.submitName(input)
	case phaseRace:
		return m.submitRace(input)
	case phaseMenu:
		return m.submitMenu(input)
	case phaseCombat:
		return m.submitCombatAction(input)
	case phaseSpell:
		return m.submitSpellChoice(input)
	}
	return m, nil
}

func (m Model) submitName(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		m.messages = append(m.messages, "Name cannot be empty. Please enter a valid name.")
		return m, nil
	}

	m.player = &combat.Combatant{
		Character: character.New(input, "", 10),
		Weapon:    weapons.Lookup("Longsword"),
	}
	m.spellbook = spells.Default()

	m.messages = append(m.messages, "", "Choose your race:")
	for i, race := range character.RaceNames {
		m.messages = append(m.messages, fmt.Sprintf("%d. %s (%s)", i+1, race, character.BonusSummary(race)))
	}
	m.messages = append(m.messages, fmt.Sprintf("Enter choice (1-%d):", len(character.RaceNames)))
	m.phase = phaseRace
	return m, nil
}

func (m Model) submitRace(input string) (tea.Model, tea.Cmd) {
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(character.RaceNames) {
		m.messages = append(m.messages, fmt.Sprintf("Please enter a number between 1 and %d.", len(character.RaceNames)))
		return m, nil
	}

	m.player.Race = character.RaceNames[choice-1]
	m.player.RollStats(m.roller)
	m.player.ApplyRacialBonuses()

	m.messages = append(m.messages, "", "Rolling stats...")
	m.messages = append(m.messages, m.characterSheet()...)
	m.messages = append(m.messages, m.mainMenu()...)
	m.phase = phaseMenu
	return m, nil
}

func (m Model) submitMenu(input string) (tea.Model, tea.Cmd) {
	switch input {
	case "1":
		return m.startCombat()
	case "2":
		m.messages = append(m.messages, "")
		m.messages = append(m.messages, m.characterSheet()...)
		m.messages = append(m.messages, m.mainMenu()...)
		return m, nil
	case "3":
		return m, tea.Quit
	default:
		m.messages = append(m.messages, "Please enter 1, 2, or 3.")
		return m, nil
	}
}

func (m Model) startCombat() (tea.Model, tea.Cmd) {
	enemy := combat.RandomEnemy(m.roller)
	m.encounter = combat.NewEncounter(m.player, enemy, m.roller)
	order := m.encounter.RollInitiative()

	m.messages = append(m.messages, "",
		fmt.Sprintf("A %s appears!", enemy.Name),
		fmt.Sprintf("%s wins initiative!", order[0].Name),
		"")
	m.phase = phaseCombat

	dm := m.dm
	playerName, enemyName := m.player.Name, enemy.Name
	return m, m.startNarration(func(ctx context.Context) string {
		return dm.CombatStart(ctx, playerName, enemyName)
	}, stepFirstTurn)
}

func (m Model) submitCombatAction(input string) (tea.Model, tea.Cmd) {
	if m.encounter == nil {
		return m, nil
	}

	switch input {
	case "1":
		return m.playerAttack()
	case "2":
		m.pendingSpells = m.spellbook.Available(m.player.Level)
		m.messages = append(m.messages, "", "Choose a spell:")
		for i, sp := range m.pendingSpells {
			m.messages = append(m.messages, fmt.Sprintf("%d. %s", i+1, sp))
		}
		m.messages = append(m.messages, "0. Back")
		m.phase = phaseSpell
		return m, nil
	case "3":
		m.messages = append(m.messages, "", "You ran away!")
		m.encounter = nil
		m.messages = append(m.messages, m.mainMenu()...)
		m.phase = phaseMenu
		return m, nil
	default:
		m.messages = append(m.messages, "Please enter 1 to attack, 2 to cast a spell, or 3 to run away.")
		return m, nil
	}
}

func (m Model) playerAttack() (tea.Model, tea.Cmd) {
	res := m.encounter.Attack(m.encounter.Player, m.encounter.Enemy)
	if res.Hit {
		m.messages = append(m.messages, fmt.Sprintf("You hit the %s with your %s for %d damage!", res.Defender, res.Weapon, res.Damage))
	} else {
		m.messages = append(m.messages, fmt.Sprintf("You swing your %s at the %s and miss!", res.Weapon, res.Defender))
	}
	m.messages = append(m.messages, "")

	next := stepEnemyTurn
	if !m.encounter.Enemy.IsAlive() {
		next = stepVictory
	}

	dm := m.dm
	return m, m.startNarration(func(ctx context.Context) string {
		return dm.Attack(ctx, res.Attacker, res.Defender, res.Weapon, res.Damage, res.Hit)
	}, next)
}

func (m Model) submitSpellChoice(input string) (tea.Model, tea.Cmd) {
	if input == "0" {
		m.phase = phaseCombat
		return m.showActionMenu()
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(m.pendingSpells) {
		m.messages = append(m.messages, fmt.Sprintf("Please enter a number between 0 and %d.", len(m.pendingSpells)))
		return m, nil
	}

	sp := m.pendingSpells[choice-1]
	target := m.encounter.Enemy
	if sp.Healing {
		target = m.encounter.Player
	}

	amount := sp.Cast(m.roller, m.player.Character, target.Character)
	if amount >= 0 {
		m.messages = append(m.messages, fmt.Sprintf("Your %s hits the %s for %d damage!", sp.Name, target.Name, amount))
	} else {
		m.messages = append(m.messages, fmt.Sprintf("Your %s restores %d HP. (HP %d/%d)", sp.Name, -amount, m.player.HP, m.player.MaxHP))
	}
	m.messages = append(m.messages, "")
	m.phase = phaseCombat

	next := stepEnemyTurn
	if !m.encounter.Enemy.IsAlive() {
		next = stepVictory
	}

	dm := m.dm
	casterName, targetName, spellName := m.player.Name, target.Name, sp.Name
	return m, m.startNarration(func(ctx context.Context) string {
		return dm.SpellCast(ctx, casterName, targetName, spellName, amount)
	}, next)
}

func (m Model) handleNarration(msg narrationMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if len(m.messages) > 0 && m.messages[len(m.messages)-1] == loadingSentinel {
			m.messages = m.messages[:len(m.messages)-1]
		}
		m.loading = false
	}

	for _, warning := range m.warnings.Drain() {
		m.messages = append(m.messages, warnPrefix+warning)
	}

	if msg.text != "" {
		m.messages = append(m.messages, narrationPrefix+msg.text, "")
	}

	switch msg.next {
	case stepFirstTurn:
		if m.encounter.Order()[0] == m.encounter.Enemy {
			return m.enemyTurn()
		}
		return m.playerTurn()
	case stepActionMenu:
		return m.showActionMenu()
	case stepPlayerTurn:
		return m.playerTurn()
	case stepEnemyTurn:
		return m.enemyTurn()
	case stepVictory:
		m.messages = append(m.messages, fmt.Sprintf("You defeated the %s!", m.encounter.Enemy.Name), "")
		dm := m.dm
		playerName, enemyName := m.player.Name, m.encounter.Enemy.Name
		return m, m.startNarration(func(ctx context.Context) string {
			return dm.Victory(ctx, playerName, enemyName)
		}, stepEncounterEnd)
	case stepDefeat:
		m.messages = append(m.messages, fmt.Sprintf("You have been defeated by the %s...", m.encounter.Enemy.Name), "")
		dm := m.dm
		playerName, enemyName := m.player.Name, m.encounter.Enemy.Name
		return m, m.startNarration(func(ctx context.Context) string {
			return dm.Defeat(ctx, playerName, enemyName)
		}, stepEncounterEnd)
	case stepEncounterEnd:
		return m.endEncounter()
	}
	return m, nil
}

func (m Model) playerTurn() (tea.Model, tea.Cmd) {
	m.encounter.Round++
	m.messages = append(m.messages, fmt.Sprintf("%s HP: %d/%d   Your HP: %d/%d",
		m.encounter.Enemy.Name, m.encounter.Enemy.HP, m.encounter.Enemy.MaxHP,
		m.player.HP, m.player.MaxHP), "")

	dm := m.dm
	playerName := m.player.Name
	actions := []string{"attack", "cast a spell", "run away"}
	return m, m.startNarration(func(ctx context.Context) string {
		return dm.ActionChoice(ctx, playerName, actions)
	}, stepActionMenu)
}

func (m Model) showActionMenu() (tea.Model, tea.Cmd) {
	m.messages = append(m.messages,
		"Your turn!",
		"1. Attack",
		"2. Cast a spell",
		"3. Run away",
		"")
	m.phase = phaseCombat
	return m, nil
}

func (m Model) enemyTurn() (tea.Model, tea.Cmd) {
	res := m.encounter.Attack(m.encounter.Enemy, m.encounter.Player)
	if res.Hit {
		m.messages = append(m.messages, fmt.Sprintf("The %s hits you with its %s for %d damage! (HP %d/%d)",
			res.Attacker, res.Weapon, res.Damage, m.player.HP, m.player.MaxHP))
	} else {
		m.messages = append(m.messages, fmt.Sprintf("The %s attacks with its %s but misses!", res.Attacker, res.Weapon))
	}
	m.messages = append(m.messages, "")

	next := stepPlayerTurn
	if !m.player.IsAlive() {
		next = stepDefeat
	}

	dm := m.dm
	return m, m.startNarration(func(ctx context.Context) string {
		return dm.Attack(ctx, res.Attacker, res.Defender, res.Weapon, res.Damage, res.Hit)
	}, next)
}

func (m Model) endEncounter() (tea.Model, tea.Cmd) {
	if !m.player.IsAlive() {
		m.player.Heal(m.player.MaxHP)
		m.messages = append(m.messages, "You awaken back at camp, bruised but breathing.", "")
	}
	m.encounter = nil
	m.messages = append(m.messages, m.mainMenu()...)
	m.phase = phaseMenu
	return m, nil
}

func (m Model) mainMenu() []string {
	return []string{
		"",
		"What would you like to do?",
		"1. Fight a monster",
		"2. View character",
		"3. Quit",
	}
}

func (m Model) characterSheet() []string {
	c := m.player.Character
	lines := []string{fmt.Sprintf("%s the %s (level %d)", c.Name, c.Race, c.Level)}
	for _, stat := range character.Abilities {
		lines = append(lines, fmt.Sprintf("  %s: %d (%+d)", stat, c.Stats[stat], c.Modifier(stat)))
	}
	lines = append(lines, fmt.Sprintf("  HP: %d/%d   AC: %d   Weapon: %s",
		c.HP, c.MaxHP, c.ArmorClass, m.player.Weapon))
	return lines
}
