package narrator

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a Dungeon Master narrating a D&D combat encounter. Your narration is vivid and atmospheric, but always brief. Never mention game mechanics, dice, or numbers beyond what you are given.`

func combatStartPrompt(playerName, enemyName string) string {
	return fmt.Sprintf(`A player character named %s has just encountered a %s.
Write a brief, vivid narration (2-3 sentences) describing the encounter as it begins.
Make it atmospheric and exciting, but keep it concise.`, playerName, enemyName)
}

func actionChoicePrompt(playerName string, actions []string) string {
	return fmt.Sprintf(`It's %s's turn. They can %s.
Write a brief narration (1 sentence) asking what they will do.
Make it engaging and keep it very concise.`, playerName, joinActions(actions))
}

func attackPrompt(attacker, defender, weapon string, damage int, hit bool) string {
	if hit {
		return fmt.Sprintf(`%s attacked %s with a %s and dealt %d damage.
Write a brief, vivid narration (1-2 sentences) describing this successful attack.
Make it exciting but concise.`, attacker, defender, weapon, damage)
	}
	return fmt.Sprintf(`%s attacked %s with a %s but missed.
Write a brief, vivid narration (1-2 sentences) describing this failed attack.
Make it engaging but concise.`, attacker, defender, weapon)
}

func spellCastPrompt(caster, target, spell string, damage int) string {
	var effect string
	switch {
	case damage > 0:
		effect = fmt.Sprintf("dealing %d damage", damage)
	case damage < 0:
		effect = fmt.Sprintf("healing for %d HP", -damage)
	default:
		effect = "with magical energy"
	}

	return fmt.Sprintf(`%s cast %s on %s, %s.
Write a brief, vivid narration (1-2 sentences) describing this spell being cast.
Make it magical and exciting but concise.`, caster, spell, target, effect)
}

func victoryPrompt(playerName, enemyName string) string {
	return fmt.Sprintf(`%s has defeated the %s.
Write a brief, triumphant narration (1-2 sentences) describing the victory.
Make it satisfying and heroic but concise.`, playerName, enemyName)
}

func defeatPrompt(playerName, enemyName string) string {
	return fmt.Sprintf(`%s has been defeated by the %s.
Write a brief, dramatic narration (1-2 sentences) describing the defeat.
Make it tense but not overly grim, and keep it concise.`, playerName, enemyName)
}

// joinActions renders an action list as "attack, cast a spell, or run away".
func joinActions(actions []string) string {
	switch len(actions) {
	case 0:
		return "do nothing"
	case 1:
		return actions[0]
	case 2:
		return actions[0] + " or " + actions[1]
	default:
		return strings.Join(actions[:len(actions)-1], ", ") + ", or " + actions[len(actions)-1]
	}
}
