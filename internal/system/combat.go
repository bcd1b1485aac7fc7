package system

import (
	"errors"
	"fmt"
	"strings"

	"text-rpg/assets"
	"text-rpg/internal/dice"
)

// ErrBattleOver is returned when a turn is resolved on a finished battle.
var ErrBattleOver = errors.New("battle is over")

// BattleState is the state of a Battle.
type BattleState uint8

const (
	Active BattleState = iota
	Won
	Lost
	Fled
)

func (s BattleState) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Fled:
		return "fled"
	}
	return "unknown"
}

// BattleAction is one player move in a battle. Values match the 1-based
// battle option indices.
type BattleAction uint8

const (
	ActionAttack BattleAction = iota + 1
	ActionDefend
	ActionFlee
)

// ParseBattleAction maps a 1-based choice onto an action.
func ParseBattleAction(choice int) (BattleAction, error) {
	if choice < int(ActionAttack) || choice > int(ActionFlee) {
		return 0, fmt.Errorf("battle choice %d: %w", choice, ErrInvalidChoice)
	}
	return BattleAction(choice), nil
}

// Reward bounds for a won battle.
const (
	RewardMin = 1
	RewardMax = 5
)

// FleeChance is the probability that fleeing succeeds.
const FleeChance = 0.5

// Battle is the runtime copy of an enemy's stats plus the fight outcome.
type Battle struct {
	Enemy  string
	Health int
	Attack int
	State  BattleState
}

// NewBattle copies def into a fresh, active battle.
func NewBattle(def assets.EnemyDef) Battle {
	return Battle{Enemy: def.Name, Health: def.Health, Attack: def.Attack, State: Active}
}

// Combatant is the player side of a battle.
type Combatant interface {
	AttackDamage() int
	TakeDamage(amount int)
	AddGold(amount int)
	Dead() bool
}

// TurnResult describes what happened in one turn.
type TurnResult struct {
	Message     string
	Reward      int
	DamageDealt int
	DamageTaken int
}

// ResolveTurn applies one player action to b and returns the updated battle.
// The input value is not modified.
//
// Attack: the enemy loses the player's attack damage; at 0 or below the
// battle is won and 1..5 gold is awarded, otherwise the enemy strikes back.
// Defend: nothing changes. Flee: succeeds with FleeChance, otherwise the
// enemy strikes. A strike that leaves the player dead loses the battle.
func ResolveTurn(b Battle, p Combatant, act BattleAction, rng dice.Rand) (Battle, TurnResult, error) {
	if b.State != Active {
		return b, TurnResult{}, fmt.Errorf("resolve %s battle with %s: %w", b.State, b.Enemy, ErrBattleOver)
	}

	var res TurnResult
	var msg strings.Builder

	switch act {
	case ActionAttack:
		dmg := p.AttackDamage()
		b.Health -= dmg
		res.DamageDealt = dmg
		fmt.Fprintf(&msg, "You attack the %s for %d damage!", b.Enemy, dmg)
		if b.Health <= 0 {
			b.State = Won
			res.Reward = dice.Between(rng, RewardMin, RewardMax)
			p.AddGold(res.Reward)
			fmt.Fprintf(&msg, "\nYou defeated the %s!\nYou found %d gold!", b.Enemy, res.Reward)
			break
		}
		b, res.DamageTaken = enemyStrikes(b, p, &msg)

	case ActionDefend:
		msg.WriteString("You take a defensive stance.\nThe enemy's attack does no damage!")

	case ActionFlee:
		if dice.Chance(rng, FleeChance) {
			b.State = Fled
			fmt.Fprintf(&msg, "You successfully flee from the %s!", b.Enemy)
			break
		}
		msg.WriteString("You failed to flee!")
		b, res.DamageTaken = enemyStrikes(b, p, &msg)

	default:
		return b, TurnResult{}, fmt.Errorf("battle action %d: %w", act, ErrInvalidChoice)
	}

	res.Message = msg.String()
	return b, res, nil
}

// enemyStrikes applies the enemy's attack to p and marks the battle lost
// if p dies.
func enemyStrikes(b Battle, p Combatant, msg *strings.Builder) (Battle, int) {
	if msg.Len() > 0 {
		msg.WriteByte('\n')
	}
	p.TakeDamage(b.Attack)
	fmt.Fprintf(msg, "The %s attacks you for %d damage!", b.Enemy, b.Attack)
	if p.Dead() {
		b.State = Lost
		msg.WriteString("\nYou have been defeated!")
	}
	return b, b.Attack
}
