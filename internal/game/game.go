// Package game is the Game Manager: it owns one player, one world and the
// day/night clock, and answers (event, choice) requests with Responses.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"text-rpg/assets"
	"text-rpg/internal/component"
	"text-rpg/internal/dice"
	"text-rpg/internal/factory"
	"text-rpg/internal/system"
	"text-rpg/internal/world"
)

// ActionsPerPhase is how many actions pass between day/night flips.
const ActionsPerPhase = 3

// SunDamagePercent of max health is lost by a vampire at each daybreak.
const SunDamagePercent = 5

// Fate is a death-resolution choice.
type Fate int

const (
	FateRestart Fate = 1
	FateVampire Fate = 2
)

func (f Fate) String() string {
	switch f {
	case FateRestart:
		return "restart"
	case FateVampire:
		return "vampire"
	}
	return "unknown"
}

// Options configures a Game. Zero values pick sensible defaults.
type Options struct {
	Rand      dice.Rand
	Logger    *slog.Logger
	WorldSize int
	// RecordRuns appends a RunLog line each time a life ends.
	RecordRuns bool
	// Interactive makes an unrecognised death choice fall back to
	// FateRestart instead of repeating the prompt.
	Interactive bool
}

// Game is one player's session. It is not safe for concurrent use.
type Game struct {
	Player  *component.Player
	World   *world.World
	Clock   system.Clock
	Actions int

	rng         dice.Rand
	logger      *slog.Logger
	recordRuns  bool
	interactive bool

	event  Event
	last   Response
	battle *system.Battle
	// clearOnWin empties the current cell when the battle is won.
	clearOnWin bool
	run        RunLog
}

// New builds a game with a freshly generated world. Call Start to get the
// opening prompt.
func New(opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = dice.New(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &Game{
		Player:      factory.NewPlayer(),
		World:       world.New(opts.Rand, opts.WorldSize),
		rng:         opts.Rand,
		logger:      opts.Logger,
		recordRuns:  opts.RecordRuns,
		interactive: opts.Interactive,
	}
	g.resetRun()
	return g
}

// Start presents the first encounter.
func (g *Game) Start() Response {
	return g.respond(EventFirstEncounter, assets.Opening, assets.FirstEncounterOptions)
}

// Current returns the most recent Response without changing anything.
func (g *Game) Current() Response { return g.last }

// Event returns the prompt the game is waiting on.
func (g *Game) Event() Event { return g.event }

// Over reports whether the player has quit.
func (g *Game) Over() bool { return g.event == EventGameOver }

// Battle returns the battle in progress, if any.
func (g *Game) Battle() (system.Battle, bool) {
	if g.battle == nil {
		return system.Battle{}, false
	}
	return *g.battle, true
}

// Handle answers one request. A request for an event other than the one
// the game is waiting on is stale and gets the current state back
// unchanged, as does any request after the game is over.
func (g *Game) Handle(event Event, choice int) Response {
	if g.Over() || event != g.event {
		return g.last
	}
	switch event {
	case EventFirstEncounter:
		return g.handleFirstEncounter(choice)
	case EventMap:
		return g.handleMap(choice)
	case EventLocation:
		return g.handleLocation(choice)
	case EventBattle:
		return g.handleBattle(choice)
	case EventInventory:
		return g.handleInventory(choice)
	case EventDeath:
		return g.handleDeath(choice)
	}
	return g.last
}

// Quit ends the game from any prompt and closes the current life's RunLog.
func (g *Game) Quit() Response {
	if g.Over() {
		return g.last
	}
	g.endLife("quit")
	g.battle = nil
	return g.respond(EventGameOver, "Thanks for playing!", nil)
}

// ResolveDeath applies a fate to a dead player.
func (g *Game) ResolveDeath(f Fate) (string, error) {
	switch f {
	case FateRestart:
		g.Player = factory.NewPlayer()
		return "You've been reborn. All progress lost.", nil
	case FateVampire:
		g.Player.ResurrectAsVampire()
		return "You've been resurrected as a vampire! You'll take damage during daytime.", nil
	}
	return "", fmt.Errorf("fate %d: %w", f, system.ErrInvalidChoice)
}

// actionTaken advances the action counter. Every ActionsPerPhase actions
// the clock flips, and a vampire caught by daybreak burns. It returns the
// sun message (if any) and whether the burn killed the player.
func (g *Game) actionTaken() (string, bool) {
	g.Actions++
	g.run.Actions++
	if g.Actions%ActionsPerPhase != 0 {
		return "", false
	}
	g.Clock.Advance()
	if !g.Player.IsVampire || !g.Clock.IsDay() {
		return "", false
	}
	dmg := g.Player.Max * SunDamagePercent / 100
	g.Player.TakeDamage(dmg)
	g.run.DamageTaken += dmg
	msg := fmt.Sprintf("You take %d sun damage as a vampire!", dmg)
	if g.Player.Dead() {
		g.run.CauseOfDeath = "sunlight"
		return msg + "\nThe sun has burned you to ash!", true
	}
	return msg, false
}

// startBattle enters the battle prompt.
func (g *Game) startBattle(b system.Battle, msg string, clearOnWin bool) Response {
	g.battle = &b
	g.clearOnWin = clearOnWin
	g.logger.Debug("battle started", "enemy", b.Enemy, "health", b.Health)
	return g.respond(EventBattle, msg, assets.BattleOptions)
}

// die enters the death prompt.
func (g *Game) die(msg string) Response {
	g.battle = nil
	g.run.Deaths++
	g.run.Vampire = g.Player.IsVampire
	g.logger.Debug("player died", "cause", g.run.CauseOfDeath, "vampire", g.Player.IsVampire)
	return g.respond(EventDeath, msg, assets.DeathOptions)
}

// toMap enters the map prompt.
func (g *Game) toMap(msg string) Response {
	return g.respond(EventMap, msg, g.mapOptions())
}

// endLife closes the current RunLog.
func (g *Game) endLife(fate string) {
	g.run.Fate = fate
	g.run.World = g.World.Current.String()
	if fate == "quit" {
		g.run.Vampire = g.Player.IsVampire
	}
	if g.recordRuns {
		saveRunLog(g.run, g.logger)
	}
	g.resetRun()
}

func (g *Game) resetRun() {
	g.run = RunLog{Timestamp: time.Now()}
}

// respond records and returns a Response for the new prompt.
func (g *Game) respond(event Event, msg string, options []string) Response {
	g.event = event
	pos := g.World.Position()
	r := Response{
		Message:  msg,
		Event:    event,
		Options:  append([]string(nil), options...),
		Player:   g.Player.Snapshot(),
		Time:     g.Clock.Label(),
		Position: Position{X: pos.X, Y: pos.Y},
		World:    g.World.Current.String(),
	}
	switch event {
	case EventBattle:
		if g.battle != nil {
			r.Enemy = &EnemySnapshot{Name: g.battle.Enemy, Health: g.battle.Health}
		}
	case EventLocation:
		r.Location = g.World.CurrentCell().String()
	}
	g.last = r
	return r
}

// reprompt repeats the current prompt with msg, changing nothing else.
func (g *Game) reprompt(msg string) Response {
	r := g.last
	r.Message = msg
	g.last = r
	return r
}

// joinLines concatenates the non-empty parts with newlines.
func joinLines(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p)
	}
	return b.String()
}

// isInvalid reports whether err is a rejected choice.
func isInvalid(err error) bool { return errors.Is(err, system.ErrInvalidChoice) }
