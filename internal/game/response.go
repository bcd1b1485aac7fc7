package game

import "text-rpg/internal/component"

// Event names the prompt a Response asks the player to answer.
type Event string

const (
	EventFirstEncounter Event = "first_encounter"
	EventMap            Event = "map"
	EventBattle         Event = "battle"
	EventLocation       Event = "location"
	EventDeath          Event = "death"
	EventInventory      Event = "inventory"
	EventGameOver       Event = "game_over"
)

// EnemySnapshot is the battle opponent as shown to the player.
type EnemySnapshot struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
}

// Position is the player's grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Response is the full state snapshot returned after every request.
// Options are 1-based: choice n selects Options[n-1].
type Response struct {
	Message  string                   `json:"message"`
	Event    Event                    `json:"event"`
	Options  []string                 `json:"options"`
	Player   component.PlayerSnapshot `json:"player"`
	Time     string                   `json:"time"`
	Enemy    *EnemySnapshot           `json:"enemy,omitempty"`
	Location string                   `json:"location_type,omitempty"`
	Position Position                 `json:"position"`
	World    string                   `json:"world"`
}
