package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RunLog records statistics for one life (start → death resolution or quit).
type RunLog struct {
	Timestamp    time.Time `json:"timestamp"`
	Actions      int       `json:"actions"`
	BattlesWon   int       `json:"battles_won"`
	BattlesFled  int       `json:"battles_fled"`
	GoldEarned   int       `json:"gold_earned"`
	DamageTaken  int       `json:"damage_taken"`
	Deaths       int       `json:"deaths"`
	CauseOfDeath string    `json:"cause_of_death,omitempty"`
	Fate         string    `json:"fate"`
	World        string    `json:"world"`
	Vampire      bool      `json:"vampire"`
}

// saveRunLog appends the completed life as a single JSON line to runs.jsonl.
// Errors are logged but never interrupt play.
func saveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := f.Write(data); err != nil {
		logger.Warn("run log: write failed", "error", err)
	}
}

// runLogDir follows the XDG Base Directory spec: $XDG_DATA_HOME/text-rpg,
// defaulting to ~/.local/share/text-rpg.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "text-rpg"), nil
}
