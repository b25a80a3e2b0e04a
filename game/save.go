package game

import (
	"time"

	"github.com/lixenwraith/snakeflow/board"
)

// SaveData is the resumable checkpoint handed to the persistence layer
type SaveData struct {
	ID         string      `json:"id,omitempty"`
	GameState  State       `json:"gameState"`
	Difficulty Difficulty  `json:"difficulty"`
	Timestamp  int64       `json:"timestamp"` // unix ms
	Board      *board.Size `json:"board,omitempty"`
}

// SavedAt returns the checkpoint time
func (d SaveData) SavedAt() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// Resumable reports whether the checkpoint holds a round still in progress
func (d SaveData) Resumable() bool {
	return d.GameState.IsRunning && !d.GameState.IsGameOver && len(d.GameState.Snake) > 0
}
