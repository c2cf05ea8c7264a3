package dodge

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the gameplay state for determinism tests and replay.
// Stars are cosmetic and deliberately excluded.
type Snapshot struct {
	Tick      int
	PlayerX   float64
	EnemyX    float64
	EnemyY    float64
	Speed     float64
	Score     int
	HighScore int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tickCount,
		PlayerX:   g.playerX,
		EnemyX:    g.enemyX,
		EnemyY:    g.enemyY,
		Speed:     g.speed,
		Score:     g.score,
		HighScore: g.highScore,
		State:     state,
	}
}
