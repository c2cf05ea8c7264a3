package circuit

// Snapshot captures the complete board state for tests and debugging.
type Snapshot struct {
	Wires    [3]bool
	SwitchOn bool
	Closed   bool
	Current  float64
	Score    int
	Hint     string
}

// Snapshot returns the current board snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Wires: [3]bool{
			g.wires[0].Energized,
			g.wires[1].Energized,
			g.wires[2].Energized,
		},
		SwitchOn: g.switchOn,
		Closed:   g.Closed(),
		Current:  g.Current(),
		Score:    g.score,
		Hint:     g.hint,
	}
}
