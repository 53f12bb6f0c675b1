package tetris

// Observation is a read-only copy of the episode state after a reset or step.
type Observation struct {
	Width  int
	Height int
	Board  []Cell // row-major landed blocks, without the active piece
	// Current is nil between a landing and the next spawn.
	Current *Piece
	Next    Piece
	Score   int
	Lines   int
	Level   int
}

// At returns the landed cell at (x, y). Coordinates must be on the board.
func (o Observation) At(x, y int) Cell {
	return o.Board[y*o.Width+x]
}

// Composite returns the board with the active piece drawn in, row-major.
// Piece cells above the board are omitted.
func (o Observation) Composite() []Cell {
	out := make([]Cell, len(o.Board))
	copy(out, o.Board)
	if o.Current == nil {
		return out
	}
	for _, pt := range o.Current.Cells() {
		if pt.X < 0 || pt.X >= o.Width || pt.Y < 0 || pt.Y >= o.Height {
			continue
		}
		out[pt.Y*o.Width+pt.X] = FilledCell(o.Current.Color)
	}
	return out
}

// Info carries the auxiliary diagnostics of a step.
type Info struct {
	EpisodeID      string
	Tick           uint64
	Score          int
	LinesCleared   int
	Level          int
	BoardHeight    int
	FallInterval   float64
	LinesRemaining int            // mode B only; 0 in mode A
	CurrentPiece   string         // shape letter, "" when no piece is active
	NextPiece      string         // shape letter
	Statistics     map[string]int // pieces made active per shape letter
}

// StepResult is the outcome of one Env.Step.
type StepResult struct {
	Observation Observation
	Reward      float64
	Terminated  bool
	// Won is set when a mode B episode reached its line target.
	Won  bool
	Info Info
}

// Snapshot captures the deterministic engine state in a comparable value,
// for determinism tests and replay checks.
type Snapshot struct {
	Tick           uint64
	Phase          Phase
	Score          int
	Lines          int
	Level          int
	FallInterval   float64
	GravityTimer   int
	LinesRemaining int
	HasCurrent     bool
	Current        Piece
	Next           Piece
	Board          string
}
