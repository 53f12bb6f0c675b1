package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/core"
)

// Phase is the lifecycle stage of an episode.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseTerminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Env is one Tetris episode driven tick by tick by an agent.
// It is not safe for concurrent use; independent Envs share nothing.
type Env struct {
	cfg    config.EngineConfig
	id     string
	logger *log.Logger

	policy Policy
	reward Reward

	rng     *rand.Rand
	spawner *Spawner
	stats   *Statistics

	board   *Board
	current *Piece
	next    Piece

	controller Controller
	gravity    Gravity

	tick           uint64
	score          int
	lines          int
	level          int
	height         int
	linesRemaining int

	phase     Phase
	won       bool
	episodeID uuid.UUID
	seed      int64
}

// Option configures an Env.
type Option func(*Env)

// WithLogger sets the logger for episode events. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(e *Env) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithID sets the identifier reported by ID, usually a variant id.
func WithID(id string) Option {
	return func(e *Env) {
		e.id = id
	}
}

// New creates an idle Env. Reset must be called before the first Step.
func New(cfg config.EngineConfig, opts ...Option) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}

	e := &Env{
		cfg:    cfg,
		id:     "tetris",
		logger: log.New(io.Discard),
		policy: NewPolicy(cfg),
		reward: NewReward(cfg.Reward),
		stats:  NewStatistics(),
		phase:  PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ID returns the environment identifier.
func (e *Env) ID() string { return e.id }

// Config returns the configuration the Env was built with.
func (e *Env) Config() config.EngineConfig { return e.cfg }

// Phase returns the current lifecycle stage.
func (e *Env) Phase() Phase { return e.phase }

// Seed returns the seed of the current episode.
func (e *Env) Seed() int64 { return e.seed }

// Reset starts a new episode. A nil seed draws one from the previous
// episode's random source, or from the clock on the very first reset.
// Two Envs with the same config and seed produce identical episodes for
// identical action sequences.
func (e *Env) Reset(seed *int64) (Observation, error) {
	switch {
	case seed != nil:
		e.seed = *seed
	case e.rng != nil:
		e.seed = e.rng.Int63()
	default:
		e.seed = time.Now().UnixNano()
	}

	e.rng = rand.New(rand.NewSource(e.seed))
	e.spawner = NewSpawner(e.rng, e.cfg.Board.Width)
	e.stats.Clear()
	e.board = NewBoard(e.cfg.Board.Width, e.cfg.Board.Height)

	e.tick = 0
	e.score = 0
	e.lines = 0
	e.height = 0
	e.won = false
	e.level = e.policy.Level(0, 0)
	e.gravity = NewGravity(e.policy.FallInterval(e.level))
	e.controller = NewController(e.cfg.Timing)
	e.controller.Reset(e.tick)
	e.linesRemaining = 0
	if e.cfg.Mode.Type == config.ModeB {
		e.linesRemaining = e.cfg.Mode.TargetLines
	}

	current := e.spawner.Spawn()
	e.current = &current
	e.stats.Record(current.Shape)
	e.next = e.spawner.Spawn()

	e.episodeID = uuid.New()
	e.phase = PhaseRunning

	e.logger.Debug("episode reset", "env", e.id, "episode", e.episodeID, "seed", e.seed,
		"current", current.Shape, "next", e.next.Shape)

	return e.Observation(), nil
}

// Step advances the episode by one tick with the agent's action.
func (e *Env) Step(a core.Action) (StepResult, error) {
	switch e.phase {
	case PhaseIdle:
		return StepResult{}, ErrNotReset
	case PhaseTerminal:
		return StepResult{}, ErrEpisodeOver
	}
	if !a.Valid() {
		return StepResult{}, fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}

	e.tick++
	prevScore, prevLines, prevHeight := e.score, e.lines, e.height

	if e.current == nil && !e.promote() {
		e.terminate(false, "spawn blocked")
		return e.result(0), nil
	}

	e.controller.Apply(e.board, e.current, a.Move(), e.tick)

	if e.gravity.Tick() {
		e.fall()
	}

	e.height = e.board.StackHeight()
	reward := e.reward.Compute(e.score-prevScore, e.lines-prevLines, e.height-prevHeight)

	if e.cfg.Mode.Type == config.ModeB && e.linesRemaining == 0 {
		e.terminate(true, "line target reached")
	}

	return e.result(reward), nil
}

// promote makes the next piece active and draws a new next piece.
// It reports whether the promoted piece fits.
func (e *Env) promote() bool {
	current := e.next
	e.current = &current
	e.next = e.spawner.Spawn()
	e.gravity.Restart()
	e.stats.Record(current.Shape)
	return IsValidPosition(e.board, current, 0, 0)
}

// fall moves the active piece down one row, or lands it when blocked.
func (e *Env) fall() {
	if IsValidPosition(e.board, *e.current, 0, 1) {
		e.current.Y++
		e.gravity.Restart()
		return
	}

	e.board.MergePiece(*e.current)
	e.current = nil

	cleared := e.board.ClearCompletedLines()
	if cleared == 0 {
		return
	}

	e.lines += cleared
	e.score += e.policy.ScoreDelta(cleared)
	e.level = e.policy.Level(e.lines, e.score)
	e.gravity.SetInterval(e.policy.FallInterval(e.level))
	if e.cfg.Mode.Type == config.ModeB {
		e.linesRemaining = max(e.linesRemaining-cleared, 0)
	}

	e.logger.Debug("lines cleared", "episode", e.episodeID, "tick", e.tick,
		"cleared", cleared, "lines", e.lines, "score", e.score, "level", e.level)
}

func (e *Env) terminate(won bool, reason string) {
	e.phase = PhaseTerminal
	e.won = won
	e.logger.Info("episode over", "env", e.id, "episode", e.episodeID, "reason", reason,
		"tick", e.tick, "score", e.score, "lines", e.lines, "level", e.level)
}

func (e *Env) result(reward float64) StepResult {
	return StepResult{
		Observation: e.Observation(),
		Reward:      reward,
		Terminated:  e.phase == PhaseTerminal,
		Won:         e.won,
		Info:        e.Info(),
	}
}

// Observation returns a copy of the current episode state.
func (e *Env) Observation() Observation {
	if e.board == nil {
		return Observation{Width: e.cfg.Board.Width, Height: e.cfg.Board.Height}
	}
	obs := Observation{
		Width:  e.board.Width(),
		Height: e.board.Height(),
		Board:  e.board.Cells(),
		Next:   e.next,
		Score:  e.score,
		Lines:  e.lines,
		Level:  e.level,
	}
	if e.current != nil {
		current := *e.current
		obs.Current = &current
	}
	return obs
}

// Info returns the diagnostics of the current episode state.
func (e *Env) Info() Info {
	info := Info{
		EpisodeID:      e.episodeID.String(),
		Tick:           e.tick,
		Score:          e.score,
		LinesCleared:   e.lines,
		Level:          e.level,
		BoardHeight:    e.height,
		FallInterval:   e.gravity.Interval(),
		LinesRemaining: e.linesRemaining,
		NextPiece:      e.next.Shape.String(),
		Statistics:     e.stats.Map(),
	}
	if e.current != nil {
		info.CurrentPiece = e.current.Shape.String()
	}
	return info
}

// Snapshot returns the comparable engine state.
func (e *Env) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           e.tick,
		Phase:          e.phase,
		Score:          e.score,
		Lines:          e.lines,
		Level:          e.level,
		FallInterval:   e.gravity.Interval(),
		GravityTimer:   e.gravity.Timer(),
		LinesRemaining: e.linesRemaining,
		Next:           e.next,
	}
	if e.board != nil {
		s.Board = e.board.String()
	}
	if e.current != nil {
		s.HasCurrent = true
		s.Current = *e.current
	}
	return s
}
