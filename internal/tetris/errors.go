package tetris

import "errors"

// Caller contract violations. Check with errors.Is.
var (
	// ErrNotReset is returned by Step before the first Reset.
	ErrNotReset = errors.New("tetris: step called before reset")

	// ErrEpisodeOver is returned by Step once the episode has terminated.
	ErrEpisodeOver = errors.New("tetris: step called after episode end")

	// ErrInvalidAction is returned for an action outside [0, core.NumActions).
	ErrInvalidAction = errors.New("tetris: invalid action")

	// ErrOutOfBounds is returned by board queries outside the grid.
	ErrOutOfBounds = errors.New("tetris: coordinates out of bounds")
)
