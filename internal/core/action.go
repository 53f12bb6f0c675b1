package core

import "fmt"

// Action is one of the discrete agent actions accepted by Env.Step.
// The numeric values are part of the external contract.
type Action int

const (
	ActionNoop                Action = iota // 0
	ActionLeft                              // 1
	ActionRight                             // 2
	ActionDown                              // 3 - soft drop
	ActionRotateLeft                        // 4
	ActionRotateRight                       // 5
	ActionLeftDown                          // 6
	ActionRightDown                         // 7
	ActionLeftRotateLeft                    // 8
	ActionRightRotateLeft                   // 9
	ActionLeftRotateRight                   // 10
	ActionRightRotateRight                  // 11
)

// NumActions is the size of the action space.
const NumActions = 12

// Valid reports whether a is inside [0, NumActions).
func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNoop:
		return "NOOP"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionRotateLeft:
		return "rotate_left"
	case ActionRotateRight:
		return "rotate_right"
	case ActionLeftDown:
		return "left+down"
	case ActionRightDown:
		return "right+down"
	case ActionLeftRotateLeft:
		return "left+rotate_left"
	case ActionRightRotateLeft:
		return "right+rotate_left"
	case ActionLeftRotateRight:
		return "left+rotate_right"
	case ActionRightRotateRight:
		return "right+rotate_right"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Move is the decomposition of an Action into primitive requests,
// one per movement class.
type Move struct {
	Side   int  // -1 left, +1 right, 0 none
	Rotate int  // -1 rotate left, +1 rotate right, 0 none
	Down   bool // soft drop
}

// Move decomposes the action. Invalid actions decompose to the zero Move.
func (a Action) Move() Move {
	switch a {
	case ActionLeft:
		return Move{Side: -1}
	case ActionRight:
		return Move{Side: 1}
	case ActionDown:
		return Move{Down: true}
	case ActionRotateLeft:
		return Move{Rotate: -1}
	case ActionRotateRight:
		return Move{Rotate: 1}
	case ActionLeftDown:
		return Move{Side: -1, Down: true}
	case ActionRightDown:
		return Move{Side: 1, Down: true}
	case ActionLeftRotateLeft:
		return Move{Side: -1, Rotate: -1}
	case ActionRightRotateLeft:
		return Move{Side: 1, Rotate: -1}
	case ActionLeftRotateRight:
		return Move{Side: -1, Rotate: 1}
	case ActionRightRotateRight:
		return Move{Side: 1, Rotate: 1}
	default:
		return Move{}
	}
}

// ParseAction converts an integer from the adapter layer into an Action.
func ParseAction(n int) (Action, error) {
	a := Action(n)
	if !a.Valid() {
		return ActionNoop, fmt.Errorf("core: action %d out of range [0,%d)", n, NumActions)
	}
	return a, nil
}
