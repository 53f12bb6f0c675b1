package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionEncoding(t *testing.T) {
	tests := []struct {
		action Action
		value  int
		move   Move
	}{
		{ActionNoop, 0, Move{}},
		{ActionLeft, 1, Move{Side: -1}},
		{ActionRight, 2, Move{Side: 1}},
		{ActionDown, 3, Move{Down: true}},
		{ActionRotateLeft, 4, Move{Rotate: -1}},
		{ActionRotateRight, 5, Move{Rotate: 1}},
		{ActionLeftDown, 6, Move{Side: -1, Down: true}},
		{ActionRightDown, 7, Move{Side: 1, Down: true}},
		{ActionLeftRotateLeft, 8, Move{Side: -1, Rotate: -1}},
		{ActionRightRotateLeft, 9, Move{Side: 1, Rotate: -1}},
		{ActionLeftRotateRight, 10, Move{Side: -1, Rotate: 1}},
		{ActionRightRotateRight, 11, Move{Side: 1, Rotate: 1}},
	}
	require.Len(t, tests, NumActions)

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			assert.Equal(t, tc.value, int(tc.action))
			assert.Equal(t, tc.move, tc.action.Move())
		})
	}
}

func TestParseAction(t *testing.T) {
	for n := 0; n < NumActions; n++ {
		a, err := ParseAction(n)
		require.NoError(t, err, "ParseAction(%d)", n)
		assert.Equal(t, n, int(a))
	}

	for _, n := range []int{-1, NumActions, 100} {
		_, err := ParseAction(n)
		assert.Error(t, err, "ParseAction(%d)", n)
	}
}
