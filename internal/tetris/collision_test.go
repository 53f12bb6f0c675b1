package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnPositionValidOnEmptyBoard(t *testing.T) {
	b := NewBoard(10, 20)
	for _, shape := range Shapes() {
		for r := 0; r < RotationCount(shape); r++ {
			p := Piece{Shape: shape, Rotation: r, X: 3, Y: spawnY}
			assert.True(t, IsValidPosition(b, p, 0, 0), "%v", p)
		}
	}
}

func TestIsValidPosition(t *testing.T) {
	rows := emptyRows(10, 20)
	rows[19] = "1111..1111"
	b := mustParseBoard(t, rows...)

	horizontalI := Piece{Shape: ShapeI, Rotation: 1}
	squareO := Piece{Shape: ShapeO}

	tests := []struct {
		name   string
		piece  Piece
		dx, dy int
		want   bool
	}{
		{"cells above the top are ignored", Piece{Shape: ShapeI, X: 3, Y: -3}, 0, 0, true},
		{"left wall", at(horizontalI, 0, 0), -1, 0, false},
		{"touching left wall", at(horizontalI, 0, 0), 0, 0, true},
		{"right wall", at(horizontalI, 6, 0), 1, 0, false},
		{"touching right wall", at(horizontalI, 6, 0), 0, 0, true},
		{"walls still count for rows on the board", at(horizontalI, 0, -2), -1, 0, false},
		{"walls ignored above the board", at(horizontalI, 0, -3), -1, 0, true},
		{"floor", at(squareO, 3, 16), 0, 1, false},
		{"resting in the gap", at(squareO, 3, 16), 0, 0, true},
		{"overlaps landed block", at(squareO, 0, 15), 0, 1, false},
		{"fits into the gap", at(squareO, 3, 14), 0, 1, true},
		{"gap is too narrow when shifted", at(squareO, 3, 15), 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPosition(b, tt.piece, tt.dx, tt.dy))
		})
	}
}

func at(p Piece, x, y int) Piece {
	p.X, p.Y = x, y
	return p
}
