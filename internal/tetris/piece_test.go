package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetris-gym/internal/core"
)

func TestRotationCounts(t *testing.T) {
	want := map[Shape]int{
		ShapeI: 2,
		ShapeJ: 4,
		ShapeL: 4,
		ShapeO: 1,
		ShapeS: 2,
		ShapeT: 4,
		ShapeZ: 2,
	}
	for shape, n := range want {
		assert.Equal(t, n, RotationCount(shape), "shape %v", shape)
	}
}

func TestEveryRotationHasFourBlocks(t *testing.T) {
	for _, shape := range Shapes() {
		for r := 0; r < RotationCount(shape); r++ {
			assert.Len(t, Template(shape, r).Offsets(), 4, "shape %v rotation %d", shape, r)
		}
	}
}

func TestTemplateLayouts(t *testing.T) {
	// Vertical I occupies column 2 of rows 0..3
	vertical := Template(ShapeI, 0)
	for y := 0; y < 4; y++ {
		assert.True(t, vertical[y][2], "row %d", y)
	}
	assert.False(t, vertical[4][2])

	// Horizontal I occupies row 2, columns 0..3
	assert.Equal(t, []core.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		Template(ShapeI, 1).Offsets())

	assert.Equal(t, []core.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}},
		Template(ShapeO, 0).Offsets())
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		shape    Shape
		rotation int
		want     int
	}{
		{ShapeT, 4, 0},
		{ShapeT, -1, 3},
		{ShapeI, 3, 1},
		{ShapeI, -2, 0},
		{ShapeO, 7, 0},
		{ShapeS, 1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRotation(tt.shape, tt.rotation), "%v rotation %d", tt.shape, tt.rotation)
	}
}

func TestShapeNamesAndColors(t *testing.T) {
	for i, s := range Shapes() {
		assert.Equal(t, Shape(i), s)
		assert.Equal(t, core.Color(i), s.Color())
	}
	assert.Equal(t, "IJLOSTZ", ShapeI.String()+ShapeJ.String()+ShapeL.String()+ShapeO.String()+
		ShapeS.String()+ShapeT.String()+ShapeZ.String())
	assert.Equal(t, "Shape(7)", Shape(7).String())
}

func TestPieceCells(t *testing.T) {
	p := Piece{Shape: ShapeO, X: 3, Y: -2, Color: ShapeO.Color()}
	assert.Equal(t, []core.Point{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}}, p.Cells())
	assert.Equal(t, "O/0@(3,-2)", p.String())
}
