// Package tetris implements the deterministic falling-block engine: the piece
// catalogue, the board, placement rules, the movement and gravity controller,
// scoring and the episode state machine exposed through Env.
//
// The package is UI-agnostic and has no wall-clock dependency; one call to
// Env.Step is one tick.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tetris-gym/internal/core"
)

// Shape identifies one of the seven piece kinds.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// NumShapes is the number of piece kinds in the catalogue.
const NumShapes = 7

// TemplateSize is the side of the square footprint that bounds every rotation.
const TemplateSize = 5

// Mask is one rotation state: Mask[y][x] is true where the piece has a block.
type Mask [TemplateSize][TemplateSize]bool

// templateLayouts holds every rotation state as text rows; 'O' marks a block.
var templateLayouts = [NumShapes][][TemplateSize]string{
	ShapeI: {
		{
			"..O..",
			"..O..",
			"..O..",
			"..O..",
			".....",
		},
		{
			".....",
			".....",
			"OOOO.",
			".....",
			".....",
		},
	},
	ShapeJ: {
		{
			".....",
			".O...",
			".OOO.",
			".....",
			".....",
		},
		{
			".....",
			"..OO.",
			"..O..",
			"..O..",
			".....",
		},
		{
			".....",
			".....",
			".OOO.",
			"...O.",
			".....",
		},
		{
			".....",
			"..O..",
			"..O..",
			".OO..",
			".....",
		},
	},
	ShapeL: {
		{
			".....",
			"...O.",
			".OOO.",
			".....",
			".....",
		},
		{
			".....",
			"..O..",
			"..O..",
			"..OO.",
			".....",
		},
		{
			".....",
			".....",
			".OOO.",
			".O...",
			".....",
		},
		{
			".....",
			".OO..",
			"..O..",
			"..O..",
			".....",
		},
	},
	ShapeO: {
		{
			".....",
			".....",
			".OO..",
			".OO..",
			".....",
		},
	},
	ShapeS: {
		{
			".....",
			".....",
			"..OO.",
			".OO..",
			".....",
		},
		{
			".....",
			"..O..",
			"..OO.",
			"...O.",
			".....",
		},
	},
	ShapeT: {
		{
			".....",
			"..O..",
			".OOO.",
			".....",
			".....",
		},
		{
			".....",
			"..O..",
			"..OO.",
			"..O..",
			".....",
		},
		{
			".....",
			".....",
			".OOO.",
			"..O..",
			".....",
		},
		{
			".....",
			"..O..",
			".OO..",
			"..O..",
			".....",
		},
	},
	ShapeZ: {
		{
			".....",
			".....",
			".OO..",
			"..OO.",
			".....",
		},
		{
			".....",
			"..O..",
			".OO..",
			".O...",
			".....",
		},
	},
}

// catalogue is built once from templateLayouts and never mutated.
var catalogue = buildCatalogue()

func buildCatalogue() [NumShapes][]Mask {
	var cat [NumShapes][]Mask
	for s, rotations := range templateLayouts {
		if len(rotations) == 0 {
			panic(fmt.Sprintf("tetris: shape %v has no rotations", Shape(s)))
		}
		cat[s] = make([]Mask, len(rotations))
		for r, rows := range rotations {
			for y, row := range rows {
				for x, ch := range row {
					cat[s][r][y][x] = ch == 'O'
				}
			}
		}
	}
	return cat
}

// Shapes returns every shape in catalogue order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
}

// Valid reports whether s is a catalogue entry.
func (s Shape) Valid() bool {
	return s >= 0 && s < NumShapes
}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return string("IJLOSTZ"[s])
}

// Color returns the fixed palette index of the shape.
func (s Shape) Color() core.Color {
	return core.Color(s)
}

// RotationCount returns how many rotation states the shape has.
func RotationCount(s Shape) int {
	return len(catalogue[s])
}

// NormalizeRotation maps any integer onto [0, RotationCount(s)).
func NormalizeRotation(s Shape, rotation int) int {
	n := RotationCount(s)
	return ((rotation % n) + n) % n
}

// Template returns the occupancy mask of a shape in a rotation state.
// The rotation must already be normalised.
func Template(s Shape, rotation int) Mask {
	return catalogue[s][rotation]
}

// Offsets returns the occupied (x, y) offsets of the mask, row by row.
func (m Mask) Offsets() []core.Point {
	offsets := make([]core.Point, 0, 4)
	for y := 0; y < TemplateSize; y++ {
		for x := 0; x < TemplateSize; x++ {
			if m[y][x] {
				offsets = append(offsets, core.Point{X: x, Y: y})
			}
		}
	}
	return offsets
}

// Piece is the active (or next) piece: a shape in a rotation state placed at
// board coordinates. Y may be negative while the piece is above the board.
type Piece struct {
	Shape    Shape
	Rotation int
	X, Y     int
	Color    core.Color
}

// Mask returns the piece's current occupancy mask.
func (p Piece) Mask() Mask {
	return Template(p.Shape, p.Rotation)
}

// Cells returns the absolute board coordinates the piece occupies,
// including those above the visible board.
func (p Piece) Cells() []core.Point {
	offsets := p.Mask().Offsets()
	for i := range offsets {
		offsets[i] = offsets[i].Add(p.X, p.Y)
	}
	return offsets
}

// String returns a compact description such as "T/2@(3,-2)".
func (p Piece) String() string {
	return fmt.Sprintf("%v/%d@(%d,%d)", p.Shape, p.Rotation, p.X, p.Y)
}
