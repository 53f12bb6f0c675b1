package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tetris-gym/internal/core"
)

// Cell is one board square: empty, or filled with a palette color.
type Cell struct {
	Filled bool
	Color  core.Color
}

// FilledCell returns a filled cell of color c.
func FilledCell(c core.Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Board is the fixed-size grid of landed blocks. Row 0 is the top.
// It only changes through MergePiece and ClearCompletedLines.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// ParseBoard builds a board from text rows, top row first.
// '.' is empty and a digit 0-6 is a filled cell of that palette index.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tetris: empty board layout")
	}
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("tetris: row %d has width %d, want %d", y, len(row), b.width)
		}
		for x := 0; x < len(row); x++ {
			switch ch := row[x]; {
			case ch == '.':
			case ch >= '0' && ch < '0'+core.NumColors:
				b.cells[b.index(x, y)] = FilledCell(core.Color(ch - '0'))
			default:
				return nil, fmt.Errorf("tetris: unexpected %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Bounds returns the grid as a rectangle anchored at the origin.
func (b *Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// At returns the cell at (x, y).
func (b *Board) At(x, y int) (Cell, error) {
	if !b.Bounds().Contains(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.cells[b.index(x, y)], nil
}

// IsFilled reports whether the cell at (x, y) holds a block.
func (b *Board) IsFilled(x, y int) (bool, error) {
	c, err := b.At(x, y)
	if err != nil {
		return false, err
	}
	return c.Filled, nil
}

// MergePiece writes the piece's color into every cell it occupies.
// Cells above the top row are dropped. The piece must otherwise lie inside
// the grid; anything else is an engine bug and panics.
func (b *Board) MergePiece(p Piece) {
	for _, pt := range p.Cells() {
		if pt.Y < 0 {
			continue
		}
		if !b.Bounds().ContainsPoint(pt) {
			panic(fmt.Sprintf("tetris: merging %v outside %dx%d board at (%d,%d)", p, b.width, b.height, pt.X, pt.Y))
		}
		b.cells[b.index(pt.X, pt.Y)] = FilledCell(p.Color)
	}
}

// IsRowComplete reports whether every cell of row y is filled.
func (b *Board) IsRowComplete(y int) bool {
	row := b.cells[b.index(0, y):b.index(0, y+1)]
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

func (b *Board) isRowEmpty(y int) bool {
	row := b.cells[b.index(0, y):b.index(0, y+1)]
	for _, c := range row {
		if c.Filled {
			return false
		}
	}
	return true
}

// ClearCompletedLines removes every complete row and returns how many were
// removed. Rows are scanned bottom to top. After a removal everything above
// shifts down by one, the top row becomes empty and the same row index is
// examined again.
func (b *Board) ClearCompletedLines() int {
	removed := 0
	y := b.height - 1
	for y >= 0 {
		if !b.IsRowComplete(y) {
			y--
			continue
		}
		copy(b.cells[b.width:b.index(0, y+1)], b.cells[0:b.index(0, y)])
		clear(b.cells[0:b.width])
		removed++
	}
	return removed
}

// StackHeight measures the landed stack. Scanning from the bottom, the first
// fully empty row y gives height-1-y; a board without an empty row is full
// height. An empty board has height 0.
func (b *Board) StackHeight() int {
	for y := b.height - 1; y >= 0; y-- {
		if b.isRowEmpty(y) {
			return b.height - 1 - y
		}
	}
	return b.height
}

// Cells returns a row-major copy of the grid.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Cells()}
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board in the ParseBoard layout, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[b.index(x, y)]
			if c.Filled {
				sb.WriteByte('0' + byte(c.Color))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
