package tetris

// IsValidPosition reports whether p shifted by (dx, dy) fits on the board.
//
// Cells above the top row are ignored, so a piece may hang partly above the
// board. Every other occupied cell must be inside the side walls, above the
// floor and over an empty board cell. All movement, rotation, gravity and
// spawn checks go through here.
func IsValidPosition(b *Board, p Piece, dx, dy int) bool {
	for _, pt := range p.Cells() {
		x, y := pt.X+dx, pt.Y+dy
		if y < 0 {
			continue
		}
		if x < 0 || x >= b.width || y >= b.height {
			return false
		}
		if b.cells[b.index(x, y)].Filled {
			return false
		}
	}
	return true
}
