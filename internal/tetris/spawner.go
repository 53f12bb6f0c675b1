package tetris

import (
	"math/rand"

	"github.com/kamstrup/intmap"
)

// Spawn position of every new piece, relative to the board's top-left corner.
const spawnY = -2

// Spawner draws new pieces from the episode's random source.
type Spawner struct {
	rng   *rand.Rand
	width int
}

// NewSpawner creates a spawner for a board of the given width.
// The rng is shared with the Env and must not be used concurrently.
func NewSpawner(rng *rand.Rand, width int) *Spawner {
	return &Spawner{rng: rng, width: width}
}

// Spawn returns a new piece: a uniformly chosen shape in a uniformly chosen
// rotation, horizontally centred and two rows above the board.
func (s *Spawner) Spawn() Piece {
	shape := Shape(s.rng.Intn(NumShapes))
	return Piece{
		Shape:    shape,
		Rotation: s.rng.Intn(RotationCount(shape)),
		X:        s.width/2 - TemplateSize/2,
		Y:        spawnY,
		Color:    shape.Color(),
	}
}

// Statistics counts how many pieces of each shape became active.
type Statistics struct {
	counts *intmap.Map[Shape, int]
}

// NewStatistics creates an empty counter.
func NewStatistics() *Statistics {
	return &Statistics{counts: intmap.New[Shape, int](NumShapes)}
}

// Record counts one more piece of shape s.
func (st *Statistics) Record(s Shape) {
	n, _ := st.counts.Get(s)
	st.counts.Put(s, n+1)
}

// Count returns how many pieces of shape s were recorded.
func (st *Statistics) Count(s Shape) int {
	n, _ := st.counts.Get(s)
	return n
}

// Total returns the number of recorded pieces.
func (st *Statistics) Total() int {
	total := 0
	for _, s := range Shapes() {
		total += st.Count(s)
	}
	return total
}

// Clear forgets every count.
func (st *Statistics) Clear() {
	st.counts.Clear()
}

// Map returns the counts keyed by shape letter, with every shape present.
func (st *Statistics) Map() map[string]int {
	out := make(map[string]int, NumShapes)
	for _, s := range Shapes() {
		out[s.String()] = st.Count(s)
	}
	return out
}
