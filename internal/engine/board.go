// Package engine implements the rules of a two-player territory-capture
// match on a square grid. It is UI-agnostic and fully deterministic given
// the random source injected at match start; rendering, input, pacing and
// audio live in the presentation layer.
package engine

// CellOwner identifies who holds a board cell.
type CellOwner uint8

const (
	CellNeutral CellOwner = iota
	CellPlayer
	CellOpponent
)

// String returns the display name of a cell owner.
func (c CellOwner) String() string {
	switch c {
	case CellNeutral:
		return "Neutral"
	case CellPlayer:
		return "Player"
	case CellOpponent:
		return "Opponent"
	default:
		return "Unknown"
	}
}

// Side identifies one of the two combatants.
type Side uint8

const (
	SidePlayer Side = iota
	SideOpponent
)

// String returns the display name of a side.
func (s Side) String() string {
	if s == SidePlayer {
		return "Player"
	}
	return "Opponent"
}

// Enemy returns the opposing side.
func (s Side) Enemy() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// cell returns the owner value a side stamps onto captured cells.
func (s Side) cell() CellOwner {
	if s == SidePlayer {
		return CellPlayer
	}
	return CellOpponent
}

// Coord is a board position. 0 ≤ X,Y < board size.
type Coord struct {
	X int
	Y int
}

// Board is the N×N cell grid of a single match. The size is fixed at
// creation. Mutation is internal to the package; callers observe cells
// through At and Snapshot.
type Board struct {
	size  int
	cells []CellOwner
}

func newBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]CellOwner, size*size),
	}
}

// Size returns the board edge length.
func (b *Board) Size() int { return b.size }

// InBounds reports whether (x,y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// At returns the owner of cell (x,y). Out-of-bounds coordinates read as
// Neutral so render/highlight loops need no separate bounds guard.
func (b *Board) At(x, y int) CellOwner {
	if !b.InBounds(x, y) {
		return CellNeutral
	}
	return b.cells[y*b.size+x]
}

func (b *Board) set(x, y int, o CellOwner) {
	b.cells[y*b.size+x] = o
}

// AdjacentCells returns the up-to-4 orthogonal in-bounds neighbours of
// (x,y). Diagonals never count for adjacency.
func (b *Board) AdjacentCells(x, y int) []Coord {
	deltas := [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	adj := make([]Coord, 0, 4)
	for _, d := range deltas {
		nx, ny := x+d.X, y+d.Y
		if b.InBounds(nx, ny) {
			adj = append(adj, Coord{nx, ny})
		}
	}
	return adj
}

// hasNeighbour reports whether (x,y) has at least one orthogonal
// neighbour owned by the given owner.
func (b *Board) hasNeighbour(x, y int, o CellOwner) bool {
	for _, a := range b.AdjacentCells(x, y) {
		if b.At(a.X, a.Y) == o {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the cell grid in row-major order
// (index = y*Size + x).
func (b *Board) Snapshot() []CellOwner {
	out := make([]CellOwner, len(b.cells))
	copy(out, b.cells)
	return out
}

// count tallies cells held by an owner. The match keeps incremental
// counters; this exists for invariant checks.
func (b *Board) count(o CellOwner) int {
	n := 0
	for _, c := range b.cells {
		if c == o {
			n++
		}
	}
	return n
}
