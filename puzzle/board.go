package puzzle

const (
	boardSide  = 9
	regionSide = 3
)

// A Board is the full 9x9 grid of cells, indexed [row][column].
// It is a plain array value: assigning one Board to another makes
// a deep, independent copy, because cells hold no pointers.  The
// solver's checkpoints are exactly such copies, so mutating the
// live board can never corrupt a saved one.
type Board [boardSide][boardSide]Cell

// newEmptyBoard returns a board of all-candidate cells.
func newEmptyBoard() Board {
	var b Board
	for y := range b {
		for x := range b[y] {
			b[y][x] = newEmptyCell()
		}
	}
	return b
}

// at returns the cell at p for mutation.
func (b *Board) at(p Point) *Cell {
	return &b[p.Y][p.X]
}

// Cell returns a copy of the cell at p.
func (b *Board) Cell(p Point) Cell {
	return b[p.Y][p.X]
}

// Value returns the collapsed digit at p, or 0 while the square is
// uncollapsed.  This is the read accessor rendering and the
// correctness check are built on.
func (b *Board) Value(p Point) int {
	return b[p.Y][p.X].value
}

// Values returns all 81 squares in reading order, collapsed digits
// as themselves and uncollapsed squares as 0.  The result shares
// no storage with the board.
func (b *Board) Values() []int {
	vs := make([]int, 0, boardSide*boardSide)
	for y := 0; y < boardSide; y++ {
		for x := 0; x < boardSide; x++ {
			vs = append(vs, b[y][x].value)
		}
	}
	return vs
}
