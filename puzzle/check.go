package puzzle

/*

Correctness check

An independent re-verification of the global Sudoku constraint,
built only on the board's read accessor.  The solver never uses it
to guide the search.

*/

// Correct reports whether every row, column, and 3x3 region of the
// board contains each digit 1 through 9 exactly once.  Uncollapsed
// squares read as 0, so a board with any unfixed square never
// passes.  The check is a pure query: it mutates nothing and is
// idempotent.
func Correct(b *Board) bool {
	return correctRows(b) && correctColumns(b) && correctRegions(b)
}

// CheckIfCorrect runs Correct on the solver's board.
func (s *Solver) CheckIfCorrect() bool {
	return Correct(&s.board)
}

func correctRows(b *Board) bool {
	for y := 0; y < boardSide; y++ {
		if !groupComplete(b, Point{0, y}.Row()) {
			return false
		}
	}
	return true
}

func correctColumns(b *Board) bool {
	for x := 0; x < boardSide; x++ {
		if !groupComplete(b, Point{x, 0}.Column()) {
			return false
		}
	}
	return true
}

func correctRegions(b *Board) bool {
	for y := 0; y < boardSide; y += regionSide {
		for x := 0; x < boardSide; x += regionSide {
			if !groupComplete(b, Point{x, y}.Region()) {
				return false
			}
		}
	}
	return true
}

// groupComplete checks that the nine squares hold nine distinct
// digits, which for digits in 1..9 means exactly one of each.
func groupComplete(b *Board, group []Point) bool {
	var seen digitSet
	for _, p := range group {
		v := b.Value(p)
		if v == 0 || seen.has(v) {
			return false
		}
		seen.add(v)
	}
	return seen == fullDigitSet()
}
