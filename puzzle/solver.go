// Package puzzle solves 9x9 Sudoku puzzles with a constraint
// propagation algorithm modeled after wave-function collapse.
//
// Every empty square starts with all nine digits as candidates.
// The solver repeatedly picks the uncollapsed square with the
// fewest remaining candidates (the lowest "entropy"), collapses it
// to its lowest candidate, and propagates the chosen digit to its
// relatives: the squares sharing its row, column, or 3x3 region.
// Propagation removes the digit from each relative's candidate
// set; a set that would become empty is a contradiction, proving
// the current partial assignment wrong.
//
// Backtracking is done with checkpoints instead of recursion.
// Before any collapse that discards alternative candidates, the
// solver pushes a full copy of the board with the collapsed square
// holding the discarded candidates only.  On contradiction, the
// newest checkpoint becomes the live board again, undoing every
// move since it was taken and retrying the square with its next
// candidate.  A puzzle is unsolvable when a contradiction arrives
// with no checkpoints left.
package puzzle

/*

The solve loop

*/

// A Grid is a starting arrangement: nine rows of nine digits in
// reading order, zero meaning a blank square.
type Grid [boardSide][boardSide]int

// Stats counts what the search did.  The counts are observational
// only; nothing in the algorithm reads them.
type Stats struct {
	Collapses  int `json:"collapses"`
	Backtracks int `json:"backtracks"`
}

// A Solver owns a board and drives it to a solution.  It holds the
// only references to its checkpoint boards, so restoring one can
// never be corrupted by later mutation of the live board.
//
// Solvers are not safe for concurrent use; the algorithm is
// inherently sequential, as every decision depends on the outcome
// of the previous propagation.
type Solver struct {
	start       Grid
	board       Board
	checkpoints []Board
	stats       Stats
}

// New creates a Solver for the given starting grid.  Every nonzero
// digit is placed as collapsed and immediately propagated to its
// relatives, which both prunes the empty squares' candidates and
// catches trivially invalid puzzles: if the given digits already
// duplicate a value within a row, column, or region, New fails
// with a contradiction Error before any search begins.
func New(grid Grid) (*Solver, error) {
	s := &Solver{
		start:       grid,
		board:       newEmptyBoard(),
		checkpoints: make([]Board, 0, boardSide*boardSide),
	}
	for y, row := range grid {
		for x, v := range row {
			if v == 0 {
				continue
			}
			if v < 1 || v > 9 {
				return nil, rangeError(v, 1, 9)
			}
			p := Point{x, y}
			*s.board.at(p) = newFilledCell(v)
			if err := s.propagate(p, v); err != nil {
				return nil, contradictionError(GridScope, ErrorData{p, v})
			}
		}
	}
	return s, nil
}

// Solve runs the collapse/propagate/backtrack loop to completion.
// On success every cell is collapsed and nil is returned.  On
// failure the unsolvable Error is returned and the board is left
// in whatever state existed when the last checkpoint ran out.
func (s *Solver) Solve() error {
	for {
		done, err := s.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step performs one iteration of the solve loop: select, collapse,
// propagate, and on contradiction rewind to the newest checkpoint.
// It returns done=true once no uncollapsed cell remains.  The only
// error it returns is the unsolvable Error; contradictions with a
// checkpoint available are recovered internally.
func (s *Solver) Step() (done bool, err error) {
	p, ok := s.lowestEntropy()
	if !ok {
		return true, nil
	}
	if err := s.collapseAndCheckpoint(p); err != nil {
		if len(s.checkpoints) == 0 {
			return false, unsolvableError()
		}
		s.board = s.checkpoints[len(s.checkpoints)-1]
		s.checkpoints = s.checkpoints[:len(s.checkpoints)-1]
		s.stats.Backtracks++
	}
	return false, nil
}

// lowestEntropy scans the board in reading order and returns the
// first uncollapsed cell with the fewest remaining candidates.
// The row-major scan with a strict < comparison makes the
// tie-break stable: of two equally constrained cells, the earlier
// one is always chosen.
func (s *Solver) lowestEntropy() (Point, bool) {
	var best Point
	lowest := boardSide + 1
	found := false
	for y := 0; y < boardSide; y++ {
		for x := 0; x < boardSide; x++ {
			c := &s.board[y][x]
			if c.Collapsed() {
				continue
			}
			if e := c.entropy(); e < lowest {
				lowest, best, found = e, Point{x, y}, true
			}
		}
	}
	return best, found
}

// collapseAndCheckpoint collapses the cell at p to its lowest
// candidate and propagates the choice.  When the collapse discards
// alternative candidates, a checkpoint is pushed first: a full
// board copy with p holding the shadow value, so a backtrack
// resumes the search from "chosen digit rejected, try the rest".
func (s *Solver) collapseAndCheckpoint(p Point) error {
	cell := s.board.at(p)
	save := cell.entropy() > 1
	shadow := cell.collapse()
	if save {
		checkpoint := s.board
		*checkpoint.at(p) = shadow
		s.checkpoints = append(s.checkpoints, checkpoint)
	}
	s.stats.Collapses++
	return s.propagate(p, cell.value)
}

// propagate removes the newly fixed digit from every relative of
// p, short-circuiting on the first contradiction.
func (s *Solver) propagate(p Point, v int) error {
	for _, q := range p.Relatives() {
		if err := s.board.at(q).remove(v); err != nil {
			return err
		}
	}
	return nil
}

/*

Read access

*/

// Board returns the solver's live board for reading.  Mutating it
// through the returned pointer is not supported.
func (s *Solver) Board() *Board {
	return &s.board
}

// Value returns the collapsed digit at p, or 0 while p is still
// uncollapsed.
func (s *Solver) Value(p Point) int {
	return s.board.Value(p)
}

// Values returns all 81 squares in reading order, 0 for
// uncollapsed squares.
func (s *Solver) Values() []int {
	return s.board.Values()
}

// StartValues returns the 81 squares of the starting grid in
// reading order, unaffected by any solving since.
func (s *Solver) StartValues() []int {
	vs := make([]int, 0, boardSide*boardSide)
	for y := 0; y < boardSide; y++ {
		for x := 0; x < boardSide; x++ {
			vs = append(vs, s.start[y][x])
		}
	}
	return vs
}

// Checkpoints returns the current depth of the checkpoint stack.
func (s *Solver) Checkpoints() int {
	return len(s.checkpoints)
}

// Stats returns the counters accumulated so far.
func (s *Solver) Stats() Stats {
	return s.stats
}
