package puzzle

import (
	"fmt"
	"math/bits"
)

/*

Digit sets

*/

// A digitSet is a set of digits 1..9, kept as a bitmask.  We use
// digit sets both for a cell's remaining candidates and for the
// completeness scans in the correctness check.
type digitSet uint16

// fullDigitSet returns the set holding all nine digits.
func fullDigitSet() digitSet {
	return digitSet(0b1111111110)
}

func (ds digitSet) has(v int) bool {
	return ds&(1<<uint(v)) != 0
}

func (ds *digitSet) add(v int) {
	*ds |= 1 << uint(v)
}

func (ds *digitSet) remove(v int) {
	*ds &^= 1 << uint(v)
}

func (ds digitSet) count() int {
	return bits.OnesCount16(uint16(ds))
}

// lowest returns the smallest digit in the set, or 0 if empty.
func (ds digitSet) lowest() int {
	if ds == 0 {
		return 0
	}
	return bits.TrailingZeros16(uint16(ds))
}

// digits returns the members in increasing order.
func (ds digitSet) digits() []int {
	out := make([]int, 0, ds.count())
	for v := 1; v <= 9; v++ {
		if ds.has(v) {
			out = append(out, v)
		}
	}
	return out
}

/*

Cells

*/

// A Cell is one square of the board.  It is either collapsed to a
// definite digit, or uncollapsed with a set of candidate digits
// not yet ruled out.  The value field doubles as the variant tag:
// zero means uncollapsed and the candidates field is live, nonzero
// means collapsed and the candidates field is dead.
//
// While a cell is uncollapsed its candidate set is never empty;
// an operation that would empty it reports a contradiction and
// leaves the cell unchanged.
type Cell struct {
	value      int
	candidates digitSet
}

// newEmptyCell returns an uncollapsed cell with all nine digits
// still possible.
func newEmptyCell() Cell {
	return Cell{candidates: fullDigitSet()}
}

// newFilledCell returns a cell collapsed to v.  The caller is
// responsible for v being in 1..9.
func newFilledCell(v int) Cell {
	return Cell{value: v}
}

// Collapsed reports whether the cell holds a definite digit.
func (c Cell) Collapsed() bool {
	return c.value != 0
}

// Value returns the collapsed digit, or 0 while uncollapsed.
func (c Cell) Value() int {
	return c.value
}

// entropy is the search heuristic: the number of remaining
// candidates, or 1 for a collapsed cell.  An uncollapsed cell
// whose set has shrunk to a single digit also reports 1; it stays
// uncollapsed until the solve loop picks it and collapses it.
func (c Cell) entropy() int {
	if c.Collapsed() {
		return 1
	}
	return c.candidates.count()
}

// remove rules out digit v for this cell.  Removing a collapsed
// cell's own value is a contradiction; removing any other value
// from a collapsed cell is a no-op.  For an uncollapsed cell, a
// removal that would empty the candidate set is a contradiction
// and the set is left intact.
func (c *Cell) remove(v int) error {
	if c.Collapsed() {
		if c.value == v {
			return contradictionError(CellScope, ErrorData{v})
		}
		return nil
	}
	if !c.candidates.has(v) {
		return nil
	}
	if c.candidates.count() == 1 {
		return contradictionError(CellScope, ErrorData{v})
	}
	c.candidates.remove(v)
	return nil
}

// collapse fixes an uncollapsed cell to its lowest remaining
// candidate and returns the shadow cell: an uncollapsed cell
// holding the original candidates minus the chosen digit.  The
// shadow is what a checkpoint stores, so a later backtrack resumes
// the search with the chosen digit already rejected.
//
// Calling collapse on a collapsed cell violates its precondition
// and panics.
func (c *Cell) collapse() Cell {
	if c.Collapsed() {
		panic(fmt.Errorf("collapse of cell already collapsed to %d", c.value))
	}
	chosen := c.candidates.lowest()
	shadow := Cell{candidates: c.candidates}
	shadow.candidates.remove(chosen)
	c.value, c.candidates = chosen, 0
	return shadow
}
