package puzzle

/*

Board geometry

The board is a fixed 9x9 grid.  Every square is constrained by
three groups: its row, its column, and the 3x3 region it sits in.
The union of those groups, minus the square itself, are the
square's relatives: the squares a collapse must be propagated to.

*/

// A Point addresses one square of the board: X is the zero-based
// column, Y the zero-based row.  Points are plain values, so they
// compare with == and work as map keys.
type Point struct {
	X, Y int
}

// Mul scales both coordinates by k.
func (p Point) Mul(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// RegionOrigin returns the top-left square of the 3x3 region
// containing p.
func (p Point) RegionOrigin() Point {
	return Point{p.X / 3, p.Y / 3}.Mul(3)
}

// Row returns the nine squares of p's row, left to right.
func (p Point) Row() []Point {
	row := make([]Point, boardSide)
	for x := 0; x < boardSide; x++ {
		row[x] = Point{x, p.Y}
	}
	return row
}

// Column returns the nine squares of p's column, top to bottom.
func (p Point) Column() []Point {
	col := make([]Point, boardSide)
	for y := 0; y < boardSide; y++ {
		col[y] = Point{p.X, y}
	}
	return col
}

// Region returns the nine squares of the 3x3 region containing p,
// in reading order.
func (p Point) Region() []Point {
	origin := p.RegionOrigin()
	region := make([]Point, 0, regionSide*regionSide)
	for y := origin.Y; y < origin.Y+regionSide; y++ {
		for x := origin.X; x < origin.X+regionSide; x++ {
			region = append(region, Point{x, y})
		}
	}
	return region
}

// Relatives returns every square sharing a row, column, or region
// with p, excluding p itself.  A square has 8+8+8 group neighbors
// with 4 shared between the region and the row/column, so the
// result always holds 20 distinct points.
func (p Point) Relatives() []Point {
	seen := make(map[Point]bool, 21)
	seen[p] = true
	relatives := make([]Point, 0, 20)
	for _, group := range [][]Point{p.Row(), p.Column(), p.Region()} {
		for _, q := range group {
			if !seen[q] {
				seen[q] = true
				relatives = append(relatives, q)
			}
		}
	}
	return relatives
}
