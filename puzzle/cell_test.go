package puzzle

import (
	"reflect"
	"testing"
)

func TestEmptyCell(t *testing.T) {
	c := newEmptyCell()
	if c.Collapsed() {
		t.Errorf("fresh cell reads as collapsed")
	}
	if c.Value() != 0 {
		t.Errorf("fresh cell has value %d", c.Value())
	}
	if c.entropy() != 9 {
		t.Errorf("fresh cell has entropy %d (expected 9)", c.entropy())
	}
	if got := c.candidates.digits(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("fresh cell has candidates %v", got)
	}
}

func TestFilledCell(t *testing.T) {
	c := newFilledCell(7)
	if !c.Collapsed() || c.Value() != 7 {
		t.Errorf("filled cell is %+v", c)
	}
	if c.entropy() != 1 {
		t.Errorf("filled cell has entropy %d (expected 1)", c.entropy())
	}
}

func TestCellRemove(t *testing.T) {
	c := newEmptyCell()
	for v := 1; v <= 8; v++ {
		if e := c.remove(v); e != nil {
			t.Fatalf("removing %d from %d candidates failed: %v", v, c.entropy(), e)
		}
	}
	if c.entropy() != 1 || c.candidates.lowest() != 9 {
		t.Fatalf("cell after eight removals: %+v", c)
	}
	// a single candidate stays uncollapsed until the solve loop
	// picks it
	if c.Collapsed() {
		t.Errorf("last-candidate cell reads as collapsed")
	}
	// removing the last candidate is a contradiction and must not
	// change the cell
	e := c.remove(9)
	if e == nil {
		t.Fatalf("removing the last candidate succeeded")
	}
	if !IsContradiction(e) {
		t.Errorf("error is not a contradiction: %v", e)
	}
	if c.entropy() != 1 || !c.candidates.has(9) {
		t.Errorf("failed removal changed the cell: %+v", c)
	}
	// removing an already absent digit is a no-op
	if e := c.remove(5); e != nil {
		t.Errorf("removing an absent digit failed: %v", e)
	}
}

func TestCollapsedCellRemove(t *testing.T) {
	c := newFilledCell(3)
	if e := c.remove(8); e != nil {
		t.Errorf("removing another digit from a collapsed cell failed: %v", e)
	}
	e := c.remove(3)
	if e == nil {
		t.Fatalf("removing a collapsed cell's own value succeeded")
	}
	if !IsContradiction(e) {
		t.Errorf("error is not a contradiction: %v", e)
	}
	if !c.Collapsed() || c.Value() != 3 {
		t.Errorf("failed removal changed the cell: %+v", c)
	}
}

func TestCellCollapse(t *testing.T) {
	c := newEmptyCell()
	c.remove(1)
	c.remove(4)
	shadow := c.collapse()
	if !c.Collapsed() || c.Value() != 2 {
		t.Errorf("collapse chose %d (expected the lowest candidate, 2)", c.Value())
	}
	if shadow.Collapsed() {
		t.Errorf("shadow cell reads as collapsed")
	}
	if got := shadow.candidates.digits(); !reflect.DeepEqual(got, []int{3, 5, 6, 7, 8, 9}) {
		t.Errorf("shadow candidates are %v (expected 3 5 6 7 8 9)", got)
	}
}

func TestCollapseTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("second collapse did not panic")
		}
	}()
	c := newEmptyCell()
	c.collapse()
	c.collapse()
}

func TestDigitSet(t *testing.T) {
	var ds digitSet
	if ds.count() != 0 || ds.lowest() != 0 {
		t.Errorf("empty set: count=%d lowest=%d", ds.count(), ds.lowest())
	}
	ds.add(5)
	ds.add(2)
	ds.add(9)
	if ds.count() != 3 || ds.lowest() != 2 {
		t.Errorf("set {2,5,9}: count=%d lowest=%d", ds.count(), ds.lowest())
	}
	if !reflect.DeepEqual(ds.digits(), []int{2, 5, 9}) {
		t.Errorf("set members are %v", ds.digits())
	}
	ds.remove(2)
	if ds.has(2) || !ds.has(5) || ds.lowest() != 5 {
		t.Errorf("set after removing 2: %v", ds.digits())
	}
	if fullDigitSet().count() != 9 {
		t.Errorf("full set has %d members", fullDigitSet().count())
	}
}
