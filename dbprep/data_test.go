// collapse.go - a wave-function-collapse Sudoku solver.
// Copyright (C) 2026 Ben Jurewicz.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package dbprep

import (
	"reflect"
	"strings"
	"testing"

	"github.com/BenJurewicz/collapse.go/puzzle"
)

// make sure string case invariants are met
func TestSampleData(t *testing.T) {
	for i, sig := range sampleSignatures {
		if sig != strings.ToUpper(sig) {
			t.Errorf("Signature %d (%s) contains a non-uppercase letter.", i, sig)
		}
	}
	for i, s := range samplePuzzles {
		if s.Name != strings.ToLower(s.Name) {
			t.Errorf("Name %d (%s) contains a non-lowercase letter.", i, s.Name)
		}
	}
}

// every shipped sample must build a solver without complaint
func TestSamplesAreValid(t *testing.T) {
	for _, s := range samplePuzzles {
		g, e := puzzle.GridFromValues(s.Values)
		if e != nil {
			t.Errorf("Sample %q has a bad grid: %v", s.Name, e)
			continue
		}
		if _, e := puzzle.New(g); e != nil {
			t.Errorf("Sample %q is contradictory: %v", s.Name, e)
		}
	}
}

func TestSampleLookup(t *testing.T) {
	if got := SampleValues("classic"); !reflect.DeepEqual(got, samplePuzzles[0].Values) {
		t.Errorf("classic sample lookup returned %v", got)
	}
	if SampleValues("no-such-sample") != nil {
		t.Errorf("unknown sample lookup succeeded")
	}
	if len(Samples()) != len(samplePuzzles) {
		t.Errorf("Samples() returned %d entries", len(Samples()))
	}
}
