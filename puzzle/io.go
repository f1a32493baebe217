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

package puzzle

import (
	"fmt"
	"strconv"
)

/*

Pretty-printed boards in strings

*/

// String renders the board as a text grid: collapsed squares show
// their digit, uncollapsed squares are blank, and rows and columns
// are separated every three cells to delimit the regions.
func (b *Board) String() (result string) {
	for y := 0; y < boardSide; y++ {
		for x := 0; x < boardSide; x++ {
			if v := b.Value(Point{x, y}); v != 0 {
				result += strconv.Itoa(v)
			} else {
				result += " "
			}
			result += " "
			if x%regionSide == regionSide-1 && x != boardSide-1 {
				result += "| "
			}
		}
		result += "\n"
		if y%regionSide == regionSide-1 && y != boardSide-1 {
			for x := 0; x < 2*boardSide+3; x++ {
				if x == 6 || x == 14 {
					result += "+"
				} else {
					result += "-"
				}
			}
			result += "\n"
		}
	}
	return
}

// String gives the pretty-printed view of a solver's live board.
func (s *Solver) String() string {
	return s.board.String()
}

/*

Markdown-formatted tables, for documentation and the CLI

*/

// ValuesMarkdown returns a markdown-format table for the board.
func (b *Board) ValuesMarkdown() (result string) {
	// header row of column numbers
	result += "|     |"
	for i := 0; i < boardSide; i++ {
		result += "  " + strconv.Itoa(i+1) + "  |"
	}
	result += "\n|"
	for i := 0; i < boardSide+1; i++ {
		result += ":---:|"
	}
	result += "\n"
	// content rows, each prefixed by a letter
	for y, rowhdr := 0, 'a'; y < boardSide; y, rowhdr = y+1, rowhdr+1 {
		result += "|**" + string(rowhdr) + "**"
		for x := 0; x < boardSide; x++ {
			if v := b.Value(Point{x, y}); v != 0 {
				result += fmt.Sprintf("|  %d  ", v)
			} else {
				result += "|     "
			}
		}
		result += "|\n"
	}
	return
}

/*

Grid input

*/

// GridFromValues builds a Grid from 81 digits in reading order,
// zero meaning blank.  It fails if the slice has the wrong length
// or holds anything outside 0..9.
func GridFromValues(values []int) (Grid, error) {
	var g Grid
	if len(values) != boardSide*boardSide {
		return g, Error{
			Scope:     GridScope,
			Condition: WrongSizeCondition,
			Values:    ErrorData{len(values), boardSide * boardSide},
		}
	}
	for i, v := range values {
		if v < 0 || v > 9 {
			return g, rangeError(v, 0, 9)
		}
		g[i/boardSide][i%boardSide] = v
	}
	return g, nil
}

// ParseGrid reads a Grid from text.  Digits 1-9 are themselves,
// and '0', '.', and '_' all mean a blank square.  Whitespace and
// the separator characters '|', '+', and '-' are skipped, so one
// grid can be written as a bare 81-digit string or laid out in
// rows with region separators.  Anything else, or a count other
// than 81 squares, is an error.
func ParseGrid(text string) (Grid, error) {
	var g Grid
	count := 0
	for _, r := range text {
		var v int
		switch {
		case r >= '1' && r <= '9':
			v = int(r - '0')
		case r == '0' || r == '.' || r == '_':
			v = 0
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r == '|' || r == '+' || r == '-':
			continue
		default:
			return g, Error{
				Scope:     GridScope,
				Condition: BadDigitCondition,
				Values:    ErrorData{string(r)},
			}
		}
		if count >= boardSide*boardSide {
			count++
			continue
		}
		g[count/boardSide][count%boardSide] = v
		count++
	}
	if count != boardSide*boardSide {
		return g, Error{
			Scope:     GridScope,
			Condition: WrongSizeCondition,
			Values:    ErrorData{count, boardSide * boardSide},
		}
	}
	return g, nil
}
