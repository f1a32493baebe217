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

// Package client renders the web pages of the solver service.
package client

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/BenJurewicz/collapse.go/puzzle"
)

// A templateSolverPage contains the values to fill the solver
// page template.
type templateSolverPage struct {
	SessionID         string
	Signature         string
	Title, TopHead    string
	Puzzle            templatePuzzle
	Solved            bool
	Stats             puzzle.Stats
	ApplicationFooter string
}

// templatePuzzle is the structure expected by the puzzle grid
// section of the solver page template.
type templatePuzzle [][]templatePuzzleCell

// A templatePuzzleCell contains the cell's index, value, and CSS
// styling classes as expected by the puzzle grid section of the
// solver page template.
type templatePuzzleCell struct {
	Index                   int
	Value                   template.HTML
	Shade, HBorder, VBorder string
}

// SolverPage executes the solver page template over the passed
// session and board state, and returns the page content as a
// string.
func SolverPage(sessionID, signature string, values []int,
	solved bool, stats puzzle.Stats) string {
	tp, err := gridTemplatePuzzle(values)
	if err != nil {
		return ErrorPage(err)
	}
	tsp := templateSolverPage{
		SessionID:         sessionID,
		Signature:         signature,
		Title:             fmt.Sprintf("%s: Solver", brandName),
		TopHead:           "Puzzle Solver",
		Puzzle:            tp,
		Solved:            solved,
		Stats:             stats,
		ApplicationFooter: applicationFooter(),
	}
	tmpl, err := loadPageTemplate("solver")
	if err != nil {
		return ErrorPage(fmt.Errorf("Couldn't load the %q template: %v", "solver", err))
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, tsp); err != nil {
		return ErrorPage(err)
	}
	return buf.String()
}

/*

puzzle grid generation

*/

// gridTemplatePuzzle takes the 81 values of a board and returns
// the appropriate templatePuzzle.  Each cell is tagged with its
// region shade and border classes, so the style sheet can draw
// the 3x3 regions.
func gridTemplatePuzzle(vals []int) (templatePuzzle, error) {
	const slen, tlen = 9, 3
	if len(vals) != slen*slen {
		return nil, fmt.Errorf("Puzzle square count is %v: not a full board.", len(vals))
	}
	rows := make(templatePuzzle, slen)
	for i := 0; i < slen; i++ {
		rows[i] = make([]templatePuzzleCell, slen)
		// is this top, bottom, or middle row of region
		hborder := "middle"
		if i%tlen == 0 {
			hborder = "top"
		} else if i%tlen == tlen-1 {
			hborder = "bottom"
		}
		for j := 0; j < slen; j++ {
			index := i*slen + j
			value := template.HTML("&nbsp;")
			if val := vals[index]; val > 0 {
				value = template.HTML(fmt.Sprint(val))
			}
			region := i/tlen + j/tlen
			// even region or odd region shading
			shade := "lighter"
			if region%2 == 0 {
				shade = "darker"
			}
			// is this left, center, or right column of region
			vborder := "center"
			if j%tlen == 0 {
				vborder = "left"
			} else if j%tlen == tlen-1 {
				vborder = "right"
			}
			rows[i][j] = templatePuzzleCell{
				Index:   index,
				Value:   value,
				Shade:   shade,
				HBorder: hborder,
				VBorder: vborder,
			}
		}
	}
	return rows, nil
}

/*

error pages

*/

// ErrorPage renders a failure as a minimal self-contained page.
func ErrorPage(e error) string {
	tmpl, err := loadPageTemplate("error")
	if err != nil {
		return fmt.Sprintf("<html><body><h1>%s error</h1><p>%v</p></body></html>",
			brandName, e)
	}
	data := struct {
		Title, Message, ApplicationFooter string
	}{
		Title:             fmt.Sprintf("%s: Error", brandName),
		Message:           e.Error(),
		ApplicationFooter: applicationFooter(),
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return fmt.Sprintf("<html><body><h1>%s error</h1><p>%v</p></body></html>",
			brandName, e)
	}
	return buf.String()
}
