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
	"encoding/json"
	"fmt"
	"net/http"
)

/*

RESTful wrappers over the solver, so it's easy to build web
services on top of it.

*/

// A SolveRequest is the posted form of a starting grid: 81 digits
// in reading order, zero meaning blank.
type SolveRequest struct {
	Values []int `json:"values"`
}

// A SolveResult is the response to a solve request.  Solved is
// false when the search exhausted its checkpoints; in that case
// Values holds whatever state the board ended in.
type SolveResult struct {
	Solved  bool    `json:"solved"`
	Correct bool    `json:"correct"`
	Values  []int   `json:"values"`
	Stats   Stats   `json:"stats"`
	Errors  []Error `json:"errors,omitempty"`
}

// SolveHandler is a POST handler that reads a JSON-encoded
// SolveRequest, builds a Solver from it, and runs the solve to
// completion.  The SolveResult is sent as a 200 response and the
// finished solver is returned to the golang caller.  A malformed
// request or a contradictory grid gets a 400 response carrying the
// Error; an unsolvable grid is not a request error and is reported
// inside a 200 SolveResult.
func SolveHandler(w http.ResponseWriter, r *http.Request) (*Solver, error) {
	dec := json.NewDecoder(r.Body)
	var req SolveRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	grid, e := GridFromValues(req.Values)
	if e != nil {
		return nil, writeErrorValue(e, w, r)
	}
	s, e := New(grid)
	if e != nil {
		return nil, writeErrorValue(e, w, r)
	}
	result := SolveResult{Solved: true}
	if e := s.Solve(); e != nil {
		err, ok := e.(Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"SolveHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		result.Solved = false
		result.Errors = append(result.Errors, err)
	}
	result.Correct = s.CheckIfCorrect()
	result.Values = s.Values()
	result.Stats = s.Stats()
	return s, writeJSON(result, http.StatusOK, w, r)
}

// StateHandler responds with the solver's current board values.
func (s *Solver) StateHandler(w http.ResponseWriter, r *http.Request) error {
	if s == nil {
		return writeError(noSolverError, ErrorData{r.URL.Path, "No puzzle"}, w, r)
	}
	state := struct {
		Values      []int `json:"values"`
		Checkpoints int   `json:"checkpoints"`
		Stats       Stats `json:"stats"`
	}{s.Values(), s.Checkpoints(), s.Stats()}
	return writeJSON(state, http.StatusOK, w, r)
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	noSolverError
	errorFormatError
)

// writeErrorValue sends a puzzle Error back as a 400 response and
// returns it to the handler's caller.
func writeErrorValue(e error, w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(Error)
	if !ok {
		return writeError(errorFormatError, ErrorData{r.URL.Path, e.Error()}, w, r)
	}
	err.Message = err.Error()
	return writeJSON(err, http.StatusBadRequest, w, r)
}

// writeError sends back a server error of the given type, sort of
// like http.Error, but it sends the JSON form of an appropriate
// Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     GridScope,
			Condition: UnknownCondition,
			Values:    ed,
			Message:   fmt.Sprintf("Invalid request: JSON decode error: %v", ed),
		}
	case noSolverError:
		status = http.StatusNotFound
		err = Error{
			Scope:     SolverScope,
			Condition: UnknownCondition,
			Values:    ed,
			Message:   fmt.Sprintf("Invalid request: resource path: %v", ed),
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     SolverScope,
			Condition: UnknownCondition,
			Values:    ed,
			Message:   fmt.Sprintf("Internal logic error: %v", ed),
		}
	}
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller: the Error being sent if the
// response is an Error, the encoding failure if one occurs, and
// nil otherwise.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr {
			// We just failed to encode an Error.  Pseudo-encode it
			// by hand as a quoted string rather than recurse.
			status = http.StatusInternalServerError
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
