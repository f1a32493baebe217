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
	"errors"
	"fmt"
)

/*

Errors

Only two failure kinds ever escape this package: a contradiction
(the given digits are mutually inconsistent, detected while
constructing a solver) and unsolvability (the search exhausted
every checkpoint).  Contradictions hit during the search itself
are recovered by backtracking and never surface individually.

*/

// An Error describes a problem with a starting grid or a solve
// run.  It tells the caller "this thing failed to meet this
// condition" and carries supplemental details for message
// formatting; clients that want to branch on the failure kind
// should use IsContradiction and IsUnsolvable rather than parse
// the message.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope says what type of thing the error refers to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	GridScope
	CellScope
	SolverScope
	MaxScope
)

// The ErrorCondition is the predicate the scope failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	ContradictionCondition
	UnsolvableCondition
	TooSmallCondition
	TooLargeCondition
	WrongSizeCondition
	BadDigitCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the predicate.  Every item must be JSON-serializable, so
// errors can be returned to web clients as-is.
type ErrorData []interface{}

// Error produces an error string.  If the Error has a pre-canned
// message, it's used, otherwise an appropriate English message is
// built from the parts.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Scope {
	case GridScope:
		es = "Invalid starting grid: "
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case SolverScope:
		es = "Solver: "
	default:
		es = "Unknown error: "
	}
	switch e.Condition {
	case ContradictionCondition:
		es += "initial state is inconsistent"
	case UnsolvableCondition:
		es += "no solution exists; every checkpoint was exhausted"
	case TooSmallCondition:
		es += fmt.Sprintf("value %v must be at least %v", nextVal(), nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("value %v must be at most %v", nextVal(), nextVal())
	case WrongSizeCondition:
		es += fmt.Sprintf("got %v values, need %v", nextVal(), nextVal())
	case BadDigitCondition:
		es += fmt.Sprintf("%q is not a digit, blank, or separator", nextVal())
	default:
		es += fmt.Sprintf("supplemental data is %v", values)
	}
	return es
}

// contradictionError builds the error for a candidate set that
// would become empty, or a collapsed cell losing its own value.
func contradictionError(scope ErrorScope, values ErrorData) Error {
	return Error{Scope: scope, Condition: ContradictionCondition, Values: values}
}

// unsolvableError is the terminal solve failure.
func unsolvableError() Error {
	return Error{Scope: SolverScope, Condition: UnsolvableCondition}
}

// rangeError describes an out-of-range starting digit.
func rangeError(val, min, max int) Error {
	err := Error{
		Scope:     GridScope,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values = ErrorData{val, min}
	}
	return err
}

// IsContradiction reports whether err is a contradiction Error:
// the starting digits already violate row, column, or region
// uniqueness.
func IsContradiction(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Condition == ContradictionCondition
}

// IsUnsolvable reports whether err is the unsolvable Error: the
// search ran out of checkpoints without completing the board.
func IsUnsolvable(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Condition == UnsolvableCondition
}
