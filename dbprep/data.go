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
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx"

	"github.com/BenJurewicz/collapse.go/puzzle"
)

/*

entries

*/

type dataFunction func(*pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/collapse?sslmode=disable"
	}

	// open the database, defer the close
	cfg, err := pgx.ParseURI(url)
	if err != nil {
		return err
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin()
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback()
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

sample puzzles

*/

// A Sample is a named starting grid shipped with the database,
// so fresh installs have puzzles to solve right away.
type Sample struct {
	Name   string
	Values []int
}

var (
	samplePuzzles = []Sample{
		{"classic", []int{
			0, 0, 0, 0, 0, 0, 0, 8, 0,
			6, 8, 0, 4, 7, 0, 0, 2, 0,
			0, 1, 9, 5, 0, 8, 6, 4, 7,
			0, 6, 0, 9, 0, 0, 0, 0, 4,
			3, 4, 2, 6, 8, 0, 0, 0, 0,
			1, 9, 0, 0, 5, 0, 8, 3, 0,
			0, 0, 0, 7, 2, 0, 4, 0, 3,
			0, 0, 6, 0, 0, 5, 0, 1, 0,
			0, 0, 3, 8, 9, 1, 5, 0, 0,
		}},
		{"one-star", []int{
			4, 0, 0, 0, 0, 3, 5, 0, 2,
			0, 0, 9, 5, 0, 6, 3, 4, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 8,
			0, 0, 0, 0, 3, 4, 8, 6, 0,
			0, 0, 4, 6, 0, 5, 2, 0, 0,
			0, 2, 8, 7, 9, 0, 0, 0, 0,
			9, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 8, 7, 3, 0, 2, 9, 0, 0,
			5, 0, 2, 9, 0, 0, 0, 0, 6,
		}},
		{"three-star", []int{
			0, 1, 0, 5, 0, 6, 0, 2, 0,
			0, 0, 0, 0, 0, 3, 0, 1, 8,
			0, 0, 0, 0, 7, 0, 0, 0, 6,
			0, 0, 5, 0, 0, 0, 0, 3, 0,
			0, 0, 8, 0, 9, 0, 7, 0, 0,
			0, 6, 0, 0, 0, 0, 4, 0, 0,
			5, 0, 0, 0, 4, 0, 0, 0, 0,
			6, 4, 0, 2, 0, 0, 0, 0, 0,
			0, 3, 0, 9, 0, 1, 0, 8, 0,
		}},
		{"five-star", []int{
			2, 0, 0, 8, 0, 0, 0, 5, 0,
			0, 8, 5, 0, 0, 0, 0, 0, 0,
			0, 3, 6, 7, 5, 0, 0, 0, 1,
			0, 0, 3, 0, 4, 0, 0, 9, 8,
			0, 0, 0, 3, 0, 5, 0, 0, 0,
			4, 1, 0, 0, 6, 0, 7, 0, 0,
			5, 0, 0, 0, 0, 7, 1, 2, 0,
			0, 0, 0, 0, 0, 0, 5, 6, 0,
			0, 2, 0, 0, 0, 0, 0, 0, 4,
		}},
		{"six-star", []int{
			9, 0, 0, 4, 5, 0, 0, 0, 8,
			0, 2, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 1, 7, 2, 4, 0, 0,
			0, 7, 9, 0, 0, 0, 6, 8, 0,
			2, 0, 0, 0, 0, 0, 0, 0, 5,
			0, 4, 3, 0, 0, 0, 2, 7, 0,
			0, 0, 8, 3, 2, 5, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 6, 0,
			4, 0, 0, 0, 1, 6, 0, 0, 3,
		}},
		{"chron-one", []int{
			9, 4, 8, 0, 5, 0, 2, 0, 0,
			0, 0, 7, 8, 0, 3, 0, 0, 1,
			0, 5, 0, 0, 7, 0, 0, 0, 0,
			0, 7, 0, 0, 0, 0, 3, 0, 0,
			2, 0, 0, 6, 0, 5, 0, 0, 4,
			0, 0, 5, 0, 0, 0, 0, 9, 0,
			0, 0, 0, 0, 6, 0, 0, 1, 0,
			3, 0, 0, 5, 0, 9, 7, 0, 0,
			0, 0, 6, 0, 1, 0, 4, 2, 3,
		}},
		{"chron-two", []int{
			0, 0, 0, 0, 0, 0, 0, 0, 0,
			9, 0, 0, 5, 0, 7, 0, 3, 0,
			0, 0, 0, 1, 0, 0, 6, 0, 7,
			0, 4, 0, 0, 6, 0, 0, 8, 2,
			6, 7, 0, 0, 0, 0, 0, 1, 3,
			3, 8, 0, 0, 1, 0, 0, 9, 0,
			7, 0, 5, 0, 0, 8, 0, 0, 0,
			0, 2, 0, 3, 0, 9, 0, 0, 8,
			0, 0, 0, 0, 0, 0, 0, 0, 0,
		}},
	}
	sampleSignatures []string // see init
)

// initialize the signatures from the sample puzzles
func init() {
	sampleSignatures = make([]string, len(samplePuzzles))
	for i := range samplePuzzles {
		if len(samplePuzzles[i].Values) != 81 {
			panic(fmt.Errorf("Can't happen! Sample puzzle %d is invalid!", i))
		}
		sampleSignatures[i] = puzzle.Signature(samplePuzzles[i].Values)
	}
}

// Samples returns the shipped sample puzzles in definition order.
func Samples() []Sample {
	return samplePuzzles
}

// SampleValues returns the starting grid of a named sample, or
// nil when no sample has the name.
func SampleValues(name string) []int {
	for _, s := range samplePuzzles {
		if s.Name == name {
			return s.Values
		}
	}
	return nil
}

// Create and insert the sample puzzles
func insertSamples(tx *pgx.Tx) error {
	// idempotency: if the first sample already exists, we are done
	var count int64
	row := tx.QueryRow("SELECT COUNT(*) FROM samples "+
		"WHERE sampleName = $1", samplePuzzles[0].Name)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("Database error looking for sample %q: %v",
			samplePuzzles[0].Name, err)
	}
	if count > 0 {
		return nil
	}

	// get the timestamp of this load
	now := time.Now()

	// first save the puzzles
	for i, sample := range samplePuzzles {
		values := make([]int32, len(sample.Values))
		for j, v := range sample.Values {
			values[j] = int32(v) // use 4-byte ints in database
		}
		_, err := tx.Exec(
			"INSERT INTO puzzles (signature, valueList, created) "+
				"VALUES ($1, $2, $3)",
			sampleSignatures[i], values, now)
		if err != nil {
			return fmt.Errorf("Database error saving sample puzzle %d: %v", i, err)
		}
	}

	// next save the name-to-signature mapping
	for i, sample := range samplePuzzles {
		_, err := tx.Exec(
			"INSERT INTO samples (sampleName, signature, created) "+
				"VALUES ($1, $2, $3)",
			sample.Name, sampleSignatures[i], now)
		if err != nil {
			return fmt.Errorf("Database error saving sample name %q: %v", sample.Name, err)
		}
	}

	return nil
}

// Remove the sample puzzles and their names
func deleteSamples(tx *pgx.Tx) error {
	for i, sample := range samplePuzzles {
		if _, err := tx.Exec(
			"DELETE from samples where sampleName = $1", sample.Name); err != nil {
			return fmt.Errorf("Database error deleting sample name %q: %v", sample.Name, err)
		}
		if _, err := tx.Exec(
			"DELETE from solves where signature = $1", sampleSignatures[i]); err != nil {
			return fmt.Errorf("Database error deleting sample solves %d: %v", i, err)
		}
		if _, err := tx.Exec(
			"DELETE from puzzles where signature = $1", sampleSignatures[i]); err != nil {
			return fmt.Errorf("Database error deleting sample puzzle %d: %v", i, err)
		}
	}
	return nil
}
