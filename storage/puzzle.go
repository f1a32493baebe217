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

package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"
	log "github.com/sirupsen/logrus"

	"github.com/BenJurewicz/collapse.go/puzzle"
)

/*

puzzle entries

*/

// A PuzzleEntry is the stored form of a starting grid.  Entries
// are keyed by the grid's signature, so the same arrangement of
// digits is stored exactly once no matter how many clients submit
// it.  It is JSON serializable so it can go into the cache as
// well as the database.
type PuzzleEntry struct {
	Signature string  // content hash of the values
	Values    []int32 // 81 digits in reading order, 0 for blank
	Created   time.Time
}

// NewPuzzleEntry builds the entry for a starting grid.
func NewPuzzleEntry(values []int) *PuzzleEntry {
	vals := make([]int32, len(values))
	for i, v := range values {
		vals[i] = int32(v)
	}
	return &PuzzleEntry{
		Signature: puzzle.Signature(values),
		Values:    vals,
		Created:   time.Now(),
	}
}

// MakeGrid converts the stored digits back to a solver grid.
func (pe *PuzzleEntry) MakeGrid() (puzzle.Grid, error) {
	values := make([]int, len(pe.Values))
	for i, v := range pe.Values {
		values[i] = int(v)
	}
	return puzzle.GridFromValues(values)
}

// LoadPuzzleEntry first checks the cache, then the database, to
// find the puzzle's entry.  If it loads from the database, it
// caches the result.  Returns nil when the puzzle has never been
// stored.
func LoadPuzzleEntry(signature string) *PuzzleEntry {
	pe := &PuzzleEntry{Signature: signature}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, try the database and write through to the cache
	if !pe.databaseLoad() {
		return nil
	}
	pe.cacheInsert()
	return pe
}

// SavePuzzleEntry stores the entry in both backends, skipping
// the database insert when the signature is already present.
func SavePuzzleEntry(pe *PuzzleEntry) {
	if !pe.databaseLoad() {
		pe.databaseInsert()
	}
	pe.cacheInsert()
}

// key: compute the cache key for a PuzzleEntry.
func (pe *PuzzleEntry) key() string {
	return rdEnv + ":PZL:" + pe.Signature
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *PuzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzle %q: %v", pe.Signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *PuzzleEntry
	if err := json.Unmarshal(bytes, &spe); err != nil {
		panic(fmt.Errorf("Failed to unmarshal puzzle %q: %v", pe.Signature, err))
	}
	if spe.Signature != pe.Signature {
		panic(fmt.Errorf("Cached puzzle (id: %q) found for puzzle %q!",
			spe.Signature, pe.Signature))
	}
	*pe = *spe
	return true
}

// cacheInsert: insert a puzzle entry into the cache.  Replaces
// any existing entry with the same signature.
func (pe *PuzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal puzzle %q: %v", pe.Signature, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving puzzle %q: %v", pe.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad: load a puzzle entry from the database.  Returns
// whether a saved entry with the signature exists.
func (pe *PuzzleEntry) databaseLoad() (found bool) {
	body := func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT valueList, created FROM puzzles "+
				"WHERE signature = $1", pe.Signature)
		err := row.Scan(&pe.Values, &pe.Created)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", pe.Signature, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return
}

// databaseInsert: insert a new puzzle entry into the database.
// Panics if there is already a saved entry with the signature.
func (pe *PuzzleEntry) databaseInsert() {
	body := func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO puzzles (signature, valueList, created) "+
				"VALUES ($1, $2, $3)",
			pe.Signature, pe.Values, pe.Created)
		if err != nil {
			err = fmt.Errorf("Database error saving puzzle %q: %v", pe.Signature, err)
		}
		return
	}
	pgExecute(body)
}

/*

solve records

*/

// A SolveRecord is the stored outcome of one solver run against
// a stored puzzle.
type SolveRecord struct {
	Signature  string  // puzzle the run started from
	Solved     bool    // whether the search completed
	Solution   []int32 // final board, 0s when the search failed
	Collapses  int32
	Backtracks int32
	ElapsedMs  int64
	Created    time.Time
}

// NewSolveRecord builds the record of a finished run.
func NewSolveRecord(signature string, solved bool, solution []int,
	stats puzzle.Stats, elapsed time.Duration) *SolveRecord {
	vals := make([]int32, len(solution))
	for i, v := range solution {
		vals[i] = int32(v)
	}
	return &SolveRecord{
		Signature:  signature,
		Solved:     solved,
		Solution:   vals,
		Collapses:  int32(stats.Collapses),
		Backtracks: int32(stats.Backtracks),
		ElapsedMs:  elapsed.Milliseconds(),
		Created:    time.Now(),
	}
}

// Save stores the record in the database and refreshes the
// puzzle's latest-solve cache entry.
func (sr *SolveRecord) Save() {
	sr.databaseInsert()
	sr.cacheInsert()
	log.WithFields(log.Fields{
		"puzzle":     sr.Signature,
		"solved":     sr.Solved,
		"collapses":  sr.Collapses,
		"backtracks": sr.Backtracks,
		"elapsedMs":  sr.ElapsedMs,
	}).Info("saved solve record")
}

// LoadLatestSolve returns the most recent solve record for a
// puzzle, checking the cache before the database.  Returns nil
// when the puzzle has never been solved.
func LoadLatestSolve(signature string) *SolveRecord {
	sr := &SolveRecord{Signature: signature}
	if sr.cacheLoad() {
		return sr
	}
	if !sr.databaseLoad() {
		return nil
	}
	sr.cacheInsert()
	return sr
}

// key: compute the cache key for a puzzle's latest solve.
func (sr *SolveRecord) key() string {
	return rdEnv + ":SLV:" + sr.Signature
}

func (sr *SolveRecord) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", sr.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading solve of %q: %v", sr.Signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var ssr *SolveRecord
	if err := json.Unmarshal(bytes, &ssr); err != nil {
		panic(fmt.Errorf("Failed to unmarshal solve of %q: %v", sr.Signature, err))
	}
	*sr = *ssr
	return true
}

func (sr *SolveRecord) cacheInsert() {
	bytes, e := json.Marshal(sr)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal solve of %q: %v", sr.Signature, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", sr.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving solve of %q: %v", sr.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad: load the newest solve record for the signature.
func (sr *SolveRecord) databaseLoad() (found bool) {
	body := func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT solved, solution, collapses, backtracks, elapsedMs, created "+
				"FROM solves WHERE signature = $1 "+
				"ORDER BY created DESC LIMIT 1", sr.Signature)
		err := row.Scan(&sr.Solved, &sr.Solution, &sr.Collapses,
			&sr.Backtracks, &sr.ElapsedMs, &sr.Created)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up solves of %q: %v", sr.Signature, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return
}

func (sr *SolveRecord) databaseInsert() {
	body := func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO solves "+
				"(signature, solved, solution, collapses, backtracks, elapsedMs, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6, $7)",
			sr.Signature, sr.Solved, sr.Solution, sr.Collapses,
			sr.Backtracks, sr.ElapsedMs, sr.Created)
		if err != nil {
			err = fmt.Errorf("Database error saving solve of %q: %v", sr.Signature, err)
		}
		return
	}
	pgExecute(body)
}
