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
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// how many solve signatures a session remembers
const sessionHistoryLimit = 20

// A Session tracks one client across requests: the puzzle they
// are currently working on and the puzzles they solved before.
// Sessions live only in the cache; the durable record of the
// solves themselves is kept per puzzle in the database.
type Session struct {
	// these elements are persisted as a Redis hash
	SID     string // session ID, a UUID handed out in a cookie
	Current string // signature of the puzzle being solved
	Created string // RFC3339 time when the session was created
	Saved   string // RFC3339 time when the session was last saved
}

// NewSession creates and persists a session with a fresh UUID.
func NewSession() *Session {
	now := time.Now().Format(time.RFC3339)
	session := &Session{
		SID:     uuid.New().String(),
		Created: now,
		Saved:   now,
	}
	session.save()
	log.WithField("session", session.SID).Info("created session")
	return session
}

// Lookup finds the session for an ID.  Returns whether a saved
// session was found; when it wasn't, the receiver is unchanged
// except for the SID.
func (session *Session) Lookup() (found bool) {
	body := func(tx redis.Conn) error {
		vals, err := redis.Values(tx.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				log.WithField("session", session.SID).
					Errorf("failed to parse saved session: %v", err)
				return err
			}
			found = true
			return nil
		}
		if err != nil {
			log.WithField("session", session.SID).
				Errorf("cache error on session lookup: %v", err)
			return err
		}
		return nil
	}
	rdExecute(body)
	return
}

// SetCurrent records the puzzle the session is working on.
func (session *Session) SetCurrent(signature string) {
	session.Current = signature
	session.save()
}

// AddSolve prepends a solved puzzle's signature to the session's
// history, trimming the history to its limit.
func (session *Session) AddSolve(signature string) {
	session.Saved = time.Now().Format(time.RFC3339)
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("LPUSH", session.solvesKey(), signature)
		_, err = tx.Do("LTRIM", session.solvesKey(), 0, sessionHistoryLimit-1)
		if err != nil {
			log.WithField("session", session.SID).
				Errorf("cache error recording solve: %v", err)
		}
		return
	}
	rdExecute(body)
	log.WithFields(log.Fields{
		"session": session.SID,
		"puzzle":  signature,
	}).Info("recorded session solve")
}

// RecentSolves returns the signatures of the puzzles this
// session solved, newest first.
func (session *Session) RecentSolves() []string {
	var sigs []string
	body := func(tx redis.Conn) (err error) {
		sigs, err = redis.Strings(tx.Do("LRANGE", session.solvesKey(), 0, -1))
		if err != nil {
			log.WithField("session", session.SID).
				Errorf("cache error reading solve history: %v", err)
		}
		return
	}
	rdExecute(body)
	return sigs
}

// Remove deletes the session and its history from the cache.
func (session *Session) Remove() {
	body := func(tx redis.Conn) (err error) {
		tx.Send("DEL", session.key())
		_, err = tx.Do("DEL", session.solvesKey())
		return
	}
	rdExecute(body)
	log.WithField("session", session.SID).Info("removed session")
}

// save writes the session hash to the cache.
func (session *Session) save() {
	session.Saved = time.Now().Format(time.RFC3339)
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		if err != nil {
			log.WithField("session", session.SID).
				Errorf("cache error on session save: %v", err)
		}
		return
	}
	rdExecute(body)
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return rdEnv + ":SID:" + session.SID
}

// solvesKey - returns the key of the session's solve history
func (session *Session) solvesKey() string {
	return session.key() + ":Solves"
}
