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

// The collapse server solves Sudoku puzzles over HTTP.  It keeps
// a session per browser, persists every submitted puzzle and its
// solve record, and serves both a JSON API and a small web page.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/BenJurewicz/collapse.go/client"
	"github.com/BenJurewicz/collapse.go/dbprep"
	"github.com/BenJurewicz/collapse.go/puzzle"
	"github.com/BenJurewicz/collapse.go/storage"
)

const cookieName = "collapseID"

/*

sessions

*/

// sessionSelect finds or creates the session for a request,
// using the session cookie.
func sessionSelect(w http.ResponseWriter, r *http.Request) *storage.Session {
	if sc, e := r.Cookie(cookieName); e == nil && sc.Value != "" {
		session := &storage.Session{SID: sc.Value}
		if session.Lookup() {
			return session
		}
	}
	session := storage.NewSession()
	http.SetCookie(w, &http.Cookie{
		Name:  cookieName,
		Value: session.SID,
		Path:  "/",
	})
	return session
}

/*

request handling

*/

// apiSolveHandler runs the solve and persists its outcome.
func apiSolveHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	solver, err := puzzle.SolveHandler(w, r)
	if err != nil {
		log.WithField("session", session.SID).Warnf("solve request failed: %v", err)
		return
	}
	recordSolve(session, solver, time.Since(start))
}

// apiStateHandler reports the latest stored solve of the
// session's current puzzle.
func apiStateHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	if session.Current == "" {
		http.Error(w, "no puzzle solved in this session", http.StatusNotFound)
		return
	}
	record := storage.LoadLatestSolve(session.Current)
	if record == nil {
		http.Error(w, "no solve recorded for current puzzle", http.StatusNotFound)
		return
	}
	bytes, e := json.Marshal(record)
	if e != nil {
		http.Error(w, e.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(bytes)
}

// solverPageHandler serves the interactive page.  A GET renders
// the session's current puzzle; a POST takes a puzzle from the
// form, solves it, and renders the solution.
func solverPageHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		grid, e := puzzle.ParseGrid(r.FormValue("puzzle"))
		if e != nil {
			writePage(w, client.ErrorPage(e))
			return
		}
		solver, e := puzzle.New(grid)
		if e != nil {
			writePage(w, client.ErrorPage(e))
			return
		}
		start := time.Now()
		solved := solver.Solve() == nil
		elapsed := time.Since(start)
		entry := storage.NewPuzzleEntry(solver.StartValues())
		storage.SavePuzzleEntry(entry)
		session.SetCurrent(entry.Signature)
		record := storage.NewSolveRecord(entry.Signature, solved,
			solver.Values(), solver.Stats(), elapsed)
		record.Save()
		if solved {
			session.AddSolve(entry.Signature)
		}
		writePage(w, client.SolverPage(session.SID, entry.Signature,
			solver.Values(), solved, solver.Stats()))
		return
	}
	// GET: show the current puzzle, or the default sample
	values := dbprep.SampleValues("classic")
	signature := ""
	if session.Current != "" {
		if entry := storage.LoadPuzzleEntry(session.Current); entry != nil {
			values = make([]int, len(entry.Values))
			for i, v := range entry.Values {
				values[i] = int(v)
			}
			signature = entry.Signature
		}
	}
	writePage(w, client.SolverPage(session.SID, signature, values,
		false, puzzle.Stats{}))
}

// recordSolve persists the outcome of an API solve: the starting
// grid as a puzzle entry, the run as a solve record.
func recordSolve(session *storage.Session, solver *puzzle.Solver, elapsed time.Duration) {
	entry := storage.NewPuzzleEntry(solver.StartValues())
	storage.SavePuzzleEntry(entry)
	session.SetCurrent(entry.Signature)
	solved := solver.CheckIfCorrect()
	record := storage.NewSolveRecord(entry.Signature, solved,
		solver.Values(), solver.Stats(), elapsed)
	record.Save()
	if solved {
		session.AddSolve(entry.Signature)
	}
}

func writePage(w http.ResponseWriter, body string) {
	hs := w.Header()
	hs.Add("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Info("loaded environment overrides from .env")
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.Fatalf("Storage initialization failure: %v", err)
	}
	defer storage.Close()
	log.WithFields(log.Fields{
		"cache":    cacheId,
		"database": databaseId,
	}).Info("storage connected")

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		log.Infof("Handling %s %s...", r.Method, r.URL.Path)
		session := sessionSelect(w, r)
		switch {
		case r.URL.Path == "/api/solve":
			apiSolveHandler(session, w, r)
			return
		case r.URL.Path == "/api/state":
			apiStateHandler(session, w, r)
			return
		case strings.HasPrefix(r.URL.Path, "/solver/"):
			solverPageHandler(session, w, r)
			return
		}
		http.Redirect(w, r, "/solver/", http.StatusFound)
	})

	// Heroku environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Infof("Listening on %s...", port)
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Fatal("Listener failure: ", err)
	}
}
