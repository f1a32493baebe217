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

// Command-line client for the collapse solver.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BenJurewicz/collapse.go/dbprep"
	"github.com/BenJurewicz/collapse.go/puzzle"
	"github.com/BenJurewicz/collapse.go/storage"
)

func main() {
	godotenv.Load()
	root := &cobra.Command{
		Use:           "collapse-cli",
		Short:         "solve Sudoku puzzles from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand(), newPlayCommand(), newSamplesCommand())
	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

/*

solve

*/

func newSolveCommand() *cobra.Command {
	var (
		sampleName string
		markdown   bool
		showStats  bool
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "solve a puzzle from a file, stdin, or a shipped sample",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(args, sampleName)
			if err != nil {
				return err
			}
			solver, err := puzzle.New(grid)
			if err != nil {
				return err
			}
			start := time.Now()
			solveErr := solver.Solve()
			elapsed := time.Since(start)
			if markdown {
				fmt.Fprint(cmd.OutOrStdout(), solver.Board().ValuesMarkdown())
			} else {
				fmt.Fprint(cmd.OutOrStdout(), solver)
			}
			if showStats {
				stats := solver.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "collapses: %d, backtracks: %d, elapsed: %v\n",
					stats.Collapses, stats.Backtracks, elapsed)
			}
			if save {
				if err := saveSolve(solver, solveErr == nil, elapsed); err != nil {
					return err
				}
			}
			return solveErr
		},
	}
	cmd.Flags().StringVar(&sampleName, "sample", "", "solve a shipped sample puzzle")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the board as a markdown table")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print solve statistics")
	cmd.Flags().BoolVar(&save, "save", false, "record the puzzle and solve in storage")
	return cmd
}

// readGrid loads the starting grid from a sample name, a file
// argument, or stdin.
func readGrid(args []string, sampleName string) (puzzle.Grid, error) {
	if sampleName != "" {
		values := dbprep.SampleValues(sampleName)
		if values == nil {
			return puzzle.Grid{}, fmt.Errorf("no sample named %q", sampleName)
		}
		return puzzle.GridFromValues(values)
	}
	var text []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		text, err = ioutil.ReadFile(args[0])
	} else {
		text, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		return puzzle.Grid{}, err
	}
	return puzzle.ParseGrid(string(text))
}

// saveSolve records the run in the storage backends.
func saveSolve(solver *puzzle.Solver, solved bool, elapsed time.Duration) error {
	if _, _, err := storage.Connect(); err != nil {
		return fmt.Errorf("can't record solve: %v", err)
	}
	defer storage.Close()
	entry := storage.NewPuzzleEntry(solver.StartValues())
	storage.SavePuzzleEntry(entry)
	record := storage.NewSolveRecord(entry.Signature, solved,
		solver.Values(), solver.Stats(), elapsed)
	record.Save()
	return nil
}

/*

samples

*/

func newSamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "list the shipped sample puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range dbprep.Samples() {
				blanks := 0
				for _, v := range s.Values {
					if v == 0 {
						blanks++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d blanks\n", s.Name, blanks)
			}
			return nil
		},
	}
}

/*

play

*/

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [file]",
		Short: "step through a solve interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readPlayGrid(args)
			if err != nil {
				return err
			}
			repl, err := newRepl(grid)
			if err != nil {
				return err
			}
			return repl.listen(os.Stdout, os.Stdin)
		},
	}
}

// readPlayGrid loads the starting grid for a play session: a file
// argument if given, the classic sample otherwise.  Unlike solve,
// play never reads stdin, which belongs to the REPL.
func readPlayGrid(args []string) (puzzle.Grid, error) {
	if len(args) == 1 {
		text, err := ioutil.ReadFile(args[0])
		if err != nil {
			return puzzle.Grid{}, err
		}
		return puzzle.ParseGrid(string(text))
	}
	return puzzle.GridFromValues(dbprep.SampleValues("classic"))
}

// repl holds the interactive state: the live solver, the grid it
// was started from, and display settings.
type repl struct {
	grid        puzzle.Grid
	solver      *puzzle.Solver
	useMarkdown bool
}

func newRepl(grid puzzle.Grid) (*repl, error) {
	solver, err := puzzle.New(grid)
	if err != nil {
		return nil, err
	}
	return &repl{grid: grid, solver: solver}, nil
}

type request struct {
	command string
	args    []string
}

// listen reads lines and dispatches them to handlers
func (rp *repl) listen(out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "collapse> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			line := strings.Trim(string(input[:n]), " \t\r\n")
			args := strings.Split(line, " ")
			r := &request{command: strings.ToLower(args[0])}
			switch r.command {
			case "":
				continue
			case "quit", "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, arg)
				}
			}
			rp.dispatchCommand(out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(rp *repl, w *os.File, r *request)
}

var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"help", "", "show this list of commands", helpHandler},
		{"state", "", "show the current board", stateHandler},
		{"collapse", "", "perform one collapse step", collapseHandler},
		{"solve", "", "run the solve to completion", solveHandler},
		{"reset", "", "restart from the starting grid", resetHandler},
		{"load", "file|sample", "start over with another puzzle", loadHandler},
		{"markdown", "on|off", "switch the board display format", markdownHandler},
		{"stats", "", "show solve statistics", statsHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func (rp *repl) dispatchCommand(w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(w, "Internal error during %q: %v\n", r.command, err)
		}
	}()
	ci := dispatchTable[r.command]
	if ci == nil {
		fmt.Fprintf(w, "%q is not a known command; try 'help'\n", r.command)
		return
	}
	ci.handler(rp, w, r)
}

/*

request handlers

*/

func helpHandler(rp *repl, w *os.File, r *request) {
	for _, ci := range dispatchInfo {
		if ci.argInfo != "" {
			fmt.Fprintf(w, "  %s %s: %s\n", ci.command, ci.argInfo, ci.description)
		} else {
			fmt.Fprintf(w, "  %s: %s\n", ci.command, ci.description)
		}
	}
	fmt.Fprintf(w, "  quit: leave the solver\n")
}

func stateHandler(rp *repl, w *os.File, r *request) {
	if rp.useMarkdown {
		fmt.Fprint(w, rp.solver.Board().ValuesMarkdown())
	} else {
		fmt.Fprint(w, rp.solver)
	}
}

func collapseHandler(rp *repl, w *os.File, r *request) {
	done, err := rp.solver.Step()
	if err != nil {
		fmt.Fprintf(w, "Solve failed: %v\n", err)
		return
	}
	if done {
		fmt.Fprintf(w, "Board is complete.\n")
	}
	stateHandler(rp, w, r)
}

func solveHandler(rp *repl, w *os.File, r *request) {
	if err := rp.solver.Solve(); err != nil {
		fmt.Fprintf(w, "Solve failed: %v\n", err)
		return
	}
	stateHandler(rp, w, r)
	statsHandler(rp, w, r)
}

func resetHandler(rp *repl, w *os.File, r *request) {
	solver, err := puzzle.New(rp.grid)
	if err != nil {
		fmt.Fprintf(w, "Reset failed: %v\n", err)
		return
	}
	rp.solver = solver
	stateHandler(rp, w, r)
}

func loadHandler(rp *repl, w *os.File, r *request) {
	if len(r.args) != 1 {
		fmt.Fprintf(w, "load requires a file name or sample name\n")
		return
	}
	var grid puzzle.Grid
	var err error
	if values := dbprep.SampleValues(r.args[0]); values != nil {
		grid, err = puzzle.GridFromValues(values)
	} else {
		var text []byte
		if text, err = ioutil.ReadFile(r.args[0]); err == nil {
			grid, err = puzzle.ParseGrid(string(text))
		}
	}
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	solver, err := puzzle.New(grid)
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	rp.grid, rp.solver = grid, solver
	stateHandler(rp, w, r)
}

func markdownHandler(rp *repl, w *os.File, r *request) {
	if len(r.args) > 0 {
		switch r.args[0] {
		case "on":
			rp.useMarkdown = true
			stateHandler(rp, w, r)
		case "off":
			rp.useMarkdown = false
			stateHandler(rp, w, r)
		default:
			fmt.Fprintf(w, "argument to markdown must be 'on' or 'off'\n")
		}
		return
	}
	if rp.useMarkdown {
		fmt.Fprintf(w, "Markdown is on\n")
	} else {
		fmt.Fprintf(w, "Markdown is off\n")
	}
}

func statsHandler(rp *repl, w *os.File, r *request) {
	stats := rp.solver.Stats()
	fmt.Fprintf(w, "collapses: %d, backtracks: %d, checkpoints held: %d\n",
		stats.Collapses, stats.Backtracks, rp.solver.Checkpoints())
}
