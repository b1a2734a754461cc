// uci.go implements the UCI protocol described at
// http://wbec-ridderkerk.nl/html/UCIProtocol.html, dispatching commands
// read from stdin to a lazy-SMP worker pool.

package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	. "github.com/sroelants/simbelmyne/engine"
	"github.com/sroelants/simbelmyne/internal/bench"
	"github.com/sroelants/simbelmyne/perft"
)

var errQuit = errors.New("quit")

const engineName = "Simbelmyne"
const engineAuthor = "a student of zurichess"

// UCI holds everything needed to answer one UCI session: the position
// under consideration, the worker pool searching it, and the clock
// parameters accumulated by the last "go" command.
type UCI struct {
	pool *WorkerPool
	pos  *Position
	log  *uciLogger

	moveOverhead time.Duration
	optionValues map[string]int
	tc           *TimeControl

	// buffer of 1: full while a search is running, empty while idle.
	idle chan struct{}
}

func NewUCI() *UCI {
	pool := NewWorkerPool(DefaultHashTableSizeMB, 1)
	pos, _ := PositionFromFEN(FENStartPos)
	u := &UCI{
		pool:         pool,
		pos:          pos,
		log:          newUCILogger(pool.Hash()),
		moveOverhead: 10 * time.Millisecond,
		optionValues: map[string]int{},
		idle:         make(chan struct{}, 1),
	}
	for _, spec := range StandardOptions {
		u.optionValues[spec.Name] = spec.Default
	}
	return u
}

var reCmd = regexp.MustCompile(`^[[:word:]]+\b`)

// Execute dispatches one line of UCI input. Malformed lines are reported
// as an error by the caller and otherwise ignored, never fatal.
func (u *UCI) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	cmd := reCmd.FindString(line)
	if cmd == "" {
		return fmt.Errorf("invalid command line %q", line)
	}

	// These commands are answered immediately, even mid-search.
	switch cmd {
	case "uci":
		return u.uci()
	case "isready":
		return u.isready()
	case "stop":
		return u.stop()
	case "quit":
		return errQuit
	}

	// Everything else requires the engine to be idle first.
	u.idle <- struct{}{}
	<-u.idle

	switch cmd {
	case "ucinewgame":
		return u.ucinewgame()
	case "position":
		return u.position(line)
	case "setoption":
		return u.setoption(line)
	case "go":
		return u.go_(line)
	case "eval":
		return u.eval()
	case "bench":
		return u.bench()
	default:
		return fmt.Errorf("unhandled command %q", cmd)
	}
}

func (u *UCI) uci() error {
	fmt.Printf("id name %s\n", engineName)
	fmt.Printf("id author %s\n", engineAuthor)
	for _, spec := range StandardOptions {
		switch spec.Type {
		case OptionSpin:
			fmt.Printf("option name %s type spin default %d min %d max %d\n",
				spec.Name, spec.Default, spec.Min, spec.Max)
		case OptionCheck:
			fmt.Printf("option name %s type check default %v\n", spec.Name, spec.Default != 0)
		case OptionString:
			fmt.Printf("option name %s type string default\n", spec.Name)
		}
	}
	printTunableOptions()
	fmt.Println("uciok")
	return nil
}

func (u *UCI) isready() error {
	fmt.Println("readyok")
	return nil
}

func (u *UCI) ucinewgame() error {
	u.pool.NewGame()
	return nil
}

func (u *UCI) position(line string) error {
	args := strings.Fields(line)[1:]
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	var pos *Position
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		pos, err = PositionFromFEN(FENStartPos)
		i = 1
	case "fen":
		for i = 1; i < len(args) && args[i] != "moves"; i++ {
		}
		pos, err = PositionFromFEN(strings.Join(args[1:i], " "))
	default:
		return fmt.Errorf("unknown position command %q", args[0])
	}
	if err != nil {
		return err
	}

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", args[i])
		}
		for _, s := range args[i+1:] {
			move, err := pos.UCIToMove(s)
			if err != nil {
				return err
			}
			pos.DoMove(move)
		}
	}

	u.pos = pos
	return nil
}

func (u *UCI) setoption(line string) error {
	option := reOption.FindStringSubmatch(line)
	if option == nil {
		return fmt.Errorf("invalid setoption arguments %q", line)
	}
	name := option[1]

	if name == "Clear Hash" {
		u.pool.NewGame()
		return nil
	}
	if len(option) < 4 || option[3] == "" {
		return fmt.Errorf("missing setoption value for %q", name)
	}
	value := option[3]

	if setTunable(name, value) {
		return nil
	}

	for _, spec := range StandardOptions {
		if spec.Name != name {
			continue
		}
		switch spec.Type {
		case OptionCheck:
			_, err := strconv.ParseBool(value)
			return err
		case OptionSpin:
			n, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			n = ApplyOption(spec, n)
			switch name {
			case "Hash":
				u.pool.SetHashSize(n)
				u.log.hash = u.pool.Hash()
			case "Threads":
				u.pool.SetThreads(n)
			case "Move Overhead":
				u.moveOverhead = time.Duration(n) * time.Millisecond
			}
			u.optionValues[name] = n
		}
		return nil
	}
	return fmt.Errorf("unhandled option %q", name)
}

var reOption = regexp.MustCompile(`^setoption\s+name\s+(.+?)(\s+value\s+(.*))?$`)

var goTokens = map[string]bool{
	"wtime": true, "btime": true, "winc": true, "binc": true,
	"movestogo": true, "depth": true, "nodes": true, "movetime": true,
	"infinite": true, "perft": true, "ponder": true, "searchmoves": true,
	"mate": true,
}

func (u *UCI) go_(line string) error {
	args := strings.Fields(line)[1:]

	var wtime, btime, winc, binc time.Duration
	var movesToGo int
	var depth int
	var moveTime time.Duration
	var infinite, perftMode bool
	var nodeLimit uint64
	var perftDepth int

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "perft":
			perftMode = true
			i++
			perftDepth, _ = strconv.Atoi(args[i])
		case "wtime":
			i++
			ms, _ := strconv.Atoi(args[i])
			wtime = time.Duration(ms) * time.Millisecond
		case "btime":
			i++
			ms, _ := strconv.Atoi(args[i])
			btime = time.Duration(ms) * time.Millisecond
		case "winc":
			i++
			ms, _ := strconv.Atoi(args[i])
			winc = time.Duration(ms) * time.Millisecond
		case "binc":
			i++
			ms, _ := strconv.Atoi(args[i])
			binc = time.Duration(ms) * time.Millisecond
		case "movestogo":
			i++
			movesToGo, _ = strconv.Atoi(args[i])
		case "depth":
			i++
			depth, _ = strconv.Atoi(args[i])
		case "movetime":
			i++
			ms, _ := strconv.Atoi(args[i])
			moveTime = time.Duration(ms) * time.Millisecond
		case "nodes":
			i++
			n, _ := strconv.Atoi(args[i])
			nodeLimit = uint64(n)
		case "infinite":
			infinite = true
		case "ponder":
			// Pondering is accepted but not acted upon; searched as a
			// normal move once "ponderhit" would arrive, which this
			// front end does not implement (see spec.md Non-goals).
		default:
			if !goTokens[args[i]] {
				return fmt.Errorf("invalid go argument %q", args[i])
			}
		}
	}

	if perftMode {
		u.runPerft(perftDepth)
		return nil
	}

	var tc *TimeControl
	switch {
	case infinite:
		tc = NewFixedDepthTimeControl(64)
		tc.Infinite = true
	case depth > 0:
		tc = NewFixedDepthTimeControl(depth)
	case moveTime > 0:
		tc = NewMoveTimeControl(moveTime)
	default:
		remaining, increment := wtime, winc
		if u.pos.SideToMove == Black {
			remaining, increment = btime, binc
		}
		tc = NewTimeControl(remaining, increment, movesToGo, u.moveOverhead)
	}
	tc.NodeLimit = nodeLimit
	tc.Start()
	u.tc = tc

	u.idle <- struct{}{}
	go u.play(tc)
	return nil
}

func (u *UCI) runPerft(depth int) {
	_, perMove := perft.Split(u.pos, depth)
	var total uint64
	for move, nodes := range perMove {
		fmt.Printf("%s: %d\n", move, nodes)
		total += nodes
	}
	fmt.Printf("\ninfo string perft depth %d nodes %d\n", depth, total)
}

func (u *UCI) play(tc *TimeControl) {
	moves := u.pool.Play(context.Background(), u.pos, tc)

	if len(moves) == 0 {
		// No legal move at the root (stalemate or checkmate): UCI has no
		// "no move" token, so report the null move the way every other
		// engine does.
		fmt.Printf("bestmove %s\n", MoveToUCI(NullMove))
	} else if len(moves) == 1 {
		fmt.Printf("bestmove %s\n", MoveToUCI(moves[0]))
	} else {
		fmt.Printf("bestmove %s ponder %s\n", MoveToUCI(moves[0]), MoveToUCI(moves[1]))
	}

	<-u.idle
}

// stop signals the current search to return immediately and waits for it
// to become idle; harmless to call when no search is running.
func (u *UCI) stop() error {
	if u.tc != nil {
		u.tc.Stop()
	}
	u.idle <- struct{}{}
	<-u.idle
	return nil
}

func (u *UCI) eval() error {
	fmt.Printf("info string static eval %d\n", EvaluatePosition(u.pos))
	return nil
}

func (u *UCI) bench() error {
	nodes, nps := bench.Run(u.pool, 13)
	fmt.Printf("info string bench nodes %d nps %.0f\n", nodes, nps)
	return nil
}
