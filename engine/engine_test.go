// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGame(t *testing.T) {
	pos, _ := PositionFromFEN(FENStartPos)
	pool := NewWorkerPool(DefaultHashTableSizeMB, 1)
	pool.NewGame()
	for i := 0; i < 5; i++ {
		tc := NewFixedDepthTimeControl(3)
		tc.Start()
		pv := pool.Play(context.Background(), pos, tc)
		if len(pv) == 0 {
			break
		}
		pos.DoMove(pv[0])
	}
}

// mateIn1 are small, hand-verified positions with a single mate in one
// (in the second, the rook on d2 covers d8, so Qd8+ is not mate).
var mateIn1 = []struct {
	fen string
	bm  string
}{
	{"6k1/5ppp/8/8/8/8/8/R6K w - - 0 1", "a1a8"},
	{"6k1/4Qppp/8/8/8/8/3r4/7K w - - 0 1", "e7e8"},
}

func TestMateIn1(t *testing.T) {
	for i, d := range mateIn1 {
		pos, _ := PositionFromFEN(d.fen)
		bm, err := pos.UCIToMove(d.bm)
		require.NoErrorf(t, err, "#%d cannot parse move %s", i, d.bm)

		pool := NewWorkerPool(DefaultHashTableSizeMB, 1)
		pool.NewGame()
		tc := NewFixedDepthTimeControl(2)
		tc.Start()
		pv := pool.Play(context.Background(), pos, tc)

		require.NotEmptyf(t, pv, "#%d expected a move, got none\nposition is %v", i, pos)
		require.Equalf(t, bm, pv[0], "#%d position is %v", i, pos)
	}
}

func TestEndGamePosition(t *testing.T) {
	// Black is stalemated; no legal move exists.
	pos, _ := PositionFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	pool := NewWorkerPool(DefaultHashTableSizeMB, 1)
	pool.NewGame()
	tc := NewFixedDepthTimeControl(3)
	tc.Start()
	pv := pool.Play(context.Background(), pos, tc)
	require.Nilf(t, pv, "got %d moves (%v), expected nil pv for a stalemate", len(pv), pv)
}

// pvLogger records each PrintPV call in order, so a test can check that
// depth arrives in a sane sequence across iterative deepening.
type pvLog struct {
	depth int32
	score int32
	moves []Move
}

type pvLogger []pvLog

func (l *pvLogger) BeginSearch()              {}
func (l *pvLogger) EndSearch()                {}
func (l *pvLogger) CurrMove(int32, Move, int) {}

func (l *pvLogger) PrintPV(stats Stats, score int32, moves []Move) {
	*l = append(*l, pvLog{depth: stats.Depth, score: score, moves: moves})
}

func TestIterativeDeepeningDepthOrder(t *testing.T) {
	for f, fen := range testFENs {
		pos, _ := PositionFromFEN(fen)
		pool := NewWorkerPool(DefaultHashTableSizeMB, 1)
		pool.NewGame()
		pvl := pvLogger{}
		pool.Log = &pvl
		tc := NewFixedDepthTimeControl(4)
		tc.Start()
		pool.Play(context.Background(), pos, tc)

		for i := 1; i < len(pvl); i++ {
			if pvl[i-1].depth > pvl[i].depth {
				t.Errorf("#%d %s: depth went backwards, %d then %d", f, fen, pvl[i-1].depth, pvl[i].depth)
			}
		}
	}
}

func BenchmarkGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pos, _ := PositionFromFEN(FENStartPos)
		pool := NewWorkerPool(DefaultHashTableSizeMB, 1)
		pool.NewGame()
		for j := 0; j < 20; j++ {
			tc := NewFixedDepthTimeControl(4)
			tc.Start()
			pv := pool.Play(context.Background(), pos, tc)
			if len(pv) == 0 {
				break
			}
			pos.DoMove(pv[0])
		}
	}
}
