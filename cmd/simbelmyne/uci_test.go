package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/sroelants/simbelmyne/engine"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	saved := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = saved }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// On a stalemated position, UCI has no "no legal move" token; the engine
// must report the null move, not a made-up string like "(none)".
func TestPlayStalemateReportsNullMove(t *testing.T) {
	pos, err := PositionFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	u := &UCI{
		pool: NewWorkerPool(DefaultHashTableSizeMB, 1),
		pos:  pos,
		idle: make(chan struct{}, 1),
	}
	u.pool.NewGame()

	tc := NewFixedDepthTimeControl(3)
	tc.Start()
	u.idle <- struct{}{}

	out := captureStdout(t, func() {
		u.play(tc)
	})

	require.Equal(t, "bestmove 0000\n", out)
}
