package notation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sroelants/simbelmyne/engine"
)

func TestParseFENStartPosition(t *testing.T) {
	epd, err := ParseFEN(engine.FENStartPos)
	require.NoError(t, err)
	require.Equal(t, engine.White, epd.Position.SideToMove)
	require.Equal(t, engine.WhiteKing, epd.Position.Get(engine.SquareE1))
}

func TestParseEPDOpcodes(t *testing.T) {
	line := `rnb2r1k/pp2p2p/2pp2p1/q2P1p2/8/1Pb2NP1/PB2PPBP/R2Q1RK1 w - - bm Qd2 Qe1; fmvn 123; hmvc 15; id "BK.14"; c9 "draw";`
	epd, err := ParseEPD(line)
	require.NoError(t, err)

	require.Equal(t, "BK.14", epd.Id)
	require.Len(t, epd.BestMove, 2)
	for _, bm := range epd.BestMove {
		require.Equal(t, engine.SquareD1, bm.From())
	}
	require.EqualValues(t, 123, epd.Position.FullMoveNumber)
	require.EqualValues(t, 15, epd.Position.HalfMoveClock)
	require.Equal(t, "draw", epd.Comment["c9"])
}

func TestParseEPDDashNotation(t *testing.T) {
	line := "r3r1k1/ppqb1ppp/8/4p1NQ/8/2P5/PP3PPP/R3R1K1 b - - bm Bd7-f5; id \"BK.12\";"
	epd, err := ParseEPD(line)
	require.NoError(t, err)
	require.Len(t, epd.BestMove, 1)

	bm := epd.BestMove[0]
	require.Equal(t, engine.SquareD7, bm.From())
	require.Equal(t, engine.SquareF5, bm.To())
}

func TestParseEPDCastling(t *testing.T) {
	line := "r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - bm O-O;"
	epd, err := ParseEPD(line)
	require.NoError(t, err)
	require.Len(t, epd.BestMove, 1)
	require.Equal(t, engine.KingCastle, epd.BestMove[0].Type())
}
