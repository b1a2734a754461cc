package engine

// Piece values and piece-square tables, used for the incremental
// Position.PSQT accumulator. Values are packed Scores (midgame, endgame).
// Tables are written from White's point of view, rank 1 first; Black's
// contribution is mirrored via Square.POV.

var pieceValue = [FigureArraySize]Score{
	NoFigure: S(0, 0),
	Pawn:     S(100, 120),
	Knight:   S(320, 300),
	Bishop:   S(330, 320),
	Rook:     S(500, 520),
	Queen:    S(950, 940),
	King:     S(0, 0),
}

var pawnPSQT = [64]Score{
	S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0),
	S(5, 10), S(10, 10), S(10, 10), S(-20, 10), S(-20, 10), S(10, 10), S(10, 10), S(5, 10),
	S(5, 5), S(-5, 5), S(-10, 5), S(0, 5), S(0, 5), S(-10, 5), S(-5, 5), S(5, 5),
	S(0, 10), S(0, 10), S(0, 10), S(20, 15), S(20, 15), S(0, 10), S(0, 10), S(0, 10),
	S(5, 20), S(5, 20), S(10, 25), S(25, 30), S(25, 30), S(10, 25), S(5, 20), S(5, 20),
	S(10, 40), S(10, 40), S(20, 45), S(30, 50), S(30, 50), S(20, 45), S(10, 40), S(10, 40),
	S(50, 70), S(50, 70), S(50, 70), S(50, 70), S(50, 70), S(50, 70), S(50, 70), S(50, 70),
	S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0),
}

var knightPSQT = [64]Score{
	S(-50, -40), S(-40, -30), S(-30, -20), S(-30, -20), S(-30, -20), S(-30, -20), S(-40, -30), S(-50, -40),
	S(-40, -30), S(-20, -20), S(0, -10), S(5, 0), S(5, 0), S(0, -10), S(-20, -20), S(-40, -30),
	S(-30, -20), S(5, -10), S(10, 5), S(15, 10), S(15, 10), S(10, 5), S(5, -10), S(-30, -20),
	S(-30, -20), S(0, -10), S(15, 10), S(20, 15), S(20, 15), S(15, 10), S(0, -10), S(-30, -20),
	S(-30, -20), S(5, -10), S(15, 10), S(20, 15), S(20, 15), S(15, 10), S(5, -10), S(-30, -20),
	S(-30, -20), S(0, -10), S(10, 5), S(15, 10), S(15, 10), S(10, 5), S(0, -10), S(-30, -20),
	S(-40, -30), S(-20, -20), S(0, -10), S(5, 0), S(5, 0), S(0, -10), S(-20, -20), S(-40, -30),
	S(-50, -40), S(-40, -30), S(-30, -20), S(-30, -20), S(-30, -20), S(-30, -20), S(-40, -30), S(-50, -40),
}

var bishopPSQT = [64]Score{
	S(-20, -15), S(-10, -10), S(-10, -10), S(-10, -10), S(-10, -10), S(-10, -10), S(-10, -10), S(-20, -15),
	S(-10, -10), S(5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(5, 0), S(-10, -10),
	S(-10, -10), S(10, 0), S(10, 5), S(10, 5), S(10, 5), S(10, 5), S(10, 0), S(-10, -10),
	S(-10, -10), S(0, 0), S(10, 5), S(15, 10), S(15, 10), S(10, 5), S(0, 0), S(-10, -10),
	S(-10, -10), S(5, 0), S(10, 5), S(15, 10), S(15, 10), S(10, 5), S(5, 0), S(-10, -10),
	S(-10, -10), S(0, 0), S(10, 5), S(10, 5), S(10, 5), S(10, 5), S(0, 0), S(-10, -10),
	S(-10, -10), S(5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(5, 0), S(-10, -10),
	S(-20, -15), S(-10, -10), S(-10, -10), S(-10, -10), S(-10, -10), S(-10, -10), S(-10, -10), S(-20, -15),
}

var rookPSQT = [64]Score{
	S(0, 0), S(0, 0), S(5, 0), S(10, 0), S(10, 0), S(5, 0), S(0, 0), S(0, 0),
	S(-5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(-5, 0),
	S(-5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(-5, 0),
	S(-5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(-5, 0),
	S(-5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(-5, 0),
	S(-5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(-5, 0),
	S(5, 0), S(10, 0), S(10, 0), S(10, 0), S(10, 0), S(10, 0), S(10, 0), S(5, 0),
	S(0, 0), S(0, 0), S(0, 0), S(5, 0), S(5, 0), S(0, 0), S(0, 0), S(0, 0),
}

var queenPSQT = [64]Score{
	S(-20, -10), S(-10, -5), S(-10, -5), S(-5, 0), S(-5, 0), S(-10, -5), S(-10, -5), S(-20, -10),
	S(-10, -5), S(0, 0), S(5, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(-10, -5),
	S(-10, -5), S(5, 0), S(5, 5), S(5, 5), S(5, 5), S(5, 5), S(0, 0), S(-10, -5),
	S(0, 0), S(0, 0), S(5, 5), S(5, 10), S(5, 10), S(5, 5), S(0, 0), S(-5, 0),
	S(-5, 0), S(0, 0), S(5, 5), S(5, 10), S(5, 10), S(5, 5), S(0, 0), S(-5, 0),
	S(-10, -5), S(0, 0), S(5, 5), S(5, 5), S(5, 5), S(5, 5), S(0, 0), S(-10, -5),
	S(-10, -5), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(0, 0), S(-10, -5),
	S(-20, -10), S(-10, -5), S(-10, -5), S(-5, 0), S(-5, 0), S(-10, -5), S(-10, -5), S(-20, -10),
}

var kingPSQT = [64]Score{
	S(20, -50), S(30, -30), S(10, -10), S(0, 0), S(0, 0), S(10, -10), S(30, -30), S(20, -50),
	S(20, -30), S(20, -10), S(0, 10), S(0, 20), S(0, 20), S(0, 10), S(20, -10), S(20, -30),
	S(-10, -10), S(-20, 20), S(-20, 30), S(-20, 40), S(-20, 40), S(-20, 30), S(-20, 20), S(-10, -10),
	S(-20, -10), S(-30, 20), S(-30, 30), S(-40, 40), S(-40, 40), S(-30, 30), S(-30, 20), S(-20, -10),
	S(-30, -10), S(-40, 20), S(-40, 30), S(-50, 40), S(-50, 40), S(-40, 30), S(-40, 20), S(-30, -10),
	S(-30, -20), S(-40, 10), S(-40, 20), S(-50, 30), S(-50, 30), S(-40, 20), S(-40, 10), S(-30, -20),
	S(-30, -20), S(-40, 10), S(-40, 20), S(-50, 20), S(-50, 20), S(-40, 20), S(-40, 10), S(-30, -20),
	S(-30, -30), S(-40, -20), S(-40, -10), S(-50, -10), S(-50, -10), S(-40, -10), S(-40, -20), S(-30, -30),
}

var psqtByFigure = [FigureArraySize]*[64]Score{
	Pawn: &pawnPSQT, Knight: &knightPSQT, Bishop: &bishopPSQT,
	Rook: &rookPSQT, Queen: &queenPSQT, King: &kingPSQT,
}

// pieceSquareScore returns the packed material+PSQT contribution of piece
// pi standing on sq, signed from White's point of view.
func pieceSquareScore(pi Piece, sq Square) Score {
	fig := pi.Figure()
	s := pieceValue[fig]
	if tbl := psqtByFigure[fig]; tbl != nil {
		s += tbl[sq.POV(pi.Color())]
	}
	if pi.Color() == Black {
		return -s
	}
	return s
}
