package engine

// MoveType distinguishes every move shape the packed Move encoding needs
// different handling for. Capture-ness and the promotion figure are baked
// directly into the tag, so nothing downstream has to re-derive them by
// probing the board.
//
// QuietMove stands in for the "Quiet" tag; movegen.go already uses Quiet as
// the name of its move-kind filter bitmask, so the move-type value is named
// QuietMove to keep the two apart.
type MoveType uint8

const (
	QuietMove MoveType = iota
	DoublePush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	PromoN
	PromoB
	PromoR
	PromoQ
	PromoCaptureN
	PromoCaptureB
	PromoCaptureR
	PromoCaptureQ
)

// IsCapture reports whether a move of this type removes an enemy piece,
// including en passant and capturing promotions.
func (mt MoveType) IsCapture() bool {
	switch mt {
	case Capture, EnPassant, PromoCaptureN, PromoCaptureB, PromoCaptureR, PromoCaptureQ:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether a move of this type replaces the pawn with a
// new figure, whether or not it also captures.
func (mt MoveType) IsPromotion() bool {
	switch mt {
	case PromoN, PromoB, PromoR, PromoQ, PromoCaptureN, PromoCaptureB, PromoCaptureR, PromoCaptureQ:
		return true
	default:
		return false
	}
}

// PromotionFigure returns the figure a promotion tag promotes to. Only
// meaningful when IsPromotion() is true.
func (mt MoveType) PromotionFigure() Figure {
	switch mt {
	case PromoN, PromoCaptureN:
		return Knight
	case PromoB, PromoCaptureB:
		return Bishop
	case PromoR, PromoCaptureR:
		return Rook
	case PromoQ, PromoCaptureQ:
		return Queen
	default:
		return NoFigure
	}
}

// promoMoveType picks the promotion tag for a promoting pawn move,
// capturing or not.
func promoMoveType(fig Figure, capture bool) MoveType {
	if capture {
		switch fig {
		case Knight:
			return PromoCaptureN
		case Bishop:
			return PromoCaptureB
		case Rook:
			return PromoCaptureR
		default:
			return PromoCaptureQ
		}
	}
	switch fig {
	case Knight:
		return PromoN
	case Bishop:
		return PromoB
	case Rook:
		return PromoR
	default:
		return PromoQ
	}
}

// Move is a packed 16-bit move: 6 bits source square, 6 bits destination
// square, 4 bits move type. It deliberately carries no moved/captured
// piece: those are derived from the Position at make/unmake time, same as
// the from/to squares are the only thing a UCI GUI ever sends over the
// wire.
type Move uint16

const NullMove Move = 0xFFFF

func MakeMove(from, to Square, mt MoveType) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(mt)<<12)
}

func (m Move) From() Square   { return Square(m & 0x3f) }
func (m Move) To() Square     { return Square((m >> 6) & 0x3f) }
func (m Move) Type() MoveType { return MoveType((m >> 12) & 0xf) }
func (m Move) IsNull() bool   { return m == NullMove }
func (m Move) IsZero() bool   { return m == 0 && m.From() == m.To() }

// IsCapture reports whether m removes an enemy piece, including en passant
// and capturing promotions.
func (m Move) IsCapture() bool { return m.Type().IsCapture() }

// IsPromotion reports whether m replaces the moving pawn with a new figure.
func (m Move) IsPromotion() bool { return m.Type().IsPromotion() }

// PromotionFigure returns the figure being promoted to. Only meaningful
// when IsPromotion() is true.
func (m Move) PromotionFigure() Figure { return m.Type().PromotionFigure() }

// CaptureSquare returns the square a capture removes a piece from, which
// for en passant differs from To().
func (m Move) CaptureSquare() Square {
	if m.Type() == EnPassant {
		to := m.To()
		return RankFile(m.From().Rank(), to.File())
	}
	return m.To()
}

var promotionSymbol = map[Figure]string{Knight: "n", Bishop: "b", Rook: "r", Queen: "q"}

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionSymbol[m.PromotionFigure()]
	}
	return s
}
