// Package notation implements parsing of chess positions in FEN and EPD
// notation.
//
// The teacher parsed EPD with a yacc-generated grammar (epd_ast.go, built
// from a .y source not present in this tree). An EPD line's grammar is
// small enough - a FEN prefix plus semicolon-separated opcodes - that a
// hand-written line parser covers it without carrying a generated lexer
// around; see DESIGN.md for why the yacc parser was dropped instead of
// adapted.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sroelants/simbelmyne/engine"
)

// EPD is one parsed Extended Position Description record.
type EPD struct {
	Position *engine.Position
	Id       string
	BestMove []engine.Move
	Comment  map[string]string
}

// ParseFEN parses a plain FEN string (no EPD opcodes) and returns it
// wrapped in an EPD with no opcodes set.
func ParseFEN(line string) (*EPD, error) {
	pos, err := engine.PositionFromFEN(strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}
	return &EPD{Position: pos, Comment: map[string]string{}}, nil
}

// ParseEPD parses one EPD record: four FEN placement/side/castling/ep
// fields followed by semicolon-terminated opcodes (bm, am, id, c0-c9,
// fmvn, hmvc are recognized; unknown opcodes are kept verbatim in
// Comment).
func ParseEPD(line string) (*EPD, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("epd: too few fields in %q", line)
	}

	fen := strings.Join(fields[:4], " ") + " 0 1"
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		return nil, err
	}

	epd := &EPD{Position: pos, Comment: map[string]string{}}

	rest := strings.Join(fields[4:], " ")
	for _, opcode := range splitOpcodes(rest) {
		opcode = strings.TrimSpace(opcode)
		if opcode == "" {
			continue
		}
		name, operand, _ := strings.Cut(opcode, " ")
		operand = strings.Trim(strings.TrimSpace(operand), "\"")

		switch name {
		case "bm", "am":
			for _, tok := range strings.Fields(operand) {
				move, err := parseSAN(pos, tok)
				if err != nil {
					return nil, fmt.Errorf("epd: bad %s move %q: %w", name, tok, err)
				}
				epd.BestMove = append(epd.BestMove, move)
			}
		case "id":
			epd.Id = operand
		case "fmvn":
			if n, err := strconv.Atoi(operand); err == nil {
				pos.FullMoveNumber = n
			}
		case "hmvc":
			if n, err := strconv.Atoi(operand); err == nil {
				pos.HalfMoveClock = n
			}
		default:
			epd.Comment[name] = operand
		}
	}

	return epd, nil
}

// splitOpcodes splits an EPD opcode string on ';', trimming the final
// empty segment a trailing ';' leaves behind.
func splitOpcodes(s string) []string {
	parts := strings.Split(s, ";")
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

var sanFigure = map[byte]engine.Figure{
	'N': engine.Knight, 'B': engine.Bishop, 'R': engine.Rook,
	'Q': engine.Queen, 'K': engine.King,
}

// parseSAN resolves a SAN or long-algebraic token (as found in EPD bm/am
// opcodes, e.g. "Qd2", "Nbd2", "Bd7-f5", "exd5", "O-O", "e8=Q+") against
// pos's legal moves.
func parseSAN(pos *engine.Position, tok string) (engine.Move, error) {
	tok = strings.TrimRight(tok, "+#!?")
	if tok == "" {
		return engine.NullMove, fmt.Errorf("empty move token")
	}

	var buf [256]engine.Move
	legal := pos.GenerateMoves(engine.All, buf[:0])

	if tok == "O-O" || tok == "0-0" {
		return findCastle(pos, legal, true)
	}
	if tok == "O-O-O" || tok == "0-0-0" {
		return findCastle(pos, legal, false)
	}

	// Long algebraic with an explicit dash ("Bd7-f5"): from/to are both
	// fully specified, so there's nothing to disambiguate.
	if dash := strings.IndexByte(tok, '-'); dash >= 0 {
		from, err := engine.SquareFromString(tok[dash-2 : dash])
		if err != nil {
			return engine.NullMove, err
		}
		to, err := engine.SquareFromString(tok[dash+1 : dash+3])
		if err != nil {
			return engine.NullMove, err
		}
		for _, m := range legal {
			if m.From() == from && m.To() == to {
				return m, nil
			}
		}
		return engine.NullMove, fmt.Errorf("no legal move %s-%s", from, to)
	}

	figure := engine.Pawn
	body := tok
	if f, ok := sanFigure[tok[0]]; ok {
		figure = f
		body = tok[1:]
	}

	var promo engine.Figure
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		if pf, ok := sanFigure[body[eq+1]]; ok {
			promo = pf
		}
		body = body[:eq]
	}
	body = strings.ReplaceAll(body, "x", "")
	if len(body) < 2 {
		return engine.NullMove, fmt.Errorf("malformed move token %q", tok)
	}

	to, err := engine.SquareFromString(body[len(body)-2:])
	if err != nil {
		return engine.NullMove, err
	}
	disambig := body[:len(body)-2]

	var match engine.Move
	found := 0
	for _, m := range legal {
		if m.To() != to {
			continue
		}
		if pos.Get(m.From()).Figure() != figure {
			continue
		}
		if m.IsPromotion() && promo != engine.NoFigure && m.PromotionFigure() != promo {
			continue
		}
		if !matchesDisambiguation(m.From(), disambig) {
			continue
		}
		match = m
		found++
	}
	if found != 1 {
		return engine.NullMove, fmt.Errorf("move token %q matched %d legal moves", tok, found)
	}
	return match, nil
}

func matchesDisambiguation(from engine.Square, disambig string) bool {
	for _, r := range disambig {
		switch {
		case r >= 'a' && r <= 'h':
			if from.File() != int(r-'a') {
				return false
			}
		case r >= '1' && r <= '8':
			if from.Rank() != int(r-'1') {
				return false
			}
		}
	}
	return true
}

func findCastle(pos *engine.Position, legal []engine.Move, kingside bool) (engine.Move, error) {
	kingSq := pos.KingSq(pos.SideToMove)
	for _, m := range legal {
		if (m.Type() != engine.KingCastle && m.Type() != engine.QueenCastle) || m.From() != kingSq {
			continue
		}
		if kingside == (m.To().File() > m.From().File()) {
			return m, nil
		}
	}
	return engine.NullMove, fmt.Errorf("no legal castling move")
}

// String formats e as the position's full six-field FEN followed by bm
// (in UCI long algebraic notation), id and comment opcodes. ParseEPD does
// not read this form back: it takes four FEN fields and SAN moves.
func (e *EPD) String() string {
	s := e.Position.String()
	for _, bm := range e.BestMove {
		s += " bm " + bm.String() + ";"
	}
	if e.Id != "" {
		s += " id \"" + e.Id + "\";"
	}
	for k, v := range e.Comment {
		s += " " + k + " \"" + v + "\";"
	}
	return s
}
