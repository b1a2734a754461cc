// zobrist.go contains magic numbers used for Zobrist hashing.
//
// More information on Zobrist hashing can be found in the paper:
// http://research.cs.wisc.edu/techreports/1970/TR88.pdf

package engine

import "math/rand"

// Zobrist keys. Generated deterministically so every build of the engine
// hashes the same position to the same key, which matters for TT-fidelity
// tests and for reproducing a search from a logged hash.
var (
	zobristPiece     [PieceArraySize][SquareArraySize]uint64
	zobristEnpassant [SquareArraySize]uint64
	zobristCastle    [CastleArraySize]uint64
	zobristColor     [ColorArraySize]uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Uint32())<<32 ^ uint64(r.Uint32())
}

func init() {
	r := rand.New(rand.NewSource(1))

	for pi := WhitePawn; pi < Piece(PieceArraySize); pi++ {
		for sq := SquareA1; sq < Square(SquareArraySize); sq++ {
			zobristPiece[pi][sq] = rand64(r)
		}
	}
	for sq := SquareA1; sq < Square(SquareArraySize); sq++ {
		zobristEnpassant[sq] = rand64(r)
	}
	for c := 0; c < CastleArraySize; c++ {
		zobristCastle[c] = rand64(r)
	}
	zobristColor[White] = rand64(r)
	zobristColor[Black] = rand64(r)
}
