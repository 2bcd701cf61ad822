// Package hashing provides Zobrist position hashes and a concurrent
// node-count cache keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable between runs.
const zobristSeed = 0x5eed_c0de

var (
	pieceKeys     [12][chess.NumCells]uint64
	blackToMove   uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // not used for security
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = rng.Uint64()
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// pieceIndex maps a coloured piece to 0..11.
func pieceIndex(piece chess.Piece) int {
	idx := int(chess.ExtractPiece(piece)) - 1
	if chess.ExtractColour(piece) == chess.Black {
		idx += 6
	}
	return idx
}

// GenerateZobristHash hashes everything that decides the legal moves of a
// position: placement, side to move, castling rights and the en passant
// file. Clocks are ignored.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumCells; sq++ {
		if piece := board.Get(sq); piece != chess.Empty {
			hash ^= pieceKeys[pieceIndex(piece)][sq]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}
	hash ^= castlingKeys[board.Castling&chess.AllCastling]
	if board.EnPassant != chess.NoSquare {
		hash ^= enPassantKeys[board.EnPassant.Col()]
	}
	return hash
}
