// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/pocketchess/internal/chess"
)

// zobristKeys holds one random key per piece kind, colour and square, plus
// a key for Black to move. The seed is fixed so hashes are stable between
// runs.
var (
	zobristKeys [chess.NumKinds][2][64]uint64
	blackToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x70636865))
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		for colour := range zobristKeys[kind] {
			for sq := range zobristKeys[kind][colour] {
				zobristKeys[kind][colour][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
}

// GenerateZobristHash hashes the pieces on b and the side to move.
// Castling bookkeeping is not part of the position's identity.
func GenerateZobristHash(b *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			p := b.Squares[file][rank]
			if p.IsEmpty() {
				continue
			}
			hash ^= zobristKeys[p.Kind][p.Colour][rank*8+file]
		}
	}
	if turn == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap second hash used to confirm a Zobrist match.
func WeakHash(b *chess.Board, turn chess.Colour) uint32 {
	hash := uint32(turn)
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			p := b.Squares[file][rank]
			hash = hash*31 + (uint32(p.Kind)<<1 | uint32(p.Colour))
		}
	}
	return hash
}

// Signature identifies a position.
type Signature struct {
	Hash     uint64
	WeakHash uint32
}

// Sign computes the signature of b with turn to move.
func Sign(b *chess.Board, turn chess.Colour) Signature {
	return Signature{Hash: GenerateZobristHash(b, turn), WeakHash: WeakHash(b, turn)}
}

type entry struct {
	sig     Signature
	squares [8][8]chess.Piece
	turn    chess.Colour
	index   int
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use.
type DuplicateDetector struct {
	// hashTable maps Zobrist hashes to the positions that produced them
	hashTable map[uint64][]entry
	// useExactMatch compares the boards themselves on a hash match
	useExactMatch  bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]entry),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records the position at index. If an equal position was
// recorded before, it returns that position's index and true instead.
func (d *DuplicateDetector) CheckAndAdd(b *chess.Board, turn chess.Colour, index int) (int, bool) {
	if b == nil {
		return 0, false
	}

	e := entry{sig: Sign(b, turn), index: index}
	if d.useExactMatch {
		e.squares = b.Squares
		e.turn = turn
	}

	for _, seen := range d.hashTable[e.sig.Hash] {
		if d.matches(e, seen) {
			d.duplicateCount++
			return seen.index, true
		}
	}

	d.hashTable[e.sig.Hash] = append(d.hashTable[e.sig.Hash], e)
	return 0, false
}

func (d *DuplicateDetector) matches(a, b entry) bool {
	if a.sig != b.sig {
		return false
	}
	if d.useExactMatch {
		return a.squares == b.squares && a.turn == b.turn
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, entries := range d.hashTable {
		count += len(entries)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]entry)
	d.duplicateCount = 0
}
