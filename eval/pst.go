package eval

import . "github.com/arbiterchess/arbiter/common"

// Piece-square tables, white's perspective, index 0 = A1. Black reads
// them with the rank flipped (files are not mirrored).

var pawnMG = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	2, 4, 5, 10, 10, 5, 4, 2,
	4, 8, 12, 16, 16, 12, 8, 4,
	6, 12, 16, 24, 24, 16, 12, 6,
	8, 16, 24, 32, 32, 24, 16, 8,
	12, 24, 36, 48, 48, 36, 24, 12,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEG = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	20, 20, 20, 20, 20, 20, 20, 20,
	30, 30, 30, 30, 30, 30, 30, 30,
	40, 40, 40, 40, 40, 40, 40, 40,
	60, 60, 60, 60, 60, 60, 60, 60,
	100, 100, 100, 100, 100, 100, 100, 100,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightMG = [64]int{
	-10, -8, -6, -4, -4, -6, -8, -10,
	-8, 0, 2, 4, 4, 2, 0, -8,
	-6, 2, 6, 8, 8, 6, 2, -6,
	-4, 4, 8, 10, 10, 8, 4, -4,
	-4, 4, 8, 10, 10, 8, 4, -4,
	-6, 2, 6, 8, 8, 6, 2, -6,
	-8, 0, 2, 4, 4, 2, 0, -8,
	-10, -8, -6, -4, -4, -6, -8, -10,
}

var knightEG = [64]int{
	-6, -4, -2, 0, 0, -2, -4, -6,
	-4, 0, 2, 4, 4, 2, 0, -4,
	-2, 2, 4, 6, 6, 4, 2, -2,
	0, 4, 6, 8, 8, 6, 4, 0,
	0, 4, 6, 8, 8, 6, 4, 0,
	-2, 2, 4, 6, 6, 4, 2, -2,
	-4, 0, 2, 4, 4, 2, 0, -4,
	-6, -4, -2, 0, 0, -2, -4, -6,
}

var bishopMG = [64]int{
	-4, -2, -2, -2, -2, -2, -2, -4,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-2, 2, 4, 4, 4, 4, 2, -2,
	-2, 2, 4, 6, 6, 4, 2, -2,
	-2, 2, 4, 6, 6, 4, 2, -2,
	-2, 2, 4, 4, 4, 4, 2, -2,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-4, -2, -2, -2, -2, -2, -2, -4,
}

var bishopEG = [64]int{
	-2, -1, -1, -1, -1, -1, -1, -2,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-1, 1, 2, 2, 2, 2, 1, -1,
	-1, 1, 2, 4, 4, 2, 1, -1,
	-1, 1, 2, 4, 4, 2, 1, -1,
	-1, 1, 2, 2, 2, 2, 1, -1,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-2, -1, -1, -1, -1, -1, -1, -2,
}

var rookMG = [64]int{
	0, 1, 2, 3, 3, 2, 1, 0,
	1, 2, 3, 4, 4, 3, 2, 1,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 5, 5, 5, 5, 5, 5, 5,
	0, 1, 2, 3, 3, 2, 1, 0,
}

var rookEG = [64]int{
	-4, -2, 0, 0, 0, 0, -2, -4,
	-2, 0, 2, 2, 2, 2, 0, -2,
	0, 2, 4, 4, 4, 4, 2, 0,
	0, 2, 4, 6, 6, 4, 2, 0,
	0, 2, 4, 6, 6, 4, 2, 0,
	0, 2, 4, 4, 4, 4, 2, 0,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-4, -2, 0, 0, 0, 0, -2, -4,
}

var queenMG = [64]int{
	-4, -2, 0, 0, 0, 0, -2, -4,
	-2, 0, 2, 2, 2, 2, 0, -2,
	0, 2, 4, 4, 4, 4, 2, 0,
	0, 2, 4, 6, 6, 4, 2, 0,
	0, 2, 4, 6, 6, 4, 2, 0,
	0, 2, 4, 4, 4, 4, 2, 0,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-4, -2, 0, 0, 0, 0, -2, -4,
}

var queenEG = [64]int{
	-2, -1, 0, 0, 0, 0, -1, -2,
	-1, 0, 1, 1, 1, 1, 0, -1,
	0, 1, 2, 2, 2, 2, 1, 0,
	0, 1, 2, 4, 4, 2, 1, 0,
	0, 1, 2, 4, 4, 2, 1, 0,
	0, 1, 2, 2, 2, 2, 1, 0,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-2, -1, 0, 0, 0, 0, -1, -2,
}

var kingMG = [64]int{
	-40, -30, -30, -30, -30, -30, -30, -40,
	-30, -20, -10, -10, -10, -10, -20, -30,
	-20, -10, 0, 0, 0, 0, -10, -20,
	-10, 0, 5, 5, 5, 5, 0, -10,
	0, 5, 10, 10, 10, 10, 5, 0,
	-5, 0, 5, 10, 10, 5, 0, -5,
	-30, -20, -10, -10, -10, -10, -20, -30,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var kingEG = [64]int{
	-6, -4, -2, 0, 0, -2, -4, -6,
	-4, 0, 2, 4, 4, 2, 0, -4,
	-2, 2, 4, 6, 6, 4, 2, -2,
	0, 4, 6, 8, 8, 6, 4, 0,
	0, 4, 6, 8, 8, 6, 4, 0,
	-2, 2, 4, 6, 6, 4, 2, -2,
	-4, 0, 2, 4, 4, 2, 0, -4,
	-6, -4, -2, 0, 0, -2, -4, -6,
}

var midgameTables, endgameTables [King + 1][64]int

func init() {
	midgameTables[Pawn] = pawnMG
	endgameTables[Pawn] = pawnEG
	midgameTables[Knight] = knightMG
	endgameTables[Knight] = knightEG
	midgameTables[Bishop] = bishopMG
	endgameTables[Bishop] = bishopEG
	midgameTables[Rook] = rookMG
	endgameTables[Rook] = rookEG
	midgameTables[Queen] = queenMG
	endgameTables[Queen] = queenEG
	midgameTables[King] = kingMG
	endgameTables[King] = kingEG
}

// pstValue interpolates between the midgame and endgame tables. phase
// ranges from 0 (pure endgame) to 256 (opening). Black flips the rank
// only.
func pstValue(pieceType, sq int, side bool, phase int) int {
	if !side {
		sq = FlipSquare(sq)
	}
	var mg = midgameTables[pieceType][sq]
	var eg = endgameTables[pieceType][sq]
	return (mg*phase + eg*(256-phase)) / 256
}
