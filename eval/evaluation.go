package eval

import . "github.com/arbiterchess/arbiter/common"

const (
	minorPhase = 1
	rookPhase  = 2
	queenPhase = 4
	totalPhase = 24
)

// PieceValues holds the material values in centipawns, indexed by
// piece type. Kings are never captured so they carry no material.
var PieceValues = [King + 1]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Phase maps the remaining non-pawn material to [0, 256]: 256 is the
// opening, 0 the pure endgame.
func (e *EvaluationService) Phase(p *Position) int {
	var units = minorPhase*PopCount(p.Knights|p.Bishops) +
		rookPhase*PopCount(p.Rooks) +
		queenPhase*PopCount(p.Queens)
	units = Min(units, totalPhase)
	return units * 256 / totalPhase
}

// Evaluate scores the position in centipawns from the side to move's
// perspective: material plus phase-interpolated piece-square bonuses.
// Terminal positions are the caller's concern.
func (e *EvaluationService) Evaluate(p *Position) int {
	var phase = e.Phase(p)
	var score = 0

	for x := p.White; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var piece = p.WhatPiece(sq)
		score += PieceValues[piece] + pstValue(piece, sq, true, phase)
	}
	for x := p.Black; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var piece = p.WhatPiece(sq)
		score -= PieceValues[piece] + pstValue(piece, sq, false, phase)
	}

	if !p.WhiteMove {
		score = -score
	}
	return score
}

// MaterialBalance is the raw material difference from the side to
// move's perspective, without positional terms.
func (e *EvaluationService) MaterialBalance(p *Position) int {
	var score = 0
	for piece := Pawn; piece <= Queen; piece++ {
		var bb = p.Pieces(piece, true)
		score += PieceValues[piece] * PopCount(bb)
		bb = p.Pieces(piece, false)
		score -= PieceValues[piece] * PopCount(bb)
	}
	if !p.WhiteMove {
		score = -score
	}
	return score
}
