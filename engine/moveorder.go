package engine

import (
	. "github.com/arbiterchess/arbiter/common"

	"github.com/arbiterchess/arbiter/eval"
)

const (
	sortKeyTransMove = 1000000
	sortKeyCapture   = 500000
	sortKeyKiller    = 90000
)

// mvvLVA prefers the most valuable victim taken by the least valuable
// attacker.
func mvvLVA(m Move) int {
	return 10*eval.PieceValues[m.CapturedPiece()] - eval.PieceValues[m.MovingPiece()]
}

// scoreMoves assigns the ordering keys: hash move, then winning-victim
// captures, then killers, then history.
func (e *Engine) scoreMoves(ml []OrderedMove, ttMove Move, ply int) {
	var killer1 = e.stack[ply].killer1
	var killer2 = e.stack[ply].killer2
	for i := range ml {
		var m = ml[i].Move
		var score int
		switch {
		case m == ttMove:
			score = sortKeyTransMove
		case m.IsCapture():
			score = sortKeyCapture + mvvLVA(m)
		case m == killer1 || m == killer2:
			score = sortKeyKiller
		default:
			score = e.history[m.From()][m.To()]
		}
		ml[i].Key = int32(score)
	}
}

// storeKiller shifts the per-ply killer slots, most recent first.
func (e *Engine) storeKiller(ply int, m Move) {
	if e.stack[ply].killer1 != m {
		e.stack[ply].killer2 = e.stack[ply].killer1
		e.stack[ply].killer1 = m
	}
}

// sortMoves is a descending insertion sort; move lists are short and
// mostly sorted after the keys above.
func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
