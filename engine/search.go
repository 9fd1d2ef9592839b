package engine

import . "github.com/arbiterchess/arbiter/common"

// legalOrderedMoves filters the pseudo-legal moves through make/undo
// into the per-ply buffer and orders them when ordering is enabled.
func (e *Engine) legalOrderedMoves(b *Board, ply int, ttMove Move) []OrderedMove {
	var ss = &e.stack[ply]
	var count = 0
	for _, m := range GenerateMoves(ss.buffer[:], &b.Position) {
		if b.TryMove(m) {
			b.UndoMove()
			ss.moveList[count].Move = m
			ss.moveList[count].Key = 0
			count++
		}
	}
	var ml = ss.moveList[:count]
	if e.config.UseMoveOrdering {
		e.scoreMoves(ml, ttMove, ply)
		sortMoves(ml)
	}
	return ml
}

// negamax searches depth plies below the current node. Scores are
// always from the side to move's perspective; ply is the distance from
// the root and anchors mate scores.
func (e *Engine) negamax(b *Board, depth, ply, alpha, beta int) int {
	if e.ct.IsCancellationRequested() {
		return 0
	}
	e.nodes++

	var oldAlpha = alpha
	var ttMove = MoveEmpty
	if e.config.UseTranspositionTable {
		if entry, ok := e.transTable.Read(b.Hash()); ok {
			ttMove = entry.Move
			if int(entry.Depth) >= depth && ply > 0 {
				var score = valueFromTT(int(entry.Score), ply)
				switch entry.Bound {
				case boundExact:
					return score
				case boundLower:
					alpha = Max(alpha, score)
				case boundUpper:
					beta = Min(beta, score)
				}
				if alpha >= beta {
					return score
				}
			}
		}
	}

	if ply > 0 && (b.IsFiftyMoveDraw() || b.IsThreefoldRepetition()) {
		return valueDraw
	}

	var inCheck = b.IsInCheck()
	// The table stores the depth the node was asked for, before the
	// check extension, since that is the depth the probe compares.
	var probeDepth = depth
	if inCheck && ply+depth < maxPly {
		depth++
	}

	if depth <= 0 {
		if e.config.UseQuiescenceSearch {
			return e.quiescence(b, ply, alpha, beta)
		}
		return e.evaluator.Evaluate(&b.Position)
	}
	if ply >= maxPly {
		return e.evaluator.Evaluate(&b.Position)
	}

	var ml = e.legalOrderedMoves(b, ply, ttMove)
	if len(ml) == 0 {
		if inCheck {
			return lossIn(ply)
		}
		return valueDraw
	}

	var best = -(Mate + 1)
	var bestMove = MoveEmpty
	var movesSearched = 0

	for i := range ml {
		var m = ml[i].Move
		b.TryMove(m)
		movesSearched++

		var newDepth = depth - 1
		var score int
		if movesSearched == 1 {
			score = -e.negamax(b, newDepth, ply+1, -beta, -alpha)
		} else {
			// Late-move reduction on quiet moves, verified by
			// re-search whenever the reduced probe beats alpha.
			var reduction = 0
			if !inCheck && !m.IsCapture() && m.Promotion() == Empty {
				reduction = 1
				if depth >= 6 {
					reduction = 2
				}
				reduction = Min(reduction, newDepth)
			}
			score = -e.negamax(b, newDepth-reduction, ply+1, -(alpha + 1), -alpha)
			if score > alpha {
				score = -e.negamax(b, newDepth, ply+1, -beta, -alpha)
			}
		}

		b.UndoMove()
		if e.ct.IsCancellationRequested() {
			return 0
		}

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				if !m.IsCapture() {
					e.storeKiller(ply, m)
					e.history[m.From()][m.To()] += depth * depth
				}
				break
			}
		}
	}

	if alpha < beta && best > oldAlpha && !bestMove.IsCapture() {
		e.history[bestMove.From()][bestMove.To()] += depth * depth
	}

	if e.config.UseTranspositionTable {
		var bound = 0
		if best > oldAlpha {
			bound |= boundLower
		}
		if best < beta {
			bound |= boundUpper
		}
		e.transTable.Update(b.Hash(), probeDepth, valueToTT(best, ply), bound, bestMove)
	}

	return best
}

// quiescence searches captures only (evasions while in check) so the
// horizon never lands mid-exchange. It does not touch the table.
func (e *Engine) quiescence(b *Board, ply, alpha, beta int) int {
	if e.ct.IsCancellationRequested() {
		return 0
	}
	e.nodes++

	if b.IsFiftyMoveDraw() || b.IsThreefoldRepetition() {
		return valueDraw
	}
	if ply >= maxPly {
		return e.evaluator.Evaluate(&b.Position)
	}

	var inCheck = b.IsInCheck()
	if !inCheck {
		var standPat = e.evaluator.Evaluate(&b.Position)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var moves []Move
	if inCheck {
		moves = b.LegalMoves()
		if len(moves) == 0 {
			return lossIn(ply)
		}
	} else {
		moves = b.LegalCaptures()
		if len(moves) == 0 {
			if b.IsStalemate() {
				return valueDraw
			}
			return alpha
		}
	}

	var ml = make([]OrderedMove, len(moves))
	for i, m := range moves {
		ml[i].Move = m
		if m.IsCapture() {
			ml[i].Key = int32(mvvLVA(m))
		}
	}
	if e.config.UseMoveOrdering {
		sortMoves(ml)
	}

	for i := range ml {
		b.TryMove(ml[i].Move)
		var score = -e.quiescence(b, ply+1, -beta, -alpha)
		b.UndoMove()
		if e.ct.IsCancellationRequested() {
			return 0
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				return beta
			}
		}
	}

	return alpha
}
