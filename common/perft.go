package common

import "golang.org/x/sync/errgroup"

// Perft counts the leaf nodes of the legal move tree to the given
// depth. The standard move generator correctness check.
func Perft(b *Board, depth int) int {
	if depth <= 0 {
		return 1
	}
	var buffer [MaxMoves]Move
	var result = 0
	for _, m := range GenerateMoves(buffer[:], &b.Position) {
		if b.TryMove(m) {
			if depth > 1 {
				result += Perft(b, depth-1)
			} else {
				result++
			}
			b.undo()
		}
	}
	return result
}

// PerftParallel fans the root moves out over goroutines, one board
// clone per move. Must agree with Perft exactly.
func PerftParallel(b *Board, depth int) int {
	if depth <= 1 {
		return Perft(b, depth)
	}
	var moves = b.LegalMoves()
	var counts = make([]int, len(moves))
	var g errgroup.Group
	for i := range moves {
		var i = i
		var child = b.Clone()
		g.Go(func() error {
			if !child.TryMove(moves[i]) {
				return ErrIllegalMove
			}
			counts[i] = Perft(child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	var result = 0
	for _, n := range counts {
		result += n
	}
	return result
}
