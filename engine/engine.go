package engine

import (
	"time"

	. "github.com/arbiterchess/arbiter/common"

	"github.com/arbiterchess/arbiter/eval"
)

// SearchConfig carries the search limits and feature toggles. The
// iteration callback fires after every completed deepening pass.
type SearchConfig struct {
	TimeLimit             time.Duration
	MaxDepth              int
	TTSizeMb              int
	UseTranspositionTable bool
	UseQuiescenceSearch   bool
	UseMoveOrdering       bool
	OnIterationComplete   func(SearchResult)
}

func DefaultConfig() SearchConfig {
	return SearchConfig{
		TimeLimit:             5 * time.Second,
		MaxDepth:              20,
		TTSizeMb:              64,
		UseTranspositionTable: true,
		UseQuiescenceSearch:   true,
		UseMoveOrdering:       true,
	}
}

// SearchResult is the outcome of the last completed iteration. Depth
// is zero when no iteration finished before the search was stopped.
type SearchResult struct {
	BestMove Move
	Score    int
	Depth    int
	Nodes    int64
	Time     time.Duration
}

// RankedMove pairs a root move with its search score.
type RankedMove struct {
	Move  Move
	Score int
}

type searchStack struct {
	buffer           [MaxMoves]Move
	moveList         [MaxMoves]OrderedMove
	killer1, killer2 Move
}

// Engine owns the transposition table, the evaluator and the search
// heuristics. It is not safe for concurrent use; one search at a time.
type Engine struct {
	config     SearchConfig
	evaluator  *eval.EvaluationService
	transTable *transTable
	stack      [stackSize]searchStack
	history    [64][64]int
	ct         CancellationToken
	nodes      int64
}

func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

func NewEngineWithConfig(config SearchConfig) *Engine {
	var e = &Engine{
		config:    config,
		evaluator: eval.NewEvaluationService(),
	}
	if e.config.MaxDepth <= 0 {
		e.config.MaxDepth = DefaultConfig().MaxDepth
	}
	if e.config.TTSizeMb <= 0 {
		e.config.TTSizeMb = DefaultConfig().TTSizeMb
	}
	e.transTable = newTransTable(e.config.TTSizeMb)
	return e
}

func (e *Engine) Config() SearchConfig {
	return e.config
}

// SetConfig replaces the configuration. Must not be called while a
// search is in progress.
func (e *Engine) SetConfig(config SearchConfig) {
	e.config = config
	if e.config.MaxDepth <= 0 {
		e.config.MaxDepth = DefaultConfig().MaxDepth
	}
	if e.config.TTSizeMb > 0 && e.config.TTSizeMb != e.transTable.SizeMb() {
		e.transTable.Resize(e.config.TTSizeMb)
	}
}

// ResizeTable rebuilds the transposition table with the given size.
func (e *Engine) ResizeTable(megabytes int) {
	e.config.TTSizeMb = megabytes
	e.transTable.Resize(megabytes)
}

// ClearTable empties the transposition table.
func (e *Engine) ClearTable() {
	e.transTable.Clear()
}

// StopSearch asks the running search to stop. The search returns the
// last fully completed iteration's result.
func (e *Engine) StopSearch() {
	e.ct.Cancel()
}

// Evaluate applies the full evaluation contract: mate and draw
// short-circuits, otherwise material plus piece-square terms from the
// side to move's perspective.
func (e *Engine) Evaluate(b *Board) int {
	if b.IsCheckmate() {
		return -Mate
	}
	if b.IsStalemate() || b.IsFiftyMoveDraw() || b.IsThreefoldRepetition() {
		return valueDraw
	}
	return e.evaluator.Evaluate(&b.Position)
}

// FindBestMove searches under the configured depth and time limits.
func (e *Engine) FindBestMove(b *Board) SearchResult {
	return e.search(b, e.config.MaxDepth, e.config.TimeLimit)
}

// FindBestMoveDepth deepens iteratively from depth 1 up to depth with
// no clock and returns the last completed iteration. It does not run a
// lone pass at depth, and it stops short of depth once an iteration
// returns a mate score.
func (e *Engine) FindBestMoveDepth(b *Board, depth int) SearchResult {
	return e.search(b, Min(depth, maxPly), 0)
}

// FindBestMoveTime searches until the wall clock budget runs out.
func (e *Engine) FindBestMoveTime(b *Board, limit time.Duration) SearchResult {
	return e.search(b, e.config.MaxDepth, limit)
}

func (e *Engine) clearHeuristics() {
	for i := range e.stack {
		e.stack[i].killer1 = MoveEmpty
		e.stack[i].killer2 = MoveEmpty
	}
	for i := range e.history {
		for j := range e.history[i] {
			e.history[i][j] = 0
		}
	}
}

// search runs iterative deepening on a clone of the caller's board.
// Killers and history start fresh per search and accumulate across
// iterations.
func (e *Engine) search(b *Board, maxDepth int, timeLimit time.Duration) SearchResult {
	var board = b.Clone()
	e.ct = CancellationToken{}
	e.nodes = 0
	e.clearHeuristics()

	var tm = newTimeManager(timeLimit, &e.ct)
	defer tm.Close()

	var moves = board.LegalMoves()
	var result = SearchResult{}
	if len(moves) == 0 {
		return result
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if tm.IsSoftTimeout() || e.ct.IsCancellationRequested() {
			break
		}
		var score, best, completed = e.searchRoot(board, moves, depth)
		if !completed {
			break
		}
		result = SearchResult{
			BestMove: best,
			Score:    score,
			Depth:    depth,
			Nodes:    e.nodes,
			Time:     tm.Elapsed(),
		}
		if cb := e.config.OnIterationComplete; cb != nil {
			cb(result)
		}
		moveToBegin(moves, best)
		if IsMateScore(score) {
			break
		}
	}
	return result
}

// searchRoot runs one full-width pass over the root moves. The first
// move gets the full window, the rest a null-window probe with
// re-search, so the deterministic tie-break prefers earlier moves.
func (e *Engine) searchRoot(b *Board, moves []Move, depth int) (score int, best Move, completed bool) {
	var alpha = -valueInfinity
	const beta = valueInfinity
	best = moves[0]
	for i, m := range moves {
		if e.ct.IsCancellationRequested() {
			return 0, MoveEmpty, false
		}
		b.TryMove(m)
		var s int
		if i == 0 {
			s = -e.negamax(b, depth-1, 1, -beta, -alpha)
		} else {
			s = -e.negamax(b, depth-1, 1, -(alpha + 1), -alpha)
			if s > alpha {
				s = -e.negamax(b, depth-1, 1, -beta, -alpha)
			}
		}
		b.UndoMove()
		if e.ct.IsCancellationRequested() {
			return 0, MoveEmpty, false
		}
		if s > alpha {
			alpha = s
			best = m
		}
	}
	if e.config.UseTranspositionTable {
		e.transTable.Update(b.Hash(), depth, valueToTT(alpha, 0), boundExact, best)
	}
	return alpha, best, true
}

func moveToBegin(ml []Move, move Move) {
	var index = -1
	for i := range ml {
		if ml[i] == move {
			index = i
			break
		}
	}
	if index <= 0 {
		return
	}
	for i := index; i > 0; i-- {
		ml[i] = ml[i-1]
	}
	ml[0] = move
}

// PrincipalVariation reconstructs the expected line by walking the
// best-move entries in the transposition table.
func (e *Engine) PrincipalVariation(b *Board, maxLen int) []Move {
	var board = b.Clone()
	var pv []Move
	for len(pv) < maxLen {
		var entry, ok = e.transTable.Read(board.Hash())
		if !ok || entry.Move == MoveEmpty {
			break
		}
		if board.MakeMove(entry.Move) != nil {
			break
		}
		pv = append(pv, entry.Move)
		if board.IsThreefoldRepetition() {
			break
		}
	}
	return pv
}

// RankedMoves scores every legal root move with a fixed-depth search
// and returns them best first.
func (e *Engine) RankedMoves(b *Board, depth int) []RankedMove {
	var board = b.Clone()
	e.ct = CancellationToken{}
	depth = Max(1, Min(depth, maxPly))

	var result []RankedMove
	for _, m := range board.LegalMoves() {
		board.TryMove(m)
		var score = -e.negamax(board, depth-1, 1, -valueInfinity, valueInfinity)
		board.UndoMove()
		result = append(result, RankedMove{Move: m, Score: score})
	}
	for i := 1; i < len(result); i++ {
		j, t := i, result[i]
		for ; j > 0 && result[j-1].Score < t.Score; j-- {
			result[j] = result[j-1]
		}
		result[j] = t
	}
	return result
}

// Nodes reports the node count of the last search.
func (e *Engine) Nodes() int64 {
	return e.nodes
}
