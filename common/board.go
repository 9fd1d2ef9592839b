package common

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoHistory   = errors.New("no moves to undo")
)

// MoveUndo is the frame MakeMove pushes and UndoMove consumes.
// Captured is the piece standing on the destination immediately before
// the move; for en passant it is Empty and the taken pawn is derived
// from the move itself.
type MoveUndo struct {
	Move         Move
	Captured     int
	CastleRights int
	EpSquare     int
	Rule50       int
	Key          uint64
}

// Board owns a Position and the undo stack. All mutation goes through
// MakeMove/UndoMove so the zobrist key and occupancy caches never
// drift from the piece boards.
type Board struct {
	Position
	history []MoveUndo
}

func NewBoard() *Board {
	var b = &Board{}
	b.Reset()
	return b
}

func NewBoardFromFEN(fen string) (*Board, error) {
	var b = &Board{}
	if err := b.LoadFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset sets the standard starting position and clears the history.
func (b *Board) Reset() {
	if err := b.LoadFEN(InitialPositionFen); err != nil {
		panic(err)
	}
}

// Clone copies the board including its undo history, so repetition
// detection keeps working on the copy.
func (b *Board) Clone() *Board {
	var c = &Board{Position: b.Position}
	c.history = append([]MoveUndo(nil), b.history...)
	return c
}

func (b *Board) Hash() uint64 {
	return b.Key
}

// SideToMove reports true when White is to move.
func (b *Board) SideToMove() bool {
	return b.WhiteMove
}

func (b *Board) HalfmoveClock() int {
	return b.Rule50
}

func (b *Board) FullmoveNumber() int {
	return b.FullMove
}

func (b *Board) EnPassantSquare() int {
	return b.EpSquare
}

func (b *Board) CanCastleKingSide(side bool) bool {
	return b.CastleRights&let(side, WhiteKingSide, BlackKingSide) != 0
}

func (b *Board) CanCastleQueenSide(side bool) bool {
	return b.CastleRights&let(side, WhiteQueenSide, BlackQueenSide) != 0
}

// PieceAt reports the piece on sq; Empty means no piece.
func (b *Board) PieceAt(sq int) (pieceType int, side bool) {
	return b.GetPieceTypeAndSide(sq)
}

// PiecesOfType lists the squares holding pieces of the given type and
// color, in ascending square order.
func (b *Board) PiecesOfType(pieceType int, side bool) []int {
	var result []int
	for x := b.Pieces(pieceType, side); x != 0; x &= x - 1 {
		result = append(result, FirstOne(x))
	}
	return result
}

func (b *Board) PiecesOfColor(side bool) []int {
	var result []int
	for x := b.PiecesByColor(side); x != 0; x &= x - 1 {
		result = append(result, FirstOne(x))
	}
	return result
}

// MoveHistory returns the moves made and not yet undone, oldest first.
func (b *Board) MoveHistory() []Move {
	var result = make([]Move, len(b.history))
	for i := range b.history {
		result[i] = b.history[i].Move
	}
	return result
}

// ClearHistory drops the undo stack. Undo is impossible past this
// point and repetition counting restarts.
func (b *Board) ClearHistory() {
	b.history = b.history[:0]
}

// TryMove plays a pseudo-legal move and reports whether the mover's
// king is safe. On false the move has been taken back already. The
// caller vouches that m came out of the generator for this position.
func (b *Board) TryMove(m Move) bool {
	b.history = append(b.history, MoveUndo{
		Move:         m,
		Captured:     let(m.Flag() == FlagEnPassant, Empty, m.CapturedPiece()),
		CastleRights: b.CastleRights,
		EpSquare:     b.EpSquare,
		Rule50:       b.Rule50,
		Key:          b.Key,
	})
	b.applyMove(m)
	if b.IsAttackedBySide(b.KingSquare(!b.WhiteMove), b.WhiteMove) {
		b.undo()
		return false
	}
	return true
}

func (b *Board) undo() {
	var frame = &b.history[len(b.history)-1]
	b.revertMove(frame)
	b.history = b.history[:len(b.history)-1]
}

// MakeMove plays m if it is legal. On ErrIllegalMove the position is
// untouched.
func (b *Board) MakeMove(m Move) error {
	var buffer [MaxMoves]Move
	var found = false
	for _, pm := range GenerateMoves(buffer[:], &b.Position) {
		if pm == m {
			found = true
			break
		}
	}
	if !found || !b.TryMove(m) {
		return ErrIllegalMove
	}
	return nil
}

// MakeUCIMove plays the move written in UCI notation ("e2e4", "e7e8q").
func (b *Board) MakeUCIMove(uci string) error {
	var m, err = b.ParseMove(uci)
	if err != nil {
		return err
	}
	return b.MakeMove(m)
}

// ParseMove resolves a UCI move string against the legal moves of the
// current position.
func (b *Board) ParseMove(uci string) (Move, error) {
	for _, m := range b.LegalMoves() {
		if m.String() == uci {
			return m, nil
		}
	}
	return MoveEmpty, ErrIllegalMove
}

// UndoMove reverses the most recent move.
func (b *Board) UndoMove() error {
	if len(b.history) == 0 {
		return ErrNoHistory
	}
	b.undo()
	return nil
}

// LegalMoves filters the pseudo-legal moves by playing each one,
// testing the mover's king and undoing. Simple and correct; the
// position is unchanged afterwards.
func (b *Board) LegalMoves() []Move {
	var buffer [MaxMoves]Move
	var result []Move
	for _, m := range GenerateMoves(buffer[:], &b.Position) {
		if b.TryMove(m) {
			b.undo()
			result = append(result, m)
		}
	}
	return result
}

// LegalMovesInto fills a fixed-capacity MoveList with the legal moves,
// clearing it first.
func (b *Board) LegalMovesInto(ml *MoveList) {
	ml.Clear()
	var buffer [MaxMoves]Move
	for _, m := range GenerateMoves(buffer[:], &b.Position) {
		if b.TryMove(m) {
			b.undo()
			ml.Add(m)
		}
	}
}

// LegalCaptures returns the legal moves that take a piece, en passant
// included. Used by quiescence.
func (b *Board) LegalCaptures() []Move {
	var buffer [MaxMoves]Move
	var result []Move
	for _, m := range GenerateMoves(buffer[:], &b.Position) {
		if !m.IsCapture() {
			continue
		}
		if b.TryMove(m) {
			b.undo()
			result = append(result, m)
		}
	}
	return result
}

// IsLegalMove reports whether m is playable in the current position.
func (b *Board) IsLegalMove(m Move) bool {
	var buffer [MaxMoves]Move
	for _, pm := range GenerateMoves(buffer[:], &b.Position) {
		if pm != m {
			continue
		}
		if b.TryMove(m) {
			b.undo()
			return true
		}
		return false
	}
	return false
}

func (b *Board) IsInCheck() bool {
	return b.IsAttackedBySide(b.KingSquare(b.WhiteMove), !b.WhiteMove)
}

func (b *Board) IsCheckmate() bool {
	return b.IsInCheck() && len(b.LegalMoves()) == 0
}

func (b *Board) IsStalemate() bool {
	return !b.IsInCheck() && len(b.LegalMoves()) == 0
}

func (b *Board) IsFiftyMoveDraw() bool {
	return b.Rule50 >= 100
}

// PositionRepetitions counts how many prior positions in the undo
// history had the current hash. Irreversible moves change the hash, so
// repetition windows partition naturally.
func (b *Board) PositionRepetitions() int {
	var count = 0
	for i := range b.history {
		if b.history[i].Key == b.Key {
			count++
		}
	}
	return count
}

// IsThreefoldRepetition is true when the current position is at least
// the third occurrence, i.e. the hash already appeared twice before.
func (b *Board) IsThreefoldRepetition() bool {
	return b.PositionRepetitions() >= 2
}

func (b *Board) IsDraw() bool {
	return b.IsStalemate() || b.IsFiftyMoveDraw() || b.IsThreefoldRepetition()
}

func (b *Board) IsGameOver() bool {
	return b.IsCheckmate() || b.IsDraw()
}

// GameResult returns 1 for a white win, 0 for a black win, 0.5 for any
// draw. ok is false while the game is still going.
func (b *Board) GameResult() (result float64, ok bool) {
	if b.IsCheckmate() {
		if b.WhiteMove {
			return 0, true
		}
		return 1, true
	}
	if b.IsDraw() {
		return 0.5, true
	}
	return 0, false
}

// IsValidPosition verifies the basic structural invariants: one king
// per side, the side not to move not in check, no pawns on the back
// ranks, and castle rights backed by king and rook placement.
func (b *Board) IsValidPosition() bool {
	if PopCount(b.Kings&b.White) != 1 || PopCount(b.Kings&b.Black) != 1 {
		return false
	}
	if b.IsAttackedBySide(b.KingSquare(!b.WhiteMove), b.WhiteMove) {
		return false
	}
	if b.Pawns&(Rank1Mask|Rank8Mask) != 0 {
		return false
	}
	var rights = []struct {
		mask       int
		king, rook int
		side       bool
	}{
		{WhiteKingSide, SquareE1, SquareH1, true},
		{WhiteQueenSide, SquareE1, SquareA1, true},
		{BlackKingSide, SquareE8, SquareH8, false},
		{BlackQueenSide, SquareE8, SquareA8, false},
	}
	for _, r := range rights {
		if b.CastleRights&r.mask == 0 {
			continue
		}
		if b.Kings&b.PiecesByColor(r.side)&SquareMask[r.king] == 0 {
			return false
		}
		if b.Rooks&b.PiecesByColor(r.side)&SquareMask[r.rook] == 0 {
			return false
		}
	}
	return true
}
