package common

// Move packs from, to, the moving and captured piece types, the
// promotion piece type, and a special marker for castling/en-passant
// into a single value. Two moves are equal iff the values are equal.
type Move int32

const MoveEmpty = Move(0)

// MoveFlag classifies a move as it was generated. The capture flag is
// decided by the generator when it sees an enemy piece on the
// destination, not by re-reading the board at execution time.
type MoveFlag int

const (
	FlagNormal MoveFlag = iota
	FlagCapture
	FlagPromotion
	FlagCastling
	FlagEnPassant
)

const (
	specialCastling  = 1
	specialEnPassant = 2
)

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 15))
}

func makePawnMove(from, to, capturedPiece, promotion int) Move {
	return Move(from ^ (to << 6) ^ (Pawn << 12) ^ (capturedPiece << 15) ^ (promotion << 18))
}

func makeCastlingMove(from, to int) Move {
	return Move(from ^ (to << 6) ^ (King << 12) ^ (specialCastling << 21))
}

func makeEnPassantMove(from, to int) Move {
	return Move(from ^ (to << 6) ^ (Pawn << 12) ^ (Pawn << 15) ^ (specialEnPassant << 21))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 15) & 7)
}

func (m Move) Promotion() int {
	return int((m >> 18) & 7)
}

func (m Move) special() int {
	return int((m >> 21) & 3)
}

func (m Move) Flag() MoveFlag {
	switch m.special() {
	case specialCastling:
		return FlagCastling
	case specialEnPassant:
		return FlagEnPassant
	}
	if m.Promotion() != Empty {
		return FlagPromotion
	}
	if m.CapturedPiece() != Empty {
		return FlagCapture
	}
	return FlagNormal
}

// IsCapture reports whether the move takes a piece, en passant included.
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != Empty
}

// String renders the move in UCI notation: from square, to square and,
// for promotions, the promotion letter. Castling is the king's
// two-square move, en passant the capturing pawn's diagonal move.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}
