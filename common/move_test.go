package common

import "testing"

func TestMoveFlags(t *testing.T) {
	var quiet = makeMove(SquareG1, SquareF3, Knight, Empty)
	if quiet.Flag() != FlagNormal || quiet.IsCapture() {
		t.Error("knight development must be a normal move")
	}
	var capture = makeMove(SquareE4, SquareD5, Pawn, Queen)
	if capture.Flag() != FlagCapture || !capture.IsCapture() {
		t.Error("pawn takes queen must be flagged a capture")
	}
	if capture.CapturedPiece() != Queen || capture.MovingPiece() != Pawn {
		t.Error("capture must record both piece types")
	}
	var promo = makePawnMove(SquareE7, SquareE8, Empty, Queen)
	if promo.Flag() != FlagPromotion || promo.Promotion() != Queen {
		t.Error("promotion flag expected")
	}
	var promoCapture = makePawnMove(SquareE7, SquareD8, Rook, Knight)
	if promoCapture.Flag() != FlagPromotion || !promoCapture.IsCapture() {
		t.Error("capture promotion keeps the promotion flag and the capture")
	}
	var castle = makeCastlingMove(SquareE1, SquareG1)
	if castle.Flag() != FlagCastling || castle.MovingPiece() != King {
		t.Error("castling flag expected")
	}
	var ep = makeEnPassantMove(SquareD5, SquareC6)
	if ep.Flag() != FlagEnPassant || !ep.IsCapture() || ep.CapturedPiece() != Pawn {
		t.Error("en passant must be a pawn-takes-pawn capture")
	}
}

func TestMoveEquality(t *testing.T) {
	var a = makeMove(SquareE2, SquareE4, Pawn, Empty)
	var b = makeMove(SquareE2, SquareE4, Pawn, Empty)
	if a != b {
		t.Error("identical moves must compare equal")
	}
	if a == makeMove(SquareE2, SquareE3, Pawn, Empty) {
		t.Error("different destinations must differ")
	}
	if makePawnMove(SquareE7, SquareE8, Empty, Queen) == makePawnMove(SquareE7, SquareE8, Empty, Rook) {
		t.Error("different promotions must differ")
	}
}

func TestMoveUCIString(t *testing.T) {
	var tests = []struct {
		move Move
		want string
	}{
		{makeMove(SquareE2, SquareE4, Pawn, Empty), "e2e4"},
		{makeCastlingMove(SquareE1, SquareG1), "e1g1"},
		{makeEnPassantMove(SquareD5, SquareC6), "d5c6"},
		{makePawnMove(SquareE7, SquareE8, Empty, Queen), "e7e8q"},
		{makePawnMove(SquareA2, SquareA1, Empty, Knight), "a2a1n"},
		{MoveEmpty, "0000"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
