package common

import (
	"strings"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"k7/2Q5/1K6/8/8/8/8/8 b - - 0 1",
		"7k/8/6K1/8/8/8/1N6/8 w - - 99 1",
	}
	for _, fen := range fens {
		var b, err = NewBoardFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip %q -> %q", fen, got)
		}
		var b2, err2 = NewBoardFromFEN(b.FEN())
		if err2 != nil {
			t.Fatal(err2)
		}
		if b2.Position != b.Position {
			t.Errorf("%s: reparsed position differs", fen)
		}
		if b2.Hash() != b.Hash() {
			t.Errorf("%s: reparsed hash differs", fen)
		}
	}
}

func TestFENErrors(t *testing.T) {
	var tests = []struct {
		fen  string
		hint string
	}{
		{"", "fields"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq", "fields"},
		{"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "ranks"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPX/RNBQKBNR w KQkq - 0 1", "piece"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPPP/RNBQKBNR w KQkq - 0 1", "overflow"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1", "files"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "side"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1", "castling"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", "square"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", "clock"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", "fullmove"},
	}
	for _, tt := range tests {
		var b = &Board{}
		var err = b.LoadFEN(tt.fen)
		if err == nil {
			t.Errorf("LoadFEN(%q) should fail (%s)", tt.fen, tt.hint)
		}
	}
}

func TestLoadFENKeepsBoardOnError(t *testing.T) {
	var b = NewBoard()
	var fen = b.FEN()
	if err := b.LoadFEN("garbage"); err == nil {
		t.Fatal("error expected")
	}
	if b.FEN() != fen {
		t.Error("board must be unchanged after a failed load")
	}
}

func TestASCIIDiagram(t *testing.T) {
	var b = NewBoard()
	var lines = strings.Split(b.String(), "\n")
	if len(lines) != 9 {
		t.Fatalf("9 lines expected, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "r n b q k b n r") {
		t.Errorf("rank 8 line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[7], "R N B Q K B N R") {
		t.Errorf("rank 1 line = %q", lines[7])
	}
	if lines[8] != "a b c d e f g h" {
		t.Errorf("file legend = %q", lines[8])
	}
}
