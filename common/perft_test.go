package common

import "testing"

// https://www.chessprogramming.org/Perft_Results
var perftTests = []struct {
	fen   string
	depth int
	nodes int
}{
	{InitialPositionFen, 4, 197281},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
	{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9467},
	{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
	{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3, 89890},
}

func TestPerft(t *testing.T) {
	for i, test := range perftTests {
		var b, err = NewBoardFromFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		var fenBefore = b.FEN()
		var nodes = Perft(b, test.depth)
		if nodes != test.nodes {
			t.Error(i, test.fen, nodes, test.nodes)
		}
		if b.FEN() != fenBefore {
			t.Error(i, "perft must leave the board unchanged")
		}
	}
}

func TestPerftParallel(t *testing.T) {
	for _, test := range perftTests[:2] {
		var b, err = NewBoardFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if nodes := PerftParallel(b, test.depth); nodes != test.nodes {
			t.Error(test.fen, nodes, test.nodes)
		}
	}
}
