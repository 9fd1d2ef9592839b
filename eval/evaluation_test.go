package eval

import (
	"strings"
	"testing"

	. "github.com/arbiterchess/arbiter/common"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	var b, err = NewBoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEvaluateStartingPosition(t *testing.T) {
	var e = NewEvaluationService()
	var b = NewBoard()
	if got := e.Evaluate(&b.Position); got != 0 {
		t.Errorf("starting position = %d, want 0", got)
	}
	if got := e.Phase(&b.Position); got != 256 {
		t.Errorf("starting phase = %d, want 256", got)
	}
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	var e = NewEvaluationService()

	// White up a pawn, black to move: black sees a deficit.
	var b = mustBoard(t, "rnbqkbnr/ppp1pppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	var score = e.Evaluate(&b.Position)
	if score > -100 || score < -250 {
		t.Errorf("black down a pawn: %d", score)
	}

	// White up a rook, white to move.
	b = mustBoard(t, "rnbqkbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQq - 0 1")
	score = e.Evaluate(&b.Position)
	if score < 495 || score > 505 {
		t.Errorf("white up a rook: %d", score)
	}
}

func TestEvaluatePhase(t *testing.T) {
	var e = NewEvaluationService()
	var b = mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := e.Phase(&b.Position); got != 0 {
		t.Errorf("bare kings phase = %d, want 0", got)
	}
	b = mustBoard(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if got := e.Phase(&b.Position); got != 4*256/24 {
		t.Errorf("lone queen phase = %d", got)
	}
}

// mirrorFEN swaps the colors and flips the ranks, producing the same
// position from the other side's point of view.
func mirrorFEN(fen string) string {
	var tokens = strings.Fields(fen)
	var ranks = strings.Split(tokens[0], "/")
	var flipped = make([]string, 8)
	for i, rank := range ranks {
		var sb strings.Builder
		for _, ch := range rank {
			switch {
			case ch >= 'a' && ch <= 'z':
				sb.WriteRune(ch - 'a' + 'A')
			case ch >= 'A' && ch <= 'Z':
				sb.WriteRune(ch - 'A' + 'a')
			default:
				sb.WriteRune(ch)
			}
		}
		flipped[7-i] = sb.String()
	}
	var side = "w"
	if tokens[1] == "w" {
		side = "b"
	}
	return strings.Join(flipped, "/") + " " + side + " - - 0 1"
}

func TestEvaluateAntiSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	var fens = []string{
		"rnbqkbnr/ppp1pppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/p1P3p1/2q1np1p/3N4/8/1Q3PP1/6KP/8 w - - 0 1",
	}
	for _, fen := range fens {
		var b = mustBoard(t, fen)
		var m = mustBoard(t, mirrorFEN(fen))
		var got, want = e.Evaluate(&m.Position), e.Evaluate(&b.Position)
		if got != want {
			t.Errorf("%s: mirror evaluates to %d, original %d", fen, got, want)
		}
		var material = e.MaterialBalance(&b.Position)
		var mirrored = e.MaterialBalance(&m.Position)
		if material != mirrored {
			t.Errorf("%s: material %d vs mirrored %d", fen, material, mirrored)
		}
	}
}
