package engine

import (
	"testing"

	. "github.com/arbiterchess/arbiter/common"
)

func TestTransTableRoundTrip(t *testing.T) {
	var tt = newTransTable(1)
	var key = uint64(0x123456789ABCDEF0)
	var move = Move(12345)

	if _, ok := tt.Read(key); ok {
		t.Error("empty table must miss")
	}
	tt.Update(key, 5, 42, boundExact, move)
	var entry, ok = tt.Read(key)
	if !ok {
		t.Fatal("stored entry must be found")
	}
	if entry.Score != 42 || entry.Depth != 5 || entry.Bound != boundExact || entry.Move != move {
		t.Errorf("entry = %+v", entry)
	}

	// Depth gating.
	if _, ok := tt.Lookup(key, 6); ok {
		t.Error("lookup must reject shallower entries")
	}
	if _, ok := tt.Lookup(key, 5); !ok {
		t.Error("lookup at the stored depth must hit")
	}

	// A colliding key with the same slot index must not match.
	var other = key ^ (uint64(1) << 40)
	if _, ok := tt.Read(other); ok {
		t.Error("different key must miss even on slot collision")
	}

	tt.Clear()
	if _, ok := tt.Read(key); ok {
		t.Error("cleared table must miss")
	}
}

func TestTransTablePowerOfTwo(t *testing.T) {
	for _, mb := range []int{1, 2, 16, 64} {
		var tt = newTransTable(mb)
		var n = len(tt.entries)
		if n&(n-1) != 0 {
			t.Errorf("%d mb: entry count %d is not a power of two", mb, n)
		}
		if tt.mask != uint64(n-1) {
			t.Errorf("%d mb: mask %d does not match size %d", mb, tt.mask, n)
		}
	}
}

func TestMateScoreNormalization(t *testing.T) {
	for _, ply := range []int{0, 1, 5, 20} {
		for _, score := range []int{winIn(3), lossIn(3), 150, -150, 0} {
			var stored = valueToTT(score, ply)
			if got := valueFromTT(stored, ply); got != score {
				t.Errorf("ply %d score %d: roundtrip gives %d", ply, score, got)
			}
		}
	}
	// Non-mate scores pass through untouched.
	if valueToTT(100, 7) != 100 || valueFromTT(-100, 7) != -100 {
		t.Error("plain scores must not be adjusted")
	}
}

func TestIsMateScore(t *testing.T) {
	if !IsMateScore(Mate - 1) || !IsMateScore(-(Mate - 1)) {
		t.Error("mate-in-one scores are mate scores")
	}
	if IsMateScore(500) || IsMateScore(-500) {
		t.Error("material scores are not mate scores")
	}
	if MateDistance(Mate-1) != 1 {
		t.Errorf("mate distance of %d = %d", Mate-1, MateDistance(Mate-1))
	}
	if MateDistance(Mate-4) != 2 {
		t.Errorf("mate distance of %d = %d", Mate-4, MateDistance(Mate-4))
	}
}
