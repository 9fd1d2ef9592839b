package engine

import . "github.com/arbiterchess/arbiter/common"

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

type ttEntry struct {
	Key   uint64
	Move  Move
	Score int32
	Depth int8
	Bound uint8
}

// transTable is a direct-mapped table with a power-of-two entry count,
// so indexing is a single mask. Stores overwrite unconditionally; the
// table is a memoizer, never a correctness dependency.
type transTable struct {
	megabytes int
	entries   []ttEntry
	mask      uint64
}

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

func newTransTable(megabytes int) *transTable {
	var tt = &transTable{}
	tt.Resize(megabytes)
	return tt
}

func (tt *transTable) Resize(megabytes int) {
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 24)
	tt.megabytes = megabytes
	tt.entries = make([]ttEntry, size)
	tt.mask = uint64(size - 1)
}

func (tt *transTable) SizeMb() int {
	return tt.megabytes
}

func (tt *transTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = ttEntry{}
	}
}

// Read returns the slot for key when the full hash matches, regardless
// of depth. Depth gating happens at the probe site, which still wants
// the stored move for ordering when the depth is too shallow.
func (tt *transTable) Read(key uint64) (ttEntry, bool) {
	var entry = tt.entries[key&tt.mask]
	if entry.Key != key {
		return ttEntry{}, false
	}
	return entry, true
}

// Lookup returns the entry iff the key matches and the stored depth is
// at least requiredDepth.
func (tt *transTable) Lookup(key uint64, requiredDepth int) (ttEntry, bool) {
	var entry, ok = tt.Read(key)
	if !ok || int(entry.Depth) < requiredDepth {
		return ttEntry{}, false
	}
	return entry, true
}

func (tt *transTable) Update(key uint64, depth, score, bound int, move Move) {
	tt.entries[key&tt.mask] = ttEntry{
		Key:   key,
		Move:  move,
		Score: int32(score),
		Depth: int8(depth),
		Bound: uint8(bound),
	}
}
