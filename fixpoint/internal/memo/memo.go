// Package memo provides a bounded memo table with whole-generation
// eviction. Entries are written into a head generation; when the head
// fills up, the tail generation is dropped and the two rotate. Lookups
// consult the head first, then the tail, so a hot entry survives a
// rotation as soon as it is re-stored.
//
// The table is not safe for concurrent use: its one consumer evaluates on
// a single goroutine.
package memo

type Table[V any] struct {
	gens    [2]map[uint64]V
	headIdx int
	maxSize int
}

func NewTable[V any](maxSize int) *Table[V] {
	if maxSize <= 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[V]{
		gens:    [2]map[uint64]V{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Table[V]) Load(key uint64) (V, bool) {
	if v, ok := t.gens[t.headIdx][key]; ok {
		return v, true
	}
	v, ok := t.gens[1-t.headIdx][key]
	if !ok {
		var zero V
		return zero, false
	}
	return v, true
}

func (t *Table[V]) Store(key uint64, value V) {
	if len(t.gens[t.headIdx]) >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.gens[t.headIdx] = make(map[uint64]V, t.maxSize)
	}
	t.gens[t.headIdx][key] = value
}

// Len reports the number of live entries across both generations. Keys
// present in both count once.
func (t *Table[V]) Len() int {
	n := len(t.gens[t.headIdx])
	for k := range t.gens[1-t.headIdx] {
		if _, ok := t.gens[t.headIdx][k]; !ok {
			n++
		}
	}
	return n
}
