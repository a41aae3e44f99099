package fixpoint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Node tags fed into the structural hash. Values are part of the
// fingerprint, so existing tags must never be renumbered.
const (
	tagLiteral byte = iota + 1
	tagParamConst
	tagParamVar
	tagParamAdd
	tagParamSub
	tagParamMul
	tagCellRef
	tagAdd
	tagSub
	tagMul
	tagDiv
	tagCeil
	tagFloor
	tagCall
	tagNextLayer
)

// Fingerprint returns the structural hash of an expression tree. Two
// trees built from the same constructors over the same operands share a
// fingerprint, regardless of when or where they were built. The engine
// uses fingerprints as memo-table keys for constant subtrees; callers may
// use them to de-duplicate trees.
func Fingerprint[T Real](e Expr[T]) uint64 {
	return e.fingerprint()
}

// hashNode folds a node tag and the fingerprints (or raw bit patterns) of
// its operands into a single 64-bit structural hash.
func hashNode(tag byte, words ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	buf[0] = tag
	_, _ = d.Write(buf[:1])
	for _, w := range words {
		binary.BigEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
