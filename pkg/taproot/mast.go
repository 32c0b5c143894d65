// Package taproot builds BIP-341 Taproot output keys from an internal
// key and a Merkle Abstract Syntax Tree (MAST) of tapscripts, and
// verifies script-path spends against control blocks.
package taproot

import (
	"bytes"

	"github.com/btcsuite/btcd/wire"

	"github.com/yourusername/hdkeycore/pkg/primitives"
)

// BaseLeafVersion is the initial tapscript leaf version (BIP-342).
const BaseLeafVersion byte = 0xc0

// Tree is a node of a MAST: a tapscript leaf, an internal branch, or
// an explicit precomputed commitment (used when the caller already
// knows the root hash and has no leaf structure to walk).
type Tree interface {
	// Hash returns this node's 32-byte tagged commitment.
	Hash() [32]byte
}

// Leaf is a tapscript leaf: a script tagged with its leaf version.
type Leaf struct {
	Version byte
	Script  []byte
}

// Hash computes H_TapLeaf(version || compact_size(len(script)) || script).
func (l Leaf) Hash() [32]byte {
	var buf bytes.Buffer
	buf.WriteByte(l.Version)
	_ = wire.WriteVarBytes(&buf, 0, l.Script)
	return primitives.TaggedHash(primitives.TagTapLeaf, buf.Bytes())
}

// Branch is an internal MAST node joining two children.
type Branch struct {
	Left, Right Tree
}

// Hash computes H_TapBranch(min ‖ max) over the children's hashes,
// sorted lexicographically.
func (b Branch) Hash() [32]byte {
	l, r := b.Left.Hash(), b.Right.Hash()
	return branchHash(l[:], r[:])
}

// Commitment is an explicit 32-byte MAST root, for callers that
// already hold the commitment and have no leaf structure.
type Commitment [32]byte

// Hash returns the commitment unchanged.
func (c Commitment) Hash() [32]byte {
	return [32]byte(c)
}

// MASTCommitment is the MASTCommitment(h) constructor named in the
// spec's tree algebra.
func MASTCommitment(h [32]byte) Tree {
	return Commitment(h)
}

// mastCommitment returns the 32-byte root of tree, or the empty
// (all-zero) value with ok=false if tree is nil (no script path).
func mastCommitment(tree Tree) (root [32]byte, ok bool) {
	if tree == nil {
		return root, false
	}
	return tree.Hash(), true
}

func branchHash(l, r []byte) [32]byte {
	if bytes.Compare(l, r) > 0 {
		l, r = r, l
	}
	return primitives.TaggedHash(primitives.TagTapBranch, l, r)
}
