package taproot

import (
	"bytes"
	"fmt"
)

// nodeSize is the byte width of one Merkle proof step.
const nodeSize = 32

// baseSize is the fixed portion of a control block: the leaf-version
// /parity byte plus the 32-byte internal key.
const baseSize = 1 + 32

// maxSize bounds a control block to the deepest possible tapscript
// tree (128 levels, BIP-341).
const maxSize = baseSize + nodeSize*128

// ControlBlock authorizes a script-path spend of a single leaf: the
// leaf version and the parity of the output key's Y coordinate packed
// into one byte, the internal key, and the Merkle inclusion proof.
type ControlBlock struct {
	LeafVersion     byte
	InternalKeyX    [32]byte
	OutputKeyParity bool
	Proof           [][32]byte
}

// ToBytes serializes the control block as
// (leaf_version|parity) ‖ internal_key_x ‖ proof_1 ‖ … ‖ proof_m.
func (c ControlBlock) ToBytes() []byte {
	var buf bytes.Buffer
	parityBit := byte(0)
	if c.OutputKeyParity {
		parityBit = 1
	}
	buf.WriteByte(c.LeafVersion | parityBit)
	buf.Write(c.InternalKeyX[:])
	for _, h := range c.Proof {
		buf.Write(h[:])
	}
	return buf.Bytes()
}

// ParseControlBlock parses a control block's raw bytes, rejecting
// anything under-sized, over-sized, or not a whole number of 32-byte
// proof steps past the base.
func ParseControlBlock(raw []byte) (ControlBlock, error) {
	switch {
	case len(raw) < baseSize:
		return ControlBlock{}, fmt.Errorf("taproot: control block too small: %d bytes", len(raw))
	case len(raw) > maxSize:
		return ControlBlock{}, fmt.Errorf("taproot: control block too large: %d bytes", len(raw))
	case (len(raw)-baseSize)%nodeSize != 0:
		return ControlBlock{}, fmt.Errorf("taproot: control block proof is not a multiple of %d bytes", nodeSize)
	}

	var cb ControlBlock
	cb.LeafVersion = raw[0] &^ 0x01
	cb.OutputKeyParity = raw[0]&0x01 == 0x01
	copy(cb.InternalKeyX[:], raw[1:33])

	proofBytes := raw[33:]
	numNodes := len(proofBytes) / nodeSize
	cb.Proof = make([][32]byte, numNodes)
	for i := 0; i < numNodes; i++ {
		copy(cb.Proof[i][:], proofBytes[i*nodeSize:(i+1)*nodeSize])
	}
	return cb, nil
}

// RootHash reconstructs the Merkle root by folding the control
// block's proof onto revealedScript's leaf hash, sorting each pair
// lexicographically before hashing.
func (c ControlBlock) RootHash(revealedScript []byte) [32]byte {
	acc := Leaf{Version: c.LeafVersion, Script: revealedScript}.Hash()
	for _, sibling := range c.Proof {
		acc = branchHash(acc[:], sibling[:])
	}
	return acc
}

// ToControlBlock maps a leaf's precomputed inclusion proof to a
// spendable control block for internalKeyX / outputKeyParity.
func (p LeafProof) ToControlBlock(internalKeyX [32]byte, outputKeyParity bool) ControlBlock {
	return ControlBlock{
		LeafVersion:     p.Leaf.Version,
		InternalKeyX:    internalKeyX,
		OutputKeyParity: outputKeyParity,
		Proof:           p.Proof,
	}
}
