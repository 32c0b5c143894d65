package bip32

import (
	"github.com/yourusername/hdkeycore/pkg/primitives"
)

// XPub is an extended public key: a compressed secp256k1 point plus
// the same chain-code and tree-position metadata as its private
// counterpart. Values are immutable.
type XPub struct {
	Depth     uint8
	ParentFP  [4]byte
	Index     uint32
	ChainCode [32]byte
	Point     [primitives.CompressedLen]byte
}

// IsHardened reports whether this key's index denotes hardened
// derivation from its parent.
func (x *XPub) IsHardened() bool {
	return x.Index >= HardenedOffset
}

// Identifier returns RIPEMD160(SHA256(compressed pubkey)).
func (x *XPub) Identifier() [20]byte {
	return primitives.Hash160(x.Point[:])
}

// Fingerprint returns the first four bytes of Identifier.
func (x *XPub) Fingerprint() [4]byte {
	var fp [4]byte
	id := x.Identifier()
	copy(fp[:], id[:4])
	return fp
}

// Equal reports field-wise equality; useful for round-trip tests.
func (x *XPub) Equal(other *XPub) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.Depth == other.Depth &&
		x.ParentFP == other.ParentFP &&
		x.Index == other.Index &&
		x.ChainCode == other.ChainCode &&
		x.Point == other.Point
}
