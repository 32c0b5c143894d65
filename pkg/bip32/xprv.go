package bip32

import (
	"github.com/yourusername/hdkeycore/pkg/primitives"
)

// HardenedOffset is the index at and above which derivation is
// hardened (2^31).
const HardenedOffset uint32 = 0x80000000

// XPrv is an extended private key: a 32-byte secret scalar plus the
// chain code and tree-position metadata needed to derive children and
// to reproduce its parent's fingerprint. Values are immutable; every
// derivation returns a fresh XPrv.
type XPrv struct {
	Depth     uint8
	ParentFP  [4]byte
	Index     uint32
	ChainCode [32]byte
	Secret    [32]byte
}

// IsHardened reports whether this key's index denotes hardened
// derivation from its parent (always false for the master key, whose
// Index is 0).
func (x *XPrv) IsHardened() bool {
	return x.Index >= HardenedOffset
}

// Neuter derives the corresponding extended public key, preserving
// depth, parent fingerprint, and index (§3: "deriveXPub preserves all
// four non-key fields").
func (x *XPrv) Neuter() (*XPub, error) {
	pub, err := primitives.GeneratePublic(x.Secret[:])
	if err != nil {
		return nil, err
	}
	return &XPub{
		Depth:     x.Depth,
		ParentFP:  x.ParentFP,
		Index:     x.Index,
		ChainCode: x.ChainCode,
		Point:     primitives.SerializeCompressed(pub),
	}, nil
}

// Identifier returns RIPEMD160(SHA256(compressed pubkey)), computed
// via this key's neutered public counterpart.
func (x *XPrv) Identifier() ([20]byte, error) {
	pub, err := x.Neuter()
	if err != nil {
		return [20]byte{}, err
	}
	return pub.Identifier(), nil
}

// Fingerprint returns the first four bytes of Identifier.
func (x *XPrv) Fingerprint() ([4]byte, error) {
	var fp [4]byte
	id, err := x.Identifier()
	if err != nil {
		return fp, err
	}
	copy(fp[:], id[:4])
	return fp, nil
}

// Equal reports field-wise equality; useful for round-trip tests.
func (x *XPrv) Equal(other *XPrv) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.Depth == other.Depth &&
		x.ParentFP == other.ParentFP &&
		x.Index == other.Index &&
		x.ChainCode == other.ChainCode &&
		x.Secret == other.Secret
}
