package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HMACSHA512 computes HMAC-SHA-512(key, msg), used both for master-key
// generation (key = "Bitcoin seed") and every child derivation step
// (key = parent chain code).
func HMACSHA512(key, msg []byte) [64]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	var out [64]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// SHA256 computes a single SHA-256 digest.
func SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// Hash160 computes RIPEMD160(SHA256(b)), the BIP-32 identifier
// function and the address-layer pubkey-hash function.
func Hash160(b []byte) [20]byte {
	var out [20]byte
	copy(out[:], btcutil.Hash160(b))
	return out
}

// TaggedHash computes BIP-340's tagged hash,
// SHA256(SHA256(tag) || SHA256(tag) || msg...), used throughout
// Taproot (TapLeaf, TapBranch, TapTweak).
func TaggedHash(tag []byte, msgs ...[]byte) [32]byte {
	return *chainhash.TaggedHash(tag, msgs...)
}

// Taproot tag constants, re-exported from chainhash so callers never
// need to import it directly just to name a tag.
var (
	TagTapLeaf   = chainhash.TagTapLeaf
	TagTapBranch = chainhash.TagTapBranch
	TagTapTweak  = chainhash.TagTapTweak
)

// DoubleSHA256 computes SHA256(SHA256(b)), used as the Base58Check
// checksum function.
func DoubleSHA256(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], chainhash.DoubleHashB(b))
	return out
}
