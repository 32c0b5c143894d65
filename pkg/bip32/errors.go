package bip32

import (
	"errors"
	"fmt"
)

// Sentinel errors matching the core's error-handling design. Callers
// should prefer errors.Is over string matching.
var (
	// ErrInvalidSeed is returned by NewMasterKey for a seed outside
	// [16,64] bytes, or one whose derived secret is zero or >= n.
	ErrInvalidSeed = errors.New("bip32: invalid seed")

	// ErrInvalidChild wraps InvalidChildError; match with errors.Is.
	ErrInvalidChild = errors.New("bip32: invalid child")

	// ErrDepthOverflow is returned when a derivation would push depth
	// past 255.
	ErrDepthOverflow = errors.New("bip32: depth overflow")

	// ErrVersionMismatch is returned by import when the decoded
	// version prefix doesn't match the expected network.
	ErrVersionMismatch = errors.New("bip32: version mismatch")

	// ErrChecksumFail is returned by import when the Base58Check
	// checksum does not verify.
	ErrChecksumFail = errors.New("bip32: checksum mismatch")

	// ErrBase58Fail is returned by import when the input is not
	// valid Base58.
	ErrBase58Fail = errors.New("bip32: invalid base58 encoding")

	// ErrInvalidKeyMaterial is returned by import when the padding
	// byte, secret range, or public point fails validation.
	ErrInvalidKeyMaterial = errors.New("bip32: invalid key material")
)

// InvalidChildError reports that derivation at a specific index
// produced an out-of-range intermediate or a zero/identity result.
// Per BIP-32 this is recoverable: the caller should retry at i+1.
type InvalidChildError struct {
	Index uint32
}

func (e *InvalidChildError) Error() string {
	return fmt.Sprintf("bip32: invalid child at index %d", e.Index)
}

// Is lets errors.Is(err, ErrInvalidChild) match any InvalidChildError.
func (e *InvalidChildError) Is(target error) bool {
	return target == ErrInvalidChild
}
