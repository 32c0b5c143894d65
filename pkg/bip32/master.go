package bip32

import (
	"fmt"

	"github.com/yourusername/hdkeycore/pkg/primitives"
)

// masterHMACKey is the fixed HMAC key BIP-32 mandates for master-key
// generation.
const masterHMACKey = "Bitcoin seed"

const (
	minSeedBytes = 16
	maxSeedBytes = 64
)

// NewMasterKey derives the root XPrv from a seed of 16 to 64 bytes.
// It computes I = HMAC-SHA512("Bitcoin seed", seed), splits it into
// IL (the secret) and IR (the chain code), and fails with
// ErrInvalidSeed if IL is zero or not reduced mod the curve order.
func NewMasterKey(seed []byte) (*XPrv, error) {
	if len(seed) < minSeedBytes || len(seed) > maxSeedBytes {
		return nil, fmt.Errorf("%w: seed must be %d-%d bytes, got %d",
			ErrInvalidSeed, minSeedBytes, maxSeedBytes, len(seed))
	}

	i := primitives.HMACSHA512([]byte(masterHMACKey), seed)
	il, ir := i[:32], i[32:]

	if _, err := primitives.ScalarFromSecret(il); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	var xprv XPrv
	copy(xprv.ChainCode[:], ir)
	copy(xprv.Secret[:], il)
	return &xprv, nil
}
