package taproot

import (
	"fmt"

	"github.com/yourusername/hdkeycore/pkg/primitives"
)

// ErrInvalidTweak is returned when the computed tap tweak scalar is
// out of range or produces the identity point (negligible probability).
var ErrInvalidTweak = fmt.Errorf("taproot: invalid tweak")

// OutputKey is the result of tweaking an internal key by a MAST
// commitment: the resulting key's X-only coordinate and whether its
// full point has odd Y.
type OutputKey struct {
	X         [32]byte
	ParityOdd bool
}

// ComputeOutputKey computes t = H_TapTweak(x(internalKey) ‖ merkleRoot),
// Q = lift_x(internalKey) + t·G, and returns x(Q) and Q's Y-parity.
// merkleRoot may be nil/empty for a key-path-only (script-less) output.
func ComputeOutputKey(internalKeyX [32]byte, merkleRoot []byte) (OutputKey, error) {
	internal, err := primitives.LiftX(internalKeyX[:])
	if err != nil {
		return OutputKey{}, fmt.Errorf("taproot: %w", err)
	}

	tweak := primitives.TaggedHash(primitives.TagTapTweak, internalKeyX[:], merkleRoot)

	tweaked, err := primitives.TweakAddPublic(internal, tweak[:])
	if err != nil {
		return OutputKey{}, fmt.Errorf("%w: %v", ErrInvalidTweak, err)
	}

	x, parityOdd := primitives.XOnly(tweaked)
	return OutputKey{X: x, ParityOdd: parityOdd}, nil
}

// ComputeOutputKeyFromTree is ComputeOutputKey over a MAST, or over no
// tree at all (key-path-only output) when tree is nil.
func ComputeOutputKeyFromTree(internalKeyX [32]byte, tree Tree) (OutputKey, error) {
	root, ok := mastCommitment(tree)
	if !ok {
		return ComputeOutputKey(internalKeyX, nil)
	}
	return ComputeOutputKey(internalKeyX, root[:])
}

// TweakSecret computes the output-key's corresponding private scalar
// given the internal key's secret, negating it first if the internal
// public key's Y coordinate is odd (BIP-341's even-Y normalization for
// signing), then adding the same tap tweak.
func TweakSecret(internalSecret []byte, internalKeyX [32]byte, internalParityOdd bool, merkleRoot []byte) ([32]byte, error) {
	secret := internalSecret
	if internalParityOdd {
		negated, err := primitives.NegateSecret(secret)
		if err != nil {
			return [32]byte{}, err
		}
		secret = negated[:]
	}

	tweak := primitives.TaggedHash(primitives.TagTapTweak, internalKeyX[:], merkleRoot)
	out, err := primitives.TweakAddSecret(secret, tweak[:])
	if err != nil {
		return [32]byte{}, fmt.Errorf("%w: %v", ErrInvalidTweak, err)
	}
	return out, nil
}
