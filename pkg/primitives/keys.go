// Package primitives adapts the external secp256k1 group arithmetic and
// hashing primitives the core derivation and Taproot engines build on.
// Everything here is a thin wrapper: no key-tree semantics, no path
// algebra, no serialization layout. Higher packages (bip32, taproot)
// are the ones that give these operations meaning.
package primitives

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// ErrInvalidKeyMaterial is returned when a secret or point is out of
// range, zero, the identity, or not on curve.
var ErrInvalidKeyMaterial = errors.New("primitives: invalid key material")

// CompressedLen is the byte length of a compressed secp256k1 point.
const CompressedLen = 33

// ScalarFromSecret parses a 32-byte big-endian secret into a curve
// scalar. It fails if the value is zero or not reduced mod the group
// order n.
func ScalarFromSecret(secret []byte) (btcec.ModNScalar, error) {
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(secret)
	if overflow {
		return s, fmt.Errorf("%w: secret >= group order", ErrInvalidKeyMaterial)
	}
	if s.IsZero() {
		return s, fmt.Errorf("%w: secret is zero", ErrInvalidKeyMaterial)
	}
	return s, nil
}

// SecretBytes serializes a scalar back to its 32-byte big-endian form.
func SecretBytes(s *btcec.ModNScalar) [32]byte {
	return *s.Bytes()
}

// GeneratePublic computes secret*G and returns it as a public key.
func GeneratePublic(secret []byte) (*btcec.PublicKey, error) {
	s, err := ScalarFromSecret(secret)
	if err != nil {
		return nil, err
	}
	var p btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&s, &p)
	if p.Z.IsZero() {
		return nil, fmt.Errorf("%w: public point is the identity", ErrInvalidKeyMaterial)
	}
	p.ToAffine()
	return btcec.NewPublicKey(&p.X, &p.Y), nil
}

// TweakAddSecret returns (secret + tweak) mod n as a fresh 32-byte
// secret. It fails if the tweak overflows the group order or the
// result is zero, per BIP-32's child-key failure policy.
func TweakAddSecret(secret []byte, tweak []byte) ([32]byte, error) {
	var zero [32]byte
	k, err := ScalarFromSecret(secret)
	if err != nil {
		return zero, err
	}
	var t btcec.ModNScalar
	overflow := t.SetByteSlice(tweak)
	if overflow {
		return zero, fmt.Errorf("%w: tweak >= group order", ErrInvalidKeyMaterial)
	}
	t.Add(&k)
	if t.IsZero() {
		return zero, fmt.Errorf("%w: tweaked secret is zero", ErrInvalidKeyMaterial)
	}
	return SecretBytes(&t), nil
}

// TweakAddPublic returns point + tweak*G. It fails if the tweak
// overflows the group order or the result is the point at infinity.
func TweakAddPublic(point *btcec.PublicKey, tweak []byte) (*btcec.PublicKey, error) {
	var t btcec.ModNScalar
	overflow := t.SetByteSlice(tweak)
	if overflow {
		return nil, fmt.Errorf("%w: tweak >= group order", ErrInvalidKeyMaterial)
	}

	var tweakPoint, parentPoint, sum btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&t, &tweakPoint)
	point.AsJacobian(&parentPoint)
	btcec.AddNonConst(&tweakPoint, &parentPoint, &sum)
	if sum.Z.IsZero() {
		return nil, fmt.Errorf("%w: tweaked point is the identity", ErrInvalidKeyMaterial)
	}
	sum.ToAffine()
	return btcec.NewPublicKey(&sum.X, &sum.Y), nil
}

// NegateSecret returns (n - secret) mod n, the additive inverse used
// by BIP-341 to normalize a secret key to an even-Y public key before
// tweaking.
func NegateSecret(secret []byte) ([32]byte, error) {
	s, err := ScalarFromSecret(secret)
	if err != nil {
		return [32]byte{}, err
	}
	s.Negate()
	return SecretBytes(&s), nil
}

// SerializeCompressed returns the fixed 33-byte compressed encoding of
// a public point.
func SerializeCompressed(point *btcec.PublicKey) [CompressedLen]byte {
	var out [CompressedLen]byte
	copy(out[:], point.SerializeCompressed())
	return out
}

// ParseCompressed parses a 33-byte compressed point, rejecting
// anything not on the curve or equal to the identity.
func ParseCompressed(b []byte) (*btcec.PublicKey, error) {
	pt, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	return pt, nil
}

// XOnly projects a point onto its X-only (BIP-340) representation,
// reporting whether the affine Y coordinate is odd.
func XOnly(point *btcec.PublicKey) (x [32]byte, parityOdd bool) {
	copy(x[:], schnorr.SerializePubKey(point))
	parityOdd = point.SerializeCompressed()[0] == secp256k1CompressedOdd
	return x, parityOdd
}

// LiftX recovers the even-Y point for a 32-byte X-only coordinate, as
// BIP-340's lift_x(x).
func LiftX(x []byte) (*btcec.PublicKey, error) {
	pt, err := schnorr.ParsePubKey(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	return pt, nil
}

const secp256k1CompressedOdd = 0x03
