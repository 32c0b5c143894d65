package bip32

import (
	"encoding/binary"
	"fmt"

	"github.com/yourusername/hdkeycore/pkg/primitives"
)

// DeriveSoft computes the non-hardened private child at index i
// (0 <= i < 2^31): k' = IL + k mod n, c' = IR, where
// I = HMAC-SHA512(c, serP(K) || ser32(i)).
//
// Per BIP-32's failure policy, an out-of-range IL or a zero child
// secret surfaces as *InvalidChildError; the caller should retry at
// i+1 (see IndexCycle).
func (x *XPrv) DeriveSoft(index uint32) (*XPrv, error) {
	if index >= HardenedOffset {
		return nil, fmt.Errorf("bip32: soft index must be < 2^31, got %d", index)
	}
	pub, err := primitives.GeneratePublic(x.Secret[:])
	if err != nil {
		return nil, err
	}

	msg := childMessageSoft(pub.SerializeCompressed(), index)
	return x.deriveChild(index, msg)
}

// DeriveHard computes the hardened private child at raw index i
// (caller passes the already-offset value, i.e. >= 2^31):
// I = HMAC-SHA512(c, 0x00 || ser256(k) || ser32(i)), k' = IL + k mod n,
// c' = IR.
func (x *XPrv) DeriveHard(index uint32) (*XPrv, error) {
	if index < HardenedOffset {
		return nil, fmt.Errorf("bip32: hard index must be >= 2^31, got %d", index)
	}

	msg := childMessageHard(x.Secret, index)
	return x.deriveChild(index, msg)
}

// deriveChild runs the shared HMAC/tweak/metadata plumbing for both
// soft and hard private derivation.
func (x *XPrv) deriveChild(index uint32, msg [37]byte) (*XPrv, error) {
	if x.Depth == 0xff {
		return nil, ErrDepthOverflow
	}

	i := primitives.HMACSHA512(x.ChainCode[:], msg[:])
	il, ir := i[:32], i[32:]

	secret, err := primitives.TweakAddSecret(x.Secret[:], il)
	if err != nil {
		return nil, &InvalidChildError{Index: index}
	}

	parentFP, err := x.Fingerprint()
	if err != nil {
		return nil, err
	}

	var child XPrv
	child.Depth = x.Depth + 1
	child.ParentFP = parentFP
	child.Index = index
	copy(child.ChainCode[:], ir)
	child.Secret = secret
	return &child, nil
}

// DeriveSoft computes the non-hardened public child at index i
// (0 <= i < 2^31): P' = IL*G + P, c' = IR, where
// I = HMAC-SHA512(c, serP(P) || ser32(i)).
//
// Soft derivation is the only child operation available on a bare
// XPub: hardened children require the private key (§8
// "Hard non-derivability").
func (x *XPub) DeriveSoft(index uint32) (*XPub, error) {
	if index >= HardenedOffset {
		return nil, fmt.Errorf("bip32: soft index must be < 2^31, got %d", index)
	}
	if x.Depth == 0xff {
		return nil, ErrDepthOverflow
	}

	msg := childMessageSoft(x.Point[:], index)
	i := primitives.HMACSHA512(x.ChainCode[:], msg[:])
	il, ir := i[:32], i[32:]

	point, err := primitives.ParseCompressed(x.Point[:])
	if err != nil {
		return nil, err
	}
	childPoint, err := primitives.TweakAddPublic(point, il)
	if err != nil {
		return nil, &InvalidChildError{Index: index}
	}

	var child XPub
	child.Depth = x.Depth + 1
	child.ParentFP = x.Fingerprint()
	child.Index = index
	copy(child.ChainCode[:], ir)
	child.Point = primitives.SerializeCompressed(childPoint)
	return &child, nil
}

// childMessageSoft builds serP(point) || ser32(index), the 37-byte
// HMAC message for non-hardened derivation.
func childMessageSoft(compressedPoint []byte, index uint32) [37]byte {
	var msg [37]byte
	copy(msg[:33], compressedPoint)
	binary.BigEndian.PutUint32(msg[33:], index)
	return msg
}

// childMessageHard builds 0x00 || ser256(secret) || ser32(index), the
// 37-byte HMAC message for hardened derivation.
func childMessageHard(secret [32]byte, index uint32) [37]byte {
	var msg [37]byte
	copy(msg[1:33], secret[:])
	binary.BigEndian.PutUint32(msg[33:], index)
	return msg
}
