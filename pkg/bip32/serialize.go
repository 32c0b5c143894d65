package bip32

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/yourusername/hdkeycore/pkg/primitives"
)

// serializedLen is the fixed BIP-32 extended-key payload size:
// version(4) || depth(1) || parent_fp(4) || index(4) || chain_code(32) || key_material(33).
const serializedLen = 4 + 1 + 4 + 4 + 32 + 33

const checksumLen = 4

// Serialize encodes x under net's private-key version prefix,
// producing the 78-byte BIP-32 payload (without Base58Check framing).
func (x *XPrv) Serialize(net *chaincfg.Params) [serializedLen]byte {
	var out [serializedLen]byte
	b := out[:0]
	b = append(b, net.HDPrivateKeyID[:]...)
	b = append(b, x.Depth)
	b = append(b, x.ParentFP[:]...)
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], x.Index)
	b = append(b, idx[:]...)
	b = append(b, x.ChainCode[:]...)
	b = append(b, 0x00)
	b = append(b, x.Secret[:]...)
	copy(out[:], b)
	return out
}

// Serialize encodes x under net's public-key version prefix, producing
// the 78-byte BIP-32 payload (without Base58Check framing).
func (x *XPub) Serialize(net *chaincfg.Params) [serializedLen]byte {
	var out [serializedLen]byte
	b := out[:0]
	b = append(b, net.HDPublicKeyID[:]...)
	b = append(b, x.Depth)
	b = append(b, x.ParentFP[:]...)
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], x.Index)
	b = append(b, idx[:]...)
	b = append(b, x.ChainCode[:]...)
	b = append(b, x.Point[:]...)
	copy(out[:], b)
	return out
}

// Export Base58Check-encodes the serialized payload: the BIP-32
// version prefix lives inside the 78-byte payload itself, so the
// checksum is appended over the whole payload and the result is
// plain-alphabet Base58-encoded (not the single prepended-version-byte
// form base58.CheckEncode implements) — the same approach btcsuite's
// own hdkeychain and the bnb-chain/tss-lib CKD reference take.
func (x *XPrv) Export(net *chaincfg.Params) string {
	payload := x.Serialize(net)
	return encodeBase58Check(payload[:])
}

// Export Base58Check-encodes the serialized payload for an XPub.
func (x *XPub) Export(net *chaincfg.Params) string {
	payload := x.Serialize(net)
	return encodeBase58Check(payload[:])
}

func encodeBase58Check(payload []byte) string {
	sum := primitives.DoubleSHA256(payload)
	full := make([]byte, 0, len(payload)+checksumLen)
	full = append(full, payload...)
	full = append(full, sum[:checksumLen]...)
	return base58.Encode(full)
}

// ImportXPrv decodes a Base58Check-encoded extended private key,
// verifying the checksum and net's private-key version prefix.
func ImportXPrv(net *chaincfg.Params, s string) (*XPrv, error) {
	payload, err := decodeBase58Check(s)
	if err != nil {
		return nil, err
	}

	var version [4]byte
	copy(version[:], payload[:4])
	if version != net.HDPrivateKeyID {
		return nil, fmt.Errorf("%w: got %x, want %x", ErrVersionMismatch, version, net.HDPrivateKeyID)
	}

	keyMaterial := payload[45:78]
	if keyMaterial[0] != 0x00 {
		return nil, fmt.Errorf("%w: private key padding byte must be 0x00", ErrInvalidKeyMaterial)
	}
	secret := keyMaterial[1:]
	if _, err := primitives.ScalarFromSecret(secret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	var x XPrv
	x.Depth = payload[4]
	copy(x.ParentFP[:], payload[5:9])
	x.Index = binary.BigEndian.Uint32(payload[9:13])
	copy(x.ChainCode[:], payload[13:45])
	copy(x.Secret[:], secret)
	return &x, nil
}

// ImportXPub decodes a Base58Check-encoded extended public key,
// verifying the checksum, net's public-key version prefix, and that
// the encoded point is on-curve and not the identity.
func ImportXPub(net *chaincfg.Params, s string) (*XPub, error) {
	payload, err := decodeBase58Check(s)
	if err != nil {
		return nil, err
	}

	var version [4]byte
	copy(version[:], payload[:4])
	if version != net.HDPublicKeyID {
		return nil, fmt.Errorf("%w: got %x, want %x", ErrVersionMismatch, version, net.HDPublicKeyID)
	}

	keyMaterial := payload[45:78]
	if _, err := primitives.ParseCompressed(keyMaterial); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	var x XPub
	x.Depth = payload[4]
	copy(x.ParentFP[:], payload[5:9])
	x.Index = binary.BigEndian.Uint32(payload[9:13])
	copy(x.ChainCode[:], payload[13:45])
	copy(x.Point[:], keyMaterial)
	return &x, nil
}

func decodeBase58Check(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return nil, ErrBase58Fail
	}
	if len(decoded) != serializedLen+checksumLen {
		return nil, fmt.Errorf("%w: decoded length %d, want %d", ErrBase58Fail, len(decoded), serializedLen+checksumLen)
	}

	payload := decoded[:serializedLen]
	checksum := decoded[serializedLen:]
	sum := primitives.DoubleSHA256(payload)
	if !bytes.Equal(checksum, sum[:checksumLen]) {
		return nil, ErrChecksumFail
	}
	return payload, nil
}

// WIF exports the inner secret in Wallet Import Format (compressed),
// via the network collaborator's WIF encoder.
func (x *XPrv) WIF(net *chaincfg.Params) (string, error) {
	priv, _ := btcec.PrivKeyFromBytes(x.Secret[:])
	wif, err := btcutil.NewWIF(priv, net, true)
	if err != nil {
		return "", fmt.Errorf("bip32: wif export: %w", err)
	}
	return wif.String(), nil
}
