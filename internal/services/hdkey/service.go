package hdkey

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/yourusername/hdkeycore/pkg/bip32"
	"github.com/yourusername/hdkeycore/pkg/dpath"
)

// HDKeyService handles BIP-32 hierarchical deterministic key
// derivation, path application, and extended-key import/export.
type HDKeyService struct {
	params *chaincfg.Params
}

// NewHDKeyService creates a new HD key service.
// Uses Bitcoin mainnet parameters by default.
func NewHDKeyService() *HDKeyService {
	return &HDKeyService{
		params: &chaincfg.MainNetParams,
	}
}

// NewHDKeyServiceForNet creates an HD key service scoped to net, for
// testnet/regtest callers.
func NewHDKeyServiceForNet(net *chaincfg.Params) *HDKeyService {
	return &HDKeyService{params: net}
}

// NewMasterKey creates a master extended key from a BIP-39 seed.
// Seed must be between 16 and 64 bytes (128-512 bits).
func (s *HDKeyService) NewMasterKey(seed []byte) (*bip32.XPrv, error) {
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("hdkey: %w", err)
	}
	return master, nil
}

// DerivePath derives a child private key following a textual path
// ("m/44'/0'/0'/0/0"; a leading "M" projects the result to an XPub
// instead, see DerivePathResult).
func (s *HDKeyService) DerivePath(key *bip32.XPrv, path string) (*bip32.XPrv, error) {
	result, err := s.DerivePathResult(key, path)
	if err != nil {
		return nil, err
	}
	if result.Prv == nil {
		return nil, fmt.Errorf("hdkey: path %q projects to a public key; use DerivePathResult", path)
	}
	return result.Prv, nil
}

// DerivePathResult derives along a textual path, returning whichever
// of XPrv/XPub the path's leading marker selects.
func (s *HDKeyService) DerivePathResult(key *bip32.XPrv, path string) (dpath.Result, error) {
	parsed, err := dpath.Parse(path)
	if err != nil {
		return dpath.Result{}, fmt.Errorf("hdkey: invalid path %q: %w", path, err)
	}
	result, err := dpath.ApplyToXPrv(parsed, key)
	if err != nil {
		return dpath.Result{}, fmt.Errorf("hdkey: deriving %q: %w", path, err)
	}
	return result, nil
}

// GetPublicKey extracts the compressed public key (33 bytes) from an
// extended private key.
func (s *HDKeyService) GetPublicKey(key *bip32.XPrv) ([]byte, error) {
	pub, err := key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("hdkey: %w", err)
	}
	return pub.Point[:], nil
}

// GetPrivateKey extracts the raw 32-byte secret from an extended
// private key. WARNING: callers must handle and clear this securely.
func (s *HDKeyService) GetPrivateKey(key *bip32.XPrv) ([]byte, error) {
	secret := key.Secret
	return secret[:], nil
}

// GetExtendedPublicKey returns the extended public key (xpub) as a
// Base58Check string, under this service's network.
func (s *HDKeyService) GetExtendedPublicKey(key *bip32.XPrv) (string, error) {
	pub, err := key.Neuter()
	if err != nil {
		return "", fmt.Errorf("hdkey: %w", err)
	}
	return pub.Export(s.params), nil
}

// GetExtendedPrivateKey returns the extended private key (xprv) as a
// Base58Check string. WARNING: xprv exposes private key material.
func (s *HDKeyService) GetExtendedPrivateKey(key *bip32.XPrv) (string, error) {
	return key.Export(s.params), nil
}

// ImportExtendedPrivateKey decodes a Base58Check xprv string under
// this service's network.
func (s *HDKeyService) ImportExtendedPrivateKey(encoded string) (*bip32.XPrv, error) {
	key, err := bip32.ImportXPrv(s.params, encoded)
	if err != nil {
		return nil, fmt.Errorf("hdkey: %w", err)
	}
	return key, nil
}

// ImportExtendedPublicKey decodes a Base58Check xpub string under
// this service's network.
func (s *HDKeyService) ImportExtendedPublicKey(encoded string) (*bip32.XPub, error) {
	key, err := bip32.ImportXPub(s.params, encoded)
	if err != nil {
		return nil, fmt.Errorf("hdkey: %w", err)
	}
	return key, nil
}

// GetWIF returns the extended private key's inner secret in Wallet
// Import Format.
func (s *HDKeyService) GetWIF(key *bip32.XPrv) (string, error) {
	wif, err := key.WIF(s.params)
	if err != nil {
		return "", fmt.Errorf("hdkey: %w", err)
	}
	return wif, nil
}
