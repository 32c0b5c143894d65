// Package address orchestrates the core address-derivation engine
// (pkg/address) and path algebra (pkg/dpath) into a small service
// facade, the way the rest of this codebase's internal/services
// layer wraps its core packages.
package address

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	corebtc "github.com/yourusername/hdkeycore/pkg/address"
	"github.com/yourusername/hdkeycore/pkg/bip32"
	"github.com/yourusername/hdkeycore/pkg/dpath"
	"github.com/yourusername/hdkeycore/pkg/taproot"
)

// AddressService derives Bitcoin-family payment addresses from
// extended public keys.
type AddressService struct {
	net *chaincfg.Params
}

// NewAddressService creates a new address service scoped to Bitcoin
// mainnet.
func NewAddressService() *AddressService {
	return &AddressService{net: &chaincfg.MainNetParams}
}

// NewAddressServiceForNet creates an address service scoped to net
// (e.g. testnet, or one of this package's altcoin params).
func NewAddressServiceForNet(net *chaincfg.Params) *AddressService {
	return &AddressService{net: net}
}

// child resolves the soft-path + index child of xpub that a textual
// path like "0/5" names.
func (s *AddressService) child(xpub *bip32.XPub, path string, index uint32) (*bip32.XPub, error) {
	parsed, err := dpath.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("address: invalid path %q: %w", path, err)
	}
	child, err := corebtc.Child(xpub, parsed.Path, index)
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}
	return child, nil
}

// DeriveAddress returns the P2PKH address at path/index under xpub.
func (s *AddressService) DeriveAddress(xpub *bip32.XPub, path string, index uint32) (string, error) {
	child, err := s.child(xpub, path, index)
	if err != nil {
		return "", err
	}
	addr, err := corebtc.DeriveAddr(child, s.net)
	if err != nil {
		return "", fmt.Errorf("address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// DeriveWitnessAddress returns the native SegWit (P2WPKH) address at
// path/index under xpub.
func (s *AddressService) DeriveWitnessAddress(xpub *bip32.XPub, path string, index uint32) (string, error) {
	child, err := s.child(xpub, path, index)
	if err != nil {
		return "", err
	}
	addr, err := corebtc.DeriveWitnessAddr(child, s.net)
	if err != nil {
		return "", fmt.Errorf("address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// DeriveCompatWitnessAddress returns the P2SH-wrapped SegWit address
// at path/index under xpub.
func (s *AddressService) DeriveCompatWitnessAddress(xpub *bip32.XPub, path string, index uint32) (string, error) {
	child, err := s.child(xpub, path, index)
	if err != nil {
		return "", err
	}
	addr, err := corebtc.DeriveCompatWitnessAddr(child, s.net)
	if err != nil {
		return "", fmt.Errorf("address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// DeriveTaprootAddress returns the key-path-only P2TR (bech32m)
// address at path/index under xpub, alongside the output key's x-only
// coordinate (hex-encoded).
func (s *AddressService) DeriveTaprootAddress(xpub *bip32.XPub, path string, index uint32) (address string, outputKeyHex string, err error) {
	child, err := s.child(xpub, path, index)
	if err != nil {
		return "", "", err
	}
	addr, outputKey, err := corebtc.DeriveTaprootAddr(child, nil, s.net)
	if err != nil {
		return "", "", fmt.Errorf("address: %w", err)
	}
	return addr.EncodeAddress(), hex.EncodeToString(outputKey.X[:]), nil
}

// DeriveTaprootScriptAddress is DeriveTaprootAddress, but tweaks by
// tree's MAST commitment instead of deriving a key-path-only output.
func (s *AddressService) DeriveTaprootScriptAddress(xpub *bip32.XPub, path string, index uint32, tree taproot.Tree) (address string, outputKeyHex string, err error) {
	child, err := s.child(xpub, path, index)
	if err != nil {
		return "", "", err
	}
	addr, outputKey, err := corebtc.DeriveTaprootAddr(child, tree, s.net)
	if err != nil {
		return "", "", fmt.Errorf("address: %w", err)
	}
	return addr.EncodeAddress(), hex.EncodeToString(outputKey.X[:]), nil
}

// DeriveMultisigAddress derives the index-th soft child of every key
// in xpubs, and returns the m-of-n P2SH multisig address alongside
// its redeem script (hex-encoded).
func (s *AddressService) DeriveMultisigAddress(xpubs []*bip32.XPub, m int, index uint32) (address string, redeemScriptHex string, err error) {
	addr, redeemScript, err := corebtc.DeriveMSAddr(xpubs, m, index, s.net)
	if err != nil {
		return "", "", fmt.Errorf("address: %w", err)
	}
	return addr.EncodeAddress(), hex.EncodeToString(redeemScript), nil
}

// NewScan starts a restartable address scan over xpub's children,
// beginning at index i0.
func (s *AddressService) NewScan(xpub *bip32.XPub, i0 uint32) *corebtc.Scan {
	return corebtc.NewScan(xpub, i0)
}

// PublicKeyHash returns RIPEMD160(SHA256(pubkey)), the hash backing
// every P2PKH/P2WPKH address this service derives.
func (s *AddressService) PublicKeyHash(compressedPubKey []byte) []byte {
	return btcutil.Hash160(compressedPubKey)
}
