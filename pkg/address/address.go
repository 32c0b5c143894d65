// Package address maps extended public keys to Bitcoin-family payment
// addresses: P2PKH, P2WPKH, P2SH-wrapped P2WPKH, P2SH multisig, and P2TR
// (Taproot).
package address

import (
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/yourusername/hdkeycore/pkg/bip32"
	"github.com/yourusername/hdkeycore/pkg/dpath"
	"github.com/yourusername/hdkeycore/pkg/taproot"
)

// ErrNoKeys is returned by DeriveMSAddr when given an empty key set.
var ErrNoKeys = errors.New("address: at least one key is required")

// Child derives the grandchild of xpub reached by soft-walking path
// and then the final soft index — the "soft-path + index" input every
// derivation function in this package takes.
func Child(xpub *bip32.XPub, path dpath.Path, index uint32) (*bip32.XPub, error) {
	soft, err := path.ToSoft()
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}
	cur := xpub
	for _, s := range soft.Segments() {
		cur, err = cur.DeriveSoft(s.Index)
		if err != nil {
			return nil, err
		}
	}
	return cur.DeriveSoft(index)
}

// DeriveAddr returns the P2PKH address of child's compressed point.
func DeriveAddr(child *bip32.XPub, net *chaincfg.Params) (btcutil.Address, error) {
	hash := btcutil.Hash160(child.Point[:])
	return btcutil.NewAddressPubKeyHash(hash, net)
}

// DeriveWitnessAddr returns the native SegWit (P2WPKH) address of
// child's compressed point.
func DeriveWitnessAddr(child *bip32.XPub, net *chaincfg.Params) (*btcutil.AddressWitnessPubKeyHash, error) {
	hash := btcutil.Hash160(child.Point[:])
	return btcutil.NewAddressWitnessPubKeyHash(hash, net)
}

// DeriveCompatWitnessAddr wraps child's P2WPKH witness program in a
// P2SH address, for wallets that need a legacy-looking address for a
// SegWit key.
func DeriveCompatWitnessAddr(child *bip32.XPub, net *chaincfg.Params) (*btcutil.AddressScriptHash, error) {
	witnessAddr, err := DeriveWitnessAddr(child, net)
	if err != nil {
		return nil, err
	}
	witnessScript, err := txscript.PayToAddrScript(witnessAddr)
	if err != nil {
		return nil, fmt.Errorf("address: building witness redeem script: %w", err)
	}
	return btcutil.NewAddressScriptHash(witnessScript, net)
}

// InternalKeyX returns child's BIP-341 x-only internal key: the X
// coordinate of its point, independent of the compressed point's own
// parity byte.
func InternalKeyX(child *bip32.XPub) [32]byte {
	var x [32]byte
	copy(x[:], child.Point[1:])
	return x
}

// DeriveTaprootAddr tweaks child's x-only point by tree's MAST
// commitment (or by no commitment at all, for a key-path-only output,
// when tree is nil) and returns the resulting P2TR (bech32m) address
// alongside the output key the address commits to.
func DeriveTaprootAddr(child *bip32.XPub, tree taproot.Tree, net *chaincfg.Params) (*btcutil.AddressTaproot, taproot.OutputKey, error) {
	outputKey, err := taproot.ComputeOutputKeyFromTree(InternalKeyX(child), tree)
	if err != nil {
		return nil, taproot.OutputKey{}, fmt.Errorf("address: %w", err)
	}
	addr, err := btcutil.NewAddressTaproot(outputKey.X[:], net)
	if err != nil {
		return nil, taproot.OutputKey{}, fmt.Errorf("address: %w", err)
	}
	return addr, outputKey, nil
}

// DeriveMSAddr derives the index-th soft child of every key in keys,
// sorts the resulting compressed points lexicographically (BIP-67),
// builds an m-of-n multisig redeem script, and returns its P2SH
// address alongside the redeem script itself.
func DeriveMSAddr(keys []*bip32.XPub, m int, index uint32, net *chaincfg.Params) (*btcutil.AddressScriptHash, []byte, error) {
	if len(keys) == 0 {
		return nil, nil, ErrNoKeys
	}
	if m <= 0 || m > len(keys) {
		return nil, nil, fmt.Errorf("address: threshold %d invalid for %d keys", m, len(keys))
	}

	children := make([]*bip32.XPub, len(keys))
	for i, k := range keys {
		child, err := k.DeriveSoft(index)
		if err != nil {
			return nil, nil, err
		}
		children[i] = child
	}
	sort.Slice(children, func(i, j int) bool {
		return string(children[i].Point[:]) < string(children[j].Point[:])
	})

	addrPubKeys := make([]*btcutil.AddressPubKey, len(children))
	for i, child := range children {
		apk, err := btcutil.NewAddressPubKey(child.Point[:], net)
		if err != nil {
			return nil, nil, fmt.Errorf("address: %w", err)
		}
		addrPubKeys[i] = apk
	}

	redeemScript, err := txscript.MultiSigScript(addrPubKeys, m)
	if err != nil {
		return nil, nil, fmt.Errorf("address: building multisig redeem script: %w", err)
	}
	scriptAddr, err := btcutil.NewAddressScriptHash(redeemScript, net)
	if err != nil {
		return nil, nil, fmt.Errorf("address: %w", err)
	}
	return scriptAddr, redeemScript, nil
}
