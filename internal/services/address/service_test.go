package address

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hdkeycore/pkg/bip32"
	"github.com/yourusername/hdkeycore/pkg/taproot"
)

func mustMasterXPub(t *testing.T) *bip32.XPub {
	t.Helper()
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := bip32.NewMasterKey(seed)
	require.NoError(t, err)
	pub, err := master.Neuter()
	require.NoError(t, err)
	return pub
}

func TestDeriveAddressMainnet(t *testing.T) {
	svc := NewAddressService()
	xpub := mustMasterXPub(t)

	addr, err := svc.DeriveAddress(xpub, "0", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, addr)
}

func TestDeriveWitnessAndCompatAddressesDiffer(t *testing.T) {
	svc := NewAddressService()
	xpub := mustMasterXPub(t)

	witness, err := svc.DeriveWitnessAddress(xpub, "0", 0)
	require.NoError(t, err)
	compat, err := svc.DeriveCompatWitnessAddress(xpub, "0", 0)
	require.NoError(t, err)
	assert.NotEqual(t, witness, compat)
}

func TestDeriveAddressForAltcoinNetworks(t *testing.T) {
	xpub := mustMasterXPub(t)
	for name, net := range map[string]*chaincfg.Params{
		"litecoin": &LitecoinMainNetParams,
		"dogecoin": &DogecoinMainNetParams,
		"dash":     &DashMainNetParams,
	} {
		svc := NewAddressServiceForNet(net)
		addr, err := svc.DeriveAddress(xpub, "0", 0)
		require.NoErrorf(t, err, "deriving address for %s", name)
		assert.NotEmptyf(t, addr, "address for %s", name)
	}
}

func TestDeriveTaprootAddress(t *testing.T) {
	svc := NewAddressService()
	xpub := mustMasterXPub(t)

	addr, outputKeyHex, err := svc.DeriveTaprootAddress(xpub, "0", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, addr)
	assert.Len(t, outputKeyHex, 64)
}

func TestDeriveTaprootScriptAddressDiffersFromKeyPathOnly(t *testing.T) {
	svc := NewAddressService()
	xpub := mustMasterXPub(t)

	keyPathAddr, _, err := svc.DeriveTaprootAddress(xpub, "0", 0)
	require.NoError(t, err)

	leaf := taproot.Leaf{Version: taproot.BaseLeafVersion, Script: []byte("script")}
	scriptAddr, _, err := svc.DeriveTaprootScriptAddress(xpub, "0", 0, leaf)
	require.NoError(t, err)

	assert.NotEqual(t, keyPathAddr, scriptAddr)
}

func TestDeriveMultisigAddress(t *testing.T) {
	seedB, err := hex.DecodeString("101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)
	masterB, err := bip32.NewMasterKey(seedB)
	require.NoError(t, err)
	xpubB, err := masterB.Neuter()
	require.NoError(t, err)

	svc := NewAddressService()
	addr, redeemHex, err := svc.DeriveMultisigAddress([]*bip32.XPub{mustMasterXPub(t), xpubB}, 2, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, addr)
	assert.NotEmpty(t, redeemHex)
}

func TestScanProducesDistinctAddresses(t *testing.T) {
	svc := NewAddressService()
	xpub := mustMasterXPub(t)

	scan := svc.NewScan(xpub, 0)
	first, err := scan.Next()
	require.NoError(t, err)
	second, err := scan.Next()
	require.NoError(t, err)
	assert.False(t, first.Equal(second))
}

func TestPublicKeyHashLength(t *testing.T) {
	svc := NewAddressService()
	xpub := mustMasterXPub(t)
	assert.Len(t, svc.PublicKeyHash(xpub.Point[:]), 20)
}
