package bip32

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeed(t *testing.T, hexSeed string) []byte {
	t.Helper()
	seed, err := hex.DecodeString(hexSeed)
	require.NoError(t, err)
	return seed
}

// TestNewMasterKeyVector1 checks the canonical BIP-32 test vector 1
// master-key export against its known Base58 form.
func TestNewMasterKeyVector1(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")

	master, err := NewMasterKey(seed)
	require.NoError(t, err)

	assert.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
		master.Export(&chaincfg.MainNetParams))
}

// TestDeriveHardVector1 checks m/0' of BIP-32 test vector 1 against
// its known Base58 export.
func TestDeriveHardVector1(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed)
	require.NoError(t, err)

	child, err := master.DeriveHard(HardenedOffset)
	require.NoError(t, err)

	assert.Equal(t, "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7",
		child.Export(&chaincfg.MainNetParams))
	assert.True(t, child.IsHardened())
	assert.EqualValues(t, 1, child.Depth)
}

func TestNewMasterKeyRejectsBadSeedLength(t *testing.T) {
	_, err := NewMasterKey(make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidSeed)

	_, err = NewMasterKey(make([]byte, 65))
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestSoftCommutativity(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed)
	require.NoError(t, err)

	for _, idx := range []uint32{0, 1, 5, HardenedOffset - 1} {
		childPrv, err := master.DeriveSoft(idx)
		require.NoError(t, err)
		viaPrv, err := childPrv.Neuter()
		require.NoError(t, err)

		masterPub, err := master.Neuter()
		require.NoError(t, err)
		viaPub, err := masterPub.DeriveSoft(idx)
		require.NoError(t, err)

		assert.True(t, viaPrv.Equal(viaPub), "deriveXPub(prv_sub(x,i)) should equal pub_sub(deriveXPub(x),i) at index %d", idx)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed)
	require.NoError(t, err)
	child, err := master.DeriveHard(HardenedOffset)
	require.NoError(t, err)

	encoded := child.Export(&chaincfg.MainNetParams)
	decoded, err := ImportXPrv(&chaincfg.MainNetParams, encoded)
	require.NoError(t, err)
	assert.True(t, child.Equal(decoded))

	pub, err := child.Neuter()
	require.NoError(t, err)
	encodedPub := pub.Export(&chaincfg.MainNetParams)
	decodedPub, err := ImportXPub(&chaincfg.MainNetParams, encodedPub)
	require.NoError(t, err)
	assert.True(t, pub.Equal(decodedPub))
}

func TestImportRejectsVersionMismatch(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed)
	require.NoError(t, err)
	encoded := master.Export(&chaincfg.MainNetParams)

	_, err = ImportXPrv(&chaincfg.TestNet3Params, encoded)
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestImportRejectsBadChecksum(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed)
	require.NoError(t, err)
	encoded := master.Export(&chaincfg.MainNetParams)

	corrupted := []byte(encoded)
	corrupted[len(corrupted)-1]++
	_, err = ImportXPrv(&chaincfg.MainNetParams, string(corrupted))
	assert.Error(t, err)
}

func TestDepthOverflow(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed)
	require.NoError(t, err)

	cur := master
	for i := 0; i < 255; i++ {
		cur, err = cur.DeriveSoft(0)
		require.NoError(t, err)
	}
	_, err = cur.DeriveSoft(0)
	assert.ErrorIs(t, err, ErrDepthOverflow)
}

func TestIndexCycleWraps(t *testing.T) {
	c := NewIndexCycle(HardenedOffset - 1)
	assert.EqualValues(t, HardenedOffset-1, c.Next())
	assert.EqualValues(t, 0, c.Next())
	assert.EqualValues(t, 1, c.Next())
}

func TestInvalidChildErrorIs(t *testing.T) {
	var err error = &InvalidChildError{Index: 7}
	assert.ErrorIs(t, err, ErrInvalidChild)
}
