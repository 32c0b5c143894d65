package hdkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	return seed
}

func TestNewMasterKeyAndExport(t *testing.T) {
	svc := NewHDKeyService()
	master, err := svc.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	encoded, err := svc.GetExtendedPrivateKey(master)
	require.NoError(t, err)
	assert.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", encoded)
}

func TestDerivePathToPrivate(t *testing.T) {
	svc := NewHDKeyService()
	master, err := svc.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	child, err := svc.DerivePath(master, "m/0'/1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, child.Depth)
}

func TestDerivePathToPublicViaCapitalM(t *testing.T) {
	svc := NewHDKeyService()
	master, err := svc.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	result, err := svc.DerivePathResult(master, "M/1/2")
	require.NoError(t, err)
	assert.Nil(t, result.Prv)
	assert.NotNil(t, result.Pub)
}

func TestDerivePathRejectsPublicProjectionViaDerivePath(t *testing.T) {
	svc := NewHDKeyService()
	master, err := svc.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	_, err = svc.DerivePath(master, "M/1")
	assert.Error(t, err)
}

func TestGetPublicAndPrivateKeyLengths(t *testing.T) {
	svc := NewHDKeyService()
	master, err := svc.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	pub, err := svc.GetPublicKey(master)
	require.NoError(t, err)
	assert.Len(t, pub, 33)

	priv, err := svc.GetPrivateKey(master)
	require.NoError(t, err)
	assert.Len(t, priv, 32)
}

func TestImportExportRoundTrip(t *testing.T) {
	svc := NewHDKeyService()
	master, err := svc.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	encoded, err := svc.GetExtendedPrivateKey(master)
	require.NoError(t, err)

	imported, err := svc.ImportExtendedPrivateKey(encoded)
	require.NoError(t, err)
	assert.True(t, imported.Equal(master))

	pubEncoded, err := svc.GetExtendedPublicKey(master)
	require.NoError(t, err)
	importedPub, err := svc.ImportExtendedPublicKey(pubEncoded)
	require.NoError(t, err)

	neutered, err := master.Neuter()
	require.NoError(t, err)
	assert.True(t, importedPub.Equal(neutered))
}

func TestGetWIF(t *testing.T) {
	svc := NewHDKeyService()
	master, err := svc.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	wif, err := svc.GetWIF(master)
	require.NoError(t, err)
	assert.NotEmpty(t, wif)
}
