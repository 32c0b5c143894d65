package dpath

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hdkeycore/pkg/bip32"
)

func mustSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	return seed
}

// TestParsePathVector checks "m/0'/1/2'/2" parses to the expected
// segment sequence and round-trips through String.
func TestParsePathVector(t *testing.T) {
	parsed, err := Parse("m/0'/1/2'/2")
	require.NoError(t, err)
	assert.Equal(t, ModePrivate, parsed.Mode)

	segs := parsed.Path.Segments()
	require.Len(t, segs, 4)
	assert.Equal(t, []Segment{
		{Index: 0, Hard: true},
		{Index: 1, Hard: false},
		{Index: 2, Hard: true},
		{Index: 2, Hard: false},
	}, segs)

	assert.Equal(t, "m/0'/1/2'/2", parsed.String())
}

func TestParsePrintRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"m",
		"M",
		"m/0",
		"M/0'/1'/2",
		"0'/1/2'",
	}
	for _, s := range cases {
		parsed, err := Parse(s)
		require.NoErrorf(t, err, "parsing %q", s)
		reparsed, err := Parse(parsed.String())
		require.NoError(t, err)
		assert.Truef(t, Equal(parsed.Path, reparsed.Path), "round-trip mismatch for %q -> %q", s, parsed.String())
		assert.Equal(t, parsed.Mode, reparsed.Mode)
	}
}

func TestParseAcceptsLenientHardSuffix(t *testing.T) {
	for _, s := range []string{"m/44h", "m/44H", "m/44'"} {
		parsed, err := Parse(s)
		require.NoErrorf(t, err, "parsing %q", s)
		assert.True(t, parsed.Path.Segments()[0].Hard)
		// The printer always normalizes to "'".
		assert.Equal(t, "m/44'", parsed.String())
	}
}

func TestParseRejectsMalformedSegments(t *testing.T) {
	for _, s := range []string{"m//0", "m/abc", "m/2147483648", "m/-1"} {
		_, err := Parse(s)
		assert.Errorf(t, err, "expected parse failure for %q", s)
	}
}

func TestPathOrderingHardBeatsSoftAtSamePosition(t *testing.T) {
	soft, err := Deriv(KindAny).AppendSoft(5)
	require.NoError(t, err)
	hard, err := Deriv(KindAny).AppendHard(5)
	require.NoError(t, err)

	assert.Equal(t, 1, Compare(hard, soft))
	assert.Equal(t, -1, Compare(soft, hard))
}

func TestAppendRejectsWrongKind(t *testing.T) {
	hardPath := Deriv(KindHard)
	_, err := hardPath.AppendSoft(0)
	assert.ErrorIs(t, err, ErrInvalidPath)

	softPath := Deriv(KindSoft)
	_, err = softPath.AppendHard(0)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestToHardToSoftNarrowing(t *testing.T) {
	mixed := Deriv(KindAny)
	mixed, _ = mixed.AppendSoft(1)
	mixed, _ = mixed.AppendHard(2)

	_, err := mixed.ToHard()
	assert.ErrorIs(t, err, ErrInvalidPath)
	_, err = mixed.ToSoft()
	assert.ErrorIs(t, err, ErrInvalidPath)

	allSoft := Deriv(KindAny)
	allSoft, _ = allSoft.AppendSoft(1)
	allSoft, _ = allSoft.AppendSoft(2)
	narrowed, err := allSoft.ToSoft()
	require.NoError(t, err)
	assert.Equal(t, KindSoft, narrowed.Kind())
}

// TestApplyPublicVector checks apply("M/1/2/3", xpub(master)) succeeds
// and apply("M/0'", xpub(master)) reports PathHardnessMismatch.
func TestApplyPublicVector(t *testing.T) {
	master, err := bip32.NewMasterKey(mustSeed(t))
	require.NoError(t, err)
	xpub, err := master.Neuter()
	require.NoError(t, err)

	parsed, err := Parse("M/1/2/3")
	require.NoError(t, err)
	result, err := ApplyToXPub(parsed, xpub)
	require.NoError(t, err)
	assert.NotNil(t, result.Pub)

	parsedHard, err := Parse("M/0'")
	require.NoError(t, err)
	_, err = ApplyToXPub(parsedHard, xpub)
	assert.ErrorIs(t, err, ErrPathHardnessMismatch)
}

func TestApplyPrivateRequiresPrivateKey(t *testing.T) {
	master, err := bip32.NewMasterKey(mustSeed(t))
	require.NoError(t, err)
	xpub, err := master.Neuter()
	require.NoError(t, err)

	parsed, err := Parse("m/0")
	require.NoError(t, err)
	_, err = ApplyToXPub(parsed, xpub)
	assert.ErrorIs(t, err, ErrNeedPrivateKey)
}

// TestPathAppendAssociativity checks derive(a ++ b, x) = derive(b, derive(a, x)).
func TestPathAppendAssociativity(t *testing.T) {
	master, err := bip32.NewMasterKey(mustSeed(t))
	require.NoError(t, err)

	a := Deriv(KindAny)
	a, err = a.AppendHard(0)
	require.NoError(t, err)
	b := Deriv(KindAny)
	b, err = b.AppendSoft(1)
	require.NoError(t, err)
	b, err = b.AppendSoft(2)
	require.NoError(t, err)

	combined := Concat(a, b)
	viaCombined, err := derivePrv(combined, master)
	require.NoError(t, err)

	viaA, err := derivePrv(a, master)
	require.NoError(t, err)
	viaStep, err := derivePrv(b, viaA)
	require.NoError(t, err)

	assert.True(t, viaCombined.Equal(viaStep))
}
