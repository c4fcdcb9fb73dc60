package vectors

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gtank/blake2"
)

// requireRecomputes hashes each record's inputs again and checks the stored
// digest, so a generated suite can never drift from the hashes themselves.
func requireRecomputes(t *testing.T, suite []Vector) {
	t.Helper()

	for i, v := range suite {
		key, err := hex.DecodeString(v.Key)
		require.NoError(t, err)
		salt, err := hex.DecodeString(v.Salt)
		require.NoError(t, err)
		persona, err := hex.DecodeString(v.Persona)
		require.NoError(t, err)
		msg, err := hex.DecodeString(v.Input)
		require.NoError(t, err)

		sum, err := blake2.Hash(blake2.Variant(v.Hash), blake2.Params{
			Key:      key,
			Salt:     salt,
			Personal: persona,
			Size:     v.Length,
		}, msg)
		require.NoError(t, err)
		require.Equal(t, v.Out, hex.EncodeToString(sum), "vector %d", i)
	}
}

func requireDistinct(t *testing.T, vs []Vector) {
	t.Helper()

	seen := make(map[string]bool, len(vs))
	for _, v := range vs {
		require.False(t, seen[v.Out], "duplicate output %s", v.Out)
		seen[v.Out] = true
	}
}

func TestBlake2sSuite(t *testing.T) {
	suite, err := Blake2sSuite()
	require.NoError(t, err)
	require.Len(t, suite, 48)

	// salt sweep, personalization sweep, then the digest-length sweep
	require.Equal(t, "00", suite[0].Salt)
	require.Equal(t, "0001020304050607", suite[7].Salt)
	require.Equal(t, "00", suite[8].Persona)
	require.Equal(t, 1, suite[16].Length)
	require.Equal(t, 32, suite[47].Length)

	// A one-byte zero salt pads to the all-zero salt field, so the first
	// salt and persona records both equal the keyed no-salt digest.
	require.Equal(t,
		"48a8997da407876b3d79c0d92325ad3b89cbb754d86ab71aee047ad345fd2c49",
		suite[0].Out)
	require.Equal(t, suite[0].Out, suite[8].Out)

	require.Equal(t,
		"01b2226fac3b75d54baeaadacfd69596ee7f0702baebdfc3b03a5f6782ec9dc6",
		suite[7].Out)
	require.Equal(t,
		"e397cdd76bc45ef9d3d36ca2db13a6631b12c05909bbdf73ebb1761ee0944821",
		suite[15].Out)

	// the length sweep is unkeyed, so its endpoints are the standard digests
	require.Equal(t, "64550d6ffe2c0a01a14aba1eade0200c", suite[16+15].Out)
	require.Equal(t,
		"69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9",
		suite[47].Out)

	requireDistinct(t, suite[0:8])
	requireDistinct(t, suite[8:16])
	requireDistinct(t, suite[16:])
	requireRecomputes(t, suite)
}

func TestBlake2bSuite(t *testing.T) {
	suite, err := Blake2bSuite()
	require.NoError(t, err)
	require.Len(t, suite, 80)

	require.Equal(t, "00", suite[0].Salt)
	require.Equal(t, "00", suite[8].Persona)
	require.Equal(t, 1, suite[16].Length)
	require.Equal(t, 64, suite[79].Length)

	// the sweeps use a 32-byte counting key even for BLAKE2b
	require.Equal(t, 64, len(suite[0].Key))
	require.Equal(t,
		"84bfa69f0d90df7db2a3ee026042988b5bd9caa2320af1f371823dd28351202f"+
			"8e6277c40c050711c8dd4e2c1ac30c34c9aed0bddd468b031287fe872675e0cc",
		suite[0].Out)
	require.Equal(t, suite[0].Out, suite[8].Out)

	require.Equal(t,
		"a174995fafedbbfd0652b716a80b48df989b66467b9808593215b7841296c5d1"+
			"0ab73cb903eb0ea9b5a0935cbc080783e78da1d5e7013028af4be9b4bffad863",
		suite[7].Out)

	require.Equal(t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		suite[16+31].Out)
	require.Equal(t,
		"786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419"+
			"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		suite[79].Out)

	requireDistinct(t, suite[0:8])
	requireDistinct(t, suite[8:16])
	requireDistinct(t, suite[16:])
	requireRecomputes(t, suite)
}

func TestWriteReadRoundTrip(t *testing.T) {
	suite, err := Blake2bSuite()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, suite))

	got, err := Read(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(suite, got); diff != "" {
		t.Fatalf("suite changed across write/read (-want +got):\n%s", diff)
	}
}

func TestWriteLayout(t *testing.T) {
	suite := []Vector{
		{Hash: "blake2s", Key: "00", Salt: "01", Out: "ab"},
		{Hash: "blake2s", Length: 1, Out: "a1"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, suite))

	exp := strings.Join([]string{
		"[",
		" {",
		`  "hash": "blake2s",`,
		`  "in": "",`,
		`  "key": "00",`,
		`  "persona": "",`,
		`  "salt": "01",`,
		`  "out": "ab"`,
		" },",
		" {",
		`  "hash": "blake2s",`,
		`  "in": "",`,
		`  "key": "",`,
		`  "persona": "",`,
		`  "salt": "",`,
		`  "length": 1,`,
		`  "out": "a1"`,
		" }",
		"]",
		"",
	}, "\n")
	require.Equal(t, exp, buf.String())
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("not json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode vector suite")
}
