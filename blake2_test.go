package blake2

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/zeebo/assert"

	"github.com/gtank/blake2/blake2b"
	"github.com/gtank/blake2/blake2s"
)

func TestHash(t *testing.T) {
	cases := []struct {
		name    string
		variant Variant
		params  Params
		msg     []byte
		hash    string
	}{
		{
			name:    "Blake2sDefault",
			variant: BLAKE2s,
			msg:     []byte("abc"),
			hash:    "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982",
		},
		{
			name:    "Blake2bDefault",
			variant: BLAKE2b,
			msg:     []byte("abc"),
			hash: "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d1" +
				"7d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		},
		{
			name:    "Blake2b256",
			variant: BLAKE2b,
			params:  Params{Size: 32},
			msg:     []byte("abc"),
			hash:    "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
		},
		{
			name:    "Blake2sKeyed",
			variant: BLAKE2s,
			params:  Params{Key: []byte("super secret key")},
			msg:     []byte("hello"),
			hash:    "f57c0589256730efaab04b13889cb5495d4c97f8a594f167f43ae94b90c2f478",
		},
		{
			name:    "Blake2bEverything",
			variant: BLAKE2b,
			params: Params{
				Key:      []byte("super secret key"),
				Salt:     []byte("salty"),
				Personal: []byte("demo"),
				Size:     40,
			},
			msg:  []byte("hello"),
			hash: "5fd50008318ee262812554ef2e97e52cd8566a75165835f9b809a4f966f31ae98bf42ff993b27acb",
		},
		{
			name:    "Blake2bZcashPersona",
			variant: BLAKE2b,
			params: Params{
				Personal: []byte("ZTxIdHeadersHash"),
				Size:     32,
			},
			msg:  []byte("Zcash"),
			hash: "1a9162a394083a3a8020bff265625864f9a4cb7f8a28038822f78c6a17bc4f45",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sum, err := Hash(c.variant, c.params, c.msg)
			assert.NoError(t, err)
			assert.Equal(t, len(sum), len(c.hash)/2)
			assert.Equal(t, hex.EncodeToString(sum), c.hash)
		})
	}
}

func TestHashDefaultSize(t *testing.T) {
	// A zero Size selects the variant maximum.
	s, err := Hash(BLAKE2s, Params{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, len(s), blake2s.MaxOutput)

	b, err := Hash(BLAKE2b, Params{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, len(b), blake2b.MaxOutput)

	exp, err := Hash(BLAKE2b, Params{Size: blake2b.MaxOutput}, nil)
	assert.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(b), hex.EncodeToString(exp))
}

func TestHashMatchesPackages(t *testing.T) {
	msgs := [][]byte{nil, []byte("a"), []byte("some data"), make([]byte, 1000)}

	for _, msg := range msgs {
		s, err := Hash(BLAKE2s, Params{}, msg)
		assert.NoError(t, err)
		exps := blake2s.Sum256(msg)
		assert.Equal(t, hex.EncodeToString(s), hex.EncodeToString(exps[:]))

		b, err := Hash(BLAKE2b, Params{}, msg)
		assert.NoError(t, err)
		expb := blake2b.Sum512(msg)
		assert.Equal(t, hex.EncodeToString(b), hex.EncodeToString(expb[:]))
	}
}

func TestHashKeySensitivity(t *testing.T) {
	msg := []byte("same message")

	for _, v := range []Variant{BLAKE2s, BLAKE2b} {
		one, err := Hash(v, Params{Key: []byte("key one")}, msg)
		assert.NoError(t, err)
		two, err := Hash(v, Params{Key: []byte("key two")}, msg)
		assert.NoError(t, err)
		unkeyed, err := Hash(v, Params{}, msg)
		assert.NoError(t, err)

		assert.False(t, bytes.Equal(one, two))
		assert.False(t, bytes.Equal(one, unkeyed))
	}
}

func TestHashUnknownVariant(t *testing.T) {
	_, err := Hash(Variant("blake3"), Params{}, nil)
	assert.Error(t, err)

	// unknown variants are not configuration errors
	var cerr *ConfigError
	assert.False(t, errors.As(err, &cerr))
}

func TestHashConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		variant Variant
		params  Params
		field   string
	}{
		{
			name:    "OversizeOutput",
			variant: BLAKE2s,
			params:  Params{Size: blake2s.MaxOutput + 1},
			field:   "digest",
		},
		{
			name:    "NegativeOutput",
			variant: BLAKE2b,
			params:  Params{Size: -1},
			field:   "digest",
		},
		{
			name:    "OversizeKey",
			variant: BLAKE2s,
			params:  Params{Key: make([]byte, blake2s.KeyLength+1)},
			field:   "key",
		},
		{
			name:    "OversizeSalt",
			variant: BLAKE2b,
			params:  Params{Salt: make([]byte, blake2b.SaltLength+1)},
			field:   "salt",
		},
		{
			name:    "OversizePersonal",
			variant: BLAKE2s,
			params:  Params{Personal: make([]byte, blake2s.SeparatorLength+1)},
			field:   "personalization",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Hash(c.variant, c.params, nil)
			assert.Error(t, err)

			var cerr *ConfigError
			assert.True(t, errors.As(err, &cerr))
			assert.Equal(t, cerr.Variant, string(c.variant))
			assert.Equal(t, cerr.Field, c.field)
		})
	}
}
