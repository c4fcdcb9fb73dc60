package blake2

import (
	"fmt"
	"hash"

	"github.com/gtank/blake2/blake2b"
	"github.com/gtank/blake2/blake2s"
	"github.com/gtank/blake2/internal/params"
)

// Variant names a member of the BLAKE2 family.
type Variant string

const (
	// BLAKE2s is the 32-bit-word variant: 64-byte blocks, up to 32 bytes of
	// digest and key, and up to 8 bytes each of salt and personalization.
	BLAKE2s Variant = "blake2s"
	// BLAKE2b is the 64-bit-word variant: 128-byte blocks, up to 64 bytes of
	// digest and key, and up to 16 bytes each of salt and personalization.
	BLAKE2b Variant = "blake2b"
)

// ConfigError describes a hash configuration that violates the variant's
// limits. It is the type of every validation error this module returns.
type ConfigError = params.ConfigError

// Params collects the optional inputs of a BLAKE2 hash. The zero value
// selects an unkeyed, unsalted hash with the variant's maximum output size.
type Params struct {
	Key      []byte
	Salt     []byte
	Personal []byte

	// Size is the digest length in bytes. Zero selects the variant maximum.
	Size int
}

// Hash computes the BLAKE2 digest of msg under the given parameters in a
// single call. Streaming callers should construct a blake2s or blake2b
// Digest directly.
func Hash(v Variant, p Params, msg []byte) ([]byte, error) {
	var (
		d   hash.Hash
		err error
	)

	switch v {
	case BLAKE2s:
		d, err = blake2s.NewDigest(p.Key, p.Salt, p.Personal, sizeOrDefault(p.Size, blake2s.MaxOutput))
	case BLAKE2b:
		d, err = blake2b.NewDigest(p.Key, p.Salt, p.Personal, sizeOrDefault(p.Size, blake2b.MaxOutput))
	default:
		return nil, fmt.Errorf("blake2: unknown variant %q", v)
	}
	if err != nil {
		return nil, err
	}

	d.Write(msg)
	return d.Sum(nil), nil
}

func sizeOrDefault(size, max int) int {
	if size == 0 {
		return max
	}
	return size
}
