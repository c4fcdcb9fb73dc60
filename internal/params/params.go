// Package params builds BLAKE2 parameter blocks.
//
// Both variants lay the block out the same way: digest length, key length,
// fan-out, and depth occupy the first four bytes, the tree fields fill the
// middle, and the salt and personalization fields close out the block.
// Sequential hashing fixes fan-out and depth at 1 and zeroes every tree
// field, so the builder only places the live values and validates sizes.
// The caller XORs the marshaled block over the IV to seed the hash state;
// that fold is the whole keying/salting/personalization mechanism.
package params

import (
	"fmt"
)

// Geometry fixes the parameter-block dimensions of one BLAKE2 variant.
type Geometry struct {
	Variant     string // name used in errors: "blake2s" or "blake2b"
	BlockLen    int    // marshaled parameter-block size in bytes
	MaxDigest   int
	MaxKey      int
	MaxSalt     int
	MaxPersonal int
}

// Build validates the requested sizes against g and marshals the parameter
// block for a sequential (fan-out 1, depth 1) hash. Salt and personalization
// shorter than their fields are implicitly zero-padded on the right, so a
// salt of a single zero byte is indistinguishable from no salt at all.
func (g *Geometry) Build(digestLen, keyLen int, salt, personal []byte) ([]byte, error) {
	if digestLen < 1 || digestLen > g.MaxDigest {
		return nil, &ConfigError{Variant: g.Variant, Field: "digest", Size: digestLen, Max: g.MaxDigest}
	}
	if keyLen > g.MaxKey {
		return nil, &ConfigError{Variant: g.Variant, Field: "key", Size: keyLen, Max: g.MaxKey}
	}
	if len(salt) > g.MaxSalt {
		return nil, &ConfigError{Variant: g.Variant, Field: "salt", Size: len(salt), Max: g.MaxSalt}
	}
	if len(personal) > g.MaxPersonal {
		return nil, &ConfigError{Variant: g.Variant, Field: "personalization", Size: len(personal), Max: g.MaxPersonal}
	}

	block := make([]byte, g.BlockLen)
	block[0] = byte(digestLen)
	block[1] = byte(keyLen)
	block[2] = 1 // fan-out
	block[3] = 1 // depth
	copy(block[g.BlockLen-g.MaxSalt-g.MaxPersonal:], salt)
	copy(block[g.BlockLen-g.MaxPersonal:], personal)

	return block, nil
}

// ConfigError reports a digest, key, salt, or personalization size outside
// the fixed bounds of a BLAKE2 variant. It is the only error the hash cores
// return, and it is always raised before any compression runs.
type ConfigError struct {
	Variant string // "blake2s" or "blake2b"
	Field   string // which parameter was out of bounds
	Size    int    // the size that was asked for
	Max     int    // the variant's limit for that field
}

func (e *ConfigError) Error() string {
	if e.Size < 1 {
		return fmt.Sprintf("%s: asked for %d bytes of %s", e.Variant, e.Size, e.Field)
	}
	return fmt.Sprintf("%s: %s of %d bytes exceeds maximum of %d", e.Variant, e.Field, e.Size, e.Max)
}
