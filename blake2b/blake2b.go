// Package blake2b implements the BLAKE2b secure hashing algorithm with
// support for salting and personalization. BLAKE2b is optimized for 64-bit
// platforms and produces digests of any size between 1 and 64 bytes
package blake2b

import (
	"encoding/binary"

	"github.com/gtank/blake2/internal/params"
	"github.com/gtank/blake2/internal/utils"
)

// The constant values will be different for other BLAKE2 variants. These are
// appropriate for BLAKE2b.
const (
	// The maximum length of the key field.
	KeyLength = 64
	// The maximum number of bytes to produce.
	MaxOutput = 64
	// Max size of the salt, in bytes
	SaltLength = 16
	// Max size of the personalization string, in bytes
	SeparatorLength = 16
	// Number of G function rounds for BLAKE2b.
	RoundCount = 12
	// Size of a block buffer in bytes
	BlockSize = 128

	// Initialization vector for BLAKE2b
	IV0 uint64 = 0x6a09e667f3bcc908
	IV1 uint64 = 0xbb67ae8584caa73b
	IV2 uint64 = 0x3c6ef372fe94f82b
	IV3 uint64 = 0xa54ff53a5f1d36f1
	IV4 uint64 = 0x510e527fade682d1
	IV5 uint64 = 0x9b05688c2b3e6c1f
	IV6 uint64 = 0x1f83d9abfb41bd6b
	IV7 uint64 = 0x5be0cd19137e2179
)

var geometry = params.Geometry{
	Variant:     "blake2b",
	BlockLen:    64,
	MaxDigest:   MaxOutput,
	MaxKey:      KeyLength,
	MaxSalt:     SaltLength,
	MaxPersonal: SeparatorLength,
}

// Digest represents the internal state of the BLAKE2b algorithm.
type Digest struct {
	h      [8]uint64
	t0, t1 uint64
	f0, f1 uint64

	buf    [BlockSize]byte
	offset int // current offset inside the block

	// size is defined in hash.Hash, and returns the number of bytes Sum will
	// return. Since BLAKE2 output length is dynamic, so is this.
	size int

	// initial holds the chain value derived from the parameter block, and key
	// holds the zero-padded key block, so that Reset can restart the stream.
	initial [8]uint64
	key     [BlockSize]byte
	keyed   bool
}

// NewDigest constructs a new instance of a BLAKE2b hash with the provided
// configuration. A nil or empty key selects the unkeyed mode. Salt and
// personalization strings shorter than SaltLength and SeparatorLength are
// zero-padded on the right.
func NewDigest(key, salt, personalization []byte, outputBytes int) (*Digest, error) {
	block, err := geometry.Build(outputBytes, len(key), salt, personalization)
	if err != nil {
		return nil, err
	}

	d := &Digest{size: outputBytes}
	d.h[0] = IV0 ^ binary.LittleEndian.Uint64(block[0:8])
	d.h[1] = IV1 ^ binary.LittleEndian.Uint64(block[8:16])
	d.h[2] = IV2 ^ binary.LittleEndian.Uint64(block[16:24])
	d.h[3] = IV3 ^ binary.LittleEndian.Uint64(block[24:32])
	d.h[4] = IV4 ^ binary.LittleEndian.Uint64(block[32:40])
	d.h[5] = IV5 ^ binary.LittleEndian.Uint64(block[40:48])
	d.h[6] = IV6 ^ binary.LittleEndian.Uint64(block[48:56])
	d.h[7] = IV7 ^ binary.LittleEndian.Uint64(block[56:64])
	d.initial = d.h

	// A keyed hash starts with the key padded to a full block as the first
	// block of input. The buffer holds it exactly like written input, so the
	// counter picks it up on the next compression.
	if len(key) > 0 {
		d.keyed = true
		copy(d.key[:], key)
		d.buf = d.key
		d.offset = BlockSize
	}

	return d, nil
}

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(input []byte) (n int, err error) {
	written := 0

	// A full buffer is held back until more input arrives, so the final
	// block, whole or partial, is always compressed with the last-block flag.
	for written < len(input) {
		free := BlockSize - d.offset
		left := len(input) - written

		if left <= free {
			d.offset += copy(d.buf[d.offset:], input[written:])
			return len(input), nil
		}

		copy(d.buf[d.offset:], input[written:written+free])

		// increment counter, preserving overflow behavior
		d.t0 += BlockSize
		if d.t0 < BlockSize {
			d.t1++
		}

		compress(&d.h, &d.buf, d.t0, d.t1, d.f0, d.f1)

		written += free
		d.offset = 0
	}

	return written, nil
}

// WriteString adds more data to the running hash. It never returns an error.
func (d *Digest) WriteString(input string) (n int, err error) {
	return d.Write([]byte(input))
}

// Sum appends the current hash to b and returns the resulting slice. It does
// not change the underlying hash state.
func (d *Digest) Sum(b []byte) []byte {
	var out [MaxOutput]byte
	d.finalize(&out)
	return append(b, out[:d.size]...)
}

// finalize simulates compressing the final block without updating the
// underlying hash state, so that writes may continue afterwards.
func (d *Digest) finalize(out *[MaxOutput]byte) {
	final := *d

	for i := final.offset; i < BlockSize; i++ {
		final.buf[i] = 0
	}

	// count the pending bytes before padding
	final.t0 += uint64(final.offset)
	if final.t0 < uint64(final.offset) {
		final.t1++
	}

	// set last block flag
	final.f0 = 0xFFFFFFFFFFFFFFFF

	compress(&final.h, &final.buf, final.t0, final.t1, final.f0, final.f1)
	utils.WordsToBytes64(&final.h, out)
}

// Reset restores the hash to its initial state, retaining the key, salt,
// personalization, and output size it was constructed with.
func (d *Digest) Reset() {
	d.h = d.initial
	d.t0, d.t1, d.f0, d.f1 = 0, 0, 0, 0
	if d.keyed {
		d.buf = d.key
		d.offset = BlockSize
	} else {
		d.buf = [BlockSize]byte{}
		d.offset = 0
	}
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size. The Write method must
// be able to accept any amount of data, but it may operate more efficiently
// if all writes are a multiple of the block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Clone returns a copy of the digest. Modifying the copy will not modify the
// original, and vice versa.
func (d *Digest) Clone() *Digest {
	clone := *d
	return &clone
}

// Sum512 returns the unkeyed 64-byte BLAKE2b digest of data. It is shorthand
// for a NewDigest with no key, salt, or personalization and a full-length
// output.
func Sum512(data []byte) [64]byte {
	var (
		d   Digest
		sum [64]byte
	)

	// The parameter block with no key, salt, or personalization only touches
	// the first word of the IV: digest length, fanout one, depth one.
	d.h = [8]uint64{IV0 ^ (64 | 1<<16 | 1<<24), IV1, IV2, IV3, IV4, IV5, IV6, IV7}
	d.size = 64

	d.Write(data)
	d.finalize(&sum)
	return sum
}

// Sum256 returns the unkeyed 32-byte BLAKE2b digest of data. The 32-byte
// output length is hashed into the parameter block, so this is a different
// function from Sum512, not a truncation of it.
func Sum256(data []byte) [32]byte {
	var (
		d   Digest
		out [MaxOutput]byte
		sum [32]byte
	)

	d.h = [8]uint64{IV0 ^ (32 | 1<<16 | 1<<24), IV1, IV2, IV3, IV4, IV5, IV6, IV7}
	d.size = 32

	d.Write(data)
	d.finalize(&out)
	copy(sum[:], out[:32])
	return sum
}
