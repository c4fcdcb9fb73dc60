package utils

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/zeebo/assert"

	"github.com/gtank/blake2/internal/consts"
)

func TestBytesToWords32(t *testing.T) {
	if !consts.IsLittleEndian {
		t.SkipNow()
	}

	var bytes [64]uint8
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint32
	BytesToWords32(&bytes, &words)

	assert.Equal(t, *(*[16]uint32)(unsafe.Pointer(&bytes[0])), words)
}

func TestBytesToWords64(t *testing.T) {
	if !consts.IsLittleEndian {
		t.SkipNow()
	}

	var bytes [128]uint8
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint64
	BytesToWords64(&bytes, &words)

	assert.Equal(t, *(*[16]uint64)(unsafe.Pointer(&bytes[0])), words)
}

func TestBytesToWords32Unaligned(t *testing.T) {
	buf := make([]byte, 68)
	for i := range buf {
		buf[i] = byte(i)
	}

	// A block starting one byte in cannot be word aligned, so this also
	// exercises the unrolled fallback.
	for off := 0; off < 4; off++ {
		var words [16]uint32
		BytesToWords32((*[64]uint8)(buf[off:off+64]), &words)

		for i := range words {
			assert.Equal(t, binary.LittleEndian.Uint32(buf[off+4*i:]), words[i])
		}
	}
}

func TestBytesToWords64Unaligned(t *testing.T) {
	buf := make([]byte, 136)
	for i := range buf {
		buf[i] = byte(i)
	}

	for off := 0; off < 8; off++ {
		var words [16]uint64
		BytesToWords64((*[128]uint8)(buf[off:off+128]), &words)

		for i := range words {
			assert.Equal(t, binary.LittleEndian.Uint64(buf[off+8*i:]), words[i])
		}
	}
}

func TestWordsToBytes32(t *testing.T) {
	var words [8]uint32
	for i := range words {
		words[i] = 0x01020304 * uint32(i+1)
	}

	var bytes [32]uint8
	WordsToBytes32(&words, &bytes)

	for i := range words {
		assert.Equal(t, words[i], binary.LittleEndian.Uint32(bytes[4*i:]))
	}
}

func TestWordsToBytes64(t *testing.T) {
	var words [8]uint64
	for i := range words {
		words[i] = 0x0102030405060708 * uint64(i+1)
	}

	var bytes [64]uint8
	WordsToBytes64(&words, &bytes)

	for i := range words {
		assert.Equal(t, words[i], binary.LittleEndian.Uint64(bytes[8*i:]))
	}
}
