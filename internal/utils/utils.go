// Package utils provides the little-endian word loads and stores shared by
// the blake2s and blake2b compression functions.
package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/gtank/blake2/internal/consts"
)

// BytesToWords32 loads a 64-byte message block into 16 little-endian uint32
// words. Word-aligned blocks on little-endian hosts take the single-copy
// path; everything else falls through to the unrolled loads.
func BytesToWords32(bytes *[64]uint8, words *[16]uint32) {
	if consts.IsLittleEndian && uintptr(unsafe.Pointer(bytes))&3 == 0 {
		*words = *(*[16]uint32)(unsafe.Pointer(bytes))
		return
	}

	words[0] = binary.LittleEndian.Uint32(bytes[0*4:])
	words[1] = binary.LittleEndian.Uint32(bytes[1*4:])
	words[2] = binary.LittleEndian.Uint32(bytes[2*4:])
	words[3] = binary.LittleEndian.Uint32(bytes[3*4:])
	words[4] = binary.LittleEndian.Uint32(bytes[4*4:])
	words[5] = binary.LittleEndian.Uint32(bytes[5*4:])
	words[6] = binary.LittleEndian.Uint32(bytes[6*4:])
	words[7] = binary.LittleEndian.Uint32(bytes[7*4:])
	words[8] = binary.LittleEndian.Uint32(bytes[8*4:])
	words[9] = binary.LittleEndian.Uint32(bytes[9*4:])
	words[10] = binary.LittleEndian.Uint32(bytes[10*4:])
	words[11] = binary.LittleEndian.Uint32(bytes[11*4:])
	words[12] = binary.LittleEndian.Uint32(bytes[12*4:])
	words[13] = binary.LittleEndian.Uint32(bytes[13*4:])
	words[14] = binary.LittleEndian.Uint32(bytes[14*4:])
	words[15] = binary.LittleEndian.Uint32(bytes[15*4:])
}

// BytesToWords64 loads a 128-byte message block into 16 little-endian uint64
// words.
func BytesToWords64(bytes *[128]uint8, words *[16]uint64) {
	if consts.IsLittleEndian && uintptr(unsafe.Pointer(bytes))&7 == 0 {
		*words = *(*[16]uint64)(unsafe.Pointer(bytes))
		return
	}

	words[0] = binary.LittleEndian.Uint64(bytes[0*8:])
	words[1] = binary.LittleEndian.Uint64(bytes[1*8:])
	words[2] = binary.LittleEndian.Uint64(bytes[2*8:])
	words[3] = binary.LittleEndian.Uint64(bytes[3*8:])
	words[4] = binary.LittleEndian.Uint64(bytes[4*8:])
	words[5] = binary.LittleEndian.Uint64(bytes[5*8:])
	words[6] = binary.LittleEndian.Uint64(bytes[6*8:])
	words[7] = binary.LittleEndian.Uint64(bytes[7*8:])
	words[8] = binary.LittleEndian.Uint64(bytes[8*8:])
	words[9] = binary.LittleEndian.Uint64(bytes[9*8:])
	words[10] = binary.LittleEndian.Uint64(bytes[10*8:])
	words[11] = binary.LittleEndian.Uint64(bytes[11*8:])
	words[12] = binary.LittleEndian.Uint64(bytes[12*8:])
	words[13] = binary.LittleEndian.Uint64(bytes[13*8:])
	words[14] = binary.LittleEndian.Uint64(bytes[14*8:])
	words[15] = binary.LittleEndian.Uint64(bytes[15*8:])
}

// WordsToBytes32 serializes the 8-word BLAKE2s state little-endian.
func WordsToBytes32(words *[8]uint32, bytes *[32]uint8) {
	if consts.IsLittleEndian && uintptr(unsafe.Pointer(bytes))&3 == 0 {
		*(*[8]uint32)(unsafe.Pointer(bytes)) = *words
		return
	}

	binary.LittleEndian.PutUint32(bytes[0*4:], words[0])
	binary.LittleEndian.PutUint32(bytes[1*4:], words[1])
	binary.LittleEndian.PutUint32(bytes[2*4:], words[2])
	binary.LittleEndian.PutUint32(bytes[3*4:], words[3])
	binary.LittleEndian.PutUint32(bytes[4*4:], words[4])
	binary.LittleEndian.PutUint32(bytes[5*4:], words[5])
	binary.LittleEndian.PutUint32(bytes[6*4:], words[6])
	binary.LittleEndian.PutUint32(bytes[7*4:], words[7])
}

// WordsToBytes64 serializes the 8-word BLAKE2b state little-endian.
func WordsToBytes64(words *[8]uint64, bytes *[64]uint8) {
	if consts.IsLittleEndian && uintptr(unsafe.Pointer(bytes))&7 == 0 {
		*(*[8]uint64)(unsafe.Pointer(bytes)) = *words
		return
	}

	binary.LittleEndian.PutUint64(bytes[0*8:], words[0])
	binary.LittleEndian.PutUint64(bytes[1*8:], words[1])
	binary.LittleEndian.PutUint64(bytes[2*8:], words[2])
	binary.LittleEndian.PutUint64(bytes[3*8:], words[3])
	binary.LittleEndian.PutUint64(bytes[4*8:], words[4])
	binary.LittleEndian.PutUint64(bytes[5*8:], words[5])
	binary.LittleEndian.PutUint64(bytes[6*8:], words[6])
	binary.LittleEndian.PutUint64(bytes[7*8:], words[7])
}
