// Package consts records host traits shared by the blake2s and blake2b
// packages. The algorithm constants themselves (IVs, block sizes, round
// counts) live with the variant that owns them.
package consts

import (
	"golang.org/x/sys/cpu"
)

// IsLittleEndian reports whether the host stores words least significant
// byte first. Being a constant lets the compiler eliminate the byte-swap
// branches in internal/utils entirely.
const IsLittleEndian = !cpu.IsBigEndian
