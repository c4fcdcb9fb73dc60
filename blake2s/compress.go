package blake2s

import (
	"math/bits"

	"github.com/gtank/blake2/internal/utils"
)

func g(a, b, c, d, mx, my uint32) (uint32, uint32, uint32, uint32) {
	a += b + mx
	d = bits.RotateLeft32(d^a, -16)
	c += d
	b = bits.RotateLeft32(b^c, -12)
	a += b + my
	d = bits.RotateLeft32(d^a, -8)
	c += d
	b = bits.RotateLeft32(b^c, -7)
	return a, b, c, d
}

func compress(h *[8]uint32, buf *[64]byte, t0, t1, f0, f1 uint32) {
	var m [16]uint32
	utils.BytesToWords32(buf, &m)

	s := [16]uint32{
		h[0], h[1], h[2], h[3],
		h[4], h[5], h[6], h[7],
		IV0, IV1, IV2, IV3,
		IV4 ^ t0, IV5 ^ t1, IV6 ^ f0, IV7 ^ f1,
	}

	rcompress(h, &s, &m)
}

// rcompress runs the ten G-mix rounds over the working vector and folds the
// result back into the state. The message-word indices are the standard
// sigma schedule with the table lookups precomputed per round.
func rcompress(h *[8]uint32, s, m *[16]uint32) {
	const (
		a = 10
		b = 11
		c = 12
		d = 13
		e = 14
		f = 15
	)

	// round 1
	s0, s4, s8, sc := g(s[0], s[4], s[8], s[c], m[0], m[1])
	s1, s5, s9, sd := g(s[1], s[5], s[9], s[d], m[2], m[3])
	s2, s6, sa, se := g(s[2], s[6], s[a], s[e], m[4], m[5])
	s3, s7, sb, sf := g(s[3], s[7], s[b], s[f], m[6], m[7])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[8], m[9])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[a], m[b])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[c], m[d])
	s3, s4, s9, se = g(s3, s4, s9, se, m[e], m[f])

	// round 2
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[e], m[a])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[4], m[8])
	s2, s6, sa, se = g(s2, s6, sa, se, m[9], m[f])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[d], m[6])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[1], m[c])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[0], m[2])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[b], m[7])
	s3, s4, s9, se = g(s3, s4, s9, se, m[5], m[3])

	// round 3
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[b], m[8])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[c], m[0])
	s2, s6, sa, se = g(s2, s6, sa, se, m[5], m[2])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[f], m[d])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[a], m[e])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[3], m[6])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[7], m[1])
	s3, s4, s9, se = g(s3, s4, s9, se, m[9], m[4])

	// round 4
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[7], m[9])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[3], m[1])
	s2, s6, sa, se = g(s2, s6, sa, se, m[d], m[c])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[b], m[e])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[2], m[6])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[5], m[a])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[4], m[0])
	s3, s4, s9, se = g(s3, s4, s9, se, m[f], m[8])

	// round 5
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[9], m[0])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[5], m[7])
	s2, s6, sa, se = g(s2, s6, sa, se, m[2], m[4])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[a], m[f])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[e], m[1])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[b], m[c])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[6], m[8])
	s3, s4, s9, se = g(s3, s4, s9, se, m[3], m[d])

	// round 6
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[2], m[c])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[6], m[a])
	s2, s6, sa, se = g(s2, s6, sa, se, m[0], m[b])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[8], m[3])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[4], m[d])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[7], m[5])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[f], m[e])
	s3, s4, s9, se = g(s3, s4, s9, se, m[1], m[9])

	// round 7
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[c], m[5])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[1], m[f])
	s2, s6, sa, se = g(s2, s6, sa, se, m[e], m[d])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[4], m[a])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[0], m[7])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[6], m[3])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[9], m[2])
	s3, s4, s9, se = g(s3, s4, s9, se, m[8], m[b])

	// round 8
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[d], m[b])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[7], m[e])
	s2, s6, sa, se = g(s2, s6, sa, se, m[c], m[1])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[3], m[9])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[5], m[0])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[f], m[4])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[8], m[6])
	s3, s4, s9, se = g(s3, s4, s9, se, m[2], m[a])

	// round 9
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[6], m[f])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[e], m[9])
	s2, s6, sa, se = g(s2, s6, sa, se, m[b], m[3])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[0], m[8])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[c], m[2])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[d], m[7])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[1], m[4])
	s3, s4, s9, se = g(s3, s4, s9, se, m[a], m[5])

	// round 10
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[a], m[2])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[8], m[4])
	s2, s6, sa, se = g(s2, s6, sa, se, m[7], m[6])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[1], m[5])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[f], m[b])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[9], m[e])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[3], m[c])
	s3, s4, s9, se = g(s3, s4, s9, se, m[d], m[0])

	h[0] ^= s0 ^ s8
	h[1] ^= s1 ^ s9
	h[2] ^= s2 ^ sa
	h[3] ^= s3 ^ sb
	h[4] ^= s4 ^ sc
	h[5] ^= s5 ^ sd
	h[6] ^= s6 ^ se
	h[7] ^= s7 ^ sf
}
