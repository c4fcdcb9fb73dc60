package blake2s

import (
	"math/rand"
	"testing"
)

func FuzzHash(f *testing.F) {
	f.Fuzz(func(t *testing.T, prog []byte) {
		l := 0
		for _, v := range prog {
			l += int(v)
		}
		data := make([]byte, l)
		rand.New(rand.NewSource(0)).Read(data)

		d, err := NewDigest(nil, nil, nil, 32)
		if err != nil {
			t.Fatal(err)
		}

		b := data
		for _, v := range prog {
			d.Write(b[:v])
			b = b[v:]
		}

		v1 := d.Sum(nil)
		v2 := Sum256(data)
		if string(v1) != string(v2[:]) {
			t.Fatalf("v1: %x, v2: %x", v1, v2)
		}
	})
}
