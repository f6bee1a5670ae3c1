package tjpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// huffTestData holds the bitstream "0 10 11" packed MSB-first into one byte
// (0x58 == 0101 1000), decoding to symbols 0x00, 0x01, 0x02 in order
// under the canonical table built from bits/values below.
var (
	huffTestBits   = [16]uint8{1, 2}
	huffTestValues = []uint8{0x00, 0x01, 0x02}
	// Real content is the 5-bit "01011" sequence packed into the first
	// byte; the rest is zero padding so decodeRegister/decodeLUT's 16-bit
	// lookahead always has bytes to pull from (it reads whole bytes ahead
	// of what a given symbol actually needs).
	huffTestData = []byte{0x58, 0x00, 0x00, 0x00}
)

func decodeAllTiers(t *testing.T, tier Tier) []uint8 {
	t.Helper()
	c := qt.New(t)
	pool := NewPool(make([]byte, ConvenientPoolSize))
	table, err := buildHuffmanTable(pool, huffTestBits, huffTestValues, tier)
	c.Assert(err, qt.IsNil)

	bits := newBitStream(huffTestData)
	var got []uint8
	for i := 0; i < 3; i++ {
		sym, err := table.decode(bits, tier)
		c.Assert(err, qt.IsNil)
		got = append(got, sym)
	}
	return got
}

func TestHuffmanDecodeMinimum(t *testing.T) {
	c := qt.New(t)
	c.Assert(decodeAllTiers(t, TierMinimum), qt.DeepEquals, []uint8{0x00, 0x01, 0x02})
}

func TestHuffmanDecodeRegister(t *testing.T) {
	c := qt.New(t)
	c.Assert(decodeAllTiers(t, TierRegister), qt.DeepEquals, []uint8{0x00, 0x01, 0x02})
}

func TestHuffmanDecodeLUT(t *testing.T) {
	c := qt.New(t)
	c.Assert(decodeAllTiers(t, TierLUT), qt.DeepEquals, []uint8{0x00, 0x01, 0x02})
}

func TestHuffmanTableRejectsMismatch(t *testing.T) {
	c := qt.New(t)
	pool := NewPool(make([]byte, ConvenientPoolSize))
	_, err := buildHuffmanTable(pool, huffTestBits, []uint8{0x00}, TierRegister)
	c.Assert(err, qt.Not(qt.IsNil))
}
