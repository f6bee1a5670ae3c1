package tjpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBitStreamReadBits(t *testing.T) {
	c := qt.New(t)
	b := newBitStream([]byte{0xAC}) // 1010 1100

	v, err := b.readBits(4)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0xA))

	v, err = b.readBits(4)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0xC))
}

func TestBitStreamPeekThenSkip(t *testing.T) {
	c := qt.New(t)
	b := newBitStream([]byte{0xF0})

	v, err := b.peek(4)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0xF))

	// peek must not consume.
	v, err = b.peek(4)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0xF))

	b.skip(4)
	v, err = b.readBits(4)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0x0))
}

func TestBitStreamByteStuffing(t *testing.T) {
	c := qt.New(t)
	// 0xFF 0x00 is a stuffed literal 0xFF, followed by a plain 0x0F.
	b := newBitStream([]byte{0xFF, 0x00, 0x0F})

	v, err := b.readBits(8)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0xFF))

	v, err = b.readBits(8)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0x0F))
}

func TestBitStreamMarkerDetection(t *testing.T) {
	c := qt.New(t)
	b := newBitStream([]byte{0xAA, 0xFF, 0xD0})

	v, err := b.readBits(8)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0xAA))

	// Crossing into the marker should keep serving 1-bits and remember it.
	v, err = b.peek(8)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0xFF))

	m, ok := b.getMarker()
	c.Assert(ok, qt.IsTrue)
	c.Assert(m, qt.Equals, byte(0xD0))

	// The marker is consumed; asking again reports none pending.
	_, ok = b.getMarker()
	c.Assert(ok, qt.IsFalse)
}

func TestBitStreamSyncRestart(t *testing.T) {
	c := qt.New(t)
	// A restart marker directly after the 0x12 byte, which the decoder
	// hasn't yet read ahead into.
	b := newBitStream([]byte{0x12, 0xFF, 0xD3, 0x34})

	_, err := b.readBits(8) // consume the 0x12 byte only
	c.Assert(err, qt.IsNil)

	m, err := b.syncRestart()
	c.Assert(err, qt.IsNil)
	c.Assert(m, qt.Equals, byte(0xD3))

	v, err := b.readBits(8)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0x34))
}
