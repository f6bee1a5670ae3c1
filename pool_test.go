package tjpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPoolAlloc(t *testing.T) {
	c := qt.New(t)
	p := NewPool(make([]byte, 64))

	b, err := p.Alloc(10)
	c.Assert(err, qt.IsNil)
	c.Assert(len(b), qt.Equals, 10)
	c.Assert(p.Used(), qt.Equals, 16) // aligned up to 8

	b2, err := p.Alloc(8)
	c.Assert(err, qt.IsNil)
	c.Assert(len(b2), qt.Equals, 8)
	c.Assert(p.Used(), qt.Equals, 24)
}

func TestPoolExhaustion(t *testing.T) {
	c := qt.New(t)
	p := NewPool(make([]byte, 16))

	_, err := p.Alloc(10)
	c.Assert(err, qt.IsNil)

	_, err = p.Alloc(10)
	c.Assert(err, qt.Equals, ErrInsufficientMemory)
}

func TestPoolReset(t *testing.T) {
	c := qt.New(t)
	p := NewPool(make([]byte, 64))

	_, err := p.Alloc(32)
	c.Assert(err, qt.IsNil)
	c.Assert(p.Remaining(), qt.Equals, 32)

	p.Reset()
	c.Assert(p.Used(), qt.Equals, 0)
	c.Assert(p.Remaining(), qt.Equals, 64)
}

func TestPoolAllocU16Zero(t *testing.T) {
	c := qt.New(t)
	p := NewPool(make([]byte, 64))

	s, err := p.AllocU16(0)
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.IsNil)
}

func TestPoolAllocU16(t *testing.T) {
	c := qt.New(t)
	p := NewPool(make([]byte, 64))

	s, err := p.AllocU16(4)
	c.Assert(err, qt.IsNil)
	c.Assert(len(s), qt.Equals, 4)
	for _, v := range s {
		c.Assert(v, qt.Equals, uint16(0))
	}
	s[2] = 0xBEEF
	c.Assert(s[2], qt.Equals, uint16(0xBEEF))
}

func TestPoolAllocI32(t *testing.T) {
	c := qt.New(t)
	p := NewPool(make([]byte, 64))

	s, err := p.AllocI32(4)
	c.Assert(err, qt.IsNil)
	c.Assert(len(s), qt.Equals, 4)
	s[1] = -12345
	c.Assert(s[1], qt.Equals, int32(-12345))
}
