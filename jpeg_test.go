package tjpeg

import (
	"bytes"
	"image"
	stdjpeg "image/jpeg"
	"testing"

	qt "github.com/frankban/quicktest"
)

// encodeGray builds a flat gray JPEG of the given size and fill value using
// the standard library encoder, so tests exercise this decoder against a
// real encoder's output rather than a hand-rolled fixture.
func encodeGray(c *qt.C, w, h int, fill uint8, quality int) []byte {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = fill
	}
	var buf bytes.Buffer
	err := stdjpeg.Encode(&buf, img, &stdjpeg.Options{Quality: quality})
	c.Assert(err, qt.IsNil)
	return buf.Bytes()
}

func TestDecodeFlatGray(t *testing.T) {
	c := qt.New(t)
	data := encodeGray(c, 16, 16, 180, 100)

	pool := NewPool(make([]byte, ConvenientPoolSize))
	dec := New()
	err := dec.Prepare(data, pool, TierRegister)
	c.Assert(err, qt.IsNil)
	c.Assert(dec.RawWidth(), qt.Equals, uint16(16))
	c.Assert(dec.RawHeight(), qt.Equals, uint16(16))
	c.Assert(dec.Components(), qt.Equals, 1)

	mcuBuf := make([]int16, dec.MCUBufferSize())
	workBuf := make([]byte, dec.WorkBufferSize())

	out := make([]byte, 16*16)
	sink := func(d *Decoder, pixels []byte, rect *Rectangle) (bool, error) {
		w := int(rect.Width())
		for row := 0; row < int(rect.Height()); row++ {
			for col := 0; col < w; col++ {
				out[(int(rect.Top)+row)*16+int(rect.Left)+col] = pixels[row*w+col]
			}
		}
		return true, nil
	}

	err = dec.Decompress(data, 0, mcuBuf, workBuf, sink)
	c.Assert(err, qt.IsNil)

	for i, v := range out {
		c.Assert(int(v) > 160 && int(v) < 200, qt.IsTrue, qt.Commentf("pixel %d = %d", i, v))
	}
}

func TestDecodeScaledOutputIsHalfSize(t *testing.T) {
	c := qt.New(t)
	data := encodeGray(c, 32, 16, 128, 100)

	pool := NewPool(make([]byte, ConvenientPoolSize))
	dec := New()
	err := dec.Prepare(data, pool, TierLUT)
	c.Assert(err, qt.IsNil)

	mcuBuf := make([]int16, dec.MCUBufferSize())
	workBuf := make([]byte, dec.WorkBufferSize())

	var tiles int
	sink := func(d *Decoder, pixels []byte, rect *Rectangle) (bool, error) {
		tiles++
		return true, nil
	}
	err = dec.Decompress(data, 1, mcuBuf, workBuf, sink)
	c.Assert(err, qt.IsNil)
	c.Assert(dec.Width(), qt.Equals, uint16(16))
	c.Assert(dec.Height(), qt.Equals, uint16(8))
	c.Assert(tiles > 0, qt.IsTrue)
}

func TestPrepareRejectsBadSOI(t *testing.T) {
	c := qt.New(t)
	pool := NewPool(make([]byte, ConvenientPoolSize))
	dec := New()
	err := dec.Prepare([]byte{0x00, 0x01, 0x02}, pool, TierRegister)
	c.Assert(err, qt.Not(qt.IsNil))
	var fe FormatError
	c.Assert(err, qt.ErrorAs, &fe)
}

func TestDecompressRejectsOversizedScale(t *testing.T) {
	c := qt.New(t)
	data := encodeGray(c, 8, 8, 50, 100)
	pool := NewPool(make([]byte, ConvenientPoolSize))
	dec := New()
	c.Assert(dec.Prepare(data, pool, TierMinimum), qt.IsNil)

	mcuBuf := make([]int16, dec.MCUBufferSize())
	workBuf := make([]byte, dec.WorkBufferSize())
	err := dec.Decompress(data, 4, mcuBuf, workBuf, func(*Decoder, []byte, *Rectangle) (bool, error) {
		return true, nil
	})
	var pe ParameterError
	c.Assert(err, qt.ErrorAs, &pe)
}
