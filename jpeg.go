// Package tjpeg implements a baseline JPEG decoder for embedded and
// memory-constrained targets. The decoder performs header parsing, Huffman
// decoding, dequantization, inverse DCT, YCbCr->RGB conversion, and
// MCU-level output tiling without any dynamic allocation beyond a single
// caller-supplied workspace Pool: every interior table (Huffman codes,
// quantization coefficients, LUT accelerators) is bump-allocated from that
// pool, and decoded pixel tiles are streamed to a caller-supplied sink
// rather than assembled into a whole-image buffer.
//
// Ported from the tjpgd lineage (ChaN's TJpgDec), following the same
// leaf-to-root structure as the original C/Rust implementations: Pool,
// constant tables, bit stream, Huffman table, IDCT/color, header parser,
// MCU engine, and this facade.
package tjpeg

// Rectangle is a closed-interval tile in output-pixel (i.e. post-scale)
// coordinates.
type Rectangle struct {
	Left, Right, Top, Bottom uint16
}

// Width returns the rectangle's width in pixels.
func (r Rectangle) Width() uint16 { return r.Right - r.Left + 1 }

// Height returns the rectangle's height in pixels.
func (r Rectangle) Height() uint16 { return r.Bottom - r.Top + 1 }

// OutputFunc is invoked once per decoded MCU whose scaled tile, clipped to
// the image bounds, is not empty. pixels is RGB888 (or
// grayscale, one byte per pixel) and tightly packed to rect's dimensions;
// returning false stops decoding (Decompress then returns ErrInterrupted);
// returning a non-nil error aborts decoding and is propagated unchanged
// from Decompress.
type OutputFunc func(d *Decoder, pixels []byte, rect *Rectangle) (bool, error)

// Decoder holds frame geometry, table references into a workspace Pool,
// and the small amount of inter-MCU state (DC predictors, output scale)
// that Decompress mutates. The zero value is a valid, unprepared decoder:
// Width, Height, and Components all report zero until Prepare succeeds.
//
// A Decoder's table references are only valid for as long as the Pool
// passed to Prepare is alive; Decompress may be called any number of times
// against the same Decoder/Pool pair with varying scale factors.
type Decoder struct {
	rawWidth, rawHeight uint16
	numComponents       int
	sampling            samplingFactor

	huffDC, huffAC [2]*huffmanTable
	quant          [4][]int32
	qtableIDs      [3]uint8

	restartInterval uint16
	sosPos          int
	tier            Tier
	scale           uint8

	dcPred [3]int16
}

// New returns an empty, unprepared decoder.
func New() *Decoder {
	return &Decoder{}
}

// RawWidth returns the image width in pixels, ignoring output scale.
func (d *Decoder) RawWidth() uint16 { return d.rawWidth }

// RawHeight returns the image height in pixels, ignoring output scale.
func (d *Decoder) RawHeight() uint16 { return d.rawHeight }

// Width returns the current scaled output width: rawWidth >> scale, where
// scale is whatever was last passed to Decompress (0 before the first
// call).
func (d *Decoder) Width() uint16 { return d.rawWidth >> d.scale }

// Height returns the current scaled output height.
func (d *Decoder) Height() uint16 { return d.rawHeight >> d.scale }

// Components returns 1 (grayscale) or 3 (YCbCr), or 0 before Prepare.
func (d *Decoder) Components() int { return d.numComponents }

// Tier returns the Huffman decode tier selected by the last Prepare call.
func (d *Decoder) Tier() Tier { return d.tier }

// mcuBlocksWide and mcuBlocksHigh report the MCU's dimensions in 8x8 luma
// blocks: 1x1, 2x1, or 2x2 depending on chroma subsampling.
func (d *Decoder) mcuBlocksWide() int { return d.sampling.blocksWide() }
func (d *Decoder) mcuBlocksHigh() int { return d.sampling.blocksHigh() }

// MCUBufferSize returns the number of int16 elements Decompress needs in
// its mcuBuf argument: (H*V + 2) blocks of 64 samples each -- H*V luma
// blocks, one Cb, one Cr, and two spare blocks of headroom.
func (d *Decoder) MCUBufferSize() int {
	n := d.mcuBlocksWide()*d.mcuBlocksHigh() + 2
	return n * 64
}

// WorkBufferSize returns the number of bytes Decompress needs in its
// workBuf argument: one tile of H*8 x V*8 pixels, RGB888 for color images
// or one byte per pixel for grayscale.
func (d *Decoder) WorkBufferSize() int {
	pixels := d.mcuBlocksWide() * 8 * d.mcuBlocksHigh() * 8
	if d.numComponents == 3 {
		return pixels * 3
	}
	return pixels
}
