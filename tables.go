package tjpeg

// zigzag maps zigzag scan order to raster (row-major) order within an 8x8
// block. Grounded on _examples/original_source/src/tables.rs ZIGZAG, itself
// the standard JPEG Annex A table.
var zigzag = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// araiScaleFactor holds the Arai-Agui-Nakajima pre-scale constants (16-bit
// fixed point), laid out in raster order and looked up with the raster
// index a zigzag position maps to. Folding these into the
// quantization table at load time turns per-coefficient dequantization into
// a single indexed multiply.
var araiScaleFactor = [64]uint16{
	8192, 11363, 10703, 9633, 8192, 6436, 4433, 2260,
	11363, 15746, 14852, 13363, 11363, 8930, 6149, 3135,
	10703, 14852, 13983, 12583, 10703, 8410, 5793, 2953,
	9633, 13363, 12583, 11327, 9633, 7568, 5212, 2657,
	8192, 11363, 10703, 9633, 8192, 6436, 4433, 2260,
	6436, 8930, 8410, 7568, 6436, 5057, 3484, 1776,
	4433, 6149, 5793, 5212, 4433, 3484, 2400, 1224,
	2260, 3135, 2953, 2657, 2260, 1776, 1224, 623,
}

// clipTable is a 1024-entry saturation table: val&0x3FF indexes straight to
// the clipped byte, avoiding a branch in the color-conversion hot path.
// Index ranges: [0,256) identity, [256,512) saturate to 255, [512,1024)
// saturate to 0 (negative values that wrapped around the 10-bit mask).
var clipTable = func() [1024]byte {
	var t [1024]byte
	for i := 0; i < 256; i++ {
		t[i] = byte(i)
	}
	for i := 256; i < 512; i++ {
		t[i] = 255
	}
	for i := 512; i < 1024; i++ {
		t[i] = 0
	}
	return t
}()

// byteClip saturates val to [0,255] via clipTable.
func byteClip(val int32) byte {
	return clipTable[uint32(val)&0x3FF]
}

// Fixed-point IDCT rotation constants, 12-bit fractional (scaled by 4096
// and rounded to the nearest integer), from the Arai-Agui-Nakajima fast
// IDCT. A reference implementation this was ported from truncates an
// approximate sqrt(2) constant instead and lands on 5792 for m13; this
// decoder rounds instead, landing on 5793 (see DESIGN.md).
const (
	m13 = 5793  // round(sqrt(2) * 4096)
	m2  = 4433  // round(1.08239 * 4096)
	m4  = 10703 // round(2.61313 * 4096)
	m5  = 7568  // round(1.84776 * 4096)
)

// YCbCr->RGB fixed-point coefficients, scaled by cvAcc and rounded to the
// nearest integer.
const (
	cvAcc = 1024
	crToR = 1436 // round(1.402 * cvAcc)
	cbToG = 352  // round(0.344 * cvAcc)
	crToG = 731  // round(0.714 * cvAcc)
	cbToB = 1815 // round(1.772 * cvAcc)
)
