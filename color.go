package tjpeg

// ycbcrToRGB converts one YCbCr sample to RGB888 using the fixed-point
// coefficients in tables.go. cb and cr are expected already
// biased by -128.
func ycbcrToRGB(y, cb, cr int32) (r, g, b byte) {
	r = byteClip(y + (crToR*cr)/cvAcc)
	g = byteClip(y - (cbToG*cb+crToG*cr)/cvAcc)
	b = byteClip(y + (cbToB*cb)/cvAcc)
	return
}

// writeMCUColor fills dst (mcuPixelWidth*mcuPixelHeight*3 bytes, tightly
// packed RGB) from the decoded luma blocks plus one shared Cb/Cr block
// pair, upsampling chroma by nearest-neighbor integer division.
//
// y holds blocksWide*blocksHigh 64-sample blocks back to back in raster
// block order; cb and cr each hold exactly one 64-sample block.
func writeMCUColor(dst []byte, y, cb, cr []int16, blocksWide, blocksHigh, h, v int) {
	mcuPixelWidth := blocksWide * 8
	for by := 0; by < blocksHigh; by++ {
		for py := 0; py < 8; py++ {
			absY := by*8 + py
			for bx := 0; bx < blocksWide; bx++ {
				yBlock := y[(by*blocksWide+bx)*64 : (by*blocksWide+bx)*64+64]
				for px := 0; px < 8; px++ {
					absX := bx*8 + px
					yy := int32(yBlock[py*8+px])

					cIdx := (absY/v)*8 + absX/h
					cbv := int32(cb[cIdx]) - 128
					crv := int32(cr[cIdx]) - 128

					r, g, b := ycbcrToRGB(yy, cbv, crv)
					o := (absY*mcuPixelWidth + absX) * 3
					dst[o] = r
					dst[o+1] = g
					dst[o+2] = b
				}
			}
		}
	}
}

// writeMCUGray fills dst (mcuPixelWidth*mcuPixelHeight bytes) with clipped
// luma samples for single-component (grayscale) images. Grayscale images
// always have exactly one 8x8 block per MCU (blocksWide==blocksHigh==1).
func writeMCUGray(dst []byte, y []int16) {
	for i, v := range y {
		dst[i] = byteClip(int32(v))
	}
}
