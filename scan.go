package tjpeg

// maxScale is the largest output-scale shift Decompress accepts: an 8x8
// luma block cannot be decimated past a single pixel.
const maxScale = 3

// extend sign-extends a JPEG Huffman-coded DC/AC magnitude: category bits
// were read as an unsigned value, and a leading zero bit means the true
// value is negative (ITU-T T.81 Annex F.2.2.1).
func extend(v uint16, category uint8) int32 {
	if category == 0 {
		return 0
	}
	vt := int32(1) << (category - 1)
	val := int32(v)
	if val < vt {
		return val - (int32(1)<<category - 1)
	}
	return val
}

// decodeBlock reads one entropy-coded 8x8 block for component comp (0 =
// first/luma component, 1/2 = chroma), dequantizes it, and writes the
// spatial-domain result into dst.
func (d *Decoder) decodeBlock(bits *bitStream, comp int, dst []int16) error {
	tableID := 0
	if comp != 0 {
		tableID = 1
	}
	quant := d.quant[d.qtableIDs[comp]]

	var coeffs [64]int32

	dcCat, err := d.huffDC[tableID].decode(bits, d.tier)
	if err != nil {
		return err
	}
	if dcCat > 11 {
		return FormatError("DC category out of range")
	}
	diffBits, err := bits.readBits(uint(dcCat))
	if err != nil {
		return err
	}
	d.dcPred[comp] += int16(extend(diffBits, dcCat))
	coeffs[0] = (int32(d.dcPred[comp]) * quant[0]) >> 8

	k := 1
	for k < 64 {
		rs, err := d.huffAC[tableID].decode(bits, d.tier)
		if err != nil {
			return err
		}
		run := int(rs >> 4)
		size := rs & 0x0F

		if size == 0 {
			if run == 15 {
				k += 16 // ZRL: 16 zero coefficients, not EOB.
				continue
			}
			break // EOB.
		}
		k += run
		if k >= 64 {
			return FormatError("AC run overshoots block")
		}

		acBits, err := bits.readBits(uint(size))
		if err != nil {
			return err
		}
		raster := zigzag[k]
		coeffs[raster] = (extend(acBits, size) * quant[raster]) >> 8
		k++
	}

	blockIDCT(&coeffs, (*[64]int16)(dst))
	return nil
}

// Decompress decodes the entropy-coded scan following a successful Prepare
// call, streaming RGB888 (or grayscale) pixel tiles to sink one MCU at a
// time. scale (0..3) decimates the output by a power of two in each
// dimension by sampling every 2^scale-th pixel across the whole tile,
// rather than a simple top-left crop.
//
// mcuBuf must be at least MCUBufferSize() int16s and workBuf at least
// WorkBufferSize() bytes; both may be reused across calls and across
// decoders sharing the same geometry.
func (d *Decoder) Decompress(data []byte, scale uint8, mcuBuf []int16, workBuf []byte, sink OutputFunc) error {
	if scale > maxScale {
		return ParameterError("scale exceeds maxScale")
	}
	if d.numComponents == 0 {
		return ParameterError("Decompress called before a successful Prepare")
	}
	if len(mcuBuf) < d.MCUBufferSize() {
		return ErrInsufficientMemory
	}
	if len(workBuf) < d.WorkBufferSize() {
		return ErrInsufficientMemory
	}
	if d.sosPos > len(data) {
		return InputError("entropy data offset past end of input")
	}

	d.scale = scale
	d.dcPred = [3]int16{}

	blocksWide := d.mcuBlocksWide()
	blocksHigh := d.mcuBlocksHigh()
	numLuma := blocksWide * blocksHigh
	cbBlock := mcuBuf[numLuma*64 : numLuma*64+64]
	crBlock := mcuBuf[numLuma*64+64 : numLuma*64+128]

	mcuPixelW := blocksWide * 8
	mcuPixelH := blocksHigh * 8
	mcusWide := (int(d.rawWidth) + mcuPixelW - 1) / mcuPixelW
	mcusHigh := (int(d.rawHeight) + mcuPixelH - 1) / mcuPixelH

	bits := newBitStream(data[d.sosPos:])
	sinceRestart := 0

	for my := 0; my < mcusHigh; my++ {
		for mx := 0; mx < mcusWide; mx++ {
			if d.numComponents == 1 {
				if err := d.decodeBlock(bits, 0, mcuBuf[:64]); err != nil {
					return err
				}
				writeMCUGray(workBuf, mcuBuf[:64])
			} else {
				for bi := 0; bi < numLuma; bi++ {
					if err := d.decodeBlock(bits, 0, mcuBuf[bi*64:bi*64+64]); err != nil {
						return err
					}
				}
				if err := d.decodeBlock(bits, 1, cbBlock); err != nil {
					return err
				}
				if err := d.decodeBlock(bits, 2, crBlock); err != nil {
					return err
				}
				writeMCUColor(workBuf, mcuBuf[:numLuma*64], cbBlock, crBlock,
					blocksWide, blocksHigh, blocksWide, blocksHigh)
			}

			cont, err := d.outputMCU(mx, my, mcuPixelW, mcuPixelH, workBuf, sink)
			if err != nil {
				return err
			}
			if !cont {
				return ErrInterrupted
			}

			sinceRestart++
			last := my == mcusHigh-1 && mx == mcusWide-1
			if d.restartInterval != 0 && sinceRestart == int(d.restartInterval) && !last {
				marker, err := bits.syncRestart()
				if err != nil {
					return err
				}
				if marker < markerRST0 || marker > markerRST7 {
					return FormatError("expected restart marker")
				}
				logf("tjpeg: restart marker 0x%02X at MCU (%d,%d)", marker, mx, my)
				d.dcPred = [3]int16{}
				sinceRestart = 0
			}
		}
	}
	return nil
}

// outputMCU decimates the just-rendered mcuPixelW x mcuPixelH tile in
// workBuf by 2^d.scale in place (the write cursor never runs ahead of the
// read cursor, so no extra buffer is needed), clips it against the
// decoder's scaled image bounds, and invokes sink.
func (d *Decoder) outputMCU(mx, my, mcuPixelW, mcuPixelH int, workBuf []byte, sink OutputFunc) (bool, error) {
	stride := 1 << d.scale
	bpp := 1
	if d.numComponents == 3 {
		bpp = 3
	}

	rawX0 := mx * mcuPixelW
	rawY0 := my * mcuPixelH
	outX0 := rawX0 / stride
	outY0 := rawY0 / stride

	outW := int(d.Width())
	outH := int(d.Height())
	tileW := mcuPixelW / stride
	tileH := mcuPixelH / stride
	if outX0+tileW > outW {
		tileW = outW - outX0
	}
	if outY0+tileH > outH {
		tileH = outH - outY0
	}
	if tileW <= 0 || tileH <= 0 {
		return true, nil
	}

	n := 0
	for oy := 0; oy < tileH; oy++ {
		srcRowOff := (oy * stride) * mcuPixelW * bpp
		for ox := 0; ox < tileW; ox++ {
			srcOff := srcRowOff + (ox*stride)*bpp
			copy(workBuf[n:n+bpp], workBuf[srcOff:srcOff+bpp])
			n += bpp
		}
	}

	rect := Rectangle{
		Left:   uint16(outX0),
		Right:  uint16(outX0 + tileW - 1),
		Top:    uint16(outY0),
		Bottom: uint16(outY0 + tileH - 1),
	}
	return sink(d, workBuf[:n], &rect)
}
