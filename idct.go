package tjpeg

// blockIDCT performs the Arai-Agui-Nakajima fast inverse DCT on a
// dequantized, raster-ordered 8x8 block, first across columns then across
// rows, adding the 128-level shift during the row pass and descaling the
// result into 16-bit signed samples.
//
// The two even/odd butterflies are identical between the column and row
// passes except for the level shift added to v0 in the row pass; each is
// written out in full (rather than factored into a shared helper) to keep
// the variable names SSA-like on purpose: v3 is reassigned, not aliased,
// between the even and odd phases.
func blockIDCT(src *[64]int32, dst *[64]int16) {
	// Columns.
	for i := 0; i < 8; i++ {
		v0 := src[i+8*0]
		v1 := src[i+8*2]
		v2 := src[i+8*4]
		v3 := src[i+8*6]

		t10 := v0 + v2
		t12 := v0 - v2
		t11 := ((v1 - v3) * m13) >> 12
		v3 = v3 + v1
		t11 -= v3
		v0 = t10 + v3
		v3 = t10 - v3
		v1 = t11 + t12
		v2 = t12 - t11

		v4o := src[i+8*7]
		v5o := src[i+8*1]
		v6o := src[i+8*5]
		v7o := src[i+8*3]

		t10 = v5o - v4o
		t11 = v5o + v4o
		t12 = v6o - v7o
		v7 := v7o + v6o
		v5 := ((t11 - v7) * m13) >> 12
		v7 += t11
		t13 := ((t10 + t12) * m5) >> 12
		v4 := t13 - ((t10 * m2) >> 12)
		v6 := t13 - ((t12 * m4) >> 12) - v7
		v5 -= v6
		v4 -= v5

		src[i+8*0] = v0 + v7
		src[i+8*7] = v0 - v7
		src[i+8*1] = v1 + v6
		src[i+8*6] = v1 - v6
		src[i+8*2] = v2 + v5
		src[i+8*5] = v2 - v5
		src[i+8*3] = v3 + v4
		src[i+8*4] = v3 - v4
	}

	// Rows. v0 picks up the 128<<8 level shift here.
	for i := 0; i < 8; i++ {
		base := i * 8

		v0 := src[base+0] + (128 << 8)
		v1 := src[base+2]
		v2 := src[base+4]
		v3 := src[base+6]

		t10 := v0 + v2
		t12 := v0 - v2
		t11 := ((v1 - v3) * m13) >> 12
		v3 = v3 + v1
		t11 -= v3
		v0 = t10 + v3
		v3 = t10 - v3
		v1 = t11 + t12
		v2 = t12 - t11

		v4o := src[base+7]
		v5o := src[base+1]
		v6o := src[base+5]
		v7o := src[base+3]

		t10 = v5o - v4o
		t11 = v5o + v4o
		t12 = v6o - v7o
		v7 := v7o + v6o
		v5 := ((t11 - v7) * m13) >> 12
		v7 += t11
		t13 := ((t10 + t12) * m5) >> 12
		v4 := t13 - ((t10 * m2) >> 12)
		v6 := t13 - ((t12 * m4) >> 12) - v7
		v5 -= v6
		v4 -= v5

		dst[base+0] = int16((v0 + v7) >> 8)
		dst[base+7] = int16((v0 - v7) >> 8)
		dst[base+1] = int16((v1 + v6) >> 8)
		dst[base+6] = int16((v1 - v6) >> 8)
		dst[base+2] = int16((v2 + v5) >> 8)
		dst[base+5] = int16((v2 - v5) >> 8)
		dst[base+3] = int16((v3 + v4) >> 8)
		dst[base+4] = int16((v3 - v4) >> 8)
	}
}
