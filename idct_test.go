package tjpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBlockIDCTZeroIsFlatGray(t *testing.T) {
	c := qt.New(t)
	var src [64]int32
	var dst [64]int16
	blockIDCT(&src, &dst)
	for i, v := range dst {
		c.Assert(v, qt.Equals, int16(128), qt.Commentf("index %d", i))
	}
}

func TestBlockIDCTDCOnlyIsFlat(t *testing.T) {
	c := qt.New(t)
	var src [64]int32
	src[0] = 2048
	var dst [64]int16
	blockIDCT(&src, &dst)
	for i, v := range dst {
		c.Assert(v, qt.Equals, int16(136), qt.Commentf("index %d", i))
	}
}
