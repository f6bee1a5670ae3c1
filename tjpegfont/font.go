// Package tjpegfont overlays a decoded image's dimensions and component
// count as a short text label on a tinygo display, using the same font
// rendering the driver corpus uses to label device output.
//
// Built on tinygo.org/x/tinyfont and tinygo.org/x/drivers.
package tjpegfont

import (
	"image/color"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tjpeg"
)

// Overlay draws "WxH 1c"/"WxH 3c" (scaled output size and component count)
// at (x, y) on display once a decoder's header has been parsed. Call it
// after Prepare and before Decompress, or any time after, since it only
// reads geometry.
func Overlay(display drivers.Displayer, d *tjpeg.Decoder, x, y int16, fg color.RGBA) {
	label := strconv.Itoa(int(d.Width())) + "x" + strconv.Itoa(int(d.Height()))
	if d.Components() == 1 {
		label += " 1c"
	} else {
		label += " 3c"
	}
	tinyfont.WriteLine(display, &tinyfont.Org01, x, y, label, fg)
}
