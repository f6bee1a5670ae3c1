// Package tjpegterm wraps a tjpeg.OutputFunc so every MCU tile also prints
// a one-line progress message to a tinyterm text console -- for boards
// that have a small character display but no framebuffer worth drawing
// decoded pixels onto.
//
// Built on tinygo.org/x/tinyterm.
package tjpegterm

import (
	"fmt"

	"tinygo.org/x/tinyterm"
	"tinygo.org/x/tjpeg"
)

// ProgressSink wraps next (which may be nil) and prints "MCU row,col" to
// term before forwarding every tile to next. If next is nil, ProgressSink
// only prints and always continues decoding.
func ProgressSink(term *tinyterm.Terminal, next tjpeg.OutputFunc) tjpeg.OutputFunc {
	return func(d *tjpeg.Decoder, pixels []byte, rect *tjpeg.Rectangle) (bool, error) {
		fmt.Fprintf(term, "MCU %d,%d\n", rect.Top/8, rect.Left/8)
		if next == nil {
			return true, nil
		}
		return next(d, pixels, rect)
	}
}
