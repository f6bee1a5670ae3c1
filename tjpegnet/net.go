// Package tjpegnet streams decoded JPEG tiles over a WebSocket connection,
// one binary frame per MCU, for a browser (or any other WebSocket client)
// to render progressively as they arrive.
//
// Built on golang.org/x/net/websocket as tjpeg's one network-facing sink.
package tjpegnet

import (
	"encoding/binary"

	"golang.org/x/net/websocket"
	"tinygo.org/x/tjpeg"
)

// Sink returns a tjpeg.OutputFunc that writes each decoded tile to conn as
// one binary WebSocket message: an 8-byte header (left, top, width, height,
// each a big-endian uint16) followed by the tile's packed pixel bytes. A
// write error aborts decoding; Sink never asks to stop on its own.
func Sink(conn *websocket.Conn) tjpeg.OutputFunc {
	var hdr [8]byte
	return func(d *tjpeg.Decoder, pixels []byte, rect *tjpeg.Rectangle) (bool, error) {
		binary.BigEndian.PutUint16(hdr[0:2], rect.Left)
		binary.BigEndian.PutUint16(hdr[2:4], rect.Top)
		binary.BigEndian.PutUint16(hdr[4:6], rect.Width())
		binary.BigEndian.PutUint16(hdr[6:8], rect.Height())

		msg := make([]byte, 0, len(hdr)+len(pixels))
		msg = append(msg, hdr[:]...)
		msg = append(msg, pixels...)
		if err := websocket.Message.Send(conn, msg); err != nil {
			return false, err
		}
		return true, nil
	}
}
