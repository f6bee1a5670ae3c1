// Package tjpegled drives a WS2812/SK6812 addressable LED strip as a
// tjpeg.OutputFunc sink that previews a decoding JPEG as a scrolling strip
// of averaged tile colors -- useful on boards with no display but an LED
// strip, to get a visual heartbeat out of a decode loop.
//
// Adapted from tinygo.org/x/drivers/ws2812: Device and its Write/WriteColors
// methods are unchanged (WriteByte is supplied by an architecture-specific
// file in the real driver, not reproduced here), but the package now also
// exposes a Sink that feeds WriteColors directly from decoded tiles instead
// of requiring the caller to build a []color.RGBA themselves.
package tjpegled

import (
	"errors"
	"image/color"
	"machine"

	"tinygo.org/x/tjpeg"
)

var errUnknownClockSpeed = errors.New("tjpegled: unknown CPU clock speed")

type deviceType uint8

const (
	WS2812 deviceType = iota
	SK6812
)

// Device wraps a pin object for an easy driver interface.
type Device struct {
	Pin        machine.Pin
	deviceType deviceType
}

// NewWS2812 returns a new WS2812(RGB) driver. It does not touch the pin
// object: configure it as an output pin before calling NewWS2812.
func NewWS2812(pin machine.Pin) Device {
	return Device{Pin: pin, deviceType: WS2812}
}

// NewSK6812 returns a new SK6812(RGBA) driver.
func NewSK6812(pin machine.Pin) Device {
	return Device{Pin: pin, deviceType: SK6812}
}

// Write the raw bitstring out using the WS2812 protocol.
func (d Device) Write(buf []byte) (n int, err error) {
	for _, c := range buf {
		d.WriteByte(c)
	}
	return len(buf), nil
}

// WriteColors writes the given color slice out using the WS2812 protocol,
// in the usual GRB(A) wire order.
func (d Device) WriteColors(buf []color.RGBA) (err error) {
	switch d.deviceType {
	case WS2812:
		err = d.writeColorsRGB(buf)
	case SK6812:
		err = d.writeColorsRGBA(buf)
	}
	return
}

func (d Device) writeColorsRGB(buf []color.RGBA) (err error) {
	for _, c := range buf {
		d.WriteByte(c.G)
		d.WriteByte(c.R)
		err = d.WriteByte(c.B)
	}
	return
}

func (d Device) writeColorsRGBA(buf []color.RGBA) (err error) {
	for _, c := range buf {
		d.WriteByte(c.G)
		d.WriteByte(c.R)
		d.WriteByte(c.B)
		err = d.WriteByte(c.A)
	}
	return
}

// Sink returns a tjpeg.OutputFunc that averages each decoded tile down to
// a single color and shifts it onto a strip of n pixels, most-recent tile
// first, repainting the whole strip on every MCU. It never asks to stop;
// an error from WriteColors aborts decoding.
func (d Device) Sink(n int) tjpeg.OutputFunc {
	strip := make([]color.RGBA, n)
	return func(dec *tjpeg.Decoder, pixels []byte, rect *tjpeg.Rectangle) (bool, error) {
		gray := dec.Components() == 1
		bpp := 3
		if gray {
			bpp = 1
		}
		var sumR, sumG, sumB, count int
		for off := 0; off+bpp <= len(pixels); off += bpp {
			if gray {
				sumR += int(pixels[off])
				sumG += int(pixels[off])
				sumB += int(pixels[off])
			} else {
				sumR += int(pixels[off])
				sumG += int(pixels[off+1])
				sumB += int(pixels[off+2])
			}
			count++
		}
		if count == 0 {
			return true, nil
		}
		avg := color.RGBA{
			R: byte(sumR / count),
			G: byte(sumG / count),
			B: byte(sumB / count),
			A: 255,
		}
		copy(strip[1:], strip[:len(strip)-1])
		strip[0] = avg
		return true, d.WriteColors(strip)
	}
}
