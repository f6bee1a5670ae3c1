// Package tjpegepd drives a Waveshare 2.66in three-color e-paper panel
// (152x296, red/black/white) as a tjpeg.OutputFunc sink: each decoded MCU
// tile is thresholded into the panel's two 1-bpp planes as it arrives, and
// the panel is flushed once decoding completes.
//
// Adapted from the tinygo.org/x/drivers epd2in66b driver: the SPI
// command/register sequencing is unchanged, but SetPixel's color.RGBA
// input is replaced by a direct RGB888/gray byte sink wired to tjpeg's
// per-tile callback instead of a generic image/draw target.
package tjpegepd

import (
	"machine"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tjpeg"
)

const (
	width  = 152
	height = 296

	rstPin  = 12
	dcPin   = 8
	csPin   = 9
	busyPin = 13
)

const Baudrate = 4 * machine.MHz

type Config struct {
	ResetPin      machine.Pin
	DataPin       machine.Pin
	ChipSelectPin machine.Pin
	BusyPin       machine.Pin
}

// Device is a Waveshare 2.66in e-paper panel. The zero value is not
// usable; construct one with New.
type Device struct {
	bus  drivers.SPI
	cs   machine.Pin
	dc   machine.Pin
	rst  machine.Pin
	busy machine.Pin

	width  int16
	height int16

	blackBuffer []byte
	redBuffer   []byte
}

// New allocates a new device. bus is expected to be configured and ready
// for use at Baudrate.
func New(bus drivers.SPI) Device {
	pixelCount := width * height
	bufLen := pixelCount / 8

	return Device{
		bus:    bus,
		cs:     csPin,
		dc:     dcPin,
		rst:    rstPin,
		busy:   busyPin,
		height: height,
		width:  width,

		blackBuffer: make([]byte, bufLen),
		redBuffer:   make([]byte, bufLen),
	}
}

// Configure configures the device and its pins. The zero Config falls back
// to the defaults (GP8/GP9/GP12/GP13).
func (d *Device) Configure(c Config) error {
	if c.ChipSelectPin > 0 {
		d.cs = c.ChipSelectPin
	}
	if c.DataPin > 0 {
		d.dc = c.DataPin
	}
	if c.ResetPin > 0 {
		d.rst = c.ResetPin
	}
	if c.BusyPin > 0 {
		d.busy = c.BusyPin
	}

	d.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.busy.Configure(machine.PinConfig{Mode: machine.PinInput})

	return nil
}

func (d *Device) Size() (x, y int16) { return d.width, d.height }

func set(buf []byte, bytePos, bitPos int, v bool) {
	if v {
		buf[bytePos] |= 0x1 << bitPos
	} else {
		buf[bytePos] &^= 0x1 << bitPos
	}
}

func pos(x, y, stride int16) (bytePos int, bitPos int) {
	p := int(x) + int(y)*int(stride)
	bytePos = p / 8
	bitPos = 7 - p%8
	return bytePos, bitPos
}

// setMono thresholds one decoded pixel into the panel's black and red
// planes: near-white sets white, red-dominant sets red, everything else
// prints black. This replaces SetPixel's color.RGBA input with the raw
// sample tjpeg's sink hands us, since the panel has no grayscale plane.
func (d *Device) setMono(x, y int16, r, g, b byte) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	bytePos, bitPos := pos(x, y, d.width)

	switch {
	case r > 200 && g > 200 && b > 200:
		set(d.blackBuffer, bytePos, bitPos, true)
		set(d.redBuffer, bytePos, bitPos, false)
	case int(r) > int(g)+40 && int(r) > int(b)+40:
		set(d.blackBuffer, bytePos, bitPos, true)
		set(d.redBuffer, bytePos, bitPos, true)
	default:
		set(d.blackBuffer, bytePos, bitPos, false)
		set(d.redBuffer, bytePos, bitPos, false)
	}
}

// Sink adapts d into a tjpeg.OutputFunc: every decoded tile is thresholded
// into the panel's framebuffer in place, and Display is pushed out only
// after the caller is done decoding (see Flush). Sink never interrupts
// decoding on its own; a full frame larger than the panel is simply
// clipped at the panel's edges.
func (d *Device) Sink() tjpeg.OutputFunc {
	return func(dec *tjpeg.Decoder, pixels []byte, rect *tjpeg.Rectangle) (bool, error) {
		gray := dec.Components() == 1
		bpp := 3
		if gray {
			bpp = 1
		}
		w := int(rect.Width())
		for row := 0; row < int(rect.Height()); row++ {
			for col := 0; col < w; col++ {
				off := (row*w + col) * bpp
				var r, g, b byte
				if gray {
					r, g, b = pixels[off], pixels[off], pixels[off]
				} else {
					r, g, b = pixels[off], pixels[off+1], pixels[off+2]
				}
				d.setMono(int16(rect.Left)+int16(col), int16(rect.Top)+int16(row), r, g, b)
			}
		}
		return true, nil
	}
}

// Flush pushes the accumulated framebuffer to the panel.
func (d *Device) Flush() error { return d.Display() }

func (d *Device) Display() error {
	if err := d.sendCommandByte(0x24); err != nil {
		return err
	}
	if err := d.sendData(d.blackBuffer); err != nil {
		return err
	}
	if err := d.sendCommandByte(0x26); err != nil {
		return err
	}
	if err := d.sendData(d.redBuffer); err != nil {
		return err
	}
	return d.turnOnDisplay()
}

func (d *Device) ClearBuffer() {
	fill(d.redBuffer, 0x00)
	fill(d.blackBuffer, 0xff)
}

func (d *Device) turnOnDisplay() error {
	if err := d.sendCommandByte(0x20); err != nil {
		return err
	}
	d.WaitUntilIdle()
	return nil
}

func (d *Device) Reset() error {
	d.hwReset()
	d.WaitUntilIdle()

	if err := d.sendCommandByte(0x12); err != nil {
		return err
	}
	d.WaitUntilIdle()

	if err := d.sendCommandSequence([]byte{0x11, 0x03}); err != nil {
		return err
	}
	if err := d.setWindow(0, d.width-1, 0, d.height-1); err != nil {
		return err
	}
	if err := d.sendCommandSequence([]byte{0x21, 0x00, 0x80}); err != nil {
		return err
	}
	if err := d.setCursor(0, 0); err != nil {
		return err
	}
	d.WaitUntilIdle()
	return nil
}

func (d *Device) setCursor(x, y uint16) error {
	if err := d.sendCommandSequence([]byte{0x4e, byte(x & 0x1f)}); err != nil {
		return err
	}
	yLo := byte(y)
	yHi := byte(y>>8) & 0x1
	return d.sendCommandSequence([]byte{0x4f, yLo, yHi})
}

func (d *Device) hwReset() {
	d.rst.High()
	time.Sleep(50 * time.Millisecond)
	d.rst.Low()
	time.Sleep(2 * time.Millisecond)
	d.rst.High()
	time.Sleep(50 * time.Millisecond)
}

func (d *Device) setWindow(xstart, xend, ystart, yend int16) error {
	d1 := byte((xstart >> 3) & 0x1f)
	d2 := byte((xend >> 3) & 0x1f)
	if err := d.sendCommandSequence([]byte{0x44, d1, d2}); err != nil {
		return err
	}
	ystartLo := byte(ystart)
	ystartHi := byte(ystart>>8) & 0x1
	yendLo := byte(yend)
	yendHi := byte(yend>>8) & 0x1
	return d.sendCommandSequence([]byte{0x45, ystartLo, ystartHi, yendLo, yendHi})
}

func (d *Device) WaitUntilIdle() {
	time.Sleep(50 * time.Millisecond)
	for d.busy.Get() {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
}

func (d *Device) sendCommandSequence(seq []byte) error {
	if err := d.sendCommandByte(seq[0]); err != nil {
		return err
	}
	for i := 1; i < len(seq); i++ {
		if err := d.sendDataByte(seq[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) sendCommandByte(b byte) error {
	d.dc.Low()
	d.cs.Low()
	_, err := d.bus.Transfer(b)
	d.cs.High()
	return err
}

func (d *Device) sendDataByte(b byte) error {
	d.dc.High()
	d.cs.Low()
	_, err := d.bus.Transfer(b)
	d.cs.High()
	return err
}

func (d *Device) sendData(b []byte) error {
	d.dc.High()
	d.cs.Low()
	err := d.bus.Tx(b, nil)
	d.cs.High()
	return err
}

func fill(s []byte, b byte) {
	s[0] = b
	for j := 1; j < len(s); j *= 2 {
		copy(s[j:], s[:j])
	}
}
