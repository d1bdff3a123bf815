// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// https://hallard.me/adafruit-oled-display-driver-for-pi/
//
// https://learn.adafruit.com/ssd1306-oled-displays-with-raspberry-pi-and-beaglebone-black?view=all

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_COMSCANINC          = 0xC0
	_DEACTIVATE_SCROLL   = 0x2E
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SEGREMAP            = 0xA0
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

// FrameRate determines scrolling speed.
type FrameRate byte

// Possible frame rates. The value determines the number of refreshes between
// movement. The lower value, the higher speed.
const (
	FrameRate2   FrameRate = 7
	FrameRate3   FrameRate = 4
	FrameRate4   FrameRate = 5
	FrameRate5   FrameRate = 0
	FrameRate25  FrameRate = 6
	FrameRate64  FrameRate = 1
	FrameRate128 FrameRate = 2
	FrameRate256 FrameRate = 3
)

// Orientation is used for scrolling.
type Orientation byte

// Possible orientations for scrolling.
const (
	Left    Orientation = 0x27
	Right   Orientation = 0x26
	UpRight Orientation = 0x29
	UpLeft  Orientation = 0x2A
)

// DefaultOpts is the recommended default options for the 128x32 I²C panel.
var DefaultOpts = Opts{
	W:          128,
	H:          32,
	Sequential: true,
	Addr:       0x3C,
	Frequency:  400 * physic.KiloHertz,
	MaxChunk:   32,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// Sequential corresponds to the Sequential/Alternative COM pin configuration
	// in the OLED panel hardware. Try toggling this if half the rows appear to be
	// missing on your display. Particularly on 32 pixel height displays.
	Sequential bool
	// MirrorVertical corresponds to the COM remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped vertically. Set
	// both mirrors to rotate by 180°.
	MirrorVertical bool
	// MirrorHorizontal corresponds to the SEG remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped horizontally.
	MirrorHorizontal bool
	// SwapTopBottom corresponds to the Left/Right remap COM pin configuration in
	// the OLED panel hardware. Try toggling this if the top and bottom halves of
	// your display are swapped.
	SwapTopBottom bool
	// The I2C address of the display.
	Addr uint16
	// Frequency is the I²C bus clock set once by NewI2C. Leave to 0 to keep
	// the bus as configured by the platform.
	Frequency physic.Frequency
	// MaxChunk is the maximum number of frame bytes per data transaction,
	// excluding the I²C control byte. 0 means no limit beyond what the bus
	// reports through conn.Limits. Command sequences are not affected.
	MaxChunk int
}

func (o *Opts) validate() error {
	if o.W < 8 || o.W > 128 || o.W&7 != 0 {
		return fmt.Errorf("ssd1306: invalid width %d", o.W)
	}
	if o.H < 8 || o.H > 64 || o.H&7 != 0 {
		return fmt.Errorf("ssd1306: invalid height %d", o.H)
	}
	if o.MaxChunk < 0 {
		return fmt.Errorf("ssd1306: invalid MaxChunk %d", o.MaxChunk)
	}
	return nil
}

// NewSPI returns a Dev object that communicates over SPI to a SSD1306 display
// controller.
//
// The SSD1306 can operate at up to 3.3Mhz, which is much higher than I²C. This
// permits higher refresh rates.
//
// # Wiring
//
// Connect SDA to SPI_MOSI, SCK to SPI_CLK, CS to SPI_CS and D/C to dc.
//
// Only 4-wire SPI is supported, dc must be a valid pin.
//
// The RES (reset) pin can be used outside of this driver but is not supported
// natively. In case of external reset via the RES pin, this device drive must
// be reinstantiated.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("ssd1306: 3-wire SPI mode is not supported, dc must be a valid pin")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, err
	}
	c, err := p.Connect(3300*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return newDev(c, opts, true, dc, chunkSize(opts.MaxChunk, c, 0), chunkSize(0, c, 0))
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller.
//
// When opts.Frequency is set, the bus speed is configured first. The
// controller is then initialized and switched on.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts.Addr == 0x00 {
		opts.Addr = DefaultOpts.Addr
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	// Maximum clock speed is 1/2.5µs = 400KHz.
	if opts.Frequency != 0 {
		if err := b.SetSpeed(opts.Frequency); err != nil {
			return nil, fmt.Errorf("ssd1306: failed to set bus speed to %s: %w", opts.Frequency, err)
		}
	}
	// The control byte takes one byte of each transaction.
	return newDev(&i2c.Dev{Bus: b, Addr: opts.Addr}, opts, false, nil, chunkSize(opts.MaxChunk, b, 1), chunkSize(0, b, 1))
}

// Dev is an open handle to the display controller.
//
// It is not safe for concurrent use.
type Dev struct {
	// Communication
	c        conn.Conn
	dc       gpio.PinOut
	spi      bool
	chunk    int
	cmdChunk int

	// Display size controlled by the SSD1306.
	rect image.Rectangle
	// window is the addressing command sent before each frame.
	window []byte
	// size is the length of a frame in bytes; W*H/8.
	size int

	// Mutable
	// next is lazy initialized on first Draw(). Flush() skips this buffer.
	next   *image1bit.VerticalLSB
	tx     []byte
	halted bool
}

func (d *Dev) String() string {
	if d.spi {
		return fmt.Sprintf("ssd1306.Dev{%s, %s, %s}", d.c, d.dc, d.rect.Max)
	}
	return fmt.Sprintf("ssd1306.Dev{%s, %s}", d.c, d.rect.Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// ChunkSize returns the maximum number of frame bytes sent per data
// transaction. 0 means unlimited.
func (d *Dev) ChunkSize() int {
	return d.chunk
}

// Draw implements display.Drawer.
//
// It draws synchronously, once this function returns, the display is updated.
// It means that on slow bus (I²C), it may be preferable to defer Draw() calls
// to a background goroutine.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	var next []byte
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, image1bit encoding: fast path!
		next = img.Pix
	} else {
		// Double buffering.
		if d.next == nil {
			d.next = image1bit.NewVerticalLSB(d.rect)
		}
		next = d.next.Pix
		draw.Src.Draw(d.next, r, src, sp)
	}
	return d.Flush(next)
}

// Write writes a buffer of pixels to the display.
//
// It is the io.Writer version of Flush.
func (d *Dev) Write(pixels []byte) (int, error) {
	if err := d.Flush(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Flush sends a full frame to the display.
//
// The format is the one of image1bit.VerticalLSB.Pix: horizontal bands of 8
// pixels high, each byte representing 8 vertical pixels.
//
// The addressing window is sent first as a single command transaction, then
// the frame as ceil(len(pixels)/ChunkSize()) data transactions. On the first
// failure Flush stops and returns a *TransportError.
//
// Unlike an init-only addressing setup, the window is re-sent on every frame
// so the RAM pointer is back at column 0 of page 0 even after a partial frame.
func (d *Dev) Flush(pixels []byte) error {
	if len(pixels) != d.size {
		return fmt.Errorf("ssd1306: invalid pixel stream length; expected %d bytes, got %d bytes", d.size, len(pixels))
	}
	if err := d.sendCommand(d.window); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// Scroll scrolls an horizontal band.
//
// Only one scrolling operation can happen at a time.
//
// Both startLine and endLine must be multiples of 8.
//
// Use -1 for endLine to extend to the bottom of the display.
func (d *Dev) Scroll(o Orientation, rate FrameRate, startLine, endLine int) error {
	h := d.rect.Dy()
	if endLine == -1 {
		endLine = h
	}
	if startLine >= endLine {
		return fmt.Errorf("ssd1306: startLine (%d) must be lower than endLine (%d)", startLine, endLine)
	}
	if startLine&7 != 0 || startLine < 0 || startLine >= h {
		return fmt.Errorf("ssd1306: invalid startLine %d", startLine)
	}
	if endLine&7 != 0 || endLine < 0 || endLine > h {
		return fmt.Errorf("ssd1306: invalid endLine %d", endLine)
	}

	startPage := uint8(startLine / 8)
	endPage := uint8(endLine / 8)
	if o == Left || o == Right {
		// page 28
		// <op>, dummy, <start page>, <rate>,  <end page>, <dummy>, <dummy>, <ENABLE>
		return d.sendCommand([]byte{byte(o), 0x00, startPage, byte(rate), endPage - 1, 0x00, 0xFF, 0x2F})
	}
	// page 29
	// <op>, dummy, <start page>, <rate>,  <end page>, <offset>, <ENABLE>
	// page 30: 0xA3 permits to set rows for scroll area.
	return d.sendCommand([]byte{byte(o), 0x00, startPage, byte(rate), endPage - 1, 0x01, 0x2F})
}

// StopScroll stops any scrolling previously set.
//
// The RAM content is not affected, call Flush to repaint.
func (d *Dev) StopScroll() error {
	return d.sendCommand([]byte{_DEACTIVATE_SCROLL})
}

// SetContrast changes the screen contrast.
//
// Note: values other than 0xff do not seem useful...
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommand([]byte{_SETCONTRAST, level})
}

// SetDisplayStartLine causes the display to start from startLine, effectively
// scrolling the screen to that position.
//
// startLine must be between 0 and 63.
func (d *Dev) SetDisplayStartLine(startLine byte) error {
	if startLine > 63 {
		return fmt.Errorf("ssd1306: invalid startLine %d", startLine)
	}
	return d.sendCommand([]byte{_SETSTARTLINE | startLine})
}

// Halt turns off the display.
//
// Sending any other command afterward reenables the display.
func (d *Dev) Halt() error {
	d.halted = false
	err := d.sendCommand([]byte{_DISPLAYOFF})
	if err == nil {
		d.halted = true
	}
	return err
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	b := []byte{_NORMALDISPLAY}
	if blackOnWhite {
		b[0] = _INVERTDISPLAY
	}
	return d.sendCommand(b)
}

// newDev is the common initialization code that is independent of the
// communication protocol (I²C or SPI) being used.
func newDev(c conn.Conn, opts *Opts, usingSPI bool, dc gpio.PinOut, chunk, cmdChunk int) (*Dev, error) {
	nbPages := opts.H / 8
	pageSize := opts.W
	d := &Dev{
		c:        c,
		spi:      usingSPI,
		dc:       dc,
		chunk:    chunk,
		cmdChunk: cmdChunk,
		rect:     image.Rect(0, 0, opts.W, opts.H),
		window:   windowCmd(opts),
		size:     nbPages * pageSize,
	}
	// The window must fit one transaction, with room for the display on
	// command prepended after Halt.
	if cmdChunk != 0 && cmdChunk < len(d.window)+1 {
		return nil, fmt.Errorf("ssd1306: bus transactions of %d bytes are too small", cmdChunk)
	}
	if chunk > 0 {
		d.tx = make([]byte, 0, chunk+1)
	}
	if err := d.sendCommand(initCmd(opts)); err != nil {
		return nil, err
	}
	return d, nil
}

// initCmd returns the full reset sequence. It ends with the addressing setup
// and display on.
func initCmd(opts *Opts) []byte {
	// Set COM output scan direction; C0 means normal; C8 means reversed
	comScan := byte(_COMSCANDEC)
	// See page 40.
	columnAddr := byte(_SETSEGMENTREMAP)

	if opts.MirrorVertical {
		comScan = byte(_COMSCANINC)
	}

	if opts.MirrorHorizontal {
		columnAddr = byte(_SEGREMAP)
	}
	// See page 40.
	hwLayout := byte(0x02)

	if !opts.Sequential {
		hwLayout |= 0x10
	}
	if opts.SwapTopBottom {
		hwLayout |= 0x20
	}

	// Set the max frequency. The problem with I²C is that it creates visible
	// tear down. On SPI at high speed this is not visible. Page 23 pictures how
	// to avoid tear down. For now default to max frequency.
	freq := byte(0xF0)

	// Initialize the device by fully resetting all values.
	// Page 64 has the full recommended flow.
	// Page 28 lists all the commands.
	return append([]byte{
		_DISPLAYOFF,             // Display off
		_SETDISPLAYOFFSET, 0x00, // Set display offset; 0
		_SETSTARTLINE,         // Start display start line; 0
		columnAddr,            // Set segment remap; RESET is column 127.
		comScan,               //
		_SETCOMPINS, hwLayout, // Set COM pins hardware configuration; see page 40
		_SETCONTRAST, 0xFF, // Set max contrast
		_DISPLAYALLON_RESUME,      // Set display to use GDDRAM content
		_NORMALDISPLAY,            // Set normal display (_INVERTDISPLAY for inverted 0=lit, 1=dark)
		_SETDISPLAYCLOCKDIV, freq, // Set osc frequency and divide ratio; power on reset value is 0x80.
		_CHARGEPUMP, 0x14, // Enable charge pump regulator; page 62
		_SETPRECHARGE, 0xF1, // Set pre-charge period; from adafruit driver
		_SETVCOMDETECT, 0x40, // Set Vcomh deselect level; page 32
		_DEACTIVATE_SCROLL,              // Deactivate scroll
		_SETMULTIPLEX, byte(opts.H - 1), // Set multiplex ratio (number of lines to display)
		_MEMORYMODE, 0x00, // Set memory addressing mode to horizontal
	}, append(windowCmd(opts),
		_DISPLAYON, // Display on
	)...)
}

// windowCmd sets the column and page range to the whole display, which also
// moves the RAM pointer to column 0 of page 0.
func windowCmd(opts *Opts) []byte {
	return []byte{
		_COLUMNADDR, 0, uint8(opts.W - 1), // Set column address (Width)
		_PAGEADDR, 0, uint8(opts.H/8 - 1), // Set page address (Pages)
	}
}

// chunkSize returns the payload size per transaction; the smaller of limit
// and what the connection reports through conn.Limits, minus overhead bytes.
func chunkSize(limit int, c interface{}, overhead int) int {
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize() - overhead; m > 0 && (limit == 0 || m < limit) {
			return m
		}
	}
	return limit
}

func (d *Dev) sendData(c []byte) error {
	if d.spi {
		// 4-wire SPI.
		if err := d.dc.Out(gpio.High); err != nil {
			return &TransportError{Op: "data", Err: err}
		}
	}
	return d.send(i2cData, "data", c, d.chunk)
}

func (d *Dev) sendCommand(c []byte) error {
	if d.halted {
		// Transparently enable the display.
		c = append([]byte{_DISPLAYON}, c...)
		d.halted = false
	}
	if d.spi {
		// 4-wire SPI.
		if err := d.dc.Out(gpio.Low); err != nil {
			return &TransportError{Op: "command", Err: err}
		}
	}
	return d.send(i2cCmd, "command", c, d.cmdChunk)
}

// send writes c in transactions of at most chunk payload bytes, 0 meaning a
// single transaction. On I²C each transaction is prefixed with the control
// byte.
func (d *Dev) send(control byte, op string, c []byte, chunk int) error {
	for offset := 0; offset < len(c); {
		end := len(c)
		if chunk > 0 && end-offset > chunk {
			end = offset + chunk
		}
		var err error
		if d.spi {
			err = d.c.Tx(c[offset:end], nil)
		} else {
			d.tx = append(append(d.tx[:0], control), c[offset:end]...)
			err = d.c.Tx(d.tx, nil)
		}
		if err != nil {
			return &TransportError{Op: op, Offset: offset, Err: err}
		}
		offset = end
	}
	return nil
}

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

var _ display.Drawer = &Dev{}
