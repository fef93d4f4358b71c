// Package pcd8544 controls a PCD8544 (Nokia 5110/3310) LCD via bit-banged GPIO.
//
// The PCD8544 is a 84x48 monochrome controller. See doc.go for wiring and
// usage.
package pcd8544

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Instruction set. The controller switches between the basic and the
// extended set with a function set command (H bit).
const (
	cmdFunctionSet = 0x20 // Basic set, horizontal addressing, active
	cmdExtendedSet = 0x21 // Extended set (H=1)
	cmdPowerDown   = 0x24 // Function set with PD=1

	// Basic set
	cmdDisplayNormal  = 0x0C
	cmdDisplayInverse = 0x0D
	cmdSetY           = 0x40 // | byte-row 0-5
	cmdSetX           = 0x80 // | column 0-83

	// Extended set
	cmdTempCoeff = 0x04 // Temperature coefficient 0
	cmdBias      = 0x13 // Bias 1:48
	cmdSetVop    = 0x80 // | contrast 0-127
)

// Timing from the datasheet. The controller needs a settle time after power
// up and a long enough reset pulse.
const (
	powerUpDelay = 100 * time.Millisecond
	resetHold    = 100 * time.Millisecond

	// MaxClock is the highest serial clock the controller accepts.
	MaxClock = 4 * physic.MegaHertz
)

// MaxContrast is the highest Vop value.
const MaxContrast = 0x7F

var errHalted = errors.New("pcd8544: halted")

// Pins are the lines wired to the display. DIN, CLK, DC, CE and RST are
// required, LED (backlight) is optional.
type Pins struct {
	DIN gpio.PinOut // Serial data in
	CLK gpio.PinOut // Serial clock
	DC  gpio.PinOut // Data/Command select
	CE  gpio.PinOut // Chip enable, active low (sometimes labelled SCE or CS)
	RST gpio.PinOut // Reset, active low
	LED gpio.PinOut // Backlight (optional, nil if not used)
}

// Opts is the configuration for the display.
type Opts struct {
	// Contrast is the initial Vop (0-127).
	Contrast byte
	// Rotated sends the frame reversed for a display mounted upside down.
	Rotated bool
	// ClockHz is the serial clock rate (default and maximum MaxClock).
	ClockHz physic.Frequency
	// Lock guards each transmitted byte and the reset pulse. Use it to plug
	// in whatever keeps the line timing from being interrupted on the target;
	// nil uses an internal mutex.
	Lock sync.Locker
	// Font renders PutChar and Print (nil selects font6x8.Default).
	Font Font
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Contrast: 0x42,
	ClockHz:  MaxClock,
}

// Dev is an open handle to the display controller.
type Dev struct {
	// Communication
	bus *bus
	rst gpio.PinOut
	led gpio.PinOut

	sleep func(time.Duration)

	// Local copy of the display RAM, pushed by Update.
	fb      *Framebuffer
	rotated bool

	// State
	contrast byte
	halted   bool
}

// New resets and initializes a display wired to p, then clears it.
//
// opts can be nil to use DefaultOpts.
func New(p Pins, opts *Opts) (*Dev, error) {
	d, err := newDev(p, opts)
	if err != nil {
		return nil, err
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDev(p Pins, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if p.DIN == nil || p.CLK == nil || p.DC == nil || p.CE == nil || p.RST == nil {
		return nil, errors.New("pcd8544: DIN, CLK, DC, CE and RST pins are required")
	}
	if opts.Contrast > MaxContrast {
		return nil, fmt.Errorf("pcd8544: contrast %d out of range 0-%d", opts.Contrast, MaxContrast)
	}
	hz := opts.ClockHz
	if hz == 0 {
		hz = MaxClock
	}
	if hz < 0 || hz > MaxClock {
		return nil, fmt.Errorf("pcd8544: clock %s out of range, max %s", hz, MaxClock)
	}
	return &Dev{
		bus:      newBus(p, opts.Lock, hz, opts.Rotated),
		rst:      p.RST,
		led:      p.LED,
		sleep:    time.Sleep,
		fb:       NewFramebuffer(opts.Font),
		rotated:  opts.Rotated,
		contrast: opts.Contrast,
	}, nil
}

// init runs the power up sequence: idle lines, reset pulse, configuration
// through the extended instruction set and a blank frame.
func (d *Dev) init() error {
	b := d.bus
	idle := []struct {
		name string
		pin  gpio.PinOut
		l    gpio.Level
	}{
		{"CE", b.ce, gpio.High},
		{"DC", b.dc, gpio.Low},
		{"CLK", b.clk, gpio.Low},
		{"DIN", b.din, gpio.Low},
		{"RST", d.rst, gpio.High},
		{"LED", d.led, gpio.Low},
	}
	for _, p := range idle {
		if p.pin == nil {
			continue
		}
		if err := p.pin.Out(p.l); err != nil {
			return fmt.Errorf("pcd8544: failed to configure %s: %w", p.name, err)
		}
	}
	d.sleep(powerUpDelay)

	if err := d.reset(); err != nil {
		return err
	}

	if err := d.sendCommands(
		cmdExtendedSet,
		cmdSetVop|d.contrast,
		cmdTempCoeff,
		cmdBias,
		cmdFunctionSet,
		cmdDisplayNormal,
	); err != nil {
		return err
	}

	return d.Clear()
}

// reset pulses RST low with the chip enabled. The whole pulse is one critical
// section.
func (d *Dev) reset() (err error) {
	b := d.bus
	b.enter()
	defer b.leave()

	out := func(p gpio.PinOut, l gpio.Level) {
		if e := p.Out(l); e != nil && err == nil {
			err = fmt.Errorf("pcd8544: reset: %w", e)
		}
	}
	out(b.ce, gpio.Low)
	out(d.rst, gpio.Low)
	d.sleep(resetHold)
	out(d.rst, gpio.High)
	out(b.ce, gpio.High)
	return err
}

// sendCommands sends command bytes in order, stopping at the first failure.
func (d *Dev) sendCommands(cmds ...byte) error {
	for _, c := range cmds {
		if err := d.bus.writeCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// gotoXY moves the RAM address pointer to column x and byte-row y. The
// controller increments the column on every data byte.
func (d *Dev) gotoXY(x, y byte) error {
	return d.sendCommands(cmdSetX|x&0x7F, cmdSetY|y&0x07)
}

// SetVop sets the contrast (0-127).
//
// The controller only accepts Vop in the extended instruction set, so the
// basic set and normal display mode are restored afterwards.
func (d *Dev) SetVop(vop byte) error {
	if d.halted {
		return errHalted
	}
	if vop > MaxContrast {
		return fmt.Errorf("pcd8544: contrast %d out of range 0-%d", vop, MaxContrast)
	}
	if err := d.sendCommands(cmdExtendedSet, cmdSetVop|vop, cmdFunctionSet, cmdDisplayNormal); err != nil {
		return err
	}
	d.contrast = vop
	return nil
}

// Contrast returns the last Vop sent to the controller.
func (d *Dev) Contrast() byte {
	return d.contrast
}

// Update sends the whole framebuffer to the display.
//
// With Opts.Rotated the buffer is sent last byte first and each byte bit
// reversed, which turns the picture by 180° without a copy.
func (d *Dev) Update() error {
	if d.halted {
		return errHalted
	}
	return d.send(d.fb.Bytes())
}

// send writes a full frame of display RAM starting at the origin.
func (d *Dev) send(pix []byte) error {
	if err := d.gotoXY(0, 0); err != nil {
		return err
	}
	for i := range pix {
		v := pix[i]
		if d.rotated {
			v = pix[len(pix)-1-i]
		}
		if err := d.bus.writeData(v); err != nil {
			return err
		}
	}
	// Leave the address pointer at a known place for the next write.
	return d.gotoXY(0, 0)
}

// Clear clears the framebuffer and the display.
func (d *Dev) Clear() error {
	if d.halted {
		return errHalted
	}
	d.fb.ClearBuffer()
	return d.Update()
}

// Write sends raw display RAM content and, once sent, keeps it as the
// framebuffer. The data must be exactly BufferSize bytes in framebuffer
// layout.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != BufferSize {
		return 0, errors.New("pcd8544: invalid buffer size")
	}
	if err := d.send(pixels); err != nil {
		return 0, err
	}
	copy(d.fb.Bytes(), pixels)
	return len(pixels), nil
}

// Draw implements display.Drawer.
//
// src is drawn into the framebuffer, then the whole frame is sent. Pixels
// with a luminance of at least half are on.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	if dst.Intersect(d.fb.Bounds()).Empty() {
		return nil
	}
	draw.Draw(d.fb, dst, src, sp, draw.Src)
	return d.Update()
}

// Invert switches the display between inverse and normal video. The
// framebuffer is unchanged.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(cmdDisplayNormal)
	if invert {
		mode = cmdDisplayInverse
	}
	return d.sendCommands(mode)
}

// Backlight turns the LED pin on or off.
func (d *Dev) Backlight(on bool) error {
	if d.halted {
		return errHalted
	}
	if d.led == nil {
		return errors.New("pcd8544: no backlight pin")
	}
	if err := d.led.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("pcd8544: backlight: %w", err)
	}
	return nil
}

// Halt implements conn.Resource. It puts the controller in power down mode.
// RAM content is kept by the controller but the device must be recreated
// with New to be used again.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	var err error
	if d.led != nil {
		if e := d.led.Out(gpio.Low); e != nil {
			err = fmt.Errorf("pcd8544: backlight: %w", e)
		}
	}
	if e := d.bus.writeCommand(cmdPowerDown); e != nil && err == nil {
		err = e
	}
	return err
}

// Buffer returns the framebuffer. Changes are shown on the next Update.
func (d *Dev) Buffer() *Framebuffer {
	return d.fb
}

// ClearBuffer clears the framebuffer without touching the display.
func (d *Dev) ClearBuffer() { d.fb.ClearBuffer() }

// SetPixel turns on the pixel at (x, y) in the framebuffer.
func (d *Dev) SetPixel(x, y int) { d.fb.SetPixel(x, y) }

// ClearPixel turns off the pixel at (x, y) in the framebuffer.
func (d *Dev) ClearPixel(x, y int) { d.fb.ClearPixel(x, y) }

// PutChar renders one character into the framebuffer. See
// Framebuffer.PutChar.
func (d *Dev) PutChar(x, y int, code byte, attr Attr) { d.fb.PutChar(x, y, code, attr) }

// Print renders text into the framebuffer. See Framebuffer.Print.
func (d *Dev) Print(x, y int, text string, attr Attr) { d.fb.Print(x, y, text, attr) }

// PrintBytes renders raw character codes into the framebuffer. See
// Framebuffer.PrintBytes.
func (d *Dev) PrintBytes(x, y int, text []byte, attr Attr) { d.fb.PrintBytes(x, y, text, attr) }

// Scroll moves the framebuffer content by dy pixels. See Framebuffer.Scroll.
func (d *Dev) Scroll(dy int) { d.fb.Scroll(dy) }

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return d.fb.ColorModel()
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.fb.Bounds()
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("pcd8544.Dev{%dx%d}", Width, Height)
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
