// Package pcd8544 controls a PCD8544 LCD (Nokia 5110/3310 module) via GPIO.
//
// The PCD8544 is a 84×48 monochrome LCD controller with a write-only serial
// interface. This driver bit-bangs that interface on four GPIO lines, keeps
// a local framebuffer and implements the display.Drawer interface from
// periph.io.
//
// # Display Characteristics
//
// - 84×48 pixels, 1 bit per pixel
// - Display RAM organized as 6 byte-rows of 84 bytes, LSB on top
// - Adjustable contrast (Vop 0-127)
// - Display inversion
// - Power down mode
// - No readback: the framebuffer is the only copy of the picture
//
// # Hardware Connection
//
// Connect the module to five (six with backlight) GPIO lines:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	DIN         → GPIO (serial data)
//	CLK         → GPIO (serial clock)
//	DC          → GPIO (data/command)
//	CE          → GPIO (chip enable, SCE on some boards)
//	RST         → GPIO (reset)
//	LIGHT       → Optional: GPIO for the backlight LED
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/pcd8544"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		dev, _ := pcd8544.New(pcd8544.Pins{
//			DIN: gpioreg.ByName("GPIO10"),
//			CLK: gpioreg.ByName("GPIO11"),
//			DC:  gpioreg.ByName("GPIO25"),
//			CE:  gpioreg.ByName("GPIO8"),
//			RST: gpioreg.ByName("GPIO24"),
//		}, nil)
//		defer dev.Halt()
//
//		dev.Print(0, 0, "Hello", pcd8544.Normal)
//		dev.Print(0, 8, "inverse", pcd8544.Inverse)
//		dev.Update()
//	}
//
// # Drawing
//
// All drawing happens in the framebuffer; nothing reaches the display until
// Update is called:
//
//	dev.SetPixel(10, 20)
//	dev.PutChar(0, 4, 'A', pcd8544.Underline) // y need not be a multiple of 8
//	dev.Scroll(8)                             // move everything up one text line
//	dev.Update()
//
// Coordinates outside the display are ignored.
//
// Draw accepts any image.Image, so the framebuffer can also be rendered with
// image/draw or golang.org/x/image/font:
//
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Rotation
//
// Set Opts.Rotated for a module mounted upside down. The frame is then sent
// back to front with each byte bit reversed; drawing coordinates stay the
// same.
//
// # Timing
//
// The controller samples DIN on each rising clock edge and has no other
// framing signal, so a byte must not be interrupted half way. Each byte and
// the reset pulse run while holding Opts.Lock with the goroutine locked to
// its OS thread. Clock phases are held for at least half of Opts.ClockHz
// (default 4MHz, 125ns per phase).
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/Monochrome/Nokia5110.pdf
package pcd8544
