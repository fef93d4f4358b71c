package pcd8544

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/pcd8544/font6x8"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Display geometry.
const (
	Width  = 84
	Height = 48

	// Rows is the number of 8 pixel tall byte-rows.
	Rows = Height / 8

	// BufferSize is the size in bytes of the display RAM.
	BufferSize = Width * Height / 8

	// GlyphWidth is the horizontal advance of a character cell.
	GlyphWidth = 6
)

// Attr selects how a glyph is rendered.
type Attr byte

// Glyph attributes.
const (
	Normal    Attr = 0
	Inverse   Attr = 1
	Underline Attr = 2
)

// Font maps a character code to the columns of its 6x8 glyph. Bit 0 of each
// column is the top row.
type Font interface {
	Glyph(code byte) [GlyphWidth]byte
}

// Framebuffer is a local copy of the controller RAM.
//
// Pixels are packed vertically: byte x+Width*(y/8) holds column x of
// byte-row y/8, bit y%8. This is the layout of image1bit.VerticalLSB, which
// backs the buffer and lets it be used as a draw.Image.
//
// Drawing outside the display is silently ignored.
type Framebuffer struct {
	img  *image1bit.VerticalLSB
	font Font
}

// NewFramebuffer returns a cleared framebuffer rendering text with f. A nil f
// selects font6x8.Default.
func NewFramebuffer(f Font) *Framebuffer {
	if f == nil {
		f = font6x8.Default
	}
	return &Framebuffer{
		img:  image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height)),
		font: f,
	}
}

// Bytes returns the packed buffer. The slice aliases the framebuffer.
func (f *Framebuffer) Bytes() []byte {
	return f.img.Pix
}

// ClearBuffer turns all pixels off. The controller is not touched.
func (f *Framebuffer) ClearBuffer() {
	clear(f.img.Pix)
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return f.img.Rect
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	return f.img.BitAt(x, y)
}

// Set implements draw.Image.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	f.img.Set(x, y, c)
}

// Pixel reports whether the pixel at (x, y) is on.
func (f *Framebuffer) Pixel(x, y int) bool {
	if !inside(x, y) {
		return false
	}
	return f.img.Pix[x+Width*(y/8)]&(1<<(y%8)) != 0
}

// SetPixel turns on the pixel at (x, y).
func (f *Framebuffer) SetPixel(x, y int) {
	if inside(x, y) {
		f.img.Pix[x+Width*(y/8)] |= 1 << (y % 8)
	}
}

// ClearPixel turns off the pixel at (x, y).
func (f *Framebuffer) ClearPixel(x, y int) {
	if inside(x, y) {
		f.img.Pix[x+Width*(y/8)] &^= 1 << (y % 8)
	}
}

func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// PutChar renders the glyph for code with its top left pixel at (x0, y0).
//
// y0 does not need to be a multiple of 8; a glyph that straddles two
// byte-rows is split across them. Columns right of the display are dropped,
// as are glyph rows below it.
func (f *Framebuffer) PutChar(x0, y0 int, code byte, attr Attr) {
	if y0 < 0 || y0 >= Height {
		return
	}
	glyph := f.font.Glyph(code)
	yd, ym := y0/8, uint(y0%8)
	pix := f.img.Pix
	for i, g := range glyph {
		x := x0 + i
		if x < 0 {
			continue
		}
		if x >= Width {
			break
		}
		switch attr {
		case Inverse:
			g = ^g
		case Underline:
			g |= 0x80
		}

		m := x + Width*yd
		pix[m] &^= byte(0xFF << ym)
		pix[m] |= g << ym
		if ym != 0 && y0 < Height-8 {
			m += Width
			pix[m] &^= 0xFF >> (8 - ym)
			pix[m] |= g >> (8 - ym)
		}
	}
}

// Print renders text left to right starting at (x, y), one glyph cell every
// GlyphWidth pixels. It stops at the end of text or at the first NUL.
//
// text is decoded as UTF-8: runes up to 0xFF select the ISO-8859-1 code of
// the same value, others (and invalid bytes) are rendered as '?'. Use
// PrintBytes for text already encoded as single byte codes.
//
// There is no wrapping; characters past the right edge are clipped.
func (f *Framebuffer) Print(x, y int, text string, attr Attr) {
	for _, r := range text {
		if r == 0 {
			return
		}
		code := byte('?')
		if r <= 0xFF {
			code = byte(r)
		}
		f.PutChar(x, y, code, attr)
		x += GlyphWidth
	}
}

// PrintBytes is like Print but takes one character code per byte, with no
// decoding.
func (f *Framebuffer) PrintBytes(x, y int, text []byte, attr Attr) {
	for _, c := range text {
		if c == 0 {
			return
		}
		f.PutChar(x, y, c, attr)
		x += GlyphWidth
	}
}

var _ draw.Image = &Framebuffer{}
