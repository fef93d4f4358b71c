package font6x8

// Width and Height of a glyph cell in pixels.
const (
	Width  = 6
	Height = 8
)

// Table maps every byte value to a glyph.
type Table [256][Width]byte

// Glyph returns the columns of the glyph for code.
func (t *Table) Glyph(code byte) [Width]byte {
	return t[code]
}

// Blank reports whether the glyph for code has no pixel set.
func (t *Table) Blank(code byte) bool {
	return t[code] == [Width]byte{}
}
