package pcd8544

// Scroll moves the whole framebuffer content by dy pixels.
//
// A positive dy moves content up, towards row 0; a negative dy moves it down.
// Vacated rows are cleared and content pushed past the edge is lost, so
// Scroll(n) followed by Scroll(-n) does not restore the buffer. Scrolling by
// Height or more clears it.
//
// The shift is done in place. Up scrolls walk the byte-rows top down and down
// scrolls walk them bottom up, so every source byte-row is read before it is
// overwritten.
func (f *Framebuffer) Scroll(dy int) {
	if dy == 0 {
		return
	}
	pix := f.img.Pix
	up := dy > 0
	if !up {
		dy = -dy
	}
	dy8, dy1 := dy/8, uint(dy%8)

	// row returns byte-row r of column x, or 0 past either edge.
	row := func(x, r int) byte {
		if r < 0 || r >= Rows {
			return 0
		}
		return pix[x+Width*r]
	}

	for x := 0; x < Width; x++ {
		for y := 0; y < Rows; y++ {
			if up {
				b1 := row(x, y+dy8)
				v := b1 >> dy1
				// A shift by 8 would carry the whole neighbour byte;
				// with dy1 == 0 only whole byte-rows move.
				if dy1 != 0 {
					v |= row(x, y+dy8+1) << (8 - dy1)
				}
				pix[x+Width*y] = v
			} else {
				dst := Rows - 1 - y
				b1 := row(x, dst-dy8)
				v := b1 << dy1
				if dy1 != 0 {
					v |= row(x, dst-dy8-1) >> (8 - dy1)
				}
				pix[x+Width*dst] = v
			}
		}
	}
}
