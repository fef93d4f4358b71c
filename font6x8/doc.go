// Package font6x8 provides 6x8 pixel glyph tables for column oriented
// monochrome displays.
//
// Each glyph is 6 bytes, one per column from left to right. Bit 0 of a column
// is the top row and bit 7 the bottom row, which is the vertical byte packing
// used by PCD8544, SSD1306 and similar controllers:
//
//	col:  0    1    2    3    4    5
//	'A':  0x7E 0x11 0x11 0x11 0x7E 0x00
//
//	       .###.
//	       #...#
//	       #...#
//	       #...#
//	       #####
//	       #...#
//	       #...#
//
// A Table covers the full byte range so any character code can be looked up
// without a bounds check.
package font6x8
