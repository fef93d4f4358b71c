package font6x8

// Default is a 5x7 ISO-8859-1 font in 6 pixel cells. The sixth column of
// every glyph is blank and acts as letter spacing, and the bottom row is
// never used. Control codes (0x00-0x1F and 0x7F-0x9F) are blank.
//
// Accented capitals are drawn five rows tall under their accent.
var Default = &Table{
	0x20: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ' '
	0x21: {0x00, 0x00, 0x5F, 0x00, 0x00, 0x00}, // '!'
	0x22: {0x00, 0x07, 0x00, 0x07, 0x00, 0x00}, // '"'
	0x23: {0x14, 0x7F, 0x14, 0x7F, 0x14, 0x00}, // '#'
	0x24: {0x24, 0x2A, 0x7F, 0x2A, 0x12, 0x00}, // '$'
	0x25: {0x23, 0x13, 0x08, 0x64, 0x62, 0x00}, // '%'
	0x26: {0x36, 0x49, 0x55, 0x22, 0x50, 0x00}, // '&'
	0x27: {0x00, 0x05, 0x03, 0x00, 0x00, 0x00}, // '\''
	0x28: {0x00, 0x1C, 0x22, 0x41, 0x00, 0x00}, // '('
	0x29: {0x00, 0x41, 0x22, 0x1C, 0x00, 0x00}, // ')'
	0x2A: {0x14, 0x08, 0x3E, 0x08, 0x14, 0x00}, // '*'
	0x2B: {0x08, 0x08, 0x3E, 0x08, 0x08, 0x00}, // '+'
	0x2C: {0x00, 0x50, 0x30, 0x00, 0x00, 0x00}, // ','
	0x2D: {0x08, 0x08, 0x08, 0x08, 0x08, 0x00}, // '-'
	0x2E: {0x00, 0x60, 0x60, 0x00, 0x00, 0x00}, // '.'
	0x2F: {0x20, 0x10, 0x08, 0x04, 0x02, 0x00}, // '/'
	0x30: {0x3E, 0x51, 0x49, 0x45, 0x3E, 0x00}, // '0'
	0x31: {0x00, 0x42, 0x7F, 0x40, 0x00, 0x00}, // '1'
	0x32: {0x42, 0x61, 0x51, 0x49, 0x46, 0x00}, // '2'
	0x33: {0x21, 0x41, 0x45, 0x4B, 0x31, 0x00}, // '3'
	0x34: {0x18, 0x14, 0x12, 0x7F, 0x10, 0x00}, // '4'
	0x35: {0x27, 0x45, 0x45, 0x45, 0x39, 0x00}, // '5'
	0x36: {0x3C, 0x4A, 0x49, 0x49, 0x30, 0x00}, // '6'
	0x37: {0x01, 0x71, 0x09, 0x05, 0x03, 0x00}, // '7'
	0x38: {0x36, 0x49, 0x49, 0x49, 0x36, 0x00}, // '8'
	0x39: {0x06, 0x49, 0x49, 0x29, 0x1E, 0x00}, // '9'
	0x3A: {0x00, 0x36, 0x36, 0x00, 0x00, 0x00}, // ':'
	0x3B: {0x00, 0x56, 0x36, 0x00, 0x00, 0x00}, // ';'
	0x3C: {0x08, 0x14, 0x22, 0x41, 0x00, 0x00}, // '<'
	0x3D: {0x14, 0x14, 0x14, 0x14, 0x14, 0x00}, // '='
	0x3E: {0x00, 0x41, 0x22, 0x14, 0x08, 0x00}, // '>'
	0x3F: {0x02, 0x01, 0x51, 0x09, 0x06, 0x00}, // '?'
	0x40: {0x32, 0x49, 0x79, 0x41, 0x3E, 0x00}, // '@'
	0x41: {0x7E, 0x11, 0x11, 0x11, 0x7E, 0x00}, // 'A'
	0x42: {0x7F, 0x49, 0x49, 0x49, 0x36, 0x00}, // 'B'
	0x43: {0x3E, 0x41, 0x41, 0x41, 0x22, 0x00}, // 'C'
	0x44: {0x7F, 0x41, 0x41, 0x22, 0x1C, 0x00}, // 'D'
	0x45: {0x7F, 0x49, 0x49, 0x49, 0x41, 0x00}, // 'E'
	0x46: {0x7F, 0x09, 0x09, 0x09, 0x01, 0x00}, // 'F'
	0x47: {0x3E, 0x41, 0x49, 0x49, 0x7A, 0x00}, // 'G'
	0x48: {0x7F, 0x08, 0x08, 0x08, 0x7F, 0x00}, // 'H'
	0x49: {0x00, 0x41, 0x7F, 0x41, 0x00, 0x00}, // 'I'
	0x4A: {0x20, 0x40, 0x41, 0x3F, 0x01, 0x00}, // 'J'
	0x4B: {0x7F, 0x08, 0x14, 0x22, 0x41, 0x00}, // 'K'
	0x4C: {0x7F, 0x40, 0x40, 0x40, 0x40, 0x00}, // 'L'
	0x4D: {0x7F, 0x02, 0x0C, 0x02, 0x7F, 0x00}, // 'M'
	0x4E: {0x7F, 0x04, 0x08, 0x10, 0x7F, 0x00}, // 'N'
	0x4F: {0x3E, 0x41, 0x41, 0x41, 0x3E, 0x00}, // 'O'
	0x50: {0x7F, 0x09, 0x09, 0x09, 0x06, 0x00}, // 'P'
	0x51: {0x3E, 0x41, 0x51, 0x21, 0x5E, 0x00}, // 'Q'
	0x52: {0x7F, 0x09, 0x19, 0x29, 0x46, 0x00}, // 'R'
	0x53: {0x46, 0x49, 0x49, 0x49, 0x31, 0x00}, // 'S'
	0x54: {0x01, 0x01, 0x7F, 0x01, 0x01, 0x00}, // 'T'
	0x55: {0x3F, 0x40, 0x40, 0x40, 0x3F, 0x00}, // 'U'
	0x56: {0x1F, 0x20, 0x40, 0x20, 0x1F, 0x00}, // 'V'
	0x57: {0x3F, 0x40, 0x38, 0x40, 0x3F, 0x00}, // 'W'
	0x58: {0x63, 0x14, 0x08, 0x14, 0x63, 0x00}, // 'X'
	0x59: {0x07, 0x08, 0x70, 0x08, 0x07, 0x00}, // 'Y'
	0x5A: {0x61, 0x51, 0x49, 0x45, 0x43, 0x00}, // 'Z'
	0x5B: {0x00, 0x7F, 0x41, 0x41, 0x00, 0x00}, // '['
	0x5C: {0x02, 0x04, 0x08, 0x10, 0x20, 0x00}, // '\\'
	0x5D: {0x00, 0x41, 0x41, 0x7F, 0x00, 0x00}, // ']'
	0x5E: {0x04, 0x02, 0x01, 0x02, 0x04, 0x00}, // '^'
	0x5F: {0x40, 0x40, 0x40, 0x40, 0x40, 0x00}, // '_'
	0x60: {0x00, 0x01, 0x02, 0x04, 0x00, 0x00}, // '`'
	0x61: {0x20, 0x54, 0x54, 0x54, 0x78, 0x00}, // 'a'
	0x62: {0x7F, 0x48, 0x44, 0x44, 0x38, 0x00}, // 'b'
	0x63: {0x38, 0x44, 0x44, 0x44, 0x20, 0x00}, // 'c'
	0x64: {0x38, 0x44, 0x44, 0x48, 0x7F, 0x00}, // 'd'
	0x65: {0x38, 0x54, 0x54, 0x54, 0x18, 0x00}, // 'e'
	0x66: {0x08, 0x7E, 0x09, 0x01, 0x02, 0x00}, // 'f'
	0x67: {0x0C, 0x52, 0x52, 0x52, 0x3E, 0x00}, // 'g'
	0x68: {0x7F, 0x08, 0x04, 0x04, 0x78, 0x00}, // 'h'
	0x69: {0x00, 0x44, 0x7D, 0x40, 0x00, 0x00}, // 'i'
	0x6A: {0x20, 0x40, 0x44, 0x3D, 0x00, 0x00}, // 'j'
	0x6B: {0x7F, 0x10, 0x28, 0x44, 0x00, 0x00}, // 'k'
	0x6C: {0x00, 0x41, 0x7F, 0x40, 0x00, 0x00}, // 'l'
	0x6D: {0x7C, 0x04, 0x18, 0x04, 0x78, 0x00}, // 'm'
	0x6E: {0x7C, 0x08, 0x04, 0x04, 0x78, 0x00}, // 'n'
	0x6F: {0x38, 0x44, 0x44, 0x44, 0x38, 0x00}, // 'o'
	0x70: {0x7C, 0x14, 0x14, 0x14, 0x08, 0x00}, // 'p'
	0x71: {0x08, 0x14, 0x14, 0x18, 0x7C, 0x00}, // 'q'
	0x72: {0x7C, 0x08, 0x04, 0x04, 0x08, 0x00}, // 'r'
	0x73: {0x48, 0x54, 0x54, 0x54, 0x20, 0x00}, // 's'
	0x74: {0x04, 0x3F, 0x44, 0x40, 0x20, 0x00}, // 't'
	0x75: {0x3C, 0x40, 0x40, 0x20, 0x7C, 0x00}, // 'u'
	0x76: {0x1C, 0x20, 0x40, 0x20, 0x1C, 0x00}, // 'v'
	0x77: {0x3C, 0x40, 0x30, 0x40, 0x3C, 0x00}, // 'w'
	0x78: {0x44, 0x28, 0x10, 0x28, 0x44, 0x00}, // 'x'
	0x79: {0x0C, 0x50, 0x50, 0x50, 0x3C, 0x00}, // 'y'
	0x7A: {0x44, 0x64, 0x54, 0x4C, 0x44, 0x00}, // 'z'
	0x7B: {0x00, 0x08, 0x36, 0x41, 0x00, 0x00}, // '{'
	0x7C: {0x00, 0x00, 0x7F, 0x00, 0x00, 0x00}, // '|'
	0x7D: {0x00, 0x41, 0x36, 0x08, 0x00, 0x00}, // '}'
	0x7E: {0x10, 0x08, 0x08, 0x10, 0x08, 0x00}, // '~'

	// ISO-8859-1 upper half
	0xA0: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // no-break space
	0xA1: {0x00, 0x00, 0x7D, 0x00, 0x00, 0x00}, // '¡'
	0xA2: {0x1C, 0x22, 0x7F, 0x22, 0x00, 0x00}, // '¢'
	0xA3: {0x48, 0x3E, 0x49, 0x41, 0x22, 0x00}, // '£'
	0xA4: {0x22, 0x1C, 0x14, 0x1C, 0x22, 0x00}, // '¤'
	0xA5: {0x15, 0x16, 0x7C, 0x16, 0x15, 0x00}, // '¥'
	0xA6: {0x00, 0x00, 0x77, 0x00, 0x00, 0x00}, // '¦'
	0xA7: {0x4A, 0x55, 0x55, 0x55, 0x29, 0x00}, // '§'
	0xA8: {0x00, 0x01, 0x00, 0x01, 0x00, 0x00}, // '¨'
	0xA9: {0x3E, 0x41, 0x5D, 0x55, 0x3E, 0x00}, // '©'
	0xAA: {0x48, 0x55, 0x55, 0x5E, 0x00, 0x00}, // 'ª'
	0xAB: {0x08, 0x14, 0x2A, 0x14, 0x22, 0x00}, // '«'
	0xAC: {0x04, 0x04, 0x04, 0x04, 0x1C, 0x00}, // '¬'
	0xAD: {0x08, 0x08, 0x08, 0x08, 0x08, 0x00}, // soft hyphen
	0xAE: {0x3E, 0x4D, 0x55, 0x49, 0x3E, 0x00}, // '®'
	0xAF: {0x01, 0x01, 0x01, 0x01, 0x01, 0x00}, // '¯'
	0xB0: {0x06, 0x09, 0x09, 0x06, 0x00, 0x00}, // '°'
	0xB1: {0x44, 0x44, 0x5F, 0x44, 0x44, 0x00}, // '±'
	0xB2: {0x00, 0x19, 0x15, 0x12, 0x00, 0x00}, // '²'
	0xB3: {0x00, 0x15, 0x15, 0x0A, 0x00, 0x00}, // '³'
	0xB4: {0x00, 0x00, 0x02, 0x01, 0x00, 0x00}, // '´'
	0xB5: {0x7C, 0x20, 0x20, 0x1C, 0x20, 0x00}, // 'µ'
	0xB6: {0x06, 0x0F, 0x7F, 0x01, 0x7F, 0x00}, // '¶'
	0xB7: {0x00, 0x00, 0x08, 0x00, 0x00, 0x00}, // '·'
	0xB8: {0x00, 0x40, 0x60, 0x00, 0x00, 0x00}, // '¸'
	0xB9: {0x00, 0x12, 0x1F, 0x10, 0x00, 0x00}, // '¹'
	0xBA: {0x26, 0x29, 0x29, 0x26, 0x00, 0x00}, // 'º'
	0xBB: {0x22, 0x14, 0x2A, 0x14, 0x08, 0x00}, // '»'
	0xBC: {0x17, 0x08, 0x34, 0x7A, 0x21, 0x00}, // '¼'
	0xBD: {0x17, 0x08, 0x44, 0x6A, 0x59, 0x00}, // '½'
	0xBE: {0x15, 0x1F, 0x20, 0x7A, 0x21, 0x00}, // '¾'
	0xBF: {0x30, 0x48, 0x45, 0x40, 0x20, 0x00}, // '¿'
	0xC0: {0x78, 0x15, 0x16, 0x14, 0x78, 0x00}, // 'À'
	0xC1: {0x78, 0x14, 0x16, 0x15, 0x78, 0x00}, // 'Á'
	0xC2: {0x78, 0x16, 0x15, 0x16, 0x78, 0x00}, // 'Â'
	0xC3: {0x7A, 0x15, 0x16, 0x15, 0x78, 0x00}, // 'Ã'
	0xC4: {0x78, 0x15, 0x14, 0x15, 0x78, 0x00}, // 'Ä'
	0xC5: {0x78, 0x17, 0x15, 0x17, 0x78, 0x00}, // 'Å'
	0xC6: {0x7E, 0x09, 0x7F, 0x49, 0x49, 0x00}, // 'Æ'
	0xC7: {0x0E, 0x51, 0x71, 0x11, 0x11, 0x00}, // 'Ç'
	0xC8: {0x7C, 0x55, 0x56, 0x54, 0x44, 0x00}, // 'È'
	0xC9: {0x7C, 0x54, 0x56, 0x55, 0x44, 0x00}, // 'É'
	0xCA: {0x7C, 0x56, 0x55, 0x56, 0x44, 0x00}, // 'Ê'
	0xCB: {0x7C, 0x55, 0x54, 0x55, 0x44, 0x00}, // 'Ë'
	0xCC: {0x00, 0x45, 0x7E, 0x44, 0x00, 0x00}, // 'Ì'
	0xCD: {0x00, 0x44, 0x7E, 0x45, 0x00, 0x00}, // 'Í'
	0xCE: {0x00, 0x46, 0x7D, 0x46, 0x00, 0x00}, // 'Î'
	0xCF: {0x00, 0x45, 0x7C, 0x45, 0x00, 0x00}, // 'Ï'
	0xD0: {0x7F, 0x49, 0x41, 0x22, 0x1C, 0x00}, // 'Ð'
	0xD1: {0x7E, 0x09, 0x12, 0x21, 0x7C, 0x00}, // 'Ñ'
	0xD2: {0x38, 0x45, 0x46, 0x44, 0x38, 0x00}, // 'Ò'
	0xD3: {0x38, 0x44, 0x46, 0x45, 0x38, 0x00}, // 'Ó'
	0xD4: {0x38, 0x46, 0x45, 0x46, 0x38, 0x00}, // 'Ô'
	0xD5: {0x3A, 0x45, 0x46, 0x45, 0x38, 0x00}, // 'Õ'
	0xD6: {0x38, 0x45, 0x44, 0x45, 0x38, 0x00}, // 'Ö'
	0xD7: {0x22, 0x14, 0x08, 0x14, 0x22, 0x00}, // '×'
	0xD8: {0x3E, 0x61, 0x5D, 0x43, 0x3E, 0x00}, // 'Ø'
	0xD9: {0x3C, 0x41, 0x42, 0x40, 0x3C, 0x00}, // 'Ù'
	0xDA: {0x3C, 0x40, 0x42, 0x41, 0x3C, 0x00}, // 'Ú'
	0xDB: {0x3C, 0x42, 0x41, 0x42, 0x3C, 0x00}, // 'Û'
	0xDC: {0x3C, 0x41, 0x40, 0x41, 0x3C, 0x00}, // 'Ü'
	0xDD: {0x04, 0x08, 0x72, 0x09, 0x04, 0x00}, // 'Ý'
	0xDE: {0x7F, 0x12, 0x12, 0x12, 0x0C, 0x00}, // 'Þ'
	0xDF: {0x7E, 0x01, 0x49, 0x36, 0x00, 0x00}, // 'ß'
	0xE0: {0x20, 0x55, 0x56, 0x54, 0x78, 0x00}, // 'à'
	0xE1: {0x20, 0x54, 0x56, 0x55, 0x78, 0x00}, // 'á'
	0xE2: {0x20, 0x56, 0x55, 0x56, 0x78, 0x00}, // 'â'
	0xE3: {0x22, 0x55, 0x56, 0x55, 0x78, 0x00}, // 'ã'
	0xE4: {0x20, 0x55, 0x54, 0x55, 0x78, 0x00}, // 'ä'
	0xE5: {0x20, 0x57, 0x55, 0x57, 0x78, 0x00}, // 'å'
	0xE6: {0x34, 0x54, 0x78, 0x54, 0x58, 0x00}, // 'æ'
	0xE7: {0x08, 0x54, 0x74, 0x14, 0x00, 0x00}, // 'ç'
	0xE8: {0x38, 0x55, 0x56, 0x54, 0x18, 0x00}, // 'è'
	0xE9: {0x38, 0x54, 0x56, 0x55, 0x18, 0x00}, // 'é'
	0xEA: {0x38, 0x56, 0x55, 0x56, 0x18, 0x00}, // 'ê'
	0xEB: {0x38, 0x55, 0x54, 0x55, 0x18, 0x00}, // 'ë'
	0xEC: {0x00, 0x45, 0x7E, 0x40, 0x00, 0x00}, // 'ì'
	0xED: {0x00, 0x44, 0x7E, 0x41, 0x00, 0x00}, // 'í'
	0xEE: {0x00, 0x46, 0x7D, 0x42, 0x00, 0x00}, // 'î'
	0xEF: {0x00, 0x45, 0x7C, 0x41, 0x00, 0x00}, // 'ï'
	0xF0: {0x20, 0x55, 0x52, 0x55, 0x38, 0x00}, // 'ð'
	0xF1: {0x7E, 0x09, 0x06, 0x05, 0x78, 0x00}, // 'ñ'
	0xF2: {0x38, 0x45, 0x46, 0x44, 0x38, 0x00}, // 'ò'
	0xF3: {0x38, 0x44, 0x46, 0x45, 0x38, 0x00}, // 'ó'
	0xF4: {0x38, 0x46, 0x45, 0x46, 0x38, 0x00}, // 'ô'
	0xF5: {0x3A, 0x45, 0x46, 0x45, 0x38, 0x00}, // 'õ'
	0xF6: {0x38, 0x45, 0x44, 0x45, 0x38, 0x00}, // 'ö'
	0xF7: {0x08, 0x08, 0x2A, 0x08, 0x08, 0x00}, // '÷'
	0xF8: {0x38, 0x64, 0x54, 0x4C, 0x38, 0x00}, // 'ø'
	0xF9: {0x3C, 0x41, 0x42, 0x20, 0x7C, 0x00}, // 'ù'
	0xFA: {0x3C, 0x40, 0x42, 0x21, 0x7C, 0x00}, // 'ú'
	0xFB: {0x3C, 0x42, 0x41, 0x22, 0x7C, 0x00}, // 'û'
	0xFC: {0x3C, 0x41, 0x40, 0x21, 0x7C, 0x00}, // 'ü'
	0xFD: {0x0C, 0x50, 0x52, 0x51, 0x3C, 0x00}, // 'ý'
	0xFE: {0x7F, 0x14, 0x14, 0x14, 0x08, 0x00}, // 'þ'
	0xFF: {0x0C, 0x51, 0x50, 0x51, 0x3C, 0x00}, // 'ÿ'
}
