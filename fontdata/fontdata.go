// Package fontdata provides the sprite data of the built-in CHIP-8 fonts.
//
// A CHIP-8 interpreter places the font data of one font somewhere in the
// first 512 bytes of memory, which are reserved for the interpreter; the
// exact location does not matter, 0x00 and 0x50 are common choices.
package fontdata

import "github.com/retroenv/chip8opt/options"

// SmallFontSize is the size of a small font set: 16 hexadecimal digit
// sprites of 5 bytes each.
const SmallFontSize = 16 * 5

// Get returns the sprite data of the given font. The first return value
// holds 16 sprites of 5 bytes each, one per hexadecimal digit. The second
// holds the 10-byte-tall sprites used in high-resolution mode, or nil for
// fonts that predate high-resolution support.
//
// Some fonts use fewer pixels per sprite; the padding is kept so emulators
// and games can use the same routines regardless of the font. The large sets
// became standard with SUPER-CHIP, whose own font only provides large digits
// for 0-9; Octo, Fish'n'Chips and A-KouZ1 cover the full 0-F range.
func Get(font options.Font) ([SmallFontSize]byte, []byte) {
	switch font {
	case options.FontVIP:
		return vipSmall, nil
	case options.FontDream6800:
		return dream6800Small, nil
	case options.FontETI660:
		return eti660Small, nil
	case options.FontSCHIP:
		return schipSmall, schipBig
	case options.FontFish:
		return fishSmall, fishBig
	case options.FontAKouZ1:
		return akouz1Small, akouz1Big
	default:
		return octoSmall, octoBig
	}
}

// Octo's font: small digits identical to SUPER-CHIP's, big digits an
// enlarged version of the small ones.
var octoSmall = [SmallFontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

var octoBig = []byte{
	0xFF, 0xFF, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, // 0
	0x18, 0x78, 0x78, 0x18, 0x18, 0x18, 0x18, 0x18, 0xFF, 0xFF, // 1
	0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, // 2
	0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 3
	0xC3, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, 0x03, 0x03, 0x03, 0x03, // 4
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 5
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, // 6
	0xFF, 0xFF, 0x03, 0x03, 0x06, 0x0C, 0x18, 0x18, 0x18, 0x18, // 7
	0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, // 8
	0xFF, 0xFF, 0xC3, 0xC3, 0xFF, 0xFF, 0x03, 0x03, 0xFF, 0xFF, // 9
	0x7E, 0xFF, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xC3, // A
	0xFC, 0xFC, 0xC3, 0xC3, 0xFC, 0xFC, 0xC3, 0xC3, 0xFC, 0xFC, // B
	0x3C, 0xFF, 0xC3, 0xC0, 0xC0, 0xC0, 0xC0, 0xC3, 0xFF, 0x3C, // C
	0xFC, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFE, 0xFC, // D
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, // E
	0xFF, 0xFF, 0xC0, 0xC0, 0xFF, 0xFF, 0xC0, 0xC0, 0xC0, 0xC0, // F
}

// The font of the original COSMAC VIP interpreter.
var vipSmall = [SmallFontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x60, 0x20, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0xA0, 0xA0, 0xF0, 0x20, 0x20, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x10, 0x10, 0x10, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xF0, 0x50, 0x70, 0x50, 0xF0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xF0, 0x50, 0x50, 0x50, 0xF0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// The font of CHIP-8/CHIPOS on the DREAM 6800.
var dream6800Small = [SmallFontSize]byte{
	0xE0, 0xA0, 0xA0, 0xA0, 0xE0, // 0
	0x40, 0x40, 0x40, 0x40, 0x40, // 1
	0xE0, 0x20, 0xE0, 0x80, 0xE0, // 2
	0xE0, 0x20, 0xE0, 0x20, 0xE0, // 3
	0x80, 0xA0, 0xA0, 0xE0, 0x20, // 4
	0xE0, 0x80, 0xE0, 0x20, 0xE0, // 5
	0xE0, 0x80, 0xE0, 0xA0, 0xE0, // 6
	0xE0, 0x20, 0x20, 0x20, 0x20, // 7
	0xE0, 0xA0, 0xE0, 0xA0, 0xE0, // 8
	0xE0, 0xA0, 0xE0, 0x20, 0xE0, // 9
	0xE0, 0xA0, 0xE0, 0xA0, 0xA0, // A
	0xC0, 0xA0, 0xE0, 0xA0, 0xC0, // B
	0xE0, 0x80, 0x80, 0x80, 0xE0, // C
	0xC0, 0xA0, 0xA0, 0xA0, 0xC0, // D
	0xE0, 0x80, 0xE0, 0x80, 0xE0, // E
	0xE0, 0x80, 0xC0, 0x80, 0x80, // F
}

// The font of the ETI-660 interpreter, very similar to the DREAM 6800 font.
var eti660Small = [SmallFontSize]byte{
	0xE0, 0xA0, 0xA0, 0xA0, 0xE0, // 0
	0x20, 0x20, 0x20, 0x20, 0x20, // 1
	0xE0, 0x20, 0xE0, 0x80, 0xE0, // 2
	0xE0, 0x20, 0xE0, 0x20, 0xE0, // 3
	0xA0, 0xA0, 0xE0, 0x20, 0x20, // 4
	0xE0, 0x80, 0xE0, 0x20, 0xE0, // 5
	0xE0, 0x80, 0xE0, 0xA0, 0xE0, // 6
	0xE0, 0x20, 0x20, 0x20, 0x20, // 7
	0xE0, 0xA0, 0xE0, 0xA0, 0xE0, // 8
	0xE0, 0xA0, 0xE0, 0x20, 0xE0, // 9
	0xE0, 0xA0, 0xE0, 0xA0, 0xA0, // A
	0x80, 0x80, 0xE0, 0xA0, 0xE0, // B
	0xE0, 0x80, 0x80, 0x80, 0xE0, // C
	0x20, 0x20, 0xE0, 0xA0, 0xE0, // D
	0xE0, 0x80, 0xE0, 0x80, 0xE0, // E
	0xE0, 0x80, 0xC0, 0x80, 0x80, // F
}

// The font of SUPER-CHIP 1.1 on the HP 48. The large set only covers the
// decimal digits 0-9.
var schipSmall = [SmallFontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

var schipBig = []byte{
	0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, // 0
	0x18, 0x38, 0x58, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, // 1
	0x3E, 0x7F, 0xC3, 0x06, 0x0C, 0x18, 0x30, 0x60, 0xFF, 0xFF, // 2
	0x3C, 0x7E, 0xC3, 0x03, 0x0E, 0x0E, 0x03, 0xC3, 0x7E, 0x3C, // 3
	0x06, 0x0E, 0x1E, 0x36, 0x66, 0xC6, 0xFF, 0xFF, 0x06, 0x06, // 4
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFE, 0x03, 0xC3, 0x7E, 0x3C, // 5
	0x3E, 0x7C, 0xE0, 0xC0, 0xFC, 0xFE, 0xC3, 0xC3, 0x7E, 0x3C, // 6
	0xFF, 0xFF, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x60, 0x60, // 7
	0x3C, 0x7E, 0xC3, 0xC3, 0x7E, 0x7E, 0xC3, 0xC3, 0x7E, 0x3C, // 8
	0x3C, 0x7E, 0xC3, 0xC3, 0x7F, 0x3F, 0x03, 0x03, 0x3E, 0x7C, // 9
}

// The font of the Fish'n'Chips emulator. The large digits are 7x9 pixels in
// a 10-byte cell.
var fishSmall = [SmallFontSize]byte{
	0x60, 0xA0, 0xA0, 0xA0, 0xC0, // 0
	0x40, 0xC0, 0x40, 0x40, 0xE0, // 1
	0xC0, 0x20, 0x40, 0x80, 0xE0, // 2
	0xC0, 0x20, 0x40, 0x20, 0xC0, // 3
	0x20, 0xA0, 0xE0, 0x20, 0x20, // 4
	0xE0, 0x80, 0xC0, 0x20, 0xC0, // 5
	0x40, 0x80, 0xC0, 0xA0, 0x40, // 6
	0xE0, 0x20, 0x60, 0x40, 0x40, // 7
	0x40, 0xA0, 0x40, 0xA0, 0x40, // 8
	0x40, 0xA0, 0x60, 0x20, 0x40, // 9
	0x40, 0xA0, 0xE0, 0xA0, 0xA0, // A
	0xC0, 0xA0, 0xC0, 0xA0, 0xC0, // B
	0x60, 0x80, 0x80, 0x80, 0x60, // C
	0xC0, 0xA0, 0xA0, 0xA0, 0xC0, // D
	0xE0, 0x80, 0xC0, 0x80, 0xE0, // E
	0xE0, 0x80, 0xC0, 0x80, 0x80, // F
}

var fishBig = []byte{
	0x7C, 0xC6, 0xCE, 0xDE, 0xD6, 0xF6, 0xE6, 0xC6, 0x7C, 0x00, // 0
	0x10, 0x30, 0xF0, 0x30, 0x30, 0x30, 0x30, 0x30, 0xFC, 0x00, // 1
	0x78, 0xCC, 0xCC, 0x0C, 0x18, 0x30, 0x60, 0xCC, 0xFC, 0x00, // 2
	0x78, 0xCC, 0x0C, 0x0C, 0x38, 0x0C, 0x0C, 0xCC, 0x78, 0x00, // 3
	0x0C, 0x1C, 0x3C, 0x6C, 0xCC, 0xFE, 0x0C, 0x0C, 0x1E, 0x00, // 4
	0xFC, 0xC0, 0xC0, 0xC0, 0xF8, 0x0C, 0x0C, 0xCC, 0x78, 0x00, // 5
	0x38, 0x60, 0xC0, 0xC0, 0xF8, 0xCC, 0xCC, 0xCC, 0x78, 0x00, // 6
	0xFE, 0xC6, 0xC6, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00, // 7
	0x78, 0xCC, 0xCC, 0xEC, 0x78, 0xDC, 0xCC, 0xCC, 0x78, 0x00, // 8
	0x7C, 0xC6, 0xC6, 0xC6, 0x7C, 0x18, 0x18, 0x30, 0x70, 0x00, // 9
	0x30, 0x78, 0xCC, 0xCC, 0xCC, 0xFC, 0xCC, 0xCC, 0xCC, 0x00, // A
	0xFC, 0x66, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x66, 0xFC, 0x00, // B
	0x3C, 0x66, 0xC6, 0xC0, 0xC0, 0xC0, 0xC6, 0x66, 0x3C, 0x00, // C
	0xF8, 0x6C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x6C, 0xF8, 0x00, // D
	0xFE, 0x62, 0x60, 0x64, 0x7C, 0x64, 0x60, 0x62, 0xFE, 0x00, // E
	0xFE, 0x66, 0x62, 0x64, 0x7C, 0x64, 0x60, 0x60, 0xF0, 0x00, // F
}

// The font designed by A-KouZ1, used by the KChip-8 and FPChip-8 emulators.
var akouz1Small = [SmallFontSize]byte{
	0x60, 0x90, 0x90, 0x90, 0x60, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xE0, 0x10, 0x60, 0x80, 0xF0, // 2
	0xE0, 0x10, 0xE0, 0x10, 0xE0, // 3
	0x30, 0x50, 0x90, 0xF0, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xE0, // 5
	0x70, 0x80, 0xF0, 0x90, 0x60, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0x60, 0x90, 0x60, 0x90, 0x60, // 8
	0x60, 0x90, 0x70, 0x10, 0x60, // 9
	0x60, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0x70, 0x80, 0x80, 0x80, 0x70, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xE0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xE0, 0x80, 0x80, // F
}

var akouz1Big = []byte{
	0x7E, 0xC7, 0xC7, 0xCB, 0xCB, 0xD3, 0xD3, 0xE3, 0xE3, 0x7E, // 0
	0x18, 0x38, 0x78, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x7E, // 1
	0x7E, 0xC3, 0x03, 0x03, 0x0E, 0x18, 0x30, 0x60, 0xC0, 0xFF, // 2
	0x7E, 0xC3, 0x03, 0x03, 0x1E, 0x03, 0x03, 0x03, 0xC3, 0x7E, // 3
	0x06, 0x0E, 0x1E, 0x36, 0x66, 0xC6, 0xC6, 0xFF, 0x06, 0x06, // 4
	0xFF, 0xC0, 0xC0, 0xC0, 0xFE, 0x03, 0x03, 0x03, 0xC3, 0x7E, // 5
	0x7E, 0xC3, 0xC0, 0xC0, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0x7E, // 6
	0xFF, 0x03, 0x03, 0x03, 0x06, 0x0C, 0x18, 0x18, 0x18, 0x18, // 7
	0x7E, 0xC3, 0xC3, 0xC3, 0x7E, 0xC3, 0xC3, 0xC3, 0xC3, 0x7E, // 8
	0x7E, 0xC3, 0xC3, 0xC3, 0x7F, 0x03, 0x03, 0x03, 0xC3, 0x7E, // 9
	0x7E, 0xC3, 0xC3, 0xC3, 0xFF, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, // A
	0xFE, 0xC3, 0xC3, 0xC3, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0xFE, // B
	0x7E, 0xC3, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC3, 0x7E, // C
	0xFC, 0xC6, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC6, 0xFC, // D
	0xFF, 0xC0, 0xC0, 0xC0, 0xFE, 0xC0, 0xC0, 0xC0, 0xC0, 0xFF, // E
	0xFF, 0xC0, 0xC0, 0xC0, 0xFE, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, // F
}
