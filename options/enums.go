package options

// ScreenRotation is the orientation of the display. It is serialized as its
// numeric degree value in both formats, never as text.
type ScreenRotation uint16

// Possible screen orientations.
const (
	// RotationNormal is the landscape orientation used by nearly all games.
	RotationNormal ScreenRotation = 0
	// RotationClockWise is portrait orientation, rotated 90 degrees clockwise.
	RotationClockWise ScreenRotation = 90
	// RotationUpsideDown is upside down landscape orientation.
	RotationUpsideDown ScreenRotation = 180
	// RotationCounterClockWise is portrait orientation, rotated 90 degrees
	// counter-clockwise.
	RotationCounterClockWise ScreenRotation = 270
)

// screenRotationFromValue maps a wire value to a rotation. Only the four
// degree values are valid.
func screenRotationFromValue(value uint16) (ScreenRotation, bool) {
	switch ScreenRotation(value) {
	case RotationNormal, RotationClockWise, RotationUpsideDown, RotationCounterClockWise:
		return ScreenRotation(value), true
	default:
		return RotationNormal, false
	}
}

// Font identifies one of the built-in fonts a CHIP-8 interpreter can provide.
// Few if any historical games depend on a particular font, but overriding it
// makes historical games look accurate. The fontdata package provides the
// sprite data for each font.
type Font int

// The supported fonts.
const (
	// FontOcto is the font used by Octo. The small digits are identical to
	// SUPER-CHIP's and the big digits are an enlarged version of the small
	// ones. Both sets cover 0-F.
	FontOcto Font = iota
	// FontVIP is the font of the original COSMAC VIP interpreter. Small
	// digits 0-F only.
	FontVIP
	// FontDream6800 is the font of CHIP-8/CHIPOS on the DREAM 6800. Small
	// digits 0-F only.
	FontDream6800
	// FontETI660 is the font of the ETI-660 interpreter, very similar to the
	// DREAM 6800 font. Small digits 0-F only.
	FontETI660
	// FontSCHIP is the font of SUPER-CHIP 1.1 on the HP 48. Small digits for
	// 0-F, big digits for 0-9 only.
	FontSCHIP
	// FontFish is the font of the Fish'n'Chips emulator. Small digits 0-F
	// and 7x9 pixel big digits 0-F.
	FontFish
	// FontAKouZ1 is the font designed by A-KouZ1, used by the KChip-8 and
	// FPChip-8 emulators. Small and big digits 0-F.
	FontAKouZ1
)

// TouchMode identifies the touch input handling a game supports.
type TouchMode int

// The supported touch modes.
const (
	// TouchNone does not handle touch input at all.
	TouchNone TouchMode = iota
	// TouchSwipe treats taps as key 6 and swipes or drag-and-hold as a
	// virtual directional pad on keys 5, 8, 7 and 9.
	TouchSwipe
	// TouchSeg16 treats taps and holds on the center of the screen as an
	// invisible 4x4 hex keypad. Also supports mouse input.
	TouchSeg16
	// TouchSeg16Fill is like TouchSeg16 with the virtual keys covering the
	// entire display instead of a square region.
	TouchSeg16Fill
	// TouchGamepad draws a translucent virtual gamepad around the screen,
	// mapping the directional pad to keys 5, 8, 7 and 9 and buttons A and B
	// to keys 6 and 4.
	TouchGamepad
	// TouchVIP displays a 4x4 hex keypad under the screen. Also supports
	// mouse input.
	TouchVIP
)

// LoresDXY0Behavior is the behavior of a draw instruction with sprite height
// 0 (DXY0) while the interpreter is in low-resolution mode.
type LoresDXY0Behavior int

// The possible DXY0 behaviors in lores mode.
const (
	// LoresNoOp does nothing (original behavior).
	LoresNoOp LoresDXY0Behavior = iota
	// LoresTallSprite draws a 16-byte sprite (DREAM 6800 behavior).
	LoresTallSprite
	// LoresBigSprite draws a 16x16 pixel sprite, the same behavior as in
	// high-resolution mode (Octo behavior).
	LoresBigSprite
)

// Wire spellings of the enum values.
//
// The two formats do not share one casing convention: fonts are plain
// lowercase in the JSON format but snake_case in the INI format, while touch
// modes are plain lowercase in both. The names are therefore kept as explicit
// per-variant tables instead of being derived from the constant names, so the
// two formats can be audited side by side.
var (
	fontJSONNames = map[Font]string{
		FontOcto:      "octo",
		FontVIP:       "vip",
		FontDream6800: "dream6800",
		FontETI660:    "eti660",
		FontSCHIP:     "schip",
		FontFish:      "fish",
		FontAKouZ1:    "akouz1",
	}

	fontININames = map[Font]string{
		FontOcto:      "octo",
		FontVIP:       "vip",
		FontDream6800: "dream6800",
		FontETI660:    "eti660",
		FontSCHIP:     "schip",
		FontFish:      "fish",
		FontAKouZ1:    "a_kou_z1",
	}

	touchModeNames = map[TouchMode]string{
		TouchNone:      "none",
		TouchSwipe:     "swipe",
		TouchSeg16:     "seg16",
		TouchSeg16Fill: "seg16fill",
		TouchGamepad:   "gamepad",
		TouchVIP:       "vip",
	}

	loresDXY0Names = map[LoresDXY0Behavior]string{
		LoresNoOp:       "no_op",
		LoresTallSprite: "tall_sprite",
		LoresBigSprite:  "big_sprite",
	}
)

// Reverse lookups, built from the wire tables above so both directions stay
// in sync.
var (
	fontsByJSONName  = reverseNames(fontJSONNames)
	fontsByININame   = reverseNames(fontININames)
	touchModesByName = reverseNames(touchModeNames)
	loresDXY0ByName  = reverseNames(loresDXY0Names)
)

func reverseNames[T comparable](names map[T]string) map[string]T {
	reversed := make(map[string]T, len(names))
	for value, name := range names {
		reversed[name] = value
	}
	return reversed
}
