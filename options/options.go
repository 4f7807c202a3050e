// Package options models the configuration of a CHIP-8 virtual machine
// interpreter: tickrate, memory layout, display behavior, color scheme, touch
// input mode and the set of behavioral "quirks" that different CHIP-8
// interpreters implement inconsistently.
//
// CHIP-8 games often require specific interpreter behavior to run correctly,
// but that requirement is not visible in the bytecode itself. This package
// provides the canonical in-memory representation of these settings and
// lossless conversion to and from the two textual formats used by the
// ecosystem: the flat camelCase JSON object written by Octo exports and the
// CHIP-8 Archive, and the line-oriented dotted-key INI format used by
// cartridge metadata.
//
// Most settings are tri-state: a nil pointer means "unspecified, use the
// interpreter default", which is distinct from an explicitly disabled setting.
// Converters never collapse one into the other.
package options

// Options is the aggregate root of all CHIP-8 interpreter settings.
//
// Options values are constructed from NewOptions, DecodeJSON or DecodeINI and
// are treated as immutable afterwards; consumers replace whole values instead
// of mutating fields in place.
type Options struct {
	// Tickrate is the number of CHIP-8 instructions executed per 60Hz frame,
	// the "speed" of the virtual CPU. Common values are 7-15 (COSMAC VIP),
	// 20-30 (SUPER-CHIP on the HP 48) and 10000 (Octo's "Ludicrous speed").
	Tickrate *uint16

	// MaxSize is the maximum amount of virtual memory, in bytes, available to
	// the program. Mostly relevant as an assertion when developing games for
	// real hardware; interpreters can ignore it without consequence. Common
	// values are 3216 (VIP with 4K RAM), 3583 (HP 48), 3584 (Octo) and
	// 65024 (XO-CHIP).
	MaxSize *uint16

	// ScreenRotation is the orientation of the display. It only affects the
	// visual presentation; draw operations still act as if the rotation were
	// normal.
	ScreenRotation ScreenRotation

	// FontStyle selects the built-in font the game expects. Sprite data for
	// each font is available from the fontdata package.
	FontStyle Font

	// TouchInputMode selects the touch controls the game supports.
	TouchInputMode TouchMode

	// StartAddress is the memory address the game should be loaded at. On
	// legacy hardware the interpreter occupied the lower memory, so programs
	// usually start at 512 (0x200); the ETI-660 used 1536.
	StartAddress *uint16

	// Colors holds the color scheme the game would like to use, if possible.
	Colors Colors

	// Quirks holds the behaviors the game requires from the interpreter in
	// order to run properly.
	Quirks Quirks
}

// Colors holds custom colors for the visual elements of a CHIP-8 interpreter.
// A nil entry means the interpreter should pick its own default, not that the
// element is transparent or black.
type Colors struct {
	// FillColor is the color of active pixels. For XO-CHIP it colors the
	// first drawing plane.
	FillColor *Color

	// FillColor2 is the color of the second drawing plane (XO-CHIP only).
	FillColor2 *Color

	// BlendColor is the color used where both drawing planes overlap
	// (XO-CHIP only).
	BlendColor *Color

	// BackgroundColor is the background color of the screen.
	BackgroundColor *Color

	// BuzzColor is the color of any visual indicator for an active sound
	// buzzer.
	BuzzColor *Color

	// QuietColor is the color of any visual indicator for an inactive sound
	// buzzer.
	QuietColor *Color
}

// Quirks describes divergent behaviors of CHIP-8 interpreters. Games depend
// on specific settings here to run properly.
//
// All flags are tri-state pointers: nil means the setting was absent from the
// metadata, so the game's requirement is unknown and the interpreter should
// use its own default. An explicit false means the game requires the
// non-quirky behavior. "Original behavior" below refers to the CHIP-8
// interpreter of the COSMAC VIP; note that for historical reasons the
// original behavior is in several cases the one considered quirky.
//
// Interpreters should ignore quirks they do not recognize or do not intend to
// support.
type Quirks struct {
	// Shift selects the behavior of the shift instructions 8XY6 and 8XYE:
	// false shifts VY into VX (original), true shifts VX in place and
	// ignores VY (CHIP48 and SUPER-CHIP).
	Shift *bool

	// LoadStore selects the behavior of FX55/FX65: false increments I for
	// each register stored or loaded (original), true leaves I unchanged
	// (SUPER-CHIP).
	LoadStore *bool

	// Jump0 selects the behavior of the relative jump BXNN: false offsets by
	// V0 (original), true offsets by VX where X is the first digit of the
	// target address (CHIP48 and SUPER-CHIP).
	Jump0 *bool

	// Logic selects the state of VF after the logical instructions
	// 8XY1/8XY2/8XY3: false leaves VF unchanged (Octo, CHIP48, SUPER-CHIP),
	// true leaves VF undefined (original).
	Logic *bool

	// Clip selects the behavior of sprites drawn out of bounds: false wraps
	// them around the screen edges (Octo), true clips them (original,
	// CHIP-48, SUPER-CHIP).
	Clip *bool

	// VBlank selects whether the CPU waits for the rest of the frame after
	// each draw instruction, a "VBlank interrupt": false does no special
	// handling (CHIP-48, SUPER-CHIP, Octo), true waits (original).
	VBlank *bool

	// VFOrder selects what arithmetic and logical instructions with VF as an
	// operand leave in VF: false the result, true the flag (original).
	VFOrder *bool

	// LoresDXY0 selects the behavior of a zero-height draw instruction DXY0
	// in low-resolution mode.
	LoresDXY0 *LoresDXY0Behavior

	// ResClear selects whether the screen is cleared on a resolution change
	// (00FE/00FF): true clears (Octo), false retains the image, scaled up 2x
	// when entering hires (original SUPER-CHIP).
	ResClear *bool

	// DelayWrap selects whether the delay timer wraps from 0 to 255 and
	// keeps counting (DREAM 6800) instead of stopping at 0 (original).
	DelayWrap *bool

	// HiresCollision selects whether VF reports the number of colliding
	// sprite rows in hires mode (SUPER-CHIP 1.1) instead of just 1
	// (original).
	HiresCollision *bool

	// ClipCollision selects whether a sprite clipping at the bottom of the
	// screen sets VF (SUPER-CHIP 1.1, probably an interpreter bug) or leaves
	// it unchanged (original).
	ClipCollision *bool

	// Scroll selects whether scrolling in lores mode moves by half the
	// hires distance, as on SUPER-CHIP where the lores display was scaled
	// up 2x: true halves the scroll distances (SUPER-CHIP), false scrolls
	// identically in both modes (Octo).
	Scroll *bool

	// OverflowI selects whether VF is set when the I register overflows
	// above 0x0FFF (Amiga interpreter) or is unaffected (original). Only
	// Spacefight! 2091 is known to rely on the overflow behavior.
	OverflowI *bool
}

// NewOptions returns the baseline option set: Octo-like scalar settings, the
// default color scheme and the default quirk set. Deserializing a document
// never applies these values to fill in missing keys; they are only a
// starting point for building new metadata from scratch.
func NewOptions() Options {
	return Options{
		Tickrate:       u16Ptr(500),
		MaxSize:        u16Ptr(3584),
		ScreenRotation: RotationNormal,
		FontStyle:      FontOcto,
		TouchInputMode: TouchNone,
		StartAddress:   u16Ptr(512),
		Colors:         NewColors(),
		Quirks:         NewQuirks(),
	}
}

// NewColors returns the default color scheme: white on black, which is the
// most common scheme, with non-standard colors for the remaining elements.
func NewColors() Colors {
	return Colors{
		FillColor:       &Color{R: 255, G: 255, B: 255},
		FillColor2:      &Color{R: 255, G: 255, B: 0},
		BlendColor:      &Color{R: 255, G: 0, B: 0},
		BackgroundColor: &Color{R: 0, G: 0, B: 0},
		BuzzColor:       &Color{R: 153, G: 0, B: 0},
		QuietColor:      &Color{R: 51, G: 0, B: 0},
	}
}

// NewQuirks returns a quirk set with every flag explicitly set and no quirky
// behavior enabled, except for the ones Octo observes: clearing the screen on
// resolution changes and drawing DXY0 as a 16x16 sprite.
func NewQuirks() Quirks {
	return Quirks{
		Shift:          boolPtr(false),
		LoadStore:      boolPtr(false),
		Jump0:          boolPtr(false),
		Logic:          boolPtr(false),
		Clip:           boolPtr(false),
		VBlank:         boolPtr(false),
		VFOrder:        boolPtr(false),
		LoresDXY0:      loresPtr(LoresBigSprite),
		ResClear:       boolPtr(true),
		DelayWrap:      boolPtr(false),
		HiresCollision: boolPtr(false),
		ClipCollision:  boolPtr(false),
		Scroll:         boolPtr(false),
		OverflowI:      boolPtr(false),
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func u16Ptr(v uint16) *uint16 {
	return &v
}

func loresPtr(v LoresDXY0Behavior) *LoresDXY0Behavior {
	return &v
}
