package options

import (
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeINI(t *testing.T) {
	input := "core.tickrate = 20\n" +
		"core.max_rom=3215\n" +
		"core.rotation=0\n" +
		"core.font=octo\n" +
		"core.touch_mode=none\n" +
		"colors.plane0=996600\n" +
		"quirks.shift=0\n" +
		"quirks.logic=1"

	opts, err := DecodeINI([]byte(input))
	assert.NoError(t, err)

	assert.Equal(t, uint16(20), *opts.Tickrate)
	assert.Equal(t, uint16(3215), *opts.MaxSize)
	assert.Equal(t, RotationNormal, opts.ScreenRotation)
	assert.Equal(t, FontOcto, opts.FontStyle)
	assert.Equal(t, TouchNone, opts.TouchInputMode)
	assert.Nil(t, opts.StartAddress)

	assert.Equal(t, Color{R: 0x99, G: 0x66}, *opts.Colors.BackgroundColor)
	assert.Nil(t, opts.Colors.FillColor)
	assert.Nil(t, opts.Colors.FillColor2)
	assert.Nil(t, opts.Colors.BlendColor)
	assert.Nil(t, opts.Colors.BuzzColor)
	assert.Nil(t, opts.Colors.QuietColor)

	assert.False(t, *opts.Quirks.Shift)
	assert.True(t, *opts.Quirks.Logic)
	assert.Nil(t, opts.Quirks.LoadStore)
	assert.Nil(t, opts.Quirks.Jump0)
	assert.Nil(t, opts.Quirks.Clip)
	assert.Nil(t, opts.Quirks.VBlank)
	assert.Nil(t, opts.Quirks.VFOrder)
	assert.Nil(t, opts.Quirks.LoresDXY0)
	assert.Nil(t, opts.Quirks.ResClear)
	assert.Nil(t, opts.Quirks.DelayWrap)
	assert.Nil(t, opts.Quirks.HiresCollision)
	assert.Nil(t, opts.Quirks.ClipCollision)
	assert.Nil(t, opts.Quirks.Scroll)
	assert.Nil(t, opts.Quirks.OverflowI)
}

// The historical flat format key names do not match the color semantics:
// plane0 carries the background color and background carries the quiet
// buzzer indicator color.
func TestDecodeINIColorKeyMapping(t *testing.T) {
	opts, err := DecodeINI([]byte("colors.plane0=996600\ncolors.background=FFAA00\n"))
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 0x99, G: 0x66}, *opts.Colors.BackgroundColor)
	assert.Equal(t, Color{R: 0xFF, G: 0xAA}, *opts.Colors.QuietColor)
}

func TestDecodeINILineHandling(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "crlf line endings",
			input: "core.tickrate = 30\r\nquirks.shift = 1\r\n",
		},
		{
			name:  "no spacing around separator",
			input: "core.tickrate=30\nquirks.shift=1",
		},
		{
			name:  "extra whitespace",
			input: "  core.tickrate  =  30  \n\n  quirks.shift = 1\n",
		},
		{
			name:  "case insensitive keys",
			input: "CORE.TICKRATE = 30\nQuirks.Shift = 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := DecodeINI([]byte(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, uint16(30), *opts.Tickrate)
			assert.True(t, *opts.Quirks.Shift)
		})
	}
}

func TestDecodeINIEmptyDocument(t *testing.T) {
	opts, err := DecodeINI(nil)
	assert.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestDecodeINIUnknownKeysIgnored(t *testing.T) {
	opts, err := DecodeINI([]byte("future.setting = whatever\ncore.tickrate = 30\n"))
	assert.NoError(t, err)
	assert.Equal(t, uint16(30), *opts.Tickrate)
}

func TestDecodeINIMissingSeparator(t *testing.T) {
	_, err := DecodeINI([]byte("core.tickrate = 20\nnot a key value pair\n"))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "line 2")
}

func TestDecodeINIQuirkStrictness(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "integer out of range", input: "quirks.shift = 2"},
		{name: "negative integer", input: "quirks.logic = -1"},
		{name: "boolean text", input: "quirks.clip = true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeINI([]byte(tt.input))
			assert.Error(t, err)

			var quirkErr *InvalidQuirkValueError
			assert.True(t, errors.As(err, &quirkErr))
		})
	}
}

func TestDecodeININumericLeniency(t *testing.T) {
	opts, err := DecodeINI([]byte("core.tickrate = fast\ncore.max_rom = 3584\n"))
	assert.NoError(t, err)
	assert.Nil(t, opts.Tickrate)
	assert.Equal(t, uint16(3584), *opts.MaxSize)
}

func TestDecodeINIEnums(t *testing.T) {
	input := "core.rotation = 180\n" +
		"core.font = a_kou_z1\n" +
		"core.touch_mode = seg16fill\n" +
		"quirks.lores_dxy0 = big_sprite\n"

	opts, err := DecodeINI([]byte(input))
	assert.NoError(t, err)
	assert.Equal(t, RotationUpsideDown, opts.ScreenRotation)
	assert.Equal(t, FontAKouZ1, opts.FontStyle)
	assert.Equal(t, TouchSeg16Fill, opts.TouchInputMode)
	assert.Equal(t, LoresBigSprite, *opts.Quirks.LoresDXY0)
}

func TestDecodeINIEnumErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid rotation", input: "core.rotation = 45"},
		{name: "rotation not a number", input: "core.rotation = left"},
		{name: "unknown font", input: "core.font = akouz1"},
		{name: "unknown touch mode", input: "core.touch_mode = stylus"},
		{name: "unknown lores behavior", input: "quirks.lores_dxy0 = huge_sprite"},
		{name: "bad color", input: "colors.plane1 = nothexatall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeINI([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEncodeINI(t *testing.T) {
	opts := Options{
		Tickrate: u16Ptr(20),
		Colors: Colors{
			BackgroundColor: &Color{R: 0x99, G: 0x66},
		},
		Quirks: Quirks{
			Shift: boolPtr(false),
			Logic: boolPtr(true),
		},
	}

	want := "core.tickrate = 20\n" +
		"core.rotation = 0\n" +
		"core.font = octo\n" +
		"core.touch_mode = none\n" +
		"colors.plane0 = 996600\n" +
		"quirks.shift = 0\n" +
		"quirks.logic = 1\n"
	assert.Equal(t, want, string(opts.EncodeINI()))
}

func TestEncodeINIOmitsUnspecified(t *testing.T) {
	output := string(Options{}.EncodeINI())

	// the three enum settings are always written, everything else is
	// unspecified and omitted
	assert.Equal(t, "core.rotation = 0\ncore.font = octo\ncore.touch_mode = none\n", output)
	assert.False(t, strings.Contains(output, "quirks."))
	assert.False(t, strings.Contains(output, "colors."))
}

func TestINIRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "zero value", opts: Options{}},
		{name: "defaults", opts: NewOptions()},
		{
			name: "partial",
			opts: Options{
				MaxSize:        u16Ptr(65024),
				ScreenRotation: RotationUpsideDown,
				FontStyle:      FontSCHIP,
				TouchInputMode: TouchVIP,
				Colors:         Colors{QuietColor: &Color{B: 0x33}},
				Quirks: Quirks{
					Scroll:    boolPtr(true),
					LoresDXY0: loresPtr(LoresTallSprite),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeINI(tt.opts.EncodeINI())
			assert.NoError(t, err)
			assert.Equal(t, tt.opts, decoded)
		})
	}
}
