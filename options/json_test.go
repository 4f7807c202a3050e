package options

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// octoDefaults is the option set Octo exports for a new game, with quirk
// flags in their integer form.
const octoDefaults = `{"tickrate":20,"fillColor":"#FFCC00","fillColor2":"#FF6600",` +
	`"blendColor":"#662200","backgroundColor":"#996600","buzzColor":"#FFAA00",` +
	`"quietColor":"#000000","shiftQuirks":0,"loadStoreQuirks":0,"vfOrderQuirks":0,` +
	`"clipQuirks":1,"vBlankQuirks":1,"jumpQuirks":0,"screenRotation":0,` +
	`"maxSize":3215,"touchInputMode":"none","logicQuirks":1,"fontStyle":"octo"}`

func TestDecodeJSONOctoDefaults(t *testing.T) {
	opts, err := DecodeJSON([]byte(octoDefaults))
	assert.NoError(t, err)

	assert.Equal(t, uint16(20), *opts.Tickrate)
	assert.Equal(t, uint16(3215), *opts.MaxSize)
	assert.Nil(t, opts.StartAddress)
	assert.Equal(t, RotationNormal, opts.ScreenRotation)
	assert.Equal(t, FontOcto, opts.FontStyle)
	assert.Equal(t, TouchNone, opts.TouchInputMode)

	assert.Equal(t, Color{R: 0xFF, G: 0xCC}, *opts.Colors.FillColor)
	assert.Equal(t, Color{R: 0xFF, G: 0x66}, *opts.Colors.FillColor2)
	assert.Equal(t, Color{R: 0x66, G: 0x22}, *opts.Colors.BlendColor)
	assert.Equal(t, Color{R: 0x99, G: 0x66}, *opts.Colors.BackgroundColor)
	assert.Equal(t, Color{R: 0xFF, G: 0xAA}, *opts.Colors.BuzzColor)
	assert.Equal(t, Color{}, *opts.Colors.QuietColor)

	assert.False(t, *opts.Quirks.Shift)
	assert.False(t, *opts.Quirks.LoadStore)
	assert.False(t, *opts.Quirks.Jump0)
	assert.False(t, *opts.Quirks.VFOrder)
	assert.True(t, *opts.Quirks.Logic)
	assert.True(t, *opts.Quirks.Clip)
	assert.True(t, *opts.Quirks.VBlank)

	// absent quirks stay unspecified
	assert.Nil(t, opts.Quirks.LoresDXY0)
	assert.Nil(t, opts.Quirks.ResClear)
	assert.Nil(t, opts.Quirks.DelayWrap)
	assert.Nil(t, opts.Quirks.HiresCollision)
	assert.Nil(t, opts.Quirks.ClipCollision)
	assert.Nil(t, opts.Quirks.Scroll)
	assert.Nil(t, opts.Quirks.OverflowI)
}

func TestDecodeJSONEmptyDocument(t *testing.T) {
	opts, err := DecodeJSON([]byte(`{}`))
	assert.NoError(t, err)
	assert.Equal(t, Options{}, opts)

	// the zero value carries the documented enum defaults
	assert.Equal(t, RotationNormal, opts.ScreenRotation)
	assert.Equal(t, FontOcto, opts.FontStyle)
	assert.Equal(t, TouchNone, opts.TouchInputMode)
}

func TestDecodeJSONQuirkValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *bool
	}{
		{name: "integer one", input: `{"shiftQuirks":1}`, want: boolPtr(true)},
		{name: "integer zero", input: `{"shiftQuirks":0}`, want: boolPtr(false)},
		{name: "boolean true", input: `{"shiftQuirks":true}`, want: boolPtr(true)},
		{name: "boolean false", input: `{"shiftQuirks":false}`, want: boolPtr(false)},
		{name: "absent", input: `{}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := DecodeJSON([]byte(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, opts.Quirks.Shift)
		})
	}
}

func TestDecodeJSONQuirkStrictness(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "integer out of range", input: `{"shiftQuirks":2}`},
		{name: "negative integer", input: `{"logicQuirks":-1}`},
		{name: "fraction", input: `{"clipQuirks":0.5}`},
		{name: "string", input: `{"vBlankQuirks":"1"}`},
		{name: "null", input: `{"scrollQuirks":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			assert.Error(t, err)

			var quirkErr *InvalidQuirkValueError
			assert.True(t, errors.As(err, &quirkErr))
		})
	}
}

func TestDecodeJSONNumericLeniency(t *testing.T) {
	// malformed numeric strings degrade to unspecified without failing the
	// whole document
	opts, err := DecodeJSON([]byte(`{"tickrate":"fast","maxSize":"3584"}`))
	assert.NoError(t, err)
	assert.Nil(t, opts.Tickrate)
	assert.Equal(t, uint16(3584), *opts.MaxSize)
}

func TestDecodeJSONNumericErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "out of range", input: `{"tickrate":70000}`},
		{name: "fraction", input: `{"tickrate":1.5}`},
		{name: "negative", input: `{"startAddress":-1}`},
		{name: "wrong type", input: `{"maxSize":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeJSONEnums(t *testing.T) {
	opts, err := DecodeJSON([]byte(`{"screenRotation":270,"fontStyle":"akouz1",` +
		`"touchInputMode":"seg16fill","loresDXY0Quirks":"tall_sprite"}`))
	assert.NoError(t, err)
	assert.Equal(t, RotationCounterClockWise, opts.ScreenRotation)
	assert.Equal(t, FontAKouZ1, opts.FontStyle)
	assert.Equal(t, TouchSeg16Fill, opts.TouchInputMode)
	assert.Equal(t, LoresTallSprite, *opts.Quirks.LoresDXY0)
}

func TestDecodeJSONEnumErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid rotation", input: `{"screenRotation":45}`},
		{name: "rotation as string", input: `{"screenRotation":"90"}`},
		{name: "unknown font", input: `{"fontStyle":"comic_sans"}`},
		{name: "unknown touch mode", input: `{"touchInputMode":"stylus"}`},
		{name: "unknown lores behavior", input: `{"loresDXY0Quirks":"huge_sprite"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeJSONUnknownKeysIgnored(t *testing.T) {
	opts, err := DecodeJSON([]byte(`{"futureSetting":"whatever","tickrate":30}`))
	assert.NoError(t, err)
	assert.Equal(t, uint16(30), *opts.Tickrate)
}

func TestDecodeJSONMalformed(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"tickrate":`))
	assert.Error(t, err)
}

func TestEncodeJSON(t *testing.T) {
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

	data, err := opts.EncodeJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"tickrate":20,"screenRotation":0,"fontStyle":"octo",`+
		`"touchInputMode":"none","backgroundColor":"#996600",`+
		`"shiftQuirks":0,"logicQuirks":1}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "zero value", opts: Options{}},
		{name: "defaults", opts: NewOptions()},
		{
			name: "partial",
			opts: Options{
				Tickrate:       u16Ptr(200),
				ScreenRotation: RotationClockWise,
				FontStyle:      FontFish,
				TouchInputMode: TouchGamepad,
				Colors:         Colors{FillColor: &Color{R: 255}},
				Quirks: Quirks{
					Logic:     boolPtr(true),
					LoresDXY0: loresPtr(LoresNoOp),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.opts.EncodeJSON()
			assert.NoError(t, err)

			decoded, err := DecodeJSON(data)
			assert.NoError(t, err)
			assert.Equal(t, tt.opts, decoded)
		})
	}
}
