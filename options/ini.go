package options

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// INI wire keys. The flat format groups fields into three dotted namespaces.
//
// The historical color key names do not line up with what the colors mean:
// colors.plane0 is the background color and colors.background is the quiet
// buzzer indicator. The names are preserved verbatim for wire compatibility
// with existing cartridge metadata; the in-memory model uses the honest
// names.
const (
	iniKeyTickrate     = "core.tickrate"
	iniKeyMaxROM       = "core.max_rom"
	iniKeyRotation     = "core.rotation"
	iniKeyFont         = "core.font"
	iniKeyTouchMode    = "core.touch_mode"
	iniKeyStartAddress = "core.start_address"

	iniKeyPlane1     = "colors.plane1"     // fill color
	iniKeyPlane2     = "colors.plane2"     // second fill color
	iniKeyPlane3     = "colors.plane3"     // blend color
	iniKeyPlane0     = "colors.plane0"     // background color
	iniKeySound      = "colors.sound"      // buzz color
	iniKeyBackground = "colors.background" // quiet color

	iniKeyShift          = "quirks.shift"
	iniKeyLoadStore      = "quirks.loadstore"
	iniKeyJump0          = "quirks.jump0"
	iniKeyLogic          = "quirks.logic"
	iniKeyClip           = "quirks.clip"
	iniKeyVBlank         = "quirks.vblank"
	iniKeyVFOrder        = "quirks.vforder"
	iniKeyLoresDXY0      = "quirks.lores_dxy0"
	iniKeyResClear       = "quirks.resclear"
	iniKeyDelayWrap      = "quirks.delaywrap"
	iniKeyHiresCollision = "quirks.hirescollision"
	iniKeyClipCollision  = "quirks.clipcollision"
	iniKeyScroll         = "quirks.scroll"
	iniKeyOverflowI      = "quirks.overflow_i"
)

// DecodeINI decodes an options document in the flat, line-oriented
// "key = value" format used by cartridge metadata.
//
// Lines are terminated by \n or \r\n, whitespace around the separator is
// insignificant and keys match case-insensitively, so hand-edited files
// survive. Unknown keys are ignored: interpreters add keys this library does
// not know about, and skipping them keeps old readers forward compatible. A
// non-blank line without a separator is a syntax error.
func DecodeINI(data []byte) (Options, error) {
	var opts Options
	scanner := bufio.NewScanner(bytes.NewReader(data))

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return Options{}, fmt.Errorf("line %d: missing '=' separator", lineNo)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if err := applyINIValue(&opts, key, value); err != nil {
			return Options{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Options{}, fmt.Errorf("reading options document: %w", err)
	}
	return opts, nil
}

// applyINIValue decodes a single key/value pair into the option set. Keys
// that are not recognized are ignored.
func applyINIValue(opts *Options, key, value string) error {
	var err error

	switch key {
	case iniKeyTickrate:
		opts.Tickrate = u16FromString(value)
	case iniKeyMaxROM:
		opts.MaxSize = u16FromString(value)
	case iniKeyStartAddress:
		opts.StartAddress = u16FromString(value)

	case iniKeyRotation:
		opts.ScreenRotation, err = iniRotationValue(value)
	case iniKeyFont:
		opts.FontStyle, err = iniEnumValue(key, value, fontsByININame)
	case iniKeyTouchMode:
		opts.TouchInputMode, err = iniEnumValue(key, value, touchModesByName)

	case iniKeyPlane1:
		opts.Colors.FillColor, err = iniColorValue(key, value)
	case iniKeyPlane2:
		opts.Colors.FillColor2, err = iniColorValue(key, value)
	case iniKeyPlane3:
		opts.Colors.BlendColor, err = iniColorValue(key, value)
	case iniKeyPlane0:
		opts.Colors.BackgroundColor, err = iniColorValue(key, value)
	case iniKeySound:
		opts.Colors.BuzzColor, err = iniColorValue(key, value)
	case iniKeyBackground:
		opts.Colors.QuietColor, err = iniColorValue(key, value)

	case iniKeyShift:
		opts.Quirks.Shift, err = iniQuirkValue(key, value)
	case iniKeyLoadStore:
		opts.Quirks.LoadStore, err = iniQuirkValue(key, value)
	case iniKeyJump0:
		opts.Quirks.Jump0, err = iniQuirkValue(key, value)
	case iniKeyLogic:
		opts.Quirks.Logic, err = iniQuirkValue(key, value)
	case iniKeyClip:
		opts.Quirks.Clip, err = iniQuirkValue(key, value)
	case iniKeyVBlank:
		opts.Quirks.VBlank, err = iniQuirkValue(key, value)
	case iniKeyVFOrder:
		opts.Quirks.VFOrder, err = iniQuirkValue(key, value)
	case iniKeyResClear:
		opts.Quirks.ResClear, err = iniQuirkValue(key, value)
	case iniKeyDelayWrap:
		opts.Quirks.DelayWrap, err = iniQuirkValue(key, value)
	case iniKeyHiresCollision:
		opts.Quirks.HiresCollision, err = iniQuirkValue(key, value)
	case iniKeyClipCollision:
		opts.Quirks.ClipCollision, err = iniQuirkValue(key, value)
	case iniKeyScroll:
		opts.Quirks.Scroll, err = iniQuirkValue(key, value)
	case iniKeyOverflowI:
		opts.Quirks.OverflowI, err = iniQuirkValue(key, value)

	case iniKeyLoresDXY0:
		var behavior LoresDXY0Behavior
		if behavior, err = iniEnumValue(key, value, loresDXY0ByName); err == nil {
			opts.Quirks.LoresDXY0 = loresPtr(behavior)
		}
	}
	return err
}

// iniQuirkValue decodes a tri-state quirk flag from its ASCII integer form.
func iniQuirkValue(key, value string) (*bool, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, &InvalidQuirkValueError{Key: key, Value: value}
	}
	return quirkFromInt(key, n)
}

func iniColorValue(key, value string) (*Color, error) {
	color, err := ParseColor(value)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &color, nil
}

func iniRotationValue(value string) (ScreenRotation, error) {
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return RotationNormal, fmt.Errorf("invalid screen rotation %q", value)
	}
	rotation, ok := screenRotationFromValue(uint16(n))
	if !ok {
		return RotationNormal, fmt.Errorf("invalid screen rotation %q", value)
	}
	return rotation, nil
}

func iniEnumValue[T comparable](key, value string, byName map[string]T) (T, error) {
	enum, ok := byName[value]
	if !ok {
		return enum, fmt.Errorf("unknown %s %q", key, value)
	}
	return enum, nil
}

// EncodeINI encodes the options in the flat format. The three enum settings
// are always written; every other setting is omitted when nil. Colors are
// written as bare 6-digit hex without the "#" marker.
func (o Options) EncodeINI() []byte {
	var buf bytes.Buffer

	writeINIU16 := func(key string, value *uint16) {
		if value != nil {
			fmt.Fprintf(&buf, "%s = %d\n", key, *value)
		}
	}
	writeINIColor := func(key string, color *Color) {
		if color != nil {
			// canonical form without the leading #
			fmt.Fprintf(&buf, "%s = %s\n", key, color.String()[1:])
		}
	}
	writeINIQuirk := func(key string, flag *bool) {
		if flag != nil {
			fmt.Fprintf(&buf, "%s = %d\n", key, quirkToInt(*flag))
		}
	}

	writeINIU16(iniKeyTickrate, o.Tickrate)
	writeINIU16(iniKeyMaxROM, o.MaxSize)
	fmt.Fprintf(&buf, "%s = %d\n", iniKeyRotation, uint16(o.ScreenRotation))
	fmt.Fprintf(&buf, "%s = %s\n", iniKeyFont, fontININames[o.FontStyle])
	fmt.Fprintf(&buf, "%s = %s\n", iniKeyTouchMode, touchModeNames[o.TouchInputMode])
	writeINIU16(iniKeyStartAddress, o.StartAddress)

	writeINIColor(iniKeyPlane1, o.Colors.FillColor)
	writeINIColor(iniKeyPlane2, o.Colors.FillColor2)
	writeINIColor(iniKeyPlane3, o.Colors.BlendColor)
	writeINIColor(iniKeyPlane0, o.Colors.BackgroundColor)
	writeINIColor(iniKeySound, o.Colors.BuzzColor)
	writeINIColor(iniKeyBackground, o.Colors.QuietColor)

	writeINIQuirk(iniKeyShift, o.Quirks.Shift)
	writeINIQuirk(iniKeyLoadStore, o.Quirks.LoadStore)
	writeINIQuirk(iniKeyJump0, o.Quirks.Jump0)
	writeINIQuirk(iniKeyLogic, o.Quirks.Logic)
	writeINIQuirk(iniKeyClip, o.Quirks.Clip)
	writeINIQuirk(iniKeyVBlank, o.Quirks.VBlank)
	writeINIQuirk(iniKeyVFOrder, o.Quirks.VFOrder)
	if o.Quirks.LoresDXY0 != nil {
		fmt.Fprintf(&buf, "%s = %s\n", iniKeyLoresDXY0, loresDXY0Names[*o.Quirks.LoresDXY0])
	}
	writeINIQuirk(iniKeyResClear, o.Quirks.ResClear)
	writeINIQuirk(iniKeyDelayWrap, o.Quirks.DelayWrap)
	writeINIQuirk(iniKeyHiresCollision, o.Quirks.HiresCollision)
	writeINIQuirk(iniKeyClipCollision, o.Quirks.ClipCollision)
	writeINIQuirk(iniKeyScroll, o.Quirks.Scroll)
	writeINIQuirk(iniKeyOverflowI, o.Quirks.OverflowI)

	return buf.Bytes()
}
