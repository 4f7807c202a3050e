package options

import (
	"encoding/json"
	"fmt"
	"math"
)

// JSON wire keys. The structured format is a single flat object: the Colors
// and Quirks groups are not nested sub-objects, their fields live at the top
// level next to the scalar settings. Keys mirror the struct field names in
// camelCase.
const (
	jsonKeyTickrate       = "tickrate"
	jsonKeyMaxSize        = "maxSize"
	jsonKeyScreenRotation = "screenRotation"
	jsonKeyFontStyle      = "fontStyle"
	jsonKeyTouchInputMode = "touchInputMode"
	jsonKeyStartAddress   = "startAddress"

	jsonKeyFillColor       = "fillColor"
	jsonKeyFillColor2      = "fillColor2"
	jsonKeyBlendColor      = "blendColor"
	jsonKeyBackgroundColor = "backgroundColor"
	jsonKeyBuzzColor       = "buzzColor"
	jsonKeyQuietColor      = "quietColor"

	jsonKeyShiftQuirks          = "shiftQuirks"
	jsonKeyLoadStoreQuirks      = "loadStoreQuirks"
	jsonKeyJumpQuirks           = "jumpQuirks"
	jsonKeyLogicQuirks          = "logicQuirks"
	jsonKeyClipQuirks           = "clipQuirks"
	jsonKeyVBlankQuirks         = "vBlankQuirks"
	jsonKeyVFOrderQuirks        = "vfOrderQuirks"
	jsonKeyLoresDXY0Quirks      = "loresDXY0Quirks"
	jsonKeyResClearQuirks       = "resClearQuirks"
	jsonKeyDelayWrapQuirks      = "delayWrapQuirks"
	jsonKeyHiresCollisionQuirks = "hiresCollisionQuirks"
	jsonKeyClipCollisionQuirks  = "clipCollisionQuirks"
	jsonKeyScrollQuirks         = "scrollQuirks"
	jsonKeyOverflowIQuirks      = "overflowIQuirks"
)

// DecodeJSON decodes an options document in the structured JSON format used
// by Octo exports and the CHIP-8 Archive.
//
// Missing keys decode to nil (or to the documented default for the three
// enum settings), so the empty document {} is valid and yields a fully
// unspecified option set. Unknown keys are ignored for forward
// compatibility. Malformed JSON, bad colors, bad enum names and quirk values
// other than booleans or 0/1 are errors; a numeric setting given as an
// unparsable string degrades to nil instead.
func DecodeJSON(data []byte) (Options, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Options{}, fmt.Errorf("parsing options document: %w", err)
	}
	return decodeJSONDoc(doc)
}

// UnmarshalJSON implements json.Unmarshaler so Options can be embedded in
// larger documents, like the per-program metadata of the CHIP-8 Archive.
func (o *Options) UnmarshalJSON(data []byte) error {
	opts, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*o = opts
	return nil
}

// EncodeJSON encodes the options in the structured JSON format. Nil settings
// are omitted entirely, never written as null. Quirk flags are written as the
// integers 1/0, colors in their canonical "#RRGGBB" form and the rotation as
// its numeric degree value.
func (o Options) EncodeJSON() ([]byte, error) {
	return json.Marshal(o.jsonFields())
}

// MarshalJSON implements json.Marshaler.
func (o Options) MarshalJSON() ([]byte, error) {
	return o.EncodeJSON()
}

func decodeJSONDoc(doc map[string]json.RawMessage) (Options, error) {
	var opts Options
	var err error

	if opts.ScreenRotation, err = jsonRotationField(doc); err != nil {
		return Options{}, err
	}
	if opts.FontStyle, err = jsonEnumField(doc, jsonKeyFontStyle, fontsByJSONName, FontOcto); err != nil {
		return Options{}, err
	}
	if opts.TouchInputMode, err = jsonEnumField(doc, jsonKeyTouchInputMode, touchModesByName, TouchNone); err != nil {
		return Options{}, err
	}

	for _, field := range []struct {
		key    string
		target **uint16
	}{
		{jsonKeyTickrate, &opts.Tickrate},
		{jsonKeyMaxSize, &opts.MaxSize},
		{jsonKeyStartAddress, &opts.StartAddress},
	} {
		if *field.target, err = jsonU16Field(doc, field.key); err != nil {
			return Options{}, err
		}
	}

	for _, field := range []struct {
		key    string
		target **Color
	}{
		{jsonKeyFillColor, &opts.Colors.FillColor},
		{jsonKeyFillColor2, &opts.Colors.FillColor2},
		{jsonKeyBlendColor, &opts.Colors.BlendColor},
		{jsonKeyBackgroundColor, &opts.Colors.BackgroundColor},
		{jsonKeyBuzzColor, &opts.Colors.BuzzColor},
		{jsonKeyQuietColor, &opts.Colors.QuietColor},
	} {
		if *field.target, err = jsonColorField(doc, field.key); err != nil {
			return Options{}, err
		}
	}

	for _, field := range []struct {
		key    string
		target **bool
	}{
		{jsonKeyShiftQuirks, &opts.Quirks.Shift},
		{jsonKeyLoadStoreQuirks, &opts.Quirks.LoadStore},
		{jsonKeyJumpQuirks, &opts.Quirks.Jump0},
		{jsonKeyLogicQuirks, &opts.Quirks.Logic},
		{jsonKeyClipQuirks, &opts.Quirks.Clip},
		{jsonKeyVBlankQuirks, &opts.Quirks.VBlank},
		{jsonKeyVFOrderQuirks, &opts.Quirks.VFOrder},
		{jsonKeyResClearQuirks, &opts.Quirks.ResClear},
		{jsonKeyDelayWrapQuirks, &opts.Quirks.DelayWrap},
		{jsonKeyHiresCollisionQuirks, &opts.Quirks.HiresCollision},
		{jsonKeyClipCollisionQuirks, &opts.Quirks.ClipCollision},
		{jsonKeyScrollQuirks, &opts.Quirks.Scroll},
		{jsonKeyOverflowIQuirks, &opts.Quirks.OverflowI},
	} {
		if *field.target, err = jsonQuirkField(doc, field.key); err != nil {
			return Options{}, err
		}
	}

	if opts.Quirks.LoresDXY0, err = jsonLoresField(doc); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// jsonQuirkField decodes a tri-state quirk flag: a native boolean or the
// integers 0/1, with anything else rejected. A missing key is nil.
func jsonQuirkField(doc map[string]json.RawMessage, key string) (*bool, error) {
	msg, ok := doc[key]
	if !ok {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal(msg, &value); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	switch v := value.(type) {
	case bool:
		return boolPtr(v), nil
	case float64:
		if v == math.Trunc(v) {
			return quirkFromInt(key, int64(v))
		}
		return nil, &InvalidQuirkValueError{Key: key, Value: v}
	default:
		return nil, &InvalidQuirkValueError{Key: key, Value: value}
	}
}

// jsonU16Field decodes a numeric setting that may appear as a JSON number or
// as a numeric string. Strings that fail to parse degrade to nil; numbers
// outside the uint16 range and other JSON types are errors.
func jsonU16Field(doc map[string]json.RawMessage, key string) (*uint16, error) {
	msg, ok := doc[key]
	if !ok {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal(msg, &value); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) || v < 0 || v > math.MaxUint16 {
			return nil, fmt.Errorf("value %v for %s is not an unsigned 16 bit integer", v, key)
		}
		return u16Ptr(uint16(v)), nil
	case string:
		return u16FromString(v), nil
	default:
		return nil, fmt.Errorf("unexpected value %v for %s", value, key)
	}
}

func jsonColorField(doc map[string]json.RawMessage, key string) (*Color, error) {
	msg, ok := doc[key]
	if !ok {
		return nil, nil
	}
	var text string
	if err := json.Unmarshal(msg, &text); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	color, err := ParseColor(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &color, nil
}

func jsonRotationField(doc map[string]json.RawMessage) (ScreenRotation, error) {
	msg, ok := doc[jsonKeyScreenRotation]
	if !ok {
		return RotationNormal, nil
	}
	var value float64
	if err := json.Unmarshal(msg, &value); err != nil {
		return RotationNormal, fmt.Errorf("parsing %s: %w", jsonKeyScreenRotation, err)
	}
	if value != math.Trunc(value) || value < 0 || value > math.MaxUint16 {
		return RotationNormal, fmt.Errorf("invalid screen rotation %v", value)
	}
	rotation, ok := screenRotationFromValue(uint16(value))
	if !ok {
		return RotationNormal, fmt.Errorf("invalid screen rotation %v", value)
	}
	return rotation, nil
}

func jsonEnumField[T comparable](doc map[string]json.RawMessage, key string,
	byName map[string]T, missing T) (T, error) {
	msg, ok := doc[key]
	if !ok {
		return missing, nil
	}
	var name string
	if err := json.Unmarshal(msg, &name); err != nil {
		return missing, fmt.Errorf("parsing %s: %w", key, err)
	}
	value, ok := byName[name]
	if !ok {
		return missing, fmt.Errorf("unknown %s %q", key, name)
	}
	return value, nil
}

func jsonLoresField(doc map[string]json.RawMessage) (*LoresDXY0Behavior, error) {
	if _, ok := doc[jsonKeyLoresDXY0Quirks]; !ok {
		return nil, nil
	}
	value, err := jsonEnumField(doc, jsonKeyLoresDXY0Quirks, loresDXY0ByName, LoresNoOp)
	if err != nil {
		return nil, err
	}
	return loresPtr(value), nil
}

// jsonOptions is the wire shape for encoding: one flat object, nil fields
// omitted. The tags are kept next to the key constants above so the mapping
// can be audited in one place.
type jsonOptions struct {
	Tickrate       *uint16 `json:"tickrate,omitempty"`
	MaxSize        *uint16 `json:"maxSize,omitempty"`
	ScreenRotation uint16  `json:"screenRotation"`
	FontStyle      string  `json:"fontStyle"`
	TouchInputMode string  `json:"touchInputMode"`
	StartAddress   *uint16 `json:"startAddress,omitempty"`

	FillColor       *string `json:"fillColor,omitempty"`
	FillColor2      *string `json:"fillColor2,omitempty"`
	BlendColor      *string `json:"blendColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	BuzzColor       *string `json:"buzzColor,omitempty"`
	QuietColor      *string `json:"quietColor,omitempty"`

	ShiftQuirks          *uint8  `json:"shiftQuirks,omitempty"`
	LoadStoreQuirks      *uint8  `json:"loadStoreQuirks,omitempty"`
	JumpQuirks           *uint8  `json:"jumpQuirks,omitempty"`
	LogicQuirks          *uint8  `json:"logicQuirks,omitempty"`
	ClipQuirks           *uint8  `json:"clipQuirks,omitempty"`
	VBlankQuirks         *uint8  `json:"vBlankQuirks,omitempty"`
	VFOrderQuirks        *uint8  `json:"vfOrderQuirks,omitempty"`
	LoresDXY0Quirks      *string `json:"loresDXY0Quirks,omitempty"`
	ResClearQuirks       *uint8  `json:"resClearQuirks,omitempty"`
	DelayWrapQuirks      *uint8  `json:"delayWrapQuirks,omitempty"`
	HiresCollisionQuirks *uint8  `json:"hiresCollisionQuirks,omitempty"`
	ClipCollisionQuirks  *uint8  `json:"clipCollisionQuirks,omitempty"`
	ScrollQuirks         *uint8  `json:"scrollQuirks,omitempty"`
	OverflowIQuirks      *uint8  `json:"overflowIQuirks,omitempty"`
}

func (o Options) jsonFields() jsonOptions {
	fields := jsonOptions{
		Tickrate:       o.Tickrate,
		MaxSize:        o.MaxSize,
		ScreenRotation: uint16(o.ScreenRotation),
		FontStyle:      fontJSONNames[o.FontStyle],
		TouchInputMode: touchModeNames[o.TouchInputMode],
		StartAddress:   o.StartAddress,

		FillColor:       colorWire(o.Colors.FillColor),
		FillColor2:      colorWire(o.Colors.FillColor2),
		BlendColor:      colorWire(o.Colors.BlendColor),
		BackgroundColor: colorWire(o.Colors.BackgroundColor),
		BuzzColor:       colorWire(o.Colors.BuzzColor),
		QuietColor:      colorWire(o.Colors.QuietColor),

		ShiftQuirks:          quirkWire(o.Quirks.Shift),
		LoadStoreQuirks:      quirkWire(o.Quirks.LoadStore),
		JumpQuirks:           quirkWire(o.Quirks.Jump0),
		LogicQuirks:          quirkWire(o.Quirks.Logic),
		ClipQuirks:           quirkWire(o.Quirks.Clip),
		VBlankQuirks:         quirkWire(o.Quirks.VBlank),
		VFOrderQuirks:        quirkWire(o.Quirks.VFOrder),
		ResClearQuirks:       quirkWire(o.Quirks.ResClear),
		DelayWrapQuirks:      quirkWire(o.Quirks.DelayWrap),
		HiresCollisionQuirks: quirkWire(o.Quirks.HiresCollision),
		ClipCollisionQuirks:  quirkWire(o.Quirks.ClipCollision),
		ScrollQuirks:         quirkWire(o.Quirks.Scroll),
		OverflowIQuirks:      quirkWire(o.Quirks.OverflowI),
	}
	if o.Quirks.LoresDXY0 != nil {
		name := loresDXY0Names[*o.Quirks.LoresDXY0]
		fields.LoresDXY0Quirks = &name
	}
	return fields
}

func colorWire(c *Color) *string {
	if c == nil {
		return nil
	}
	text := c.String()
	return &text
}

func quirkWire(flag *bool) *uint8 {
	if flag == nil {
		return nil
	}
	value := quirkToInt(*flag)
	return &value
}
