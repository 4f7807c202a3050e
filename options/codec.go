package options

import (
	"fmt"
	"strconv"
)

// InvalidQuirkValueError is returned when a quirk flag holds anything other
// than a boolean or the integers zero and one. A game that asks for an
// unknown quirk state cannot be run faithfully, so the whole document parse
// fails.
type InvalidQuirkValueError struct {
	Key   string
	Value any
}

func (e *InvalidQuirkValueError) Error() string {
	return fmt.Sprintf("invalid value %v for %s, expected zero or one", e.Value, e.Key)
}

// quirkFromInt decodes an integer quirk value. Only 0 and 1 are valid.
func quirkFromInt(key string, value int64) (*bool, error) {
	switch value {
	case 0:
		return boolPtr(false), nil
	case 1:
		return boolPtr(true), nil
	default:
		return nil, &InvalidQuirkValueError{Key: key, Value: value}
	}
}

// quirkToInt encodes a quirk flag as its wire integer.
func quirkToInt(value bool) uint8 {
	if value {
		return 1
	}
	return 0
}

// u16FromString decodes a numeric setting given as text. Unlike quirk
// decoding this is deliberately lenient: community-authored metadata contains
// malformed numbers in the wild, and those should degrade to "unspecified"
// instead of aborting the whole document parse.
func u16FromString(text string) *uint16 {
	v, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return nil
	}
	return u16Ptr(uint16(v))
}
