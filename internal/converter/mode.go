package converter

import (
	"fmt"
	"strings"
)

// Base is a number representation a Mode reads or writes.
type Base int

const (
	Decimal Base = iota
	Binary
	Hex
)

// Label is the name used in display lines.
func (b Base) Label() string {
	switch b {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	case Hex:
		return "Hex"
	default:
		return "Unknown"
	}
}

// Radix returns the numeric base used by strconv.
func (b Base) Radix() int {
	switch b {
	case Binary:
		return 2
	case Hex:
		return 16
	default:
		return 10
	}
}

// Mode is one of the four supported conversion directions.
type Mode int

const (
	DecimalToBinary Mode = iota
	BinaryToDecimal
	HexToDecimal
	DecimalToHex
)

type modeInfo struct {
	name      string
	short     string
	source    Base
	target    Base
	maxLength int
	limit     int
}

var modeTable = map[Mode]modeInfo{
	DecimalToBinary: {"Decimal to Binary", "dec2bin", Decimal, Binary, 10, 10},
	BinaryToDecimal: {"Binary to Decimal", "bin2dec", Binary, Decimal, 31, 31},
	HexToDecimal:    {"Hex to Decimal", "hex2dec", Hex, Decimal, 8, 9},
	DecimalToHex:    {"Decimal to Hex", "dec2hex", Decimal, Hex, 10, 10},
}

// Modes returns all modes in selector order.
func Modes() []Mode {
	return []Mode{DecimalToBinary, BinaryToDecimal, HexToDecimal, DecimalToHex}
}

// ModeNames returns the display names in selector order.
func ModeNames() []string {
	modes := Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}

// ParseMode accepts a display name ("Hex to Decimal") or a short name
// ("hex2dec"), case-insensitively.
func ParseMode(s string) (Mode, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		info := modeTable[m]
		if needle == strings.ToLower(info.name) || needle == info.short {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	_, ok := modeTable[m]
	return ok
}

func (m Mode) String() string {
	if info, ok := modeTable[m]; ok {
		return info.name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ShortName is the command-line spelling of the mode.
func (m Mode) ShortName() string {
	return modeTable[m].short
}

func (m Mode) Source() Base {
	return modeTable[m].source
}

func (m Mode) Target() Base {
	return modeTable[m].target
}

// MaxLength is the longest input that passes validation.
func (m Mode) MaxLength() int {
	return modeTable[m].maxLength
}

// InputLimit is the longest input an editor should let the user type.
// For hex it is one past MaxLength so an over-long value is reported
// instead of silently truncated.
func (m Mode) InputLimit() int {
	return modeTable[m].limit
}

// AcceptsRune reports whether r may be typed into the input at position pos.
func (m Mode) AcceptsRune(r rune, pos int) bool {
	if !m.Valid() {
		return false
	}
	switch m.Source() {
	case Decimal:
		return isDecimalDigit(r) || (r == '-' && pos == 0)
	case Binary:
		return r == '0' || r == '1'
	case Hex:
		return isHexDigit(r)
	default:
		return false
	}
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDecimalDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
