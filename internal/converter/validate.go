package converter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Validate checks input against the grammar and bounds of mode's source
// base. It returns nil, a *ValidationError, or an error wrapping
// ErrUnknownMode.
func Validate(mode Mode, input string) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if input == "" {
		return newValidationError(mode, input, KindEmpty)
	}

	switch mode.Source() {
	case Decimal:
		return validateDecimal(mode, input)
	case Binary:
		return validateDigits(mode, input, func(r rune) bool { return r == '0' || r == '1' }, KindNotBinary)
	case Hex:
		if err := validateDigits(mode, input, isHexDigit, KindNotHex); err != nil {
			return err
		}
		// 8 hex digits can exceed the signed 32-bit range.
		if v, _ := strconv.ParseUint(input, 16, 32); v > math.MaxInt32 {
			return newValidationError(mode, input, KindTooLarge)
		}
		return nil
	}
	return nil
}

func validateDecimal(mode Mode, input string) error {
	if _, err := strconv.ParseInt(input, 10, 32); err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return newValidationError(mode, input, KindTooLarge)
		}
		return newValidationError(mode, input, KindNotANumber)
	}
	if len(input) > mode.MaxLength() {
		return newValidationError(mode, input, KindTooLarge)
	}
	return nil
}

func validateDigits(mode Mode, input string, ok func(rune) bool, kind Kind) error {
	for _, r := range input {
		if !ok(r) {
			return newValidationError(mode, input, kind)
		}
	}
	if len(input) > mode.MaxLength() {
		return newValidationError(mode, input, KindTooLarge)
	}
	return nil
}
