package converter

import (
	"fmt"
	"strconv"
)

// Convert returns input rewritten in mode's target base. Input is
// expected to have passed Validate; anything that still fails to parse
// yields an error wrapping ErrConversion.
//
// Decimal sources are read as signed 32-bit values and written as their
// unsigned 32-bit pattern, so -1 becomes "ffffffff". Binary and hex
// sources are read as unsigned 32-bit patterns and written as signed
// decimals, which makes every Decimal to Binary/Hex output convert back
// to the original number.
func Convert(mode Mode, input string) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	switch mode.Source() {
	case Decimal:
		n, err := strconv.ParseInt(input, 10, 32)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrConversion, mode, err)
		}
		return strconv.FormatUint(uint64(uint32(int32(n))), mode.Target().Radix()), nil
	default:
		u, err := strconv.ParseUint(input, mode.Source().Radix(), 32)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrConversion, mode, err)
		}
		return strconv.FormatInt(int64(int32(uint32(u))), 10), nil
	}
}
