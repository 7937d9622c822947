package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		input string
		want  error
	}{
		{"decimal ok", DecimalToBinary, "42", nil},
		{"decimal max", DecimalToBinary, "2147483647", nil},
		{"decimal signed", DecimalToHex, "-42", nil},
		{"decimal plus sign", DecimalToHex, "+42", nil},
		{"decimal zero", DecimalToHex, "0", nil},
		{"decimal overflow", DecimalToBinary, "2147483648", ErrTooLarge},
		{"decimal huge", DecimalToHex, "99999999999", ErrTooLarge},
		{"decimal too long", DecimalToBinary, "00000000001", ErrTooLarge},
		{"decimal min int too long", DecimalToBinary, "-2147483648", ErrTooLarge},
		{"decimal letters", DecimalToBinary, "12a", ErrNotANumber},
		{"decimal lone sign", DecimalToHex, "-", ErrNotANumber},
		{"decimal space", DecimalToHex, " 12", ErrNotANumber},
		{"binary ok", BinaryToDecimal, "1011", nil},
		{"binary leading zeros", BinaryToDecimal, "0000", nil},
		{"binary 31 bits", BinaryToDecimal, strings.Repeat("1", 31), nil},
		{"binary 32 bits", BinaryToDecimal, strings.Repeat("1", 32), ErrTooLarge},
		{"binary bad digit", BinaryToDecimal, "102", ErrNotBinary},
		{"binary bad digit beats length", BinaryToDecimal, strings.Repeat("2", 40), ErrNotBinary},
		{"hex ok", HexToDecimal, "1A", nil},
		{"hex lower", HexToDecimal, "ff", nil},
		{"hex max", HexToDecimal, "7FFFFFFF", nil},
		{"hex over signed range", HexToDecimal, "80000000", ErrTooLarge},
		{"hex all ones", HexToDecimal, "ffffffff", ErrTooLarge},
		{"hex nine digits", HexToDecimal, "123456789", ErrTooLarge},
		{"hex bad digit", HexToDecimal, "1G", ErrNotHex},
		{"hex prefix", HexToDecimal, "0x1A", ErrNotHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mode, tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.mode, vErr.Mode)
			assert.Equal(t, tt.input, vErr.Input)
		})
	}
}

func TestValidateEmptyFailsForEveryMode(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			err := Validate(mode, "")
			assert.ErrorIs(t, err, ErrEmpty)
		})
	}
}

func TestValidateUnknownMode(t *testing.T) {
	err := Validate(Mode(42), "1")
	assert.ErrorIs(t, err, ErrUnknownMode)

	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}
