package converter

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrEmpty indicates the input was empty.
	ErrEmpty = errors.New("empty input")

	// ErrNotANumber indicates decimal input that is not a base-10 integer.
	ErrNotANumber = errors.New("not a number")

	// ErrNotBinary indicates input containing characters other than 0 and 1.
	ErrNotBinary = errors.New("not a binary number")

	// ErrNotHex indicates input containing non-hexadecimal characters.
	ErrNotHex = errors.New("not a hexadecimal number")

	// ErrTooLarge indicates input longer or larger than the mode allows.
	ErrTooLarge = errors.New("number too large")

	// ErrUnknownMode indicates a Mode outside the four known directions.
	ErrUnknownMode = errors.New("unknown conversion mode")

	// ErrConversion indicates Convert was handed input that cannot be parsed.
	ErrConversion = errors.New("conversion error")
)

// DialogTitle is the title used when a validation failure is shown to the user.
const DialogTitle = "Invalid number"

// Kind classifies a validation failure.
type Kind int

const (
	KindEmpty Kind = iota + 1
	KindNotANumber
	KindNotBinary
	KindNotHex
	KindTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNotANumber:
		return "NotANumber"
	case KindNotBinary:
		return "NotBinary"
	case KindNotHex:
		return "NotHex"
	case KindTooLarge:
		return "TooLarge"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmpty
	case KindNotANumber:
		return ErrNotANumber
	case KindNotBinary:
		return ErrNotBinary
	case KindNotHex:
		return ErrNotHex
	case KindTooLarge:
		return ErrTooLarge
	default:
		return nil
	}
}

// ValidationError reports why input was rejected for a mode.
type ValidationError struct {
	Mode  Mode
	Input string
	Kind  Kind
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q for %s: %s", e.Input, e.Mode, e.Kind.sentinel())
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Message is the text shown to the user in the error dialog.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case KindEmpty:
		return "Enter a valid number."
	case KindNotANumber:
		return "That is not a number!"
	case KindNotBinary:
		return "That is not a binary number!"
	case KindNotHex:
		return "That is not a hexadecimal number! (Example: FA0F34)"
	case KindTooLarge:
		switch e.Mode.Source() {
		case Binary:
			return "That number is too big! (Max is 31 bits)"
		case Hex:
			return "That number is too big! (Max = 7FFFFFFF)"
		default:
			return "That number is too big! (Max = 2,147,483,647)"
		}
	default:
		return e.Error()
	}
}

// UserMessage returns the dialog text for err. Validation failures get
// their kind's message; anything else falls back to err.Error().
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message()
	}
	return err.Error()
}

func newValidationError(mode Mode, input string, kind Kind) *ValidationError {
	return &ValidationError{Mode: mode, Input: input, Kind: kind}
}
