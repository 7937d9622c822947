// Package converter validates and converts numbers between decimal,
// binary and hexadecimal representations.
//
// Every operation takes the conversion Mode as an explicit argument; the
// package holds no "current mode" state. A request runs in three steps:
//
//	err := converter.Validate(mode, input)        // *ValidationError on failure
//	out, err := converter.Convert(mode, input)    // only after Validate succeeds
//	line := formatter.Format(mode, input, out)    // "Hex: 1A > Decimal: 26."
//
// Service chains the three for callers that want a single entry point.
//
// Values are limited to 32 bits. Decimal input must fit in a signed
// 32-bit integer; negative decimals convert to their two's-complement
// binary or hexadecimal pattern, and 32-bit binary or hexadecimal input
// converts back the same way.
package converter
