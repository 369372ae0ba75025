// Package decimal assembles the exact value of normalized literal digits.
//
// The equation for a block is:
//
//	number = value * radix ^ scale
//
// Where number is the exact number written by the literal, value is an
// unscaled integer, and scale is the radix exponent. For example:
//
//	1.23    = 123 * 10^-2
//	0x1.8   = 0x18 * 16^-1
//	12e300  = 12 * 10^300
//
// Scale is limited to ±2^21 (approximately a number with 2 million zeros) when
// the block is turned into a rational. Value is only bounded by the number of
// significant digits in the literal text.
//
// # Assembly
//
// The integer and fractional parts arrive as shifted digit sequences (see
// package digits). Only their real digits are read. Trailing zeros of the
// integer part and leading zeros of the fractional part become scale, so an
// exponent of 10^15 costs nothing until the value is materialized:
//
//	| Integer part       | Fractional part      | Value         | Scale          |
//	|--------------------|----------------------|---------------|----------------|
//	| 12 + 3 zeros       | (empty)              | 12            | +3             |
//	| (empty)            | 4 zeros + 17         | 17            | -6             |
//	| 12                 | 05                   | 1205          | -2             |
//	|--------------------|----------------------|---------------|----------------|
//
// Digits are read in word sized chunks: 19 digits for radix 10 (the largest
// power of ten that fits in a uint64) and 64/bits digits for power of two
// radices.
package decimal
