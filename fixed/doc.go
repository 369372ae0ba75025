// Package fixed converts literal text into binary fixed-point values.
//
// A format is a width, a number of fractional bits and a signedness. The raw
// bit pattern of a value is:
//
//	raw = round(number * 2 ^ frac)
//
// Rounding is to nearest with ties to even. For example, in the signed format
// with 8 bits and 4 fractional bits (I4F4):
//
//	| Literal   | number * 16 | Raw (hex) | Value      |
//	|-----------|-------------|-----------|------------|
//	| 1.5       | 24          | 0x18      | 1.5        |
//	| -1.5      | -24         | 0xe8      | -1.5       |
//	| 0.03125   | 0.5         | 0x00      | 0          |
//	| 0.09375   | 1.5         | 0x02      | 0.125      |
//	| 7.97      | 127.52      | overflow  | policy     |
//	|-----------|-------------|-----------|------------|
//
// # Overflow
//
// A literal whose rounded value does not fit the format is handled by one of
// four policies:
//
//	| Policy     | Result                                        |
//	|------------|-----------------------------------------------|
//	| Checked    | an ErrOverflow error                          |
//	| Saturating | the nearest representable bound               |
//	| Wrapping   | the low bits of the two's complement result   |
//	| Unwrapped  | a panic with an ErrOverflow error             |
//	|------------|-----------------------------------------------|
//
// # Bounded Work
//
// Exponents may be enormous ("1e1000000000"), so the digits are never
// written out before they are known to matter. The integer part is rejected
// when its digit count alone proves overflow, and the fractional part is
// dropped when its leading zeros alone prove it is below half a unit in the
// last place. Both bounds come from package log10. Wrapping reduces the
// integer part modulo 2^64 with modular exponentiation instead.
package fixed
