// Package digits provides the digit-position engine for fixed-point literals.
//
// A literal such as
//
//	0_.017_5_e+0_2
//
// arrives here already split by the lexer into an integer run ("0_"), a
// fractional run ("017_5_") and an exponent (+2). This package moves the
// radix point by the exponent and returns a normalized integer part and a
// normalized fractional part without copying any digit and without building
// zero-filled strings, no matter how large the exponent is.
//
// # Bytes
//
// Bytes is a read-only window onto the literal text. All splitting returns
// new windows onto the same text.
//
// # Run
//
// A Run is a window that never starts or ends with the grouping separator
// '_'. Separators may still occur between digits; every Run operation counts
// and splits by digit, skipping them.
//
// # Shifted
//
// A Shifted is a possibly non-contiguous digit sequence laid out as:
//
//	| leading zeros | part1 | part2 | trailing zeros |
//
// The zero runs are counts, not bytes, and String prints them as 0{n}.
// Only the two-source combine fills part2. For example, shifting 12_3.45_0
// by -2 gives:
//
//	integer part:    |   | 1  |     |   |
//	fractional part: |   | 23 | 45  |   |  (the trailing 0 is insignificant)
//
// Splitting and iterating never re-normalize. Callers that need zeros
// compacted again must ask for it explicitly.
//
// Contract violations (out of range indexes or splits) panic with an Error.
// They never happen on input produced by the lexer.
package digits
