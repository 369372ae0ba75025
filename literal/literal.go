// Package literal splits fixed-point literal text into digit runs and an
// exponent.
//
// The accepted grammar is:
//
//	[+|-] [0b|0o|0x] intdigits ['.' fracdigits] [expsep [+|-] decdigits]
//
// Digits may be grouped with '_' anywhere inside a run. Either digit run may
// be empty, but not both. The exponent separators are:
//
//	| Separator | Radix     | Meaning                                  |
//	|-----------|-----------|------------------------------------------|
//	| e E       | 10        | multiply by 10^exp                       |
//	| @         | any       | multiply by radix^exp                    |
//	| p P       | 2, 8, 16  | multiply by 2^exp, exp a whole digit     |
//
// A binary exponent on an octal or hexadecimal literal must be a multiple of
// the digit width (3 or 4 bits) so that it is an exact digit shift.
package literal

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/digits"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("literal")

// Literal is a lexed fixed-point literal. Int and Frac borrow from Text.
type Literal struct {
	Text     string
	Negative bool
	Radix    int
	Int      digits.Run
	Frac     digits.Run
	Exp      int64
}

// Parse lexes s.
func Parse(s string) (lit Literal, err error) {
	lit = Literal{
		Text:  s,
		Radix: 10,
	}

	if s == "" {
		return lit, Error.New("empty literal")
	}

	rest := s
	switch rest[0] {
	case '-':
		lit.Negative = true
		rest = rest[1:]
	case '+':
		rest = rest[1:]
	}

	if len(rest) >= 2 && rest[0] == '0' {
		switch rest[1] {
		case 'b', 'B':
			lit.Radix = 2
		case 'o', 'O':
			lit.Radix = 8
		case 'x', 'X':
			lit.Radix = 16
		}

		if lit.Radix != 10 {
			rest = rest[2:]
		}
	}

	n := scanDigits(rest, lit.Radix)
	lit.Int = digits.NewRun(digits.NewBytes(rest[:n]))
	rest = rest[n:]

	if rest != "" && rest[0] == '.' {
		rest = rest[1:]
		n = scanDigits(rest, lit.Radix)
		lit.Frac = digits.NewRun(digits.NewBytes(rest[:n]))
		rest = rest[n:]
	}

	if lit.Int.IsEmpty() && lit.Frac.IsEmpty() {
		return lit, Error.New("no digits in %q", s)
	}

	if rest == "" {
		return lit, nil
	}

	shift := 0
	switch rest[0] {
	case 'e', 'E':
		if lit.Radix != 10 {
			return lit, Error.New("decimal exponent on radix %d literal %q", lit.Radix, s)
		}
	case '@':
	case 'p', 'P':
		shift = bitsPerDigit(lit.Radix)
		if shift == 0 {
			return lit, Error.New("binary exponent on radix %d literal %q", lit.Radix, s)
		}
	default:
		return lit, Error.New("invalid digit %q in %q", rest[0], s)
	}

	exp, err := parseExp(rest[1:], s)
	if err != nil {
		return lit, err
	}

	if shift > 1 {
		if exp%int64(shift) != 0 {
			return lit, Error.New("binary exponent %d is not a multiple of %d in %q", exp, shift, s)
		}
		exp /= int64(shift)
	}
	lit.Exp = exp

	return lit, nil
}

// Shift moves the radix point by the exponent. ok is false when the exponent
// is too large to track.
func (lit Literal) Shift() (intPart, fracPart digits.Shifted, ok bool) {
	return digits.NewIntFrac(lit.Int, lit.Frac, lit.Exp)
}

// scanDigits returns the length of the digit and separator prefix of s.
func scanDigits(s string, radix int) int {
	for i := 0; i < len(s); i++ {
		if s[i] == digits.Separator {
			continue
		}
		if v := DigitValue(s[i]); v < 0 || v >= radix {
			return i
		}
	}

	return len(s)
}

// DigitValue returns the value of the digit c, or -1 if c is not a digit in
// any supported radix.
func DigitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}

	return -1
}

func bitsPerDigit(radix int) int {
	switch radix {
	case 2:
		return 1
	case 8:
		return 3
	case 16:
		return 4
	}

	return 0
}

// parseExp parses a signed decimal exponent that may contain separators.
func parseExp(s, text string) (int64, error) {
	var neg bool
	if s != "" {
		switch s[0] {
		case '-':
			neg = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var (
		mag  uint64
		seen bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == digits.Separator {
			continue
		}
		if c < '0' || c > '9' {
			return 0, Error.New("invalid exponent digit %q in %q", c, text)
		}

		d := uint64(c - '0')
		if mag > (limit-d)/10 {
			return 0, Error.New("exponent out of range in %q", text)
		}
		mag = mag*10 + d
		seen = true
	}

	if !seen {
		return 0, Error.New("missing exponent digits in %q", text)
	}

	switch {
	case neg && mag == 1<<63:
		return math.MinInt64, nil
	case neg:
		return -int64(mag), nil
	}

	return int64(mag), nil
}
