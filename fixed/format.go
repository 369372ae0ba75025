package fixed

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
	"lukechampine.com/uint128"

	"github.com/calebcase/fixed/log10"
)

// Error is the class of errors for invalid formats and policies.
var Error = errs.Class("fixed")

// ErrOverflow is the class of errors for values that do not fit a format.
var ErrOverflow = errs.Class("overflow")

// Format describes a binary fixed-point layout.
type Format struct {
	Bits   int
	Frac   int
	Signed bool
}

// Validate checks that the width is 8, 16, 32 or 64 and that Frac fits in it.
func (f Format) Validate() error {
	switch f.Bits {
	case 8, 16, 32, 64:
	default:
		return Error.New("unsupported width %d", f.Bits)
	}

	if f.Frac < 0 || f.Frac > f.Bits {
		return Error.New("fractional bits %d out of range for width %d", f.Frac, f.Bits)
	}

	return nil
}

// String returns the format as I<int>F<frac> or U<int>F<frac>.
func (f Format) String() string {
	sign := "U"
	if f.Signed {
		sign = "I"
	}

	return fmt.Sprintf("%s%dF%d", sign, f.Bits-f.Frac, f.Frac)
}

// Min returns the smallest raw value.
func (f Format) Min() *big.Int {
	if !f.Signed {
		return new(big.Int)
	}

	m := new(big.Int).Lsh(big.NewInt(1), uint(f.Bits-1))

	return m.Neg(m)
}

// Max returns the largest raw value.
func (f Format) Max() *big.Int {
	bits := f.Bits
	if f.Signed {
		bits--
	}

	m := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return m.Sub(m, big.NewInt(1))
}

// intBits returns the number of magnitude bits left of the point.
func (f Format) intBits() int {
	n := f.Bits - f.Frac
	if f.Signed {
		n--
	}
	if n < 0 {
		n = 0
	}

	return n
}

// maxIntLog returns the largest n-1 for which an n digit integer part might
// still fit. Anything longer is an overflow.
func (f Format) maxIntLog(radix int) int {
	if radix == 10 {
		return log10.IntPart128(uint128.From64(1).Lsh(uint(f.intBits())))
	}

	return f.intBits() / bitsPerDigit(radix)
}

// zeroLeading returns the number of leading fractional zeros from which a
// fraction is below half a unit in the last place.
func (f Format) zeroLeading(radix int) int {
	if radix == 10 {
		// 2^(127-frac) / 2^128 is half an ulp.
		return -log10.FracPart128(uint128.From64(1).Lsh(uint(127 - f.Frac)))
	}

	b := bitsPerDigit(radix)

	return (f.Frac + 1 + b - 1) / b
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

// Policy selects what happens when a value does not fit its format.
type Policy uint8

// Policies.
const (
	Checked Policy = iota
	Saturating
	Wrapping
	Unwrapped
)

var policyNames = [...]string{
	Checked:    "checked",
	Saturating: "saturating",
	Wrapping:   "wrapping",
	Unwrapped:  "unwrapped",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}

	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy returns the policy named s.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return Policy(p), nil
		}
	}

	return 0, Error.New("unknown policy %q", s)
}
