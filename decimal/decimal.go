package decimal

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/digits"
	"github.com/calebcase/fixed/literal"
	"github.com/calebcase/fixed/log10"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal")

// MaxScale is the largest scale magnitude that can be materialized.
const MaxScale = 1 << 21

// Block is an exact number in a radix.
type Block struct {
	Value *big.Int
	Scale int64
	Radix int
}

// FromLiteral returns the exact value of lit.
func FromLiteral(lit literal.Literal) (b Block, err error) {
	intPart, fracPart, ok := lit.Shift()
	if !ok {
		return Block{}, Error.New("exponent %d out of range in %q", lit.Exp, lit.Text)
	}

	return FromDigits(lit.Radix, lit.Negative, intPart, fracPart)
}

// FromDigits returns the exact value of intPart.fracPart in radix.
func FromDigits(radix int, negative bool, intPart, fracPart digits.Shifted) (b Block, err error) {
	chunk := wordDigits(radix)
	if chunk == 0 {
		return Block{}, Error.New("unsupported radix %d", radix)
	}

	b = Block{
		Value: new(big.Int),
		Radix: radix,
	}

	err = accumulate(b.Value, radix, chunk, significant(intPart))
	if err != nil {
		return Block{}, err
	}

	if fracPart.Significant() == 0 {
		b.Scale = int64(intPart.TrailingZeros())
	} else {
		if intPart.Significant() > 0 {
			// The integer zeros sit between real digits and must be written
			// out.
			if intPart.TrailingZeros() > MaxScale {
				return Block{}, Error.New("scale %d exceeds %d", intPart.TrailingZeros(), MaxScale)
			}
			b.Value.Mul(b.Value, pow(radix, int64(intPart.TrailingZeros())))
		}

		// Trailing zeros of the fraction only lower the scale.
		sig := significant(fracPart)
		scale := int64(fracPart.LeadingZeros()) + int64(sig.Len())
		if scale > MaxScale {
			return Block{}, Error.New("scale -%d exceeds %d", scale, MaxScale)
		}
		b.Value.Mul(b.Value, pow(radix, scale))

		frac := new(big.Int)
		err = accumulate(frac, radix, chunk, sig)
		if err != nil {
			return Block{}, err
		}
		b.Value.Add(b.Value, frac)

		b.Scale = -scale
	}

	if negative {
		b.Value.Neg(b.Value)
	}

	return b, nil
}

// significant returns the window of s from its first to its last real digit.
func significant(s digits.Shifted) digits.Shifted {
	_, rest := s.SplitAt(s.LeadingZeros())
	sig, _ := rest.SplitAt(s.Significant())

	return sig
}

// wordDigits returns how many digits of radix fit in a uint64.
func wordDigits(radix int) int {
	switch radix {
	case 10:
		return log10.IntPart64(math.MaxUint64)
	case 2, 8, 16:
		return 64 / bits.Len(uint(radix-1))
	}

	return 0
}

// accumulate appends the digits of s to v.
func accumulate(v *big.Int, radix, chunk int, s digits.Shifted) error {
	var (
		word  uint64
		n     int
		shift = uint(bits.Len(uint(radix - 1)))
		w     = new(big.Int)
	)

	flush := func() {
		if radix == 10 {
			v.Mul(v, pow(radix, int64(n)))
		} else {
			v.Lsh(v, uint(n)*shift)
		}
		v.Add(v, w.SetUint64(word))
		word, n = 0, 0
	}

	for c := range s.Digits() {
		d := literal.DigitValue(c)
		if d < 0 || d >= radix {
			return Error.New("invalid digit %q for radix %d", c, radix)
		}

		word = word*uint64(radix) + uint64(d)
		n++
		if n == chunk {
			flush()
		}
	}

	if n > 0 {
		flush()
	}

	return nil
}

func pow(radix int, n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(n), nil)
}

// Sign returns -1, 0 or +1.
func (b Block) Sign() int {
	if b.Value == nil {
		return 0
	}

	return b.Value.Sign()
}

// Rat returns the exact value of b.
func (b Block) Rat() (r *big.Rat, err error) {
	if b.Scale > MaxScale || b.Scale < -MaxScale {
		return nil, Error.New("scale %d exceeds %d", b.Scale, MaxScale)
	}

	r = new(big.Rat)
	if b.Value == nil {
		return r, nil
	}

	if b.Scale >= 0 {
		n := pow(b.Radix, b.Scale)

		return r.SetInt(n.Mul(n, b.Value)), nil
	}

	return r.SetFrac(b.Value, pow(b.Radix, -b.Scale)), nil
}

// String returns the block as value*radix^scale.
func (b Block) String() string {
	v := b.Value
	if v == nil {
		v = new(big.Int)
	}

	return fmt.Sprintf("%s*%d^%d", v.String(), b.Radix, b.Scale)
}
