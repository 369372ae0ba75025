package fixed

import (
	"math/big"

	"github.com/calebcase/fixed/decimal"
	"github.com/calebcase/fixed/digits"
	"github.com/calebcase/fixed/literal"
)

var (
	one         = big.NewInt(1)
	wrapModulus = new(big.Int).Lsh(one, 64)
)

// Value is a fixed-point value. Raw holds the bit pattern in its low
// Format.Bits bits.
type Value struct {
	Format Format
	Raw    uint64
}

// Int64 returns the raw value sign extended for signed formats.
func (v Value) Int64() int64 {
	if !v.Format.Signed {
		return int64(v.Raw)
	}

	shift := uint(64 - v.Format.Bits)

	return int64(v.Raw<<shift) >> shift
}

// Uint64 returns the raw value.
func (v Value) Uint64() uint64 {
	return v.Raw
}

// Rat returns the exact number v represents.
func (v Value) Rat() *big.Rat {
	n := new(big.Int).SetUint64(v.Raw)
	if v.Format.Signed {
		n.SetInt64(v.Int64())
	}

	return new(big.Rat).SetFrac(n, new(big.Int).Lsh(one, uint(v.Format.Frac)))
}

// Parse converts the literal s to f under policy p.
func Parse(s string, f Format, p Policy) (Value, error) {
	lit, err := literal.Parse(s)
	if err != nil {
		return Value{}, err
	}

	return FromLiteral(lit, f, p)
}

// FromLiteral converts lit to f under policy p.
func FromLiteral(lit literal.Literal, f Format, p Policy) (v Value, err error) {
	err = f.Validate()
	if err != nil {
		return Value{}, err
	}

	if int(p) >= len(policyNames) {
		return Value{}, Error.New("unknown policy %d", p)
	}

	q, overflow, err := quantize(lit, f, p == Wrapping)
	if err != nil {
		return Value{}, err
	}

	if !overflow && q.Cmp(f.Min()) >= 0 && q.Cmp(f.Max()) <= 0 {
		return Value{Format: f, Raw: raw(q, f)}, nil
	}

	switch p {
	case Saturating:
		below := lit.Negative
		if q != nil {
			below = q.Sign() < 0
		}

		if below {
			return Value{Format: f, Raw: raw(f.Min(), f)}, nil
		}

		return Value{Format: f, Raw: raw(f.Max(), f)}, nil
	case Wrapping:
		return Value{Format: f, Raw: raw(q, f)}, nil
	case Unwrapped:
		panic(ErrOverflow.New("%q does not fit %s", lit.Text, f))
	}

	return Value{}, ErrOverflow.New("%q does not fit %s", lit.Text, f)
}

// raw returns the low f.Bits bits of the two's complement of q.
func raw(q *big.Int, f Format) uint64 {
	m := new(big.Int).Lsh(one, uint(f.Bits))

	return new(big.Int).Mod(q, m).Uint64()
}

// quantize returns round(lit * 2^f.Frac). overflow reports that the value is
// known not to fit without computing it. With wrap the result is only exact
// modulo 2^64.
func quantize(lit literal.Literal, f Format, wrap bool) (q *big.Int, overflow bool, err error) {
	radix := lit.Radix

	intPart, fracPart, ok := lit.Shift()
	if !ok {
		all := digits.Combine(lit.Int, lit.Frac)
		if lit.Exp < 0 || all.Significant() == 0 {
			return new(big.Int), false, nil
		}

		if !wrap {
			return nil, true, nil
		}

		// Every digit is left of the point: all * radix^(exp - len(frac)).
		blk, err := decimal.FromDigits(radix, false, all, digits.Shifted{})
		if err != nil {
			return nil, false, err
		}

		extra := big.NewInt(lit.Exp)
		extra.Sub(extra, big.NewInt(int64(lit.Frac.Len())))

		return finish(wrapInt(blk, extra), nil, f, lit.Negative), false, nil
	}

	var intVal *big.Int
	if wrap {
		blk, err := decimal.FromDigits(radix, false, intPart, digits.Shifted{})
		if err != nil {
			return nil, false, err
		}
		intVal = wrapInt(blk, new(big.Int))
	} else {
		if n := intPart.Len(); n > 0 && n-1 > f.maxIntLog(radix) {
			return nil, true, nil
		}

		blk, err := decimal.FromDigits(radix, false, intPart, digits.Shifted{})
		if err != nil {
			return nil, false, err
		}

		r, err := blk.Rat()
		if err != nil {
			return nil, false, err
		}
		intVal = new(big.Int).Set(r.Num())
	}

	var fracVal *big.Rat
	if fracPart.Significant() > 0 && fracPart.LeadingZeros() < f.zeroLeading(radix) {
		blk, err := decimal.FromDigits(radix, false, digits.Shifted{}, fracPart)
		if err != nil {
			return nil, false, err
		}

		fracVal, err = blk.Rat()
		if err != nil {
			return nil, false, err
		}
	}

	return finish(intVal, fracVal, f, lit.Negative), false, nil
}

// wrapInt returns blk * radix^extra modulo 2^64 for a block with no
// fractional digits.
func wrapInt(blk decimal.Block, extra *big.Int) *big.Int {
	e := big.NewInt(blk.Scale)
	e.Add(e, extra)

	m := new(big.Int).Exp(big.NewInt(int64(blk.Radix)), e, wrapModulus)
	m.Mul(m, blk.Value)

	return m.Mod(m, wrapModulus)
}

// finish returns ±round((intVal + fracVal) * 2^f.Frac), ties to even.
func finish(intVal *big.Int, fracVal *big.Rat, f Format, negative bool) *big.Int {
	x := new(big.Rat).SetInt(intVal)
	if fracVal != nil {
		x.Add(x, fracVal)
	}

	n := new(big.Int).Lsh(x.Num(), uint(f.Frac))
	q, r := new(big.Int).QuoRem(n, x.Denom(), new(big.Int))

	r.Lsh(r, 1)
	switch r.Cmp(x.Denom()) {
	case 1:
		q.Add(q, one)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, one)
		}
	}

	if negative {
		q.Neg(q)
	}

	return q
}
