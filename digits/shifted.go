package digits

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// Shifted is a digit sequence after a radix point shift: leading zeros,
// part1, part2 and trailing zeros, in that order.
type Shifted struct {
	leadingZeros  int
	part1         Run
	part2         Run
	trailingZeros int
}

// Single returns d with its leading and trailing zeros turned into counts.
func Single(d Run) Shifted {
	leading, rest := d.SplitLeadingZeros()
	rest, trailing := rest.SplitTrailingZeros()

	return Shifted{
		leadingZeros:  leading,
		part1:         rest,
		trailingZeros: trailing,
	}
}

// Combine returns the concatenation of two adjacent runs. Zero stripping
// crosses from one run into the other when a run is all zeros.
func Combine(d1, d2 Run) Shifted {
	leading, d1 := d1.SplitLeadingZeros()
	if d1.IsEmpty() {
		var more int
		more, d1 = d2.SplitLeadingZeros()
		leading += more
		d2 = Run{}
	}

	d2, trailing := d2.SplitTrailingZeros()
	if d2.IsEmpty() {
		var more int
		d1, more = d1.SplitTrailingZeros()
		trailing += more
	}

	return Shifted{
		leadingZeros:  leading,
		part1:         d1,
		part2:         d2,
		trailingZeros: trailing,
	}
}

// NewIntFrac reads intDigits and fracDigits as one number with the radix
// point between them, moves the point by exp digits (positive is to the
// right) and returns the new integer and fractional parts.
//
// ok is false when |exp| or a resulting length does not fit in an int. At
// least one of intDigits and fracDigits must have digits.
func NewIntFrac(intDigits, fracDigits Run, exp int64) (intPart, fracPart Shifted, ok bool) {
	if intDigits.IsEmpty() && fracDigits.IsEmpty() {
		panic(Error.New("no digits in integer or fractional part"))
	}

	switch {
	case exp == 0:
		intPart, fracPart = Single(intDigits), Single(fracDigits)
	case exp < 0:
		abs, ok := absInt(exp)
		if !ok || abs > math.MaxInt-fracDigits.Len() {
			return Shifted{}, Shifted{}, false
		}

		if abs < intDigits.Len() {
			kept, moved := intDigits.SplitAt(intDigits.Len() - abs)
			intPart, fracPart = Single(kept), Combine(moved, fracDigits)
		} else {
			fracPart = Combine(intDigits, fracDigits)
			fracPart.leadingZeros += abs - intDigits.Len()
		}
	default:
		abs, ok := absInt(exp)
		if !ok || abs > math.MaxInt-intDigits.Len() {
			return Shifted{}, Shifted{}, false
		}

		if abs < fracDigits.Len() {
			moved, kept := fracDigits.SplitAt(abs)
			intPart, fracPart = Combine(intDigits, moved), Single(kept)
		} else {
			intPart = Combine(intDigits, fracDigits)
			intPart.trailingZeros += abs - fracDigits.Len()
		}
	}

	intPart.leadingZeros = 0
	if intPart.part1.IsEmpty() && intPart.part2.IsEmpty() {
		intPart.trailingZeros = 0
	}

	fracPart.trailingZeros = 0
	if fracPart.part1.IsEmpty() && fracPart.part2.IsEmpty() {
		fracPart.leadingZeros = 0
	}

	return intPart, fracPart, true
}

// absInt returns |x| as an int.
func absInt(x int64) (abs int, ok bool) {
	var u uint64
	if x < 0 {
		u = uint64(-(x + 1)) + 1
	} else {
		u = uint64(x)
	}

	if u > math.MaxInt {
		return 0, false
	}

	return int(u), true
}

// LeadingZeros returns the number of virtual zeros before part1.
func (s Shifted) LeadingZeros() int {
	return s.leadingZeros
}

// Part1 returns the first run of real digits.
func (s Shifted) Part1() Run {
	return s.part1
}

// Part2 returns the second run of real digits.
func (s Shifted) Part2() Run {
	return s.part2
}

// TrailingZeros returns the number of virtual zeros after part2.
func (s Shifted) TrailingZeros() int {
	return s.trailingZeros
}

// Significant returns the number of real digits, part1 and part2 together.
func (s Shifted) Significant() int {
	return s.part1.Len() + s.part2.Len()
}

// Len returns the number of digits, zero runs included.
func (s Shifted) Len() int {
	return s.leadingZeros + s.part1.Len() + s.part2.Len() + s.trailingZeros
}

// IsEmpty reports whether s has no digits.
func (s Shifted) IsEmpty() bool {
	return s.Len() == 0
}

// SplitAt splits s after mid digits.
func (s Shifted) SplitAt(mid int) (first, last Shifted) {
	total := s.Len()
	if mid < 0 || mid > total {
		panic(Error.New("split out of range [%d] with %d digits", mid, total))
	}

	last = s
	if mid == 0 {
		return first, last
	}

	if mid < s.leadingZeros {
		first.leadingZeros, last.leadingZeros = mid, s.leadingZeros-mid

		return first, last
	}

	first.leadingZeros, last.leadingZeros = s.leadingZeros, 0
	mid -= s.leadingZeros
	if mid == 0 {
		return first, last
	}

	if mid < s.part1.Len() {
		first.part1, last.part1 = s.part1.SplitAt(mid)

		return first, last
	}

	first.part1 = s.part1
	last.part1, last.part2 = s.part2, Run{}
	mid -= s.part1.Len()
	if mid == 0 {
		return first, last
	}

	if mid < s.part2.Len() {
		first.part2, last.part1 = s.part2.SplitAt(mid)

		return first, last
	}

	// Past part2 the rest is only zeros, carried as leading zeros of last.
	first.part2 = s.part2
	last.leadingZeros, last.part1, last.trailingZeros = s.trailingZeros, Run{}, 0
	mid -= s.part2.Len()
	if mid == 0 {
		return first, last
	}

	if mid < s.trailingZeros {
		first.trailingZeros, last.leadingZeros = mid, s.trailingZeros-mid

		return first, last
	}

	first.trailingZeros, last.leadingZeros = s.trailingZeros, 0

	return first, last
}

// SplitFirst returns the first digit and the rest of s. The rest is not
// re-normalized.
func (s Shifted) SplitFirst() (first byte, rest Shifted, ok bool) {
	rest = s

	if s.leadingZeros > 0 {
		rest.leadingZeros--

		return '0', rest, true
	}

	if first, r, ok := s.part1.SplitFirst(); ok {
		rest.part1 = r

		return first, rest, true
	}

	if first, r, ok := s.part2.SplitFirst(); ok {
		rest.part2 = r

		return first, rest, true
	}

	if s.trailingZeros > 0 {
		rest.trailingZeros--

		return '0', rest, true
	}

	return 0, s, false
}

// Digits yields the digits of s in order, zero runs included.
func (s Shifted) Digits() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		rem := s
		for {
			c, rest, ok := rem.SplitFirst()
			if !ok || !yield(c) {
				return
			}
			rem = rest
		}
	}
}

// AppendDigits appends every digit of s to dst. The zero runs are written
// out, so callers must bound Len first.
func (s Shifted) AppendDigits(dst []byte) []byte {
	for c := range s.Digits() {
		dst = append(dst, c)
	}

	return dst
}

// String returns the layout of s as 0{n} part1 part2 0{m}, omitting empty
// pieces. The zero runs are shown as counts.
func (s Shifted) String() string {
	var pieces []string
	if s.leadingZeros > 0 {
		pieces = append(pieces, "0{"+strconv.Itoa(s.leadingZeros)+"}")
	}
	if !s.part1.IsEmpty() {
		pieces = append(pieces, s.part1.String())
	}
	if !s.part2.IsEmpty() {
		pieces = append(pieces, s.part2.String())
	}
	if s.trailingZeros > 0 {
		pieces = append(pieces, "0{"+strconv.Itoa(s.trailingZeros)+"}")
	}

	return strings.Join(pieces, " ")
}
