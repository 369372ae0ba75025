package digits

// Separator is the digit grouping byte.
const Separator = '_'

// Run is a digit run with no leading or trailing separators.
type Run struct {
	bytes  Bytes
	digits int
}

// NewRun trims the separators at both ends of b and counts its digits.
func NewRun(b Bytes) Run {
	var digits, leading, trailing int

	rem := b
	for {
		c, rest, ok := rem.SplitFirst()
		if !ok {
			break
		}
		rem = rest

		if c == Separator {
			trailing++

			continue
		}

		if digits == 0 {
			leading = trailing
		}
		digits++
		trailing = 0
	}

	// A run of only separators has no digits, so leading stays 0 and the
	// trailing cut already removes everything.
	trimmed, _ := b.SplitAt(b.Len() - trailing)
	_, trimmed = trimmed.SplitAt(leading)

	return Run{
		bytes:  trimmed,
		digits: digits,
	}
}

// ParseRun returns the run over s.
func ParseRun(s string) Run {
	return NewRun(NewBytes(s))
}

// Len returns the number of digits.
func (r Run) Len() int {
	return r.digits
}

// IsEmpty reports whether the run has no digits.
func (r Run) IsEmpty() bool {
	return r.digits == 0
}

// Bytes returns the trimmed window, interior separators included.
func (r Run) Bytes() Bytes {
	return r.bytes
}

// SplitAt splits the run after mid digits. Separators at the split point
// belong to neither half.
func (r Run) SplitAt(mid int) (first, rest Run) {
	if mid < 0 || mid > r.digits {
		panic(Error.New("split out of range [%d] with %d digits", mid, r.digits))
	}

	if mid == 0 {
		return Run{}, r
	}

	var seen, pos int
	for seen < mid {
		if r.bytes.Index(pos) != Separator {
			seen++
		}
		pos++
	}

	head, tail := r.bytes.SplitAt(pos)

	return Run{bytes: head, digits: mid}, Run{
		bytes:  skipLeadingSeparators(tail),
		digits: r.digits - mid,
	}
}

// SplitFirst returns the first digit and the remaining run.
func (r Run) SplitFirst() (first byte, rest Run, ok bool) {
	first, tail, ok := r.bytes.SplitFirst()
	if !ok {
		return 0, r, false
	}

	return first, Run{
		bytes:  skipLeadingSeparators(tail),
		digits: r.digits - 1,
	}, true
}

// SplitLast returns the remaining run and the last digit.
func (r Run) SplitLast() (rest Run, last byte, ok bool) {
	head, last, ok := r.bytes.SplitLast()
	if !ok {
		return r, 0, false
	}

	return Run{
		bytes:  skipTrailingSeparators(head),
		digits: r.digits - 1,
	}, last, true
}

// SplitLeadingZeros removes the '0' digits at the start of the run.
func (r Run) SplitLeadingZeros() (zeros int, rest Run) {
	rest = r
	for {
		c, next, ok := rest.SplitFirst()
		if !ok || c != '0' {
			return zeros, rest
		}

		zeros++
		rest = next
	}
}

// SplitTrailingZeros removes the '0' digits at the end of the run.
func (r Run) SplitTrailingZeros() (rest Run, zeros int) {
	rest = r
	for {
		next, c, ok := rest.SplitLast()
		if !ok || c != '0' {
			return rest, zeros
		}

		zeros++
		rest = next
	}
}

// AppendDigits appends the digits of the run to dst, without separators.
func (r Run) AppendDigits(dst []byte) []byte {
	s := r.bytes.String()
	for i := 0; i < len(s); i++ {
		if s[i] != Separator {
			dst = append(dst, s[i])
		}
	}

	return dst
}

// String returns the digits of the run without separators.
func (r Run) String() string {
	return string(r.AppendDigits(make([]byte, 0, r.digits)))
}

func skipLeadingSeparators(b Bytes) Bytes {
	for {
		c, rest, ok := b.SplitFirst()
		if !ok || c != Separator {
			return b
		}
		b = rest
	}
}

func skipTrailingSeparators(b Bytes) Bytes {
	for {
		rest, c, ok := b.SplitLast()
		if !ok || c != Separator {
			return b
		}
		b = rest
	}
}
