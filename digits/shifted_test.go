package digits

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

type layout struct {
	Leading  int
	Part1    string
	Part2    string
	Trailing int
}

// expand writes out every digit of a short sequence.
func expand(s Shifted) string {
	return string(s.AppendDigits(nil))
}

func layoutOf(s Shifted) layout {
	return layout{
		Leading:  s.LeadingZeros(),
		Part1:    s.Part1().String(),
		Part2:    s.Part2().String(),
		Trailing: s.TrailingZeros(),
	}
}

func TestSingle(t *testing.T) {
	type TC struct {
		input string
		want  layout
	}

	tcs := []TC{
		{input: "", want: layout{}},
		{input: "000", want: layout{Leading: 3}},
		{input: "00_12_300", want: layout{Leading: 2, Part1: "123", Trailing: 2}},
		{input: "1_0_1", want: layout{Part1: "101"}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			s := Single(ParseRun(tc.input))
			require.Equal(t, tc.want, layoutOf(s), spew.Sdump(s))
			require.Equal(t, strings.ReplaceAll(tc.input, "_", ""), expand(s))
			require.True(t, s.Part2().IsEmpty())
		})
	}
}

func TestCombine(t *testing.T) {
	type TC struct {
		d1, d2 string
		want   layout
		Mark   error
	}

	tcs := []TC{
		{
			d1:   "000",
			d2:   "0012",
			want: layout{Leading: 5, Part1: "12"},
			Mark: oops.New("leading zeros cross into d2"),
		},
		{
			d1:   "120",
			d2:   "300",
			want: layout{Part1: "120", Part2: "3", Trailing: 2},
			Mark: oops.New("zeros inside d1 are kept"),
		},
		{
			d1:   "1200",
			d2:   "000",
			want: layout{Part1: "12", Trailing: 5},
			Mark: oops.New("trailing zeros cross into d1"),
		},
		{
			d1:   "0",
			d2:   "0",
			want: layout{Leading: 2},
			Mark: oops.New("all zeros"),
		},
		{
			d1:   "",
			d2:   "0_5",
			want: layout{Leading: 1, Part1: "5"},
			Mark: oops.New("empty d1"),
		},
		{
			d1:   "7",
			d2:   "",
			want: layout{Part1: "7"},
			Mark: oops.New("empty d2"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q+%q", i, tc.d1, tc.d2), func(t *testing.T) {
			s := Combine(ParseRun(tc.d1), ParseRun(tc.d2))
			want := strings.ReplaceAll(tc.d1+tc.d2, "_", "")

			require.Equal(t, tc.want, layoutOf(s), tc.Mark)
			require.Equal(t, len(want), s.Len(), tc.Mark)
			require.Equal(t, want, expand(s), tc.Mark)
		})
	}
}

// shiftReference moves the point through the plain digit strings.
func shiftReference(intDigits, fracDigits string, exp int) (string, string) {
	all := intDigits + fracDigits
	point := len(intDigits) + exp

	if point < 0 {
		all = strings.Repeat("0", -point) + all
		point = 0
	}
	if point > len(all) {
		all += strings.Repeat("0", point-len(all))
	}

	return strings.TrimLeft(all[:point], "0"), strings.TrimRight(all[point:], "0")
}

func TestNewIntFrac(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		ip, fp, ok := NewIntFrac(ParseRun("12_3"), ParseRun("45_0"), -2)
		require.True(t, ok)

		require.Equal(t, layout{Part1: "1"}, layoutOf(ip))
		require.Equal(t, layout{Part1: "23", Part2: "45"}, layoutOf(fp))
		require.Equal(t, "1", expand(ip))
		require.Equal(t, "2345", expand(fp))
	})

	t.Run("zero shift", func(t *testing.T) {
		type TC struct {
			intDigits, fracDigits string
		}

		tcs := []TC{
			{"0012", "3400"},
			{"1_000", "000_1"},
			{"0", "5"},
			{"", "25"},
			{"42", ""},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
				ir, fr := ParseRun(tc.intDigits), ParseRun(tc.fracDigits)

				ip, fp, ok := NewIntFrac(ir, fr, 0)
				require.True(t, ok)

				wantInt, wantFrac := Single(ir), Single(fr)
				wantInt.leadingZeros = 0
				if wantInt.Significant() == 0 {
					wantInt.trailingZeros = 0
				}
				wantFrac.trailingZeros = 0
				if wantFrac.Significant() == 0 {
					wantFrac.leadingZeros = 0
				}

				require.Equal(t, wantInt, ip)
				require.Equal(t, wantFrac, fp)
			})
		}
	})

	t.Run("shift", func(t *testing.T) {
		type TC struct {
			intDigits, fracDigits string
		}

		tcs := []TC{
			{"12_3", "45_0"},
			{"1", ""},
			{"", "1"},
			{"100", "001"},
			{"0_0", "0_7"},
			{"9_0_9", "8_0"},
			{"000", "000"},
			{"5", "0"},
		}

		for i, tc := range tcs {
			for exp := -8; exp <= 8; exp++ {
				name := fmt.Sprintf("[%d]%s.%se%d", i, tc.intDigits, tc.fracDigits, exp)
				t.Run(name, func(t *testing.T) {
					ip, fp, ok := NewIntFrac(ParseRun(tc.intDigits), ParseRun(tc.fracDigits), int64(exp))
					require.True(t, ok)

					wantInt, wantFrac := shiftReference(
						strings.ReplaceAll(tc.intDigits, "_", ""),
						strings.ReplaceAll(tc.fracDigits, "_", ""),
						exp,
					)

					require.Equal(t, wantInt, expand(ip), spew.Sdump(ip))
					require.Equal(t, wantFrac, expand(fp), spew.Sdump(fp))
					require.Zero(t, ip.LeadingZeros())
					require.Zero(t, fp.TrailingZeros())
				})
			}
		}
	})

	t.Run("large exponent", func(t *testing.T) {
		const e = 1_000_000_000_000_000

		ip, fp, ok := NewIntFrac(ParseRun("1_2"), ParseRun("3"), e)
		require.True(t, ok)
		require.Equal(t, layout{Part1: "12", Part2: "3", Trailing: e - 1}, layoutOf(ip))
		require.True(t, fp.IsEmpty())
		require.Equal(t, e+2, ip.Len())

		ip, fp, ok = NewIntFrac(ParseRun("1_2"), ParseRun("3"), -e)
		require.True(t, ok)
		require.True(t, ip.IsEmpty())
		require.Equal(t, layout{Leading: e - 2, Part1: "12", Part2: "3"}, layoutOf(fp))
		require.Equal(t, e+1, fp.Len())
	})

	t.Run("zero value carries no padding", func(t *testing.T) {
		for _, exp := range []int64{-1000, -3, 0, 3, 1000} {
			ip, fp, ok := NewIntFrac(ParseRun("0_00"), ParseRun("000"), exp)
			require.True(t, ok)
			require.True(t, ip.IsEmpty(), spew.Sdump(ip))
			require.True(t, fp.IsEmpty(), spew.Sdump(fp))
		}
	})

	t.Run("overflow", func(t *testing.T) {
		type TC struct {
			intDigits, fracDigits string
			exp                   int64
			ok                    bool
		}

		tcs := []TC{
			{"1", "", math.MinInt64, false},
			{"1", "", math.MaxInt64, false},
			{"", "1", math.MaxInt64, true},
			{"", "1", -math.MaxInt64, false},
			{"1", "", -math.MaxInt64, true},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%d", i, tc.exp), func(t *testing.T) {
				ip, fp, ok := NewIntFrac(ParseRun(tc.intDigits), ParseRun(tc.fracDigits), tc.exp)
				require.Equal(t, tc.ok, ok)

				if ok {
					require.Equal(t, int64(math.MaxInt64), int64(ip.Len()+fp.Len()))
				}
			})
		}
	})

	t.Run("no digits", func(t *testing.T) {
		require.Panics(t, func() {
			NewIntFrac(ParseRun("_"), Run{}, 1)
		})
	})
}

func TestShiftedSplitAt(t *testing.T) {
	s := Shifted{
		leadingZeros:  2,
		part1:         ParseRun("1_2"),
		part2:         ParseRun("3_4"),
		trailingZeros: 3,
	}
	full := "001234000"

	require.Equal(t, len(full), s.Len())
	require.Equal(t, full, expand(s))

	for mid := 0; mid <= s.Len(); mid++ {
		t.Run(fmt.Sprintf("[%d]", mid), func(t *testing.T) {
			first, last := s.SplitAt(mid)

			require.Equal(t, mid, first.Len(), spew.Sdump(first))
			require.Equal(t, s.Len()-mid, last.Len(), spew.Sdump(last))
			require.Equal(t, full[:mid], expand(first))
			require.Equal(t, full[mid:], expand(last))
		})
	}

	require.Panics(t, func() { s.SplitAt(s.Len() + 1) })
	require.Panics(t, func() { s.SplitAt(-1) })

	t.Run("inside part2", func(t *testing.T) {
		first, last := s.SplitAt(5)
		require.Equal(t, layout{Leading: 2, Part1: "12", Part2: "3"}, layoutOf(first))
		require.Equal(t, layout{Part1: "4", Trailing: 3}, layoutOf(last))
	})

	t.Run("inside trailing zeros", func(t *testing.T) {
		first, last := s.SplitAt(7)
		require.Equal(t, layout{Leading: 2, Part1: "12", Part2: "34", Trailing: 1}, layoutOf(first))
		require.Equal(t, layout{Leading: 2}, layoutOf(last))
	})

	t.Run("huge zero runs", func(t *testing.T) {
		big := Shifted{
			leadingZeros:  math.MaxInt / 2,
			part1:         ParseRun("7"),
			trailingZeros: math.MaxInt/2 - 1,
		}

		first, last := big.SplitAt(math.MaxInt / 2)
		require.Equal(t, layout{Leading: math.MaxInt / 2}, layoutOf(first))
		require.Equal(t, layout{Part1: "7", Trailing: math.MaxInt/2 - 1}, layoutOf(last))
	})
}

func TestShiftedSplitFirst(t *testing.T) {
	s := Shifted{
		leadingZeros:  1,
		part1:         ParseRun("0_1"),
		part2:         ParseRun("2_0"),
		trailingZeros: 2,
	}

	var got []byte
	for rem := s; ; {
		c, rest, ok := rem.SplitFirst()
		if !ok {
			break
		}
		got = append(got, c)
		rem = rest
	}
	require.Equal(t, "0012000", string(got))

	// A saved copy restarts the sequence.
	require.Equal(t, "0012000", expand(s))

	// No re-normalization: the zero exposed in part1 stays a real digit.
	_, rest, ok := s.SplitFirst()
	require.True(t, ok)
	require.Equal(t, layout{Part1: "01", Part2: "20", Trailing: 2}, layoutOf(rest))

	_, _, ok = Shifted{}.SplitFirst()
	require.False(t, ok)

	t.Run("digits stops early", func(t *testing.T) {
		var n int
		for range s.Digits() {
			n++
			if n == 3 {
				break
			}
		}
		require.Equal(t, 3, n)
	})
}

func TestShiftedString(t *testing.T) {
	type TC struct {
		s    Shifted
		want string
	}

	tcs := []TC{
		{s: Shifted{}, want: ""},
		{s: Single(ParseRun("00_12_300")), want: "0{2} 123 0{2}"},
		{s: Combine(ParseRun("120"), ParseRun("3_00")), want: "120 3 0{2}"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.want), func(t *testing.T) {
			require.Equal(t, tc.want, tc.s.String())
		})
	}

	t.Run("huge zero runs stay counts", func(t *testing.T) {
		ip, fp, ok := NewIntFrac(ParseRun("7"), Run{}, 1<<50)
		require.True(t, ok)
		require.Equal(t, "7 0{1125899906842624}", fmt.Sprint(ip))
		require.Equal(t, "", fmt.Sprintf("%v", fp))

		_, fp, ok = NewIntFrac(ParseRun("7"), Run{}, -(1 << 50))
		require.True(t, ok)
		require.Equal(t, "0{1125899906842623} 7", fmt.Sprintf("%v", fp))
		require.NotEmpty(t, spew.Sdump(fp))
	})
}
