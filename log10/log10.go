// Package log10 computes floor(log10) of unsigned integers and of unsigned
// integers read as binary fractions.
//
// IntPart returns k such that 10^k <= x < 10^(k+1) for x >= 1.
//
// FracPart reads x as the fraction x / 2^w, where w is the width of x, and
// returns the negative k such that 10^k <= x / 2^w < 10^(k+1) for x > 0.
//
// Both use a fixed cascade of comparisons. Wide types are first reduced (or,
// for fractions, scaled up) by large powers of ten so that the small cascade
// of the narrower width can be reused. Calling either with zero panics.
package log10

import (
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the class of all errors raised by this package.
var Error = errs.Class("log10")

func panicZero() {
	panic(Error.New("log10 of zero"))
}

// IntPart8 returns floor(log10(x)).
func IntPart8(x uint8) int {
	if x == 0 {
		panicZero()
	}

	switch {
	case x >= 100:
		return 2
	case x >= 10:
		return 1
	default:
		return 0
	}
}

// FracPart8 returns floor(log10(x / 2^8)).
func FracPart8(x uint8) int {
	if x == 0 {
		panicZero()
	}

	switch {
	case x > 25:
		return -1
	case x > 2:
		return -2
	default:
		return -3
	}
}

// IntPart16 returns floor(log10(x)).
func IntPart16(x uint16) int {
	if x == 0 {
		panicZero()
	}

	switch {
	case x >= 10_000:
		return 4
	case x >= 1000:
		return 3
	case x >= 100:
		return 2
	case x >= 10:
		return 1
	default:
		return 0
	}
}

// FracPart16 returns floor(log10(x / 2^16)).
func FracPart16(x uint16) int {
	if x == 0 {
		panicZero()
	}

	switch {
	case x > 6553:
		return -1
	case x > 655:
		return -2
	case x > 65:
		return -3
	case x > 6:
		return -4
	default:
		return -5
	}
}

// lessThan8 handles 1 <= x < 10^8.
func lessThan8(x uint32) int {
	var log int
	if x >= 10_000 {
		x /= 10_000
		log += 4
	}

	switch {
	case x >= 1000:
		return log + 3
	case x >= 100:
		return log + 2
	case x >= 10:
		return log + 1
	default:
		return log
	}
}

// IntPart32 returns floor(log10(x)).
func IntPart32(x uint32) int {
	if x == 0 {
		panicZero()
	}

	var log int
	if x >= 100_000_000 {
		x /= 100_000_000
		log += 8
	}

	return log + lessThan8(x)
}

// FracPart32 returns floor(log10(x / 2^32)).
func FracPart32(x uint32) int {
	if x == 0 {
		panicZero()
	}

	const maxU32 = ^uint32(0)

	var log int
	if x <= maxU32/100_000_000 {
		x *= 100_000_000
		log -= 8
	}
	if x <= maxU32/10_000 {
		x *= 10_000
		log -= 4
	}

	switch {
	case x > maxU32/10:
		return log - 1
	case x > maxU32/100:
		return log - 2
	case x > maxU32/1000:
		return log - 3
	default:
		return log - 4
	}
}

// lessThan16 handles 1 <= x < 10^16.
func lessThan16(x uint64) int {
	var log int
	if x >= 100_000_000 {
		x /= 100_000_000
		log += 8
	}

	return log + lessThan8(uint32(x))
}

// IntPart64 returns floor(log10(x)).
func IntPart64(x uint64) int {
	if x == 0 {
		panicZero()
	}

	var log int
	if x >= 10_000_000_000_000_000 {
		x /= 10_000_000_000_000_000
		log += 16
	}

	return log + lessThan16(x)
}

// FracPart64 returns floor(log10(x / 2^64)).
func FracPart64(x uint64) int {
	if x == 0 {
		panicZero()
	}

	const maxU64 = ^uint64(0)

	var log int
	if x <= maxU64/10_000_000_000_000_000 {
		x *= 10_000_000_000_000_000
		log -= 16
	}
	if x <= maxU64/100_000_000 {
		x *= 100_000_000
		log -= 8
	}
	if x <= maxU64/10_000 {
		x *= 10_000
		log -= 4
	}

	switch {
	case x > maxU64/10:
		return log - 1
	case x > maxU64/100:
		return log - 2
	case x > maxU64/1000:
		return log - 3
	default:
		return log - 4
	}
}

// IntPart returns floor(log10(x)) using the cascade for the width of T.
func IntPart[T constraints.Unsigned](x T) int {
	switch uint64(^T(0)) {
	case 1<<8 - 1:
		return IntPart8(uint8(x))
	case 1<<16 - 1:
		return IntPart16(uint16(x))
	case 1<<32 - 1:
		return IntPart32(uint32(x))
	default:
		return IntPart64(uint64(x))
	}
}

// FracPart returns floor(log10(x / 2^w)) where w is the width of T.
func FracPart[T constraints.Unsigned](x T) int {
	switch uint64(^T(0)) {
	case 1<<8 - 1:
		return FracPart8(uint8(x))
	case 1<<16 - 1:
		return FracPart16(uint16(x))
	case 1<<32 - 1:
		return FracPart32(uint32(x))
	default:
		return FracPart64(uint64(x))
	}
}
