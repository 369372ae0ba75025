package log10

import "lukechampine.com/uint128"

var (
	pow4  = uint128.From64(10_000)
	pow8  = uint128.From64(100_000_000)
	pow16 = uint128.From64(10_000_000_000_000_000)
	pow32 = pow16.Mul(pow16)

	fracAbove1  = uint128.Max.Div64(10)
	fracAbove2  = uint128.Max.Div64(100)
	fracAbove3  = uint128.Max.Div64(1000)
	fracScale4  = uint128.Max.Div(pow4)
	fracScale8  = uint128.Max.Div(pow8)
	fracScale16 = uint128.Max.Div(pow16)
	fracScale32 = uint128.Max.Div(pow32)
)

// IntPart128 returns floor(log10(x)).
func IntPart128(x uint128.Uint128) int {
	if x.IsZero() {
		panicZero()
	}

	var log int
	if x.Cmp(pow32) >= 0 {
		x = x.Div(pow32)
		log += 32
	}
	if x.Cmp(pow16) >= 0 {
		x = x.Div(pow16)
		log += 16
	}

	return log + lessThan16(x.Lo)
}

// FracPart128 returns floor(log10(x / 2^128)).
func FracPart128(x uint128.Uint128) int {
	if x.IsZero() {
		panicZero()
	}

	var log int
	if x.Cmp(fracScale32) <= 0 {
		x = x.Mul(pow32)
		log -= 32
	}
	if x.Cmp(fracScale16) <= 0 {
		x = x.Mul(pow16)
		log -= 16
	}
	if x.Cmp(fracScale8) <= 0 {
		x = x.Mul(pow8)
		log -= 8
	}
	if x.Cmp(fracScale4) <= 0 {
		x = x.Mul(pow4)
		log -= 4
	}

	switch {
	case x.Cmp(fracAbove1) > 0:
		return log - 1
	case x.Cmp(fracAbove2) > 0:
		return log - 2
	case x.Cmp(fracAbove3) > 0:
		return log - 3
	default:
		return log - 4
	}
}
