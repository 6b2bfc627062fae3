package floatconv

import "math"

// This file is the hybrid kernel (§4.4): conversions that lean on a small
// number of IEEE-754 floating-point adds/subtracts and Go's own
// (language-guaranteed round-to-nearest-even) integer-to-float casts,
// instead of emulating the shift-and-round by hand. Every function here
// is a fast path for a function also available in soft.go/softint.go —
// the dispatch façade picks between them, never calls both.
//
// u32_to_f32 and u64_to_f32 fold one bit off the bottom before the native
// cast when the magnitude doesn't fit in the signed companion type, then
// double the result; the halving is exact because the folded-in bit only
// ever affects stickiness, never the value's magnitude class. u64_to_f64
// and u128_to_f64 instead bitcast the input's halves into the mantissa of
// a power-of-two constant and subtract that constant back out, letting
// the FPU's own rounding do the work.

func hybridU32ToF32(x uint32) uint32 {
	if x>>31 == 0 {
		return math.Float32bits(float32(int32(x)))
	}
	y := x>>1 | x&1
	return math.Float32bits(float32(int32(y)) * 2.0)
}

func hybridU64ToF32(x uint64) uint32 {
	if x>>63 == 0 {
		return math.Float32bits(float32(int64(x)))
	}
	y := x>>1 | x&1
	return math.Float32bits(float32(int64(y)) * 2.0)
}

func hybridI32ToF32(i int32) uint32 {
	b := hybridU32ToF32(wrapAbs32(i))
	if i < 0 {
		b |= 1 << 31
	}
	return b
}

func hybridI64ToF32(i int64) uint32 {
	b := hybridU64ToF32(wrapAbs64(i))
	if i < 0 {
		b |= 1 << 31
	}
	return b
}

var (
	hybridA64  = math.Ldexp(1, 52)
	hybridB84  = math.Ldexp(1, 84)
	hybridB104 = math.Ldexp(1, 104)
	hybridC76  = math.Ldexp(1, 76)
	hybridD128 = math.Ldexp(1, 128)
)

func hybridU64ToF64(x uint64) uint64 {
	// The low word sits directly in the mantissa of 2^52 (ULP 2^0, no
	// scaling needed); the high word needs an ULP of 2^32 to land at its
	// true place value, which is the mantissa of 2^84 (84-52=32), not the
	// 2^104 constant u128_to_f64's high word uses (that one's high chunk
	// needs an ULP of 2^52 instead, per its own split point).
	l := math.Float64frombits(math.Float64bits(hybridA64)|(x<<32)>>32) - hybridA64
	h := math.Float64frombits(math.Float64bits(hybridB84)|(x>>32)) - hybridB84
	return math.Float64bits(l + h)
}

func hybridU128ToF64(x U128) uint64 {
	threshold := U128FromUint64(1).Shl(104)
	if x.Less(threshold) {
		lo := x.Shl(12).Lo >> 12
		l := math.Float64frombits(math.Float64bits(hybridA64)|lo) - hybridA64
		hi := x.Shr(52).Lo
		h := math.Float64frombits(math.Float64bits(hybridB104)|hi) - hybridB104
		return math.Float64bits(l + h)
	}
	lo := (x.Shr(12).Lo >> 12) | (x.Lo & 0xFFFFFF)
	l := math.Float64frombits(math.Float64bits(hybridC76)|lo) - hybridC76
	hi := x.Shr(76).Lo
	h := math.Float64frombits(math.Float64bits(hybridD128)|hi) - hybridD128
	return math.Float64bits(l + h)
}

func hybridI64ToF64(i int64) uint64 {
	b := hybridU64ToF64(wrapAbs64(i))
	if i < 0 {
		b |= 1 << 63
	}
	return b
}

func hybridI128ToF64(i I128) uint64 {
	b := hybridU128ToF64(i.WrappingAbs())
	if i.Negative() {
		b |= 1 << 63
	}
	return b
}
