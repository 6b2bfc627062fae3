package floatconv

import "math/bits"

// U128 is an unsigned 128-bit integer, stored as two 64-bit words. Go has no
// native 128-bit integer type, so the wide-integer conversions in this
// package operate on this value type instead. Hi holds the high 64 bits, Lo
// the low 64 bits: the represented value is Hi<<64 | Lo.
//
// U128 carries no methods beyond what the conversion kernels need; it is not
// a general-purpose big-integer type.
type U128 struct {
	Hi, Lo uint64
}

// NewU128 builds a U128 from its high and low 64-bit words.
func NewU128(hi, lo uint64) U128 { return U128{Hi: hi, Lo: lo} }

// U128FromUint64 zero-extends x into a U128.
func U128FromUint64(x uint64) U128 { return U128{Lo: x} }

// IsZero reports whether x is zero.
func (x U128) IsZero() bool { return x.Hi == 0 && x.Lo == 0 }

// LeadingZeros returns the number of leading zero bits in x, treating x as a
// fixed 128-bit word. Returns 128 for x == 0.
func (x U128) LeadingZeros() int {
	if x.Hi != 0 {
		return bits.LeadingZeros64(x.Hi)
	}
	return 64 + bits.LeadingZeros64(x.Lo)
}

// Shl returns x<<n. n must be in [0, 128); behaviour is undefined outside
// that range (callers only ever shift by a leading-zero count, which is
// always in range).
func (x U128) Shl(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return U128{
			Hi: x.Hi<<n | x.Lo>>(64-n),
			Lo: x.Lo << n,
		}
	case n == 64:
		return U128{Hi: x.Lo, Lo: 0}
	default:
		return U128{Hi: x.Lo << (n - 64), Lo: 0}
	}
}

// Shr returns x>>n (logical). n must be in [0, 128).
func (x U128) Shr(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return U128{
			Hi: x.Hi >> n,
			Lo: x.Lo>>n | x.Hi<<(64-n),
		}
	case n == 64:
		return U128{Hi: 0, Lo: x.Hi}
	default:
		return U128{Hi: 0, Lo: x.Hi >> (n - 64)}
	}
}

// Or returns the bitwise OR of x and y.
func (x U128) Or(y U128) U128 { return U128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo} }

// And returns the bitwise AND of x and y.
func (x U128) And(y U128) U128 { return U128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo} }

// Sub returns x-y with 128-bit wraparound, via a two-word borrow chain —
// the same carry/borrow-chain idiom used throughout the pack's
// fixed-width field-arithmetic code.
func (x U128) Sub(y U128) U128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

// Less reports whether x < y, treating both as unsigned 128-bit integers.
func (x U128) Less(y U128) bool {
	if x.Hi != y.Hi {
		return x.Hi < y.Hi
	}
	return x.Lo < y.Lo
}

// MaxU128 returns the all-ones U128, the maximum representable value.
func MaxU128() U128 { return U128{Hi: ^uint64(0), Lo: ^uint64(0)} }

// I128 is a signed 128-bit integer in two's-complement form, stored as two
// 64-bit words with the same layout as U128 (the sign lives in the top bit
// of Hi).
type I128 struct {
	Hi uint64
	Lo uint64
}

// I128FromInt64 sign-extends x into an I128.
func I128FromInt64(x int64) I128 {
	hi := uint64(0)
	if x < 0 {
		hi = ^uint64(0)
	}
	return I128{Hi: hi, Lo: uint64(x)}
}

// Negative reports whether x is negative (its sign bit is set).
func (x I128) Negative() bool { return x.Hi>>63 != 0 }

// WrappingAbs returns the unsigned magnitude of x. A negative x is negated
// with a wrapping 128-bit subtraction (0 - x), so the minimum I128 value
// maps to itself reinterpreted as unsigned (2^127) instead of overflowing.
func (x I128) WrappingAbs() U128 {
	if !x.Negative() {
		return U128{Hi: x.Hi, Lo: x.Lo}
	}
	return U128{}.Sub(U128{Hi: x.Hi, Lo: x.Lo})
}
