// Package halfconv converts between Go's integer types and IEEE 754 binary16
// (half precision) bit patterns, using the same clz/normalize/round/
// sticky-fold kernel the root package's binary32/binary64 conversions use,
// instantiated with 10 stored mantissa bits and an exponent bias of 15
// instead of being re-derived from scratch.
//
// This is a separate, additive surface: it is not part of the root
// package's "exactly these conversions exist" catalogue, and it carries no
// arithmetic of its own (add, multiply, and friends stay out of scope).
package halfconv

import "github.com/shiftbit/floatconv"

const (
	mantissaBits = 10
	bias         = 15
	totalBits    = 16
)

// Signed is the set of Go signed integer types this package converts.
type Signed interface{ ~int8 | ~int16 | ~int32 | ~int64 }

// Unsigned is the set of Go unsigned integer types this package converts.
type Unsigned interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

// Integer is the full set of integer types IntToFloat16 and Float16ToInt
// accept. 128-bit integers are handled by the dedicated
// U128ToFloat16/I128ToFloat16 and Float16ToU128/Float16ToI128 functions
// below instead, since Go generics can't range over floatconv.U128/I128
// alongside the native integer types and still convert a result back into
// a type parameter with a plain T(x) conversion.
type Integer interface{ Signed | Unsigned }

// IntToFloat16 converts x to its nearest (round=true) or truncated
// (round=false) binary16 bit pattern.
func IntToFloat16[T Integer](x T, round bool) uint16 {
	switch v := any(x).(type) {
	case int8:
		return signedToF16(v < 0, floatconv.WrapAbs8(v), 8, round)
	case int16:
		return signedToF16(v < 0, floatconv.WrapAbs16(v), 16, round)
	case int32:
		return signedToF16(v < 0, floatconv.WrapAbs32(v), 32, round)
	case int64:
		return signedToF16(v < 0, floatconv.WrapAbs64(v), 64, round)
	case uint8:
		return unsignedToF16(uint64(v), 8, round)
	case uint16:
		return unsignedToF16(uint64(v), 16, round)
	case uint32:
		return unsignedToF16(uint64(v), 32, round)
	case uint64:
		return unsignedToF16(v, 64, round)
	default:
		panic("halfconv: unsupported integer type")
	}
}

// Float16ToInt converts a binary16 bit pattern to T, truncating toward
// zero, saturating on overflow, and mapping NaN to 0 — the same total,
// error-free contract as the root package's float-to-integer conversions.
func Float16ToInt[T Integer](bits uint16) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(f16ToIntBits(bits, 8, true)))
	case int16:
		return T(int16(f16ToIntBits(bits, 16, true)))
	case int32:
		return T(int32(f16ToIntBits(bits, 32, true)))
	case int64:
		return T(int64(f16ToIntBits(bits, 64, true)))
	case uint8:
		return T(uint8(f16ToIntBits(bits, 8, false)))
	case uint16:
		return T(uint16(f16ToIntBits(bits, 16, false)))
	case uint32:
		return T(uint32(f16ToIntBits(bits, 32, false)))
	case uint64:
		return T(f16ToIntBits(bits, 64, false))
	default:
		panic("halfconv: unsupported integer type")
	}
}

func unsignedToF16(mag uint64, w uint, round bool) uint16 {
	return uint16(floatconv.KernelUintToExpMant(mag, w, mantissaBits, bias, round))
}

func signedToF16(negative bool, mag uint64, w uint, round bool) uint16 {
	b := unsignedToF16(mag, w, round)
	if negative {
		b |= 1 << 15
	}
	return b
}

func f16ToIntBits(bits uint16, w uint, signed bool) uint64 {
	return floatconv.KernelFloatToIntBits(uint64(bits), totalBits, mantissaBits, bias, w, signed)
}

// U128ToFloat16 and I128ToFloat16 are IntToFloat16's 128-bit-source
// siblings, covering the W=128 member of §4.6's W∈{8,16,32,64,128} range.
func U128ToFloat16(x floatconv.U128, round bool) uint16 {
	return uint16(floatconv.KernelU128ToExpMant(x, mantissaBits, bias, round))
}

func I128ToFloat16(i floatconv.I128, round bool) uint16 {
	b := U128ToFloat16(i.WrappingAbs(), round)
	if i.Negative() {
		b |= 1 << 15
	}
	return b
}

// Float16ToU128 and Float16ToI128 are Float16ToInt's 128-bit-destination
// siblings.
func Float16ToU128(bits uint16) floatconv.U128 {
	return floatconv.KernelFloatToU128(uint64(bits), totalBits, mantissaBits, bias)
}

func Float16ToI128(bits uint16) floatconv.I128 {
	return floatconv.KernelFloatToI128(uint64(bits), totalBits, mantissaBits, bias)
}
