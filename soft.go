package floatconv

import "math/bits"

// This file is the software kernel's integer-to-float half: §4.1 (unsigned)
// and §4.2 (signed) of the design notes, generalised into two routines that
// cover every width instead of one hand-written function per width/format
// pair. The generalisation is exact: softUintToExpMant is parameterised by
// the source width w, the target's stored-mantissa width p and exponent
// bias, and reduces, width-for-width, to the same shift amounts the
// original per-width formulas used.
//
// Every routine here returns the target format's (exponent<<p)+mantissa
// sum, computed with plain wrapping unsigned arithmetic so that a mantissa
// carry (on round-up) propagates into the exponent field automatically —
// the same trick that makes the u128-to-f32 overflow case fall out of the
// arithmetic instead of needing a special-cased branch.

// softUintToExpMant computes the exponent/mantissa bits for a nonnegative
// integer x of bit width w (w <= 64, the true value occupies x's low w
// bits), targeting a format with p stored mantissa bits and exponent bias
// bias. round selects round-to-nearest-even (true) or truncate-toward-zero
// (false); round is ignored when w <= p+1, since such conversions are
// always exact.
func softUintToExpMant(x uint64, w uint, p uint, bias uint64, round bool) uint64 {
	if x == 0 {
		return 0
	}
	n := uint(bits.LeadingZeros64(x)) - (64 - w)
	e := bias + uint64(w) - 2 - uint64(n)
	pp1 := p + 1
	shifted := x << n // leading bit of x now sits at bit (w-1)

	if w <= pp1 {
		// Lossless: room to spare, just slide the hidden bit up to bit p.
		// w <= p+1 bounds the magnitude well inside any target's range, so
		// there's no encodable-exponent ceiling to check here.
		a := shifted << (pp1 - w)
		return (e << p) + a
	}

	a := shifted >> (w - pp1) // top p+1 bits: hidden bit plus stored mantissa
	m := a
	if round {
		b := shifted << (64 - w + pp1) // guard bit at bit 63, sticky folded below
		borrow := (b >> 63) &^ a
		m = a + ((b - borrow) >> 63)
	}
	return clampExpMant(e, m, p, bias, round)
}

// clampExpMant combines a pre-carry exponent e with mantissa field m,
// saturating instead of letting the sum spill past the target format's
// largest encodable exponent field (2*bias for finite, 2*bias+1 for
// infinity). The carry from a full round-up only ever pushes the field one
// step past 2*bias, landing cleanly on infinity with a zero mantissa — that
// case is let through unclamped. A source magnitude whose natural exponent
// already exceeds the format's range (routine when, say, an int64 feeds
// binary16) would otherwise wrap into a bit pattern that looks like a NaN
// instead of saturating, so it's caught here and forced to +Inf or the
// largest finite value instead.
func clampExpMant(e uint64, m uint64, p uint, bias uint64, round bool) uint64 {
	maxFiniteExp := 2 * bias
	result := (e << p) + m
	finalExp := result >> p
	if finalExp <= maxFiniteExp {
		return result
	}
	// Truncation never legitimately reaches the infinity field: a non-zero
	// mantissa there just means the source magnitude was already past the
	// finite range, and even a coincidentally-zero one still represents a
	// value truncation must not round up past max finite.
	if round && finalExp == maxFiniteExp+1 && result&((uint64(1)<<p)-1) == 0 {
		return result // clean rounding carry straight to +Inf
	}
	if round {
		return (maxFiniteExp + 1) << p // +Inf, zero mantissa
	}
	return (maxFiniteExp << p) | ((uint64(1) << p) - 1) // largest finite
}

// softU128ToExpMant is softUintToExpMant's 128-bit-wide sibling: the u128
// cases can't route through a single 64-bit register, so the guard/sticky
// split happens in two steps, with the truly-lost low bits folded down to
// a single sticky bit rather than kept at their original bit positions
// (per §4.1's "OR-reduced into the lowest bit" note).
func softU128ToExpMant(x U128, p uint, bias uint64, round bool) uint64 {
	if x.IsZero() {
		return 0
	}
	n := uint(x.LeadingZeros())
	e := bias + 128 - 2 - uint64(n)
	pp1 := p + 1
	y := x.Shl(n)

	a := y.Shr(128 - pp1).Lo
	m := a
	if round {
		lost := 64 - pp1
		guard := y.Shr(lost).Lo
		sticky := uint64(0)
		if !y.And(NewU128(0, (uint64(1)<<lost)-1)).IsZero() {
			sticky = 1
		}
		b := guard | sticky
		borrow := (b >> 63) &^ a
		m = a + ((b - borrow) >> 63)
	}
	return clampExpMant(e, m, p, bias, round)
}

// --- unsigned entry points, per (source width, target format) ---

func softU8ToF32Bits(x uint8) uint32  { return uint32(softUintToExpMant(uint64(x), 8, 23, 127, true)) }
func softU16ToF32Bits(x uint16) uint32 {
	return uint32(softUintToExpMant(uint64(x), 16, 23, 127, true))
}
func softU32ToF32Bits(x uint32, round bool) uint32 {
	return uint32(softUintToExpMant(uint64(x), 32, 23, 127, round))
}
func softU64ToF32Bits(x uint64, round bool) uint32 {
	return uint32(softUintToExpMant(x, 64, 23, 127, round))
}
func softU128ToF32Bits(x U128, round bool) uint32 {
	return uint32(softU128ToExpMant(x, 23, 127, round))
}

func softU8ToF64Bits(x uint8) uint64   { return softUintToExpMant(uint64(x), 8, 52, 1023, true) }
func softU16ToF64Bits(x uint16) uint64 { return softUintToExpMant(uint64(x), 16, 52, 1023, true) }
func softU32ToF64Bits(x uint32) uint64 { return softUintToExpMant(uint64(x), 32, 52, 1023, true) }
func softU64ToF64Bits(x uint64, round bool) uint64 {
	return softUintToExpMant(x, 64, 52, 1023, round)
}
func softU128ToF64Bits(x U128, round bool) uint64 {
	return softU128ToExpMant(x, 52, 1023, round)
}

// --- wrapping-abs helpers for §4.2's signed-to-unsigned magnitude step ---

func wrapAbs8(i int8) uint8 {
	u, m := uint8(i), uint8(i>>7)
	return (u ^ m) - m
}

func wrapAbs16(i int16) uint16 {
	u, m := uint16(i), uint16(i>>15)
	return (u ^ m) - m
}

func wrapAbs32(i int32) uint32 {
	u, m := uint32(i), uint32(i>>31)
	return (u ^ m) - m
}

func wrapAbs64(i int64) uint64 {
	u, m := uint64(i), uint64(i>>63)
	return (u ^ m) - m
}

// --- signed entry points: unsigned conversion of the magnitude, sign OR'd
// back in, per §4.2. The unsigned routine never sets the result's sign
// bit, so OR is equivalent to the addition the unsigned path itself uses.

func softI8ToF32Bits(i int8) uint32 {
	b := softU8ToF32Bits(wrapAbs8(i))
	return b | uint32(i>>7)<<31
}
func softI16ToF32Bits(i int16) uint32 {
	b := softU16ToF32Bits(wrapAbs16(i))
	return b | uint32(uint16(i>>15))<<31
}
func softI32ToF32Bits(i int32, round bool) uint32 {
	b := softU32ToF32Bits(wrapAbs32(i), round)
	return b | uint32(i>>31)<<31
}
func softI64ToF32Bits(i int64, round bool) uint32 {
	b := softU64ToF32Bits(wrapAbs64(i), round)
	return b | uint32(uint64(i>>63)&1)<<31
}
func softI128ToF32Bits(i I128, round bool) uint32 {
	b := softU128ToF32Bits(i.WrappingAbs(), round)
	if i.Negative() {
		b |= 1 << 31
	}
	return b
}

func softI8ToF64Bits(i int8) uint64 {
	b := softU8ToF64Bits(wrapAbs8(i))
	return b | uint64(i>>7)<<63
}
func softI16ToF64Bits(i int16) uint64 {
	b := softU16ToF64Bits(wrapAbs16(i))
	return b | uint64(uint16(i>>15))<<63
}
func softI32ToF64Bits(i int32) uint64 {
	b := softU32ToF64Bits(wrapAbs32(i))
	return b | uint64(uint32(i>>31))<<63
}
func softI64ToF64Bits(i int64, round bool) uint64 {
	b := softU64ToF64Bits(wrapAbs64(i), round)
	return b | uint64(i>>63)<<63
}
func softI128ToF64Bits(i I128, round bool) uint64 {
	b := softU128ToF64Bits(i.WrappingAbs(), round)
	if i.Negative() {
		b |= 1 << 63
	}
	return b
}
