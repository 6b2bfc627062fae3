package floatconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftUintToExpMantLossless(t *testing.T) {
	// Every u8/u16 conversion is exact: compare against Go's own native
	// cast, which the language defines as round-to-nearest-even (and
	// there is nothing to round for a value this narrow anyway).
	for x := 0; x <= math.MaxUint16; x++ {
		want32 := math.Float32bits(float32(x))
		got32 := softU16ToF32Bits(uint16(x))
		require.Equalf(t, want32, got32, "u16->f32 mismatch at %d", x)

		want64 := math.Float64bits(float64(x))
		got64 := softU16ToF64Bits(uint16(x))
		require.Equalf(t, want64, got64, "u16->f64 mismatch at %d", x)

		if x > math.MaxUint8 {
			continue
		}
		require.Equal(t, math.Float32bits(float32(x)), uint32(softU8ToF32Bits(uint8(x))))
		require.Equal(t, math.Float64bits(float64(x)), softU8ToF64Bits(uint8(x)))
	}
}

func TestSoftU32ToF64Lossless(t *testing.T) {
	samples := []uint32{0, 1, 2, 1 << 16, math.MaxUint32, 1<<31 + 7}
	for _, x := range samples {
		want := math.Float64bits(float64(x))
		got := softU32ToF64Bits(x)
		assert.Equalf(t, want, got, "u32->f64 mismatch at %d", x)
	}
}

func TestSoftU64ToF64Round(t *testing.T) {
	// 2^64-1 rounds up to exactly 2^64: the ulp at that magnitude (2^11)
	// is far larger than the 1 unit of distance to the next power of two.
	got := math.Float64frombits(softU64ToF64Bits(math.MaxUint64, true))
	assert.Equal(t, math.Ldexp(1, 64), got)

	// Truncation drops to the next-lower representable double: the ulp at
	// this magnitude is 2^11, so the largest value <= 2^64-1 is 2^64-2^11.
	trunc := math.Float64frombits(softU64ToF64Bits(math.MaxUint64, false))
	assert.Equal(t, math.Ldexp(1, 64)-math.Ldexp(1, 11), trunc)
}

func TestSoftU64ToF64RoundTiesToEven(t *testing.T) {
	// 2^53+1 is exactly halfway between the two representable doubles
	// 2^53 and 2^53+2; ties-to-even must round to the even one, 2^53.
	x := uint64(1)<<53 + 1
	got := math.Float64frombits(softU64ToF64Bits(x, true))
	assert.Equal(t, math.Ldexp(1, 53), got)

	// A second tie one binade up: doubles in [2^54, 2^55) are 4 apart, so
	// 2^54+2 is exactly between 2^54 (mantissa ...00) and 2^54+4
	// (mantissa ...01), and 2^54 is the even choice.
	y := uint64(1)<<54 + 2
	got2 := math.Float64frombits(softU64ToF64Bits(y, true))
	assert.Equal(t, math.Ldexp(1, 54), got2)
}

func TestSoftU128ToF32Overflow(t *testing.T) {
	// 2^128-1 is far closer to 2^128 (distance 1) than to the largest
	// finite float32 (distance 2^104-1), so round-to-nearest overflows to
	// +Inf; truncation stays at the largest finite float32.
	rounded := math.Float32frombits(softU128ToF32Bits(MaxU128(), true))
	assert.True(t, math.IsInf(float64(rounded), 1))

	truncated := math.Float32frombits(softU128ToF32Bits(MaxU128(), false))
	assert.Equal(t, float32(math.MaxFloat32), truncated)
}

func TestSoftU128ToF64StaysFinite(t *testing.T) {
	// f64's range dwarfs 2^128, so the same input never overflows here.
	rounded := math.Float64frombits(softU128ToF64Bits(MaxU128(), true))
	assert.False(t, math.IsInf(rounded, 0))
	assert.InDelta(t, math.Ldexp(1, 128), rounded, math.Ldexp(1, 128-52))
}

func TestSoftSignedZeroAndSign(t *testing.T) {
	assert.Equal(t, uint32(0), softI32ToF32Bits(0, true))
	neg := softI32ToF32Bits(-5, true)
	assert.Equal(t, uint32(1)<<31, neg&(1<<31))
	assert.Equal(t, -float32(5), math.Float32frombits(neg))

	pos := softI32ToF32Bits(5, true)
	assert.Equal(t, uint32(0), pos&(1<<31))
	assert.Equal(t, float32(5), math.Float32frombits(pos))
}

func TestSoftI64MinRoundTrips(t *testing.T) {
	// math.MinInt64 is a power of two in magnitude, always exact.
	bits := softI64ToF64Bits(math.MinInt64, true)
	assert.Equal(t, float64(math.MinInt64), math.Float64frombits(bits))
}

func TestSoftFloatToIntSpecialCases(t *testing.T) {
	nanBits := math.Float64bits(math.NaN())
	assert.Equal(t, uint8(0), softF64ToU8(nanBits))
	assert.Equal(t, int64(0), softF64ToI64(nanBits))

	negZeroBits := math.Float64bits(math.Copysign(0, -1))
	assert.Equal(t, int32(0), softF64ToI32(negZeroBits))
	assert.Equal(t, uint32(0), softF64ToU32(negZeroBits))

	posInfBits := math.Float64bits(math.Inf(1))
	assert.Equal(t, int8(math.MaxInt8), softF64ToI8(posInfBits))
	assert.Equal(t, uint8(math.MaxUint8), softF64ToU8(posInfBits))

	negInfBits := math.Float64bits(math.Inf(-1))
	assert.Equal(t, int8(math.MinInt8), softF64ToI8(negInfBits))
	assert.Equal(t, uint8(0), softF64ToU8(negInfBits))

	negativeToUnsigned := math.Float64bits(-1.0)
	assert.Equal(t, uint16(0), softF64ToU16(negativeToUnsigned))

	truncates := math.Float64bits(3.9)
	assert.Equal(t, int32(3), softF64ToI32(truncates))
	negTruncates := math.Float64bits(-3.9)
	assert.Equal(t, int32(-3), softF64ToI32(negTruncates))
}

func TestSoftFloatToIntSaturatesAtBoundary(t *testing.T) {
	// float64(math.MaxInt8)+1 is exactly representable and must saturate,
	// not wrap.
	over := math.Float64bits(float64(math.MaxInt8) + 1)
	assert.Equal(t, int8(math.MaxInt8), softF64ToI8(over))

	under := math.Float64bits(float64(math.MinInt8) - 1)
	assert.Equal(t, int8(math.MinInt8), softF64ToI8(under))

	// Exactly -2^(w-1) must convert exactly, not saturate.
	exact := math.Float64bits(float64(math.MinInt8))
	assert.Equal(t, int8(math.MinInt8), softF64ToI8(exact))
}
