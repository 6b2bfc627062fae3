package halfconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	x448 "github.com/x448/float16"
	"pgregory.net/rapid"

	"github.com/shiftbit/floatconv"
)

// TestIntToFloat16AgreesWithReference is the cross-validation property
// §8's tooling section calls for: for any integer whose value fits
// exactly in a float32 (so neither implementation's widening step loses
// information before the half-precision rounding happens), this package's
// round-to-nearest conversion must match x448/float16's independently
// implemented Fromfloat32.
func TestIntToFloat16AgreesWithReference(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int32Range(-65535, 65535).Draw(rt, "v")
		got := IntToFloat16(v, true)
		want := uint16(x448.Fromfloat32(float32(v)))
		require.Equal(t, want, got)
	})
}

func TestUnsignedIntToFloat16AgreesWithReference(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Uint32Range(0, 131070).Draw(rt, "v")
		got := IntToFloat16(v, true)
		want := uint16(x448.Fromfloat32(float32(v)))
		require.Equal(t, want, got)
	})
}

func TestFloat16ToIntAgreesWithReference(t *testing.T) {
	for bits := 0; bits <= math.MaxUint16; bits++ {
		u := uint16(bits)
		f16 := x448.Frombits(u)
		if f16.IsNaN() {
			assert.Equal(t, int32(0), Float16ToInt[int32](u))
			continue
		}
		// Go's own float-to-int conversion of an infinity is
		// implementation-defined, so infinities are checked against the
		// saturation rule directly instead of against a native cast.
		if f16 == x448.Inf(1) {
			assert.Equal(t, int32(math.MaxInt32), Float16ToInt[int32](u))
			continue
		}
		if f16 == x448.Inf(-1) {
			assert.Equal(t, int32(math.MinInt32), Float16ToInt[int32](u))
			continue
		}
		want := int32(f16.Float32())
		assert.Equalf(t, want, Float16ToInt[int32](u), "bits=0x%04x", u)
	}
}

func TestIntToFloat16LosslessNarrowWidths(t *testing.T) {
	for v := int8(math.MinInt8); ; v++ {
		want := uint16(x448.Fromfloat32(float32(v)))
		assert.Equal(t, want, IntToFloat16(v, true))
		if v == math.MaxInt8 {
			break
		}
	}
}

func TestIntToFloat16OverflowSaturatesToInfinity(t *testing.T) {
	// binary16's largest finite value is 65504; 65520 is the
	// round-to-nearest overflow boundary.
	got := IntToFloat16(int32(65520), true)
	assert.True(t, math.IsInf(float64(x448.Float16(got).Float32()), 1))

	truncated := IntToFloat16(int32(70000), false)
	assert.Equal(t, float32(65504), x448.Float16(truncated).Float32())
}

func TestFloat16ToIntZeroNaNAndInf(t *testing.T) {
	zero := uint16(x448.Fromfloat32(0))
	assert.Equal(t, int16(0), Float16ToInt[int16](zero))

	nan := uint16(x448.NaN())
	assert.Equal(t, int16(0), Float16ToInt[int16](nan))

	posInf := uint16(x448.Inf(1))
	assert.Equal(t, int16(math.MaxInt16), Float16ToInt[int16](posInf))

	negInf := uint16(x448.Inf(-1))
	assert.Equal(t, int16(math.MinInt16), Float16ToInt[int16](negInf))
}

func TestU128AndI128RoundTripSmallValues(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 100, -100} {
		i := floatconv.I128FromInt64(v)
		bits := I128ToFloat16(i, true)
		want := uint16(x448.Fromfloat32(float32(v)))
		assert.Equal(t, want, bits)

		back := Float16ToI128(bits)
		assert.Equal(t, floatconv.I128FromInt64(v), back)
	}
}
