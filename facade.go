package floatconv

import (
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/shiftbit/floatconv/config"
)

// This file is the dispatch façade's architecture-independent half (§4.5):
// every entry point bound here is either exact on every target (the
// lossless narrow-to-wide conversions, where Go's own int-to-float cast is
// language-guaranteed round-to-nearest-even and there is nothing to round)
// or one the original source never trusts to a native/hybrid path on any
// architecture (every *Truncate conversion, and u128-to-f32 in either
// rounding mode).
//
// Every float-to-integer conversion lives here unconditionally: Go defines
// float-to-integer narrowing as implementation-defined on overflow (unlike
// Rust's `as`, which saturates by specification), so no CPU's native
// truncating instruction can be trusted to produce this package's
// saturating contract. The software kernel is the only correct backend for
// that direction, on every architecture.
//
// The eight architecture-sensitive round-to-nearest-even conversions below
// resolve their backend through resolveRoundBackend: backendName (set per
// GOARCH by facade_amd64.go/facade_arm64.go/facade_generic.go) unless
// config.Configure/config.Load has forced a specific one, which is the only
// thing that makes that override meaningful rather than decorative.

var probeOnce sync.Once

// logBackendProbe records, once per process, which backend the dispatch
// façade actually resolved the first time it mattered — the build-tag
// default, and the forced override when one is set. It costs nothing on
// later calls (sync.Once) and never runs at all for processes that only
// use the always-software or lossless entry points.
func logBackendProbe(forced config.Backend) {
	probeOnce.Do(func() {
		ev := log.Debug().Str("build_backend", backendName)
		if forced != config.BackendAuto {
			ev = ev.Str("forced_backend", string(forced))
		}
		ev.Msg("floatconv: round-mode backend resolved")
	})
}

// resolveRoundBackend decides which kernel an architecture-sensitive
// round-mode entry point should use: the caller's forced override, or
// backendName, this GOARCH's default.
func resolveRoundBackend() config.Backend {
	forced := config.Get().ForceBackend
	logBackendProbe(forced)
	if forced == config.BackendAuto {
		return config.Backend(backendName)
	}
	return forced
}

func U32ToF32Round(x uint32) float32 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float32frombits(softU32ToF32Bits(x, true))
	}
	return math.Float32frombits(hybridU32ToF32(x))
}

func U64ToF32Round(x uint64) float32 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float32frombits(softU64ToF32Bits(x, true))
	}
	return math.Float32frombits(hybridU64ToF32(x))
}

func I32ToF32Round(i int32) float32 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float32frombits(softI32ToF32Bits(i, true))
	}
	return math.Float32frombits(hybridI32ToF32(i))
}

func I64ToF32Round(i int64) float32 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float32frombits(softI64ToF32Bits(i, true))
	}
	return math.Float32frombits(hybridI64ToF32(i))
}

func U64ToF64Round(x uint64) float64 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float64frombits(softU64ToF64Bits(x, true))
	}
	return math.Float64frombits(hybridU64ToF64(x))
}

func U128ToF64Round(x U128) float64 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float64frombits(softU128ToF64Bits(x, true))
	}
	return math.Float64frombits(hybridU128ToF64(x))
}

func I64ToF64Round(i int64) float64 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float64frombits(softI64ToF64Bits(i, true))
	}
	return math.Float64frombits(hybridI64ToF64(i))
}

func I128ToF64Round(i I128) float64 {
	if resolveRoundBackend() == config.BackendSoftware {
		return math.Float64frombits(softI128ToF64Bits(i, true))
	}
	return math.Float64frombits(hybridI128ToF64(i))
}

// --- lossless unsigned-to-float ---

func U8ToF32(x uint8) float32   { return math.Float32frombits(softU8ToF32Bits(x)) }
func U16ToF32(x uint16) float32 { return math.Float32frombits(softU16ToF32Bits(x)) }
func U8ToF64(x uint8) float64   { return math.Float64frombits(softU8ToF64Bits(x)) }
func U16ToF64(x uint16) float64 { return math.Float64frombits(softU16ToF64Bits(x)) }
func U32ToF64(x uint32) float64 { return math.Float64frombits(softU32ToF64Bits(x)) }

// --- lossless signed-to-float ---

func I8ToF32(i int8) float32   { return math.Float32frombits(softI8ToF32Bits(i)) }
func I16ToF32(i int16) float32 { return math.Float32frombits(softI16ToF32Bits(i)) }
func I8ToF64(i int8) float64   { return math.Float64frombits(softI8ToF64Bits(i)) }
func I16ToF64(i int16) float64 { return math.Float64frombits(softI16ToF64Bits(i)) }
func I32ToF64(i int32) float64 { return math.Float64frombits(softI32ToF64Bits(i)) }

// --- always-software lossy conversions ---

func U32ToF32Truncate(x uint32) float32 { return math.Float32frombits(softU32ToF32Bits(x, false)) }
func U64ToF32Truncate(x uint64) float32 { return math.Float32frombits(softU64ToF32Bits(x, false)) }
func U128ToF32Round(x U128) float32     { return math.Float32frombits(softU128ToF32Bits(x, true)) }
func U128ToF32Truncate(x U128) float32  { return math.Float32frombits(softU128ToF32Bits(x, false)) }

func U64ToF64Truncate(x uint64) float64 { return math.Float64frombits(softU64ToF64Bits(x, false)) }
func U128ToF64Truncate(x U128) float64  { return math.Float64frombits(softU128ToF64Bits(x, false)) }

func I32ToF32Truncate(i int32) float32 { return math.Float32frombits(softI32ToF32Bits(i, false)) }
func I64ToF32Truncate(i int64) float32 { return math.Float32frombits(softI64ToF32Bits(i, false)) }
func I128ToF32Round(i I128) float32    { return math.Float32frombits(softI128ToF32Bits(i, true)) }
func I128ToF32Truncate(i I128) float32 { return math.Float32frombits(softI128ToF32Bits(i, false)) }

func I64ToF64Truncate(i int64) float64 { return math.Float64frombits(softI64ToF64Bits(i, false)) }
func I128ToF64Truncate(i I128) float64 { return math.Float64frombits(softI128ToF64Bits(i, false)) }

// --- float-to-integer, every width/sign, both source formats ---

func F32ToU8(f float32) uint8   { return softF32ToU8(math.Float32bits(f)) }
func F32ToU16(f float32) uint16 { return softF32ToU16(math.Float32bits(f)) }
func F32ToU32(f float32) uint32 { return softF32ToU32(math.Float32bits(f)) }
func F32ToU64(f float32) uint64 { return softF32ToU64(math.Float32bits(f)) }
func F32ToU128(f float32) U128  { return softF32ToU128(math.Float32bits(f)) }

func F32ToI8(f float32) int8   { return softF32ToI8(math.Float32bits(f)) }
func F32ToI16(f float32) int16 { return softF32ToI16(math.Float32bits(f)) }
func F32ToI32(f float32) int32 { return softF32ToI32(math.Float32bits(f)) }
func F32ToI64(f float32) int64 { return softF32ToI64(math.Float32bits(f)) }
func F32ToI128(f float32) I128 { return softF32ToI128(math.Float32bits(f)) }

func F64ToU8(f float64) uint8   { return softF64ToU8(math.Float64bits(f)) }
func F64ToU16(f float64) uint16 { return softF64ToU16(math.Float64bits(f)) }
func F64ToU32(f float64) uint32 { return softF64ToU32(math.Float64bits(f)) }
func F64ToU64(f float64) uint64 { return softF64ToU64(math.Float64bits(f)) }
func F64ToU128(f float64) U128  { return softF64ToU128(math.Float64bits(f)) }

func F64ToI8(f float64) int8   { return softF64ToI8(math.Float64bits(f)) }
func F64ToI16(f float64) int16 { return softF64ToI16(math.Float64bits(f)) }
func F64ToI32(f float64) int32 { return softF64ToI32(math.Float64bits(f)) }
func F64ToI64(f float64) int64 { return softF64ToI64(math.Float64bits(f)) }
func F64ToI128(f float64) I128 { return softF64ToI128(math.Float64bits(f)) }
