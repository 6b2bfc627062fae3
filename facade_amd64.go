//go:build amd64

package floatconv

// amd64 always has the FP registers the hybrid kernel's trick relies on, so
// its architecture-sensitive round-to-nearest-even conversions default to
// the hybrid kernel — mirroring the per-GOARCH file split the pack's
// bigmath-style serialization code uses (serialization_amd64.go /
// serialization_arm64.go) rather than a runtime switch. See facade.go for
// the functions themselves; this file only supplies the default this
// architecture resolves to.
const backendName = "hybrid"
