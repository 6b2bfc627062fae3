// Package floatconv implements bit-exact conversions between binary integers
// and IEEE 754 binary floating-point values (binary32 and binary64), for
// round-to-nearest-ties-to-even and round-toward-zero.
//
// # Layers
//
// The package is organised the way the underlying algorithms are organised:
//
//   - the software kernel (soft.go, softint.go) computes every conversion
//     purely from integer bit operations, touching no floating-point
//     register;
//   - the hybrid kernel (hybrid.go) computes a handful of round-to-nearest
//     conversions (u32/u64/i32/i64 to binary32, u64/u128/i64/i128 to
//     binary64) using Go's native integer-to-float casts or a small number
//     of IEEE-754 FP adds and subtracts instead of emulating the
//     shift-and-round;
//   - the dispatch façade (facade.go and its GOARCH-tagged siblings) binds
//     each entry point to one of the above: the eight round-to-nearest
//     conversions the hybrid kernel covers use the GOARCH default (hybrid on
//     amd64 and arm64, software elsewhere) unless the config package forces
//     a backend, and every other entry point uses the software kernel.
//
// Every exported conversion is a total function with no error return. The
// eight architecture-sensitive round-to-nearest entry points read the config
// package's backend override on every call; every other entry point is
// pure, with no allocation and no shared state. See the package's design
// notes for the saturation and NaN rules applied on the float-to-integer
// side.
package floatconv
