//go:build arm64

package floatconv

// arm64's NEON/FP unit gives the hybrid kernel's trick the same cheap FP
// adds amd64 has, so arm64 defaults to hybrid too rather than falling back
// to the software kernel. See facade.go for the functions themselves; this
// file only supplies the default this architecture resolves to.
const backendName = "hybrid"
