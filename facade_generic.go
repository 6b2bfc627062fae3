//go:build !amd64 && !arm64

package floatconv

// Every other GOARCH defaults the round-mode conversions to the software
// kernel too: without a verified FP-trick port for that target, the safe
// default is the kernel that never touches a floating-point register in
// the first place. See facade.go for the functions themselves; this file
// only supplies the default this architecture resolves to.
const backendName = "software"
