// Package fpmix implements the single, deterministic IEEE-754 binary32
// load/NaN-guard/operate/store step used by nighthash's floating-point
// mixer. It exists as its own package because this is the one place in
// the whole engine where the compiler must be trusted not to introduce
// non-determinism: no FMA contraction, no extended-precision
// intermediates, no platform-dependent rounding. Go's float32 arithmetic
// is specified to be IEEE-754 binary32 with round-to-nearest-even and,
// unlike C, never silently contracts separate +/-/*// expressions into a
// fused multiply-add, so a plain float32 expression here already
// satisfies that contract.
package fpmix

import "math"

// Op identifies which of the four floating point operations to apply.
type Op uint8

const (
	OpAdd Op = 0
	OpSub Op = 1
	OpMul Op = 2
	OpDiv Op = 3
)

// Apply loads a binary32 value from the 4 bytes at bits (little-endian,
// matching the reference's native-endian reinterpretation on a
// little-endian platform), replaces it with float32(index) if it is NaN,
// applies op against operand, replaces the result with float32(index) if
// that is NaN, and returns the resulting bits.
//
// Division by zero is not special-cased: it produces IEEE-754 +/-Inf or
// NaN exactly as the reference implementation's C division does, and a
// resulting NaN is replaced by float32(index) per step 9 of the spec.
func Apply(bits uint32, op Op, operand int32, index uint32) uint32 {
	f := math.Float32frombits(bits)
	if isNaN32(f) {
		f = float32(index)
	}

	flv := float32(operand)
	switch op {
	case OpAdd:
		f += flv
	case OpSub:
		f -= flv
	case OpMul:
		f *= flv
	case OpDiv:
		f /= flv
	}

	if isNaN32(f) {
		f = float32(index)
	}

	return math.Float32bits(f)
}

func isNaN32(f float32) bool {
	return f != f
}
