// Package nighthash implements the Peach tile-generation mixer: a
// deterministic single-precision floating point operation mixer
// (Dflop), a set of in-place memory transformations (Dmemtx), and the
// dispatcher that combines both to select one of eight hash primitives
// (Hash). Every exported function here is a pure function of its
// arguments; none of them touch global state, since tile generation
// must be reproducible byte-for-byte given only (phash, tile index).
package nighthash

import (
	"encoding/binary"

	"github.com/Holedozer1229/trigg-peach-pow/internal/fpmix"
	"github.com/Holedozer1229/trigg-peach-pow/pkg/powhash"
)

// Precomputed 20-bit shift-selector constants from the reference
// implementation. Each selects one of the 4 bytes in the current 4-byte
// chunk, depending on the chunk's own shift amount.
const (
	opSelConst   = 0x26C34
	operandConst = 0x14198
	signConst    = 0x3D6EC
)

// Dflop is the floating-point operation mixer (spec.md §4.6). It
// processes data in 4-byte chunks (data is truncated to the largest
// multiple of 4 first) and returns the resulting 32-bit accumulator. If
// txf is true, data is mixed in place; otherwise a local copy of each
// 4-byte chunk is mixed and data is left untouched.
func Dflop(data []byte, index uint32, txf bool) uint32 {
	n := len(data) - (len(data) & 3)
	var op uint32

	for i := 0; i < n; i += 4 {
		chunk := data[i : i+4 : i+4]

		shift := ((chunk[0] & 7) + 1) << 1
		opSel := chunk[(opSelConst>>shift)&3]
		operandByte := chunk[(operandConst>>shift)&3]
		signByte := chunk[(signConst>>shift)&3]

		op += uint32(opSel)

		operandBits := uint32(operandByte)
		if signByte&1 != 0 {
			operandBits ^= 0x80000000
		}
		operand := int32(operandBits)

		bits := binary.LittleEndian.Uint32(chunk)
		bits = fpmix.Apply(bits, fpmix.Op(op&3), operand, index)

		if txf {
			binary.LittleEndian.PutUint32(chunk, bits)
		}

		op += uint32(byte(bits))
		op += uint32(byte(bits >> 8))
		op += uint32(byte(bits >> 16))
		op += uint32(byte(bits >> 24))
	}

	return op
}

// Dmemtx is the memory transformation mixer (spec.md §4.7). It performs
// exactly 8 rounds of in-place transformation on data, selected each
// round by the running accumulator op, and returns the final op.
func Dmemtx(data []byte, op uint32) uint32 {
	length := len(data)
	half := length / 2
	len32 := length / 4
	len64 := length / 8

	for i := 0; i < 8; i++ {
		op += uint32(data[i&31])

		switch op & 7 {
		case 0: // flip the first and last bit in every byte
			for z := 0; z < len64; z++ {
				for b := 0; b < 8; b++ {
					data[z*8+b] ^= 0x81
				}
			}
			for z := len64 * 2; z < len32; z++ {
				for b := 0; b < 4; b++ {
					data[z*4+b] ^= 0x81
				}
			}
		case 1: // swap first half with second half, element-wise
			for z := 0; z < half; z++ {
				data[z], data[half+z] = data[half+z], data[z]
			}
		case 2: // one's complement every byte
			for z := 0; z < length; z++ {
				data[z] = ^data[z]
			}
		case 3: // alternate +1 / -1
			for z := 0; z < length; z++ {
				if z&1 == 0 {
					data[z]++
				} else {
					data[z]--
				}
			}
		case 4: // alternate -i / +i
			for z := 0; z < length; z++ {
				if z&1 == 0 {
					data[z] -= byte(i)
				} else {
					data[z] += byte(i)
				}
			}
		case 5: // replace every 104 with 72
			for z := 0; z < length; z++ {
				if data[z] == 104 {
					data[z] = 72
				}
			}
		case 6: // if low-half byte > high-half byte, swap
			for z := 0; z < half; z++ {
				y := half + z
				if data[z] > data[y] {
					data[z], data[y] = data[y], data[z]
				}
			}
		case 7: // sequential XOR chain
			for z := 1; z < length; z++ {
				data[z] ^= data[z-1]
			}
		}
	}

	return op
}

// Hash is the Nighthash dispatcher (spec.md §4.8). It mixes in via
// Dflop (and, if txf, Dmemtx), reduces the result to one of eight
// algorithm slots, and returns the 32-byte digest of that primitive over
// in (with the 4 little-endian bytes of index appended if hashIndex).
func Hash(in []byte, index uint32, hashIndex, txf bool) [32]byte {
	algo := Dflop(in, index, txf)
	if txf {
		algo = Dmemtx(in, algo)
	}
	return powhash.Sum(powhash.Algo(algo&7), in, index, hashIndex)
}
