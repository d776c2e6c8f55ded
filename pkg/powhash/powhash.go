// Package powhash adapts the seven standard hash primitives Nighthash
// dispatches across (BLAKE2b-256, SHA-1, SHA-256, SHA-3-256, Keccak-256,
// MD2, MD5) behind one signature: feed bytes in, get exactly 32 bytes
// out, zero-padded for primitives shorter than 256 bits. It does not
// implement any of these algorithms itself (MD2 aside, which has no
// library anywhere in reach) — it only wires them up the way
// peach_nighthash's dispatcher does in the reference implementation.
package powhash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algo identifies one of the eight Nighthash algorithm slots (0-7); two
// slots (0 and 1) both select BLAKE2b-256 with differently keyed state.
type Algo uint8

const (
	AlgoBlake2b256Key0 Algo = 0
	AlgoBlake2b256Key1 Algo = 1
	AlgoSHA1           Algo = 2
	AlgoSHA256         Algo = 3
	AlgoSHA3_256       Algo = 4
	AlgoKeccak256      Algo = 5
	AlgoMD2            Algo = 6
	AlgoMD5            Algo = 7
)

// Sum computes the 32-byte Nighthash primitive output for algo over in,
// optionally appending the 4 little-endian bytes of index after in (the
// "hashindex" behaviour of spec.md's Nighthash dispatcher).
func Sum(algo Algo, in []byte, index uint32, hashIndex bool) [32]byte {
	var out [32]byte

	switch algo {
	case AlgoBlake2b256Key0, AlgoBlake2b256Key1:
		keyLen := 32
		if algo == AlgoBlake2b256Key1 {
			keyLen = 64
		}
		key := make([]byte, keyLen)
		for i := range key {
			key[i] = byte(algo)
		}
		h, err := blake2b.New(32, key)
		if err != nil {
			// Only possible if keyLen or outLen is out of range, which
			// cannot happen with the fixed sizes above.
			panic("powhash: invalid blake2b parameters: " + err.Error())
		}
		h.Write(in)
		if hashIndex {
			writeIndex(h, index)
		}
		copy(out[:], h.Sum(nil))

	case AlgoSHA1:
		h := sha1.New()
		h.Write(in)
		if hashIndex {
			writeIndex(h, index)
		}
		copy(out[:20], h.Sum(nil))

	case AlgoSHA256:
		h := sha256.New()
		h.Write(in)
		if hashIndex {
			writeIndex(h, index)
		}
		copy(out[:], h.Sum(nil))

	case AlgoSHA3_256:
		h := sha3.New256()
		h.Write(in)
		if hashIndex {
			writeIndex(h, index)
		}
		copy(out[:], h.Sum(nil))

	case AlgoKeccak256:
		// Keccak-f padding, not the SHA-3 standard's padding.
		h := sha3.NewLegacyKeccak256()
		h.Write(in)
		if hashIndex {
			writeIndex(h, index)
		}
		copy(out[:], h.Sum(nil))

	case AlgoMD2:
		h := newMD2()
		h.Write(in)
		if hashIndex {
			writeIndex(h, index)
		}
		copy(out[:16], h.Sum(nil))

	case AlgoMD5:
		h := md5.New()
		h.Write(in)
		if hashIndex {
			writeIndex(h, index)
		}
		copy(out[:16], h.Sum(nil))
	}

	return out
}

type writer interface {
	Write(p []byte) (int, error)
}

// writeIndex appends the 4 native-endian (little-endian) bytes of index
// to the running hash state, matching the reference's
// `*_update(ctx, &index, 4)` call.
func writeIndex(h writer, index uint32) {
	var b [4]byte
	b[0] = byte(index)
	b[1] = byte(index >> 8)
	b[2] = byte(index >> 16)
	b[3] = byte(index >> 24)
	h.Write(b[:])
}
