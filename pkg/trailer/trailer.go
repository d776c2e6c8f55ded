// Package trailer implements the 160-byte BlockTrailer codec: the
// normative little-endian layout shared by Trigg and Peach, and the two
// preimages derived from it (Peach's 124-byte prefix, Trigg's 312-byte
// chain).
package trailer

import (
	"encoding/binary"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/grammar"
	"github.com/Holedozer1229/trigg-peach-pow/pkg/trigg"
)

// Size is the normative on-wire length of a BlockTrailer.
const Size = 160

// PeachPreimageSize is the length of the Peach mining/verification
// preimage: the trailer up to and including the nonce field.
const PeachPreimageSize = 124

// TriggChainSize is the length of the Trigg mining chain: mroot(32) +
// expanded haiku(256) + secondary haiku(16) + bnum(8).
const TriggChainSize = 32 + grammar.HaikuSize + 16 + 8

// ErrShortBuffer is returned by UnmarshalBinary when given fewer than
// Size bytes.
var ErrShortBuffer = errors.New("trailer: buffer shorter than 160 bytes")

// BlockTrailer is the fixed 160-byte trailer every Trigg/Peach mining
// attempt and verification is built from. Field order and widths are
// normative:
//
//	offset  len  field
//	0       32   phash       previous block hash
//	32      8    bnum        block number, little-endian
//	40      8    mfee        minimum transaction fee, little-endian
//	48      4    tcount      transaction count, little-endian
//	52      4    time0       prior solve time, little-endian
//	56      4    difficulty  bit-length difficulty; only the low byte is consulted
//	60      32   mroot       merkle root of transactions
//	92      32   nonce       two 16-byte haiku token streams
//	124     4    stime       solve time, little-endian
//	128     32   bhash       full block hash
type BlockTrailer struct {
	PHash      chainhash.Hash
	BNum       uint64
	MFee       uint64
	TCount     uint32
	Time0      uint32
	Difficulty uint32
	MRoot      chainhash.Hash
	Nonce      [32]byte
	STime      uint32
	BHash      chainhash.Hash
}

// Diff returns the low byte of Difficulty, the only byte eval()
// consults; the remaining three bytes are preserved but otherwise
// ignored by mining and verification.
func (bt *BlockTrailer) Diff() byte {
	return byte(bt.Difficulty)
}

// MarshalBinary encodes bt into its normative 160-byte layout.
func (bt *BlockTrailer) MarshalBinary() ([]byte, error) {
	out := make([]byte, Size)
	off := 0
	off += copy(out[off:], bt.PHash[:])
	binary.LittleEndian.PutUint64(out[off:], bt.BNum)
	off += 8
	binary.LittleEndian.PutUint64(out[off:], bt.MFee)
	off += 8
	binary.LittleEndian.PutUint32(out[off:], bt.TCount)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], bt.Time0)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], bt.Difficulty)
	off += 4
	off += copy(out[off:], bt.MRoot[:])
	off += copy(out[off:], bt.Nonce[:])
	binary.LittleEndian.PutUint32(out[off:], bt.STime)
	off += 4
	off += copy(out[off:], bt.BHash[:])

	return out, nil
}

// UnmarshalBinary decodes a 160-byte buffer into bt. Buffers longer
// than Size are accepted and the excess ignored, matching the
// reference's fixed-size-struct-cast convention; buffers shorter than
// Size are rejected.
func (bt *BlockTrailer) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return ErrShortBuffer
	}

	off := 0
	copy(bt.PHash[:], data[off:off+32])
	off += 32
	bt.BNum = binary.LittleEndian.Uint64(data[off:])
	off += 8
	bt.MFee = binary.LittleEndian.Uint64(data[off:])
	off += 8
	bt.TCount = binary.LittleEndian.Uint32(data[off:])
	off += 4
	bt.Time0 = binary.LittleEndian.Uint32(data[off:])
	off += 4
	bt.Difficulty = binary.LittleEndian.Uint32(data[off:])
	off += 4
	copy(bt.MRoot[:], data[off:off+32])
	off += 32
	copy(bt.Nonce[:], data[off:off+32])
	off += 32
	bt.STime = binary.LittleEndian.Uint32(data[off:])
	off += 4
	copy(bt.BHash[:], data[off:off+32])

	return nil
}

// PeachPreimage returns the 124-byte prefix of bt's encoding: phash
// through nonce inclusive, the exact bytes both the mining and
// verification paths hash to derive bt_hash.
func (bt *BlockTrailer) PeachPreimage() []byte {
	full, _ := bt.MarshalBinary()
	return full[:PeachPreimageSize]
}

// PrimaryNonce and SecondaryNonce split the 32-byte nonce field into
// its two 16-byte haiku token streams.
func (bt *BlockTrailer) PrimaryNonce() [16]byte {
	var n [16]byte
	copy(n[:], bt.Nonce[:16])
	return n
}

func (bt *BlockTrailer) SecondaryNonce() [16]byte {
	var n [16]byte
	copy(n[:], bt.Nonce[16:])
	return n
}

// TriggChain builds the 312-byte Trigg mining chain: mroot(32) ∥
// expanded primary haiku(256) ∥ secondary haiku(16) ∥ bnum(8).
func (bt *BlockTrailer) TriggChain() [TriggChainSize]byte {
	c := trigg.Chain{
		MRoot:     [32]byte(bt.MRoot),
		Haiku:     trigg.Expand(bt.PrimaryNonce()),
		Secondary: bt.SecondaryNonce(),
		BNum:      bt.BNum,
	}
	return c.Bytes()
}
