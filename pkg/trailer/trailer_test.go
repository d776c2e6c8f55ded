package trailer

import (
	"bytes"
	"testing"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/grammar"
)

func sampleTrailer() *BlockTrailer {
	var bt BlockTrailer
	for i := range bt.PHash {
		bt.PHash[i] = byte(i)
	}
	bt.BNum = 0x1122334455667788
	bt.MFee = 500
	bt.TCount = 7
	bt.Time0 = 1_700_000_000
	bt.Difficulty = 0xAABBCC1E // low byte 0x1E consulted, rest preserved
	for i := range bt.MRoot {
		bt.MRoot[i] = byte(0x40 + i)
	}
	for i := range bt.Nonce {
		bt.Nonce[i] = byte(0x60 + i)
	}
	bt.STime = 1_700_000_123
	for i := range bt.BHash {
		bt.BHash[i] = byte(0x90 + i)
	}
	return &bt
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	want := sampleTrailer()
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != Size {
		t.Fatalf("MarshalBinary() length = %d, want %d", len(data), Size)
	}

	var got BlockTrailer
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if *want != got {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestUnmarshalBinaryRejectsShortBuffer(t *testing.T) {
	var bt BlockTrailer
	if err := bt.UnmarshalBinary(make([]byte, Size-1)); err != ErrShortBuffer {
		t.Fatalf("UnmarshalBinary(short) = %v, want ErrShortBuffer", err)
	}
}

func TestFieldOffsets(t *testing.T) {
	bt := sampleTrailer()
	data, _ := bt.MarshalBinary()

	checks := []struct {
		name   string
		offset int
		want   []byte
	}{
		{"phash", 0, bt.PHash[:]},
		{"mroot", 60, bt.MRoot[:]},
		{"nonce", 92, bt.Nonce[:]},
		{"bhash", 128, bt.BHash[:]},
	}
	for _, c := range checks {
		got := data[c.offset : c.offset+len(c.want)]
		if !bytes.Equal(got, c.want) {
			t.Fatalf("%s at offset %d = %x, want %x", c.name, c.offset, got, c.want)
		}
	}

	if data[56] != 0x1E {
		t.Fatalf("difficulty low byte = %x, want 0x1E", data[56])
	}
	if data[57] != 0xCC || data[58] != 0xBB || data[59] != 0xAA {
		t.Fatalf("difficulty upper bytes not preserved: %x %x %x", data[57], data[58], data[59])
	}
}

func TestDiffReturnsLowByte(t *testing.T) {
	bt := sampleTrailer()
	if got := bt.Diff(); got != 0x1E {
		t.Fatalf("Diff() = %x, want 0x1E", got)
	}
}

func TestPeachPreimageIs124Bytes(t *testing.T) {
	bt := sampleTrailer()
	pre := bt.PeachPreimage()
	if len(pre) != PeachPreimageSize {
		t.Fatalf("PeachPreimage() length = %d, want %d", len(pre), PeachPreimageSize)
	}
	full, _ := bt.MarshalBinary()
	if !bytes.Equal(pre, full[:124]) {
		t.Fatal("PeachPreimage() must equal the trailer's first 124 bytes")
	}
}

func TestPrimarySecondaryNonceSplit(t *testing.T) {
	bt := sampleTrailer()
	primary := bt.PrimaryNonce()
	secondary := bt.SecondaryNonce()
	if !bytes.Equal(primary[:], bt.Nonce[:16]) {
		t.Fatal("PrimaryNonce() must be the first 16 bytes of Nonce")
	}
	if !bytes.Equal(secondary[:], bt.Nonce[16:]) {
		t.Fatal("SecondaryNonce() must be the last 16 bytes of Nonce")
	}
}

func TestTriggChainLayout(t *testing.T) {
	var bt BlockTrailer
	for i := range bt.MRoot {
		bt.MRoot[i] = 0xAA
	}
	bt.BNum = 99
	// A nonce of all zero-index tokens expands to an empty, zero-padded haiku.
	chain := bt.TriggChain()

	if len(chain) != TriggChainSize {
		t.Fatalf("TriggChain() length = %d, want %d", len(chain), TriggChainSize)
	}
	if chain[0] != 0xAA || chain[31] != 0xAA {
		t.Fatal("TriggChain() mroot not at offset 0")
	}
	bnumOff := 32 + grammar.HaikuSize + 16
	if chain[bnumOff] != 99 {
		t.Fatalf("TriggChain() bnum not little-endian at offset %d", bnumOff)
	}
}
