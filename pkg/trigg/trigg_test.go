package trigg

import (
	"testing"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/grammar"
	"github.com/Holedozer1229/trigg-peach-pow/pkg/prng"
)

func TestGenOutputAlwaysSatisfiesSyntax(t *testing.T) {
	prng.Seed(1)
	for i := 0; i < 500; i++ {
		nonce := Gen()
		if !Syntax(nonce) {
			t.Fatalf("Gen() produced a nonce that fails Syntax: %v", nonce)
		}
	}
}

func TestSyntaxAllZeroStreamFails(t *testing.T) {
	var nonce [16]byte
	if Syntax(nonce) {
		t.Fatal("an all-zero token stream must not satisfy any frame")
	}
}

// TestSyntaxKnownHaiku reproduces "a raindrop / on sunrise air-- / drowned"
// against frame 9 (the last frame in the table): SA, FNS, SNL, FPREP,
// FTIMED, FMASS, SMD, SNL, FADJ.
func TestSyntaxKnownHaiku(t *testing.T) {
	nonce := [16]byte{5, 205, 1, 14, 251, 215, 3, 1, 116, 0, 0, 0, 0, 0, 0, 0}
	if !Syntax(nonce) {
		t.Fatalf("known-good haiku nonce %v failed Syntax", nonce)
	}
}

func TestExpandKnownHaiku(t *testing.T) {
	nonce := [16]byte{5, 205, 1, 14, 251, 215, 3, 1, 116, 0, 0, 0, 0, 0, 0, 0}
	out := Expand(nonce)

	// Raw unrendered buffer: every literal "\n" token is still preceded
	// by the separator space the space-append rule inserts after the
	// word before it, and "\b--" keeps its leading backspace byte
	// verbatim (merging it with the preceding word is a print-time
	// concern, not Expand's).
	want := "a raindrop \non sunrise air \b-- \ndrowned "
	got := string(out[:len(want)])
	if got != want {
		t.Fatalf("Expand() = %q, want %q", got, want)
	}
	for _, b := range out[len(want):] {
		if b != 0 {
			t.Fatalf("Expand() not zero-padded past the rendered text: %q", out)
		}
	}
}

func TestExpandStopsAtZeroIndex(t *testing.T) {
	var nonce [16]byte
	nonce[0] = 5 // "a"
	out := Expand(nonce)
	if out[0] != 'a' || out[1] != ' ' || out[2] != 0 {
		t.Fatalf("Expand() on single-token stream = %q", out)
	}
}

func TestEval(t *testing.T) {
	allFF := [32]byte{}
	for i := range allFF {
		allFF[i] = 0xFF
	}

	tests := []struct {
		name string
		hash [32]byte
		diff byte
		want bool
	}{
		{"all-zero hash satisfies max difficulty", [32]byte{}, 255, true},
		{"difficulty 0 always passes", allFF, 0, true},
		{"top bit set fails diff=1", [32]byte{0x80}, 1, false},
		{"top bit clear passes diff=1", [32]byte{0x7F}, 1, true},
		{"one zero leading byte satisfies diff=8", [32]byte{0x00, 0x01}, 8, true},
		{"diff=9 fails when byte 1 has its top bit set", [32]byte{0x00, 0x80}, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(tt.hash, tt.diff); got != tt.want {
				t.Fatalf("Eval(%x, %d) = %v, want %v", tt.hash, tt.diff, got, tt.want)
			}
		})
	}
}

func TestEngineGenerateProducesCheckableNonce(t *testing.T) {
	prng.Seed(7)
	mroot := [32]byte{1, 2, 3}
	const bnum = uint64(42)
	const diff = byte(0) // difficulty 0 always passes; exercises the full pipeline

	e := NewEngine(mroot, bnum, diff)

	nonce, ok := e.Generate()
	if !ok {
		t.Fatal("Generate() at difficulty 0 must always succeed")
	}

	var primary, secondary [16]byte
	copy(primary[:], nonce[:16])
	copy(secondary[:], nonce[16:])
	if !Syntax(primary) || !Syntax(secondary) {
		t.Fatalf("Generate() produced a nonce whose halves fail Syntax: %v", nonce)
	}

	var got [32]byte
	if !Checkhash(mroot, bnum, nonce, diff, &got) {
		t.Fatal("Checkhash() must accept the nonce Generate() just produced")
	}
}

func TestCheckhashRejectsBadSyntax(t *testing.T) {
	var nonce [32]byte // both halves all-zero: fails Syntax before any hashing
	mroot := [32]byte{9}
	if Check(mroot, 1, nonce, 0) {
		t.Fatal("Checkhash must reject a nonce whose haiku halves fail Syntax")
	}
}

func TestChainBytesLayout(t *testing.T) {
	var c Chain
	for i := range c.MRoot {
		c.MRoot[i] = 0xAA
	}
	for i := range c.Haiku {
		c.Haiku[i] = 0xBB
	}
	for i := range c.Secondary {
		c.Secondary[i] = 0xCC
	}
	c.BNum = 0x0102030405060708

	body := c.Bytes()

	if body[0] != 0xAA || body[31] != 0xAA {
		t.Fatal("MRoot not at offset 0")
	}
	if body[32] != 0xBB || body[32+grammar.HaikuSize-1] != 0xBB {
		t.Fatal("Haiku not at offset 32")
	}
	secOff := 32 + grammar.HaikuSize
	if body[secOff] != 0xCC || body[secOff+15] != 0xCC {
		t.Fatal("Secondary not at offset 32+HaikuSize")
	}
	bnumOff := secOff + 16
	if body[bnumOff] != 0x08 || body[bnumOff+7] != 0x01 {
		t.Fatalf("BNum not little-endian at offset %d: %v", bnumOff, body[bnumOff:bnumOff+8])
	}
	if len(body) != ChainSize {
		t.Fatalf("Bytes() length = %d, want %d", len(body), ChainSize)
	}
}
