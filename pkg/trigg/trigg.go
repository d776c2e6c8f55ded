// Package trigg implements the Trigg proof-of-work: haiku generation
// through the compiled semantic grammar, haiku expansion to printable
// text, the syntax checker (frame unification), difficulty evaluation,
// and the CPU-only Trigg mining chain.
package trigg

import (
	"crypto/sha256"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/grammar"
	"github.com/Holedozer1229/trigg-peach-pow/pkg/prng"
)

// ChainSize is the length in bytes of the Trigg chain hashed to produce
// a mining attempt's candidate hash: mroot(32) + haiku(256) + secondary
// haiku(16) + bnum(8).
const ChainSize = 32 + grammar.HaikuSize + 16 + 8

// Gen draws a random haiku frame and fills each of its 16 slots,
// returning a 16-byte tokenized haiku. A slot value of 0 terminates the
// haiku early (the remaining bytes stay 0); a literal slot (FXLIT set)
// emits its fixed dictionary index; any other slot repeatedly draws a
// dictionary index until one matches the slot's feature mask.
func Gen() [16]byte {
	var out [16]byte
	frame := grammar.Frames[prng.Next()%grammar.NFrames]

	for j, slot := range frame {
		switch {
		case slot == 0:
			out[j] = 0
		case slot&grammar.FXLIT != 0:
			out[j] = byte(slot & 0xFF)
		default:
			for {
				widx := byte(prng.Next() & (grammar.MaxDict - 1))
				if grammar.Dict[widx].Fe&slot != 0 {
					out[j] = widx
					break
				}
			}
		}
	}

	return out
}

// Expand renders a 16-byte haiku token stream into its 256-byte
// printable form: dictionary tokens concatenated with single-space
// separators (tokens ending in newline suppress the following space),
// zero-padded to HaikuSize. Tokens beginning with a backspace byte are
// copied verbatim; it is a print-time concern for a consumer to use the
// backspace to merge with the preceding word.
func Expand(nonce [16]byte) [grammar.HaikuSize]byte {
	var out [grammar.HaikuSize]byte
	pos := 0

	for _, idx := range nonce {
		if idx == 0 {
			break
		}
		tok := grammar.Dict[idx].Tok
		pos += copy(out[pos:], tok)
		if out[pos-1] != '\n' {
			out[pos] = ' '
			pos++
		}
	}

	// Remaining bytes are already zero from the zero-value array.
	return out
}

// Eval reports whether hash has at least diff leading zero bits, where
// diff's low 8 bits are the difficulty (the reference only ever passes
// a byte here).
func Eval(hash [32]byte, diff byte) bool {
	n := diff >> 3
	for i := byte(0); i < n; i++ {
		if hash[i] != 0 {
			return false
		}
	}
	r := diff & 7
	if r == 0 {
		return true
	}
	return hash[n]&(^(byte(0xFF) >> r)) == 0
}

// Syntax reports whether a 16-byte haiku token stream conforms to any
// one frame in the compiled frame table, via unification on feature
// sets: each slot either terminates together with the stream, matches a
// literal index exactly, or shares a feature bit with the stream's
// token.
func Syntax(nonce [16]byte) bool {
	var sf [16]uint32
	for j, idx := range nonce {
		sf[j] = grammar.Dict[idx].Fe
	}

	for _, frame := range grammar.Frames {
		j := 0
		for ; j < len(frame); j++ {
			slot := frame[j]
			if slot == 0 {
				if sf[j] == 0 {
					return true
				}
				break
			}
			if slot&grammar.FXLIT != 0 {
				if slot&0xFF != uint32(nonce[j]) {
					break
				}
				continue
			}
			if sf[j]&slot == 0 {
				break
			}
		}
		if j >= len(frame) {
			return true
		}
	}

	return false
}

// Chain holds the 312-byte Trigg chain under construction for a mining
// attempt: merkle root, expanded haiku, secondary haiku, and block
// number, in that layout order (spec.md §4.13 / §6).
type Chain struct {
	MRoot     [32]byte
	Haiku     [grammar.HaikuSize]byte
	Secondary [16]byte
	BNum      uint64
}

// Bytes serialises the chain to its normative 312-byte layout.
func (c *Chain) Bytes() [ChainSize]byte {
	var out [ChainSize]byte
	off := 0
	off += copy(out[off:], c.MRoot[:])
	off += copy(out[off:], c.Haiku[:])
	off += copy(out[off:], c.Secondary[:])
	putUint64LE(out[off:off+8], c.BNum)
	return out
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// Engine drives the Trigg CPU-only mining chain for one block: it owns
// the chain under construction, the current primary/secondary haiku
// pair, and the block's difficulty.
type Engine struct {
	chain     Chain
	primary   [16]byte
	secondary [16]byte
	diff      byte
}

// NewEngine primes an Engine for solving: it places the merkle root and
// block number into the chain, records the difficulty, and draws the
// initial secondary haiku.
func NewEngine(mroot [32]byte, bnum uint64, diff byte) *Engine {
	e := &Engine{diff: diff}
	e.chain.MRoot = mroot
	e.chain.BNum = bnum
	e.secondary = Gen()
	return e
}

// Generate rolls the haiku pair forward (primary <- secondary, secondary
// <- freshly drawn), expands the new primary into the chain, hashes the
// 312-byte chain, and reports whether the result satisfies the engine's
// difficulty. On success, nonce is the 32-byte concatenation of the
// primary and secondary haiku halves that solved the block.
func (e *Engine) Generate() (nonce [32]byte, ok bool) {
	e.primary = e.secondary
	e.secondary = Gen()
	e.chain.Haiku = Expand(e.primary)
	e.chain.Secondary = e.secondary

	body := e.chain.Bytes()
	hash := sha256.Sum256(body[:])

	if !Eval(hash, e.diff) {
		return nonce, false
	}

	copy(nonce[:16], e.primary[:])
	copy(nonce[16:], e.secondary[:])
	return nonce, true
}

// Checkhash verifies a complete Trigg nonce against a merkle root and
// block number: both 16-byte haiku halves must pass Syntax, and the
// 312-byte chain they produce must satisfy diff under Eval. If out is
// non-nil, the computed hash is written into it.
func Checkhash(mroot [32]byte, bnum uint64, nonce [32]byte, diff byte, out *[32]byte) bool {
	var primary, secondary [16]byte
	copy(primary[:], nonce[:16])
	copy(secondary[:], nonce[16:])

	if !Syntax(primary) || !Syntax(secondary) {
		return false
	}

	var chain Chain
	chain.MRoot = mroot
	chain.BNum = bnum
	chain.Haiku = Expand(primary)
	chain.Secondary = secondary

	body := chain.Bytes()
	hash := sha256.Sum256(body[:])

	if out != nil {
		*out = hash
	}

	return Eval(hash, diff)
}

// Check is Checkhash without a hash output, matching the reference's
// `trigg_check` convenience macro.
func Check(mroot [32]byte, bnum uint64, nonce [32]byte, diff byte) bool {
	return Checkhash(mroot, bnum, nonce, diff, nil)
}
