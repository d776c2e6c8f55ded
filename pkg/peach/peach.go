// Package peach implements the memory-hard Peach proof-of-work: the
// 1 GiB deterministic tile map with lazy materialisation, the 8-jump
// pointer-chase, and the mining/verification paths that tie Peach to
// Trigg haiku nonces and difficulty evaluation.
package peach

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/nighthash"
	"github.com/Holedozer1229/trigg-peach-pow/pkg/trailer"
	"github.com/Holedozer1229/trigg-peach-pow/pkg/trigg"
)

// TileSize is the length in bytes of one Peach tile.
const TileSize = 1024

// TileCount is the number of tiles in the map, 2^20.
const TileCount = 1 << 20

// MapBytes is the total size of a fully materialised map: 1 GiB.
const MapBytes = TileCount * TileSize

// ErrAllocationFailure is returned by NewEngine when the map or cache
// cannot be allocated. The engine must not be used; Go's garbage
// collector reclaims any partial allocation once the half-built Engine
// value is discarded.
var ErrAllocationFailure = errors.New("peach: map/cache allocation failed")

// Map is the 1 GiB deterministic tile map, TileCount tiles of TileSize
// bytes each.
type Map []byte

// Cache is the 1 MiB presence bitmap, one byte per tile: cache[i] != 0 means
// map[i*TileSize : (i+1)*TileSize] holds tile i's canonical content.
type Cache []byte

// Engine drives one block's Peach mining or verification. A mining
// Engine (built by NewEngine) owns a full Map and Cache; a verification
// Engine (built internally by Verify) has neither and generates tiles
// directly into its scratch buffer.
type Engine struct {
	mapBuf    Map
	cache     Cache
	trailer   *trailer.BlockTrailer
	primary   [16]byte
	secondary [16]byte
	scratch   [TileSize]byte
	diff      byte
}

// NewEngine allocates a full 1 GiB map and 1 MiB cache for mining
// against bt, and draws the engine's initial secondary haiku. It
// returns ErrAllocationFailure if the allocation fails.
func NewEngine(bt *trailer.BlockTrailer) (eng *Engine, err error) {
	defer func() {
		if r := recover(); r != nil {
			eng = nil
			err = fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()

	e := &Engine{trailer: bt, diff: bt.Diff()}
	e.mapBuf = make(Map, MapBytes)
	e.cache = make(Cache, TileCount)
	e.secondary = trigg.Gen()

	return e, nil
}

// NewScratchEngine builds an Engine with no map or cache attached: tile
// generation writes into the engine's 1024-byte scratch buffer instead,
// the same construction Verify uses internally. It never fails and
// never allocates the 1 GiB map, making it suitable for verification
// and for benchmarking tile generation in isolation.
func NewScratchEngine(bt *trailer.BlockTrailer) *Engine {
	return &Engine{trailer: bt, diff: bt.Diff()}
}

// Close drops the engine's map and cache references so a long-lived
// process can release the 1 GiB promptly instead of waiting on the next
// garbage collection cycle.
func (e *Engine) Close() {
	e.mapBuf = nil
	e.cache = nil
}

// Gen returns tile index's 1024-byte content (spec.md §4.9): the cached
// copy if already materialised, otherwise a freshly generated tile
// written into the map (if attached) or the engine's scratch buffer.
func (e *Engine) Gen(index uint32) []byte {
	if e.cache != nil && e.cache[index] != 0 {
		start := uint64(index) * TileSize
		return e.mapBuf[start : start+TileSize]
	}

	var tile []byte
	if e.mapBuf != nil {
		start := uint64(index) * TileSize
		tile = e.mapBuf[start : start+TileSize]
	} else {
		tile = e.scratch[:]
	}

	var seed [36]byte
	binary.LittleEndian.PutUint32(seed[:4], index)
	copy(seed[4:], e.trailer.PHash[:])

	h := nighthash.Hash(seed[:], index, false, true)
	copy(tile[:32], h[:])

	for k := 0; k < 31; k++ {
		h = nighthash.Hash(tile[k*32:(k+1)*32], index, true, true)
		copy(tile[(k+1)*32:(k+2)*32], h[:])
	}

	if e.cache != nil {
		e.cache[index] = 1
	}

	return tile
}

// Next performs one jump of the pointer-chase (spec.md §4.10): it mixes
// nonce, index, and the current tile through Nighthash, sums the result
// as eight little-endian uint32 words, and returns the next tile index.
func Next(index uint32, tile []byte, nonce [32]byte) uint32 {
	seed := make([]byte, 32+4+TileSize)
	copy(seed, nonce[:])
	binary.LittleEndian.PutUint32(seed[32:36], index)
	copy(seed[36:], tile)

	h := nighthash.Hash(seed, index, false, false)

	var s uint32
	for i := 0; i < 8; i++ {
		s += binary.LittleEndian.Uint32(h[i*4 : i*4+4])
	}

	return (index + s) & (TileCount - 1)
}

// deriveMario computes the initial tile index from a 32-byte bt_hash
// (spec.md §4.11 step 3): treat the first byte as a uint32 accumulator,
// then repeatedly multiply (mod 2^32) by each remaining byte.
func deriveMario(btHash [32]byte) uint32 {
	mario := uint32(btHash[0])
	for k := 1; k < 32; k++ {
		mario *= uint32(btHash[k])
	}
	return mario & (TileCount - 1)
}

// jumpChain runs the shared 8-jump pointer-chase used by both mining
// and verification, starting from btHash, and returns the final
// SHA-256 hash of btHash ∥ tile.
func jumpChain(e *Engine, btHash [32]byte, nonce [32]byte) [32]byte {
	mario := deriveMario(btHash)
	tile := e.Gen(mario)

	for i := 0; i < 8; i++ {
		mario = Next(mario, tile, nonce)
		tile = e.Gen(mario)
	}

	final := make([]byte, 32+TileSize)
	copy(final, btHash[:])
	copy(final[32:], tile)
	return sha256.Sum256(final)
}

// Generate is one Peach mining attempt (spec.md §4.11): it rolls the
// haiku pair forward, derives bt_hash from the trailer's first 92 bytes
// plus the fresh nonce, runs the jump chain, and reports whether the
// result satisfies the engine's difficulty.
func (e *Engine) Generate() (nonce [32]byte, ok bool) {
	e.primary = e.secondary
	e.secondary = trigg.Gen()
	copy(nonce[:16], e.primary[:])
	copy(nonce[16:], e.secondary[:])

	buf := make([]byte, 92+32)
	copy(buf, e.trailer.PeachPreimage()[:92])
	copy(buf[92:], nonce[:])
	btHash := sha256.Sum256(buf)

	hash := jumpChain(e, btHash, nonce)
	if !trigg.Eval(hash, e.diff) {
		return nonce, false
	}
	return nonce, true
}

// Verify is the Peach verification path (spec.md §4.12): it rejects a
// trailer whose haiku halves fail Syntax, otherwise derives bt_hash
// from the trailer's 124-byte preimage in a single pass, runs the jump
// chain against a scratch-only Engine (no map attached), and reports
// whether the result satisfies the trailer's own difficulty.
func Verify(bt *trailer.BlockTrailer) (hash [32]byte, ok bool) {
	if !trigg.Syntax(bt.PrimaryNonce()) || !trigg.Syntax(bt.SecondaryNonce()) {
		return hash, false
	}

	e := NewScratchEngine(bt)
	btHash := sha256.Sum256(bt.PeachPreimage())

	hash = jumpChain(e, btHash, bt.Nonce)
	ok = trigg.Eval(hash, bt.Diff())
	return hash, ok
}

// Checkhash verifies bt and, if out is non-nil, writes the computed
// hash into it.
func Checkhash(bt *trailer.BlockTrailer, out *[32]byte) bool {
	hash, ok := Verify(bt)
	if out != nil {
		*out = hash
	}
	return ok
}

// Check is Checkhash without a hash output.
func Check(bt *trailer.BlockTrailer) bool {
	return Checkhash(bt, nil)
}
