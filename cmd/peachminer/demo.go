package main

import (
	"crypto/rand"
	"time"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/trailer"
)

// newDemoTrailer builds a self-consistent trailer for local
// demonstration: random phash and mroot, the requested difficulty, block
// number 1, time0 set to the current time, and everything else zeroed.
// It is not connected to any real chain state.
func newDemoTrailer(diff byte) *trailer.BlockTrailer {
	bt := &trailer.BlockTrailer{
		BNum:       1,
		Time0:      uint32(time.Now().Unix()),
		Difficulty: uint32(diff),
	}
	if _, err := rand.Read(bt.PHash[:]); err != nil {
		panic("peachminer: reading random phash: " + err.Error())
	}
	if _, err := rand.Read(bt.MRoot[:]); err != nil {
		panic("peachminer: reading random mroot: " + err.Error())
	}
	return bt
}
