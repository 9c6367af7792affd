// Package plotengine reconstructs the deterministic plot bytes a Proof-of-
// Capacity miner would have stored on disk for (plotseed, nonce), and reads
// off the deadline implied by a candidate block. Nothing here is cached or
// persisted: every call recomputes the plot from scratch, the same way a
// verifier with no local plot files must.
package plotengine

import (
	"encoding/binary"

	"github.com/kaspanet/kaspad-poc/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspad-poc/domain/consensus/params"
	"github.com/kaspanet/kaspad-poc/domain/consensus/processes/hashes"
)

const (
	hashSize       = 32
	hashesPerScoop = 2
	scoopSize      = hashesPerScoop * hashSize
	scoopsPerPlot  = 4096
	plotSize       = scoopsPerPlot * scoopSize
	hashCap        = 4096

	// suffixSize is the trailing plotseed||nonce appended after the plot
	// proper; the plot-fill loop folds it into the last scoops just like
	// every other byte of the buffer.
	suffixSize = 16
	bufferSize = plotSize + suffixSize
)

// ScoopNum selects which 64-byte scoop of the plot a block at height height
// must be verified against, given the generation signature derived from its
// parent. The result is always in [0, scoopsPerPlot).
func ScoopNum(genSig externalapi.Hash256, height uint64) uint64 {
	mixed := hashes.Mix(genSig, height)
	return littleEndianUint64(mixed[:8]) % scoopsPerPlot
}

// CalculateDeadline reconstructs the plot for (block.PlotSeed, block.Nonce),
// derives the generation signature and scoop from prev, and returns the
// number of seconds that must elapse after prev's timestamp before block is
// a valid solution. During the bootstrap regime (prev.Height+1 at or before
// the PoC genesis height) the deadline is defined as 0 without touching the
// plot at all, mirroring CalculateDeadline's own god-mode short-circuit.
func CalculateDeadline(p *params.Params, prev *externalapi.ChainHeader, block *externalapi.BlockHeader) uint64 {
	if prev.Height+1 <= p.PoCGenesisHeight() {
		return 0
	}

	genSig := hashes.GenerationSignature(prev.Header)
	scoop := ScoopNum(genSig, prev.Height+1)

	buffer := make([]byte, bufferSize)
	binary.BigEndian.PutUint64(buffer[plotSize:plotSize+8], block.PlotSeed)
	binary.BigEndian.PutUint64(buffer[plotSize+8:plotSize+16], block.Nonce)

	for i := plotSize; i > 0; i -= hashSize {
		length := bufferSize - i
		if length > hashCap {
			length = hashCap
		}
		t := hashes.Shabal256(buffer[i : i+length])
		copy(buffer[i-hashSize:i], t[:])
	}

	base := hashes.Shabal256(buffer)

	plot := make([]byte, plotSize)
	for i := 0; i < plotSize; i++ {
		plot[i] = buffer[i] ^ base[i%hashSize]
	}

	writer := hashes.NewHashWriter()
	writer.Write(genSig[:])
	writer.Write(plot[scoop*scoopSize : scoop*scoopSize+scoopSize])
	final := writer.Finalize()

	hit := littleEndianUint64(final[:8])
	return hit / prev.Bits()
}

func littleEndianUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
