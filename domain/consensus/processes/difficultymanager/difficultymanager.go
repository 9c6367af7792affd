// Package difficultymanager computes the base target (difficulty) a block
// at a given height must carry, by walking backwards through ancestor
// headers supplied by a model.AncestorProvider.
package difficultymanager

import (
	"github.com/kaspanet/kaspad-poc/domain/consensus/model"
	"github.com/kaspanet/kaspad-poc/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspad-poc/domain/consensus/params"
)

const (
	// shortWindowBlocks is the number of ancestors (including prev)
	// averaged over in the short-window regime.
	shortWindowBlocks = 4
	// shortWindowTargetSpanSeconds is 5 minutes * 60s * 4 blocks.
	shortWindowTargetSpanSeconds = 300 * 4
	// shortWindowEndHeight is the height at which the long-window regime
	// takes over, relative to the PoC genesis height.
	shortWindowEndHeight = 2700

	// longWindowMaxAncestors is the number of ancestors walked past prev
	// in the long-window regime (heights h-2 through h-25).
	longWindowMaxAncestors = 24
	// longWindowTargetSpanSeconds is 5 minutes * 60s * 24 blocks.
	longWindowTargetSpanSeconds = 5 * 60 * 24
)

// DifficultyManager computes the next required base target.
type DifficultyManager struct {
	params           *params.Params
	ancestorProvider model.AncestorProvider
}

// New instantiates a DifficultyManager for the given network parameters and
// ancestor lookup.
func New(params *params.Params, ancestorProvider model.AncestorProvider) *DifficultyManager {
	return &DifficultyManager{
		params:           params,
		ancestorProvider: ancestorProvider,
	}
}

// CalculateBaseTarget returns the base target a candidate block extending
// prev must carry, combining the bootstrap, short-window, and long-window
// retarget regimes.
func (dm *DifficultyManager) CalculateBaseTarget(prev *externalapi.ChainHeader, block *externalapi.BlockHeader) uint64 {
	height := prev.Height + 1
	genesisHeight := dm.params.PoCGenesisHeight()

	if height <= genesisHeight || height < genesisHeight+shortWindowBlocks {
		return dm.params.InitialBaseTarget
	}
	if height < genesisHeight+shortWindowEndHeight {
		return dm.shortWindowBaseTarget(prev, block)
	}
	return dm.longWindowBaseTarget(prev, block)
}

// shortWindowBaseTarget averages prev's base target with its three parents
// and scales it by how fast those four blocks were actually found.
//
// If the ancestor walk runs out early, the accumulator is still divided by
// the full window size of 4, which under-averages in that case; this
// matches the original algorithm's behavior and is preserved rather than
// corrected.
func (dm *DifficultyManager) shortWindowBaseTarget(prev *externalapi.ChainHeader, block *externalapi.BlockHeader) uint64 {
	avgBaseTarget := prev.Bits()
	last := prev
	for i := 0; i < shortWindowBlocks-1; i++ {
		ancestor, ok := dm.ancestorProvider.PrevBlockHeader(last.PrevBlockHash())
		if !ok {
			break
		}
		avgBaseTarget += ancestor.Bits()
		last = ancestor
	}
	avgBaseTarget /= shortWindowBlocks

	curBaseTarget := avgBaseTarget
	diffTime := int64(block.Timestamp) - int64(last.Timestamp())

	newBaseTarget := uint64(int64(curBaseTarget) * diffTime / shortWindowTargetSpanSeconds)
	if newBaseTarget > dm.params.MaxBaseTarget {
		newBaseTarget = dm.params.MaxBaseTarget
	}
	if low := curBaseTarget * 9 / 10; newBaseTarget < low {
		newBaseTarget = low
	}
	if newBaseTarget == 0 {
		newBaseTarget = 1
	}
	if high := curBaseTarget * 11 / 10; newBaseTarget > high {
		newBaseTarget = high
	}
	return newBaseTarget
}

// longWindowBaseTarget maintains a running incremental average over up to
// 24 ancestors beyond prev, then scales it by how fast that window was
// found relative to its 2-hour target span.
func (dm *DifficultyManager) longWindowBaseTarget(prev *externalapi.ChainHeader, block *externalapi.BlockHeader) uint64 {
	avgBaseTarget := prev.Bits()
	last := prev
	blockCounter := uint64(1)
	for i := 0; i < longWindowMaxAncestors; i++ {
		ancestor, ok := dm.ancestorProvider.PrevBlockHeader(last.PrevBlockHash())
		if !ok {
			break
		}
		avgBaseTarget = (avgBaseTarget*blockCounter + ancestor.Bits()) / (blockCounter + 1)
		last = ancestor
		blockCounter++
	}

	diffTime := int64(block.Timestamp) - int64(last.Timestamp())
	if diffTime < longWindowTargetSpanSeconds/2 {
		diffTime = longWindowTargetSpanSeconds / 2
	}
	if diffTime > longWindowTargetSpanSeconds*2 {
		diffTime = longWindowTargetSpanSeconds * 2
	}

	curBaseTarget := prev.Bits()
	newBaseTarget := uint64(int64(avgBaseTarget) * diffTime / longWindowTargetSpanSeconds)
	if newBaseTarget > dm.params.MaxBaseTarget {
		newBaseTarget = dm.params.MaxBaseTarget
	}
	if newBaseTarget == 0 {
		newBaseTarget = 1
	}
	if low := curBaseTarget * 8 / 10; newBaseTarget < low {
		newBaseTarget = low
	}
	if high := curBaseTarget * 12 / 10; newBaseTarget > high {
		newBaseTarget = high
	}
	return newBaseTarget
}
