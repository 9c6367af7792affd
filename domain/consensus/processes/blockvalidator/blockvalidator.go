// Package blockvalidator combines the difficulty and deadline checks into a
// single header validity predicate.
package blockvalidator

import (
	"github.com/kaspanet/kaspad-poc/domain/consensus/model"
	"github.com/kaspanet/kaspad-poc/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspad-poc/domain/consensus/params"
	"github.com/kaspanet/kaspad-poc/domain/consensus/processes/difficultymanager"
	"github.com/kaspanet/kaspad-poc/domain/consensus/processes/plotengine"
	"github.com/kaspanet/kaspad-poc/domain/consensus/ruleerrors"
)

// BlockValidator checks a candidate header against its parent.
type BlockValidator struct {
	params            *params.Params
	difficultyManager *difficultymanager.DifficultyManager
}

// New instantiates a BlockValidator for the given network parameters and
// ancestor lookup.
func New(params *params.Params, ancestorProvider model.AncestorProvider) *BlockValidator {
	return &BlockValidator{
		params:            params,
		difficultyManager: difficultymanager.New(params, ancestorProvider),
	}
}

// ValidateHeader checks block against prev, returning nil if block is a
// valid PoC solution extending prev, or a ruleerrors.RuleError describing
// the first predicate it fails: timestamp, bits, then (outside god-mode)
// the deadline.
func (v *BlockValidator) ValidateHeader(prev *externalapi.ChainHeader, block *externalapi.BlockHeader) error {
	if block.Timestamp < v.params.BCOBlockUnixtimeMin {
		return ruleerrors.Wrap(ruleerrors.ErrTimestampTooLow)
	}

	expectedBits := v.difficultyManager.CalculateBaseTarget(prev, block)
	if block.Bits != expectedBits {
		return ruleerrors.Wrap(ruleerrors.ErrBitsMismatch)
	}

	height := prev.Height + 1
	if height < v.params.PoCGenesisHeight() {
		// God mode: any well-formed header is accepted once timestamp
		// and bits have already checked out.
		return nil
	}

	deadline := plotengine.CalculateDeadline(v.params, prev, block)
	if uint64(block.Timestamp) <= uint64(prev.Timestamp())+deadline {
		return ruleerrors.Wrap(ruleerrors.ErrDeadlineNotMet)
	}
	return nil
}
