package plotengine

import (
	"testing"

	"github.com/kaspanet/kaspad-poc/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspad-poc/domain/consensus/params"
)

func testParams() *params.Params {
	p := params.TestNetParams
	return &p
}

func chainHeaderAt(height uint64, bits uint64) *externalapi.ChainHeader {
	return &externalapi.ChainHeader{
		Header: &externalapi.BlockHeader{
			Bits:       bits,
			PlotSeed:   7,
			MerkleRoot: externalapi.Hash256{1, 2, 3},
		},
		Height: height,
	}
}

func TestScoopNumIsBounded(t *testing.T) {
	genSig := externalapi.Hash256{0xaa, 0xbb, 0xcc}
	for _, height := range []uint64{0, 1, 12345, 1<<63 - 1} {
		scoop := ScoopNum(genSig, height)
		if scoop >= scoopsPerPlot {
			t.Fatalf("ScoopNum(%d) = %d, want < %d", height, scoop, scoopsPerPlot)
		}
	}
}

func TestScoopNumVariesWithHeight(t *testing.T) {
	genSig := externalapi.Hash256{0xaa, 0xbb, 0xcc}
	a := ScoopNum(genSig, 100)
	b := ScoopNum(genSig, 101)
	if a == b {
		t.Fatalf("ScoopNum(100) == ScoopNum(101) == %d, expected them to differ", a)
	}
}

func TestCalculateDeadlineIsZeroDuringBootstrap(t *testing.T) {
	p := testParams()
	prev := chainHeaderAt(p.PoCGenesisHeight()-1, 1000)
	block := &externalapi.BlockHeader{PlotSeed: 1, Nonce: 1}
	if got := CalculateDeadline(p, prev, block); got != 0 {
		t.Fatalf("CalculateDeadline during bootstrap = %d, want 0", got)
	}
}

func TestCalculateDeadlineIsDeterministic(t *testing.T) {
	p := testParams()
	prev := chainHeaderAt(p.PoCGenesisHeight()+10, 1000000)
	block := &externalapi.BlockHeader{PlotSeed: 42, Nonce: 99}
	a := CalculateDeadline(p, prev, block)
	b := CalculateDeadline(p, prev, block)
	if a != b {
		t.Fatalf("CalculateDeadline is not deterministic: %d != %d", a, b)
	}
}

func TestCalculateDeadlineVariesWithNonce(t *testing.T) {
	p := testParams()
	prev := chainHeaderAt(p.PoCGenesisHeight()+10, 1000000)
	block0 := &externalapi.BlockHeader{PlotSeed: 42, Nonce: 0}
	block1 := &externalapi.BlockHeader{PlotSeed: 42, Nonce: 1}
	a := CalculateDeadline(p, prev, block0)
	b := CalculateDeadline(p, prev, block1)
	if a == b {
		t.Fatalf("CalculateDeadline(nonce=0) == CalculateDeadline(nonce=1) == %d, expected them to differ", a)
	}
}
