package params

// Params defines the host-configured constants a Proof-of-Capacity network
// is parameterized by. These are supplied by the coin-parameter registry;
// the consensus core only consumes the resulting values, never computes
// them itself.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// BCOForkBlockHeight is the height at which PoC activates.
	BCOForkBlockHeight uint64

	// BCOInitBlockCount is the length of the god-mode bootstrap window
	// that follows the fork.
	BCOInitBlockCount uint64

	// BCOBlockUnixtimeMin is the minimum acceptable block timestamp, in
	// Unix seconds.
	BCOBlockUnixtimeMin uint32

	// InitialBaseTarget is the starting difficulty used throughout the
	// bootstrap regime.
	InitialBaseTarget uint64

	// MaxBaseTarget is the hard upper bound every retargeted base target
	// is clamped to.
	MaxBaseTarget uint64
}

// PoCGenesisHeight returns the height at which the short-window and
// long-window retarget regimes begin counting from, i.e.
// BCOForkBlockHeight + BCOInitBlockCount.
func (params *Params) PoCGenesisHeight() uint64 {
	return params.BCOForkBlockHeight + params.BCOInitBlockCount
}

// defaultInitialBaseTarget and defaultMaxBaseTarget are fixed across every
// network: both equal the Burst genesis base target, 18_325_193_796.
const (
	defaultInitialBaseTarget uint64 = 18325193796
	defaultMaxBaseTarget     uint64 = 18325193796
)

// MainNetParams are the consensus parameters for the main network.
var MainNetParams = Params{
	Name:                "mainnet",
	BCOForkBlockHeight:  295000,
	BCOInitBlockCount:   4000,
	BCOBlockUnixtimeMin: 1459468800, // 2016-04-01T00:00:00Z
	InitialBaseTarget:   defaultInitialBaseTarget,
	MaxBaseTarget:       defaultMaxBaseTarget,
}

// TestNetParams are the consensus parameters for the test network. The PoC
// fork and bootstrap window are both much shorter so that test chains reach
// the long-window regime quickly.
var TestNetParams = Params{
	Name:                "testnet",
	BCOForkBlockHeight:  100,
	BCOInitBlockCount:   10,
	BCOBlockUnixtimeMin: 1230768000, // 2009-01-01T00:00:00Z
	InitialBaseTarget:   defaultInitialBaseTarget,
	MaxBaseTarget:       defaultMaxBaseTarget,
}
