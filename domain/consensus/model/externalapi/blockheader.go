package externalapi

// BlockHeader holds the fields of a candidate or parent block header that
// the Proof-of-Capacity core needs. Block serialization, the remaining
// header fields (parent hashes, UTXO commitment, ...), and their wire
// encoding are the responsibility of the host and are not modeled here.
type BlockHeader struct {
	Version uint32

	// Timestamp is seconds since the Unix epoch.
	Timestamp uint32

	// Bits is the raw 64-bit base target, not a compact encoding.
	Bits uint64

	Nonce uint64

	// PlotSeed identifies the plot the header was mined against.
	PlotSeed uint64

	PrevBlockHash Hash256

	// MerkleRoot is stored reversed relative to display order; callers of
	// GenerationSignature rely on this being the as-stored value.
	MerkleRoot Hash256
}
