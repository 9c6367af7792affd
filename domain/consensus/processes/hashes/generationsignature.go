package hashes

import "github.com/kaspanet/kaspad-poc/domain/consensus/model/externalapi"

// GenerationSignature derives the 32-byte generation signature of a block
// header from its parent: Shabal256(reverse(merkle_root) || le64(plotseed)).
//
// The merkle-root reversal is an external wire convention (the field is
// stored "reversed" relative to display order) that must be preserved
// bit-exactly; plotseed is written little-endian.
func GenerationSignature(prev *externalapi.BlockHeader) externalapi.Hash256 {
	writer := NewHashWriter()
	reversed := prev.MerkleRoot.Reversed()
	writer.Write(reversed[:])
	writer.WriteUint64LittleEndian(prev.PlotSeed)
	return writer.Finalize()
}

// Mix derives Shabal256(genSig || be64(mix)). Its sole caller is scoop
// selection, which mixes a generation signature with a block height; the
// source this was ported from reaches this same byte layout by first
// converting the height with htobe64 and then writing the result in the
// host's native order, which only reproduces big-endian bytes on a
// little-endian host. Writing the big-endian encoding directly sidesteps
// that platform assumption entirely.
func Mix(genSig externalapi.Hash256, mix uint64) externalapi.Hash256 {
	writer := NewHashWriter()
	writer.Write(genSig[:])
	writer.WriteUint64BigEndian(mix)
	return writer.Finalize()
}
