// Package hashes composes the external Shabal-256 primitive into the two
// derived operations the Proof-of-Capacity core needs: deriving a block's
// generation signature from its parent, and mixing a generation signature
// with a 64-bit value. The Shabal-256 permutation itself is supplied by
// github.com/moonfruit/go-shabal; this package only fixes the byte order
// fields are written in, which is where a port of this algorithm actually
// lives or dies.
package hashes

import (
	"encoding/binary"
	"hash"

	"github.com/kaspanet/kaspad-poc/domain/consensus/model/externalapi"
	"github.com/moonfruit/go-shabal"
)

// HashWriter incrementally feeds data into a Shabal-256 hasher without
// concatenating everything into one buffer first, mirroring the
// daghash.HashWriter pattern: HashWriter.Write(p).Finalize() ==
// Shabal256(p).
type HashWriter struct {
	inner hash.Hash
}

// NewHashWriter returns a HashWriter ready to be written to.
func NewHashWriter() *HashWriter {
	return &HashWriter{inner: shabal.NewShabal256()}
}

// Write feeds p into the underlying hasher. It always returns
// (len(p), nil); Shabal-256 cannot fail to absorb bytes.
func (w *HashWriter) Write(p []byte) (n int, err error) {
	return w.inner.Write(p)
}

// WriteUint64BigEndian writes the big-endian 8-byte encoding of v.
func (w *HashWriter) WriteUint64BigEndian(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	w.inner.Write(buf[:])
}

// WriteUint64LittleEndian writes the little-endian 8-byte encoding of v.
//
// Every integer field this package feeds to Shabal-256 uses one of these
// two explicit encodings, never the host's native byte order: a naive port
// that relies on platform endianness (as the original htobe64-based source
// does) silently breaks on a big-endian host.
func (w *HashWriter) WriteUint64LittleEndian(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.inner.Write(buf[:])
}

// Finalize returns the 32-byte Shabal-256 digest of everything written so
// far.
func (w *HashWriter) Finalize() externalapi.Hash256 {
	var digest externalapi.Hash256
	copy(digest[:], w.inner.Sum(nil))
	return digest
}

// Shabal256 hashes p in a single call.
func Shabal256(p []byte) externalapi.Hash256 {
	w := NewHashWriter()
	w.Write(p)
	return w.Finalize()
}
