package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// Hash256Size is the number of bytes in a Hash256.
const Hash256Size = 32

// Hash256 is a fixed 32-byte opaque digest. Byte order is significant only
// where a particular hash invocation specifies it.
type Hash256 [Hash256Size]byte

// NewHash256FromSlice builds a Hash256 from a byte slice of exactly
// Hash256Size bytes.
func NewHash256FromSlice(data []byte) (Hash256, error) {
	var hash Hash256
	if len(data) != Hash256Size {
		return hash, errors.Errorf("invalid hash size. want: %d, got: %d", Hash256Size, len(data))
	}
	copy(hash[:], data)
	return hash, nil
}

// NewHash256FromString parses a big-endian hex string into a Hash256.
func NewHash256FromString(hashString string) (Hash256, error) {
	expectedLength := Hash256Size * 2
	if len(hashString) != expectedLength {
		return Hash256{}, errors.Errorf("hash string length is %d, while it should be %d",
			len(hashString), expectedLength)
	}

	data, err := hex.DecodeString(hashString)
	if err != nil {
		return Hash256{}, errors.WithStack(err)
	}
	return NewHash256FromSlice(data)
}

// String returns the big-endian hexadecimal representation of the hash.
func (hash Hash256) String() string {
	return hex.EncodeToString(hash[:])
}

// Reversed returns a copy of hash with its bytes in reverse order. Used for
// the merkle_root field, which is fed to Shabal reversed relative to its
// stored order.
func (hash Hash256) Reversed() Hash256 {
	var reversed Hash256
	for i, b := range hash {
		reversed[Hash256Size-1-i] = b
	}
	return reversed
}

// Equal reports whether hash and other hold the same bytes.
func (hash Hash256) Equal(other Hash256) bool {
	return hash == other
}
