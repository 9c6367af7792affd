package model

import "github.com/kaspanet/kaspad-poc/domain/consensus/model/externalapi"

// AncestorProvider is a total lookup from a header's hash to the
// previously-validated ChainHeader for that hash. It must be safe for
// concurrent callers and must not mutate the chain it indexes. A lookup
// that finds nothing returns ok == false; the caller treats that as "stop
// walking", not as an error.
type AncestorProvider interface {
	PrevBlockHeader(hash externalapi.Hash256) (header *externalapi.ChainHeader, ok bool)
}
