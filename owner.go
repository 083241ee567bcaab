package pmap

import "github.com/google/uuid"

// owner is the token that authorizes in-place node edits during a batch.
// Each batch mints a fresh token; a token is never shared across batches,
// so nodes tagged by a finished batch act as immutable from then on.
type owner struct {
	id uuid.UUID
}

func newOwner() *owner {
	return &owner{id: uuid.New()}
}

// is reports whether o and other are the same token. A nil token never
// matches anything; a persistent operation presents nil and therefore
// always copies.
func (o *owner) is(other *owner) bool {
	return o != nil && other != nil && o.id == other.id
}
