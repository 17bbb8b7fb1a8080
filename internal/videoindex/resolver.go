package videoindex

import "github.com/pathu11/fingerspell/internal/sign"

// Lookup is the read side of a video index. Implementations must be safe
// for concurrent reads.
type Lookup interface {
	Resolve(id string) (VideoReference, bool)
}

// Resolver resolves sign sequences against a video index, preserving
// order. A sign without a video yields a not-found resolution, never an
// error.
type Resolver struct {
	index Lookup
}

// NewResolver creates a resolver over the given index.
func NewResolver(index Lookup) *Resolver {
	return &Resolver{index: index}
}

// ResolveAll maps every sign to its resolution outcome, in input order.
func (r *Resolver) ResolveAll(signs []sign.Sign) []sign.Resolution {
	out := make([]sign.Resolution, len(signs))
	for i, s := range signs {
		ref, found := r.index.Resolve(s.ID)
		out[i] = sign.Resolution{Sign: s, Found: found}
		if found {
			out[i].Video = ref.Video
		}
	}
	return out
}
