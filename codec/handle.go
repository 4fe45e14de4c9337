package codec

import (
	"math"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
	"github.com/cpp-codemonkey/Cereal-stuff/registry"
)

// HandleCodec transports an opaque handle as its surrogate identifier.
// An unregistered handle saves as the sentinel and an unknown identifier
// loads as the zero handle; neither is an error, callers that need a
// registered handle check for those values themselves.
type HandleCodec[H comparable] struct {
	Registry *registry.Registry[H]
}

func (c HandleCodec[H]) Encode(w archive.Writer, v H) error {
	return w.WriteInt("class", int64(c.Registry.IdentifierFor(v)))
}

func (c HandleCodec[H]) Decode(r archive.Reader) (H, error) {
	id, err := r.ReadInt("class")
	if err != nil {
		var zero H
		return zero, err
	}
	if id < math.MinInt32 || id > math.MaxInt32 {
		// no encoder writes identifiers outside the surrogate range;
		// a wider value must not alias onto a registered entry
		var zero H
		return zero, nil
	}
	return c.Registry.HandleFor(int32(id)), nil
}
