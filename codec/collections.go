package codec

import (
	"cmp"
	"slices"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
)

// SliceCodec transports an ordered sequence: a size tag, then each
// element through the element codec. Order is significant and preserved
// exactly.
type SliceCodec[T any] struct {
	Elem Codec[T]
}

func (c SliceCodec[T]) Encode(w archive.Writer, v []T) error {
	n, err := sizeTag(len(v))
	if err != nil {
		return err
	}
	if err := w.WriteSizeTag(n); err != nil {
		return err
	}
	for _, e := range v {
		if err := c.Elem.Encode(w, e); err != nil {
			return err
		}
	}
	return nil
}

func (c SliceCodec[T]) Decode(r archive.Reader) ([]T, error) {
	n, err := r.ReadSizeTag()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		e, err := c.Elem.Decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// SetCodec transports a set with the same shape as a sequence. Encode
// order is whatever the underlying map yields; it is self-consistent
// within one pass but not across instances. Duplicate elements in the
// stream collapse on insert.
type SetCodec[T comparable] struct {
	Elem Codec[T]
}

func (c SetCodec[T]) Encode(w archive.Writer, v map[T]struct{}) error {
	n, err := sizeTag(len(v))
	if err != nil {
		return err
	}
	if err := w.WriteSizeTag(n); err != nil {
		return err
	}
	for e := range v {
		if err := c.Elem.Encode(w, e); err != nil {
			return err
		}
	}
	return nil
}

func (c SetCodec[T]) Decode(r archive.Reader) (map[T]struct{}, error) {
	n, err := r.ReadSizeTag()
	if err != nil {
		return nil, err
	}
	out := make(map[T]struct{}, n)
	for i := uint32(0); i < n; i++ {
		e, err := c.Elem.Decode(r)
		if err != nil {
			return nil, err
		}
		out[e] = struct{}{}
	}
	return out, nil
}

// MapCodec transports a key/value map: a size tag, then one map item
// (key, then value) per entry. Keys are written in ascending order so
// the same logical map always produces the same bytes. If the stream
// carries a duplicate key, the last one read wins.
type MapCodec[K cmp.Ordered, V any] struct {
	Key   Codec[K]
	Value Codec[V]
}

func (c MapCodec[K, V]) Encode(w archive.Writer, v map[K]V) error {
	n, err := sizeTag(len(v))
	if err != nil {
		return err
	}
	if err := w.WriteSizeTag(n); err != nil {
		return err
	}
	keys := make([]K, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := c.Key.Encode(w, k); err != nil {
			return err
		}
		if err := c.Value.Encode(w, v[k]); err != nil {
			return err
		}
	}
	return nil
}

func (c MapCodec[K, V]) Decode(r archive.Reader) (map[K]V, error) {
	n, err := r.ReadSizeTag()
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, n)
	for i := uint32(0); i < n; i++ {
		k, err := c.Key.Decode(r)
		if err != nil {
			return nil, err
		}
		val, err := c.Value.Decode(r)
		if err != nil {
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}
