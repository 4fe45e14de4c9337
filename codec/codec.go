// Package codec gives every transported value type a bidirectional
// encode/decode contract over the archive boundary. Each codec declares
// which primitive fields travel and in which order; that order is the
// wire contract and must match between Encode and Decode.
package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
)

// Codec (de)serializes values of a single type against an archive.
type Codec[T any] interface {
	// Encode writes v's fields to the archive in declaration order.
	Encode(w archive.Writer, v T) error
	// Decode reads the same fields back and rebuilds the value. On
	// error the returned value is undefined and must be discarded.
	Decode(r archive.Reader) (T, error)
}

var (
	// ErrSizeOverflow is returned when a collection holds more elements
	// than a size tag can represent.
	ErrSizeOverflow = errors.New("collection exceeds size tag range")
	// ErrParse is returned when the single-string form of a minimal type
	// cannot be parsed back.
	ErrParse = errors.New("could not parse minimal value")
	// ErrBadShape is returned when a value does not have the dimensions
	// its codec requires.
	ErrBadShape = errors.New("value has the wrong shape")
)

func sizeTag(n int) (uint32, error) {
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d elements", ErrSizeOverflow, n)
	}
	return uint32(n), nil
}
