package archive

import "errors"

var (
	// ErrFieldMismatch is returned when a name-preserving archive reads a
	// field whose recorded name differs from the requested one.
	ErrFieldMismatch = errors.New("field name does not match the stream")
	// ErrTypeMismatch is returned when the next stream value is not of
	// the requested scalar kind.
	ErrTypeMismatch = errors.New("stream value has the wrong type")
	// ErrTruncated is returned when the stream ends before the requested
	// value (or the integrity trailer) could be read.
	ErrTruncated = errors.New("stream is truncated")
	// ErrChecksum is returned when the stream's integrity trailer does
	// not match its payload.
	ErrChecksum = errors.New("stream checksum mismatch")
	// ErrSizeTag is returned when a size tag cannot be represented.
	ErrSizeTag = errors.New("size tag out of range")
	// ErrMalformed is returned when a document does not have the shape
	// its archive expects.
	ErrMalformed = errors.New("malformed document")
)
