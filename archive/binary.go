package archive

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

const trailerSize = 8

// BinaryWriter saves values as a flat sequence of msgpack scalars.
// Field names are dropped; size tags become msgpack array headers, which
// keeps them structurally distinct from ordinary integers. Bytes appends
// an xxhash64 trailer so the reader can reject truncated or corrupted
// documents before decoding anything.
type BinaryWriter struct {
	buf bytes.Buffer
	enc *msgpack.Encoder
}

func NewBinaryWriter() *BinaryWriter {
	w := &BinaryWriter{}
	w.enc = msgpack.NewEncoder(&w.buf)
	return w
}

func (w *BinaryWriter) Direction() Direction { return Saving }

func (w *BinaryWriter) WriteBool(_ string, v bool) error { return w.enc.EncodeBool(v) }

func (w *BinaryWriter) WriteInt(_ string, v int64) error { return w.enc.EncodeInt64(v) }

func (w *BinaryWriter) WriteUint(_ string, v uint64) error { return w.enc.EncodeUint64(v) }

func (w *BinaryWriter) WriteFloat32(_ string, v float32) error { return w.enc.EncodeFloat32(v) }

func (w *BinaryWriter) WriteFloat64(_ string, v float64) error { return w.enc.EncodeFloat64(v) }

func (w *BinaryWriter) WriteString(_ string, v string) error { return w.enc.EncodeString(v) }

func (w *BinaryWriter) WriteSizeTag(n uint32) error {
	return w.enc.EncodeArrayLen(int(n))
}

// Bytes returns the finished document: payload plus integrity trailer.
func (w *BinaryWriter) Bytes() []byte {
	payload := w.buf.Bytes()
	out := make([]byte, len(payload)+trailerSize)
	copy(out, payload)
	binary.BigEndian.PutUint64(out[len(payload):], xxhash.Sum64(payload))
	return out
}

// BinaryReader loads documents produced by BinaryWriter. Construction
// verifies the integrity trailer, so a reader that exists at all is
// reading an intact payload.
type BinaryReader struct {
	dec *msgpack.Decoder
}

func NewBinaryReader(data []byte) (*BinaryReader, error) {
	if len(data) < trailerSize {
		return nil, ErrTruncated
	}
	payload := data[:len(data)-trailerSize]
	want := binary.BigEndian.Uint64(data[len(data)-trailerSize:])
	if xxhash.Sum64(payload) != want {
		return nil, ErrChecksum
	}
	return &BinaryReader{dec: msgpack.NewDecoder(bytes.NewReader(payload))}, nil
}

func (r *BinaryReader) Direction() Direction { return Loading }

func (r *BinaryReader) ReadBool(_ string) (bool, error) {
	v, err := r.dec.DecodeBool()
	return v, mapEOF(err)
}

func (r *BinaryReader) ReadInt(_ string) (int64, error) {
	v, err := r.dec.DecodeInt64()
	return v, mapEOF(err)
}

func (r *BinaryReader) ReadUint(_ string) (uint64, error) {
	v, err := r.dec.DecodeUint64()
	return v, mapEOF(err)
}

func (r *BinaryReader) ReadFloat32(_ string) (float32, error) {
	v, err := r.dec.DecodeFloat32()
	return v, mapEOF(err)
}

func (r *BinaryReader) ReadFloat64(_ string) (float64, error) {
	v, err := r.dec.DecodeFloat64()
	return v, mapEOF(err)
}

func (r *BinaryReader) ReadString(_ string) (string, error) {
	v, err := r.dec.DecodeString()
	return v, mapEOF(err)
}

func (r *BinaryReader) ReadSizeTag() (uint32, error) {
	n, err := r.dec.DecodeArrayLen()
	if err != nil {
		return 0, mapEOF(err)
	}
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, ErrSizeTag
	}
	return uint32(n), nil
}

func mapEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
