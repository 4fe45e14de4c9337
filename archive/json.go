package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// sizeTagKey is reserved; ordinary field names never collide with it
// because it is not a legal field identifier.
const sizeTagKey = "#"

// JSONWriter saves values as a JSON array of single-key objects, one
// object per field, preserving field names and write order. Nested
// composites flatten into consecutive entries, so names may repeat
// between entries but never within one.
type JSONWriter struct {
	buf bytes.Buffer
	n   int
}

func NewJSONWriter() *JSONWriter {
	w := &JSONWriter{}
	w.buf.WriteByte('[')
	return w
}

func (w *JSONWriter) Direction() Direction { return Saving }

func (w *JSONWriter) writeField(name string, v any) error {
	key, err := json.Marshal(name)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.WriteByte('{')
	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(val)
	w.buf.WriteByte('}')
	w.n++
	return nil
}

func (w *JSONWriter) WriteBool(name string, v bool) error { return w.writeField(name, v) }

func (w *JSONWriter) WriteInt(name string, v int64) error { return w.writeField(name, v) }

func (w *JSONWriter) WriteUint(name string, v uint64) error { return w.writeField(name, v) }

func (w *JSONWriter) WriteFloat32(name string, v float32) error { return w.writeField(name, v) }

func (w *JSONWriter) WriteFloat64(name string, v float64) error { return w.writeField(name, v) }

func (w *JSONWriter) WriteString(name string, v string) error { return w.writeField(name, v) }

func (w *JSONWriter) WriteSizeTag(n uint32) error {
	return w.writeField(sizeTagKey, n)
}

// Bytes returns the finished document.
func (w *JSONWriter) Bytes() []byte {
	out := make([]byte, 0, w.buf.Len()+1)
	out = append(out, w.buf.Bytes()...)
	return append(out, ']')
}

// JSONReader loads documents produced by JSONWriter, verifying that each
// field read matches the name recorded in the stream.
type JSONReader struct {
	items []gjson.Result
	pos   int
}

func NewJSONReader(data []byte) (*JSONReader, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, ErrMalformed
	}
	return &JSONReader{items: doc.Array()}, nil
}

func (r *JSONReader) Direction() Direction { return Loading }

func (r *JSONReader) next(name string) (gjson.Result, error) {
	if r.pos >= len(r.items) {
		return gjson.Result{}, ErrTruncated
	}
	item := r.items[r.pos]
	r.pos++

	var key, val gjson.Result
	n := 0
	item.ForEach(func(k, v gjson.Result) bool {
		key, val = k, v
		n++
		return false
	})
	if n == 0 {
		return gjson.Result{}, ErrMalformed
	}
	if key.String() != name {
		return gjson.Result{}, fmt.Errorf("%w: want %q, have %q", ErrFieldMismatch, name, key.String())
	}
	return val, nil
}

func (r *JSONReader) ReadBool(name string) (bool, error) {
	v, err := r.next(name)
	if err != nil {
		return false, err
	}
	if v.Type != gjson.True && v.Type != gjson.False {
		return false, fmt.Errorf("%w: field %q is not a bool", ErrTypeMismatch, name)
	}
	return v.Bool(), nil
}

func (r *JSONReader) ReadInt(name string) (int64, error) {
	v, err := r.number(name)
	if err != nil {
		return 0, err
	}
	return v.Int(), nil
}

func (r *JSONReader) ReadUint(name string) (uint64, error) {
	v, err := r.number(name)
	if err != nil {
		return 0, err
	}
	if v.Float() < 0 {
		return 0, fmt.Errorf("%w: field %q is not an unsigned number", ErrTypeMismatch, name)
	}
	return v.Uint(), nil
}

func (r *JSONReader) ReadFloat32(name string) (float32, error) {
	v, err := r.number(name)
	if err != nil {
		return 0, err
	}
	return float32(v.Float()), nil
}

func (r *JSONReader) ReadFloat64(name string) (float64, error) {
	v, err := r.number(name)
	if err != nil {
		return 0, err
	}
	return v.Float(), nil
}

func (r *JSONReader) ReadString(name string) (string, error) {
	v, err := r.next(name)
	if err != nil {
		return "", err
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("%w: field %q is not a string", ErrTypeMismatch, name)
	}
	return v.String(), nil
}

func (r *JSONReader) ReadSizeTag() (uint32, error) {
	v, err := r.number(sizeTagKey)
	if err != nil {
		return 0, err
	}
	if v.Float() < 0 {
		return 0, ErrSizeTag
	}
	n := v.Uint()
	if n > math.MaxUint32 {
		return 0, ErrSizeTag
	}
	return uint32(n), nil
}

func (r *JSONReader) number(name string) (gjson.Result, error) {
	v, err := r.next(name)
	if err != nil {
		return gjson.Result{}, err
	}
	if v.Type != gjson.Number {
		return gjson.Result{}, fmt.Errorf("%w: field %q is not a number", ErrTypeMismatch, name)
	}
	return v, nil
}
