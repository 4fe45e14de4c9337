package codec

import "github.com/cpp-codemonkey/Cereal-stuff/archive"

// Primitive codecs let scalars participate in collections and maps.
// They carry a single anonymous "value" field.

const valueField = "value"

type BoolCodec struct{}

func (BoolCodec) Encode(w archive.Writer, v bool) error { return w.WriteBool(valueField, v) }
func (BoolCodec) Decode(r archive.Reader) (bool, error) { return r.ReadBool(valueField) }

type IntCodec struct{}

func (IntCodec) Encode(w archive.Writer, v int64) error { return w.WriteInt(valueField, v) }
func (IntCodec) Decode(r archive.Reader) (int64, error) { return r.ReadInt(valueField) }

type UintCodec struct{}

func (UintCodec) Encode(w archive.Writer, v uint64) error { return w.WriteUint(valueField, v) }
func (UintCodec) Decode(r archive.Reader) (uint64, error) { return r.ReadUint(valueField) }

type Float64Codec struct{}

func (Float64Codec) Encode(w archive.Writer, v float64) error { return w.WriteFloat64(valueField, v) }
func (Float64Codec) Decode(r archive.Reader) (float64, error) { return r.ReadFloat64(valueField) }

type StringCodec struct{}

func (StringCodec) Encode(w archive.Writer, v string) error { return w.WriteString(valueField, v) }
func (StringCodec) Decode(r archive.Reader) (string, error) { return r.ReadString(valueField) }
