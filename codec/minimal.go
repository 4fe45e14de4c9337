package codec

import (
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
)

// Minimal codecs collapse a whole value into one formatted string.
// Unlike the host parsers, which may leave their target untouched on bad
// input, a failed parse here always surfaces as an error wrapping
// ErrParse.

// TimeCodec transports a time point as RFC3339 text with nanoseconds.
type TimeCodec struct{}

func (TimeCodec) Encode(w archive.Writer, v time.Time) error {
	return w.WriteString("iso8601", v.Format(time.RFC3339Nano))
}

func (TimeCodec) Decode(r archive.Reader) (time.Time, error) {
	s, err := r.ReadString("iso8601")
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %v", ErrParse, s, err)
	}
	return t, nil
}

// DurationCodec transports a duration as its canonical text form.
type DurationCodec struct{}

func (DurationCodec) Encode(w archive.Writer, v time.Duration) error {
	return w.WriteString("span", v.String())
}

func (DurationCodec) Decode(r archive.Reader) (time.Duration, error) {
	s, err := r.ReadString("span")
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q: %v", ErrParse, s, err)
	}
	return d, nil
}

type UUIDCodec struct{}

func (UUIDCodec) Encode(w archive.Writer, v uuid.UUID) error {
	return w.WriteString("uuid", v.String())
}

func (UUIDCodec) Decode(r archive.Reader) (uuid.UUID, error) {
	s, err := r.ReadString("uuid")
	if err != nil {
		return uuid.UUID{}, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: uuid %q: %v", ErrParse, s, err)
	}
	return id, nil
}

type ULIDCodec struct{}

func (ULIDCodec) Encode(w archive.Writer, v ulid.ULID) error {
	return w.WriteString("ulid", v.String())
}

func (ULIDCodec) Decode(r archive.Reader) (ulid.ULID, error) {
	s, err := r.ReadString("ulid")
	if err != nil {
		return ulid.ULID{}, err
	}
	id, err := ulid.Parse(s)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("%w: ulid %q: %v", ErrParse, s, err)
	}
	return id, nil
}

// BigIntCodec transports an arbitrary-precision integer as hexadecimal
// text under the "hex" field, so differing bit widths share one wire
// form. A nil value encodes as zero.
type BigIntCodec struct{}

func (BigIntCodec) Encode(w archive.Writer, v *big.Int) error {
	if v == nil {
		v = new(big.Int)
	}
	return w.WriteString("hex", v.Text(16))
}

func (BigIntCodec) Decode(r archive.Reader) (*big.Int, error) {
	s, err := r.ReadString("hex")
	if err != nil {
		return nil, err
	}
	out, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%w: hex integer %q", ErrParse, s)
	}
	return out, nil
}
