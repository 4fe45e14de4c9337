package codec

import (
	"image/color"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
	"github.com/cpp-codemonkey/Cereal-stuff/geom"
)

// ColorCodec transports an 8-bit RGBA color channel by channel.
type ColorCodec struct{}

func (ColorCodec) Encode(w archive.Writer, v color.RGBA) error {
	if err := w.WriteUint("R", uint64(v.R)); err != nil {
		return err
	}
	if err := w.WriteUint("G", uint64(v.G)); err != nil {
		return err
	}
	if err := w.WriteUint("B", uint64(v.B)); err != nil {
		return err
	}
	return w.WriteUint("A", uint64(v.A))
}

func (ColorCodec) Decode(r archive.Reader) (color.RGBA, error) {
	var v color.RGBA
	channels := []struct {
		name string
		dst  *uint8
	}{
		{"R", &v.R}, {"G", &v.G}, {"B", &v.B}, {"A", &v.A},
	}
	for _, ch := range channels {
		u, err := r.ReadUint(ch.name)
		if err != nil {
			return v, err
		}
		*ch.dst = uint8(u)
	}
	return v, nil
}

type LinearColorCodec struct{}

func (LinearColorCodec) Encode(w archive.Writer, v geom.LinearColor) error {
	if err := w.WriteFloat32("R", v.R); err != nil {
		return err
	}
	if err := w.WriteFloat32("G", v.G); err != nil {
		return err
	}
	if err := w.WriteFloat32("B", v.B); err != nil {
		return err
	}
	return w.WriteFloat32("A", v.A)
}

func (LinearColorCodec) Decode(r archive.Reader) (geom.LinearColor, error) {
	var v geom.LinearColor
	var err error
	if v.R, err = r.ReadFloat32("R"); err != nil {
		return v, err
	}
	if v.G, err = r.ReadFloat32("G"); err != nil {
		return v, err
	}
	if v.B, err = r.ReadFloat32("B"); err != nil {
		return v, err
	}
	v.A, err = r.ReadFloat32("A")
	return v, err
}
