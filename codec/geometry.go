package codec

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
	"github.com/cpp-codemonkey/Cereal-stuff/geom"
)

// VectorCodec transports an r3.Vec as X, Y, Z.
type VectorCodec struct{}

func (VectorCodec) Encode(w archive.Writer, v r3.Vec) error {
	if err := w.WriteFloat64("X", v.X); err != nil {
		return err
	}
	if err := w.WriteFloat64("Y", v.Y); err != nil {
		return err
	}
	return w.WriteFloat64("Z", v.Z)
}

func (VectorCodec) Decode(r archive.Reader) (r3.Vec, error) {
	var v r3.Vec
	var err error
	if v.X, err = r.ReadFloat64("X"); err != nil {
		return v, err
	}
	if v.Y, err = r.ReadFloat64("Y"); err != nil {
		return v, err
	}
	v.Z, err = r.ReadFloat64("Z")
	return v, err
}

// Vector2DCodec transports an r2.Vec as X, Y.
type Vector2DCodec struct{}

func (Vector2DCodec) Encode(w archive.Writer, v r2.Vec) error {
	if err := w.WriteFloat64("X", v.X); err != nil {
		return err
	}
	return w.WriteFloat64("Y", v.Y)
}

func (Vector2DCodec) Decode(r archive.Reader) (r2.Vec, error) {
	var v r2.Vec
	var err error
	if v.X, err = r.ReadFloat64("X"); err != nil {
		return v, err
	}
	v.Y, err = r.ReadFloat64("Y")
	return v, err
}

type RotatorCodec struct{}

func (RotatorCodec) Encode(w archive.Writer, v geom.Rotator) error {
	if err := w.WriteFloat64("Pitch", v.Pitch); err != nil {
		return err
	}
	if err := w.WriteFloat64("Roll", v.Roll); err != nil {
		return err
	}
	return w.WriteFloat64("Yaw", v.Yaw)
}

func (RotatorCodec) Decode(r archive.Reader) (geom.Rotator, error) {
	var v geom.Rotator
	var err error
	if v.Pitch, err = r.ReadFloat64("Pitch"); err != nil {
		return v, err
	}
	if v.Roll, err = r.ReadFloat64("Roll"); err != nil {
		return v, err
	}
	v.Yaw, err = r.ReadFloat64("Yaw")
	return v, err
}

// QuatCodec transports a quaternion as W, X, Y, Z in that order.
type QuatCodec struct{}

func (QuatCodec) Encode(w archive.Writer, v quat.Number) error {
	if err := w.WriteFloat64("W", v.Real); err != nil {
		return err
	}
	if err := w.WriteFloat64("X", v.Imag); err != nil {
		return err
	}
	if err := w.WriteFloat64("Y", v.Jmag); err != nil {
		return err
	}
	return w.WriteFloat64("Z", v.Kmag)
}

func (QuatCodec) Decode(r archive.Reader) (quat.Number, error) {
	var v quat.Number
	var err error
	if v.Real, err = r.ReadFloat64("W"); err != nil {
		return v, err
	}
	if v.Imag, err = r.ReadFloat64("X"); err != nil {
		return v, err
	}
	if v.Jmag, err = r.ReadFloat64("Y"); err != nil {
		return v, err
	}
	v.Kmag, err = r.ReadFloat64("Z")
	return v, err
}

// BoxCodec writes the validity flag as a real field ahead of the bounds.
type BoxCodec struct{}

func (BoxCodec) Encode(w archive.Writer, v geom.Box) error {
	if err := w.WriteBool("IsValid", v.IsValid); err != nil {
		return err
	}
	if err := (VectorCodec{}).Encode(w, v.Min); err != nil {
		return err
	}
	return (VectorCodec{}).Encode(w, v.Max)
}

func (BoxCodec) Decode(r archive.Reader) (geom.Box, error) {
	var v geom.Box
	var err error
	if v.IsValid, err = r.ReadBool("IsValid"); err != nil {
		return v, err
	}
	if v.Min, err = (VectorCodec{}).Decode(r); err != nil {
		return v, err
	}
	v.Max, err = (VectorCodec{}).Decode(r)
	return v, err
}

type Box2DCodec struct{}

func (Box2DCodec) Encode(w archive.Writer, v geom.Box2D) error {
	if err := w.WriteBool("IsValid", v.IsValid); err != nil {
		return err
	}
	if err := (Vector2DCodec{}).Encode(w, v.Min); err != nil {
		return err
	}
	return (Vector2DCodec{}).Encode(w, v.Max)
}

func (Box2DCodec) Decode(r archive.Reader) (geom.Box2D, error) {
	var v geom.Box2D
	var err error
	if v.IsValid, err = r.ReadBool("IsValid"); err != nil {
		return v, err
	}
	if v.Min, err = (Vector2DCodec{}).Decode(r); err != nil {
		return v, err
	}
	v.Max, err = (Vector2DCodec{}).Decode(r)
	return v, err
}

type CapsuleCodec struct{}

func (CapsuleCodec) Encode(w archive.Writer, v geom.Capsule) error {
	if err := (VectorCodec{}).Encode(w, v.Center); err != nil {
		return err
	}
	if err := w.WriteFloat64("Radius", v.Radius); err != nil {
		return err
	}
	if err := (VectorCodec{}).Encode(w, v.Orientation); err != nil {
		return err
	}
	return w.WriteFloat64("Length", v.Length)
}

func (CapsuleCodec) Decode(r archive.Reader) (geom.Capsule, error) {
	var v geom.Capsule
	var err error
	if v.Center, err = (VectorCodec{}).Decode(r); err != nil {
		return v, err
	}
	if v.Radius, err = r.ReadFloat64("Radius"); err != nil {
		return v, err
	}
	if v.Orientation, err = (VectorCodec{}).Decode(r); err != nil {
		return v, err
	}
	v.Length, err = r.ReadFloat64("Length")
	return v, err
}

type IntPointCodec struct{}

func (IntPointCodec) Encode(w archive.Writer, v geom.IntPoint) error {
	if err := w.WriteInt("X", int64(v.X)); err != nil {
		return err
	}
	return w.WriteInt("Y", int64(v.Y))
}

func (IntPointCodec) Decode(r archive.Reader) (geom.IntPoint, error) {
	var v geom.IntPoint
	x, err := r.ReadInt("X")
	if err != nil {
		return v, err
	}
	y, err := r.ReadInt("Y")
	if err != nil {
		return v, err
	}
	v.X, v.Y = int32(x), int32(y)
	return v, nil
}

type IntVectorCodec struct{}

func (IntVectorCodec) Encode(w archive.Writer, v geom.IntVector) error {
	if err := w.WriteInt("X", int64(v.X)); err != nil {
		return err
	}
	if err := w.WriteInt("Y", int64(v.Y)); err != nil {
		return err
	}
	return w.WriteInt("Z", int64(v.Z))
}

func (IntVectorCodec) Decode(r archive.Reader) (geom.IntVector, error) {
	var v geom.IntVector
	x, err := r.ReadInt("X")
	if err != nil {
		return v, err
	}
	y, err := r.ReadInt("Y")
	if err != nil {
		return v, err
	}
	z, err := r.ReadInt("Z")
	if err != nil {
		return v, err
	}
	v.X, v.Y, v.Z = int32(x), int32(y), int32(z)
	return v, nil
}

type IntVector4Codec struct{}

func (IntVector4Codec) Encode(w archive.Writer, v geom.IntVector4) error {
	if err := w.WriteInt("X", int64(v.X)); err != nil {
		return err
	}
	if err := w.WriteInt("Y", int64(v.Y)); err != nil {
		return err
	}
	if err := w.WriteInt("Z", int64(v.Z)); err != nil {
		return err
	}
	return w.WriteInt("W", int64(v.W))
}

func (IntVector4Codec) Decode(r archive.Reader) (geom.IntVector4, error) {
	var v geom.IntVector4
	fields := []struct {
		name string
		dst  *int32
	}{
		{"X", &v.X}, {"Y", &v.Y}, {"Z", &v.Z}, {"W", &v.W},
	}
	for _, f := range fields {
		n, err := r.ReadInt(f.name)
		if err != nil {
			return v, err
		}
		*f.dst = int32(n)
	}
	return v, nil
}

type UintVector4Codec struct{}

func (UintVector4Codec) Encode(w archive.Writer, v geom.UintVector4) error {
	if err := w.WriteUint("X", uint64(v.X)); err != nil {
		return err
	}
	if err := w.WriteUint("Y", uint64(v.Y)); err != nil {
		return err
	}
	if err := w.WriteUint("Z", uint64(v.Z)); err != nil {
		return err
	}
	return w.WriteUint("W", uint64(v.W))
}

func (UintVector4Codec) Decode(r archive.Reader) (geom.UintVector4, error) {
	var v geom.UintVector4
	fields := []struct {
		name string
		dst  *uint32
	}{
		{"X", &v.X}, {"Y", &v.Y}, {"Z", &v.Z}, {"W", &v.W},
	}
	for _, f := range fields {
		n, err := r.ReadUint(f.name)
		if err != nil {
			return v, err
		}
		*f.dst = uint32(n)
	}
	return v, nil
}

type IntRectCodec struct{}

func (IntRectCodec) Encode(w archive.Writer, v geom.IntRect) error {
	if err := (IntPointCodec{}).Encode(w, v.Min); err != nil {
		return err
	}
	return (IntPointCodec{}).Encode(w, v.Max)
}

func (IntRectCodec) Decode(r archive.Reader) (geom.IntRect, error) {
	var v geom.IntRect
	var err error
	if v.Min, err = (IntPointCodec{}).Decode(r); err != nil {
		return v, err
	}
	v.Max, err = (IntPointCodec{}).Decode(r)
	return v, err
}

type PlaneCodec struct{}

func (PlaneCodec) Encode(w archive.Writer, v geom.Plane) error {
	if err := w.WriteFloat64("X", v.X); err != nil {
		return err
	}
	if err := w.WriteFloat64("Y", v.Y); err != nil {
		return err
	}
	if err := w.WriteFloat64("Z", v.Z); err != nil {
		return err
	}
	return w.WriteFloat64("W", v.W)
}

func (PlaneCodec) Decode(r archive.Reader) (geom.Plane, error) {
	var v geom.Plane
	var err error
	if v.X, err = r.ReadFloat64("X"); err != nil {
		return v, err
	}
	if v.Y, err = r.ReadFloat64("Y"); err != nil {
		return v, err
	}
	if v.Z, err = r.ReadFloat64("Z"); err != nil {
		return v, err
	}
	v.W, err = r.ReadFloat64("W")
	return v, err
}

type SphereCodec struct{}

func (SphereCodec) Encode(w archive.Writer, v geom.Sphere) error {
	if err := (VectorCodec{}).Encode(w, v.Center); err != nil {
		return err
	}
	return w.WriteFloat64("W", v.W)
}

func (SphereCodec) Decode(r archive.Reader) (geom.Sphere, error) {
	var v geom.Sphere
	var err error
	if v.Center, err = (VectorCodec{}).Decode(r); err != nil {
		return v, err
	}
	v.W, err = r.ReadFloat64("W")
	return v, err
}

type IntervalCodec struct{}

func (IntervalCodec) Encode(w archive.Writer, v geom.Interval) error {
	if err := w.WriteFloat64("Min", v.Min); err != nil {
		return err
	}
	return w.WriteFloat64("Max", v.Max)
}

func (IntervalCodec) Decode(r archive.Reader) (geom.Interval, error) {
	var v geom.Interval
	var err error
	if v.Min, err = r.ReadFloat64("Min"); err != nil {
		return v, err
	}
	v.Max, err = r.ReadFloat64("Max")
	return v, err
}

// OrientedBoxCodec writes the axes, then the center, then the extents.
type OrientedBoxCodec struct{}

func (OrientedBoxCodec) Encode(w archive.Writer, v geom.OrientedBox) error {
	for _, axis := range []r3.Vec{v.AxisX, v.AxisY, v.AxisZ, v.Center} {
		if err := (VectorCodec{}).Encode(w, axis); err != nil {
			return err
		}
	}
	if err := w.WriteFloat64("ExtentX", v.ExtentX); err != nil {
		return err
	}
	if err := w.WriteFloat64("ExtentY", v.ExtentY); err != nil {
		return err
	}
	return w.WriteFloat64("ExtentZ", v.ExtentZ)
}

func (OrientedBoxCodec) Decode(r archive.Reader) (geom.OrientedBox, error) {
	var v geom.OrientedBox
	for _, dst := range []*r3.Vec{&v.AxisX, &v.AxisY, &v.AxisZ, &v.Center} {
		vec, err := (VectorCodec{}).Decode(r)
		if err != nil {
			return v, err
		}
		*dst = vec
	}
	extents := []struct {
		name string
		dst  *float64
	}{
		{"ExtentX", &v.ExtentX}, {"ExtentY", &v.ExtentY}, {"ExtentZ", &v.ExtentZ},
	}
	for _, e := range extents {
		f, err := r.ReadFloat64(e.name)
		if err != nil {
			return v, err
		}
		*e.dst = f
	}
	return v, nil
}

type TwoVectorsCodec struct{}

func (TwoVectorsCodec) Encode(w archive.Writer, v geom.TwoVectors) error {
	if err := (VectorCodec{}).Encode(w, v.V1); err != nil {
		return err
	}
	return (VectorCodec{}).Encode(w, v.V2)
}

func (TwoVectorsCodec) Decode(r archive.Reader) (geom.TwoVectors, error) {
	var v geom.TwoVectors
	var err error
	if v.V1, err = (VectorCodec{}).Decode(r); err != nil {
		return v, err
	}
	v.V2, err = (VectorCodec{}).Decode(r)
	return v, err
}

// TransformCodec is a reconstructed composite: the transform exposes no
// raw fields, so encoding goes through the getters and decoding collects
// temporaries before calling the setters. The decomposition order is
// rotation, scale, translation on both sides.
type TransformCodec struct{}

func (TransformCodec) Encode(w archive.Writer, v geom.Transform) error {
	if err := (QuatCodec{}).Encode(w, v.Rotation()); err != nil {
		return err
	}
	if err := (VectorCodec{}).Encode(w, v.Scale3D()); err != nil {
		return err
	}
	return (VectorCodec{}).Encode(w, v.Translation())
}

func (TransformCodec) Decode(r archive.Reader) (geom.Transform, error) {
	var out geom.Transform
	rot, err := (QuatCodec{}).Decode(r)
	if err != nil {
		return out, err
	}
	scale, err := (VectorCodec{}).Decode(r)
	if err != nil {
		return out, err
	}
	trans, err := (VectorCodec{}).Decode(r)
	if err != nil {
		return out, err
	}
	out.SetRotation(rot)
	out.SetScale3D(scale)
	out.SetTranslation(trans)
	return out, nil
}

type ScaleCodec struct{}

func (ScaleCodec) Encode(w archive.Writer, v geom.Scale) error {
	return (VectorCodec{}).Encode(w, v.Vector())
}

func (ScaleCodec) Decode(r archive.Reader) (geom.Scale, error) {
	vec, err := (VectorCodec{}).Decode(r)
	if err != nil {
		return geom.Scale{}, err
	}
	return geom.NewScale(vec), nil
}

type Scale2DCodec struct{}

func (Scale2DCodec) Encode(w archive.Writer, v geom.Scale2D) error {
	return (Vector2DCodec{}).Encode(w, v.Vector())
}

func (Scale2DCodec) Decode(r archive.Reader) (geom.Scale2D, error) {
	vec, err := (Vector2DCodec{}).Decode(r)
	if err != nil {
		return geom.Scale2D{}, err
	}
	return geom.NewScale2D(vec), nil
}

type Shear2DCodec struct{}

func (Shear2DCodec) Encode(w archive.Writer, v geom.Shear2D) error {
	return (Vector2DCodec{}).Encode(w, v.Vector())
}

func (Shear2DCodec) Decode(r archive.Reader) (geom.Shear2D, error) {
	vec, err := (Vector2DCodec{}).Decode(r)
	if err != nil {
		return geom.Shear2D{}, err
	}
	return geom.NewShear2D(vec), nil
}

type Quat2DCodec struct{}

func (Quat2DCodec) Encode(w archive.Writer, v geom.Quat2D) error {
	return (Vector2DCodec{}).Encode(w, v.Vector())
}

func (Quat2DCodec) Decode(r archive.Reader) (geom.Quat2D, error) {
	vec, err := (Vector2DCodec{}).Decode(r)
	if err != nil {
		return geom.Quat2D{}, err
	}
	return geom.NewQuat2D(vec), nil
}
