// Package geom holds the host value records the codec layer transports.
// Vector-like quantities reuse gonum's spatial types; everything here is
// a plain record of primitive fields.
package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotator is an euler-angle orientation in degrees.
type Rotator struct {
	Pitch float64
	Roll  float64
	Yaw   float64
}

// Box is an axis-aligned bounding box. IsValid reports whether the
// bounds have been populated at all; a zero box is not a valid box.
type Box struct {
	Min     r3.Vec
	Max     r3.Vec
	IsValid bool
}

// Box2D is the planar counterpart of Box.
type Box2D struct {
	Min     r2.Vec
	Max     r2.Vec
	IsValid bool
}

// Capsule is a pill shape described by its center, axis and extents.
type Capsule struct {
	Center      r3.Vec
	Radius      float64
	Orientation r3.Vec
	Length      float64
}

type IntPoint struct {
	X int32
	Y int32
}

type IntVector struct {
	X int32
	Y int32
	Z int32
}

type IntRect struct {
	Min IntPoint
	Max IntPoint
}

type IntVector4 struct {
	X int32
	Y int32
	Z int32
	W int32
}

type UintVector4 struct {
	X uint32
	Y uint32
	Z uint32
	W uint32
}

// OrientedBox is a box with arbitrary orientation: three unit axes, a
// center, and the half-extent along each axis.
type OrientedBox struct {
	AxisX   r3.Vec
	AxisY   r3.Vec
	AxisZ   r3.Vec
	Center  r3.Vec
	ExtentX float64
	ExtentY float64
	ExtentZ float64
}

// Plane stores the plane equation coefficients (X,Y,Z normal, W offset).
type Plane struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Sphere keeps its radius in W, matching the host layout.
type Sphere struct {
	Center r3.Vec
	W      float64
}

type Interval struct {
	Min float64
	Max float64
}

type TwoVectors struct {
	V1 r3.Vec
	V2 r3.Vec
}

// LinearColor is a floating-point RGBA color; 8-bit colors use
// image/color.RGBA directly.
type LinearColor struct {
	R float32
	G float32
	B float32
	A float32
}
