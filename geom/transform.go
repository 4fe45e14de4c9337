package geom

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a rotation/scale/translation triple. The components are
// not exposed as raw fields; construction and inspection go through the
// accessors so the internal decomposition can change without touching
// callers.
type Transform struct {
	rot   quat.Number
	scale r3.Vec
	trans r3.Vec
}

// Identity returns the transform that maps every point to itself.
func Identity() Transform {
	return Transform{
		rot:   quat.Number{Real: 1},
		scale: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

func (t *Transform) SetRotation(q quat.Number) { t.rot = q }

func (t *Transform) SetScale3D(s r3.Vec) { t.scale = s }

func (t *Transform) SetTranslation(v r3.Vec) { t.trans = v }

func (t Transform) Rotation() quat.Number { return t.rot }

func (t Transform) Scale3D() r3.Vec { return t.scale }

func (t Transform) Translation() r3.Vec { return t.trans }

// Scale is a non-uniform 3D scale. Like Transform it hides its storage
// behind a constructor/getter pair.
type Scale struct {
	v r3.Vec
}

func NewScale(v r3.Vec) Scale { return Scale{v: v} }

// UniformScale scales all three axes by s.
func UniformScale(s float64) Scale { return Scale{v: r3.Vec{X: s, Y: s, Z: s}} }

func (s Scale) Vector() r3.Vec { return s.v }

// Scale2D is the planar scale.
type Scale2D struct {
	v r2.Vec
}

func NewScale2D(v r2.Vec) Scale2D { return Scale2D{v: v} }

func (s Scale2D) Vector() r2.Vec { return s.v }

// Shear2D shears along the two planar axes.
type Shear2D struct {
	v r2.Vec
}

func NewShear2D(v r2.Vec) Shear2D { return Shear2D{v: v} }

func (s Shear2D) Vector() r2.Vec { return s.v }

// Quat2D is a planar rotation stored as a unit direction vector.
type Quat2D struct {
	v r2.Vec
}

func NewQuat2D(v r2.Vec) Quat2D { return Quat2D{v: v} }

func (q Quat2D) Vector() r2.Vec { return q.v }
