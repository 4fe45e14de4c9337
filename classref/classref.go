// Package classref defines the opaque class handle the host application
// hands to the codec layer. A Ref is never serialized directly; the
// handle codec replaces it with a surrogate identifier from a registry.
package classref

import "github.com/google/uuid"

// namespace for deriving the per-class tag from its path
var classNamespace = uuid.MustParse("b1a4e6a2-9d55-4c1e-8f1e-4f41d1a0c9d7")

// Ref identifies a class by its asset path. The Tag is derived
// deterministically from the path, so two Refs for the same path always
// compare equal. The zero Ref is the empty handle.
type Ref struct {
	Path string
	Tag  uuid.UUID
}

// New builds a Ref for the given class path.
func New(path string) Ref {
	return Ref{
		Path: path,
		Tag:  uuid.NewSHA1(classNamespace, []byte(path)),
	}
}

// IsZero reports whether r is the empty handle.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

func (r Ref) String() string {
	return r.Path
}
