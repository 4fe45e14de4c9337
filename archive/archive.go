// Package archive is the structured-stream boundary of the codec layer.
// An archive transports primitive scalars in a fixed order, optionally
// preserving field names, and marks variable-length containers with a
// size tag that is distinguishable from an ordinary integer.
package archive

// Direction tells which half of a save/load pair an archive drives.
type Direction int

const (
	Saving Direction = iota
	Loading
)

func (d Direction) String() string {
	if d == Saving {
		return "saving"
	}
	return "loading"
}

// Writer is the save side of an archive. The name labels the value for
// formats that keep field names; formats that don't may ignore it.
type Writer interface {
	Direction() Direction
	WriteBool(name string, v bool) error
	WriteInt(name string, v int64) error
	WriteUint(name string, v uint64) error
	WriteFloat32(name string, v float32) error
	WriteFloat64(name string, v float64) error
	WriteString(name string, v string) error
	WriteSizeTag(n uint32) error
}

// Reader is the load side of an archive. Reads must occur in the exact
// order the matching writes happened; a name disagreement or a scalar of
// the wrong kind is a stream-level error.
type Reader interface {
	Direction() Direction
	ReadBool(name string) (bool, error)
	ReadInt(name string) (int64, error)
	ReadUint(name string) (uint64, error)
	ReadFloat32(name string) (float32, error)
	ReadFloat64(name string) (float64, error)
	ReadString(name string) (string, error)
	ReadSizeTag() (uint32, error)
}
