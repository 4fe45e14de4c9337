package registry

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cpp-codemonkey/Cereal-stuff/classref"
)

var (
	// ErrInvalidIdentifier is returned when a snapshot pins an entry to
	// the reserved sentinel identifier.
	ErrInvalidIdentifier = errors.New("snapshot entry uses the reserved identifier")
)

// SnapshotEntry pins one class to an explicit identifier.
type SnapshotEntry struct {
	ID    int32  `yaml:"id"`
	Class string `yaml:"class"`
}

// Snapshot is the declarative form of a class registry. Hosts that need
// identifiers to survive across runs keep one of these next to their
// other configuration and load it at startup.
type Snapshot struct {
	Classes []SnapshotEntry `yaml:"classes"`
}

// LoadSnapshot registers every entry of the yaml document into r using
// explicit identifiers. Entries are applied in document order, so a
// duplicated id keeps the last binding, mirroring RegisterAt.
func LoadSnapshot(data []byte, r *Registry[classref.Ref]) error {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode registry snapshot: %w", err)
	}
	for _, e := range snap.Classes {
		if e.ID == InvalidID {
			return fmt.Errorf("%w: class %q", ErrInvalidIdentifier, e.Class)
		}
		r.RegisterAt(e.ID, classref.New(e.Class))
	}
	return nil
}

// DumpSnapshot renders the current table as a yaml document, in
// ascending identifier order.
func DumpSnapshot(r *Registry[classref.Ref]) ([]byte, error) {
	var snap Snapshot
	for _, e := range r.Entries() {
		snap.Classes = append(snap.Classes, SnapshotEntry{ID: e.ID, Class: e.Handle.Path})
	}
	return yaml.Marshal(&snap)
}
