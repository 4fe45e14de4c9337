package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpp-codemonkey/Cereal-stuff/classref"
)

func TestRegisterRoundTrip(t *testing.T) {
	r := New[classref.Ref]()

	turret := classref.New("/Game/Blueprints/BP_Turret.BP_Turret_C")
	drone := classref.New("/Game/Blueprints/BP_Drone.BP_Drone_C")

	turretID := r.Register(turret)
	droneID := r.Register(drone)

	require.Equal(t, turret, r.HandleFor(turretID))
	require.Equal(t, drone, r.HandleFor(droneID))
	require.Equal(t, turretID, r.IdentifierFor(turret))
	require.Equal(t, droneID, r.IdentifierFor(drone))
	require.Equal(t, 2, r.Count())
}

func TestMissReturnsDefaults(t *testing.T) {
	r := New[classref.Ref]()

	require.Equal(t, InvalidID, r.IdentifierFor(classref.New("/Game/Nope.Nope_C")))
	require.True(t, r.HandleFor(42).IsZero())
	require.True(t, r.HandleFor(InvalidID).IsZero())
}

func TestIdentifiersAreUnique(t *testing.T) {
	r := New[string]()

	seen := make(map[int32]bool)
	for i := 0; i < 100; i++ {
		id := r.Register("handle")
		require.NotEqual(t, InvalidID, id, "auto-allocation must never yield the sentinel")
		require.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
	require.Equal(t, 100, r.Count())
}

func TestAllocationSkipsExplicitIDs(t *testing.T) {
	r := New[string]()

	// occupy the first two free slots by hand, then let the allocator
	// find the next gap
	r.RegisterAt(InvalidID+1, "a")
	r.RegisterAt(InvalidID+2, "b")
	require.Equal(t, InvalidID+3, r.Register("c"))
}

func TestRegisterAtOverwrites(t *testing.T) {
	r := New[string]()

	r.RegisterAt(7, "old")
	r.RegisterAt(7, "new")
	require.Equal(t, 1, r.Count())
	require.Equal(t, "new", r.HandleFor(7))
}

func TestReverseLookupFirstMatchAscending(t *testing.T) {
	r := New[string]()

	// same handle under two identifiers: the smaller one wins,
	// regardless of registration order
	r.RegisterAt(9, "shared")
	r.RegisterAt(3, "shared")
	require.Equal(t, int32(3), r.IdentifierFor("shared"))
}

func TestClear(t *testing.T) {
	r := New[string]()

	id := r.Register("a")
	r.Clear()
	require.Equal(t, 0, r.Count())
	require.Equal(t, InvalidID, r.IdentifierFor("a"))
	require.Equal(t, "", r.HandleFor(id))

	// allocation restarts deterministically after a clear
	require.Equal(t, id, r.Register("a"))
}

func TestEntriesAscending(t *testing.T) {
	r := New[string]()

	r.RegisterAt(5, "e")
	r.RegisterAt(-2, "a")
	r.RegisterAt(0, "c")

	entries := r.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, []Entry[string]{
		{ID: -2, Handle: "a"},
		{ID: 0, Handle: "c"},
		{ID: 5, Handle: "e"},
	}, entries)
}
