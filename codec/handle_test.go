package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
	"github.com/cpp-codemonkey/Cereal-stuff/classref"
	"github.com/cpp-codemonkey/Cereal-stuff/registry"
)

func TestHandleRoundTrip(t *testing.T) {
	reg := registry.New[classref.Ref]()
	turret := classref.New("/Game/Blueprints/BP_Turret.BP_Turret_C")
	reg.Register(turret)

	c := HandleCodec[classref.Ref]{Registry: reg}
	roundTrip(t, c, turret)
}

func TestHandleUnregisteredSavesSentinel(t *testing.T) {
	reg := registry.New[classref.Ref]()
	c := HandleCodec[classref.Ref]{Registry: reg}

	w := archive.NewBinaryWriter()
	require.NoError(t, c.Encode(w, classref.New("/Game/Unknown.Unknown_C")))

	r, err := archive.NewBinaryReader(w.Bytes())
	require.NoError(t, err)
	id, err := r.ReadInt("class")
	require.NoError(t, err)
	require.Equal(t, int64(registry.InvalidID), id)
}

func TestHandleUnknownIdentifierLoadsEmpty(t *testing.T) {
	reg := registry.New[classref.Ref]()
	c := HandleCodec[classref.Ref]{Registry: reg}

	w := archive.NewBinaryWriter()
	require.NoError(t, w.WriteInt("class", 12345))

	r, err := archive.NewBinaryReader(w.Bytes())
	require.NoError(t, err)
	got, err := c.Decode(r)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestHandleWideIdentifierLoadsEmpty(t *testing.T) {
	reg := registry.New[classref.Ref]()
	turret := classref.New("/Game/Blueprints/BP_Turret.BP_Turret_C")
	reg.RegisterAt(1, turret)

	c := HandleCodec[classref.Ref]{Registry: reg}

	// 1 + 2^32 would land on identifier 1 if the value were narrowed
	w := archive.NewBinaryWriter()
	require.NoError(t, w.WriteInt("class", 1+(int64(1)<<32)))

	r, err := archive.NewBinaryReader(w.Bytes())
	require.NoError(t, err)
	got, err := c.Decode(r)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestHandleInsideCollections(t *testing.T) {
	reg := registry.New[classref.Ref]()
	turret := classref.New("/Game/Blueprints/BP_Turret.BP_Turret_C")
	drone := classref.New("/Game/Blueprints/BP_Drone.BP_Drone_C")
	reg.Register(turret)
	reg.Register(drone)

	c := SliceCodec[classref.Ref]{Elem: HandleCodec[classref.Ref]{Registry: reg}}
	roundTrip(t, c, []classref.Ref{drone, turret, drone})
}
