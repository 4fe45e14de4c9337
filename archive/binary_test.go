package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	w := NewBinaryWriter()
	require.Equal(t, Saving, w.Direction())

	require.NoError(t, w.WriteBool("b", true))
	require.NoError(t, w.WriteInt("i", -4711))
	require.NoError(t, w.WriteUint("u", 18446744073709551615))
	require.NoError(t, w.WriteFloat32("f32", 1.5))
	require.NoError(t, w.WriteFloat64("f64", -2.25))
	require.NoError(t, w.WriteString("s", "héllo"))
	require.NoError(t, w.WriteSizeTag(3))

	r, err := NewBinaryReader(w.Bytes())
	require.NoError(t, err)
	require.Equal(t, Loading, r.Direction())

	b, err := r.ReadBool("b")
	require.NoError(t, err)
	require.True(t, b)

	i, err := r.ReadInt("i")
	require.NoError(t, err)
	require.Equal(t, int64(-4711), i)

	u, err := r.ReadUint("u")
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), u)

	f32, err := r.ReadFloat32("f32")
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := r.ReadFloat64("f64")
	require.NoError(t, err)
	require.Equal(t, -2.25, f64)

	s, err := r.ReadString("s")
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	n, err := r.ReadSizeTag()
	require.NoError(t, err)
	require.Equal(t, uint32(3), n)
}

func TestBinaryDetectsTruncation(t *testing.T) {
	w := NewBinaryWriter()
	require.NoError(t, w.WriteString("s", "some payload"))
	doc := w.Bytes()

	_, err := NewBinaryReader(doc[:len(doc)-3])
	require.ErrorIs(t, err, ErrChecksum)

	_, err = NewBinaryReader(doc[:4])
	require.ErrorIs(t, err, ErrTruncated)
}

func TestBinaryDetectsCorruption(t *testing.T) {
	w := NewBinaryWriter()
	require.NoError(t, w.WriteInt("i", 1))
	doc := w.Bytes()
	doc[0] ^= 0xff

	_, err := NewBinaryReader(doc)
	require.ErrorIs(t, err, ErrChecksum)
}

func TestBinaryReadPastEnd(t *testing.T) {
	w := NewBinaryWriter()
	require.NoError(t, w.WriteInt("i", 1))

	r, err := NewBinaryReader(w.Bytes())
	require.NoError(t, err)

	_, err = r.ReadInt("i")
	require.NoError(t, err)
	_, err = r.ReadInt("j")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestBinaryTypeMismatchPropagates(t *testing.T) {
	w := NewBinaryWriter()
	require.NoError(t, w.WriteString("s", "not a number"))

	r, err := NewBinaryReader(w.Bytes())
	require.NoError(t, err)

	_, err = r.ReadFloat64("s")
	require.Error(t, err)
}
