package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	w := NewJSONWriter()
	require.Equal(t, Saving, w.Direction())

	require.NoError(t, w.WriteBool("valid", false))
	require.NoError(t, w.WriteInt("count", -12))
	require.NoError(t, w.WriteUint("max", 18446744073709551615))
	require.NoError(t, w.WriteFloat32("ratio", 0.25))
	require.NoError(t, w.WriteFloat64("offset", 1e308))
	require.NoError(t, w.WriteString("name", `quote " and \ slash`))
	require.NoError(t, w.WriteSizeTag(2))

	r, err := NewJSONReader(w.Bytes())
	require.NoError(t, err)
	require.Equal(t, Loading, r.Direction())

	b, err := r.ReadBool("valid")
	require.NoError(t, err)
	require.False(t, b)

	i, err := r.ReadInt("count")
	require.NoError(t, err)
	require.Equal(t, int64(-12), i)

	u, err := r.ReadUint("max")
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), u)

	f32, err := r.ReadFloat32("ratio")
	require.NoError(t, err)
	require.Equal(t, float32(0.25), f32)

	f64, err := r.ReadFloat64("offset")
	require.NoError(t, err)
	require.Equal(t, 1e308, f64)

	s, err := r.ReadString("name")
	require.NoError(t, err)
	require.Equal(t, `quote " and \ slash`, s)

	n, err := r.ReadSizeTag()
	require.NoError(t, err)
	require.Equal(t, uint32(2), n)
}

func TestJSONPreservesFieldNames(t *testing.T) {
	w := NewJSONWriter()
	require.NoError(t, w.WriteFloat64("X", 1))
	require.NoError(t, w.WriteFloat64("Y", 2))
	require.JSONEq(t, `[{"X":1},{"Y":2}]`, string(w.Bytes()))
}

func TestJSONFieldMismatch(t *testing.T) {
	w := NewJSONWriter()
	require.NoError(t, w.WriteFloat64("X", 1))

	r, err := NewJSONReader(w.Bytes())
	require.NoError(t, err)

	_, err = r.ReadFloat64("Y")
	require.ErrorIs(t, err, ErrFieldMismatch)
}

func TestJSONTypeMismatch(t *testing.T) {
	w := NewJSONWriter()
	require.NoError(t, w.WriteString("s", "text"))

	r, err := NewJSONReader(w.Bytes())
	require.NoError(t, err)

	_, err = r.ReadFloat64("s")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestJSONRejectsNegativeUint(t *testing.T) {
	r, err := NewJSONReader([]byte(`[{"u":-5}]`))
	require.NoError(t, err)

	_, err = r.ReadUint("u")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestJSONRejectsNegativeSizeTag(t *testing.T) {
	r, err := NewJSONReader([]byte(`[{"#":-1}]`))
	require.NoError(t, err)

	_, err = r.ReadSizeTag()
	require.ErrorIs(t, err, ErrSizeTag)
}

func TestJSONTruncated(t *testing.T) {
	r, err := NewJSONReader([]byte(`[{"X":1}]`))
	require.NoError(t, err)

	_, err = r.ReadFloat64("X")
	require.NoError(t, err)
	_, err = r.ReadFloat64("Y")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestJSONMalformed(t *testing.T) {
	_, err := NewJSONReader([]byte(`{"not":"an array"}`))
	require.ErrorIs(t, err, ErrMalformed)

	_, err = NewJSONReader([]byte(`[{"X":1}`))
	require.ErrorIs(t, err, ErrMalformed)
}
