package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaultdb/objcodec/format"
)

func isNull(t *testing.T, p Property, blob []byte) bool {
	t.Helper()

	null, err := p.IsNull(blob)
	require.NoError(t, err)

	return null
}

func TestPropertyIntRoundTrip(t *testing.T) {
	blob := le32(42)
	p := New(format.Int, 0)

	require.Equal(t, int32(42), p.Int(blob))
	require.False(t, isNull(t, p, blob))
}

func TestPropertyIntNullSentinel(t *testing.T) {
	blob := le32(uint32(math.MinInt32))
	p := New(format.Int, 0)

	require.True(t, isNull(t, p, blob))
}

func TestPropertyIntZeroIsNotNull(t *testing.T) {
	blob := le32(0)
	p := New(format.Int, 0)

	require.Equal(t, int32(0), p.Int(blob))
	require.False(t, isNull(t, p, blob))
}

func TestPropertyLongRoundTrip(t *testing.T) {
	blob := make([]byte, 8)
	endianEngine.PutUint64(blob, 1<<40)
	p := New(format.Long, 0)

	require.Equal(t, int64(1<<40), p.Long(blob))
	require.False(t, isNull(t, p, blob))
}

func TestPropertyLongNullSentinel(t *testing.T) {
	blob := make([]byte, 8)
	endianEngine.PutUint64(blob, uint64(math.MinInt64))
	p := New(format.Long, 0)

	require.True(t, isNull(t, p, blob))
}

func TestPropertyFloatNullIsAnyNaN(t *testing.T) {
	blob := le32(math.Float32bits(float32(math.NaN())))
	p := New(format.Float, 0)

	require.True(t, isNull(t, p, blob))
}

func TestPropertyFloatRoundTrip(t *testing.T) {
	blob := le32(math.Float32bits(3.5))
	p := New(format.Float, 0)

	require.Equal(t, float32(3.5), p.Float(blob))
	require.False(t, isNull(t, p, blob))
}

func TestPropertyDoubleRoundTrip(t *testing.T) {
	blob := make([]byte, 8)
	endianEngine.PutUint64(blob, math.Float64bits(2.718281828))
	p := New(format.Double, 0)

	require.Equal(t, 2.718281828, p.Double(blob))
	require.False(t, isNull(t, p, blob))
}

func TestPropertyBoolStates(t *testing.T) {
	p := New(format.Bool, 0)

	value, ok := p.Bool([]byte{0x00})
	require.True(t, ok)
	require.False(t, value)

	value, ok = p.Bool([]byte{0x01})
	require.True(t, ok)
	require.True(t, value)

	_, ok = p.Bool([]byte{0xff})
	require.False(t, ok)
	require.True(t, isNull(t, New(format.Bool, 0), []byte{0xff}))
}

func TestPropertyStaticRawMatchesRawBytes(t *testing.T) {
	blob := le32(0xdeadbeef)
	p := New(format.Int, 0)

	require.Equal(t, blob, p.StaticRaw(blob))
}

func TestPropertyStaticRawPanicsOnDynamicType(t *testing.T) {
	p := New(format.String, 0)

	require.Panics(t, func() {
		p.StaticRaw(make([]byte, 8))
	})
}

func TestPropertyDynamicRawReturnsHeaderBytes(t *testing.T) {
	blob := header(4, 2)
	p := New(format.IntList, 0)

	require.Equal(t, blob, p.DynamicRaw(blob))
}

func TestPropertyDynamicRawPanicsOnStaticType(t *testing.T) {
	p := New(format.Int, 0)

	require.Panics(t, func() {
		p.DynamicRaw(le32(1))
	})
}

func TestPropertyTypeMismatchPanics(t *testing.T) {
	p := New(format.Int, 0)

	require.Panics(t, func() {
		p.Long(make([]byte, 8))
	})
}

func TestPropertyNullDynamicProperty(t *testing.T) {
	blob := header(0, 0)
	p := New(format.String, 0)

	require.True(t, isNull(t, p, blob))

	_, ok, err := p.Length(blob)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPropertyPresentEmptyDynamicProperty(t *testing.T) {
	blob := header(8, 0)
	p := New(format.String, 0)

	require.False(t, isNull(t, p, blob))

	length, ok, err := p.Length(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, length)
}

func TestPropertyMisalignedOffsetPanics(t *testing.T) {
	blob := header(0, 0)
	p := New(format.String, 2)

	require.Panics(t, func() {
		_, _ = p.IsNull(blob)
	})
}

func TestPropertyIsNullTruncatedBlobSurfacesError(t *testing.T) {
	blob := make([]byte, 4) // too short to hold the 8-byte header at offset 0
	p := New(format.String, 0)

	_, err := p.IsNull(blob)
	require.Error(t, err)
}

func TestPropertyLengthTruncatedBlobSurfacesError(t *testing.T) {
	blob := make([]byte, 4)
	p := New(format.IntList, 0)

	_, _, err := p.Length(blob)
	require.Error(t, err)
}
