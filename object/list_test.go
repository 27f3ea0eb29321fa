package object

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaultdb/objcodec/errs"
	"github.com/vaultdb/objcodec/format"
)

// buildBlob lays out an 8-byte DataPosition header at offset 0, followed by
// zero padding up to pos.Offset, followed by payload.
func buildBlob(pos DataPosition, payload []byte) []byte {
	blob := header(pos.Offset, pos.Length)
	blob = append(blob, make([]byte, int(pos.Offset)-len(blob))...)
	blob = append(blob, payload...)

	return blob
}

func TestPropertyStringPresent(t *testing.T) {
	blob := buildBlob(DataPosition{Offset: 8, Length: 2}, []byte("hi"))
	p := New(format.String, 0)

	value, ok, err := p.String(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hi", value)
}

func TestPropertyStringNull(t *testing.T) {
	blob := header(0, 0)
	p := New(format.String, 0)

	value, ok, err := p.String(blob)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, value)
}

func TestPropertyStringPresentEmpty(t *testing.T) {
	blob := header(8, 0)
	p := New(format.String, 0)

	value, ok, err := p.String(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, value)
}

func TestPropertyStringInvalidUTF8(t *testing.T) {
	blob := buildBlob(DataPosition{Offset: 8, Length: 2}, []byte{0xff, 0xfe})
	p := New(format.String, 0)

	_, _, err := p.String(blob)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestPropertyBytesPresent(t *testing.T) {
	blob := buildBlob(DataPosition{Offset: 8, Length: 3}, []byte{1, 2, 3})
	p := New(format.Bytes, 0)

	value, ok, err := p.Bytes(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, value)
}

func TestPropertyIntListTwoElements(t *testing.T) {
	payload := append(le32(7), le32(9)...)
	blob := buildBlob(DataPosition{Offset: 8, Length: 2}, payload)
	p := New(format.IntList, 0)

	value, ok, err := p.IntList(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int32{7, 9}, value)
}

func TestPropertyLongListTwoElements(t *testing.T) {
	payload := append(le64(100), le64(200)...)
	blob := buildBlob(DataPosition{Offset: 8, Length: 2}, payload)
	p := New(format.LongList, 0)

	value, ok, err := p.LongList(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int64{100, 200}, value)
}

func TestPropertyIntListNull(t *testing.T) {
	blob := header(0, 0)
	p := New(format.IntList, 0)

	value, ok, err := p.IntList(blob)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, value)
}

func TestPropertyBoolListTriState(t *testing.T) {
	blob := buildBlob(DataPosition{Offset: 8, Length: 3}, []byte{0x00, 0x01, 0xff})
	p := New(format.BoolList, 0)

	value, ok, err := p.BoolList(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []Optional[bool]{Some(false), Some(true), None[bool]()}, value)
}

func TestPropertyBytesListWithNullElement(t *testing.T) {
	// Outer header points at offset 8, where two 8-byte inner headers live;
	// the first addresses a 2-byte payload at 24, the second is null.
	blob := header(8, 2)
	blob = append(blob, header(24, 2)...)
	blob = append(blob, header(0, 0)...)
	blob = append(blob, []byte{0xaa, 0xbb}...)

	p := New(format.BytesList, 0)

	value, ok, err := p.BytesList(blob)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, value, 2)
	require.True(t, value[0].Valid)
	require.Equal(t, []byte{0xaa, 0xbb}, value[0].Value)
	require.False(t, value[1].Valid)
}

func TestPropertyStringListInvalidElementErrors(t *testing.T) {
	blob := header(8, 1)
	blob = append(blob, header(16, 2)...)
	blob = append(blob, []byte{0xff, 0xfe}...)

	p := New(format.StringList, 0)

	_, _, err := p.StringList(blob)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestPropertyBytesListOuterNull(t *testing.T) {
	blob := header(0, 0)
	p := New(format.BytesList, 0)

	value, ok, err := p.BytesList(blob)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, value)
}
