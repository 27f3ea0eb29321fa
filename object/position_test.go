package object

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaultdb/objcodec/errs"
)

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func header(offset, length uint32) []byte {
	return append(le32(offset), le32(length)...)
}

func TestDataPositionIsNull(t *testing.T) {
	require.True(t, DataPosition{Offset: 0, Length: 0}.IsNull())
	require.True(t, DataPosition{Offset: 0, Length: 5}.IsNull())
	require.False(t, DataPosition{Offset: 1, Length: 0}.IsNull())
}

func TestReadDataPosition(t *testing.T) {
	blob := header(16, 3)

	pos, err := readDataPosition(blob, 0)
	require.NoError(t, err)
	require.Equal(t, DataPosition{Offset: 16, Length: 3}, pos)
}

func TestReadDataPositionOutOfRange(t *testing.T) {
	blob := make([]byte, 4)

	_, err := readDataPosition(blob, 0)
	require.ErrorIs(t, err, errs.ErrPositionOutOfRange)
}

func TestDataPositionPayload(t *testing.T) {
	blob := make([]byte, 16)
	copy(blob[8:], []byte{1, 2, 3, 4})

	pos := DataPosition{Offset: 8, Length: 4}
	payload, err := pos.payload(blob, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, payload)
}

func TestDataPositionPayloadOutOfRange(t *testing.T) {
	blob := make([]byte, 8)

	pos := DataPosition{Offset: 4, Length: 2}
	_, err := pos.payload(blob, 4)
	require.ErrorIs(t, err, errs.ErrPositionOutOfRange)
}
