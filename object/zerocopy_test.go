package object

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaultdb/objcodec/errs"
)

func le64(v uint64) []byte {
	b := make([]byte, 8)
	endianEngine.PutUint64(b, v)
	return b
}

func TestTypedSliceEmptyPayload(t *testing.T) {
	out, err := typedSlice[int32](nil, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestTypedSliceInt32ZeroCopy(t *testing.T) {
	payload := append(le32(1), le32(2)...)

	out, err := typedSlice[int32](payload, func(b []byte, i int) int32 {
		return int32(endianEngine.Uint32(b[i : i+4])) //nolint:gosec
	})
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2}, out)
}

func TestTypedSliceInt64ZeroCopy(t *testing.T) {
	payload := append(le64(10), le64(20)...)

	out, err := typedSlice[int64](payload, func(b []byte, i int) int64 {
		return int64(endianEngine.Uint64(b[i : i+8])) //nolint:gosec
	})
	require.NoError(t, err)
	require.Equal(t, []int64{10, 20}, out)
}

func TestTypedSliceMisalignedLengthErrors(t *testing.T) {
	payload := []byte{1, 2, 3}

	_, err := typedSlice[int32](payload, nil)
	require.ErrorIs(t, err, errs.ErrMisalignedPayload)
}
