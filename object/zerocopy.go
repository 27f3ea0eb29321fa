package object

import (
	"fmt"
	"unsafe"

	"github.com/vaultdb/objcodec/endian"
	"github.com/vaultdb/objcodec/errs"
)

// numeric is the set of fixed-width element types a list payload can be
// reinterpreted as without copying.
type numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// typedSlice returns payload reinterpreted as a []T, either by aliasing the
// underlying bytes directly (when the host's native byte order matches the
// little-endian blob format, so no byte-swapping is needed) or, on a
// non-little-endian host, by decoding element by element into a freshly
// allocated slice (see spec §9, "a safer portable alternative is to copy").
//
// A payload whose starting address is not a multiple of sizeof(T) fails
// with errs.ErrMisalignedPayload: this is only reachable via a corrupt or
// hand-crafted blob, since a Builder-produced blob always aligns dynamic
// payloads to the element size (spec §3.6).
func typedSlice[T numeric](payload []byte, decodeAt func([]byte, int) T) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))

	if len(payload) == 0 {
		return []T{}, nil
	}

	if len(payload)%size != 0 {
		return nil, fmt.Errorf("%w: payload length %d is not a multiple of element size %d",
			errs.ErrMisalignedPayload, len(payload), size)
	}

	n := len(payload) / size

	addr := uintptr(unsafe.Pointer(&payload[0]))
	if addr%uintptr(size) != 0 {
		return nil, fmt.Errorf("%w: payload address 0x%x is not aligned to %d bytes",
			errs.ErrMisalignedPayload, addr, size)
	}

	if endian.IsNativeLittleEndian() {
		ptr := (*T)(unsafe.Pointer(&payload[0]))

		return unsafe.Slice(ptr, n), nil
	}

	out := make([]T, n)
	for i := range out {
		out[i] = decodeAt(payload, i*size)
	}

	return out, nil
}
