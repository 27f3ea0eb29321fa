package object

import (
	"fmt"

	"github.com/vaultdb/objcodec/endian"
	"github.com/vaultdb/objcodec/errs"
)

// DataPositionSize is the fixed on-disk size, in bytes, of a DataPosition
// header: a little-endian uint32 offset followed by a little-endian uint32
// length.
const DataPositionSize = 8

// DataPosition locates a dynamic payload within a blob. It is null iff
// Offset == 0; a non-null DataPosition with Length == 0 represents a
// present, empty list or string.
type DataPosition struct {
	Offset uint32
	Length uint32
}

// IsNull reports whether the header encodes "absent".
func (p DataPosition) IsNull() bool {
	return p.Offset == 0
}

// readDataPosition reads the 8-byte DataPosition at absolute offset at
// within blob. The caller must have already verified at%4==0 (see
// Property.dataPosition); this function additionally bounds-checks at
// against the blob length, since a schema-valid offset can still exceed a
// truncated or hand-crafted blob.
func readDataPosition(blob []byte, at int) (DataPosition, error) {
	if at < 0 || at+DataPositionSize > len(blob) {
		return DataPosition{}, fmt.Errorf("%w: header at byte %d needs %d bytes, blob is %d bytes",
			errs.ErrPositionOutOfRange, at, DataPositionSize, len(blob))
	}

	offset := endian.Engine.Uint32(blob[at : at+4])
	length := endian.Engine.Uint32(blob[at+4 : at+8])

	return DataPosition{Offset: offset, Length: length}, nil
}

// payload resolves the byte range a non-null DataPosition addresses for an
// element of size elemSize, bounds-checking it against blob.
func (p DataPosition) payload(blob []byte, elemSize int) ([]byte, error) {
	start := int(p.Offset)
	end := start + int(p.Length)*elemSize

	if start < 0 || end < start || end > len(blob) {
		return nil, fmt.Errorf("%w: payload [%d:%d] (%d elements of size %d), blob is %d bytes",
			errs.ErrPositionOutOfRange, start, end, p.Length, elemSize, len(blob))
	}

	return blob[start:end], nil
}
