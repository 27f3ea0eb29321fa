// Dynamic accessors (spec §4.4): resolve a DataPosition, validate alignment
// of the payload, reinterpret it as a typed slice without copying, and
// enforce null-list semantics.
package object

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vaultdb/objcodec/errs"
	"github.com/vaultdb/objcodec/format"
)

// resolve reads the DataPosition for a dynamic property and, if non-null,
// its payload bytes for an element of size elemSize. ok reports whether
// the property is present; a null property returns (nil, false, nil).
func (p Property) resolve(blob []byte, elemSize int) (payload []byte, ok bool, err error) {
	pos, err := p.dataPosition(blob)
	if err != nil {
		return nil, false, err
	}

	if pos.IsNull() {
		return nil, false, nil
	}

	payload, err = pos.payload(blob, elemSize)
	if err != nil {
		return nil, false, err
	}

	return payload, true, nil
}

// String returns the UTF-8 string stored at p, or ok==false if null.
// Invalid UTF-8 in the payload is reported as errs.ErrInvalidUTF8, per
// spec §4.4.
func (p Property) String(blob []byte) (value string, ok bool, err error) {
	p.requireType(format.String)

	payload, ok, err := p.resolve(blob, 1)
	if err != nil || !ok {
		return "", ok, err
	}

	if !utf8.Valid(payload) {
		return "", false, fmt.Errorf("%w: at offset %d", errs.ErrInvalidUTF8, p.Offset)
	}

	return string(payload), true, nil
}

// Bytes returns the raw byte slice stored at p, borrowed directly from
// blob, or ok==false if null.
func (p Property) Bytes(blob []byte) (value []byte, ok bool, err error) {
	p.requireType(format.Bytes)
	return p.resolve(blob, 1)
}

// IntList returns the []int32 payload stored at p without copying (on a
// little-endian host), or ok==false if null.
func (p Property) IntList(blob []byte) (value []int32, ok bool, err error) {
	p.requireType(format.IntList)

	payload, ok, err := p.resolve(blob, 4)
	if err != nil || !ok {
		return nil, ok, err
	}

	value, err = typedSlice[int32](payload, func(b []byte, i int) int32 {
		return int32(endianEngine.Uint32(b[i : i+4])) //nolint:gosec
	})

	return value, err == nil, err
}

// LongList returns the []int64 payload stored at p without copying (on a
// little-endian host), or ok==false if null.
func (p Property) LongList(blob []byte) (value []int64, ok bool, err error) {
	p.requireType(format.LongList)

	payload, ok, err := p.resolve(blob, 8)
	if err != nil || !ok {
		return nil, ok, err
	}

	value, err = typedSlice[int64](payload, func(b []byte, i int) int64 {
		return int64(endianEngine.Uint64(b[i : i+8])) //nolint:gosec
	})

	return value, err == nil, err
}

// FloatList returns the []float32 payload stored at p without copying (on
// a little-endian host), or ok==false if null.
func (p Property) FloatList(blob []byte) (value []float32, ok bool, err error) {
	p.requireType(format.FloatList)

	payload, ok, err := p.resolve(blob, 4)
	if err != nil || !ok {
		return nil, ok, err
	}

	value, err = typedSlice[float32](payload, func(b []byte, i int) float32 {
		return math.Float32frombits(endianEngine.Uint32(b[i : i+4]))
	})

	return value, err == nil, err
}

// DoubleList returns the []float64 payload stored at p without copying (on
// a little-endian host), or ok==false if null.
func (p Property) DoubleList(blob []byte) (value []float64, ok bool, err error) {
	p.requireType(format.DoubleList)

	payload, ok, err := p.resolve(blob, 8)
	if err != nil || !ok {
		return nil, ok, err
	}

	value, err = typedSlice[float64](payload, func(b []byte, i int) float64 {
		return math.Float64frombits(endianEngine.Uint64(b[i : i+8]))
	})

	return value, err == nil, err
}

// BoolList returns one tri-state Optional[bool] per element, decoded the
// same way a scalar Bool is (0x00 false, 0x01 true, anything else null),
// or ok==false if the list itself is null.
func (p Property) BoolList(blob []byte) (value []Optional[bool], ok bool, err error) {
	p.requireType(format.BoolList)

	payload, ok, err := p.resolve(blob, 1)
	if err != nil || !ok {
		return nil, ok, err
	}

	out := make([]Optional[bool], len(payload))
	for i, b := range payload {
		switch b {
		case 0x00:
			out[i] = Some(false)
		case 0x01:
			out[i] = Some(true)
		default:
			out[i] = None[bool]()
		}
	}

	return out, true, nil
}

// BytesList reads the outer DataPosition header, then resolves each of its
// outer.Length nested DataPosition headers (laid out contiguously starting
// at outer.Offset) independently: each element is individually nullable,
// distinct from a present-but-empty element (spec §9, "Nested list
// headers"). ok==false only if the outer list itself is null.
func (p Property) BytesList(blob []byte) (value []Optional[[]byte], ok bool, err error) {
	p.requireType(format.BytesList)
	return nestedList(blob, p, func(payload []byte) ([]byte, error) {
		return payload, nil
	})
}

// StringList is BytesList's string-valued analogue: each element's payload
// is additionally validated as UTF-8.
func (p Property) StringList(blob []byte) (value []Optional[string], ok bool, err error) {
	p.requireType(format.StringList)
	return nestedList(blob, p, func(payload []byte) (string, error) {
		if !utf8.Valid(payload) {
			return "", errs.ErrInvalidUTF8
		}

		return string(payload), nil
	})
}

// nestedList implements the shared traversal for BytesList and StringList:
// resolve the outer header, then each inner header in turn, decoding a
// present inner payload with decode.
func nestedList[T any](blob []byte, p Property, decode func([]byte) (T, error)) (value []Optional[T], ok bool, err error) {
	outer, err := p.dataPosition(blob)
	if err != nil {
		return nil, false, err
	}

	if outer.IsNull() {
		return nil, false, nil
	}

	out := make([]Optional[T], outer.Length)

	for i := range out {
		innerAt := int(outer.Offset) + i*DataPositionSize

		inner, err := readDataPosition(blob, innerAt)
		if err != nil {
			return nil, false, err
		}

		if inner.IsNull() {
			out[i] = None[T]()
			continue
		}

		payload, err := inner.payload(blob, 1)
		if err != nil {
			return nil, false, err
		}

		decoded, err := decode(payload)
		if err != nil {
			return nil, false, fmt.Errorf("%w: element %d", err, i)
		}

		out[i] = Some(decoded)
	}

	return out, true, nil
}
