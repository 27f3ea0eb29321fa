// Package object defines Property, the (data_type, offset) addressing unit
// inside an object blob, and the typed accessors that read values out of a
// blob without allocation. It is the CORE described in spec.md: the object
// buffer format, the property descriptor, all typed getters (including
// list reinterpretation), and the null predicate.
//
// Every accessor is a pure function of (Property, []byte): the layer holds
// no state, never mutates the blob, and never suspends. Any number of
// readers may operate on the same blob concurrently.
package object

import (
	"fmt"
	"math"

	"github.com/vaultdb/objcodec/errs"
	"github.com/vaultdb/objcodec/format"
)

// Property is a (data_type, offset) descriptor identifying one field within
// blobs of a given schema. It is immutable once constructed; schema.Schema
// is the only supported way to construct one with an offset that actually
// points into the correct zone, but the New constructor below is
// exposed for tests and for callers who manage offsets themselves.
type Property struct {
	DataType format.DataType
	Offset   int
}

// New constructs a Property. Callers are responsible for ensuring Offset
// addresses the correct zone for DataType (see spec §3.6); schema.Schema
// does this automatically.
func New(dataType format.DataType, offset int) Property {
	return Property{DataType: dataType, Offset: offset}
}

func (p Property) requireType(want format.DataType) {
	if p.DataType != want {
		panic(fmt.Errorf("%w: accessor requires %s, property declares %s", errs.ErrTypeMismatch, want, p.DataType))
	}
}

func (p Property) requireDynamic() {
	if !format.IsDynamic(p.DataType) {
		panic(fmt.Errorf("%w: property declares static type %s", errs.ErrDynamicOnly, p.DataType))
	}
}

// --- Static getters (spec §4.3) ---
//
// Each getter asserts the property's declared type, reads exactly
// sizeof(type) bytes at Offset, and returns the raw little-endian value
// unchanged. Null sentinels are not translated here; use IsNull.

// Int reads a 4-byte little-endian signed integer. math.MinInt32 is the null
// sentinel (see IsNull), returned here unchanged.
func (p Property) Int(blob []byte) int32 {
	p.requireType(format.Int)
	return int32(readUint32(blob, p.Offset)) //nolint:gosec
}

// Long reads an 8-byte little-endian signed integer. math.MinInt64 is the
// null sentinel, returned here unchanged.
func (p Property) Long(blob []byte) int64 {
	p.requireType(format.Long)
	return int64(readUint64(blob, p.Offset)) //nolint:gosec
}

// Float reads a 4-byte IEEE-754 binary32. Any NaN is the null sentinel,
// returned here unchanged.
func (p Property) Float(blob []byte) float32 {
	p.requireType(format.Float)
	return math.Float32frombits(readUint32(blob, p.Offset))
}

// Double reads an 8-byte IEEE-754 binary64. Any NaN is the null sentinel,
// returned here unchanged.
func (p Property) Double(blob []byte) float64 {
	p.requireType(format.Double)
	return math.Float64frombits(readUint64(blob, p.Offset))
}

// Bool decodes the tri-state byte at Offset: 0x00 -> (false, true),
// 0x01 -> (true, true), anything else -> (false, false). The second
// return value reports presence, matching the comma-ok idiom used
// elsewhere for "found" lookups; ok==false means the property is null.
func (p Property) Bool(blob []byte) (value bool, ok bool) {
	p.requireType(format.Bool)

	switch blob[p.Offset] {
	case 0x00:
		return false, true
	case 0x01:
		return true, true
	default:
		return false, false
	}
}

// StaticRaw returns the exact byte slice backing a static property's value
// (1, 4, or 8 bytes depending on DataType), for use by index keys and
// comparators that must be byte-identical to on-disk order (spec §4.6).
func (p Property) StaticRaw(blob []byte) []byte {
	if format.IsDynamic(p.DataType) {
		panic(fmt.Errorf("%w: property declares dynamic type %s", errs.ErrStaticOnly, p.DataType))
	}

	size := p.DataType.Size()

	return blob[p.Offset : p.Offset+size]
}

// DynamicRaw returns the concatenation of the 8 DataPosition header bytes
// for a dynamic property, as they appear in the blob. This resolves the
// "dynamic raw view" open question from spec §9: the natural analogue of
// StaticRaw for a dynamic property is its header, not its (possibly much
// larger, possibly absent) payload, since addressing/index code compares
// headers, not payload contents.
func (p Property) DynamicRaw(blob []byte) []byte {
	p.requireDynamic()
	return blob[p.Offset : p.Offset+DataPositionSize]
}

// IsNull is the single source of truth for "is this property absent in
// this blob" (spec §4.5). Callers must not invent their own presence
// check.
//
// A non-nil error means the blob is too short to hold the property's
// header at all — a corruption error (spec §7), not an answer of "null" —
// and must surface to the caller rather than be reported as absence.
func (p Property) IsNull(blob []byte) (bool, error) {
	switch p.DataType {
	case format.Int:
		return p.Int(blob) == math.MinInt32, nil
	case format.Long:
		return p.Long(blob) == math.MinInt64, nil
	case format.Float:
		return math.IsNaN(float64(p.Float(blob))), nil
	case format.Double:
		return math.IsNaN(p.Double(blob)), nil
	case format.Bool:
		_, ok := p.Bool(blob)
		return !ok, nil
	default:
		pos, err := p.dataPosition(blob)
		if err != nil {
			return false, err
		}

		return pos.IsNull(), nil
	}
}

// Length returns the number of elements a dynamic property's payload holds,
// or false if the property is null. It is a dispatch shortcut that never
// resolves the payload itself (spec §4.4 get_length).
//
// A non-nil error means the header itself could not be read (spec §7,
// corruption) and must surface to the caller rather than be reported as
// absence.
func (p Property) Length(blob []byte) (int, bool, error) {
	p.requireDynamic()

	pos, err := p.dataPosition(blob)
	if err != nil {
		return 0, false, err
	}

	if pos.IsNull() {
		return 0, false, nil
	}

	return int(pos.Length), true, nil
}

// dataPosition reads and returns the DataPosition header at Offset,
// enforcing the 4-byte alignment precondition from spec §4.2.
func (p Property) dataPosition(blob []byte) (DataPosition, error) {
	if p.Offset%4 != 0 {
		panic(fmt.Errorf("%w: offset %d", errs.ErrMisalignedOffset, p.Offset))
	}

	return readDataPosition(blob, p.Offset)
}

func readUint32(blob []byte, offset int) uint32 {
	return endianEngine.Uint32(blob[offset : offset+4])
}

func readUint64(blob []byte, offset int) uint64 {
	return endianEngine.Uint64(blob[offset : offset+8])
}
