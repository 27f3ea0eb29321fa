// Package format defines the closed catalog of storable types used by the
// object codec, and the single predicate that distinguishes fixed-size
// ("static") types from variable-size ("dynamic") ones.
package format

// DataType enumerates every type an object blob can store. The set is
// closed: adding a variant requires updating IsDynamic and every switch in
// the object package that dispatches on it.
type DataType uint8

const (
	// Bool is a single tri-state byte: 0x00 false, 0x01 true, anything
	// else null. See object.Property.Bool.
	Bool DataType = iota + 1
	// Int is a 4-byte little-endian signed integer. i32::MIN is null.
	Int
	// Float is a 4-byte IEEE-754 binary32. Any NaN is null.
	Float
	// Long is an 8-byte little-endian signed integer. i64::MIN is null.
	Long
	// Double is an 8-byte IEEE-754 binary64. Any NaN is null.
	Double

	// String is a UTF-8 byte payload addressed by a DataPosition header.
	String
	// Bytes is a raw byte payload addressed by a DataPosition header.
	Bytes
	// IntList is a payload of 4-byte little-endian signed integers.
	IntList
	// LongList is a payload of 8-byte little-endian signed integers.
	LongList
	// FloatList is a payload of 4-byte IEEE-754 binary32 values.
	FloatList
	// DoubleList is a payload of 8-byte IEEE-754 binary64 values.
	DoubleList
	// BoolList is a payload of tri-state bytes, one per element.
	BoolList
	// StringList is a payload of nested DataPosition headers, one per
	// element, each independently nullable and addressing a UTF-8 payload.
	StringList
	// BytesList is a payload of nested DataPosition headers, one per
	// element, each independently nullable and addressing a raw payload.
	BytesList
)

// IsDynamic reports whether t is variable-size (addressed through a
// DataPosition header in the S3 zone) rather than stored inline in the
// static region.
func IsDynamic(t DataType) bool {
	switch t {
	case String, Bytes, IntList, LongList, FloatList, DoubleList, BoolList, StringList, BytesList:
		return true
	default:
		return false
	}
}

// IsValid reports whether t is one of the closed set of declared variants.
func IsValid(t DataType) bool {
	return t >= Bool && t <= BytesList
}

// Size returns the in-blob element size in bytes for a static type, or for
// one element of a fixed-width dynamic list. It returns 0 for String,
// Bytes, StringList, and BytesList, whose elements are not fixed-width (use
// the nested DataPosition size instead, see object.DataPositionSize).
func (t DataType) Size() int {
	switch t {
	case Bool, BoolList:
		return 1
	case Int, Float, IntList, FloatList:
		return 4
	case Long, Double, LongList, DoubleList:
		return 8
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (t DataType) String() string {
	switch t {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Long:
		return "Long"
	case Double:
		return "Double"
	case String:
		return "String"
	case Bytes:
		return "Bytes"
	case IntList:
		return "IntList"
	case LongList:
		return "LongList"
	case FloatList:
		return "FloatList"
	case DoubleList:
		return "DoubleList"
	case BoolList:
		return "BoolList"
	case StringList:
		return "StringList"
	case BytesList:
		return "BytesList"
	default:
		return "Unknown"
	}
}
