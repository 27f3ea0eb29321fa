// Package schema turns an ordered list of (name, DataType) fields into the
// zone layout of §3.1 and a set of frozen object.Property descriptors, one
// per field. It is the single entry point that fixes a blob's static
// layout once; object.Property values it hands out are safe to share by
// reference across every read of every blob built against this Schema.
package schema

import (
	"fmt"

	"github.com/vaultdb/objcodec/errs"
	"github.com/vaultdb/objcodec/format"
	"github.com/vaultdb/objcodec/object"
)

// Field is one declared (name, DataType) pair in schema order.
type Field struct {
	Name string
	Type format.DataType
}

// dynamicOrder fixes the order dynamic-field headers are laid out within
// S3, grouping by kind (spec §3.1). StringList and BytesList are not named
// in the zone table but are dynamic headers of the same 8-byte shape, so
// they are placed after Bytes, preserving the named ordering for the
// kinds spec.md does enumerate.
var dynamicOrder = []format.DataType{
	format.IntList, format.LongList, format.FloatList, format.DoubleList,
	format.BoolList, format.String, format.Bytes, format.StringList, format.BytesList,
}

// Schema is the immutable, frozen layout of one collection's blobs.
type Schema struct {
	fields     []Field
	properties map[string]object.Property

	// staticSize is the byte offset where S4 (dynamic payloads) begins:
	// the end of S3, i.e. the fixed size every blob built against this
	// Schema starts with before any payload is appended.
	staticSize int
}

// New computes the zone layout for fields and returns the frozen Schema.
// Field order only affects layout within a zone (spec §3.1's "in schema
// order within each kind"); it never affects correctness of reads.
func New(fields []Field) (*Schema, error) {
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if !format.IsValid(f.Type) {
			return nil, fmt.Errorf("%w: field %q declares type %d", errs.ErrUnknownDataType, f.Name, f.Type)
		}

		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateField, f.Name)
		}

		seen[f.Name] = struct{}{}
	}

	properties := make(map[string]object.Property, len(fields))
	offset := 0

	// S0: Bool, 1 byte each, no padding.
	for _, f := range fields {
		if f.Type == format.Bool {
			properties[f.Name] = object.New(f.Type, offset)
			offset++
		}
	}

	// S1: Int, Float, 4 bytes each.
	offset = alignUp(offset, 4)
	for _, f := range fields {
		if f.Type == format.Int || f.Type == format.Float {
			properties[f.Name] = object.New(f.Type, offset)
			offset += 4
		}
	}

	// S2: Long, Double, 8 bytes each.
	offset = alignUp(offset, 8)
	for _, f := range fields {
		if f.Type == format.Long || f.Type == format.Double {
			properties[f.Name] = object.New(f.Type, offset)
			offset += 8
		}
	}

	// S3: dynamic headers, grouped by kind in dynamicOrder.
	offset = alignUp(offset, 4)
	for _, kind := range dynamicOrder {
		for _, f := range fields {
			if f.Type == kind {
				properties[f.Name] = object.New(f.Type, offset)
				offset += object.DataPositionSize
			}
		}
	}

	return &Schema{fields: fields, properties: properties, staticSize: offset}, nil
}

func alignUp(n, align int) int {
	if rem := n % align; rem != 0 {
		return n + align - rem
	}

	return n
}

// Property returns the frozen descriptor for a declared field name.
func (s *Schema) Property(name string) (object.Property, error) {
	p, ok := s.properties[name]
	if !ok {
		return object.Property{}, fmt.Errorf("%w: %q", errs.ErrSchemaMismatch, name)
	}

	return p, nil
}

// Fields returns the declared fields in schema order. The returned slice
// is a copy; callers may not mutate the Schema through it.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// StaticSize returns the size in bytes of S0 through S3: every blob built
// against this Schema starts with exactly this many bytes before the
// dynamic payload region (S4) begins.
func (s *Schema) StaticSize() int {
	return s.staticSize
}
