package schema

import (
	"fmt"
	"math"

	"github.com/vaultdb/objcodec/errs"
	"github.com/vaultdb/objcodec/format"
	"github.com/vaultdb/objcodec/internal/pool"
	"github.com/vaultdb/objcodec/object"
)

// Builder assembles one object blob at a time against a fixed Schema. It
// is the reference write-side implementation spec.md leaves as a contract
// only (§4.7, §6.2): every field starts out null, Set methods fill in
// values field by field, and Finish produces a blob satisfying every
// invariant in spec §3.6.
//
// A Builder is not safe for concurrent use and is not reusable after
// Finish.
type Builder struct {
	schema *Schema
	buf    *pool.ByteBuffer
	set    map[string]struct{}
	done   bool
}

// NewBuilder starts building a blob for s. The static region (S0-S3) is
// pre-sized and every field initialized to its type's null representation,
// so a Finish call with no Set calls at all produces a blob where every
// field reads as null.
func NewBuilder(s *Schema) *Builder {
	buf := pool.Get()
	buf.Reset()
	buf.ExtendOrGrow(s.staticSize)
	zero(buf.B)

	b := &Builder{schema: s, buf: buf, set: make(map[string]struct{}, len(s.fields))}

	for _, f := range s.fields {
		p := s.properties[f.Name]
		b.writeNullSentinel(p)
	}

	return b
}

func (b *Builder) writeNullSentinel(p object.Property) {
	switch p.DataType {
	case format.Int:
		endianEngine.PutUint32(b.buf.B[p.Offset:], uint32(math.MinInt32)) //nolint:gosec
	case format.Long:
		endianEngine.PutUint64(b.buf.B[p.Offset:], uint64(math.MinInt64)) //nolint:gosec
	case format.Float:
		endianEngine.PutUint32(b.buf.B[p.Offset:], math.Float32bits(float32(math.NaN())))
	case format.Double:
		endianEngine.PutUint64(b.buf.B[p.Offset:], math.Float64bits(math.NaN()))
	case format.Bool:
		b.buf.B[p.Offset] = 0x02
	default:
		// Dynamic: the static region was already zeroed wholesale in
		// NewBuilder, and a zero header is exactly a null DataPosition
		// (offset == 0). Nothing to do.
	}
}

func (b *Builder) property(name string, want format.DataType) object.Property {
	p, err := b.schema.Property(name)
	if err != nil {
		panic(err)
	}

	if p.DataType != want {
		panic(fmt.Errorf("%w: field %q declares %s, Set%s called", errs.ErrTypeMismatch, name, p.DataType, want))
	}

	if b.done {
		panic(errs.ErrBuilderClosed)
	}

	if _, already := b.set[name]; already {
		panic(fmt.Errorf("%w: %q", errs.ErrFieldAlreadySet, name))
	}

	b.set[name] = struct{}{}

	return p
}

// SetInt sets an Int field. value == math.MinInt32 is indistinguishable
// from null; callers that need to store that exact sentinel cannot (spec
// §3.3, "null encoding for primitives").
func (b *Builder) SetInt(name string, value int32) {
	p := b.property(name, format.Int)
	endianEngine.PutUint32(b.buf.B[p.Offset:], uint32(value)) //nolint:gosec
}

// SetLong sets a Long field.
func (b *Builder) SetLong(name string, value int64) {
	p := b.property(name, format.Long)
	endianEngine.PutUint64(b.buf.B[p.Offset:], uint64(value)) //nolint:gosec
}

// SetFloat sets a Float field. Passing NaN stores null, matching IsNull's
// "any NaN" rule.
func (b *Builder) SetFloat(name string, value float32) {
	p := b.property(name, format.Float)
	endianEngine.PutUint32(b.buf.B[p.Offset:], math.Float32bits(value))
}

// SetDouble sets a Double field. Passing NaN stores null.
func (b *Builder) SetDouble(name string, value float64) {
	p := b.property(name, format.Double)
	endianEngine.PutUint64(b.buf.B[p.Offset:], math.Float64bits(value))
}

// SetBool sets a Bool field to its canonical 0x00/0x01 encoding. Use
// SetBoolNull to store the tri-state null instead.
func (b *Builder) SetBool(name string, value bool) {
	p := b.property(name, format.Bool)
	if value {
		b.buf.B[p.Offset] = 0x01
	} else {
		b.buf.B[p.Offset] = 0x00
	}
}

// SetBoolNull explicitly stores the canonical null byte (0x02) for a Bool
// field. Fields are already null by default; this exists for symmetry and
// for re-asserting null on a field a caller decided not to populate.
func (b *Builder) SetBoolNull(name string) {
	p := b.property(name, format.Bool)
	b.buf.B[p.Offset] = 0x02
}

// appendPayload pads the buffer's tail to align, then appends data,
// returning the aligned start offset.
func (b *Builder) appendPayload(data []byte, align int) uint32 {
	cur := b.buf.Len()
	pad := (align - cur%align) % align
	if pad > 0 {
		b.buf.ExtendOrGrow(pad)
		zero(b.buf.B[cur:])
	}

	start := b.buf.Len()
	b.buf.ExtendOrGrow(len(data))
	copy(b.buf.B[start:], data)

	return uint32(start) //nolint:gosec
}

// zero clears a freshly-extended region of a pooled buffer, whose backing
// array is not guaranteed zeroed on reuse. Zeroing padding keeps blobs
// built from the same field values byte-identical regardless of what a
// pooled buffer previously held (spec §9, "Open question — trailing
// padding").
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func (b *Builder) writeHeader(p object.Property, offset uint32, length int) {
	endianEngine.PutUint32(b.buf.B[p.Offset:], offset)
	endianEngine.PutUint32(b.buf.B[p.Offset+4:], uint32(length)) //nolint:gosec
}

// SetString stores a UTF-8 string. An empty string is stored as a present,
// zero-length payload, distinct from never calling SetString at all (which
// leaves the field null).
func (b *Builder) SetString(name, value string) {
	p := b.property(name, format.String)

	payload := []byte(value)
	offset := b.placeNonEmptyPayload(payload, 1)
	b.writeHeader(p, offset, len(payload))
}

// SetBytes stores a raw byte payload.
func (b *Builder) SetBytes(name string, value []byte) {
	p := b.property(name, format.Bytes)
	offset := b.placeNonEmptyPayload(value, 1)
	b.writeHeader(p, offset, len(value))
}

// placeNonEmptyPayload appends data if non-empty, but for an empty payload
// still reserves one placeholder byte and returns its in-bounds offset: a
// DataPosition is null iff offset == 0 (spec §3.2), so a present empty
// list/string must neither reuse offset 0 nor point past the blob.
// Alignment does not matter for a zero-length payload since the typed
// reinterpretation path never dereferences it.
func (b *Builder) placeNonEmptyPayload(data []byte, align int) uint32 {
	if len(data) == 0 {
		return b.appendPayload([]byte{0}, 1)
	}

	return b.appendPayload(data, align)
}

// SetIntList stores a list of Int values, reinterpreted without copying by
// readers whose host matches the blob's little-endian layout.
func (b *Builder) SetIntList(name string, values []int32) {
	p := b.property(name, format.IntList)
	payload := make([]byte, len(values)*4)

	for i, v := range values {
		endianEngine.PutUint32(payload[i*4:], uint32(v)) //nolint:gosec
	}

	offset := b.placeNonEmptyPayload(payload, 4)
	b.writeHeader(p, offset, len(values))
}

// SetLongList stores a list of Long values.
func (b *Builder) SetLongList(name string, values []int64) {
	p := b.property(name, format.LongList)
	payload := make([]byte, len(values)*8)

	for i, v := range values {
		endianEngine.PutUint64(payload[i*8:], uint64(v)) //nolint:gosec
	}

	offset := b.placeNonEmptyPayload(payload, 8)
	b.writeHeader(p, offset, len(values))
}

// SetFloatList stores a list of Float values.
func (b *Builder) SetFloatList(name string, values []float32) {
	p := b.property(name, format.FloatList)
	payload := make([]byte, len(values)*4)

	for i, v := range values {
		endianEngine.PutUint32(payload[i*4:], math.Float32bits(v))
	}

	offset := b.placeNonEmptyPayload(payload, 4)
	b.writeHeader(p, offset, len(values))
}

// SetDoubleList stores a list of Double values.
func (b *Builder) SetDoubleList(name string, values []float64) {
	p := b.property(name, format.DoubleList)
	payload := make([]byte, len(values)*8)

	for i, v := range values {
		endianEngine.PutUint64(payload[i*8:], math.Float64bits(v))
	}

	offset := b.placeNonEmptyPayload(payload, 8)
	b.writeHeader(p, offset, len(values))
}

// SetBoolList stores a list of tri-state Optional[bool] elements, one byte
// each.
func (b *Builder) SetBoolList(name string, values []object.Optional[bool]) {
	p := b.property(name, format.BoolList)
	payload := make([]byte, len(values))

	for i, v := range values {
		switch {
		case !v.Valid:
			payload[i] = 0x02
		case v.Value:
			payload[i] = 0x01
		default:
			payload[i] = 0x00
		}
	}

	offset := b.placeNonEmptyPayload(payload, 1)
	b.writeHeader(p, offset, len(values))
}

// SetBytesList stores a list of independently-nullable byte payloads: the
// outer header addresses len(values) contiguous inner DataPosition
// records, and each present element's payload follows in the dynamic
// region (spec §3.6, "nested list headers").
func (b *Builder) SetBytesList(name string, values []object.Optional[[]byte]) {
	p := b.property(name, format.BytesList)
	setNestedList(b, p, values, func(v []byte) []byte { return v })
}

// SetStringList is SetBytesList's string-valued analogue.
func (b *Builder) SetStringList(name string, values []object.Optional[string]) {
	p := b.property(name, format.StringList)
	setNestedList(b, p, values, func(v string) []byte { return []byte(v) })
}

// setNestedList implements the shared write-side traversal for
// SetBytesList and SetStringList. It is a free function, not a method,
// because Go methods cannot carry their own type parameters.
func setNestedList[T any](b *Builder, p object.Property, values []object.Optional[T], encode func(T) []byte) {
	innerHeadersSize := len(values) * object.DataPositionSize
	innerStart := b.placeNonEmptyPayload(make([]byte, innerHeadersSize), 4)
	b.writeHeader(p, innerStart, len(values))

	for i, v := range values {
		innerOffset := int(innerStart) + i*object.DataPositionSize
		if !v.Valid {
			continue // already zeroed: a null inner DataPosition.
		}

		payload := encode(v.Value)
		elemOffset := b.placeNonEmptyPayload(payload, 1)
		endianEngine.PutUint32(b.buf.B[innerOffset:], elemOffset)
		endianEngine.PutUint32(b.buf.B[innerOffset+4:], uint32(len(payload))) //nolint:gosec
	}
}

// Finish pads the blob to a 4-byte total length (spec §6.1) and returns the
// completed bytes. The Builder must not be used afterward.
func (b *Builder) Finish() []byte {
	if b.done {
		panic(errs.ErrBuilderClosed)
	}

	b.done = true

	if pad := (4 - b.buf.Len()%4) % 4; pad > 0 {
		cur := b.buf.Len()
		b.buf.ExtendOrGrow(pad)
		zero(b.buf.B[cur:])
	}

	out := make([]byte, b.buf.Len())
	copy(out, b.buf.B)
	pool.Put(b.buf)
	b.buf = nil

	return out
}
