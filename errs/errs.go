// Package errs defines the sentinel errors shared across the codec, schema,
// and builder packages.
//
// Errors fall into two disjoint classes. Programmer errors (calling a
// getter against a property of the wrong type, or calling a dynamic-only
// helper on a static property) are contract violations: call sites should
// never trigger them in correct code, and the packages that detect them
// panic with a message wrapping the matching sentinel rather than return a
// silently-ignorable error. Corruption errors (an out-of-range header, a
// misaligned payload, invalid UTF-8) are returned as errors wrapping the
// matching sentinel, since they can originate from untrusted or hand-built
// bytes the caller did not construct itself.
package errs

import "errors"

// Programmer errors: contract violations between a Property and the
// accessor called on it. The object accessors wrap these into a panic;
// schema.New returns ErrUnknownDataType as an error for a field declaring a
// type outside the closed set.
var (
	// ErrTypeMismatch indicates a getter was called against a Property
	// whose declared DataType does not match the getter's type.
	ErrTypeMismatch = errors.New("objcodec: property data type mismatch")

	// ErrStaticOnly indicates a static-only accessor (e.g. StaticRaw) was
	// called against a dynamic Property.
	ErrStaticOnly = errors.New("objcodec: accessor requires a static property")

	// ErrDynamicOnly indicates a dynamic-only accessor (e.g. a DataPosition
	// read) was called against a static Property.
	ErrDynamicOnly = errors.New("objcodec: accessor requires a dynamic property")

	// ErrUnknownDataType indicates a DataType value outside the closed set.
	ErrUnknownDataType = errors.New("objcodec: unknown data type")

	// ErrMisalignedOffset indicates a dynamic Property's offset into the
	// blob is not 4-byte aligned, as required for reading its DataPosition.
	ErrMisalignedOffset = errors.New("objcodec: property offset is not 4-byte aligned")
)

// Corruption errors: the blob bytes themselves are inconsistent with the
// schema that produced them. These are returned as errors, never panicked.
var (
	// ErrPositionOutOfRange indicates a DataPosition's offset/length
	// addresses bytes outside the blob.
	ErrPositionOutOfRange = errors.New("objcodec: data position out of range")

	// ErrMisalignedPayload indicates a dynamic payload's starting address
	// is not a multiple of its element type's alignment.
	ErrMisalignedPayload = errors.New("objcodec: payload is misaligned for its element type")

	// ErrInvalidUTF8 indicates a String payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("objcodec: string payload is not valid UTF-8")

	// ErrTruncatedBlob indicates the blob is shorter than the static
	// region or a header the schema requires.
	ErrTruncatedBlob = errors.New("objcodec: blob is shorter than the schema requires")
)

// Schema and builder errors.
var (
	// ErrDuplicateField indicates a schema was constructed with two
	// fields sharing the same name.
	ErrDuplicateField = errors.New("objcodec: duplicate field name in schema")

	// ErrSchemaMismatch indicates a field name not declared in a schema was
	// looked up: Schema.Property returns it, and a Builder asked to set such
	// a field panics with it. Getters do not check which Schema a Property
	// came from.
	ErrSchemaMismatch = errors.New("objcodec: property does not belong to this schema")

	// ErrBuilderClosed indicates a Builder method was called after
	// Finish() already consumed the builder.
	ErrBuilderClosed = errors.New("objcodec: builder already finished")

	// ErrFieldAlreadySet indicates a dynamic field was written more than
	// once to the same Builder instance.
	ErrFieldAlreadySet = errors.New("objcodec: field already set on this builder")
)
