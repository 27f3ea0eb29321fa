// Package objcodec implements the binary object blob format used by an
// embedded document store: a schema-driven static region of fixed-size
// fields followed by a dynamic region of variable-length payloads, read
// back through zero-copy typed accessors.
//
// # Core Features
//
//   - Static fields packed by descending alignment (Bool, Int/Float,
//     Long/Double) to minimize padding
//   - Dynamic fields (strings, byte slices, lists) addressed through
//     8-byte DataPosition headers
//   - Null values encoded as in-domain sentinels (i32::MIN, NaN, a
//     tri-state byte) rather than an out-of-band presence bitmap
//   - Fixed-width list payloads reinterpreted in place via unsafe.Slice,
//     with an explicit alignment check guarding every zero-copy read
//   - Independently-nullable elements inside StringList/BytesList via
//     nested DataPosition headers
//
// # Basic Usage
//
// Declaring a schema and building a blob:
//
//	s, _ := schema.New([]schema.Field{
//	    {Name: "active", Type: format.Bool},
//	    {Name: "count", Type: format.Int},
//	    {Name: "name", Type: format.String},
//	})
//
//	b := schema.NewBuilder(s)
//	b.SetBool("active", true)
//	b.SetInt("count", 42)
//	b.SetString("name", "widget")
//	blob := b.Finish()
//
// Reading fields back out of the blob:
//
//	countProp, _ := s.Property("count")
//	if null, _ := countProp.IsNull(blob); !null {
//	    fmt.Println(countProp.Int(blob))
//	}
//
// # Package Structure
//
// format defines the closed DataType catalog. object defines Property,
// DataPosition, and every typed accessor — the part of this codec every
// implementation must agree on bit-for-bit. schema is the reference
// write side: it computes a Schema's zone layout once and exposes
// Builder so the object accessors have a correct blob to read. Use
// object and schema directly; this file only documents how they fit
// together.
package objcodec
