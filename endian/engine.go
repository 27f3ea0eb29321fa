// Package endian provides the byte order engine used to read and write
// multi-byte scalars in an object blob.
//
// The object blob format is little-endian only (see spec Non-goals: "endian
// portability beyond little-endian" is explicitly out of scope), so this
// package exposes a single EndianEngine rather than a choice of two. It
// also exposes a host-endianness probe, used by the object package to
// decide whether a dynamic payload may be reinterpreted in place (only
// safe when the host itself is little-endian) or must be decoded value by
// value.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations. binary.LittleEndian satisfies it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Engine is the blob format's fixed byte order.
var Engine EndianEngine = binary.LittleEndian

// CheckEndianness determines the host's native byte order by encoding a
// probe value through binary.NativeEndian and comparing the result against
// the little-endian encoding of the same value, rather than reaching for
// unsafe.Pointer tricks.
func CheckEndianness() binary.ByteOrder {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)

	var wantLittle [2]byte
	binary.LittleEndian.PutUint16(wantLittle[:], 0x0102)

	if probe == wantLittle {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// IsNativeLittleEndian reports whether the host's native byte order is
// little-endian. The object package's zero-copy list reinterpretation is
// only valid when this is true; on a big-endian host, typed lists must be
// decoded element by element instead.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}
