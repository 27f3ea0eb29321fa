package object

import "github.com/vaultdb/objcodec/endian"

// endianEngine is the blob format's fixed little-endian byte order,
// threaded through every static and dynamic getter in this package.
var endianEngine = endian.Engine
