package schema

import "github.com/vaultdb/objcodec/endian"

// endianEngine is the blob format's fixed little-endian byte order.
var endianEngine = endian.Engine
