package schema

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit hash of the ordered (name, DataType) field
// list, using xxhash64. It is not a format version and is not stored in any
// blob: it is a diagnostic a caller can use to confirm that a Schema value
// it holds still matches the one a blob was built with, before trusting the
// Property offsets derived from it.
func (s *Schema) Fingerprint() uint64 {
	d := xxhash.New()

	for _, f := range s.fields {
		_, _ = d.WriteString(f.Name)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(strconv.Itoa(int(f.Type)))
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}
