// Package pool provides a growable byte buffer used by schema.Builder to
// assemble an object blob without per-write reallocation, and a sync.Pool
// of such buffers so a caller building many blobs in sequence does not pay
// an allocation per blob.
//
// schema.Builder checks out exactly one buffer per blob and returns it on
// Finish, so there is only ever one buffer shape in play here: a blob's
// size, unlike a long-running metric stream, is bounded by one schema's
// static region plus that schema's dynamic field payloads. That rules out
// the two-tier per-size-class pool a streaming columnar encoder needs
// (one pool for a single series, a much larger one for a batch of them);
// a single pool sized for "one record" is the whole problem.
package pool

import "sync"

// BufferDefaultSize is the starting capacity for a freshly allocated
// buffer, sized for a typical small object blob (most static regions plus
// a handful of short strings/lists fit without a single Grow call).
const BufferDefaultSize = 1024

// BufferMaxThreshold is the largest buffer the pool will retain; a blob
// whose dynamic payloads pushed it past this size is discarded on Put
// rather than kept around to serve the common case.
const BufferMaxThreshold = 1024 * 128

// ByteBuffer is a growable byte slice that grows by exactly what is asked
// for (see Grow), mirroring the
// subset of bytes.Buffer's API a binary encoder needs: direct slice access
// for in-place PutUintN calls, plus Grow/Extend for bulk pre-allocation.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, retaining its allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently in the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Slice returns buf[start:end]; end may reach past Len up to the buffer's
// capacity. The buffer's own length is not changed. Panics if the indices
// are invalid.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: ByteBuffer.Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n without touching its
// contents. Panics if n is out of the buffer's capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: ByteBuffer.SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend grows the buffer's length by n bytes if the existing capacity
// allows it, reporting whether it did so.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the
// underlying array first if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Every caller into Grow is schema.Builder making one write of a known
// size (the static region, one alignment pad, or one dynamic field's
// payload), so requiredBytes is always the exact size of that one write —
// never a guess at how
// much more a long append loop will need later. There is no future demand
// to amortize for within a single blob, so Grow allocates exactly
// requiredBytes rather than doubling or reserving a fixed headroom chunk;
// the amortization instead comes from reusing buffers across Builder
// lifetimes via Get/Put, which converges each schema's buffers to its
// actual static-plus-dynamic size after the first blob or two.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+requiredBytes)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It implements
// io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// bufferPool pools ByteBuffers, discarding ones that grew past
// BufferMaxThreshold rather than retaining them.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *bufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

func (p *bufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = newBufferPool(BufferDefaultSize, BufferMaxThreshold)

// Get retrieves a ByteBuffer from the default pool.
func Get() *ByteBuffer {
	return defaultPool.Get()
}

// Put returns a ByteBuffer to the default pool for reuse.
func Put(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
