package pool

import (
	"io"
	"sync"
)

// Buffer size classes for document buffers obtained from the default pools.
const (
	DocumentBufferDefaultSize       = 1024 * 16       // 16KiB
	DocumentBufferMaxThreshold      = 1024 * 128      // 128KiB
	LargeDocumentBufferDefaultSize  = 1024 * 1024     // 1MiB
	LargeDocumentBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// readChunk is the minimum free space ReadFrom ensures before each read.
const readChunk = 4096

// ByteBuffer is a reusable byte slice holding one document.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers (<64KB), grow by DocumentBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DocumentBufferDefaultSize
	if cap(bb.B) > 4*DocumentBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ReadFrom appends everything read from r until io.EOF, growing the buffer
// with the Grow policy.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(readChunk)
		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	documentPool      = NewByteBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)
	largeDocumentPool = NewByteBufferPool(LargeDocumentBufferDefaultSize, LargeDocumentBufferMaxThreshold)
)

// GetDocumentBuffer retrieves a buffer able to hold sizeHint bytes, taken from
// the large document pool when sizeHint exceeds DocumentBufferMaxThreshold.
func GetDocumentBuffer(sizeHint int) *ByteBuffer {
	var bb *ByteBuffer
	if sizeHint > DocumentBufferMaxThreshold {
		bb = largeDocumentPool.Get()
	} else {
		bb = documentPool.Get()
	}
	bb.Grow(sizeHint)

	return bb
}

// PutDocumentBuffer returns a buffer to the pool matching its capacity.
func PutDocumentBuffer(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if cap(bb.B) > DocumentBufferMaxThreshold {
		largeDocumentPool.Put(bb)
		return
	}
	documentPool.Put(bb)
}
