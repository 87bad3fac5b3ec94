package logq

import (
	"bytes"
	"sync"
)

// maxPooledBufferSize is the capacity above which buffers are not
// returned to the pool, so one oversized entry cannot pin memory.
const maxPooledBufferSize = 32 * 1024

// BufferPool recycles the byte buffers used to format entries, keeping
// the per-entry allocation cost of the writer loop near zero.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a pool whose buffers start at capacity, which
// should cover a typical formatted entry.
func NewBufferPool(capacity int) *BufferPool {
	bp := &BufferPool{}
	bp.pool = sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 0, capacity))
		},
	}
	return bp
}

// Get returns a clean buffer ready for use. The caller must hand it
// back with Put.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf, ok := bp.pool.Get().(*bytes.Buffer)
	if !ok {
		return &bytes.Buffer{}
	}
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool. Buffers that grew past
// maxPooledBufferSize are discarded.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bp.pool.Put(buf)
}
