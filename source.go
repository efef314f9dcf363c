package getresult

import (
	"bytes"
	"sync"

	"github.com/viant/getresult/internal/compress"
	"github.com/viant/getresult/token"
)

// maxPooledBuffer caps buffers returned to the pool.
const maxPooledBuffer = 64 * 1024

var bufferPool = sync.Pool{New: func() interface{} { return bytes.NewBuffer(make([]byte, 0, 256)) }}

func acquireBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bufferPool.Put(buf)
}

// captureSource copies the object at the cursor into an owned byte slice.
// The scratch buffer goes back to the pool on every path.
func captureSource(c token.Cursor, compressed bool) ([]byte, error) {
	buf := acquireBuffer()
	defer releaseBuffer(buf)
	if err := token.Copy(buf, c); err != nil {
		return nil, err
	}
	if compressed {
		return compress.Encode(buf.Bytes()), nil
	}
	return bytes.Clone(buf.Bytes()), nil
}
