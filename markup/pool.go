package markup

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Output buffers are short-lived objects, one per reassembled document or
// rule example. To avoid repeated allocation of large buffers we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

const initialBufferSize = 4096

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return bytes.NewBuffer(make([]byte, 0, initialBufferSize)), nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns an empty buffer from the pool.
func borrowBuffer() *bytes.Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		tracer().Errorf("markup: cannot borrow buffer: %v", err)
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	}
	return o.(*bytes.Buffer)
}

// releaseBuffer clears buf and puts it back into the pool.
func releaseBuffer(buf *bytes.Buffer) {
	buf.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
