package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, bb.Cap())
	assert.Empty(t, bb.Bytes())
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.Grow(5)
	bb.MustWrite([]byte("hello"))

	assert.Equal(t, 5, bb.Len())
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.Grow(6)
	bb.MustWrite([]byte(" world"))
	assert.Equal(t, "hello world", string(bb.Bytes()))
}

func TestByteBuffer_Grow_NoReallocWhenCapacitySufficient(t *testing.T) {
	bb := NewByteBuffer(32)
	before := bb.Cap()
	bb.Grow(10)
	assert.Equal(t, before, bb.Cap())
}

func TestByteBuffer_Grow_SmallBufferFixedChunk(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.Grow(1)
	assert.GreaterOrEqual(t, bb.Cap(), DefaultBufferSize)
}

func TestByteBuffer_Grow_LargeBufferProportional(t *testing.T) {
	bb := NewByteBuffer(growThreshold + 1)
	bb.B = bb.B[:bb.Cap()] // simulate a full buffer
	before := bb.Cap()

	bb.Grow(1)
	assert.Greater(t, bb.Cap(), before)
	assert.GreaterOrEqual(t, bb.Cap()-before, before/4)
}

func TestByteBuffer_Grow_RequiredBytesDominatesSmallChunk(t *testing.T) {
	bb := NewByteBuffer(0)
	need := DefaultBufferSize * 2
	bb.Grow(need)
	assert.GreaterOrEqual(t, bb.Cap(), need)
}

func TestByteBuffer_MultipleAppendsAccumulate(t *testing.T) {
	bb := NewByteBuffer(4)
	for i := 0; i < 100; i++ {
		bb.Grow(1)
		bb.MustWrite([]byte{byte(i)})
	}

	assert.Equal(t, 100, bb.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, byte(i), bb.Bytes()[i])
	}
}
