package pool

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	got := bb.Bytes()

	assert.Equal(t, []byte("hello"), got)
	// Same underlying slice, no copy.
	assert.True(t, &bb.B[0] == &got[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Len(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)

	assert.Equal(t, 0, bb.Len(), "empty buffer should have zero length")

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len(), "buffer length should match data")

	bb.B = append(bb.B, []byte(" data")...)
	assert.Equal(t, 9, bb.Len(), "buffer length should update after append")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.B)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("hello world"), bb.B)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, []byte("0123456789abcdef")...)

	bb.Grow(100)

	assert.GreaterOrEqual(t, cap(bb.B)-len(bb.B), 100, "Grow must make room for the request")
	assert.Equal(t, []byte("0123456789abcdef"), bb.B, "Grow must preserve contents")
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.ReadFrom(strings.NewReader("measurement file bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(22), n)
	assert.Equal(t, []byte("measurement file bytes"), bb.Bytes())
}

func TestByteBuffer_ReadFrom_Appends(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)
	bb.B = append(bb.B, []byte("head ")...)

	n, err := bb.ReadFrom(strings.NewReader("tail"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, []byte("head tail"), bb.Bytes())
}

func TestByteBuffer_ReadFrom_Large(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 3*FileBufferDefaultSize+17)
	bb := NewByteBuffer(FileBufferDefaultSize)

	n, err := bb.ReadFrom(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, bb.Bytes())
}

func TestByteBuffer_ReadFrom_Empty(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)

	n, err := bb.ReadFrom(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, 0, bb.Len())
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}

	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

func TestByteBuffer_ReadFrom_Error(t *testing.T) {
	bb := NewByteBuffer(FileBufferDefaultSize)
	r := &failingReader{data: []byte("partial"), err: io.ErrClosedPipe}

	n, err := bb.ReadFrom(r)
	require.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, []byte("partial"), bb.Bytes(), "bytes read before the failure are kept")
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(128, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, bb.Cap())

	bb.B = append(bb.B, []byte("recycled content")...)
	p.Put(bb)

	// The recycled buffer comes back empty.
	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len())
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(128, 1024)

	require.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(128, 256)

	bb := p.Get()
	bb.B = make([]byte, 0, 512)
	p.Put(bb)

	// The oversized buffer was dropped, so a fresh one comes back at the
	// pool's default capacity.
	again := p.Get()
	assert.Equal(t, 128, again.Cap())
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	const numGoroutines = 16

	p := NewByteBufferPool(FileBufferDefaultSize, FileBufferMaxThreshold)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				bb.B = append(bb.B, []byte("spectrum")...)
				p.Put(bb)
			}
		}()
	}
	wg.Wait()
}

func TestGetFileBuffer(t *testing.T) {
	bb := GetFileBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, 0x0A, 0x0A, 0xFE, 0xFE)
	PutFileBuffer(bb)

	again := GetFileBuffer()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffer must be reset on Put")
	PutFileBuffer(again)
}
