package ringbuf

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCapacity is returned by New for a negative capacity.
	ErrInvalidCapacity = errors.New("ringbuf: invalid capacity")

	// ErrTooLarge is returned by New when the backing region cannot be allocated.
	ErrTooLarge = errors.New("ringbuf: capacity too large")
)

// Buffer is a fixed-capacity circular byte buffer.
//
// A Buffer is not safe for concurrent use. Callers sharing one between
// goroutines must synchronize every call, as Pipe does.
type Buffer struct {
	data     []byte
	readPos  int
	writePos int
	unread   int
}

// New creates an empty buffer holding up to capacity bytes.
//
// A zero capacity is valid: every transfer on such a buffer moves 0 bytes.
func New(capacity int) (*Buffer, error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	data, err := allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer{data: data}, nil
}

// allocate turns the runtime's makeslice panic into ErrTooLarge.
// Running out of heap is fatal and is not recovered here.
func allocate(n int) (data []byte, err error) {
	defer func() {
		if recover() != nil {
			data, err = nil, errors.Wrapf(ErrTooLarge, "allocate %d bytes", n)
		}
	}()
	return make([]byte, n), nil
}

// Size returns the capacity of the buffer.
func (b *Buffer) Size() int {
	return len(b.data)
}

// IsEmpty reports whether the buffer holds no unread bytes.
func (b *Buffer) IsEmpty() bool {
	return b.unread == 0
}

// IsFull reports whether no more bytes can be written.
func (b *Buffer) IsFull() bool {
	return b.unread == len(b.data)
}

// BytesToRead returns the number of unread bytes.
func (b *Buffer) BytesToRead() int {
	return b.unread
}

// BytesToWrite returns the free space in bytes.
func (b *Buffer) BytesToWrite() int {
	return len(b.data) - b.unread
}

// Read copies up to len(dst) unread bytes into dst and returns how many were copied.
// It returns 0 when the buffer is empty or dst is empty.
func (b *Buffer) Read(dst []byte) int {
	toRead := min(b.unread, len(dst))
	if toRead == 0 {
		return 0
	}

	firstChunk := min(toRead, len(b.data)-b.readPos)
	copy(dst[:firstChunk], b.data[b.readPos:b.readPos+firstChunk])
	copy(dst[firstChunk:toRead], b.data[:toRead-firstChunk])

	b.readPos = b.wrap(b.readPos + toRead)
	b.unread -= toRead
	return toRead
}

// Write copies as much of src as fits into the buffer and returns how many bytes were copied.
// It returns 0 when the buffer is full or src is empty.
func (b *Buffer) Write(src []byte) int {
	toWrite := min(len(b.data)-b.unread, len(src))
	if toWrite == 0 {
		return 0
	}

	firstChunk := min(toWrite, len(b.data)-b.writePos)
	copy(b.data[b.writePos:b.writePos+firstChunk], src[:firstChunk])
	copy(b.data[:toWrite-firstChunk], src[firstChunk:toWrite])

	b.writePos = b.wrap(b.writePos + toWrite)
	b.unread += toWrite
	return toWrite
}

// wrap maps a cursor that moved at most one capacity forward back into [0, capacity).
func (b *Buffer) wrap(pos int) int {
	if pos >= len(b.data) {
		return pos - len(b.data)
	}
	return pos
}
