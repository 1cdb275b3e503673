package ringbuf

import (
	"io"

	"github.com/pkg/errors"
)

var (
	errInvalidRead  = errors.New("ringbuf: reader returned invalid count")
	errInvalidWrite = errors.New("ringbuf: writer returned invalid count")
)

// Fill reads from r directly into the free space of the buffer.
//
// It stops when the buffer is full, when r returns fewer bytes than offered, or when
// r returns an error. It returns the number of bytes added and r's error, io.EOF included.
func (b *Buffer) Fill(r io.Reader) (int, error) {
	var total int
	for !b.IsFull() {
		p := b.WritableSlice()
		n, err := r.Read(p)
		if n < 0 || n > len(p) {
			return total, errInvalidRead
		}
		total += b.AdvanceWrite(n)
		if err != nil {
			return total, err
		}
		if n < len(p) {
			return total, nil
		}
	}
	return total, nil
}

// Drain writes the unread bytes of the buffer to w until the buffer is empty or w fails.
// It returns the number of bytes consumed.
func (b *Buffer) Drain(w io.Writer) (int, error) {
	var total int
	for !b.IsEmpty() {
		p := b.ReadableSlice()
		n, err := w.Write(p)
		if n < 0 || n > len(p) {
			n = 0
			if err == nil {
				err = errInvalidWrite
			}
		}
		total += b.AdvanceRead(n)
		if err != nil {
			return total, err
		}
		if n != len(p) {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}
