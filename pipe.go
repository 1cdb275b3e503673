package ringbuf

import (
	"io"
	"sync"
)

var (
	_ io.Reader     = (*PipeReader)(nil)
	_ io.WriterTo   = (*PipeReader)(nil)
	_ io.Closer     = (*PipeReader)(nil)
	_ io.Writer     = (*PipeWriter)(nil)
	_ io.ReaderFrom = (*PipeWriter)(nil)
	_ io.Closer     = (*PipeWriter)(nil)
)

// pipe guards a Buffer with mu and parks each side on a condition variable
// until the other side makes progress or closes.
//
// rdMu serializes consumers and wrMu producers, so a run handed out by
// ReadableSlice or WritableSlice belongs to one caller while mu is released.
type pipe struct {
	mu       sync.Mutex
	readable sync.Cond
	writable sync.Cond
	buf      *Buffer

	rdMu sync.Mutex
	wrMu sync.Mutex

	reader pipeEnd
	writer pipeEnd
}

// pipeEnd records how one half was closed. err keeps the first CloseWithError value.
type pipeEnd struct {
	closed bool
	err    error
}

func (e *pipeEnd) close(err, def error, withErr bool) {
	e.closed = true
	if withErr && e.err == nil {
		e.err = orDefault(err, def)
	}
}

func newPipe(size int) *pipe {
	p := &pipe{buf: &Buffer{data: make([]byte, size)}}
	p.readable.L = &p.mu
	p.writable.L = &p.mu
	return p
}

func (p *pipe) read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	p.rdMu.Lock()
	defer p.rdMu.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.waitReadableLocked(); err != nil {
		return 0, err
	}

	n := p.buf.Read(b)
	p.writable.Broadcast()
	return n, nil
}

func (p *pipe) write(b []byte) (n int, err error) {
	p.wrMu.Lock()
	defer p.wrMu.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(b) > 0 {
		if err := p.waitWritableLocked(); err != nil {
			return n, err
		}
		wrote := p.buf.Write(b)
		b = b[wrote:]
		n += wrote
		p.readable.Broadcast()
	}
	return n, nil
}

// readFrom lets r write straight into the free run of the ring. Only mu is
// released around r.Read; wrMu keeps other producers off that run.
func (p *pipe) readFrom(r io.Reader) (int64, error) {
	p.wrMu.Lock()
	defer p.wrMu.Unlock()

	var total int64
	for {
		p.mu.Lock()
		err := p.waitWritableLocked()
		free := p.buf.WritableSlice()
		p.mu.Unlock()
		if err != nil {
			return total, err
		}

		n, rErr := r.Read(free)
		if n < 0 || n > len(free) {
			return total, errInvalidRead
		}
		if n > 0 {
			p.mu.Lock()
			if err := p.writeErrLocked(); err != nil {
				p.mu.Unlock()
				return total, err
			}
			total += int64(p.buf.AdvanceWrite(n))
			p.readable.Broadcast()
			p.mu.Unlock()
		}

		switch {
		case rErr == io.EOF:
			return total, nil
		case rErr != nil:
			return total, rErr
		}
	}
}

// writeTo hands the unread run of the ring to w without copying it out first.
func (p *pipe) writeTo(w io.Writer) (int64, error) {
	p.rdMu.Lock()
	defer p.rdMu.Unlock()

	var total int64
	for {
		p.mu.Lock()
		err := p.waitReadableLocked()
		unread := p.buf.ReadableSlice()
		p.mu.Unlock()
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}

		n, wErr := w.Write(unread)
		if n < 0 || n > len(unread) {
			n = 0
			if wErr == nil {
				wErr = errInvalidWrite
			}
		}
		if n > 0 {
			p.mu.Lock()
			total += int64(p.buf.AdvanceRead(n))
			p.writable.Broadcast()
			p.mu.Unlock()
		}
		if wErr != nil {
			return total, wErr
		}
		if n != len(unread) {
			return total, io.ErrShortWrite
		}
	}
}

func (p *pipe) closeReader(err error, withErr bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reader.close(err, io.ErrClosedPipe, withErr)
	p.readable.Broadcast()
	p.writable.Broadcast()
}

func (p *pipe) closeWriter(err error, withErr bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer.close(err, io.EOF, withErr)
	p.readable.Broadcast()
	p.writable.Broadcast()
}

// readErrLocked is the error a read on an empty pipe gets, or nil if it should wait.
func (p *pipe) readErrLocked() error {
	switch {
	case p.reader.closed:
		return orDefault(p.reader.err, io.ErrClosedPipe)
	case p.writer.closed:
		return orDefault(p.writer.err, io.EOF)
	}
	return nil
}

func (p *pipe) writeErrLocked() error {
	switch {
	case p.reader.closed:
		return orDefault(p.reader.err, io.ErrClosedPipe)
	case p.writer.closed:
		return io.ErrClosedPipe
	}
	return nil
}

// waitReadableLocked lets a closed pipe hand out what is still buffered before failing.
func (p *pipe) waitReadableLocked() error {
	for p.buf.IsEmpty() {
		if err := p.readErrLocked(); err != nil {
			return err
		}
		p.readable.Wait()
	}
	return nil
}

func (p *pipe) waitWritableLocked() error {
	for {
		if err := p.writeErrLocked(); err != nil {
			return err
		}
		if !p.buf.IsFull() {
			return nil
		}
		p.writable.Wait()
	}
}

func orDefault(err, def error) error {
	if err != nil {
		return err
	}
	return def
}

// Pipe creates a synchronous in-memory pipe whose halves exchange data through
// a Buffer of bufferSize bytes. Sizes below 1 are raised to 1.
//
// Unlike Buffer itself, both halves are safe for concurrent use and block:
// reads wait for data and writes wait until every byte has been buffered.
// Concurrent writes are not interleaved.
func Pipe(bufferSize int) (*PipeReader, *PipeWriter) {
	p := newPipe(max(bufferSize, 1))
	return &PipeReader{p}, &PipeWriter{p}
}

// PipeReader is the read half of a pipe.
type PipeReader struct {
	p *pipe
}

// Read implements io.Reader.
func (r *PipeReader) Read(b []byte) (int, error) {
	return r.p.read(b)
}

// Close closes the reader side of the pipe.
// Bytes already buffered can still be read.
func (r *PipeReader) Close() error {
	r.p.closeReader(nil, false)
	return nil
}

// CloseWithError closes the reader side of the pipe.
// Subsequent writes fail with err, or io.ErrClosedPipe if err is nil.
func (r *PipeReader) CloseWithError(err error) error {
	r.p.closeReader(err, true)
	return nil
}

// WriteTo implements io.WriterTo. Buffered bytes are written to w in place.
func (r *PipeReader) WriteTo(w io.Writer) (int64, error) {
	return r.p.writeTo(w)
}

// PipeWriter is the write half of a pipe.
type PipeWriter struct {
	p *pipe
}

// Write implements io.Writer.
func (w *PipeWriter) Write(b []byte) (int, error) {
	return w.p.write(b)
}

// Close closes the writer side of the pipe.
func (w *PipeWriter) Close() error {
	w.p.closeWriter(nil, false)
	return nil
}

// CloseWithError closes the writer side of the pipe.
// Once buffered bytes are consumed, reads fail with err, or io.EOF if err is nil.
func (w *PipeWriter) CloseWithError(err error) error {
	w.p.closeWriter(err, true)
	return nil
}

// ReadFrom implements io.ReaderFrom. r reads directly into the pipe's free space.
func (w *PipeWriter) ReadFrom(r io.Reader) (int64, error) {
	return w.p.readFrom(r)
}
