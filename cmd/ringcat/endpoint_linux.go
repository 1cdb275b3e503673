package main

import (
	"io"
	"os"

	"github.com/jacoelho/ringbuf"
)

// fdSource keeps f referenced so its finalizer cannot close fd mid-relay.
type fdSource struct {
	f  *os.File
	fd int
}

func (s fdSource) fill(b *ringbuf.Buffer) (int, error) {
	return b.ReadFD(s.fd)
}

func (s fdSource) String() string { return "fd:" + s.f.Name() }

type fdSink struct {
	f  *os.File
	fd int
}

func (s fdSink) drain(b *ringbuf.Buffer) (int, error) {
	return b.WriteFD(s.fd)
}

func (s fdSink) String() string { return "fd:" + s.f.Name() }

func newSource(r io.Reader) source {
	if f, ok := r.(*os.File); ok {
		return fdSource{f: f, fd: int(f.Fd())}
	}
	return readerSource{r: r}
}

func newSink(w io.Writer) sink {
	if f, ok := w.(*os.File); ok {
		return fdSink{f: f, fd: int(f.Fd())}
	}
	return writerSink{w: w}
}
