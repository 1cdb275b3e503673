package main

import (
	"io"

	"github.com/jacoelho/ringbuf"
)

// source moves bytes from an input into the free space of a buffer.
type source interface {
	fill(*ringbuf.Buffer) (int, error)
	String() string
}

// sink moves unread bytes of a buffer to an output.
type sink interface {
	drain(*ringbuf.Buffer) (int, error)
	String() string
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) fill(b *ringbuf.Buffer) (int, error) {
	return b.Fill(s.r)
}

func (readerSource) String() string { return "reader" }

type writerSink struct {
	w io.Writer
}

func (s writerSink) drain(b *ringbuf.Buffer) (int, error) {
	return b.Drain(s.w)
}

func (writerSink) String() string { return "writer" }
