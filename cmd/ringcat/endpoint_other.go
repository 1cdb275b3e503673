//go:build !linux

package main

import "io"

func newSource(r io.Reader) source {
	return readerSource{r: r}
}

func newSink(w io.Writer) sink {
	return writerSink{w: w}
}
