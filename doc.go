// Package ringbuf provides a fixed-capacity circular byte buffer.
//
// A Buffer copies bytes in and out with Read and Write, both of which move as much as
// fits and report the count instead of failing. For zero-copy I/O the free and unread
// regions are exposed as slices (WritableSlice, ReadableSlice) that a caller fills or
// drains in place before committing the length with AdvanceWrite or AdvanceRead.
//
// Buffer does no locking and never blocks. Pipe layers a synchronized, blocking
// io.Pipe-style pair on top of it for use across goroutines.
package ringbuf
