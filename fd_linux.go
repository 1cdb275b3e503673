//go:build linux

package ringbuf

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ReadFD performs one readv(2) on fd into all of the free space and commits what arrived.
// A full buffer returns 0 without touching fd. End of file is reported as io.EOF.
func (b *Buffer) ReadFD(fd int) (int, error) {
	iov := b.WritableVec()
	if len(iov) == 0 {
		return 0, nil
	}

	var (
		n   int
		err error
	)
	for {
		n, err = unix.Readv(fd, iov)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return 0, errors.Wrap(err, "readv")
	}
	if n == 0 {
		return 0, io.EOF
	}
	return b.commitWrite(n), nil
}

// WriteFD performs one writev(2) of all unread bytes to fd and discards what was written.
// An empty buffer returns 0 without touching fd.
func (b *Buffer) WriteFD(fd int) (int, error) {
	iov := b.ReadableVec()
	if len(iov) == 0 {
		return 0, nil
	}

	var (
		n   int
		err error
	)
	for {
		n, err = unix.Writev(fd, iov)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return 0, errors.Wrap(err, "writev")
	}
	return b.commitRead(n), nil
}
