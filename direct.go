package ringbuf

// Direct access lets a caller fill or drain the backing region in place,
// typically with a system call, and commit the transferred length afterwards.
//
// Slices returned here alias the buffer and stay valid only until the next
// call that changes the buffer.

// WritableSlice returns the free contiguous run starting at the write cursor.
// Its capacity equals its length, so appending to it never reaches unread data.
// Bytes placed there become readable only after AdvanceWrite.
func (b *Buffer) WritableSlice() []byte {
	n := b.MaxContiguousWrite()
	return b.data[b.writePos : b.writePos+n : b.writePos+n]
}

// MaxContiguousWrite returns how many bytes can be written at the write cursor without wrapping.
// It can be smaller than BytesToWrite when the free space wraps past the end of storage.
func (b *Buffer) MaxContiguousWrite() int {
	switch {
	case b.unread == len(b.data):
		return 0
	case b.writePos >= b.readPos:
		return len(b.data) - b.writePos
	default:
		return b.readPos - b.writePos
	}
}

// AdvanceWrite marks n bytes at the write cursor as written and returns the number committed.
//
// If n exceeds MaxContiguousWrite the cursor stops at the end of the run, that is at the
// start of storage or at the read cursor, and only the run length is committed.
func (b *Buffer) AdvanceWrite(n int) int {
	n = max(0, min(n, b.MaxContiguousWrite()))
	if n == 0 {
		return 0
	}
	b.writePos = b.wrap(b.writePos + n)
	b.unread += n
	return n
}

// ReadableSlice returns the unread contiguous run starting at the read cursor.
func (b *Buffer) ReadableSlice() []byte {
	n := b.MaxContiguousRead()
	return b.data[b.readPos : b.readPos+n : b.readPos+n]
}

// MaxContiguousRead returns how many bytes can be read at the read cursor without wrapping.
func (b *Buffer) MaxContiguousRead() int {
	switch {
	case b.unread == 0:
		return 0
	case b.readPos < b.writePos:
		return b.writePos - b.readPos
	default:
		return len(b.data) - b.readPos
	}
}

// AdvanceRead discards n bytes at the read cursor and returns the number discarded.
//
// If n exceeds MaxContiguousRead the cursor stops at the start of storage or at the
// write cursor, whichever ends the readable run.
func (b *Buffer) AdvanceRead(n int) int {
	n = max(0, min(n, b.MaxContiguousRead()))
	if n == 0 {
		return 0
	}
	b.readPos = b.wrap(b.readPos + n)
	b.unread -= n
	return n
}

// WritableVec returns the free space as at most two runs, in write order.
func (b *Buffer) WritableVec() [][]byte {
	first := b.WritableSlice()
	if len(first) == 0 {
		return nil
	}
	rest := b.BytesToWrite() - len(first)
	if rest == 0 {
		return [][]byte{first}
	}
	return [][]byte{first, b.data[:rest:rest]}
}

// ReadableVec returns the unread bytes as at most two runs, in read order.
func (b *Buffer) ReadableVec() [][]byte {
	first := b.ReadableSlice()
	if len(first) == 0 {
		return nil
	}
	rest := b.unread - len(first)
	if rest == 0 {
		return [][]byte{first}
	}
	return [][]byte{first, b.data[:rest:rest]}
}

// commitWrite advances the write cursor across both runs of WritableVec.
func (b *Buffer) commitWrite(n int) int {
	done := 0
	for done < n {
		step := b.AdvanceWrite(n - done)
		if step == 0 {
			break
		}
		done += step
	}
	return done
}

// commitRead advances the read cursor across both runs of ReadableVec.
func (b *Buffer) commitRead(n int) int {
	done := 0
	for done < n {
		step := b.AdvanceRead(n - done)
		if step == 0 {
			break
		}
		done += step
	}
	return done
}
