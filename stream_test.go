package ringbuf_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillStopsWhenFull(t *testing.T) {
	b := newTestBuffer(t, 4)
	src := strings.NewReader("abcdef")

	n, err := b.Fill(src)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, b.IsFull())
	assert.Equal(t, 2, src.Len())

	n, err = b.Fill(src)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "abcd", readString(b, 4))
}

func TestFillWrapsAroundEndOfStorage(t *testing.T) {
	b := newTestBuffer(t, 4)
	b.Write([]byte("xyz"))
	readString(b, 3)

	n, err := b.Fill(strings.NewReader("abcd"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abcd", readString(b, 4))
}

func TestFillShortReadStops(t *testing.T) {
	b := newTestBuffer(t, 8)
	src := iotest.OneByteReader(strings.NewReader("abc"))

	n, err := b.Fill(src)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFillReturnsEOF(t *testing.T) {
	b := newTestBuffer(t, 8)

	n, err := b.Fill(iotest.DataErrReader(strings.NewReader("abc")))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", readString(b, 8))
}

func TestFillReaderError(t *testing.T) {
	b := newTestBuffer(t, 8)
	boom := errors.New("boom")

	n, err := b.Fill(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, n)
	assert.True(t, b.IsEmpty())
}

func TestFillInvalidCount(t *testing.T) {
	b := newTestBuffer(t, 4)

	_, err := b.Fill(liarReader{})
	require.Error(t, err)
	assert.True(t, b.IsEmpty())
}

func TestDrain(t *testing.T) {
	b := newTestBuffer(t, 4)
	b.Write([]byte("abc"))
	readString(b, 2)
	b.Write([]byte("def"))

	var out bytes.Buffer
	n, err := b.Drain(&out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "cdef", out.String())
	assert.True(t, b.IsEmpty())

	n, err = b.Drain(&out)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDrainShortWrite(t *testing.T) {
	b := newTestBuffer(t, 8)
	b.Write([]byte("testdata"))

	fw := &failingWriterTest{failAfter: 4}
	n, err := b.Drain(fw)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 4, n)
	assert.Equal(t, "data", readString(b, 8))
}

func TestDrainWriterError(t *testing.T) {
	b := newTestBuffer(t, 8)
	b.Write([]byte("data"))

	fw := &failingWriterTest{}
	n, err := b.Drain(fw)
	require.EqualError(t, err, "write failed")
	assert.Equal(t, 0, n)
	assert.Equal(t, 4, b.BytesToRead())
}

func TestFillDrainRelay(t *testing.T) {
	b := newTestBuffer(t, 7)

	input := bytes.Repeat([]byte("0123456789"), 100)
	src := iotest.HalfReader(bytes.NewReader(input))
	var out bytes.Buffer

	for {
		_, rErr := b.Fill(src)
		_, wErr := b.Drain(&out)
		require.NoError(t, wErr)
		if rErr == io.EOF {
			break
		}
		require.NoError(t, rErr)
	}
	assert.Equal(t, input, out.Bytes())
}

type liarReader struct{}

func (liarReader) Read(p []byte) (int, error) {
	return len(p) + 1, nil
}

type failingWriterTest struct {
	written   int
	failAfter int
}

func (fw *failingWriterTest) Write(p []byte) (int, error) {
	if fw.written >= fw.failAfter {
		return 0, errors.New("write failed")
	}
	n := min(len(p), fw.failAfter-fw.written)
	fw.written += n
	return n, nil
}
