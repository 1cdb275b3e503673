package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jacoelho/ringbuf"
)

type stats struct {
	bytes  int64
	rounds int
}

// relay alternates filling buf from src and draining it to dst until src reports io.EOF.
// Every round drains the buffer completely before reading again.
func relay(ctx context.Context, buf *ringbuf.Buffer, src source, dst sink, logger *zap.Logger) (stats, error) {
	var st stats
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		filled, readErr := src.fill(buf)
		for !buf.IsEmpty() {
			drained, err := dst.drain(buf)
			st.bytes += int64(drained)
			if err != nil {
				return st, errors.Wrap(err, "write output")
			}
			if drained == 0 {
				return st, errors.Wrap(io.ErrShortWrite, "write output")
			}
		}
		st.rounds++
		logger.Debug("round", zap.Int("filled", filled), zap.Int64("total", st.bytes))

		switch {
		case readErr == io.EOF:
			return st, nil
		case readErr != nil:
			return st, errors.Wrap(readErr, "read input")
		}
	}
}
