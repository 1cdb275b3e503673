package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jacoelho/ringbuf"
)

const defaultCapacity = 64 * 1024

type options struct {
	capacity  int
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "ringcat",
		Short:         "Copy stdin to stdout through a ring buffer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.capacity, "capacity", "c", defaultCapacity, "ring buffer capacity in bytes")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log encoding: console or json")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if opts.capacity < 1 {
		return errors.Errorf("capacity must be positive, got %d", opts.capacity)
	}

	logger, err := newLogger(opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	buf, err := ringbuf.New(opts.capacity)
	if err != nil {
		return errors.Wrap(err, "create buffer")
	}

	src := newSource(cmd.InOrStdin())
	dst := newSink(cmd.OutOrStdout())
	logger.Debug("starting relay",
		zap.Int("capacity", buf.Size()),
		zap.Stringer("source", src),
		zap.Stringer("sink", dst),
	)

	st, err := relay(cmd.Context(), buf, src, dst, logger)
	logger.Info("relay finished",
		zap.Int64("bytes", st.bytes),
		zap.Int("rounds", st.rounds),
		zap.Error(err),
	)
	return err
}

func newLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	if format != "console" && format != "json" {
		return nil, errors.Errorf("invalid log format %q", format)
	}

	zapcfg := zap.NewProductionConfig()
	zapcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	zapcfg.Encoding = format
	zapcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zapcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger.Named("ringcat"), nil
}
