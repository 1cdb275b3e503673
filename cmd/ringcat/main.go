// Command ringcat copies standard input to standard output through a single
// fixed-capacity ring buffer.
//
// Usage:
//
//	ringcat [--capacity bytes] [--log-level level] [--log-format console|json]
//
// On linux, file endpoints are served with readv(2)/writev(2) directly against
// the buffer; other inputs and outputs go through io.Reader and io.Writer.
// Logs are written to standard error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
