package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a command against the real process streams and exits with its code.
//
// SIGPIPE is ignored so a write to a closed pipe on fd 1 or 2 comes back as
// EPIPE instead of the runtime killing the process. Interrupts are left alone.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	signal.Ignore(syscall.SIGPIPE)

	code := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
