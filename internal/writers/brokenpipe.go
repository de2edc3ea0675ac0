package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Seen when the reader on the other end (like `head`) went away first.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// IsClosed reports whether the write hit a descriptor that is no longer open,
// either closed by this process or never handed to it (`2>&-`).
func IsClosed(err error) bool {
	return err != nil && (errors.Is(err, os.ErrClosed) || errors.Is(err, syscall.EBADF))
}
