// Package emitter writes the greeting and the warning to their streams.
//
// Each stream gets exactly one Write call. Short writes and write errors are
// recorded in the Report and never retried, corrected or returned.
package emitter

import (
	"io"
	"os"

	"go.uber.org/zap"

	"hello/internal/message"
	"hello/internal/writers"
)

// Channel names the stream a write went to.
type Channel string

const (
	Stdout Channel = "stdout"
	Stderr Channel = "stderr"
)

// Write is the outcome of a single Write call.
type Write struct {
	Channel Channel
	Want    int
	Wrote   int
	Err     error
}

// Short reports whether fewer bytes went out than were handed to the writer.
func (w Write) Short() bool { return w.Wrote < w.Want }

// Report holds both outcomes in the order they were attempted.
type Report struct {
	Stdout Write
	Stderr Write
}

// Failed reports whether either write returned an error.
func (r Report) Failed() bool { return r.Stdout.Err != nil || r.Stderr.Err != nil }

// Short reports whether either write came up short.
func (r Report) Short() bool { return r.Stdout.Short() || r.Stderr.Short() }

type Emitter struct {
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

// New returns an Emitter for the given streams. A nil logger discards.
func New(stdout, stderr io.Writer, log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{stdout: stdout, stderr: stderr, log: log.Named("emitter")}
}

// Run writes message.Standard to stdout, then message.Warning to stderr.
// The second write happens whatever the first one did.
func (e *Emitter) Run() Report {
	var r Report
	r.Stdout = e.write(Stdout, e.stdout, message.Standard)
	r.Stderr = e.write(Stderr, e.stderr, message.Warning)
	return r
}

func (e *Emitter) write(ch Channel, dst io.Writer, text string) Write {
	w := Write{Channel: ch, Want: len(text)}
	if dst != nil {
		w.Wrote, w.Err = dst.Write([]byte(text))
	} else {
		w.Err = os.ErrClosed
	}
	e.log.Debug("write",
		zap.String("channel", string(ch)),
		zap.Int("want", w.Want),
		zap.Int("wrote", w.Wrote),
		zap.Bool("short", w.Short()),
		zap.Bool("broken_pipe", writers.IsBrokenPipe(w.Err)),
		zap.Bool("closed", writers.IsClosed(w.Err)),
		zap.Error(w.Err),
	)
	return w
}
