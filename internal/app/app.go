// internal/app/app.go
package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hello/internal/emitter"
)

// ExitOK is the only status the command returns. Write failures do not change it.
const ExitOK = 0

// Deps carries what RunWithDeps needs from the outside world.
type Deps struct {
	// Logger receives debug records about the two writes. Nil discards.
	// It must not be backed by the same streams the command writes to.
	Logger *zap.Logger
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWithDeps(ctx, argv, stdout, stderr, Deps{})
}

// RunWithDeps runs the hello command. argv is ignored: it is never handed to
// cobra, so no word on the command line can trigger help, completion or a
// usage error on either stream.
func RunWithDeps(ctx context.Context, argv []string, stdout, stderr io.Writer, deps Deps) int {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("start", zap.Int("ignored_args", len(argv)))

	cmd := newRootCmd(stdout, stderr, log)
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Debug("command error", zap.Error(err))
	}
	return ExitOK
}

func newRootCmd(stdout, stderr io.Writer, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Print a greeting to stdout and a warning to stderr",
		Long: `hello writes "Hello World!" to standard output and "Foo! Bar!" to
standard error, then exits 0. It takes no flags, arguments or environment.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r := emitter.New(stdout, stderr, log).Run()
			log.Debug("done", zap.Bool("failed", r.Failed()), zap.Bool("short", r.Short()))
			return nil
		},
	}
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}
