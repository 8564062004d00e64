package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"xwc/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, newRootCommand(), os.Args[1:])
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, diagnostic(err))
		}
		os.Exit(services.ExitCode(err))
	}
}

// execute runs cmd with args. A literal --help anywhere on the command line
// prints the usage before any flag is parsed, so malformed options next to
// it are ignored.
func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	if helpRequested(args) {
		cmd.InitDefaultHelpFlag()
		return cmd.Help()
	}
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func helpRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--help" {
			return true
		}
	}
	return false
}

// diagnostic renders err as the single line printed before exiting.
func diagnostic(err error) string {
	msg := "xwc: " + err.Error()
	if services.ExitCode(err) == services.ExitUsage {
		msg += "; try 'xwc --help'"
	}
	return msg
}
