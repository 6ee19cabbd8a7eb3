package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/progressus/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┌─┐┌─┐┬─┐┌─┐┌─┐┌─┐┬ ┬┌─┐
  ├─┘├┬┘│ ││ ┬├┬┘├┤ └─┐└─┐│ │└─┐
  ┴  ┴└─└─┘└─┘┴└─└─┘└─┘└─┘└─┘└─┘
`

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		asJSON, _ := cmd.PersistentFlags().GetBool("json")
		report(os.Stderr, err, asJSON)
		os.Exit(1)
	}
}

// report prints a command error, as one JSON line when asJSON is set.
// Errors that do not come from the widget or config are coded P030.
func report(w io.Writer, err error, asJSON bool) {
	pe := errors.FromError(err, "P030")
	slog.Debug("command failed", "error", pe.FormatCompact())
	if asJSON {
		errors.FprintJSON(w, pe, "P030")
		return
	}
	errors.Fprint(w, pe)
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		asJSON  bool
	)

	rootCmd := &cobra.Command{
		Use:   "progressus",
		Short: "Render and drive progress bar widgets",
		Long: `Progressus binds progress bar widgets to HTML containers.

A widget finds its bar, label and value elements inside a container, or
creates them in an empty one, and keeps them in sync as the value changes:

  • render a widget into a page or a fresh container
  • step through values and inspect the DOM patches each produced
  • configure defaults in progressus.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log widget activity to stderr")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print errors as JSON")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(),
		runCmd(),
		versionCmd(),
	)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
