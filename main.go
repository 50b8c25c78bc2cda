// Package main provides the treefetch command-line tool, which prints a tree
// in ASCII art next to a few facts about the host.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"treefetch/ascii"
	"treefetch/display"
	"treefetch/logging"
	"treefetch/sysinfo"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// legacyXmasFlag is the single-dash spelling that --xmas replaced.
const legacyXmasFlag = "-xmas"

var errLegacyXmas = errors.New("-xmas has been replaced by --xmas")

// options is the resolved command line.
type options struct {
	bonsai    bool
	xmas      bool
	verbosity int
}

func (o options) mode() ascii.Mode {
	switch {
	case o.bonsai:
		return ascii.Bonsai
	case o.xmas:
		return ascii.Christmas
	default:
		return ascii.Default
	}
}

// app carries what a single invocation renders with.
type app struct {
	palette  sysinfo.Palette
	provider sysinfo.Provider
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	palette := sysinfo.NewPalette()
	a := &app{
		palette:  palette,
		provider: sysinfo.NewHost(palette),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	os.Exit(a.run(os.Args[1:]))
}

// run executes one invocation and returns the process exit code.
func (a *app) run(args []string) int {
	if err := checkLegacyFlags(args); errors.Is(err, errLegacyXmas) {
		a.printLegacyNotice()
		return exitUsage
	}

	var renderErr error
	cmd := a.newRootCmd(func(opts options) error {
		renderErr = a.render(opts)
		return renderErr
	})
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		if renderErr != nil {
			return exitFailure
		}
		fmt.Fprintln(a.stderr, "Run 'treefetch --help' for usage.")
		return exitUsage
	}
	return exitOK
}

// checkLegacyFlags rejects retired flag spellings. It runs before flag
// parsing so it wins over every other flag, --help included.
func checkLegacyFlags(args []string) error {
	for _, arg := range args {
		if arg == legacyXmasFlag {
			return errLegacyXmas
		}
	}
	return nil
}

func (a *app) newRootCmd(runFn func(options) error) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "treefetch [options]",
		Short: "Show system information next to a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFn(opts)
		},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	cmd.Flags().BoolVarP(&opts.bonsai, "bonsai", "b", false, "Show a bonsai tree")
	cmd.Flags().BoolVarP(&opts.xmas, "xmas", "x", false, "Show a Christmas tree")
	cmd.Flags().CountVarP(&opts.verbosity, "verbose", "v", "Log diagnostics to stderr (-v info, -vv debug)")
	cmd.MarkFlagsMutuallyExclusive("bonsai", "xmas")

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		a.printHelp(cmd.OutOrStdout())
	})

	return cmd
}

// render selects the art, collects the facts and prints them side by side.
func (a *app) render(opts options) error {
	logging.SetupLogger(opts.verbosity, a.stderr)
	logger := logging.GetLogger("render")

	mode := opts.mode()
	art := ascii.New(a.palette).Lines(mode)
	facts := sysinfo.Collect(a.provider, mode.Festive())
	logger.Debug().
		Str("mode", mode.String()).
		Int("artRows", len(art)).
		Int("factRows", len(facts)).
		Msg("Composing banner")

	rows, err := display.SideBySide(a.stdout, art, facts, mode.Festive(), a.palette)
	if err != nil {
		return fmt.Errorf("render banner: %w", err)
	}
	logger.Info().Int("rows", rows).Msg("Banner written")
	return nil
}

func (a *app) printHelp(w io.Writer) {
	p := a.palette
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s%streefetch%s [options]\n", p.Bold, p.Green, p.Reset)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS")
	fmt.Fprintln(w, "  -b, --bonsai   Show a bonsai tree")
	fmt.Fprintln(w, "  -x, --xmas     Show a Christmas tree")
	fmt.Fprintln(w, "  -v, --verbose  Log diagnostics to stderr (-v info, -vv debug)")
	fmt.Fprintln(w, "  -h, --help     Display this help message")
}

func (a *app) printLegacyNotice() {
	p := a.palette
	fmt.Fprintf(a.stderr, "%s%sERROR:%s %s-xmas%s has been replaced by %s--xmas%s.\n",
		p.Green, p.Bold, p.Reset, p.Bold, p.Reset, p.Bold, p.Reset)
	fmt.Fprintf(a.stderr, "Run %streefetch --xmas%s instead.\n", p.Bold, p.Reset)
}
