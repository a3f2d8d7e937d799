// Package main is the entry point of the registrar robot.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/favonia/regrobot/internal/config"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/registrar"
	"github.com/favonia/regrobot/internal/signal"
	"github.com/favonia/regrobot/internal/wire"
)

// Version is the version of the robot that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "Registrar Robot"
	}
	return fmt.Sprintf("Registrar Robot (%s)", Version)
}

// flags are the command-line options overriding the environment.
type flags struct {
	poll     bool
	attempts int
	interval time.Duration
	verbose  bool
	help     bool
	version  bool
}

func newFlagSet(output io.Writer, f *flags) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("regrobot", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.BoolVar(&f.poll, "poll", false, "repeat a raw command until it succeeds")
	flagSet.IntVar(&f.attempts, "attempts", 0, "maximum number of polling attempts (overrides POLL_MAX_ATTEMPTS)")
	flagSet.DurationVar(&f.interval, "interval", 0, "time between polling attempts (overrides POLL_INTERVAL)")
	flagSet.BoolVarP(&f.verbose, "verbose", "v", false, "show every polling attempt (overrides POLL_VERBOSE)")
	flagSet.BoolVarP(&f.help, "help", "h", false, "show help")
	flagSet.BoolVar(&f.version, "version", false, "show the version")
	return flagSet
}

func printUsage(output io.Writer, flagSet *pflag.FlagSet) {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Usage:\n  regrobot [flags] COMMAND [key=value ...]\n\n")
	fmt.Fprintf(&b, "A COMMAND with a dot (such as domain.info) is sent to the registrar as is.\n")
	fmt.Fprintf(&b, "The following commands are shortcuts:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  regrobot %s\n", shortcuts[name].usage)
	}
	fmt.Fprintf(&b, "\nFlags:\n")
	fmt.Fprint(output, b.String())
	flagSet.PrintDefaults()
}

// applyFlags overrides the configuration with the flags that were actually given.
func applyFlags(ppfmt pp.PP, flagSet *pflag.FlagSet, f *flags, c *config.Config) bool {
	if flagSet.Changed("attempts") {
		if f.attempts <= 0 {
			ppfmt.Errorf(pp.EmojiUserError, "--attempts (%d) is not positive", f.attempts)
			return false
		}
		c.Poll.MaxAttempts = f.attempts
	}
	if flagSet.Changed("interval") {
		if f.interval < 0 {
			ppfmt.Errorf(pp.EmojiUserError, "--interval (%v) is negative", f.interval)
			return false
		}
		c.Poll.Interval = f.interval
	}
	if flagSet.Changed("verbose") {
		c.Poll.Verbose = f.verbose
	}
	return true
}

func runRaw(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, poll bool, command string, args []string) error {
	params, err := parseParams(args)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	var resp wire.Response
	if poll {
		resp, err = h.Poll(ctx, ppfmt, command, params)
	} else {
		resp, err = h.Call(ctx, ppfmt, command, params)
	}
	if err != nil {
		return err
	}

	ppfmt.Noticef(pp.EmojiResponse, "%s", resp.Describe())
	printTree(ppfmt, "Data", resp.Data)
	return nil
}

func run(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, poll bool, command string, args []string) error {
	if strings.Contains(command, ".") {
		return runRaw(ctx, ppfmt, h, poll, command, args)
	}

	s, ok := shortcuts[command]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	if poll {
		ppfmt.Warningf(pp.EmojiUserWarning, "--poll only applies to raw commands; %q handles polling itself", command)
	}
	if err := s.run(ctx, ppfmt, h, args); err != nil {
		if errors.Is(err, errUsage) {
			return fmt.Errorf("%w (usage: regrobot %s)", err, s.usage)
		}
		return err
	}
	return nil
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

func realMain(args []string, stdout io.Writer) int { //nolint:funlen
	var f flags
	flagSet := newFlagSet(stdout, &f)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, flagSet)
			return 0
		}
		fmt.Fprintf(stdout, "%v\n", err)
		return 1
	}
	if f.help {
		printUsage(stdout, flagSet)
		return 0
	}
	if f.version {
		fmt.Fprintln(stdout, formatName())
		return 0
	}

	ppfmt, ok := config.SetupPP(stdout)
	if !ok {
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the robot
	ppfmt.Noticef(pp.EmojiStar, formatName())

	if flagSet.NArg() == 0 {
		ppfmt.Errorf(pp.EmojiUserError, "No command given; run with --help to see the commands")
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	// Read the config
	c := config.Default()
	if !c.ReadEnv(ppfmt) || !applyFlags(ppfmt, flagSet, &f, c) {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	c.Print(ppfmt)

	// Catch signals SIGINT and SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background())
	defer cancel()

	h, ok := c.NewHandle(ppfmt)
	if !ok {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	defer h.Close()

	if err := run(ctx, ppfmt, h, f.poll, flagSet.Arg(0), flagSet.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			ppfmt.Errorf(pp.EmojiUserError, "%v", err)
		}
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	return 0
}
