package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vane-tools/vanectl/internal/app"
	"github.com/vane-tools/vanectl/internal/console"
	"github.com/vane-tools/vanectl/internal/usage"
)

type opts struct {
	Config  string
	DB      string
	As      string
	Exec    []string
	NoColor bool
	Version bool
}

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive))
}

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	op := &opts{}
	flags := pflag.NewFlagSet("vanectl", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&op.Config, "config", "", "Configuration file (default ~/.vanerc).")
	flags.StringVar(&op.DB, "db", "", "Database file; overrides db_path.")
	flags.StringVar(&op.As, "as", "", "Run commands as this actor instead of the console.")
	flags.StringArrayVarP(&op.Exec, "exec", "e", nil, "Command line to run; repeatable.")
	flags.BoolVar(&op.NoColor, "no-color", false, "Disable colored output.")
	flags.BoolVar(&op.Version, "version", false, "Print the version and exit.")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "usage: vanectl [flags] [command [args...]]\n\n%s", flags.FlagUsages())
			return 0
		}
		diag := usage.InvalidFlag(flagName(err))
		fmt.Fprintln(stderr, diag.Error())
		fmt.Fprintln(stderr, err)
		return diag.GetExitCode()
	}

	if op.Version {
		fmt.Fprintf(stdout, "vanectl version %s\n", app.Version)
		return 0
	}

	if op.Config != "" {
		if err := os.Setenv("VANE_CONFIG", op.Config); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	options := app.DefaultOptions()
	if op.DB != "" {
		options.DBPath = op.DB
	}
	options.StyleEnabled = interactive && !op.NoColor

	a, err := app.New(options)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = a.Close() }()

	sender, err := a.Sender(op.As)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	switch {
	case len(op.Exec) > 0:
		code := 0
		for _, line := range op.Exec {
			if c := console.RunLine(stdout, a.Dispatcher, sender, a.Output, line); c != 0 {
				code = c
			}
		}
		return code

	case flags.NArg() > 0:
		// The shell already split the words.
		res := a.Dispatcher.Dispatch(sender, flags.Args())
		_, _ = io.WriteString(stdout, a.Output.Drain())
		_, _ = io.WriteString(stderr, a.Dispatcher.Render(res))
		return res.ExitCode()

	case interactive:
		if err := console.Run(console.New(a.Dispatcher, sender, a.Output)); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0

	default:
		code, err := console.RunLines(stdin, stdout, a.Dispatcher, sender, a.Output)
		if err != nil {
			fmt.Fprintln(stderr, err)
		}
		return code
	}
}

// flagName extracts the offending flag from a pflag parse error message.
func flagName(err error) string {
	for _, field := range strings.Fields(err.Error()) {
		field = strings.Trim(field, `"'`)
		if strings.HasPrefix(field, "-") {
			return field
		}
	}
	return err.Error()
}
