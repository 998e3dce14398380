package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI.  It is separated from the main package
// to keep the command usable from tests as well.
func Run(args []string) error {
	// Make the config path and log level discoverable by sub-commands before
	// the full flags parsing happens.
	setConfigPath(extractOption(args, "-f", "--config"))
	setLogLevel(extractOption(args, "-l", "--log-level"))

	opts := &Options{}
	opts.Init(commandName(args))

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil
		}
		return err
	}
	return nil
}

// extractOption searches the raw argument list for a short/long option value.
func extractOption(args []string, short, long string) string {
	for i, a := range args {
		switch a {
		case short, long:
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, long+"=") {
				return strings.TrimPrefix(a, long+"=")
			}
		}
	}
	return ""
}

// commandName returns the first positional argument, skipping root options
// and their values.
func commandName(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-f", a == "--config", a == "-l", a == "--log-level":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}
