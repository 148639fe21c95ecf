package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"link-analytics-service/internal/logger"

	goflags "github.com/jessevdk/go-flags"
)

// logOutput receives diagnostics; --verbose lowers the level to debug.
var logOutput io.Writer = os.Stderr

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Summarize *SummarizeCommand
	Windows   *WindowsCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "statsctl"
	parser.LongDescription = "Offline click analytics for exported short-link clicks."

	cmds := &commands{
		Summarize: &SummarizeCommand{globals: &globals, version: version},
		Windows:   &WindowsCommand{globals: &globals, version: version},
	}

	parser.CommandHandler = func(cmd goflags.Commander, args []string) error {
		level := "warn"
		if globals.Verbose {
			level = "debug"
		}
		logger.Setup(logOutput, level)

		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	parser.AddCommand("summarize", "Summarize clicks", "Filter exported clicks by a time window and count them by geography, device, browser, OS and hour of day.", cmds.Summarize)
	parser.AddCommand("windows", "List time windows", "List the supported time-window labels and their lengths.", cmds.Windows)

	return parser, &globals, cmds
}

// Run is the main entry point for statsctl using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// go-flags requires a subcommand, but --version is valid without one.
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("statsctl %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			return nil
		}
		return err
	}

	return nil
}
