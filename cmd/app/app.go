package app

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/noted-input/noted-analyze/cmd/app/analyze"
	cliapp "github.com/noted-input/noted-analyze/cmd/app/cli"
	"github.com/noted-input/noted-analyze/cmd/app/inspect"
	"github.com/noted-input/noted-analyze/cmd/app/version"
	"github.com/noted-input/noted-analyze/internal/pkg/bininfo"
	"github.com/noted-input/noted-analyze/internal/pkg/nderr"
)

// New builds the command line application. opts are appended to the fx graph
// of every command.
func New(stdout, stderr io.Writer, opts ...fx.Option) *cli.App {
	a := &cli.App{
		Name:            "noted-analyze",
		Usage:           "report and visualize NoteD input timing sessions",
		UsageText:       "noted-analyze [--png PATH] [--stats-only] <log>\n\nA log named like a command (inspect, version) must be given as a path, e.g. ./inspect",
		Description:     "Reads a NoteD session log (CSV, optionally gzip/bzip2/xz compressed, or an .xlsx export), prints click timing statistics and renders a key-hold timeline.",
		Version:         bininfo.Version,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Flags:           analyze.Flags(),
		Action:          analyze.Action(cliapp.DepsFn[analyze.CommandDeps](opts...)),
		Commands: []*cli.Command{
			inspect.Command(cliapp.DepsFn[inspect.CommandDeps](opts...)),
			version.Command(),
		},
		// errors are reported by Execute
		ExitErrHandler: func(*cli.Context, error) {},
	}
	for _, cmd := range a.Commands {
		cmd.OnUsageError = usageError
	}
	return a
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return nderr.ErrInvalidArgument.Msg("%v", err)
}

// Execute runs a with args and returns the process exit status.
func Execute(a *cli.App, args []string) int {
	err := a.Run(args)
	if err == nil {
		return 0
	}

	fmt.Fprintf(a.ErrWriter, "Error: %s\n", describe(err))
	return nderr.ExitCode(err)
}

func describe(err error) string {
	if ne, ok := err.(*nderr.NotedError); ok {
		return ne.Message
	}
	return err.Error()
}

func Run() {
	os.Exit(Execute(New(os.Stdout, os.Stderr), os.Args))
}
