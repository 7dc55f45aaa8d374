package version

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/mod/semver"

	"github.com/noted-input/noted-analyze/internal/pkg/bininfo"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print build information",
		Action: func(ctx *cli.Context) error {
			w := ctx.App.Writer
			fmt.Fprintf(w, "version: %s\n", bininfo.Version)
			fmt.Fprintf(w, "built:   %s\n", bininfo.BuildTime)
			switch {
			case bininfo.IsRelease():
				fmt.Fprintln(w, "channel: release")
			case semver.IsValid(bininfo.Version):
				fmt.Fprintln(w, "channel: development")
			default:
				fmt.Fprintln(w, "channel: unknown (version is not SemVer)")
			}
			return nil
		},
	}
}
