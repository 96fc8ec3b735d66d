// Package command provides CLI command definitions for devserve.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/codeaj001/devserve/internal/infra/buildinfo"
)

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print version information",
		Action: runVersion,
	}
}

func runVersion(c *cli.Context) error {
	info := buildinfo.Get()
	fmt.Fprintf(c.App.Writer, "devserve %s (commit: %s, built: %s, %s)\n",
		info.Version, info.Commit, info.BuildTime, info.GoVersion)
	return nil
}
