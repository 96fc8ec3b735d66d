// Package command provides CLI command definitions for devserve.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/codeaj001/devserve/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "devserve",
		Usage:   "HTTPS static file server with permissive CORS for local development",
		Version: buildinfo.String(),
		Flags:   serveFlags(),
		Action:  runServe,
		Commands: []*cli.Command{
			ServeCommand(),
			CertgenCommand(),
			VersionCommand(),
		},
	}

	return app
}

// serveFlags returns the flags understood by the serve action. They are
// installed both at the app level (bare "devserve") and on the serve
// subcommand.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to YAML configuration file",
			EnvVars: []string{"DEVSERVE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "addr",
			Aliases: []string{"a"},
			Usage:   "Listen address (e.g. :3000)",
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Directory to serve",
		},
		&cli.StringFlag{
			Name:  "cert",
			Usage: "TLS certificate file",
		},
		&cli.StringFlag{
			Name:  "key",
			Usage: "TLS private key file",
		},
		&cli.BoolFlag{
			Name:  "no-watch",
			Usage: "Disable certificate hot reload",
		},
		&cli.IntFlag{
			Name:  "max-rps",
			Usage: "Per-client request limit per second (0 = unlimited)",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Expose Prometheus metrics on a separate listener",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "Metrics listen address",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
	}
}
