// Package command provides CLI command definitions for devserve.
package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/codeaj001/devserve/internal/infra/certs"
	"github.com/codeaj001/devserve/internal/server/config"
)

// CertgenCommand returns the certgen subcommand.
func CertgenCommand() *cli.Command {
	return &cli.Command{
		Name:   "certgen",
		Usage:  "Generate a self-signed certificate pair for the server",
		Action: runCertgen,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cert",
				Usage: "Output path for the certificate",
				Value: config.DefaultCertFile,
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "Output path for the private key",
				Value: config.DefaultKeyFile,
			},
			&cli.StringSliceFlag{
				Name:  "host",
				Usage: "DNS name or IP the certificate is valid for (repeatable)",
			},
			&cli.DurationFlag{
				Name:  "valid-for",
				Usage: "Certificate lifetime",
				Value: 365 * 24 * time.Hour,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing pair",
			},
		},
	}
}

func runCertgen(c *cli.Context) error {
	opts := certs.GenerateOptions{
		CertFile: c.String("cert"),
		KeyFile:  c.String("key"),
		Hosts:    c.StringSlice("host"),
		ValidFor: c.Duration("valid-for"),
		Force:    c.Bool("force"),
	}

	if err := certs.Generate(opts); err != nil {
		if errors.Is(err, certs.ErrExists) {
			return fmt.Errorf("%w\nuse --force to overwrite", err)
		}
		return err
	}

	green := color.New(color.FgGreen)
	green.Fprintf(c.App.Writer, "Wrote %s and %s\n", opts.CertFile, opts.KeyFile)
	fmt.Fprintln(c.App.Writer, "The pair is self-signed; browsers will warn until you proceed past the warning.")
	return nil
}
