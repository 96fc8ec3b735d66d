// Package main provides the entry point for devserve.
//
// devserve serves a directory over HTTPS with a self-signed
// certificate and permissive CORS headers, for local development of
// browser-based clients.
package main

import (
	"fmt"
	"os"

	"github.com/codeaj001/devserve/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
