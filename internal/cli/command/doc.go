// Package command provides CLI command definitions for devserve.
//
// Commands:
//
//   - serve: serve a directory over HTTPS with CORS headers (also the
//     default action when no subcommand is given)
//   - certgen: generate the self-signed certificate pair serve expects
//   - version: print build information
package command
