// Package certs provides TLS certificate management for devserve.
//
// Responsibilities:
//
//   - Presence check for the certificate/key pair the server requires
//     at startup (missing files are a fatal condition for serve).
//   - Loading the pair into a server-side TLS config (TLS 1.2+).
//   - Generating a self-signed development pair (certgen command).
//   - Watching the pair on disk and hot-reloading it when regenerated,
//     served through tls.Config.GetCertificate.
package certs
