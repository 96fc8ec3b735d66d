// Package buildinfo provides build information for devserve.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "0.2.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// The Go compiler version is read from the runtime at call time.
package buildinfo
