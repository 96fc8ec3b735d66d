// Package confloader provides configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (applied by the caller via LoadMap)
//  2. Environment variables (DEVSERVE_*, optionally from a .env file)
//  3. YAML configuration file
//  4. Default values
package confloader
