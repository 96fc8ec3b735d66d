// Package config defines the devserve configuration structure.
//
// The zero-configuration defaults reproduce the classic one-liner
// development server: port 3000 on all interfaces, the working
// directory as the document root, and ssl/server.crt + ssl/server.key
// as the certificate pair.
//
// Values load through internal/infra/confloader with the priority
// flags > DEVSERVE_* environment > YAML file > defaults.
package config
