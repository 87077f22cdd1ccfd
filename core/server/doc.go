// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings such as the bind
// endpoint, the optional API key, mock mode, and rate limiting.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings; the bootstrap launcher overrides Host/Port/Reload via flags.
package server
