// Package config loads the artex TOML configuration file.
//
// # Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path, when one is given (the --config flag)
//  2. Otherwise ~/.config/artex/config.toml
//  3. A missing file yields Default()
//  4. Empty fields in an existing file keep their defaults
//
// # Fields
//
//	api_base        = "https://collectionapi.metmuseum.org"
//	request_timeout = "10s"    # per HTTP request, "0s" disables
//	debounce        = "300ms"  # quiet period after typing before a fetch
//	log_file        = "~/.local/state/artex/artex.log"
//	otlp_endpoint   = ""       # host:port of an OTLP/HTTP collector
//
// Durations use time.ParseDuration syntax. Tilde expansion applies to the
// config path and log_file.
//
// # Errors
//
// Load fails on unreadable files, invalid TOML and malformed or negative
// durations. A missing file is not an error.
package config
