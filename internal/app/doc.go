// Package app is the composition root for artex.
//
// Run loads the configuration and saved preferences, redirects the standard
// logger to the log file, installs tracing when an OTLP endpoint is
// configured, and then blocks in the terminal UI:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()       ~/.config/artex/config.toml
//	       ├─────> openLog()           ~/.local/state/artex/artex.log
//	       ├─────> telemetry.Setup()   OTLP/HTTP when otlp_endpoint is set
//	       ├─────> NewFetcher()        met.Client + gallery.Fetcher
//	       ├─────> prefs.Load()        saved dark mode
//	       └─────> ui.Run()            TUI (blocks)
//
// # Error Handling
//
// Fatal (returned from Run):
//   - invalid config file or durations
//   - log file cannot be created
//   - bad api_base
//
// Recoverable:
//   - unreadable prefs fall back to the light theme
//   - fetch failures are shown in the UI and logged
//   - prefs save failures are logged
//
// NewFetcher is shared with the non-interactive search command so both
// paths honour the same api_base and request_timeout.
package app
