// Package cli resolves command-line arguments and the IGNORE_CASE signal
// into an app.SearchConfig, and maps parse failures to exit codes.
package cli
