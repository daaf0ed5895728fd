// Package app contains the interactive assistant. It owns the address book,
// the logger and the clock, and runs the read-dispatch-print loop, decoupled
// from any specific entrypoint like a CLI.
package app
