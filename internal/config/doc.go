// Package config resolves the application settings from, in increasing order
// of precedence, built-in defaults, HCL settings files and CONTACTBOOK_*
// environment variables. Command-line flags are layered on top by the cli
// package.
//
// A settings file looks like:
//
//	window_days = 7
//	log_level   = "info"
//	log_format  = "text"
//	prompt      = "${env.USER}> "
//
// Expressions may reference environment variables through the env object.
package config
