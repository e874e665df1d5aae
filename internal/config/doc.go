// Package config loads the nbterm configuration file.
//
// Configuration comes from three places, later ones winning:
//
//	1. Built-in defaults (Default)
//	2. $XDG_CONFIG_HOME/nbterm/config.toml
//	3. NBTERM_* environment variables
//
// The file has four sections:
//
//	[editor]        boolean options plus tab_width and scroll_off
//	[log]           level and file
//	[theme]         hex colors for the status bar, tab line and selection
//	[keys.<mode>]   key spec = command name; "" removes a binding
//
// A missing file is not an error. Malformed TOML, unknown keys, bad colors
// and out-of-range numbers are reported as *ParseError.
package config
