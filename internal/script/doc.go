// Package script runs the user's init.lua.
//
// The script sees a restricted Lua environment (base, table, string and
// math libraries; no io, os, debug or module loading) plus one global
// table:
//
//	nbterm.bind(mode, keys, command)   bind keys in mode
//	nbterm.unbind(mode, keys)          remove a binding
//	nbterm.set(option, on)             change a setting
//	nbterm.get(option)                 read a setting
//	nbterm.command(line)               queue an ex command line for startup
//	nbterm.options()                   list option names
//	nbterm.log(message)                write a log line
//
// Errors raised by these functions abort the script with a *Error naming
// the file and line.
package script
