// Package command defines the closed set of editor commands.
//
// A Command is produced by translating a key event under the current mode,
// by parsing an ex command line, or by parsing a command name from the
// config file or a Lua script. Commands are plain values; applying them is
// the session package's job.
//
// Every Kind has a kebab-case name. Commands that carry an argument write
// it after the name:
//
//	quit
//	navigate to-line 12
//	repeat 3 delete-line
//	open-file notes/intro.ipynb
//	insert-cell-below markdown
//	input "  indented"
package command
