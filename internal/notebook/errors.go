package notebook

import (
	"errors"
	"fmt"
)

// Failure classes for Load and Save. Match them with errors.Is.
var (
	ErrRead  = errors.New("read failed")
	ErrParse = errors.New("parse failed")
	ErrMkdir = errors.New("directory creation failed")
	ErrWrite = errors.New("write failed")
)

// ParseError reports malformed or schema-violating notebook input.
type ParseError struct {
	// Path is the file being parsed, empty for in-memory input.
	Path string

	// Line and Column locate JSON syntax errors (1-based, 0 if unknown).
	Line   int
	Column int

	// Field is the offending structural location, e.g. "cells[2].cell_type".
	Field string

	Message string
	Err     error
}

func (e *ParseError) Error() string {
	src := e.Path
	if src == "" {
		src = "<input>"
	}
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", src, e.Line, e.Column, msg)
	}
	return fmt.Sprintf("parse error in %s: %s", src, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FileError reports a file-system failure during Load or Save.
type FileError struct {
	// Op is one of "read", "mkdir" or "write".
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the failed operation.
func (e *FileError) Is(target error) bool {
	switch e.Op {
	case "read":
		return target == ErrRead
	case "mkdir":
		return target == ErrMkdir
	case "write":
		return target == ErrWrite
	}
	return false
}
