// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides a Logger interface and supporting functions to control
debug output, together with a leveled process logger used by the commands.

The Logger interface is supported by the log.Logger type. The functions Print,
Printf and Println do nothing if the Logger is nil, so a library can carry an
optional logger field without checking it at every call site.

The process logger writes to standard error through the standard log package.
Its output is filtered by the level set with SetLevel: Lquiet suppresses
warnings, Ldebug enables debug messages.
*/
package xlog

import (
	"fmt"
	"log"
	"os"
)

// Logger is the interface a debug logger must support. The log.Logger type
// supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Level controls which messages the process logger outputs.
type Level int

// Supported levels. Messages below the current level are dropped.
const (
	Ldebug Level = iota
	Lnormal
	Lwarn
	Lquiet
)

var (
	std   = log.New(os.Stderr, "", 0)
	level = Lnormal
)

// SetLevel sets the level of the process logger.
func SetLevel(l Level) { level = l }

// SetPrefix sets the prefix of the process logger.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// SetFlags sets the flags of the process logger; see log.SetFlags.
func SetFlags(flags int) { std.SetFlags(flags) }

// Std returns the process logger if debug output is enabled, otherwise nil.
// The result can be assigned to the Logger fields of library types.
func Std() Logger {
	if level > Ldebug {
		return nil
	}
	return std
}

func output(l Level, s string) {
	if l < level {
		return
	}
	std.Output(3, s)
}

// Debug prints a debug message.
func Debug(v ...interface{}) { output(Ldebug, fmt.Sprint(v...)) }

// Debugf prints a formatted debug message.
func Debugf(format string, v ...interface{}) {
	output(Ldebug, fmt.Sprintf(format, v...))
}

// Printn prints a normal message. It is suppressed by Lwarn and Lquiet.
func Printn(v ...interface{}) { output(Lnormal, fmt.Sprint(v...)) }

// Printnf prints a formatted normal message.
func Printnf(format string, v ...interface{}) {
	output(Lnormal, fmt.Sprintf(format, v...))
}

// Warn prints a warning.
func Warn(v ...interface{}) { output(Lwarn, fmt.Sprint(v...)) }

// Warnf prints a formatted warning.
func Warnf(format string, v ...interface{}) {
	output(Lwarn, fmt.Sprintf(format, v...))
}

// Fatal prints the message regardless of the level and exits with status 1.
func Fatal(v ...interface{}) {
	std.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints the formatted message and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	std.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Exit prints the message regardless of the level and exits with the given
// status code.
func Exit(code int, v ...interface{}) {
	std.Output(2, fmt.Sprint(v...))
	os.Exit(code)
}
