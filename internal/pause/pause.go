// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package pause suspends the calling goroutine pending user interaction.
// A session is the inspector's stand-in for a debugger: it holds the program
// at an interesting point, can print the goroutine stack, and can trap into
// an attached debugger via runtime.Breakpoint. Away from a terminal every
// pause is a no-op.
package pause

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"

	"github.com/wtf-go/wtf/internal/term"
)

const defaultWidth = 80

type Session struct {
	In  io.Reader
	Out io.Writer
	// IsTerminal gates the session; it is a field so tests can force it.
	IsTerminal func() bool

	disabled bool
}

func New(in io.Reader, out io.Writer) *Session {
	s := &Session{In: in, Out: out}
	s.IsTerminal = func() bool {
		return term.IsTerminalReader(s.In) && term.IsTerminalWriter(s.Out)
	}
	return s
}

// Pause suspends until the user resumes. location names the point the
// program is held at, typically file:line of the inspected call.
func (s *Session) Pause(location string) {
	if s == nil || s.disabled || !s.IsTerminal() {
		return
	}
	width := term.Width(s.Out, defaultWidth)
	fmt.Fprintln(s.Out, strings.Repeat("-", width))
	if location != "" {
		fmt.Fprintf(s.Out, "Paused at %s\n", location)
	}
	fmt.Fprintln(s.Out, s.help())
	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, color.CyanString("(wtf) "))
		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "", "c":
			return
		case "t":
			s.Out.Write(debug.Stack())
		case "b":
			// Hand control to an attached debugger, if any. Without one the
			// runtime turns this into a crash on most platforms, so it is
			// only offered interactively.
			runtime.Breakpoint()
		case "q":
			s.disabled = true
			return
		default:
			fmt.Fprintln(s.Out, s.help())
		}
	}
}

// Disabled reports whether the user has turned off pausing with "q".
func (s *Session) Disabled() bool { return s != nil && s.disabled }

func (s *Session) help() string {
	return "enter/c continue, t stack trace, b breakpoint (debugger), q stop pausing"
}
