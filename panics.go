// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package wtf

import (
	"fmt"
	"runtime/debug"

	"github.com/wtf-go/wtf/internal/describe"
)

// CatchPanics recovers a panic, prints its stack trace and the full
// description of the panic value, runs a pause session at the failure, and
// panics again so the crash still happens. Defer it directly, before
// anything that can fail:
//
//	defer wtf.CatchPanics()
//
// Calls where nothing is panicking do nothing.
func CatchPanics() {
	if r := recover(); r != nil {
		std().reportPanic(r)
		panic(r)
	}
}

// CatchPanics is the instance form of the package-level CatchPanics.
func (c *Inspector) CatchPanics() {
	if r := recover(); r != nil {
		c.reportPanic(r)
		panic(r)
	}
}

func (c *Inspector) reportPanic(r any) {
	fmt.Fprintf(c.Stderr, "panic: %v\n\n%s\n", r, debug.Stack())
	d := describe.New(r, "", c.options())
	fmt.Fprintln(c.Stdout, d.String())
	c.session.Pause("")
}
