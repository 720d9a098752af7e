// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package wtf describes runtime values for humans. Point it at a value you
// do not understand and it prints what the value is, what it contains and
// example code for consuming it, then optionally holds the program in an
// interactive pause session so you can look around.
//
// The one-line forms cover most uses:
//
//	wtf.Inspect(mysteryValue)        // print and pause
//	wtf.Describe(mysteryValue)       // build a description, no output
//	wtf.Find(config, "hostname")     // search the value's object graph
//	handler = wtf.Happens(handler)   // narrate every call to handler
//	defer wtf.CatchPanics()          // explain the value a panic carries
package wtf

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"

	"github.com/wtf-go/wtf/internal/caller"
	"github.com/wtf-go/wtf/internal/config"
	"github.com/wtf-go/wtf/internal/describe"
	"github.com/wtf-go/wtf/internal/pause"
	"github.com/wtf-go/wtf/internal/term"
)

// Inspector prints value descriptions and runs pause sessions. The zero
// value is not usable; create one with New, or use the package-level
// functions, which share one inspector bound to the standard streams.
type Inspector struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	config      config.Config
	environment map[string]string
	session     *pause.Session
	// isTerminal gates color, highlighting and pausing; it is a field so
	// tests can force it.
	isTerminal func() bool
}

// New creates an inspector reading from stdin and writing to stdout and
// stderr. environment is the process environment in os.Environ form.
func New(stdin io.Reader, stdout, stderr io.Writer, environment []string) *Inspector {
	env := splitEnv(environment)
	c := &Inspector{
		Stdin:       stdin,
		Stdout:      stdout,
		Stderr:      stderr,
		environment: env,
		config:      config.Load(env),
	}
	in, out := stdin, stdout
	c.isTerminal = func() bool {
		return term.IsTerminalReader(in) && term.IsTerminalWriter(out)
	}
	c.configureOutput()
	c.session = pause.New(stdin, c.Stdout)
	c.session.IsTerminal = c.isTerminal
	return c
}

func (c *Inspector) configureOutput() {
	if f, ok := c.Stdout.(*os.File); ok {
		c.Stdout = colorable.NewColorable(f)
	}
	if f, ok := c.Stderr.(*os.File); ok {
		c.Stderr = colorable.NewColorable(f)
	}
	if c.config.Quiet {
		c.Stdout = io.Discard
	}
	log.SetFlags(0) // No timestamps
	log.SetOutput(c.Stderr)
	mode := c.config.Color
	color.NoColor = mode == "never" ||
		(mode != "always" && (c.environment["NO_COLOR"] != "" || !c.isTerminal()))
}

func (c *Inspector) options() describe.Options {
	opts := describe.Options{
		Out:             c.Stdout,
		ShortWidth:      c.config.ShortWidth,
		PrettyThreshold: c.config.PrettyThreshold,
		MaxDepth:        c.config.MaxDepth,
		SampleBudget:    c.config.SampleBudget,
	}
	if c.isTerminal() {
		opts.Spinner = term.Progress
	}
	return opts
}

// Inspect prints the full description of x and, on a terminal, pauses at
// the calling line. The description is returned for further use.
func (c *Inspector) Inspect(x any) *describe.Description {
	site, ok := caller.Capture()
	var name, location string
	if ok {
		name = caller.VarName(site)
		location = site.Location()
	}
	d := describe.New(x, name, c.options())
	c.print(d)
	c.session.Pause(location)
	return d
}

// Describe builds the description of x without printing or pausing.
func (c *Inspector) Describe(x any) *describe.Description {
	return describe.New(x, caller.Name(), c.options())
}

// Find searches x's reachable object graph for an attribute or key called
// name, printing the access path to every match.
func (c *Inspector) Find(x any, name string) {
	describe.New(x, caller.Name(), c.options()).Find(name)
}

// print writes the full description, syntax highlighted when it consists of
// generated code and the output is a terminal.
func (c *Inspector) print(d *describe.Description) {
	s := d.String()
	if c.isTerminal() && d.Scaffolded() {
		if err := describe.Highlight(c.Stdout, s); err == nil {
			fmt.Fprintln(c.Stdout)
			return
		}
	}
	fmt.Fprintln(c.Stdout, s)
}

func splitEnv(environment []string) map[string]string {
	env := make(map[string]string, len(environment))
	for _, entry := range environment {
		if name, value, ok := strings.Cut(entry, "="); ok {
			env[name] = value
		}
	}
	return env
}

var (
	stdOnce sync.Once
	stdInsp *Inspector
)

// std is the shared inspector behind the package-level functions.
func std() *Inspector {
	stdOnce.Do(func() {
		stdInsp = New(os.Stdin, os.Stdout, os.Stderr, os.Environ())
	})
	return stdInsp
}

// Inspect prints the full description of x to stdout and, on a terminal,
// pauses at the calling line.
func Inspect(x any) *describe.Description { return std().Inspect(x) }

// Describe builds and returns the description of x without printing.
func Describe(x any) *describe.Description { return std().Describe(x) }

// Find searches x for an attribute or key called name and prints the access
// path to every match.
func Find(x any, name string) { std().Find(x, name) }

// NewDecodeError binds doc to a JSON or CBOR decode error so that
// describing the error can show the failure offset in context.
func NewDecodeError(doc []byte, err error) *describe.DecodeError {
	return describe.NewDecodeError(doc, err)
}
