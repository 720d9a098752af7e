// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package caller locates the source line that invoked the inspector and
// infers the name of the inspected variable from it. Everything here is
// best-effort: any failure yields the zero value and the caller falls back
// to a generic name.
package caller

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"
)

const modulePath = "github.com/wtf-go/wtf"

// Site is the first stack frame outside this module.
type Site struct {
	File     string
	Line     int
	Function string
}

func (s Site) Location() string { return fmt.Sprintf("%s:%d", s.File, s.Line) }

// Capture walks the call stack and returns the first frame that does not
// belong to this module. Test files count as caller code.
func Capture() (Site, bool) {
	pc := make([]uintptr, 64)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		ours := strings.HasPrefix(frame.Function, modulePath) && !strings.HasSuffix(frame.File, "_test.go")
		if !ours && frame.File != "" {
			return Site{File: frame.File, Line: frame.Line, Function: frame.Function}, true
		}
		if !more {
			return Site{}, false
		}
	}
}

var varPattern = regexp.MustCompile(`(?:Inspect|Describe|Find|Happens)\(\s*&?(\w+)\s*[,)]`)

// VarName reads the call-site source line and extracts the name of the
// variable passed to the inspector, if the line is available and simple
// enough to parse.
func VarName(site Site) string {
	line, err := sourceLine(site.File, site.Line)
	if err != nil {
		return ""
	}
	m := varPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// Name is the usual combination: capture the call site and parse it.
func Name() string {
	site, ok := Capture()
	if !ok {
		return ""
	}
	return VarName(site)
}

func sourceLine(file string, line int) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	lines := strings.Split(string(data), "\n")
	if line < 1 || line > len(lines) {
		return "", fmt.Errorf("line %d out of range in %s", line, file)
	}
	return lines[line-1], nil
}
