// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"io"
	"reflect"

	"github.com/alecthomas/chroma/quick"

	"github.com/wtf-go/wtf/internal/match"
)

// Highlight writes code to w with terminal syntax highlighting. Callers
// fall back to plain output on error.
func Highlight(w io.Writer, code string) error {
	return quick.Highlight(w, code, "go", "terminal256", "monokai")
}

// Scaffolded reports whether the full description consists of generated
// code, which is worth syntax highlighting on a terminal.
func (d *Description) Scaffolded() bool {
	if d.typ == nil {
		return false
	}
	if _, ok := d.value.(match.Node); ok {
		return true
	}
	switch d.typ.Kind() {
	case reflect.Slice, reflect.Array:
		_, isBytes := d.value.([]byte)
		return !isBytes
	default:
		return false
	}
}
