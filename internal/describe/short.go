// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// literalAttempt caps how many elements a short literal rendering will
// visit before degrading to the bare repr. Anything longer cannot fit in
// one short line anyway.
const literalAttempt = 64

// Short renders a single line of at most ShortWidth display columns, never
// containing a line break. When the full description does not fit, it falls
// through a chain of increasingly coarse summaries and ends, in the worst
// case, at "TypeName()".
func (d *Description) Short() string {
	if d.typ == nil {
		return "nil"
	}
	if d.depth > d.opts.MaxDepth {
		return d.typeName() + "()"
	}
	s := d.String()
	if d.oneShortLine(s) {
		return s
	}
	rv := reflect.ValueOf(d.value)
	switch {
	case isError(d.value):
		s = d.fullTypeName() + "()"
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		s = d.shortSequence(rv)
	case rv.Kind() == reflect.Map:
		s = d.shortMap(rv)
	case rv.Kind() == reflect.Func:
		s = d.signature(rv)
	default:
		s = ""
	}
	if !d.oneShortLine(s) {
		s = d.typeName() + "()"
	}
	return s
}

func (d *Description) oneShortLine(s string) bool {
	return s != "" && !strings.Contains(s, "\n") && runewidth.StringWidth(s) <= d.opts.ShortWidth
}

func (d *Description) shortSequence(rv reflect.Value) string {
	if rv.Len() <= literalAttempt {
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = d.child(valueOf(rv.Index(i))).Short()
		}
		s := d.typeName() + "{" + strings.Join(elems, ", ") + "}"
		if d.oneShortLine(s) {
			return s
		}
	}
	return fmt.Sprintf("%s item %s", humanize.Comma(int64(rv.Len())), d.typeName())
}

func (d *Description) shortMap(rv reflect.Value) string {
	keys := sortedKeys(rv)
	if len(keys) <= literalAttempt {
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = d.child(valueOf(k)).Short() + ": " + d.child(valueOf(rv.MapIndex(k))).Short()
		}
		s := d.typeName() + "{" + strings.Join(pairs, ", ") + "}"
		if d.oneShortLine(s) {
			return s
		}
	}
	printed := make([]string, len(keys))
	for i, k := range keys {
		printed[i] = fmt.Sprint(valueOf(k))
	}
	s := fmt.Sprintf("%s with keys: %s", d.typeName(), strings.Join(printed, ", "))
	if d.oneShortLine(s) {
		return s
	}
	return fmt.Sprintf("%s key %s", humanize.Comma(int64(len(keys))), d.typeName())
}
