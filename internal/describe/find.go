// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/wtf-go/wtf/internal/match"
)

// Find searches the value's reachable graph for an attribute or key called
// name, printing the path to each match as it is discovered, and an
// explicit notice when there is none. The depth-first traversal covers
// exported non-boring fields, map keys and values, and sequence elements.
// The depth bound (MaxDepth) is also the only cycle guard: self-referential
// structures terminate, but a match hiding past a cycle can be missed.
func (d *Description) Find(name string) {
	found := 0
	for node := range d.find(name, d.opts.MaxDepth) {
		found++
		fmt.Fprintln(d.opts.Out, node.Code())
	}
	if found == 0 {
		fmt.Fprintf(d.opts.Out, "%s not found inside %s\n", name, d.displayName())
	}
}

func (d *Description) displayName() string {
	if d.name != "" {
		return d.name
	}
	return d.typeName()
}

func (d *Description) find(name string, depth int) iter.Seq[match.Node] {
	return func(yield func(match.Node) bool) {
		if depth <= 0 {
			return
		}
		out := d.opts.Out
		fmt.Fprintf(out, "Looking in %s (%s)\n", d.displayName(), d.Short())
		if slices.Contains(d.Fields(), name) {
			fmt.Fprintf(out, "%s is a field!\n", name)
			v, _ := d.field(name)
			if !yield(match.NewField(d.displayName(), name, nil, v)) {
				return
			}
		}
		rv := reflect.ValueOf(d.value)
		_, isBytes := d.value.([]byte)
		switch {
		case rv.IsValid() && rv.Kind() == reflect.Map:
			for _, k := range sortedKeys(rv) {
				key := fmt.Sprint(valueOf(k))
				v := valueOf(rv.MapIndex(k))
				if key == name {
					fmt.Fprintf(out, "%s is a key!\n", name)
					if !yield(match.NewKey(d.displayName(), key, nil, v)) {
						return
					}
				}
				for result := range d.namedChild(v, key).find(name, depth-1) {
					if !yield(match.NewKey(d.displayName(), key, result, v)) {
						return
					}
				}
			}
		case rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && !isBytes:
			fmt.Fprintf(out, "Looping over a %d item list...\n", rv.Len())
			for i := 0; i < rv.Len(); i++ {
				item := valueOf(rv.Index(i))
				for result := range d.child(item).find(name, depth-1) {
					if !yield(match.NewListItem(d.displayName(), result, item)) {
						return
					}
				}
			}
		}
		for _, fieldName := range d.Fields() {
			v, ok := d.field(fieldName)
			if !ok {
				continue
			}
			fmt.Fprintf(out, "Recursing into %s.%s\n", d.displayName(), fieldName)
			for result := range d.namedChild(v, fieldName).find(name, depth-1) {
				if !yield(match.NewField(d.displayName(), fieldName, result, v)) {
					return
				}
			}
		}
	}
}
