// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package wtf

import (
	"fmt"
	"reflect"

	"github.com/wtf-go/wtf/internal/caller"
	"github.com/wtf-go/wtf/internal/describe"
)

// Happens wraps fn so that every call to the wrapper is narrated: the
// callee and its arguments are printed before the call, the return values
// after, with a pause session at each point. Wrap at the decoration site
// and use the result as a drop-in replacement:
//
//	handler = wtf.Happens(handler)
//
// Values that are not functions are returned unchanged.
func Happens[F any](fn F) F {
	wrapped, ok := std().wrap(fn)
	if !ok {
		return fn
	}
	return wrapped.(F)
}

// wrap builds the narrating wrapper around fn, reporting false when fn is
// not a function.
func (c *Inspector) wrap(fn any) (any, bool) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return fn, false
	}
	d := describe.New(fn, caller.Name(), c.options())
	wrapped := reflect.MakeFunc(rv.Type(), func(args []reflect.Value) []reflect.Value {
		c.announceCall(d, args)
		c.session.Pause("")
		var results []reflect.Value
		if rv.Type().IsVariadic() {
			results = rv.CallSlice(args)
		} else {
			results = rv.Call(args)
		}
		c.announceReturns(results)
		c.session.Pause("")
		return results
	})
	return wrapped.Interface(), true
}

func (c *Inspector) announceCall(d *describe.Description, args []reflect.Value) {
	if len(args) == 0 {
		fmt.Fprintf(c.Stdout, "Press enter to step into %s\n", d.Short())
		return
	}
	names := d.ParamNames()
	fmt.Fprintf(c.Stdout, "Press enter to step into %s with:\n", d.Short())
	for i, arg := range args {
		name := fmt.Sprintf("arg%d", i)
		if i < len(names) {
			name = names[i]
		}
		fmt.Fprintf(c.Stdout, "\t%s = %s\n", name, c.short(arg))
	}
}

func (c *Inspector) announceReturns(results []reflect.Value) {
	fmt.Fprintln(c.Stdout)
	for _, r := range results {
		fmt.Fprintf(c.Stdout, "Returns: %s\n", c.short(r))
	}
}

func (c *Inspector) short(v reflect.Value) string {
	if !v.IsValid() || !v.CanInterface() {
		return "?"
	}
	return describe.New(v.Interface(), "", c.options()).Short()
}
