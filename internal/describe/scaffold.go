// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/wtf-go/wtf/internal/match"
)

// spinnerLen is the sequence length from which sampling feedback is shown.
const spinnerLen = 10000

// Code generates example code for consuming the value: a destructuring loop
// for sequences, an access chain for a found match path, a call template
// for functions, a handling template for errors, and a one-line comment for
// everything else.
func (d *Description) Code() string {
	if d.typ == nil {
		return "// nil"
	}
	if n, ok := d.value.(match.Node); ok {
		return n.Code()
	}
	if _, ok := d.value.(error); ok {
		return d.errorScaffold()
	}
	rv := reflect.ValueOf(d.value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return d.sequenceScaffold(rv)
	case reflect.Func:
		return d.callScaffold(rv)
	default:
		return "// " + d.Short()
	}
}

type scaffoldCase struct {
	count   int
	details []string
}

// sequenceScaffold samples the sequence, groups elements into structural
// cases (maps by sorted key set, everything else by literal), and emits a
// range-and-switch template with one branch per distinct case. Sampling
// stops after the wall-clock budget; the branch annotations then report
// lower bounds instead of exact counts.
func (d *Description) sequenceScaffold(rv reflect.Value) string {
	source := d.name
	if source == "" {
		source = "items"
	}
	item := match.Singular(source)

	var order []string
	cases := map[string]*scaffoldCase{}
	sawAll := true
	allMaps := true
	sample := func() error {
		start := time.Now()
		for i := 0; i < rv.Len(); i++ {
			ev := reflect.ValueOf(valueOf(rv.Index(i)))
			var cc string
			var details []string
			if ev.IsValid() && ev.Kind() == reflect.Map {
				cc, details = d.mapCase(ev, item)
			} else {
				allMaps = false
				// machine() rather than a raw %#v: it falls back to a
				// cycle-marked rendering when the element reaches itself.
				cc = d.child(valueOf(rv.Index(i))).machine()
			}
			c := cases[cc]
			if c == nil {
				c = &scaffoldCase{details: details}
				cases[cc] = c
				order = append(order, cc)
			}
			c.count++
			if time.Since(start) > d.opts.SampleBudget && i < rv.Len()-1 {
				sawAll = false
				break
			}
		}
		return nil
	}
	if d.opts.Spinner != nil && rv.Len() >= spinnerLen {
		d.opts.Spinner(d.opts.Out, "sampling "+source, sample)
	} else {
		sample()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "for _, %s := range %s {\n", item, source)
	if allMaps && len(order) > 0 {
		// The switch discriminates on the element's sorted key set.
		fmt.Fprintf(&b, "\tswitch strings.Join(slices.Sorted(maps.Keys(%s)), \",\") {\n", item)
	} else {
		fmt.Fprintf(&b, "\tswitch %s {\n", item)
	}
	qualifier := ""
	if !sawAll {
		qualifier = " at least"
	}
	for _, cc := range order {
		c := cases[cc]
		fmt.Fprintf(&b, "\tcase %s:\n", cc)
		fmt.Fprintf(&b, "\t\t// Would match%s %d %ss.\n", qualifier, c.count, item)
		for _, line := range c.details {
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\t}\n}")
	return b.String()
}

// mapCase builds the case label (the quoted, sorted key set) and one detail
// line per key, each carrying the observed value's short description.
func (d *Description) mapCase(ev reflect.Value, item string) (string, []string) {
	keys := sortedKeys(ev)
	printed := make([]string, len(keys))
	details := make([]string, len(keys))
	for i, k := range keys {
		printed[i] = fmt.Sprint(valueOf(k))
		v := valueOf(ev.MapIndex(k))
		details[i] = fmt.Sprintf("\t\tfmt.Printf(\"%s=%%v\\n\", %s[%q]) // %s",
			match.VarName(printed[i]), item, printed[i], d.child(v).Short())
	}
	return strconv.Quote(strings.Join(printed, ",")), details
}

// callScaffold emits a call template, or a consumer loop when the function
// yields a sequence (an iterator or a receive channel).
func (d *Description) callScaffold(rv reflect.Value) string {
	name := d.name
	if name == "" {
		if _, _, fn := funcSource(rv); fn != "" {
			name = baseFuncName(fn)
		}
	}
	if name == "" {
		name = "f"
	}
	params := strings.Join(d.paramNames(rv), ", ")
	if _, ok := yields(rv.Type()); ok {
		item := match.Singular(name)
		return fmt.Sprintf("for %s := range %s(%s) {\n\twtf.Inspect(%s)\n}", item, name, params, item)
	}
	return fmt.Sprintf("%s(%s)", name, params)
}

func (d *Description) errorScaffold() string {
	return fmt.Sprintf("if err != nil {\n\t// %s\n\treturn fmt.Errorf(\"while trying...: %%w\", err)\n}", d.human())
}
